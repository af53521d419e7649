package repository

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Credentials is the login payload forwarded to the user service.
type Credentials struct {
	Login      string `json:"login"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type Registration struct {
	Login     string `json:"login"`
	Password  string `json:"password"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birthDate"`
}

// AccountResult carries the upstream body and headers (Set-Cookie with auth_token).
type AccountResult struct {
	Body   map[string]any
	Header http.Header
}

type AccountRepository interface {
	Login(ctx context.Context, creds Credentials) (*AccountResult, error)
	Register(ctx context.Context, reg Registration) (*AccountResult, error)
	Logout(ctx context.Context) (*AccountResult, error)
}

type accountRepository struct {
	api Upstream
	log *zap.Logger
}

func NewAccountRepository(api Upstream, log *zap.Logger) AccountRepository {
	return &accountRepository{
		api: api,
		log: log.With(zap.String("repository", "account")),
	}
}

func (r *accountRepository) Login(ctx context.Context, creds Credentials) (*AccountResult, error) {
	res, err := r.exchange(ctx, "/api/v1/auth/login", creds)
	if err != nil {
		return nil, fmt.Errorf("login %s: %w", creds.Login, err)
	}
	return res, nil
}

func (r *accountRepository) Register(ctx context.Context, reg Registration) (*AccountResult, error) {
	res, err := r.exchange(ctx, "/api/v1/auth/register", reg)
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", reg.Login, err)
	}
	return res, nil
}

func (r *accountRepository) Logout(ctx context.Context) (*AccountResult, error) {
	res, err := r.exchange(ctx, "/api/v1/auth/logout", nil)
	if err != nil {
		return nil, fmt.Errorf("logout: %w", err)
	}
	return res, nil
}

func (r *accountRepository) exchange(ctx context.Context, path string, body any) (*AccountResult, error) {
	var out map[string]any
	header, err := r.api.Do(ctx, http.MethodPost, path, nil, body, &out)
	if err != nil {
		return nil, err
	}
	return &AccountResult{Body: out, Header: header}, nil
}
