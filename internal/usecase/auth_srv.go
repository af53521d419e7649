package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"club-booking/internal/data/repository"
	"club-booking/internal/dto/request"
	"club-booking/internal/dto/response"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

const maxFullNameLen = 100

// AuthResult is the response body plus the cookies to relay to the browser.
type AuthResult struct {
	Response *response.AuthResponse
	Cookies  []*http.Cookie
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req *request.LoginRequest) (*AuthResult, error)
	Logout(ctx context.Context) (*AuthResult, error)
}

type authService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuthService(repo *repository.Repository, log *zap.Logger) AuthService {
	return &authService{
		repo: repo,
		log:  log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*AuthResult, error) {
	// 1. Validasi input (aturan sama dengan form registrasi)
	fields := utils.ValidateStruct(req)
	if fields == nil {
		fields = map[string]string{}
	}
	fullName := strings.TrimSpace(strings.TrimSpace(req.FirstName) + " " + strings.TrimSpace(req.LastName))
	if len(fullName) > maxFullNameLen {
		fields["lastName"] = fmt.Sprintf("Full name must not exceed %d characters", maxFullNameLen)
	}
	if len(fields) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", fields))
		return nil, newValidationError(fields)
	}

	// 2. Teruskan ke user service
	res, err := s.repo.Account.Register(ctx, repository.Registration{
		Login:     req.Login,
		Password:  req.Password,
		FullName:  fullName,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		s.log.Warn("Register rejected", zap.String("login", req.Login), zap.Error(err))
		return nil, err
	}

	s.log.Info("User registered", zap.String("login", req.Login))
	return s.result(req.Login, res), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*AuthResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	res, err := s.repo.Account.Login(ctx, repository.Credentials{
		Login:      req.Login,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		s.log.Warn("Login rejected", zap.String("login", req.Login), zap.Error(err))
		return nil, err
	}

	s.log.Info("User logged in", zap.String("login", req.Login))
	return s.result(req.Login, res), nil
}

func (s *authService) Logout(ctx context.Context) (*AuthResult, error) {
	res, err := s.repo.Account.Logout(ctx)
	if err != nil {
		// token lokal tetap dihapus walaupun upstream gagal
		s.log.Warn("Upstream logout failed", zap.Error(err))
		res = &repository.AccountResult{}
	}
	return s.result("", res), nil
}

func (s *authService) result(login string, res *repository.AccountResult) *AuthResult {
	out := &AuthResult{Response: &response.AuthResponse{Login: login}}
	if msg, ok := res.Body["message"].(string); ok {
		out.Response.Message = msg
	}
	if roles, ok := res.Body["roles"].([]any); ok {
		for _, r := range roles {
			if role, ok := r.(string); ok {
				out.Response.Roles = append(out.Response.Roles, role)
			}
		}
	}
	for _, line := range res.Header.Values("Set-Cookie") {
		cookie, err := http.ParseSetCookie(line)
		if err != nil {
			s.log.Debug("Skipping malformed upstream cookie", zap.Error(err))
			continue
		}
		out.Cookies = append(out.Cookies, cookie)
	}
	return out
}
