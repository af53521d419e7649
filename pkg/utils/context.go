package utils

import (
	"context"
	"strings"
)

type contextKey string

const (
	IdentityKey  contextKey = "identity"
	TokenKey     contextKey = "token"
	RequestIDKey contextKey = "request_id"
)

const RoleAdmin = "ADMIN"

// Identity adalah user yang sudah diverifikasi dari JWT upstream.
type Identity struct {
	UserID   string
	Username string
	Roles    []string
}

// HasRole ignores case and a leading "ROLE_" prefix.
func (i Identity) HasRole(role string) bool {
	want := normalizeRole(role)
	for _, r := range i.Roles {
		if normalizeRole(r) == want {
			return true
		}
	}
	return false
}

// PrimaryRole defaults to USER like the upstream gateway.
func (i Identity) PrimaryRole() string {
	if len(i.Roles) == 0 {
		return "USER"
	}
	return normalizeRole(i.Roles[0])
}

func normalizeRole(r string) string {
	return strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(r)), "ROLE_")
}

func SetIdentityContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, id)
}

func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, false
	}
	return id, true
}

// GetUserIDFromContext mendapatkan user id (sub claim) dari context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := GetIdentityFromContext(ctx)
	return id.UserID, ok
}

// GetTokenFromContext mendapatkan token dari context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok && token != ""
}

// SetTokenContext menambahkan token ke context
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
