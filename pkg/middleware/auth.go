package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"club-booking/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Claims are issued by the upstream user service.
type Claims struct {
	Username string   `json:"uname"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// Authenticate memverifikasi JWT dari cookie (auth_token) atau header Authorization.
// Identity dan token mentah disimpan di context untuk diteruskan ke upstream.
func Authenticate(cfg utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r, cfg.CookieName)
			if token == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			identity, err := ParseToken(token, cfg.Secret)
			if err != nil {
				logger.Warn("Invalid token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), identity)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole - middleware cek role (dipasang setelah Authenticate)
func RequireRole(role string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !identity.HasRole(role) {
				logger.Warn("Role check: access denied",
					zap.String("user_id", identity.UserID),
					zap.Strings("roles", identity.Roles),
					zap.String("required", role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, fmt.Sprintf("%s access required", strings.ToLower(role)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ParseToken verifies an HS256 token and maps its claims to an Identity.
func ParseToken(token, secret string) (utils.Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return utils.Identity{}, err
	}
	if !parsed.Valid {
		return utils.Identity{}, errors.New("token is not valid")
	}
	if claims.Subject == "" {
		return utils.Identity{}, errors.New("token has no subject")
	}

	return utils.Identity{
		UserID:   claims.Subject,
		Username: claims.Username,
		Roles:    claims.Roles,
	}, nil
}

func extractToken(r *http.Request, cookieName string) string {
	if cookieName != "" {
		if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
			return c.Value
		}
	}
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}
