package adaptor

import (
	"net/http"

	"club-booking/internal/dto/request"
	"club-booking/internal/usecase"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service    usecase.AuthService
	cookieName string
	log        *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, cookieName string, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:    service,
		cookieName: cookieName,
		log:        log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	h.relayCookies(w, res.Cookies)
	utils.ResponseCreated(w, "Registration successful", res.Response)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	h.relayCookies(w, res.Cookies)
	utils.ResponseSuccess(w, "Login successful", res.Response)
}

// Logout handles POST /api/v1/auth/logout (protected)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Logout(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	h.relayCookies(w, res.Cookies)
	// cookie auth selalu dihapus di browser, walaupun upstream tidak mengirim Set-Cookie
	if !hasCookie(res.Cookies, h.cookieName) {
		http.SetCookie(w, &http.Cookie{
			Name:     h.cookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	utils.ResponseSuccess(w, "Logout successful", nil)
}

func (h *AuthHandler) relayCookies(w http.ResponseWriter, cookies []*http.Cookie) {
	for _, c := range cookies {
		if c.Path == "" {
			c.Path = "/"
		}
		http.SetCookie(w, c)
	}
}

func hasCookie(cookies []*http.Cookie, name string) bool {
	for _, c := range cookies {
		if c.Name == name {
			return true
		}
	}
	return false
}
