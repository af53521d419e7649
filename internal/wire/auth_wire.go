package wire

import (
	"net/http"

	"club-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, auth func(http.Handler) http.Handler) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Post("/login", authHandler.Login)
		r.Post("/register", authHandler.Register)

		// ==================== PROTECTED ROUTES ====================
		// logout butuh token untuk diteruskan ke user service
		r.With(auth).Post("/logout", authHandler.Logout)
	})
}
