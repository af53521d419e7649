package wire

import (
	"net/http"

	"club-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireProfile(r chi.Router, profileHandler *adaptor.ProfileHandler, auth func(http.Handler) http.Handler) {
	r.Route("/api/v1/profile", func(r chi.Router) {
		r.Use(auth)

		r.Get("/", profileHandler.Profile)
		r.Put("/", profileHandler.UpdateProfile)
		r.Get("/sessions", profileHandler.Sessions)
		r.Put("/sessions/{id}/cancel", profileHandler.CancelSession)
	})
}
