package wire

import (
	"net/http"

	"club-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Fragment HTML untuk halaman booking
func wirePages(r chi.Router, pageHandler *adaptor.PageHandler, auth func(http.Handler) http.Handler) {
	r.Route("/fragments", func(r chi.Router) {
		r.Get("/tariffs", pageHandler.Tariffs)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/drafts/{id}/seats", pageHandler.SeatMap)
			r.Get("/profile/sessions", pageHandler.Sessions)
		})
	})
}
