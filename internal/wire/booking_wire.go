package wire

import (
	"net/http"

	"club-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, auth func(http.Handler) http.Handler) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/api/v1/booking", func(r chi.Router) {
		r.Use(auth)

		// POST /api/v1/booking/quote - hitung harga tanpa draft
		r.Post("/quote", bookingHandler.QuickQuote)

		r.Post("/drafts", bookingHandler.CreateDraft)
		r.Route("/drafts/{id}", func(r chi.Router) {
			r.Get("/", bookingHandler.GetDraft)
			r.Delete("/", bookingHandler.DiscardDraft)

			// wizard: tarif -> waktu -> availability -> lantai -> kursi
			r.Put("/tariff", bookingHandler.SelectTariff)
			r.Put("/window", bookingHandler.SetWindow)
			r.Get("/availability", bookingHandler.Availability)
			r.Put("/room", bookingHandler.SelectRoom)
			r.Put("/seats", bookingHandler.SelectSeats)

			r.Post("/quote", bookingHandler.Quote)
			r.Post("/submit", bookingHandler.Submit)
		})
	})
}
