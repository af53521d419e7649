package adaptor

import (
	"net/http"

	"club-booking/internal/dto/request"
	"club-booking/internal/usecase"
	"club-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateDraft handles POST /api/v1/booking/drafts (protected)
func (h *BookingHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.CreateDraft(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "create draft")
		return
	}
	utils.ResponseCreated(w, "success", draft)
}

// GetDraft handles GET /api/v1/booking/drafts/{id} (protected)
func (h *BookingHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.GetDraft(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get draft")
		return
	}
	utils.ResponseSuccess(w, "success", draft)
}

// DiscardDraft handles DELETE /api/v1/booking/drafts/{id} (protected)
func (h *BookingHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DiscardDraft(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "discard draft")
		return
	}
	utils.ResponseSuccess(w, "Draft discarded", nil)
}

// SelectTariff handles PUT /api/v1/booking/drafts/{id}/tariff (protected)
func (h *BookingHandler) SelectTariff(w http.ResponseWriter, r *http.Request) {
	var req request.SelectTariffRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	draft, err := h.service.SelectTariff(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "select tariff")
		return
	}

	message := "success"
	if draft.RoomReselected {
		message = "Selected floor is not available for this tariff, another floor was chosen"
	}
	utils.ResponseSuccess(w, message, draft)
}

// SetWindow handles PUT /api/v1/booking/drafts/{id}/window (protected)
func (h *BookingHandler) SetWindow(w http.ResponseWriter, r *http.Request) {
	var req request.SetWindowRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	draft, err := h.service.SetWindow(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "set window")
		return
	}
	utils.ResponseSuccess(w, "success", draft)
}

// Availability handles GET /api/v1/booking/drafts/{id}/availability (protected)
func (h *BookingHandler) Availability(w http.ResponseWriter, r *http.Request) {
	availability, err := h.service.Availability(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "load availability")
		return
	}
	utils.ResponseSuccess(w, "success", availability)
}

// SelectRoom handles PUT /api/v1/booking/drafts/{id}/room (protected)
func (h *BookingHandler) SelectRoom(w http.ResponseWriter, r *http.Request) {
	var req request.SelectRoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	draft, err := h.service.SelectRoom(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "select room")
		return
	}
	utils.ResponseSuccess(w, "success", draft)
}

// SelectSeats handles PUT /api/v1/booking/drafts/{id}/seats (protected)
func (h *BookingHandler) SelectSeats(w http.ResponseWriter, r *http.Request) {
	var req request.SelectSeatsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	draft, err := h.service.SelectSeats(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "select seats")
		return
	}
	utils.ResponseSuccess(w, "success", draft)
}

// Quote handles POST /api/v1/booking/drafts/{id}/quote (protected)
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req request.QuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	quote, err := h.service.Quote(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "quote draft")
		return
	}
	utils.ResponseSuccess(w, "success", quote)
}

// Submit handles POST /api/v1/booking/drafts/{id}/submit (protected)
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.QuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.Submit(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit booking")
		return
	}
	utils.ResponseCreated(w, "Booking created", result)
}

// QuickQuote handles POST /api/v1/booking/quote (protected)
func (h *BookingHandler) QuickQuote(w http.ResponseWriter, r *http.Request) {
	var req request.QuickQuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	quote, err := h.service.QuickQuote(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "quick quote")
		return
	}
	utils.ResponseSuccess(w, "success", quote)
}
