package adaptor

import (
	"net/http"

	"club-booking/internal/render"
	"club-booking/internal/usecase"
	"club-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PageHandler serves HTML fragments for the booking page. Errors keep the JSON envelope.
type PageHandler struct {
	catalog  usecase.CatalogService
	profile  usecase.ProfileService
	booking  usecase.BookingService
	renderer *render.Renderer
	log      *zap.Logger
}

func NewPageHandler(service *usecase.Service, renderer *render.Renderer, log *zap.Logger) *PageHandler {
	return &PageHandler{
		catalog:  service.Catalog,
		profile:  service.Profile,
		booking:  service.Booking,
		renderer: renderer,
		log:      log.With(zap.String("handler", "page")),
	}
}

// Tariffs handles GET /fragments/tariffs
func (h *PageHandler) Tariffs(w http.ResponseWriter, r *http.Request) {
	tariffs, err := h.catalog.ListTariffs(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "render tariffs")
		return
	}
	h.render(w, render.TariffList, tariffs)
}

// SeatMap handles GET /fragments/drafts/{id}/seats (protected)
func (h *PageHandler) SeatMap(w http.ResponseWriter, r *http.Request) {
	availability, err := h.booking.Availability(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "render seat map")
		return
	}
	h.render(w, render.SeatMap, availability)
}

// Sessions handles GET /fragments/profile/sessions (protected)
func (h *PageHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.profile.MySessions(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "render sessions")
		return
	}
	h.render(w, render.SessionList, sessions)
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data any) {
	body, err := h.renderer.Render(name, data)
	if err != nil {
		h.log.Error("Failed to render fragment", zap.String("template", name), zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}
	utils.ResponseHTML(w, http.StatusOK, body)
}
