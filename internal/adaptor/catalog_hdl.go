package adaptor

import (
	"net/http"

	"club-booking/internal/dto/request"
	"club-booking/internal/usecase"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// Tariffs handles GET /api/v1/tariffs
func (h *CatalogHandler) Tariffs(w http.ResponseWriter, r *http.Request) {
	tariffs, err := h.service.ListTariffs(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list tariffs")
		return
	}
	utils.ResponseSuccess(w, "success", tariffs)
}

// PCs handles GET /api/v1/pcs, grouped by room
func (h *CatalogHandler) PCs(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListRooms(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list pcs")
		return
	}
	utils.ResponseSuccess(w, "success", rooms)
}

// Sessions handles GET /api/v1/sessions?startDate=&endDate=
func (h *CatalogHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.SessionRangeRequest{
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	}

	sessions, err := h.service.SessionsInRange(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list sessions")
		return
	}
	utils.ResponseSuccess(w, "success", sessions)
}
