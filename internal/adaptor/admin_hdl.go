package adaptor

import (
	"net/http"

	"club-booking/internal/dto/request"
	"club-booking/internal/usecase"
	"club-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminHandler serves the admin dashboard; routes are guarded by RequireRole.
type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// pathID reads the {id} URL param; writes 400 when it is not a positive number.
func pathID(w http.ResponseWriter, r *http.Request, what string) (int64, bool) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid "+what+" ID", nil)
	}
	return id, ok
}

// ===== TARIFFS =====

// Tariffs handles GET /api/v1/admin/tariffs
func (h *AdminHandler) Tariffs(w http.ResponseWriter, r *http.Request) {
	tariffs, err := h.service.ListTariffs(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "admin list tariffs")
		return
	}
	utils.ResponseSuccess(w, "success", tariffs)
}

// CreateTariff handles POST /api/v1/admin/tariffs
func (h *AdminHandler) CreateTariff(w http.ResponseWriter, r *http.Request) {
	var req request.TariffRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tariff, err := h.service.CreateTariff(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create tariff")
		return
	}
	utils.ResponseCreated(w, "Tariff created", tariff)
}

// UpdateTariff handles PUT /api/v1/admin/tariffs/{id}
func (h *AdminHandler) UpdateTariff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "tariff")
	if !ok {
		return
	}
	var req request.TariffRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tariff, err := h.service.UpdateTariff(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update tariff")
		return
	}
	utils.ResponseSuccess(w, "Tariff updated", tariff)
}

// DeleteTariff handles DELETE /api/v1/admin/tariffs/{id}
func (h *AdminHandler) DeleteTariff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "tariff")
	if !ok {
		return
	}
	if err := h.service.DeleteTariff(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete tariff")
		return
	}
	utils.ResponseSuccess(w, "Tariff deleted", nil)
}

// ===== PCS =====

// UpdatePC handles PUT /api/v1/admin/pcs/{id}
func (h *AdminHandler) UpdatePC(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "PC")
	if !ok {
		return
	}
	var req request.UpdatePCRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.UpdatePC(r.Context(), id, &req); err != nil {
		handleServiceError(w, h.log, err, "update pc")
		return
	}
	utils.ResponseSuccess(w, "PC updated", nil)
}

// EnablePC handles PUT /api/v1/admin/pcs/{id}/enable
func (h *AdminHandler) EnablePC(w http.ResponseWriter, r *http.Request) {
	h.setPCEnabled(w, r, true)
}

// DisablePC handles PUT /api/v1/admin/pcs/{id}/disable
func (h *AdminHandler) DisablePC(w http.ResponseWriter, r *http.Request) {
	h.setPCEnabled(w, r, false)
}

func (h *AdminHandler) setPCEnabled(w http.ResponseWriter, r *http.Request, enabled bool) {
	id, ok := pathID(w, r, "PC")
	if !ok {
		return
	}
	if err := h.service.SetPCEnabled(r.Context(), id, enabled); err != nil {
		handleServiceError(w, h.log, err, "change pc status")
		return
	}
	message := "PC disabled"
	if enabled {
		message = "PC enabled"
	}
	utils.ResponseSuccess(w, message, nil)
}

// ===== USERS =====

// Users handles GET /api/v1/admin/users
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}
	utils.ResponseSuccess(w, "success", users)
}

// BlockUser handles PUT /api/v1/admin/users/{id}/block
func (h *AdminHandler) BlockUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "user")
	if !ok {
		return
	}
	user, err := h.service.BlockUser(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "block user")
		return
	}
	utils.ResponseSuccess(w, "User blocked", user)
}

// UnblockUser handles PUT /api/v1/admin/users/{id}/unblock
func (h *AdminHandler) UnblockUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "user")
	if !ok {
		return
	}
	user, err := h.service.UnblockUser(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "unblock user")
		return
	}
	utils.ResponseSuccess(w, "User unblocked", user)
}

// AddBonusCoins handles PUT /api/v1/admin/users/{id}/coins
func (h *AdminHandler) AddBonusCoins(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "user")
	if !ok {
		return
	}
	var req request.BonusCoinsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.AddBonusCoins(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add bonus coins")
		return
	}
	utils.ResponseSuccess(w, "Bonus coins added", user)
}

// ===== SESSIONS =====

// Sessions handles GET /api/v1/admin/sessions
func (h *AdminHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.ListSessions(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list all sessions")
		return
	}
	utils.ResponseSuccess(w, "success", sessions)
}
