package adaptor

import (
	"net/http"

	"club-booking/internal/dto/request"
	"club-booking/internal/usecase"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log.With(zap.String("handler", "profile")),
	}
}

// Profile handles GET /api/v1/profile (protected)
func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetProfile(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	message := "success"
	if profile.Stale {
		message = "Showing saved profile, club service is unavailable"
	}
	utils.ResponseSuccess(w, message, profile)
}

// UpdateProfile handles PUT /api/v1/profile (protected)
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update profile")
		return
	}
	utils.ResponseSuccess(w, "Profile updated", profile)
}

// Sessions handles GET /api/v1/profile/sessions (protected)
func (h *ProfileHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.MySessions(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list my sessions")
		return
	}
	utils.ResponseSuccess(w, "success", sessions)
}

// CancelSession handles PUT /api/v1/profile/sessions/{id}/cancel (protected)
func (h *ProfileHandler) CancelSession(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "session")
	if !ok {
		return
	}

	if err := h.service.CancelSession(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "cancel session")
		return
	}
	utils.ResponseSuccess(w, "Session cancelled", nil)
}
