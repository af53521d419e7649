package adaptor

import (
	"club-booking/internal/render"
	"club-booking/internal/usecase"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Profile *ProfileHandler
	Booking *BookingHandler
	Admin   *AdminHandler
	Page    *PageHandler
}

func NewHandler(service *usecase.Service, renderer *render.Renderer, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, config.JWT.CookieName, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Profile: NewProfileHandler(service.Profile, log),
		Booking: NewBookingHandler(service.Booking, log),
		Admin:   NewAdminHandler(service.Admin, log),
		Page:    NewPageHandler(service, renderer, log),
	}
}
