package wire

import (
	"net/http"

	"club-booking/internal/adaptor"
	"club-booking/pkg/middleware"
	"club-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, auth func(http.Handler) http.Handler, log *zap.Logger) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/v1/admin", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(auth)
		r.Use(middleware.RequireRole(utils.RoleAdmin, log))

		r.Get("/tariffs", adminHandler.Tariffs)
		r.Post("/tariffs", adminHandler.CreateTariff)
		r.Put("/tariffs/{id}", adminHandler.UpdateTariff)
		r.Delete("/tariffs/{id}", adminHandler.DeleteTariff)

		r.Put("/pcs/{id}", adminHandler.UpdatePC)
		r.Put("/pcs/{id}/enable", adminHandler.EnablePC)
		r.Put("/pcs/{id}/disable", adminHandler.DisablePC)

		r.Get("/users", adminHandler.Users)
		r.Put("/users/{id}/block", adminHandler.BlockUser)
		r.Put("/users/{id}/unblock", adminHandler.UnblockUser)
		r.Put("/users/{id}/coins", adminHandler.AddBonusCoins)

		r.Get("/sessions", adminHandler.Sessions)
	})
}
