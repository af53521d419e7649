package usecase

import (
	"club-booking/internal/booking"
	"club-booking/internal/data/repository"
	"club-booking/pkg/clock"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Profile ProfileService
	Booking BookingService
	Admin   AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, clk clock.Clock, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, log),
		Catalog: NewCatalogService(repo, log),
		Profile: NewProfileService(repo, log),
		Booking: NewBookingService(repo, RulesFromConfig(config.Booking), clk, log),
		Admin:   NewAdminService(repo, log),
	}
}

// RulesFromConfig falls back to the default bonus rules for unset values.
func RulesFromConfig(cfg utils.BookingConfig) booking.Rules {
	rules := booking.DefaultRules()
	if cfg.BonusUnitsPerCurrency > 0 {
		rules.UnitsPerCurrency = cfg.BonusUnitsPerCurrency
	}
	if cfg.MaxBonusShare > 0 {
		rules.MaxShare = cfg.MaxBonusShare
	}
	if cfg.EarnRate > 0 {
		rules.EarnRate = cfg.EarnRate
	}
	return rules
}
