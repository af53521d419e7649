package response

import "club-booking/internal/data/entity"

type ProfileResponse struct {
	ID         int64   `json:"id"`
	Login      string  `json:"login"`
	FullName   string  `json:"fullName,omitempty"`
	Email      string  `json:"email,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Wallet     float64 `json:"wallet"`
	PhotoPath  *string `json:"photoPath"`
	BonusCoins int     `json:"bonusCoins"`
	Banned     bool    `json:"banned"`
	Role       string  `json:"role,omitempty"`
	// Stale: backend tidak bisa dihubungi, data dari cache.
	Stale bool `json:"stale"`
}

type UserSessionResponse struct {
	SessionID   int64                 `json:"sessionId"`
	PC          PCSummaryResponse     `json:"pc"`
	Tariff      *TariffResponse       `json:"tariff,omitempty"`
	StartTime   entity.LocalDateTime  `json:"startTime"`
	EndTime     *entity.LocalDateTime `json:"endTime"`
	TotalCost   float64               `json:"totalCost"`
	Status      entity.SessionStatus  `json:"status"`
	Cancellable bool                  `json:"cancellable"`
}

type PCSummaryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	RoomName string `json:"roomName,omitempty"`
}

type AuthResponse struct {
	Login   string   `json:"login"`
	Message string   `json:"message,omitempty"`
	Roles   []string `json:"roles,omitempty"`
}
