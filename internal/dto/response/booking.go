package response

import "club-booking/internal/data/entity"

const (
	StepTariff  = "tariff"
	StepTime    = "time"
	StepRoom    = "room"
	StepSeats   = "seats"
	StepConfirm = "confirm"
)

type DraftResponse struct {
	ID             string                `json:"id"`
	Step           string                `json:"step"`
	Generation     int64                 `json:"generation"`
	Version        int64                 `json:"version"`
	Tariff         *TariffResponse       `json:"tariff,omitempty"`
	Date           string                `json:"date,omitempty"`
	StartTime      string                `json:"startTime,omitempty"`
	EndTime        string                `json:"endTime,omitempty"`
	DayOffset      int                   `json:"dayOffset"`
	Duration       float64               `json:"duration"`
	WindowStart    *entity.LocalDateTime `json:"windowStart,omitempty"`
	WindowEnd      *entity.LocalDateTime `json:"windowEnd,omitempty"`
	RoomID         *int64                `json:"roomId,omitempty"`
	Seats          []string              `json:"seats"`
	PCs            []PCResponse          `json:"pcsInfo"`
	RoomReselected bool                  `json:"roomReselected,omitempty"`
}

type AvailabilityResponse struct {
	DraftID        string               `json:"draftId"`
	Generation     int64                `json:"generation"`
	WindowStart    entity.LocalDateTime `json:"windowStart"`
	WindowEnd      entity.LocalDateTime `json:"windowEnd"`
	SelectedRoomID *int64               `json:"selectedRoomId,omitempty"`
	Rooms          []RoomSeatsResponse  `json:"rooms"`
}

type RoomSeatsResponse struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	VIP      bool           `json:"vip"`
	Allowed  bool           `json:"allowed"`
	Selected bool           `json:"selected"`
	Seats    []SeatResponse `json:"seats"`
}

type SeatResponse struct {
	SeatID     string `json:"seatId"`
	PCID       int64  `json:"pcId"`
	Name       string `json:"name"`
	CPU        string `json:"cpu,omitempty"`
	GPU        string `json:"gpu,omitempty"`
	RAM        string `json:"ram,omitempty"`
	Monitor    string `json:"monitor,omitempty"`
	Enabled    bool   `json:"enabled"`
	Occupied   bool   `json:"occupied"`
	Selected   bool   `json:"selected"`
	Selectable bool   `json:"selectable"`
}

type QuoteResponse struct {
	TariffID       int64   `json:"tariffId"`
	Duration       float64 `json:"duration"`
	PricePerHour   float64 `json:"pricePerHour"`
	SeatCount      int     `json:"seatCount"`
	OriginalPrice  float64 `json:"originalPrice"`
	BonusBalance   int     `json:"bonusBalance"`
	BonusCap       int     `json:"bonusCap"`
	BonusRequested int     `json:"bonusRequested"`
	BonusApplied   int     `json:"bonusApplied"`
	Discount       float64 `json:"discount"`
	FinalPrice     float64 `json:"finalPrice"`
	EarnedBonus    int     `json:"earnedBonus"`
}

type BookedSessionResponse struct {
	SessionID int64                `json:"sessionId"`
	SeatID    string               `json:"seatId"`
	PCID      int64                `json:"pcId"`
	StartTime entity.LocalDateTime `json:"startTime"`
	EndTime   entity.LocalDateTime `json:"endTime"`
	TotalCost float64              `json:"totalCost"`
	Status    entity.SessionStatus `json:"status"`
}

type SubmitResponse struct {
	Sessions []BookedSessionResponse `json:"sessions"`
	Quote    QuoteResponse           `json:"quote"`
}
