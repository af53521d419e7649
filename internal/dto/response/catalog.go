package response

import "club-booking/internal/data/entity"

type TariffResponse struct {
	ID           int64   `json:"tariffId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Hours        int     `json:"hours"`
	VIP          bool    `json:"vip"`
	PricePerHour float64 `json:"pricePerHour"`
}

type RoomResponse struct {
	ID   int64        `json:"id"`
	Name string       `json:"name"`
	VIP  bool         `json:"vip"`
	PCs  []PCResponse `json:"pcs"`
}

type PCResponse struct {
	ID       int64  `json:"id"`
	SeatID   string `json:"seatId"`
	Name     string `json:"name"`
	CPU      string `json:"cpu,omitempty"`
	GPU      string `json:"gpu,omitempty"`
	RAM      string `json:"ram,omitempty"`
	Monitor  string `json:"monitor,omitempty"`
	Enabled  bool   `json:"enabled"`
	RoomID   int64  `json:"roomId"`
	RoomName string `json:"roomName"`
}

type SessionInfoResponse struct {
	PCID      int64                 `json:"pcId"`
	StartTime entity.LocalDateTime  `json:"startTime"`
	EndTime   *entity.LocalDateTime `json:"endTime"`
}
