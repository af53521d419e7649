package request

type SelectTariffRequest struct {
	TariffID int64 `json:"tariffId" validate:"required,gt=0"`
}

// SetWindowRequest: DayOffset datang dari opsi "+1 day / +2 days" pada jam selesai.
type SetWindowRequest struct {
	Date      string `json:"date" validate:"required,date_only"`
	StartTime string `json:"startTime" validate:"required,hhmm"`
	EndTime   string `json:"endTime" validate:"required,hhmm"`
	DayOffset int    `json:"dayOffset" validate:"min=0,max=2"`
}

type SelectRoomRequest struct {
	RoomID int64 `json:"roomId" validate:"required,gt=0"`
}

// SelectSeatsRequest must echo the generation of the availability it was built from.
type SelectSeatsRequest struct {
	Generation int64    `json:"generation" validate:"required,gt=0"`
	Seats      []string `json:"seats" validate:"required,min=1,max=20,unique,dive,required"`
}

type QuoteRequest struct {
	BonusUnits int `json:"bonusUnits" validate:"min=0"`
}

type QuickQuoteRequest struct {
	TariffID   int64  `json:"tariffId" validate:"required,gt=0"`
	StartTime  string `json:"startTime" validate:"required,hhmm"`
	EndTime    string `json:"endTime" validate:"required,hhmm"`
	DayOffset  int    `json:"dayOffset" validate:"min=0,max=2"`
	SeatCount  int    `json:"seatCount" validate:"required,min=1,max=50"`
	BonusUnits int    `json:"bonusUnits" validate:"min=0"`
}
