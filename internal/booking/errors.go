package booking

import "errors"

var (
	ErrInvalidTime      = errors.New("time must be in HH:MM format")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidDayOffset = errors.New("day offset out of range")
	ErrInvalidDuration  = errors.New("booking duration must be positive")
	ErrInvalidTariff    = errors.New("tariff hours must be positive")
	ErrInvalidSeatCount = errors.New("at least one seat is required")
	ErrInvalidSeatID    = errors.New("seat id must look like <floor>-<pcId>")
)
