package booking

import (
	"fmt"
	"math"

	"club-booking/internal/data/entity"
)

const (
	BonusUnitsPerCurrency = 100
	MaxBonusShare         = 0.5
	EarnRate              = 0.10
)

// Rules are the bonus parameters. The zero value is not usable; start from DefaultRules.
type Rules struct {
	UnitsPerCurrency int
	MaxShare         float64
	EarnRate         float64
}

func DefaultRules() Rules {
	return Rules{
		UnitsPerCurrency: BonusUnitsPerCurrency,
		MaxShare:         MaxBonusShare,
		EarnRate:         EarnRate,
	}
}

func PricePerHour(t entity.Tariff) (float64, error) {
	if t.Hours <= 0 {
		return 0, fmt.Errorf("%w: tariff %d has %d hours", ErrInvalidTariff, t.ID, t.Hours)
	}
	return t.Price / float64(t.Hours), nil
}

// OriginalPrice = duration * (price / hours) * seatCount.
func OriginalPrice(duration float64, t entity.Tariff, seatCount int) (float64, error) {
	perHour, err := PricePerHour(t)
	if err != nil {
		return 0, err
	}
	if duration <= 0 {
		return 0, ErrInvalidDuration
	}
	if seatCount < 1 {
		return 0, ErrInvalidSeatCount
	}
	return duration * perHour * float64(seatCount), nil
}

func BonusCap(originalPrice float64, balance int) int {
	return DefaultRules().BonusCap(originalPrice, balance)
}

func ClampBonus(requested int, originalPrice float64, balance int) int {
	return DefaultRules().ClampBonus(requested, originalPrice, balance)
}

// FinalPrice never goes below zero. A non-positive rate falls back to BonusUnitsPerCurrency.
func FinalPrice(originalPrice float64, bonusUnits int, rate int) float64 {
	if rate <= 0 {
		rate = BonusUnitsPerCurrency
	}
	if bonusUnits < 0 {
		bonusUnits = 0
	}
	return math.Max(0, originalPrice-float64(bonusUnits)/float64(rate))
}

func EarnedBonus(finalPrice float64) int {
	return DefaultRules().EarnedBonus(finalPrice)
}

// BonusCap = min(balance, floor(original * MaxShare * UnitsPerCurrency)).
func (r Rules) BonusCap(originalPrice float64, balance int) int {
	if originalPrice <= 0 || balance <= 0 {
		return 0
	}
	limit := int(math.Floor(originalPrice * r.MaxShare * float64(r.UnitsPerCurrency)))
	return max(0, min(balance, limit))
}

func (r Rules) ClampBonus(requested int, originalPrice float64, balance int) int {
	return max(0, min(requested, r.BonusCap(originalPrice, balance)))
}

func (r Rules) EarnedBonus(finalPrice float64) int {
	if finalPrice <= 0 {
		return 0
	}
	return int(math.Floor(finalPrice * r.EarnRate * float64(r.UnitsPerCurrency)))
}

// Quote is the confirmation-step breakdown. Money values are unrounded.
type Quote struct {
	Duration       float64
	PricePerHour   float64
	SeatCount      int
	OriginalPrice  float64
	BonusBalance   int
	BonusCap       int
	BonusRequested int
	BonusApplied   int
	Discount       float64
	FinalPrice     float64
	EarnedBonus    int
}

// Quote prices seatCount seats for duration hours, spending at most the capped bonus.
func (r Rules) Quote(t entity.Tariff, duration float64, seatCount, requestedBonus, balance int) (Quote, error) {
	original, err := OriginalPrice(duration, t, seatCount)
	if err != nil {
		return Quote{}, err
	}
	perHour, _ := PricePerHour(t)

	applied := r.ClampBonus(requestedBonus, original, balance)
	final := FinalPrice(original, applied, r.UnitsPerCurrency)

	return Quote{
		Duration:       duration,
		PricePerHour:   perHour,
		SeatCount:      seatCount,
		OriginalPrice:  original,
		BonusBalance:   max(0, balance),
		BonusCap:       r.BonusCap(original, balance),
		BonusRequested: requestedBonus,
		BonusApplied:   applied,
		Discount:       original - final,
		FinalPrice:     final,
		EarnedBonus:    r.EarnedBonus(final),
	}, nil
}
