package booking

import (
	"math"
	"testing"

	"club-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var standard = entity.Tariff{ID: 1, Name: "Standard 3h", Price: 30, Hours: 3}

func TestPricePerHour(t *testing.T) {
	for _, tariff := range []entity.Tariff{standard, {Price: 7.5, Hours: 1}, {Price: 100, Hours: 7}} {
		got, err := PricePerHour(tariff)
		require.NoError(t, err)
		assert.False(t, math.IsInf(got, 0) || math.IsNaN(got))
		assert.Greater(t, got, 0.0)
	}

	_, err := PricePerHour(entity.Tariff{Price: 30, Hours: 0})
	assert.ErrorIs(t, err, ErrInvalidTariff)
}

func TestOriginalPrice(t *testing.T) {
	got, err := OriginalPrice(2, standard, 2)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, got, 1e-9)

	_, err = OriginalPrice(0, standard, 1)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = OriginalPrice(2, standard, 0)
	assert.ErrorIs(t, err, ErrInvalidSeatCount)
}

func TestBonusCapAndClamp(t *testing.T) {
	assert.Equal(t, 2000, BonusCap(40, 2500))
	assert.Equal(t, 300, BonusCap(40, 300))
	assert.Equal(t, 0, BonusCap(40, 0))
	assert.Equal(t, 0, BonusCap(0, 500))

	assert.Equal(t, 2000, ClampBonus(2200, 40, 2500))
	assert.Equal(t, 150, ClampBonus(150, 40, 2500))
	assert.Equal(t, 0, ClampBonus(-10, 40, 2500))

	assert.InDelta(t, 20.0, FinalPrice(40, ClampBonus(2200, 40, 2500), BonusUnitsPerCurrency), 1e-9)
}

func TestFinalPrice_MonotoneAndNonNegative(t *testing.T) {
	prev := math.Inf(1)
	for units := 0; units <= 10000; units += 250 {
		got := FinalPrice(40, units, BonusUnitsPerCurrency)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, prev)
		prev = got
	}
	assert.Equal(t, 0.0, FinalPrice(10, 5000, BonusUnitsPerCurrency))
	assert.InDelta(t, 39.0, FinalPrice(40, 100, 0), 1e-9)
}

func TestEarnedBonus(t *testing.T) {
	for _, final := range []float64{0.29, 1, 7.77, 20, 39.99, 123.45} {
		assert.Equal(t, int(math.Floor(final*0.10*100)), EarnedBonus(final), "final=%v", final)
	}
	assert.Equal(t, 200, EarnedBonus(20))
	assert.Equal(t, 0, EarnedBonus(0))
}

func TestRulesQuote(t *testing.T) {
	q, err := DefaultRules().Quote(standard, 2, 2, 2200, 2500)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, q.PricePerHour, 1e-9)
	assert.InDelta(t, 40.0, q.OriginalPrice, 1e-9)
	assert.Equal(t, 2000, q.BonusCap)
	assert.Equal(t, 2200, q.BonusRequested)
	assert.Equal(t, 2000, q.BonusApplied)
	assert.InDelta(t, 20.0, q.Discount, 1e-9)
	assert.InDelta(t, 20.0, q.FinalPrice, 1e-9)
	assert.Equal(t, 200, q.EarnedBonus)
}

func TestRulesQuote_CustomRules(t *testing.T) {
	rules := Rules{UnitsPerCurrency: 10, MaxShare: 0.25, EarnRate: 0.05}
	q, err := rules.Quote(standard, 2, 2, 1000, 1000)
	require.NoError(t, err)

	assert.Equal(t, 100, q.BonusCap)
	assert.InDelta(t, 30.0, q.FinalPrice, 1e-9)
	assert.Equal(t, 15, q.EarnedBonus)
}
