package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatID(t *testing.T) {
	id := FormatSeatID(2, 15)
	assert.Equal(t, "2-15", id)

	floor, pc, err := ParseSeatID(id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), floor)
	assert.Equal(t, int64(15), pc)
}

func TestParseSeatID_Invalid(t *testing.T) {
	for _, id := range []string{"", "15", "a-1", "1-b", "1-0", "-1-2", "1-012", "01-12", "+1-12", " 1-12", "1-12 "} {
		_, _, err := ParseSeatID(id)
		assert.ErrorIs(t, err, ErrInvalidSeatID, id)
	}
}
