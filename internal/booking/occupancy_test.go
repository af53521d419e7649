package booking

import (
	"testing"
	"time"

	"club-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) entity.LocalDateTime {
	return entity.NewLocalDateTime(time.Date(2025, 3, 14, hour, min, 0, 0, time.UTC))
}

func window(startHour, endHour int) Window {
	return Window{
		Start: time.Date(2025, 3, 14, startHour, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 14, endHour, 0, 0, 0, time.UTC),
	}
}

func TestIsOccupied(t *testing.T) {
	w := window(12, 14)

	tests := []struct {
		name    string
		session entity.Session
		want    bool
	}{
		{"ends at window start", entity.Session{PCID: 1, Start: at(10, 0), End: at(12, 0)}, false},
		{"starts at window end", entity.Session{PCID: 1, Start: at(14, 0), End: at(16, 0)}, false},
		{"overlaps start", entity.Session{PCID: 1, Start: at(11, 0), End: at(12, 30)}, true},
		{"inside", entity.Session{PCID: 1, Start: at(12, 30), End: at(13, 0)}, true},
		{"covers", entity.Session{PCID: 1, Start: at(9, 0), End: at(20, 0)}, true},
		{"open ended before end", entity.Session{PCID: 1, Start: at(8, 0)}, true},
		{"open ended after end", entity.Session{PCID: 1, Start: at(15, 0)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOccupied(tt.session, w))
		})
	}
}

func TestIsOccupied_MatchesHalfOpenRule(t *testing.T) {
	w := window(12, 14)
	for sh := 8; sh <= 18; sh++ {
		for eh := sh + 1; eh <= 20; eh++ {
			s := entity.Session{PCID: 3, Start: at(sh, 0), End: at(eh, 0)}
			want := s.Start.Before(w.End) && s.End.After(w.Start)
			assert.Equal(t, want, IsOccupied(s, w), "session %02d-%02d", sh, eh)
		}
	}
}

func TestOccupiedSeats(t *testing.T) {
	w := window(12, 14)
	sessions := []entity.Session{
		{PCID: 1, Start: at(10, 0), End: at(12, 0)},
		{PCID: 2, Start: at(13, 0), End: at(15, 0)},
		{PCID: 3, Start: at(14, 0), End: at(15, 0)},
		{PCID: 2, Start: at(11, 0), End: at(12, 30)},
	}

	first := OccupiedSeats(w, sessions)
	second := OccupiedSeats(w, sessions)

	assert.Equal(t, map[int64]struct{}{2: {}}, first)
	assert.Equal(t, first, second)
	assert.Len(t, sessions, 4)
}

func TestOccupiedSeats_Empty(t *testing.T) {
	assert.Empty(t, OccupiedSeats(window(12, 14), nil))
}
