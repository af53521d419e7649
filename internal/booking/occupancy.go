package booking

import "club-booking/internal/data/entity"

// IsOccupied uses half-open intervals: a session ending exactly at the window start is free.
// A session without an end time is treated as running indefinitely.
func IsOccupied(s entity.Session, w Window) bool {
	if !s.Start.Before(w.End) {
		return false
	}
	return s.End.IsZero() || s.End.After(w.Start)
}

// OccupiedSeats returns the PC ids with at least one session overlapping the window.
func OccupiedSeats(w Window, sessions []entity.Session) map[int64]struct{} {
	busy := make(map[int64]struct{})
	for _, s := range sessions {
		if IsOccupied(s, w) {
			busy[s.PCID] = struct{}{}
		}
	}
	return busy
}
