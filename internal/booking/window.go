package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"club-booking/internal/data/entity"
)

const (
	DateLayout = "2006-01-02"

	// MaxDayOffset matches the longest "+2 days" end-time option.
	MaxDayOffset = 2

	minutesPerDay = 24 * 60
)

// Window is a resolved booking interval in local wall-clock time.
type Window struct {
	Start time.Time
	End   time.Time
}

// Hours returns the window length in hours.
func (w Window) Hours() float64 {
	return w.End.Sub(w.Start).Hours()
}

// Dates returns the calendar dates the window touches, as sent to sessionsForInfo.
func (w Window) Dates() (startDate, endDate string) {
	return w.Start.Format(DateLayout), w.End.Format(DateLayout)
}

func (w Window) LocalStart() entity.LocalDateTime { return entity.NewLocalDateTime(w.Start) }
func (w Window) LocalEnd() entity.LocalDateTime   { return entity.NewLocalDateTime(w.End) }

// ParseClock returns minutes since midnight for an "HH:MM" value.
// Both parts must be exactly two digits, so "9:00" is rejected; send "09:00".
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || !twoDigits(hh) || !twoDigits(mm) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return h*60 + m, nil
}

func twoDigits(s string) bool {
	return len(s) == 2 && s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}

// span returns start and end in minutes relative to start-day midnight.
// An end at or before the start with no explicit offset crosses into the next day.
func span(start, end string, dayOffset int) (int, int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, 0, err
	}
	if dayOffset < 0 || dayOffset > MaxDayOffset {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidDayOffset, dayOffset)
	}
	if e <= s && dayOffset == 0 {
		dayOffset = 1
	}
	e += dayOffset * minutesPerDay
	if e-s <= 0 {
		return 0, 0, ErrInvalidDuration
	}
	return s, e, nil
}

// DurationHours computes the booked length in hours from two "HH:MM" values.
func DurationHours(start, end string, dayOffset int) (float64, error) {
	s, e, err := span(start, end, dayOffset)
	if err != nil {
		return 0, err
	}
	return float64(e-s) / 60, nil
}

// ResolveWindow anchors start/end on the given date ("YYYY-MM-DD").
func ResolveWindow(date, start, end string, dayOffset int) (Window, error) {
	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), time.UTC)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	s, e, err := span(start, end, dayOffset)
	if err != nil {
		return Window{}, err
	}
	return Window{
		Start: day.Add(time.Duration(s) * time.Minute),
		End:   day.Add(time.Duration(e) * time.Minute),
	}, nil
}
