package entity

import (
	"time"

	"github.com/google/uuid"
)

// Draft adalah state wizard booking (tarif -> waktu -> lantai -> kursi -> konfirmasi).
// Generation naik setiap kali window berubah; Version naik setiap update tersimpan.
type Draft struct {
	ID         uuid.UUID  `db:"id"`
	OwnerID    string     `db:"owner_id"`
	Generation int64      `db:"generation"`
	Version    int64      `db:"version"`
	State      DraftState `db:"payload"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

type DraftState struct {
	Tariff      *Tariff        `json:"tariff,omitempty"`
	Date        string         `json:"date,omitempty"`
	StartTime   string         `json:"startTime,omitempty"`
	EndTime     string         `json:"endTime,omitempty"`
	DayOffset   int            `json:"dayOffset"`
	Duration    float64        `json:"duration"`
	WindowStart *LocalDateTime `json:"windowStart,omitempty"`
	WindowEnd   *LocalDateTime `json:"windowEnd,omitempty"`
	RoomID      *int64         `json:"roomId,omitempty"`
	Seats       []string       `json:"seats"`
	PCsInfo     []PC           `json:"pcsInfo"`

	// Snapshot availability terakhir; valid hanya jika AvailableFor == Generation.
	Occupied     []int64 `json:"occupied"`
	AvailableFor int64   `json:"availableFor"`
}

func (d *Draft) HasWindow() bool {
	return d.State.WindowStart != nil && d.State.WindowEnd != nil
}

// AvailabilityCurrent reports whether the stored occupancy snapshot belongs to the current window.
func (d *Draft) AvailabilityCurrent() bool {
	return d.HasWindow() && d.Generation > 0 && d.State.AvailableFor == d.Generation
}

// ClearSeats drops the selection together with its denormalized PC copies.
func (d *Draft) ClearSeats() {
	d.State.Seats = nil
	d.State.PCsInfo = nil
}
