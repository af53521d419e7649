package entity

type SessionStatus string

const (
	SessionStatusPending    SessionStatus = "PENDING"
	SessionStatusPaid       SessionStatus = "PAID"
	SessionStatusInProgress SessionStatus = "IN_PROGRESS"
	SessionStatusCompleted  SessionStatus = "COMPLETED"
	SessionStatusNotShow    SessionStatus = "NOT_SHOW"
	SessionStatusCancelled  SessionStatus = "CANCELLED"
	SessionStatusRefunded   SessionStatus = "REFUNDED"
	SessionStatusError      SessionStatus = "ERROR"
)

// Cancellable reports whether the owner may still cancel a session in this status.
func (s SessionStatus) Cancellable() bool {
	return s == SessionStatusPending || s == SessionStatusPaid
}

// Session is an occupancy interval of one PC. A zero End means the session is still open.
type Session struct {
	PCID  int64
	Start LocalDateTime
	End   LocalDateTime
}

// UserSession adalah sesi milik user yang sedang login (riwayat booking).
type UserSession struct {
	ID        int64
	PC        PCSummary
	Tariff    *Tariff
	Start     LocalDateTime
	End       LocalDateTime
	TotalCost float64
	Status    SessionStatus
}

type PCSummary struct {
	ID       int64
	Name     string
	RoomName string
}

// SessionRequest is the createSession payload; one request per seat.
type SessionRequest struct {
	PCID     int64         `json:"pcId"`
	TariffID int64         `json:"tariffId"`
	Start    LocalDateTime `json:"startTime"`
	End      LocalDateTime `json:"endTime"`
}

type BookedSession struct {
	ID        int64
	PCID      int64
	TariffID  int64
	Start     LocalDateTime
	End       LocalDateTime
	TotalCost float64
	Status    SessionStatus
}

// AdminSession is a session of any user, as listed on the admin dashboard.
type AdminSession struct {
	UserSession
	UserID    int64
	UserLogin string
}
