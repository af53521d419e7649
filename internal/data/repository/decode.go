package repository

import (
	"errors"
	"fmt"

	"club-booking/internal/data/entity"
)

// ErrUnknownShape: response upstream tidak cocok dengan varian field yang dikenal.
var ErrUnknownShape = errors.New("unknown upstream response shape")

// ShapeError names the entity and the field for which no known variant was present.
type ShapeError struct {
	Entity string
	Field  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: missing field %q", ErrUnknownShape, e.Entity, e.Field)
}

func (e *ShapeError) Unwrap() error { return ErrUnknownShape }

func shapeErr(entityName, field string) error {
	return &ShapeError{Entity: entityName, Field: field}
}

// firstOf returns the first non-nil variant.
func firstOf[T any](variants ...*T) (T, bool) {
	for _, v := range variants {
		if v != nil {
			return *v, true
		}
	}
	var zero T
	return zero, false
}

// ===== TARIFF =====

type tariffPayload struct {
	TariffID *int64   `json:"tariffId"`
	ID       *int64   `json:"id"`
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Hours    *int     `json:"hours"`
	VIP      *bool    `json:"vip"`
	IsVIP    *bool    `json:"isVip"`
}

func (p tariffPayload) toEntity() (entity.Tariff, error) {
	id, ok := firstOf(p.TariffID, p.ID)
	if !ok {
		return entity.Tariff{}, shapeErr("tariff", "tariffId|id")
	}
	if p.Price == nil {
		return entity.Tariff{}, shapeErr("tariff", "price")
	}
	if p.Hours == nil {
		return entity.Tariff{}, shapeErr("tariff", "hours")
	}
	vip, ok := firstOf(p.VIP, p.IsVIP)
	if !ok {
		return entity.Tariff{}, shapeErr("tariff", "vip|isVip")
	}
	return entity.Tariff{ID: id, Name: p.Name, Price: *p.Price, Hours: *p.Hours, VIP: vip}, nil
}

// ===== ROOM & PC =====

type roomPayload struct {
	ID    *int64 `json:"id"`
	Name  string `json:"name"`
	VIP   *bool  `json:"vip"`
	IsVIP *bool  `json:"isVip"`
}

func (p roomPayload) toEntity() (entity.Room, error) {
	if p.ID == nil {
		return entity.Room{}, shapeErr("room", "id")
	}
	vip, ok := firstOf(p.VIP, p.IsVIP)
	if !ok {
		return entity.Room{}, shapeErr("room", "vip|isVip")
	}
	return entity.Room{ID: *p.ID, Name: p.Name, VIP: vip}, nil
}

type pcPayload struct {
	ID        *int64       `json:"id"`
	Name      string       `json:"name"`
	CPU       string       `json:"cpu"`
	GPU       string       `json:"gpu"`
	RAM       string       `json:"ram"`
	Monitor   string       `json:"monitor"`
	IsEnabled *bool        `json:"isEnabled"`
	Enabled   *bool        `json:"enabled"`
	Room      *roomPayload `json:"room"`
}

func (p pcPayload) toEntity() (entity.PC, error) {
	if p.ID == nil {
		return entity.PC{}, shapeErr("pc", "id")
	}
	enabled, ok := firstOf(p.IsEnabled, p.Enabled)
	if !ok {
		return entity.PC{}, shapeErr("pc", "isEnabled|enabled")
	}
	if p.Room == nil {
		return entity.PC{}, shapeErr("pc", "room")
	}
	room, err := p.Room.toEntity()
	if err != nil {
		return entity.PC{}, err
	}
	return entity.PC{
		ID:      *p.ID,
		Name:    p.Name,
		CPU:     p.CPU,
		GPU:     p.GPU,
		RAM:     p.RAM,
		Monitor: p.Monitor,
		Enabled: enabled,
		Room:    room,
	}, nil
}

// ===== SESSIONS =====

type sessionInfoPayload struct {
	PCID      *int64                `json:"pcId"`
	StartTime *entity.LocalDateTime `json:"startTime"`
	EndTime   *entity.LocalDateTime `json:"endTime"`
}

func (p sessionInfoPayload) toEntity() (entity.Session, error) {
	if p.PCID == nil {
		return entity.Session{}, shapeErr("session", "pcId")
	}
	if p.StartTime == nil || p.StartTime.IsZero() {
		return entity.Session{}, shapeErr("session", "startTime")
	}
	s := entity.Session{PCID: *p.PCID, Start: *p.StartTime}
	// endTime null berarti sesi masih berjalan
	if p.EndTime != nil {
		s.End = *p.EndTime
	}
	return s, nil
}

type pcSummaryPayload struct {
	ID       *int64 `json:"id"`
	Name     string `json:"name"`
	RoomName string `json:"roomName"`
}

type userSessionPayload struct {
	SessionID *int64                `json:"sessionId"`
	ID        *int64                `json:"id"`
	PC        *pcSummaryPayload     `json:"pc"`
	PCDTO     *pcSummaryPayload     `json:"pcdto"`
	Tariff    *tariffPayload        `json:"tariff"`
	StartTime *entity.LocalDateTime `json:"startTime"`
	EndTime   *entity.LocalDateTime `json:"endTime"`
	TotalCost *float64              `json:"totalCost"`
	Status    string                `json:"status"`
}

func (p userSessionPayload) toEntity() (entity.UserSession, error) {
	id, ok := firstOf(p.SessionID, p.ID)
	if !ok {
		return entity.UserSession{}, shapeErr("userSession", "sessionId|id")
	}
	pc, ok := firstOf(p.PC, p.PCDTO)
	if !ok || pc.ID == nil {
		return entity.UserSession{}, shapeErr("userSession", "pc|pcdto")
	}
	if p.StartTime == nil {
		return entity.UserSession{}, shapeErr("userSession", "startTime")
	}

	s := entity.UserSession{
		ID:     id,
		PC:     entity.PCSummary{ID: *pc.ID, Name: pc.Name, RoomName: pc.RoomName},
		Start:  *p.StartTime,
		Status: entity.SessionStatus(p.Status),
	}
	if p.EndTime != nil {
		s.End = *p.EndTime
	}
	if p.TotalCost != nil {
		s.TotalCost = *p.TotalCost
	}
	if p.Tariff != nil {
		t, err := p.Tariff.toEntity()
		if err != nil {
			return entity.UserSession{}, err
		}
		s.Tariff = &t
	}
	return s, nil
}

type bookedSessionPayload struct {
	SessionID *int64                `json:"sessionId"`
	ID        *int64                `json:"id"`
	PCID      *int64                `json:"pcId"`
	Tariff    *tariffPayload        `json:"tariff"`
	TariffID  *int64                `json:"tariffId"`
	StartTime *entity.LocalDateTime `json:"startTime"`
	EndTime   *entity.LocalDateTime `json:"endTime"`
	TotalCost *float64              `json:"totalCost"`
	Status    string                `json:"status"`
}

func (p bookedSessionPayload) toEntity(req entity.SessionRequest) (entity.BookedSession, error) {
	id, ok := firstOf(p.SessionID, p.ID)
	if !ok {
		return entity.BookedSession{}, shapeErr("session", "sessionId|id")
	}
	// Field yang tidak dikirim balik diisi dari request
	b := entity.BookedSession{
		ID:       id,
		PCID:     req.PCID,
		TariffID: req.TariffID,
		Start:    req.Start,
		End:      req.End,
		Status:   entity.SessionStatus(p.Status),
	}
	if p.PCID != nil {
		b.PCID = *p.PCID
	}
	if p.TariffID != nil {
		b.TariffID = *p.TariffID
	} else if p.Tariff != nil {
		if tid, ok := firstOf(p.Tariff.TariffID, p.Tariff.ID); ok {
			b.TariffID = tid
		}
	}
	if p.StartTime != nil && !p.StartTime.IsZero() {
		b.Start = *p.StartTime
	}
	if p.EndTime != nil && !p.EndTime.IsZero() {
		b.End = *p.EndTime
	}
	if p.TotalCost != nil {
		b.TotalCost = *p.TotalCost
	}
	return b, nil
}

// ===== PROFILE =====

type profilePayload struct {
	ID         *int64   `json:"id"`
	UserID     *int64   `json:"userId"`
	Login      *string  `json:"login"`
	FullName   string   `json:"fullName"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Wallet     *float64 `json:"wallet"`
	PhotoPath  *string  `json:"photoPath"`
	BonusCoins *int     `json:"bonusCoins"`
	Banned     *bool    `json:"banned"`
	IsBanned   *bool    `json:"isBanned"`
	Role       string   `json:"role"`
}

func (p profilePayload) toEntity() (entity.Profile, error) {
	if p.Login == nil || *p.Login == "" {
		return entity.Profile{}, shapeErr("profile", "login")
	}
	prof := entity.Profile{
		Login:     *p.Login,
		FullName:  p.FullName,
		Email:     p.Email,
		Phone:     p.Phone,
		PhotoPath: p.PhotoPath,
		Role:      p.Role,
	}
	if id, ok := firstOf(p.ID, p.UserID); ok {
		prof.ID = id
	}
	if p.Wallet != nil {
		prof.Wallet = *p.Wallet
	}
	if p.BonusCoins != nil {
		prof.BonusCoins = *p.BonusCoins
	}
	if banned, ok := firstOf(p.Banned, p.IsBanned); ok {
		prof.Banned = banned
	}
	return prof, nil
}

// ===== ADMIN =====

type adminSessionPayload struct {
	userSessionPayload
	UserID *int64          `json:"userId"`
	User   *profilePayload `json:"user"`
}

func (p adminSessionPayload) toEntity() (entity.AdminSession, error) {
	base, err := p.userSessionPayload.toEntity()
	if err != nil {
		return entity.AdminSession{}, err
	}
	s := entity.AdminSession{UserSession: base}
	if p.User != nil {
		if id, ok := firstOf(p.User.ID, p.User.UserID); ok {
			s.UserID = id
		}
		if p.User.Login != nil {
			s.UserLogin = *p.User.Login
		}
	}
	if p.UserID != nil {
		s.UserID = *p.UserID
	}
	return s, nil
}

// decodeAll converts every payload, failing on the first unknown shape.
func decodeAll[P any, E any](payloads []P, convert func(P) (E, error)) ([]E, error) {
	out := make([]E, 0, len(payloads))
	for i, p := range payloads {
		e, err := convert(p)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}
