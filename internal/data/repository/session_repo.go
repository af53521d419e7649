package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"club-booking/internal/data/entity"

	"go.uber.org/zap"
)

const sessionDateLayout = "2006-01-02"

type SessionRepository interface {
	// FindInRange returns sessions in [startDate 00:00, endDate+1 00:00).
	FindInRange(ctx context.Context, startDate, endDate time.Time) ([]entity.Session, error)
	Create(ctx context.Context, req entity.SessionRequest) (*entity.BookedSession, error)
	FindMine(ctx context.Context) ([]entity.UserSession, error)
	Cancel(ctx context.Context, sessionID int64) error
	// FindAll lists sessions of every user (admin only upstream).
	FindAll(ctx context.Context) ([]entity.AdminSession, error)
}

type sessionRepository struct {
	api Upstream
	log *zap.Logger
}

func NewSessionRepository(api Upstream, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		api: api,
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) FindInRange(ctx context.Context, startDate, endDate time.Time) ([]entity.Session, error) {
	query := url.Values{
		"startDate": {startDate.Format(sessionDateLayout)},
		"endDate":   {endDate.Format(sessionDateLayout)},
	}

	var payload []sessionInfoPayload
	if err := r.api.Get(ctx, "/api/v1/sessions/sessionsForInfo", query, &payload); err != nil {
		return nil, fmt.Errorf("failed to get sessions %s..%s: %w", query.Get("startDate"), query.Get("endDate"), err)
	}

	sessions, err := decodeAll(payload, sessionInfoPayload.toEntity)
	if err != nil {
		r.log.Error("Unexpected session payload", zap.Error(err))
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}

func (r *sessionRepository) Create(ctx context.Context, req entity.SessionRequest) (*entity.BookedSession, error) {
	var payload bookedSessionPayload
	if err := r.api.Post(ctx, "/api/v1/sessions/createSession", req, &payload); err != nil {
		r.log.Warn("Failed to create session",
			zap.Int64("pc_id", req.PCID),
			zap.Int64("tariff_id", req.TariffID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to create session for pc %d: %w", req.PCID, err)
	}

	booked, err := payload.toEntity(req)
	if err != nil {
		return nil, fmt.Errorf("failed to decode created session: %w", err)
	}
	return &booked, nil
}

func (r *sessionRepository) FindMine(ctx context.Context) ([]entity.UserSession, error) {
	var payload []userSessionPayload
	if err := r.api.Get(ctx, "/api/v1/sessions/mySessions", nil, &payload); err != nil {
		return nil, fmt.Errorf("failed to get user sessions: %w", err)
	}

	sessions, err := decodeAll(payload, userSessionPayload.toEntity)
	if err != nil {
		r.log.Error("Unexpected user session payload", zap.Error(err))
		return nil, fmt.Errorf("failed to decode user sessions: %w", err)
	}
	return sessions, nil
}

func (r *sessionRepository) Cancel(ctx context.Context, sessionID int64) error {
	path := "/api/v1/sessions/cancelSession/" + strconv.FormatInt(sessionID, 10)
	if err := r.api.Put(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("failed to cancel session %d: %w", sessionID, err)
	}
	return nil
}

func (r *sessionRepository) FindAll(ctx context.Context) ([]entity.AdminSession, error) {
	var payload []adminSessionPayload
	if err := r.api.Get(ctx, "/api/v1/admin/sessions/getAllSessions", nil, &payload); err != nil {
		return nil, fmt.Errorf("failed to get all sessions: %w", err)
	}

	sessions, err := decodeAll(payload, adminSessionPayload.toEntity)
	if err != nil {
		r.log.Error("Unexpected admin session payload", zap.Error(err))
		return nil, fmt.Errorf("failed to decode all sessions: %w", err)
	}
	return sessions, nil
}
