package usecase

import (
	"context"
	"fmt"
	"strings"

	"club-booking/internal/data/entity"
	"club-booking/internal/data/repository"
	"club-booking/internal/dto/request"
	"club-booking/internal/dto/response"
	"club-booking/pkg/apiclient"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

type ProfileService interface {
	GetProfile(ctx context.Context) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
	MySessions(ctx context.Context) ([]response.UserSessionResponse, error)
	CancelSession(ctx context.Context, sessionID int64) error
}

type profileService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProfileService(repo *repository.Repository, log *zap.Logger) ProfileService {
	return &profileService{
		repo: repo,
		log:  log.With(zap.String("service", "profile")),
	}
}

// GetProfile reads the live profile. When the backend is unreachable or failing,
// the last cached copy is returned with Stale set.
func (s *profileService) GetProfile(ctx context.Context) (*response.ProfileResponse, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	profile, err := s.repo.Profile.Get(ctx)
	if err == nil {
		if cerr := s.repo.ProfileCache.Set(ctx, userID, profile); cerr != nil {
			s.log.Warn("Failed to cache profile", zap.String("user_id", userID), zap.Error(cerr))
		}
		return toProfileResponse(profile, false), nil
	}

	// 4xx (mis. token kadaluarsa) tidak boleh ditutupi cache
	if se, ok := apiclient.AsStatusError(err); ok && se.ClientError() {
		return nil, err
	}

	cached, cerr := s.repo.ProfileCache.Get(ctx, userID)
	if cerr != nil || cached == nil {
		s.log.Error("Profile unavailable", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	s.log.Warn("Serving cached profile", zap.String("user_id", userID), zap.Error(err))
	return toProfileResponse(cached, true), nil
}

// UpdateProfile saves name, email and phone, then refreshes the cached copy.
func (s *profileService) UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	profile, err := s.repo.Profile.Update(ctx, entity.ProfileUpdate{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
	})
	if err != nil {
		s.log.Error("Failed to update profile", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	if cerr := s.repo.ProfileCache.Set(ctx, userID, profile); cerr != nil {
		s.log.Warn("Failed to cache profile", zap.String("user_id", userID), zap.Error(cerr))
	}
	s.log.Info("Profile updated", zap.String("user_id", userID))
	return toProfileResponse(profile, false), nil
}

func (s *profileService) MySessions(ctx context.Context) ([]response.UserSessionResponse, error) {
	sessions, err := s.repo.Session.FindMine(ctx)
	if err != nil {
		s.log.Error("Failed to load user sessions", zap.Error(err))
		return nil, err
	}

	out := make([]response.UserSessionResponse, 0, len(sessions))
	for _, ses := range sessions {
		out = append(out, toUserSessionResponse(ses))
	}
	return out, nil
}

// CancelSession only cancels sessions of the caller that are still pending or paid.
func (s *profileService) CancelSession(ctx context.Context, sessionID int64) error {
	sessions, err := s.repo.Session.FindMine(ctx)
	if err != nil {
		return err
	}

	for _, ses := range sessions {
		if ses.ID != sessionID {
			continue
		}
		if !ses.Status.Cancellable() {
			return fmt.Errorf("%w: session %d is %s and can no longer be cancelled", ErrConflict, sessionID, ses.Status)
		}
		if err := s.repo.Session.Cancel(ctx, sessionID); err != nil {
			s.log.Error("Failed to cancel session", zap.Int64("session_id", sessionID), zap.Error(err))
			return err
		}
		s.log.Info("Session cancelled", zap.Int64("session_id", sessionID))
		return nil
	}

	return fmt.Errorf("%w: session %d", ErrNotFound, sessionID)
}
