package usecase

import (
	"context"
	"fmt"
	"strings"

	"club-booking/internal/data/entity"
	"club-booking/internal/data/repository"
	"club-booking/internal/dto/request"
	"club-booking/internal/dto/response"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

// AdminService backs the admin dashboard. Every call is forwarded with the admin's credentials,
// the backend enforces the role again.
type AdminService interface {
	ListTariffs(ctx context.Context) ([]response.TariffResponse, error)
	CreateTariff(ctx context.Context, req *request.TariffRequest) (*response.TariffResponse, error)
	UpdateTariff(ctx context.Context, id int64, req *request.TariffRequest) (*response.TariffResponse, error)
	DeleteTariff(ctx context.Context, id int64) error

	UpdatePC(ctx context.Context, id int64, req *request.UpdatePCRequest) error
	SetPCEnabled(ctx context.Context, id int64, enabled bool) error

	ListUsers(ctx context.Context) ([]response.AdminUserResponse, error)
	BlockUser(ctx context.Context, id int64) (*response.AdminUserResponse, error)
	UnblockUser(ctx context.Context, id int64) (*response.AdminUserResponse, error)
	AddBonusCoins(ctx context.Context, id int64, req *request.BonusCoinsRequest) (*response.AdminUserResponse, error)

	ListSessions(ctx context.Context) ([]response.AdminSessionResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

// actor returns the admin id for audit logs.
func actor(ctx context.Context) zap.Field {
	id, _ := utils.GetUserIDFromContext(ctx)
	return zap.String("admin_id", id)
}

// ===== TARIFFS =====

func (s *adminService) ListTariffs(ctx context.Context) ([]response.TariffResponse, error) {
	tariffs, err := s.repo.Tariff.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list tariffs", zap.Error(err))
		return nil, err
	}

	out := make([]response.TariffResponse, 0, len(tariffs))
	for _, t := range tariffs {
		out = append(out, toTariffResponse(t))
	}
	return out, nil
}

func (s *adminService) CreateTariff(ctx context.Context, req *request.TariffRequest) (*response.TariffResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	tariff, err := s.repo.Tariff.Create(ctx, tariffInput(req))
	if err != nil {
		s.log.Error("Failed to create tariff", actor(ctx), zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	s.log.Info("Tariff created", actor(ctx), zap.Int64("tariff_id", tariff.ID))
	resp := toTariffResponse(*tariff)
	return &resp, nil
}

func (s *adminService) UpdateTariff(ctx context.Context, id int64, req *request.TariffRequest) (*response.TariffResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	tariff, err := s.repo.Tariff.Update(ctx, id, tariffInput(req))
	if err != nil {
		s.log.Error("Failed to update tariff", actor(ctx), zap.Int64("tariff_id", id), zap.Error(err))
		return nil, err
	}

	s.log.Info("Tariff updated", actor(ctx), zap.Int64("tariff_id", id))
	resp := toTariffResponse(*tariff)
	return &resp, nil
}

func (s *adminService) DeleteTariff(ctx context.Context, id int64) error {
	if err := s.repo.Tariff.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete tariff", actor(ctx), zap.Int64("tariff_id", id), zap.Error(err))
		return err
	}
	s.log.Info("Tariff deleted", actor(ctx), zap.Int64("tariff_id", id))
	return nil
}

func tariffInput(req *request.TariffRequest) entity.TariffInput {
	return entity.TariffInput{
		Name:  strings.TrimSpace(req.Name),
		Price: req.Price,
		Hours: req.Hours,
		VIP:   req.VIP,
	}
}

// ===== PCS =====

func (s *adminService) UpdatePC(ctx context.Context, id int64, req *request.UpdatePCRequest) error {
	if err := validate(req); err != nil {
		return err
	}

	// roomId harus room yang sudah ada, backend tidak membuat room baru
	pcs, err := s.repo.PC.FindAll(ctx)
	if err != nil {
		return err
	}
	knownPC, knownRoom := false, false
	for _, pc := range pcs {
		knownPC = knownPC || pc.ID == id
		knownRoom = knownRoom || pc.Room.ID == req.RoomID
	}
	if !knownPC {
		return fmt.Errorf("%w: pc %d", ErrNotFound, id)
	}
	if !knownRoom {
		return fieldError("roomId", fmt.Sprintf("Unknown room %d", req.RoomID))
	}

	in := entity.PCUpdate{
		Name:      strings.TrimSpace(req.Name),
		RoomID:    req.RoomID,
		CPU:       strings.TrimSpace(req.CPU),
		GPU:       strings.TrimSpace(req.GPU),
		RAM:       strings.TrimSpace(req.RAM),
		Monitor:   strings.TrimSpace(req.Monitor),
		IsEnabled: req.Enabled,
	}
	if err := s.repo.PC.Update(ctx, id, in); err != nil {
		s.log.Error("Failed to update pc", actor(ctx), zap.Int64("pc_id", id), zap.Error(err))
		return err
	}

	s.log.Info("PC updated", actor(ctx), zap.Int64("pc_id", id))
	return nil
}

func (s *adminService) SetPCEnabled(ctx context.Context, id int64, enabled bool) error {
	if err := s.repo.PC.SetEnabled(ctx, id, enabled); err != nil {
		s.log.Error("Failed to change pc status", actor(ctx), zap.Int64("pc_id", id), zap.Bool("enabled", enabled), zap.Error(err))
		return err
	}
	s.log.Info("PC status changed", actor(ctx), zap.Int64("pc_id", id), zap.Bool("enabled", enabled))
	return nil
}

// ===== USERS =====

func (s *adminService) ListUsers(ctx context.Context) ([]response.AdminUserResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, err
	}

	out := make([]response.AdminUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toAdminUserResponse(u))
	}
	return out, nil
}

func (s *adminService) BlockUser(ctx context.Context, id int64) (*response.AdminUserResponse, error) {
	if self, ok := utils.GetUserIDFromContext(ctx); ok && self == fmt.Sprint(id) {
		return nil, fmt.Errorf("%w: an admin cannot block their own account", ErrForbidden)
	}

	user, err := s.repo.User.Block(ctx, id)
	if err != nil {
		s.log.Error("Failed to block user", actor(ctx), zap.Int64("user_id", id), zap.Error(err))
		return nil, err
	}

	s.log.Info("User blocked", actor(ctx), zap.Int64("user_id", id))
	resp := toAdminUserResponse(*user)
	return &resp, nil
}

func (s *adminService) UnblockUser(ctx context.Context, id int64) (*response.AdminUserResponse, error) {
	user, err := s.repo.User.Unblock(ctx, id)
	if err != nil {
		s.log.Error("Failed to unblock user", actor(ctx), zap.Int64("user_id", id), zap.Error(err))
		return nil, err
	}

	s.log.Info("User unblocked", actor(ctx), zap.Int64("user_id", id))
	resp := toAdminUserResponse(*user)
	return &resp, nil
}

func (s *adminService) AddBonusCoins(ctx context.Context, id int64, req *request.BonusCoinsRequest) (*response.AdminUserResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.User.AddCoins(ctx, id, req.Coins)
	if err != nil {
		s.log.Error("Failed to add bonus coins", actor(ctx), zap.Int64("user_id", id), zap.Error(err))
		return nil, err
	}

	s.log.Info("Bonus coins added", actor(ctx), zap.Int64("user_id", id), zap.Int("coins", req.Coins))
	resp := toAdminUserResponse(*user)
	return &resp, nil
}

// ===== SESSIONS =====

func (s *adminService) ListSessions(ctx context.Context) ([]response.AdminSessionResponse, error) {
	sessions, err := s.repo.Session.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list all sessions", zap.Error(err))
		return nil, err
	}

	out := make([]response.AdminSessionResponse, 0, len(sessions))
	for _, ses := range sessions {
		out = append(out, toAdminSessionResponse(ses))
	}
	return out, nil
}
