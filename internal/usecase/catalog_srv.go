package usecase

import (
	"context"
	"fmt"
	"time"

	"club-booking/internal/booking"
	"club-booking/internal/data/repository"
	"club-booking/internal/dto/request"
	"club-booking/internal/dto/response"

	"go.uber.org/zap"
)

const maxSessionRangeDays = 31

type CatalogService interface {
	ListTariffs(ctx context.Context) ([]response.TariffResponse, error)
	ListRooms(ctx context.Context) ([]response.RoomResponse, error)
	SessionsInRange(ctx context.Context, req *request.SessionRangeRequest) ([]response.SessionInfoResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListTariffs(ctx context.Context) ([]response.TariffResponse, error) {
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

// ListRooms mengelompokkan PC per room (lantai), urutan mengikuti upstream.
func (s *catalogService) ListRooms(ctx context.Context) ([]response.RoomResponse, error) {
	pcs, err := s.repo.PC.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list pcs", zap.Error(err))
		return nil, err
	}

	rooms := booking.RoomsOf(pcs)
	out := make([]response.RoomResponse, 0, len(rooms))
	index := make(map[int64]int, len(rooms))
	for i, room := range rooms {
		index[room.ID] = i
		out = append(out, response.RoomResponse{ID: room.ID, Name: room.Name, VIP: room.VIP, PCs: []response.PCResponse{}})
	}
	for _, pc := range pcs {
		i := index[pc.Room.ID]
		out[i].PCs = append(out[i].PCs, toPCResponse(pc))
	}
	return out, nil
}

func (s *catalogService) SessionsInRange(ctx context.Context, req *request.SessionRangeRequest) ([]response.SessionInfoResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	start, _ := time.Parse(booking.DateLayout, req.StartDate)
	end, _ := time.Parse(booking.DateLayout, req.EndDate)
	if end.Before(start) {
		return nil, fieldError("endDate", "End date must not be before start date")
	}
	if end.Sub(start) > maxSessionRangeDays*24*time.Hour {
		return nil, fieldError("endDate", fmt.Sprintf("Range must not exceed %d days", maxSessionRangeDays))
	}

	sessions, err := s.repo.Session.FindInRange(ctx, start, end)
	if err != nil {
		s.log.Error("Failed to load sessions", zap.Error(err))
		return nil, err
	}

	out := make([]response.SessionInfoResponse, 0, len(sessions))
	for _, ses := range sessions {
		item := response.SessionInfoResponse{PCID: ses.PCID, StartTime: ses.Start}
		if !ses.End.IsZero() {
			end := ses.End
			item.EndTime = &end
		}
		out = append(out, item)
	}
	return out, nil
}
