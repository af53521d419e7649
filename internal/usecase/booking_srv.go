package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"club-booking/internal/booking"
	"club-booking/internal/data/entity"
	"club-booking/internal/data/repository"
	"club-booking/internal/dto/request"
	"club-booking/internal/dto/response"
	"club-booking/pkg/clock"
	"club-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BookingService menjalankan wizard booking: tarif -> waktu -> lantai -> kursi -> konfirmasi.
type BookingService interface {
	CreateDraft(ctx context.Context) (*response.DraftResponse, error)
	GetDraft(ctx context.Context, draftID string) (*response.DraftResponse, error)
	DiscardDraft(ctx context.Context, draftID string) error

	SelectTariff(ctx context.Context, draftID string, req *request.SelectTariffRequest) (*response.DraftResponse, error)
	SetWindow(ctx context.Context, draftID string, req *request.SetWindowRequest) (*response.DraftResponse, error)
	Availability(ctx context.Context, draftID string) (*response.AvailabilityResponse, error)
	SelectRoom(ctx context.Context, draftID string, req *request.SelectRoomRequest) (*response.DraftResponse, error)
	SelectSeats(ctx context.Context, draftID string, req *request.SelectSeatsRequest) (*response.DraftResponse, error)

	Quote(ctx context.Context, draftID string, req *request.QuoteRequest) (*response.QuoteResponse, error)
	Submit(ctx context.Context, draftID string, req *request.QuoteRequest) (*response.SubmitResponse, error)
	QuickQuote(ctx context.Context, req *request.QuickQuoteRequest) (*response.QuoteResponse, error)

	// PurgeExpiredDrafts removes drafts idle for longer than ttl.
	PurgeExpiredDrafts(ctx context.Context, ttl time.Duration) (int64, error)
}

type bookingService struct {
	repo  *repository.Repository
	rules booking.Rules
	clock clock.Clock
	seqs  *booking.Sequencers
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, rules booking.Rules, clk clock.Clock, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		rules: rules,
		clock: clk,
		seqs:  booking.NewSequencers(),
		log:   log.With(zap.String("service", "booking")),
	}
}

// ===== DRAFT LIFECYCLE =====

func (s *bookingService) CreateDraft(ctx context.Context) (*response.DraftResponse, error) {
	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	now := s.clock.Now()
	draft := &entity.Draft{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Draft.Create(ctx, draft); err != nil {
		return nil, err
	}

	s.log.Info("Draft created", zap.String("draft_id", draft.ID.String()), zap.String("user_id", ownerID))
	return toDraftResponse(draft), nil
}

func (s *bookingService) GetDraft(ctx context.Context, draftID string) (*response.DraftResponse, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return toDraftResponse(draft), nil
}

func (s *bookingService) DiscardDraft(ctx context.Context, draftID string) error {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return err
	}
	if err := s.repo.Draft.Delete(ctx, draft.ID); err != nil {
		return err
	}
	s.seqs.Forget(draft.ID.String())
	return nil
}

func (s *bookingService) PurgeExpiredDrafts(ctx context.Context, ttl time.Duration) (int64, error) {
	ids, err := s.repo.Draft.DeleteExpired(ctx, s.clock.Now().Add(-ttl))
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		s.seqs.Forget(id.String())
	}
	n := int64(len(ids))
	if n > 0 {
		s.log.Info("Expired drafts removed", zap.Int64("count", n))
	}
	return n, nil
}

// ===== WIZARD STEPS =====

func (s *bookingService) SelectTariff(ctx context.Context, draftID string, req *request.SelectTariffRequest) (*response.DraftResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	tariff, err := s.repo.Tariff.FindByID(ctx, req.TariffID)
	if err != nil {
		return nil, err
	}
	if tariff == nil {
		return nil, fmt.Errorf("%w: tariff %d", ErrNotFound, req.TariffID)
	}
	if _, err := booking.PricePerHour(*tariff); err != nil {
		return nil, fieldError("tariffId", "Tariff has no valid number of hours")
	}

	draft.State.Tariff = tariff

	// Aturan lantai VIP dicek ulang setiap tarif berubah
	reselected := false
	if draft.State.RoomID != nil {
		pcs, err := s.repo.PC.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		room, changed, ok := booking.ReconcileRoom(*tariff, *draft.State.RoomID, booking.RoomsOf(pcs))
		switch {
		case !ok:
			draft.State.RoomID = nil
			draft.ClearSeats()
			reselected = changed
		case changed:
			draft.State.RoomID = &room.ID
			draft.ClearSeats()
			reselected = true
		}
	}

	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}

	resp := toDraftResponse(draft)
	resp.RoomReselected = reselected
	return resp, nil
}

func (s *bookingService) SetWindow(ctx context.Context, draftID string, req *request.SetWindowRequest) (*response.DraftResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.State.Tariff == nil {
		return nil, fieldError("tariffId", "Choose a tariff first")
	}

	window, err := booking.ResolveWindow(req.Date, req.StartTime, req.EndTime, req.DayOffset)
	if err != nil {
		return nil, windowError(err)
	}

	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	nowWall := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, time.UTC)
	switch {
	case window.Start.Before(today):
		return nil, fieldError("date", "Date cannot be in the past")
	case window.Start.Before(nowWall):
		return nil, fieldError("startTime", "Start time has already passed")
	}

	start, end := window.LocalStart(), window.LocalEnd()
	draft.State.Date = req.Date
	draft.State.StartTime = req.StartTime
	draft.State.EndTime = req.EndTime
	draft.State.DayOffset = req.DayOffset
	draft.State.Duration = window.Hours()
	draft.State.WindowStart = &start
	draft.State.WindowEnd = &end

	// Availability bergantung pada window: generation baru, pilihan kursi lama dibuang
	draft.Generation++
	draft.ClearSeats()
	draft.State.Occupied = nil
	draft.State.AvailableFor = 0

	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}

	s.log.Debug("Window set",
		zap.String("draft_id", draft.ID.String()),
		zap.Int64("generation", draft.Generation),
		zap.Float64("hours", draft.State.Duration))
	return toDraftResponse(draft), nil
}

// Availability fetches PCs and sessions for the draft window and stores the occupancy snapshot.
// A result whose request was superseded, or whose window changed meanwhile, is discarded.
func (s *bookingService) Availability(ctx context.Context, draftID string) (*response.AvailabilityResponse, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.State.Tariff == nil {
		return nil, fieldError("tariffId", "Choose a tariff first")
	}
	if !draft.HasWindow() {
		return nil, fieldError("window", "Choose date and time first")
	}

	seq := s.seqs.For(draft.ID.String())
	token := seq.Next()
	generation := draft.Generation
	window := draftWindow(draft)

	var (
		pcs      []entity.PC
		sessions []entity.Session
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pcs, err = s.repo.PC.FindAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = s.repo.Session.FindInRange(gctx, window.Start, window.End)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("Failed to load availability", zap.String("draft_id", draftID), zap.Error(err))
		return nil, err
	}

	occupied := booking.OccupiedSeats(window, sessions)

	if !seq.IsCurrent(token) {
		s.log.Debug("Discarding superseded availability", zap.String("draft_id", draftID), zap.Uint64("token", token))
		return nil, ErrStaleAvailability
	}

	fresh, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if fresh.Generation != generation {
		s.log.Debug("Discarding availability for old window",
			zap.String("draft_id", draftID),
			zap.Int64("generation", generation),
			zap.Int64("current", fresh.Generation))
		return nil, ErrStaleAvailability
	}

	fresh.State.Occupied = sortedIDs(occupied)
	fresh.State.AvailableFor = generation
	if err := s.save(ctx, fresh); err != nil {
		return nil, err
	}

	return buildAvailability(fresh, pcs, occupied), nil
}

func (s *bookingService) SelectRoom(ctx context.Context, draftID string, req *request.SelectRoomRequest) (*response.DraftResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.State.Tariff == nil {
		return nil, fieldError("tariffId", "Choose a tariff first")
	}

	pcs, err := s.repo.PC.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	rooms := booking.RoomsOf(pcs)
	idx := slices.IndexFunc(rooms, func(r entity.Room) bool { return r.ID == req.RoomID })
	if idx < 0 {
		return nil, fmt.Errorf("%w: room %d", ErrNotFound, req.RoomID)
	}
	room := rooms[idx]
	if !booking.RoomAllowed(*draft.State.Tariff, room) {
		return nil, fmt.Errorf("%w: room %s requires a VIP tariff", ErrForbidden, room.Name)
	}

	if draft.State.RoomID == nil || *draft.State.RoomID != room.ID {
		draft.State.RoomID = &room.ID
		draft.ClearSeats()
	}

	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}
	return toDraftResponse(draft), nil
}

// SelectSeats validates the seats against the occupancy snapshot of the current generation.
func (s *bookingService) SelectSeats(ctx context.Context, draftID string, req *request.SelectSeatsRequest) (*response.DraftResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.State.Tariff == nil || !draft.HasWindow() || draft.State.RoomID == nil {
		return nil, fieldError("seats", "Choose tariff, time and floor first")
	}
	if req.Generation != draft.Generation || !draft.AvailabilityCurrent() {
		return nil, ErrStaleAvailability
	}

	pcs, err := s.repo.PC.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]entity.PC, len(pcs))
	for _, pc := range pcs {
		byID[pc.ID] = pc
	}
	busy := make(map[int64]struct{}, len(draft.State.Occupied))
	for _, id := range draft.State.Occupied {
		busy[id] = struct{}{}
	}

	seats := make([]string, 0, len(req.Seats))
	selected := make([]entity.PC, 0, len(req.Seats))
	picked := make(map[int64]struct{}, len(req.Seats))
	for _, seatID := range req.Seats {
		floor, pcID, err := booking.ParseSeatID(seatID)
		if err != nil {
			return nil, fieldError("seats", fmt.Sprintf("Invalid seat %q", seatID))
		}
		if _, dup := picked[pcID]; dup {
			return nil, fieldError("seats", fmt.Sprintf("Seat %s is selected more than once", seatID))
		}
		picked[pcID] = struct{}{}
		pc, ok := byID[pcID]
		if !ok || pc.Room.ID != floor {
			return nil, fmt.Errorf("%w: seat %s", ErrNotFound, seatID)
		}
		if floor != *draft.State.RoomID {
			return nil, fieldError("seats", fmt.Sprintf("Seat %s is not on the selected floor", seatID))
		}
		if !booking.RoomAllowed(*draft.State.Tariff, pc.Room) {
			return nil, fmt.Errorf("%w: seat %s requires a VIP tariff", ErrForbidden, seatID)
		}
		if !pc.Enabled {
			return nil, fmt.Errorf("%w: %s is disabled", ErrSeatUnavailable, pc.Name)
		}
		if _, taken := busy[pcID]; taken {
			return nil, fmt.Errorf("%w: %s is occupied in the chosen time", ErrSeatUnavailable, pc.Name)
		}
		seats = append(seats, booking.FormatSeatID(floor, pcID))
		selected = append(selected, pc)
	}

	draft.State.Seats = seats
	draft.State.PCsInfo = selected

	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}
	return toDraftResponse(draft), nil
}

// ===== PRICING & SUBMIT =====

func (s *bookingService) Quote(ctx context.Context, draftID string, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	q, err := s.quoteDraft(ctx, draft, req.BonusUnits)
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(draft.State.Tariff.ID, q), nil
}

// Submit creates one session per seat. On failure, sessions created so far are cancelled
// and the draft is left untouched so the user can retry.
func (s *bookingService) Submit(ctx context.Context, draftID string, req *request.QuoteRequest) (*response.SubmitResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if !draft.AvailabilityCurrent() {
		return nil, ErrStaleAvailability
	}

	q, err := s.quoteDraft(ctx, draft, req.BonusUnits)
	if err != nil {
		return nil, err
	}

	created := make([]*entity.BookedSession, 0, len(draft.State.PCsInfo))
	for i, pc := range draft.State.PCsInfo {
		booked, err := s.repo.Session.Create(ctx, entity.SessionRequest{
			PCID:     pc.ID,
			TariffID: draft.State.Tariff.ID,
			Start:    *draft.State.WindowStart,
			End:      *draft.State.WindowEnd,
		})
		if err != nil {
			s.log.Error("Submit failed",
				zap.String("draft_id", draftID),
				zap.String("seat", draft.State.Seats[i]),
				zap.Int("created", len(created)),
				zap.Error(err))
			s.rollback(ctx, created)
			return nil, err
		}
		created = append(created, booked)
	}

	if err := s.repo.Draft.Delete(ctx, draft.ID); err != nil {
		s.log.Warn("Failed to delete submitted draft", zap.String("draft_id", draftID), zap.Error(err))
	}
	s.seqs.Forget(draft.ID.String())

	resp := &response.SubmitResponse{
		Sessions: make([]response.BookedSessionResponse, 0, len(created)),
		Quote:    *toQuoteResponse(draft.State.Tariff.ID, q),
	}
	for i, b := range created {
		resp.Sessions = append(resp.Sessions, response.BookedSessionResponse{
			SessionID: b.ID,
			SeatID:    draft.State.Seats[i],
			PCID:      b.PCID,
			StartTime: b.Start,
			EndTime:   b.End,
			TotalCost: response.Money(b.TotalCost),
			Status:    b.Status,
		})
	}

	s.log.Info("Booking submitted",
		zap.String("draft_id", draftID),
		zap.Int("sessions", len(created)),
		zap.Float64("final_price", resp.Quote.FinalPrice))
	return resp, nil
}

func (s *bookingService) QuickQuote(ctx context.Context, req *request.QuickQuoteRequest) (*response.QuoteResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	duration, err := booking.DurationHours(req.StartTime, req.EndTime, req.DayOffset)
	if err != nil {
		return nil, windowError(err)
	}

	tariff, err := s.repo.Tariff.FindByID(ctx, req.TariffID)
	if err != nil {
		return nil, err
	}
	if tariff == nil {
		return nil, fmt.Errorf("%w: tariff %d", ErrNotFound, req.TariffID)
	}

	balance, err := s.bonusBalance(ctx, req.BonusUnits)
	if err != nil {
		return nil, err
	}

	q, err := s.rules.Quote(*tariff, duration, req.SeatCount, req.BonusUnits, balance)
	if err != nil {
		return nil, quoteError(err)
	}
	return toQuoteResponse(tariff.ID, q), nil
}

// ===== HELPERS =====

func (s *bookingService) loadDraft(ctx context.Context, draftID string) (*entity.Draft, error) {
	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	id, err := uuid.Parse(draftID)
	if err != nil {
		return nil, fmt.Errorf("%w: draft %s", ErrNotFound, draftID)
	}

	draft, err := s.repo.Draft.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, fmt.Errorf("%w: draft %s", ErrNotFound, draftID)
	}
	if draft.OwnerID != ownerID {
		s.log.Warn("Draft owner mismatch", zap.String("draft_id", draftID), zap.String("user_id", ownerID))
		return nil, fmt.Errorf("%w: draft belongs to another user", ErrForbidden)
	}
	return draft, nil
}

func (s *bookingService) save(ctx context.Context, draft *entity.Draft) error {
	draft.UpdatedAt = s.clock.Now()
	if err := s.repo.Draft.Update(ctx, draft, draft.Version); err != nil {
		if errors.Is(err, repository.ErrDraftConflict) {
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return err
	}
	return nil
}

func (s *bookingService) quoteDraft(ctx context.Context, draft *entity.Draft, bonusUnits int) (booking.Quote, error) {
	if draft.State.Tariff == nil || !draft.HasWindow() || len(draft.State.Seats) == 0 {
		return booking.Quote{}, fieldError("seats", "Choose tariff, time and seats first")
	}

	balance, err := s.bonusBalance(ctx, bonusUnits)
	if err != nil {
		return booking.Quote{}, err
	}

	q, err := s.rules.Quote(*draft.State.Tariff, draft.State.Duration, len(draft.State.Seats), bonusUnits, balance)
	if err != nil {
		return booking.Quote{}, quoteError(err)
	}
	return q, nil
}

// bonusBalance reads the live balance only when bonus is actually requested.
func (s *bookingService) bonusBalance(ctx context.Context, requested int) (int, error) {
	if requested <= 0 {
		return 0, nil
	}
	profile, err := s.repo.Profile.Get(ctx)
	if err != nil {
		return 0, err
	}
	return profile.BonusCoins, nil
}

// rollback cancels already created sessions; it must run even if the request was cancelled.
func (s *bookingService) rollback(ctx context.Context, created []*entity.BookedSession) {
	ctx = context.WithoutCancel(ctx)
	for _, b := range created {
		if err := s.repo.Session.Cancel(ctx, b.ID); err != nil {
			s.log.Error("Rollback: failed to cancel session", zap.Int64("session_id", b.ID), zap.Error(err))
		}
	}
}

func draftWindow(d *entity.Draft) booking.Window {
	return booking.Window{Start: d.State.WindowStart.Time, End: d.State.WindowEnd.Time}
}

func buildAvailability(d *entity.Draft, pcs []entity.PC, occupied map[int64]struct{}) *response.AvailabilityResponse {
	selected := make(map[string]struct{}, len(d.State.Seats))
	for _, id := range d.State.Seats {
		selected[id] = struct{}{}
	}

	resp := &response.AvailabilityResponse{
		DraftID:        d.ID.String(),
		Generation:     d.Generation,
		WindowStart:    *d.State.WindowStart,
		WindowEnd:      *d.State.WindowEnd,
		SelectedRoomID: d.State.RoomID,
		Rooms:          []response.RoomSeatsResponse{},
	}

	index := make(map[int64]int)
	for _, room := range booking.RoomsOf(pcs) {
		index[room.ID] = len(resp.Rooms)
		resp.Rooms = append(resp.Rooms, response.RoomSeatsResponse{
			ID:       room.ID,
			Name:     room.Name,
			VIP:      room.VIP,
			Allowed:  booking.RoomAllowed(*d.State.Tariff, room),
			Selected: d.State.RoomID != nil && *d.State.RoomID == room.ID,
			Seats:    []response.SeatResponse{},
		})
	}

	for _, pc := range pcs {
		room := &resp.Rooms[index[pc.Room.ID]]
		seatID := booking.FormatSeatID(pc.Room.ID, pc.ID)
		_, busy := occupied[pc.ID]
		_, picked := selected[seatID]
		room.Seats = append(room.Seats, response.SeatResponse{
			SeatID:     seatID,
			PCID:       pc.ID,
			Name:       pc.Name,
			CPU:        pc.CPU,
			GPU:        pc.GPU,
			RAM:        pc.RAM,
			Monitor:    pc.Monitor,
			Enabled:    pc.Enabled,
			Occupied:   busy,
			Selected:   picked,
			Selectable: room.Allowed && pc.Enabled && !busy,
		})
	}
	return resp
}

func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func windowError(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidDate):
		return fieldError("date", "Date must be in YYYY-MM-DD format")
	case errors.Is(err, booking.ErrInvalidTime):
		return fieldError("startTime", "Time must be in HH:MM format")
	case errors.Is(err, booking.ErrInvalidDayOffset):
		return fieldError("dayOffset", fmt.Sprintf("Day offset must be between 0 and %d", booking.MaxDayOffset))
	case errors.Is(err, booking.ErrInvalidDuration):
		return fieldError("endTime", "End time must be after start time")
	default:
		return err
	}
}

func quoteError(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidTariff):
		return fieldError("tariffId", "Tariff has no valid number of hours")
	case errors.Is(err, booking.ErrInvalidDuration):
		return fieldError("endTime", "End time must be after start time")
	case errors.Is(err, booking.ErrInvalidSeatCount):
		return fieldError("seats", "Choose at least one seat")
	default:
		return err
	}
}
