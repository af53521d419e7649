package usecase

import (
	"context"
	"testing"
	"time"

	"club-booking/internal/booking"
	"club-booking/internal/data/entity"
	"club-booking/internal/data/repository"
	"club-booking/internal/dto/request"
	"club-booking/pkg/clock"
	"club-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type BookingServiceSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *clock.MockClock
	sessions *fakeSessionRepo
	profile  *fakeProfileRepo
	repo     *repository.Repository
	svc      BookingService
}

func TestBookingServiceSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceSuite))
}

func (s *BookingServiceSuite) SetupTest() {
	s.ctx = userCtx("user-1")
	s.clock = clock.NewMockClock(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))
	s.sessions = &fakeSessionRepo{
		sessions: []entity.Session{{PCID: 11, Start: at(10, 18), End: at(10, 20)}},
	}
	s.profile = &fakeProfileRepo{profile: &entity.Profile{ID: 1, Login: "user-1", BonusCoins: 5000}}
	s.repo = &repository.Repository{
		Tariff:       &fakeTariffRepo{tariffs: []entity.Tariff{standardTariff, vipTariff}},
		PC:           &fakePCRepo{pcs: clubPCs()},
		Session:      s.sessions,
		Profile:      s.profile,
		ProfileCache: &fakeProfileCache{},
		Draft:        repository.NewMemoryDraftRepository(),
	}
	s.svc = NewBookingService(s.repo, booking.DefaultRules(), s.clock, zap.NewNop())
}

// draftWithWindow membuat draft sampai langkah pilih lantai (tarif + waktu + availability).
func (s *BookingServiceSuite) draftWithWindow(tariffID int64) string {
	d, err := s.svc.CreateDraft(s.ctx)
	s.Require().NoError(err)

	_, err = s.svc.SelectTariff(s.ctx, d.ID, &request.SelectTariffRequest{TariffID: tariffID})
	s.Require().NoError(err)

	_, err = s.svc.SetWindow(s.ctx, d.ID, &request.SetWindowRequest{Date: "2026-03-10", StartTime: "19:00", EndTime: "21:00"})
	s.Require().NoError(err)

	_, err = s.svc.Availability(s.ctx, d.ID)
	s.Require().NoError(err)
	return d.ID
}

func (s *BookingServiceSuite) TestFullWizard() {
	id := s.draftWithWindow(standardTariff.ID)

	d, err := s.svc.SelectRoom(s.ctx, id, &request.SelectRoomRequest{RoomID: floor1.ID})
	s.Require().NoError(err)
	s.Equal("seats", d.Step)

	d, err = s.svc.SelectSeats(s.ctx, id, &request.SelectSeatsRequest{Generation: 1, Seats: []string{"1-12"}})
	s.Require().NoError(err)
	s.Equal("confirm", d.Step)
	s.Equal([]string{"1-12"}, d.Seats)

	q, err := s.svc.Quote(s.ctx, id, &request.QuoteRequest{})
	s.Require().NoError(err)
	s.Equal(2.0, q.Duration)
	s.Equal(200.0, q.OriginalPrice)
	s.Equal(200.0, q.FinalPrice)
	s.Equal(2000, q.EarnedBonus)

	res, err := s.svc.Submit(s.ctx, id, &request.QuoteRequest{})
	s.Require().NoError(err)
	s.Require().Len(res.Sessions, 1)
	s.Equal("1-12", res.Sessions[0].SeatID)
	s.Equal(int64(12), s.sessions.created[0].PCID)
	s.Equal(at(10, 19), s.sessions.created[0].Start)
	s.Equal(at(10, 21), s.sessions.created[0].End)

	_, err = s.svc.GetDraft(s.ctx, id)
	s.ErrorIs(err, ErrNotFound)
}

func (s *BookingServiceSuite) TestAvailabilityMarksOccupiedAndDisabled() {
	d, err := s.svc.CreateDraft(s.ctx)
	s.Require().NoError(err)
	_, err = s.svc.SelectTariff(s.ctx, d.ID, &request.SelectTariffRequest{TariffID: standardTariff.ID})
	s.Require().NoError(err)
	_, err = s.svc.SetWindow(s.ctx, d.ID, &request.SetWindowRequest{Date: "2026-03-10", StartTime: "19:00", EndTime: "21:00"})
	s.Require().NoError(err)

	av, err := s.svc.Availability(s.ctx, d.ID)
	s.Require().NoError(err)
	s.Require().Len(av.Rooms, 2)

	floor := av.Rooms[0]
	s.True(floor.Allowed)
	s.Require().Len(floor.Seats, 3)
	s.True(floor.Seats[0].Occupied)
	s.False(floor.Seats[0].Selectable)
	s.True(floor.Seats[1].Selectable)
	s.False(floor.Seats[2].Selectable)

	vip := av.Rooms[1]
	s.False(vip.Allowed)
	s.False(vip.Seats[0].Selectable)
}

func (s *BookingServiceSuite) TestSelectSeats_OccupiedSeat() {
	id := s.draftWithWindow(standardTariff.ID)
	_, err := s.svc.SelectRoom(s.ctx, id, &request.SelectRoomRequest{RoomID: floor1.ID})
	s.Require().NoError(err)

	_, err = s.svc.SelectSeats(s.ctx, id, &request.SelectSeatsRequest{Generation: 1, Seats: []string{"1-11"}})
	s.ErrorIs(err, ErrSeatUnavailable)

	_, err = s.svc.SelectSeats(s.ctx, id, &request.SelectSeatsRequest{Generation: 1, Seats: []string{"1-13"}})
	s.ErrorIs(err, ErrSeatUnavailable)
}

func (s *BookingServiceSuite) TestSelectSeats_SamePCTwiceRejected() {
	id := s.draftWithWindow(standardTariff.ID)
	_, err := s.svc.SelectRoom(s.ctx, id, &request.SelectRoomRequest{RoomID: floor1.ID})
	s.Require().NoError(err)

	for _, seats := range [][]string{{"1-12", "1-012"}, {"1-12", " 1-12"}} {
		_, err = s.svc.SelectSeats(s.ctx, id, &request.SelectSeatsRequest{Generation: 1, Seats: seats})
		var verr *ValidationError
		s.Require().ErrorAs(err, &verr, seats)
		s.Contains(verr.Fields, "seats")
	}

	d, err := s.svc.GetDraft(s.ctx, id)
	s.Require().NoError(err)
	s.Empty(d.Seats)

	_, err = s.svc.SelectSeats(s.ctx, id, &request.SelectSeatsRequest{Generation: 1, Seats: []string{"1-12"}})
	s.Require().NoError(err)
	q, err := s.svc.Quote(s.ctx, id, &request.QuoteRequest{})
	s.Require().NoError(err)
	s.Equal(1, q.SeatCount)
}

func (s *BookingServiceSuite) TestSelectSeats_StaleAfterWindowChange() {
	id := s.draftWithWindow(standardTariff.ID)
	_, err := s.svc.SelectRoom(s.ctx, id, &request.SelectRoomRequest{RoomID: floor1.ID})
	s.Require().NoError(err)

	d, err := s.svc.SetWindow(s.ctx, id, &request.SetWindowRequest{Date: "2026-03-10", StartTime: "20:00", EndTime: "22:00"})
	s.Require().NoError(err)
	s.Equal(int64(2), d.Generation)

	_, err = s.svc.SelectSeats(s.ctx, id, &request.SelectSeatsRequest{Generation: 1, Seats: []string{"1-12"}})
	s.ErrorIs(err, ErrStaleAvailability)

	// generation baru tapi availability belum di-load ulang
	_, err = s.svc.SelectSeats(s.ctx, id, &request.SelectSeatsRequest{Generation: 2, Seats: []string{"1-12"}})
	s.ErrorIs(err, ErrStaleAvailability)

	_, err = s.svc.Availability(s.ctx, id)
	s.Require().NoError(err)
	_, err = s.svc.SelectSeats(s.ctx, id, &request.SelectSeatsRequest{Generation: 2, Seats: []string{"1-12"}})
	s.NoError(err)
}

func (s *BookingServiceSuite) TestSetWindow_ClearsSeats() {
	id := s.draftWithWindow(standardTariff.ID)
	_, err := s.svc.SelectRoom(s.ctx, id, &request.SelectRoomRequest{RoomID: floor1.ID})
	s.Require().NoError(err)
	_, err = s.svc.SelectSeats(s.ctx, id, &request.SelectSeatsRequest{Generation: 1, Seats: []string{"1-12"}})
	s.Require().NoError(err)

	d, err := s.svc.SetWindow(s.ctx, id, &request.SetWindowRequest{Date: "2026-03-11", StartTime: "10:00", EndTime: "12:00"})
	s.Require().NoError(err)
	s.Empty(d.Seats)
	s.Empty(d.PCs)
	s.Require().NotNil(d.RoomID)
	s.Equal(floor1.ID, *d.RoomID)
}

func (s *BookingServiceSuite) TestAvailability_SupersededRequestIsDiscarded() {
	d, err := s.svc.CreateDraft(s.ctx)
	s.Require().NoError(err)
	_, err = s.svc.SelectTariff(s.ctx, d.ID, &request.SelectTariffRequest{TariffID: standardTariff.ID})
	s.Require().NoError(err)
	_, err = s.svc.SetWindow(s.ctx, d.ID, &request.SetWindowRequest{Date: "2026-03-10", StartTime: "19:00", EndTime: "21:00"})
	s.Require().NoError(err)

	var newer error
	s.sessions.onFindInRange = func(call int) error {
		if call == 1 {
			// request kedua selesai lebih dulu
			_, newer = s.svc.Availability(s.ctx, d.ID)
		}
		return nil
	}

	_, err = s.svc.Availability(s.ctx, d.ID)
	s.ErrorIs(err, ErrStaleAvailability)
	s.NoError(newer)

	cur, err := s.svc.GetDraft(s.ctx, d.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), cur.Generation)
}

func (s *BookingServiceSuite) TestAvailability_WindowChangedWhileLoading() {
	d, err := s.svc.CreateDraft(s.ctx)
	s.Require().NoError(err)
	_, err = s.svc.SelectTariff(s.ctx, d.ID, &request.SelectTariffRequest{TariffID: standardTariff.ID})
	s.Require().NoError(err)
	_, err = s.svc.SetWindow(s.ctx, d.ID, &request.SetWindowRequest{Date: "2026-03-10", StartTime: "19:00", EndTime: "21:00"})
	s.Require().NoError(err)

	s.sessions.onFindInRange = func(call int) error {
		_, err := s.svc.SetWindow(s.ctx, d.ID, &request.SetWindowRequest{Date: "2026-03-10", StartTime: "12:00", EndTime: "14:00"})
		return err
	}

	_, err = s.svc.Availability(s.ctx, d.ID)
	s.ErrorIs(err, ErrStaleAvailability)
}

func (s *BookingServiceSuite) TestSelectTariff_VIPSwitchReselectsRoom() {
	d, err := s.svc.CreateDraft(s.ctx)
	s.Require().NoError(err)
	_, err = s.svc.SelectTariff(s.ctx, d.ID, &request.SelectTariffRequest{TariffID: vipTariff.ID})
	s.Require().NoError(err)
	_, err = s.svc.SelectRoom(s.ctx, d.ID, &request.SelectRoomRequest{RoomID: vipHall.ID})
	s.Require().NoError(err)

	res, err := s.svc.SelectTariff(s.ctx, d.ID, &request.SelectTariffRequest{TariffID: standardTariff.ID})
	s.Require().NoError(err)
	s.True(res.RoomReselected)
	s.Require().NotNil(res.RoomID)
	s.Equal(floor1.ID, *res.RoomID)

	// balik ke VIP: lantai biasa tetap boleh, tidak berubah
	res, err = s.svc.SelectTariff(s.ctx, d.ID, &request.SelectTariffRequest{TariffID: vipTariff.ID})
	s.Require().NoError(err)
	s.False(res.RoomReselected)
	s.Equal(floor1.ID, *res.RoomID)
}

func (s *BookingServiceSuite) TestSelectRoom_VIPRequiresVIPTariff() {
	d, err := s.svc.CreateDraft(s.ctx)
	s.Require().NoError(err)
	_, err = s.svc.SelectTariff(s.ctx, d.ID, &request.SelectTariffRequest{TariffID: standardTariff.ID})
	s.Require().NoError(err)

	_, err = s.svc.SelectRoom(s.ctx, d.ID, &request.SelectRoomRequest{RoomID: vipHall.ID})
	s.ErrorIs(err, ErrForbidden)

	_, err = s.svc.SelectRoom(s.ctx, d.ID, &request.SelectRoomRequest{RoomID: 99})
	s.ErrorIs(err, ErrNotFound)
}

func (s *BookingServiceSuite) TestSetWindow_Validation() {
	d, err := s.svc.CreateDraft(s.ctx)
	s.Require().NoError(err)

	_, err = s.svc.SetWindow(s.ctx, d.ID, &request.SetWindowRequest{Date: "2026-03-10", StartTime: "19:00", EndTime: "21:00"})
	s.ErrorIs(err, ErrValidation, "tariff must be chosen first")

	_, err = s.svc.SelectTariff(s.ctx, d.ID, &request.SelectTariffRequest{TariffID: standardTariff.ID})
	s.Require().NoError(err)

	cases := []struct {
		name  string
		req   request.SetWindowRequest
		field string
	}{
		{"past date", request.SetWindowRequest{Date: "2026-03-09", StartTime: "19:00", EndTime: "21:00"}, "date"},
		{"start passed", request.SetWindowRequest{Date: "2026-03-10", StartTime: "09:00", EndTime: "11:00"}, "startTime"},
		{"bad clock", request.SetWindowRequest{Date: "2026-03-10", StartTime: "25:00", EndTime: "11:00"}, "startTime"},
		{"offset too large", request.SetWindowRequest{Date: "2026-03-10", StartTime: "19:00", EndTime: "21:00", DayOffset: 3}, "dayOffset"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.svc.SetWindow(s.ctx, d.ID, &tc.req)
			var verr *ValidationError
			s.Require().ErrorAs(err, &verr)
			s.Contains(verr.Fields, tc.field)
		})
	}
}

func (s *BookingServiceSuite) TestSetWindow_OvernightWithOffset() {
	d, err := s.svc.CreateDraft(s.ctx)
	s.Require().NoError(err)
	_, err = s.svc.SelectTariff(s.ctx, d.ID, &request.SelectTariffRequest{TariffID: standardTariff.ID})
	s.Require().NoError(err)

	res, err := s.svc.SetWindow(s.ctx, d.ID, &request.SetWindowRequest{Date: "2026-03-10", StartTime: "22:00", EndTime: "02:00", DayOffset: 1})
	s.Require().NoError(err)
	s.Equal(4.0, res.Duration)
	s.Equal(at(11, 2), *res.WindowEnd)
}

func (s *BookingServiceSuite) TestSubmit_RollsBackOnFailure() {
	id := s.draftWithWindow(standardTariff.ID)
	_, err := s.svc.SelectRoom(s.ctx, id, &request.SelectRoomRequest{RoomID: floor1.ID})
	s.Require().NoError(err)

	// PC-11 bebas di window ini
	s.sessions.sessions = nil
	_, err = s.svc.Availability(s.ctx, id)
	s.Require().NoError(err)
	_, err = s.svc.SelectSeats(s.ctx, id, &request.SelectSeatsRequest{Generation: 1, Seats: []string{"1-11", "1-12"}})
	s.Require().NoError(err)

	s.sessions.failCreateAt = 2
	_, err = s.svc.Submit(s.ctx, id, &request.QuoteRequest{})
	s.ErrorIs(err, errUpstreamDown)
	s.Equal([]int64{101}, s.sessions.cancelled)

	d, err := s.svc.GetDraft(s.ctx, id)
	s.Require().NoError(err)
	s.Len(d.Seats, 2)
}

func (s *BookingServiceSuite) TestQuote_BonusIsCapped() {
	id := s.draftWithWindow(standardTariff.ID)
	_, err := s.svc.SelectRoom(s.ctx, id, &request.SelectRoomRequest{RoomID: floor1.ID})
	s.Require().NoError(err)
	_, err = s.svc.SelectSeats(s.ctx, id, &request.SelectSeatsRequest{Generation: 1, Seats: []string{"1-12"}})
	s.Require().NoError(err)

	q, err := s.svc.Quote(s.ctx, id, &request.QuoteRequest{BonusUnits: 50000})
	s.Require().NoError(err)
	s.Equal(5000, q.BonusBalance)
	s.Equal(5000, q.BonusCap)
	s.Equal(5000, q.BonusApplied)
	s.Equal(50.0, q.Discount)
	s.Equal(150.0, q.FinalPrice)
}

func (s *BookingServiceSuite) TestQuickQuote() {
	q, err := s.svc.QuickQuote(s.ctx, &request.QuickQuoteRequest{
		TariffID: standardTariff.ID, StartTime: "10:00", EndTime: "14:00", SeatCount: 1, BonusUnits: 3000,
	})
	s.Require().NoError(err)
	s.Equal(4.0, q.Duration)
	s.Equal(400.0, q.OriginalPrice)
	s.Equal(3000, q.BonusApplied)
	s.Equal(370.0, q.FinalPrice)
	s.Equal(3700, q.EarnedBonus)

	_, err = s.svc.QuickQuote(s.ctx, &request.QuickQuoteRequest{TariffID: 99, StartTime: "10:00", EndTime: "14:00", SeatCount: 1})
	s.ErrorIs(err, ErrNotFound)
}

func (s *BookingServiceSuite) TestQuickQuote_NoProfileCallWithoutBonus() {
	s.profile.err = errUpstreamDown
	_, err := s.svc.QuickQuote(s.ctx, &request.QuickQuoteRequest{
		TariffID: standardTariff.ID, StartTime: "10:00", EndTime: "12:00", SeatCount: 2,
	})
	s.NoError(err)
}

func (s *BookingServiceSuite) TestDraftOwnership() {
	d, err := s.svc.CreateDraft(s.ctx)
	s.Require().NoError(err)

	_, err = s.svc.GetDraft(userCtx("intruder"), d.ID)
	s.ErrorIs(err, ErrForbidden)

	_, err = s.svc.GetDraft(context.Background(), d.ID)
	s.ErrorIs(err, ErrUnauthorized)

	_, err = s.svc.GetDraft(s.ctx, "not-a-uuid")
	s.ErrorIs(err, ErrNotFound)
}

func (s *BookingServiceSuite) TestPurgeExpiredDrafts() {
	s.draftWithWindow(standardTariff.ID)
	seqs := s.svc.(*bookingService).seqs
	s.Equal(1, seqs.Len())

	n, err := s.svc.PurgeExpiredDrafts(s.ctx, time.Hour)
	s.Require().NoError(err)
	s.Zero(n)
	s.Equal(1, seqs.Len())

	s.clock.Add(2 * time.Hour)
	n, err = s.svc.PurgeExpiredDrafts(s.ctx, time.Hour)
	s.Require().NoError(err)
	s.Equal(int64(1), n)
	s.Zero(seqs.Len())
}

func TestRulesFromConfig(t *testing.T) {
	rules := RulesFromConfig(utils.BookingConfig{MaxBonusShare: 0.3})
	assert.Equal(t, booking.BonusUnitsPerCurrency, rules.UnitsPerCurrency)
	assert.Equal(t, 0.3, rules.MaxShare)
	assert.Equal(t, booking.EarnRate, rules.EarnRate)

	require.Equal(t, booking.DefaultRules(), RulesFromConfig(utils.BookingConfig{}))
}
