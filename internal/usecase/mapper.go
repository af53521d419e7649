package usecase

import (
	"club-booking/internal/booking"
	"club-booking/internal/data/entity"
	"club-booking/internal/dto/response"
)

func toTariffResponse(t entity.Tariff) response.TariffResponse {
	perHour, err := booking.PricePerHour(t)
	if err != nil {
		perHour = 0
	}
	return response.TariffResponse{
		ID:           t.ID,
		Name:         t.Name,
		Price:        response.Money(t.Price),
		Hours:        t.Hours,
		VIP:          t.VIP,
		PricePerHour: response.Money(perHour),
	}
}

func toPCResponse(pc entity.PC) response.PCResponse {
	return response.PCResponse{
		ID:       pc.ID,
		SeatID:   booking.FormatSeatID(pc.Room.ID, pc.ID),
		Name:     pc.Name,
		CPU:      pc.CPU,
		GPU:      pc.GPU,
		RAM:      pc.RAM,
		Monitor:  pc.Monitor,
		Enabled:  pc.Enabled,
		RoomID:   pc.Room.ID,
		RoomName: pc.Room.Name,
	}
}

func draftStep(d *entity.Draft) string {
	switch {
	case d.State.Tariff == nil:
		return response.StepTariff
	case !d.HasWindow():
		return response.StepTime
	case d.State.RoomID == nil:
		return response.StepRoom
	case len(d.State.Seats) == 0:
		return response.StepSeats
	default:
		return response.StepConfirm
	}
}

func toDraftResponse(d *entity.Draft) *response.DraftResponse {
	resp := &response.DraftResponse{
		ID:          d.ID.String(),
		Step:        draftStep(d),
		Generation:  d.Generation,
		Version:     d.Version,
		Date:        d.State.Date,
		StartTime:   d.State.StartTime,
		EndTime:     d.State.EndTime,
		DayOffset:   d.State.DayOffset,
		Duration:    d.State.Duration,
		WindowStart: d.State.WindowStart,
		WindowEnd:   d.State.WindowEnd,
		RoomID:      d.State.RoomID,
		Seats:       append([]string{}, d.State.Seats...),
		PCs:         make([]response.PCResponse, 0, len(d.State.PCsInfo)),
	}
	if d.State.Tariff != nil {
		t := toTariffResponse(*d.State.Tariff)
		resp.Tariff = &t
	}
	for _, pc := range d.State.PCsInfo {
		resp.PCs = append(resp.PCs, toPCResponse(pc))
	}
	return resp
}

func toQuoteResponse(tariffID int64, q booking.Quote) *response.QuoteResponse {
	return &response.QuoteResponse{
		TariffID:       tariffID,
		Duration:       q.Duration,
		PricePerHour:   response.Money(q.PricePerHour),
		SeatCount:      q.SeatCount,
		OriginalPrice:  response.Money(q.OriginalPrice),
		BonusBalance:   q.BonusBalance,
		BonusCap:       q.BonusCap,
		BonusRequested: q.BonusRequested,
		BonusApplied:   q.BonusApplied,
		Discount:       response.Money(q.Discount),
		FinalPrice:     response.Money(q.FinalPrice),
		EarnedBonus:    q.EarnedBonus,
	}
}

func toProfileResponse(p *entity.Profile, stale bool) *response.ProfileResponse {
	return &response.ProfileResponse{
		ID:         p.ID,
		Login:      p.Login,
		FullName:   p.FullName,
		Email:      p.Email,
		Phone:      p.Phone,
		Wallet:     response.Money(p.Wallet),
		PhotoPath:  p.PhotoPath,
		BonusCoins: p.BonusCoins,
		Banned:     p.Banned,
		Role:       p.Role,
		Stale:      stale,
	}
}

func toUserSessionResponse(s entity.UserSession) response.UserSessionResponse {
	resp := response.UserSessionResponse{
		SessionID:   s.ID,
		PC:          response.PCSummaryResponse{ID: s.PC.ID, Name: s.PC.Name, RoomName: s.PC.RoomName},
		StartTime:   s.Start,
		TotalCost:   response.Money(s.TotalCost),
		Status:      s.Status,
		Cancellable: s.Status.Cancellable(),
	}
	if !s.End.IsZero() {
		end := s.End
		resp.EndTime = &end
	}
	if s.Tariff != nil {
		t := toTariffResponse(*s.Tariff)
		resp.Tariff = &t
	}
	return resp
}

func toAdminUserResponse(p entity.Profile) response.AdminUserResponse {
	return response.AdminUserResponse{
		ID:         p.ID,
		Login:      p.Login,
		FullName:   p.FullName,
		Email:      p.Email,
		Phone:      p.Phone,
		Wallet:     response.Money(p.Wallet),
		PhotoPath:  p.PhotoPath,
		BonusCoins: p.BonusCoins,
		Banned:     p.Banned,
	}
}

func toAdminSessionResponse(s entity.AdminSession) response.AdminSessionResponse {
	return response.AdminSessionResponse{
		UserSessionResponse: toUserSessionResponse(s.UserSession),
		UserID:              s.UserID,
		UserLogin:           s.UserLogin,
	}
}
