package usecase

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"club-booking/internal/data/entity"
	"club-booking/internal/data/repository"
	"club-booking/pkg/apiclient"
	"club-booking/pkg/utils"
)

var errUpstreamDown = errors.New("upstream down")

func userCtx(userID string) context.Context {
	return utils.SetIdentityContext(context.Background(), utils.Identity{UserID: userID, Username: userID, Roles: []string{"USER"}})
}

type fakeTariffRepo struct {
	tariffs []entity.Tariff
	err     error
	saved   []entity.TariffInput
	deleted []int64
}

func (f *fakeTariffRepo) FindAll(ctx context.Context) ([]entity.Tariff, error) {
	return f.tariffs, f.err
}

func (f *fakeTariffRepo) FindByID(ctx context.Context, id int64) (*entity.Tariff, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.tariffs {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeTariffRepo) Create(ctx context.Context, in entity.TariffInput) (*entity.Tariff, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved = append(f.saved, in)
	return &entity.Tariff{ID: int64(100 + len(f.saved)), Name: in.Name, Price: in.Price, Hours: in.Hours, VIP: in.VIP}, nil
}

func (f *fakeTariffRepo) Update(ctx context.Context, id int64, in entity.TariffInput) (*entity.Tariff, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved = append(f.saved, in)
	return &entity.Tariff{ID: id, Name: in.Name, Price: in.Price, Hours: in.Hours, VIP: in.VIP}, nil
}

func (f *fakeTariffRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

type fakePCRepo struct {
	pcs     []entity.PC
	err     error
	updated map[int64]entity.PCUpdate
	enabled map[int64]bool
}

func (f *fakePCRepo) FindAll(ctx context.Context) ([]entity.PC, error) {
	return f.pcs, f.err
}

func (f *fakePCRepo) Update(ctx context.Context, id int64, in entity.PCUpdate) error {
	if f.updated == nil {
		f.updated = map[int64]entity.PCUpdate{}
	}
	f.updated[id] = in
	return f.err
}

func (f *fakePCRepo) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	if f.enabled == nil {
		f.enabled = map[int64]bool{}
	}
	f.enabled[id] = enabled
	return f.err
}

type fakeSessionRepo struct {
	mu        sync.Mutex
	sessions  []entity.Session
	mine      []entity.UserSession
	all       []entity.AdminSession
	created   []entity.SessionRequest
	cancelled []int64
	nextID    int64

	// hooks, optional
	onFindInRange func(call int) error
	failCreateAt  int
	rangeCalls    int
}

func (f *fakeSessionRepo) FindInRange(ctx context.Context, startDate, endDate time.Time) ([]entity.Session, error) {
	f.mu.Lock()
	f.rangeCalls++
	call := f.rangeCalls
	hook := f.onFindInRange
	f.mu.Unlock()

	if hook != nil {
		if err := hook(call); err != nil {
			return nil, err
		}
	}
	return f.sessions, nil
}

func (f *fakeSessionRepo) Create(ctx context.Context, req entity.SessionRequest) (*entity.BookedSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreateAt > 0 && len(f.created)+1 == f.failCreateAt {
		return nil, errUpstreamDown
	}
	f.created = append(f.created, req)
	f.nextID++
	return &entity.BookedSession{
		ID:        100 + f.nextID,
		PCID:      req.PCID,
		TariffID:  req.TariffID,
		Start:     req.Start,
		End:       req.End,
		TotalCost: 200,
		Status:    entity.SessionStatusPending,
	}, nil
}

func (f *fakeSessionRepo) FindMine(ctx context.Context) ([]entity.UserSession, error) {
	return f.mine, nil
}

func (f *fakeSessionRepo) FindAll(ctx context.Context) ([]entity.AdminSession, error) {
	return f.all, nil
}

func (f *fakeSessionRepo) Cancel(ctx context.Context, sessionID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, sessionID)
	return nil
}

type fakeProfileRepo struct {
	profile *entity.Profile
	err     error
	update  *entity.ProfileUpdate
}

func (f *fakeProfileRepo) Get(ctx context.Context) (*entity.Profile, error) {
	return f.profile, f.err
}

func (f *fakeProfileRepo) Update(ctx context.Context, in entity.ProfileUpdate) (*entity.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.update = &in
	p := *f.profile
	p.FullName, p.Email, p.Phone = in.FullName, in.Email, in.Phone
	f.profile = &p
	return &p, nil
}

type fakeUserRepo struct {
	users []entity.Profile
	err   error
	calls []string
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]entity.Profile, error) {
	return f.users, f.err
}

func (f *fakeUserRepo) find(id int64) (*entity.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, &apiclient.StatusError{Status: http.StatusNotFound, Message: "User not found"}
}

func (f *fakeUserRepo) Block(ctx context.Context, id int64) (*entity.Profile, error) {
	f.calls = append(f.calls, "block")
	u, err := f.find(id)
	if err != nil {
		return nil, err
	}
	u.Banned = true
	return u, nil
}

func (f *fakeUserRepo) Unblock(ctx context.Context, id int64) (*entity.Profile, error) {
	f.calls = append(f.calls, "unblock")
	u, err := f.find(id)
	if err != nil {
		return nil, err
	}
	u.Banned = false
	return u, nil
}

func (f *fakeUserRepo) AddCoins(ctx context.Context, id int64, coins int) (*entity.Profile, error) {
	f.calls = append(f.calls, "coins")
	u, err := f.find(id)
	if err != nil {
		return nil, err
	}
	u.BonusCoins += coins
	return u, nil
}

type fakeProfileCache struct {
	items map[string]*entity.Profile
}

func (f *fakeProfileCache) Get(ctx context.Context, userID string) (*entity.Profile, error) {
	return f.items[userID], nil
}

func (f *fakeProfileCache) Set(ctx context.Context, userID string, p *entity.Profile) error {
	if f.items == nil {
		f.items = map[string]*entity.Profile{}
	}
	f.items[userID] = p
	return nil
}

type fakeAccountRepo struct {
	lastRegistration repository.Registration
	result           *repository.AccountResult
	err              error
}

func (f *fakeAccountRepo) Login(ctx context.Context, creds repository.Credentials) (*repository.AccountResult, error) {
	return f.result, f.err
}

func (f *fakeAccountRepo) Register(ctx context.Context, reg repository.Registration) (*repository.AccountResult, error) {
	f.lastRegistration = reg
	return f.result, f.err
}

func (f *fakeAccountRepo) Logout(ctx context.Context) (*repository.AccountResult, error) {
	return f.result, f.err
}

func at(day, hour int) entity.LocalDateTime {
	return entity.NewLocalDateTime(time.Date(2026, 3, day, hour, 0, 0, 0, time.UTC))
}

var (
	floor1  = entity.Room{ID: 1, Name: "Floor 1", VIP: false}
	vipHall = entity.Room{ID: 2, Name: "VIP Hall", VIP: true}

	standardTariff = entity.Tariff{ID: 1, Name: "Standard 2h", Price: 200, Hours: 2}
	vipTariff      = entity.Tariff{ID: 2, Name: "VIP 2h", Price: 600, Hours: 2, VIP: true}
)

func clubPCs() []entity.PC {
	return []entity.PC{
		{ID: 11, Name: "PC-11", Enabled: true, Room: floor1},
		{ID: 12, Name: "PC-12", Enabled: true, Room: floor1},
		{ID: 13, Name: "PC-13", Enabled: false, Room: floor1},
		{ID: 21, Name: "PC-21", Enabled: true, Room: vipHall},
	}
}
