package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Beka01247/coffee-order/internal/domain"
	"github.com/Beka01247/coffee-order/internal/queue"
	"github.com/Beka01247/coffee-order/internal/vendor"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	kst     = time.FixedZone("KST", 9*60*60)
	testNow = time.Date(2026, 10, 18, 8, 30, 0, 0, kst)
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func fixedClock(t time.Time) Clock {
	return NewClock(func() time.Time { return t }, kst)
}

func notFound(kind string, id primitive.ObjectID) error {
	return fmt.Errorf("%s %s: %w", kind, id.Hex(), domain.ErrNotFound)
}

type fakeDepartmentRepo struct {
	mu          sync.Mutex
	departments map[primitive.ObjectID]domain.Department
}

func newFakeDepartmentRepo(ids ...primitive.ObjectID) *fakeDepartmentRepo {
	r := &fakeDepartmentRepo{departments: make(map[primitive.ObjectID]domain.Department)}
	for _, id := range ids {
		r.departments[id] = domain.Department{ID: id, Name: "dept-" + id.Hex()[:4]}
	}
	return r
}

func (r *fakeDepartmentRepo) Create(ctx context.Context, d *domain.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	r.departments[d.ID] = *d
	return nil
}

func (r *fakeDepartmentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.departments[id]
	if !ok || d.Deleted {
		return nil, notFound("department", id)
	}
	return &d, nil
}

func (r *fakeDepartmentRepo) List(ctx context.Context) ([]domain.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Department{}
	for _, d := range r.departments {
		if !d.Deleted {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDepartmentRepo) Rename(ctx context.Context, id primitive.ObjectID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.departments[id]
	if !ok || d.Deleted {
		return notFound("department", id)
	}
	d.Name = name
	r.departments[id] = d
	return nil
}

func (r *fakeDepartmentRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.departments[id]
	if !ok || d.Deleted {
		return notFound("department", id)
	}
	d.Deleted = true
	r.departments[id] = d
	return nil
}

type fakeTeamRepo struct {
	mu    sync.Mutex
	teams map[primitive.ObjectID]domain.Team
}

func newFakeTeamRepo(teams ...domain.Team) *fakeTeamRepo {
	r := &fakeTeamRepo{teams: make(map[primitive.ObjectID]domain.Team)}
	for _, t := range teams {
		r.teams[t.ID] = t
	}
	return r
}

func (r *fakeTeamRepo) Create(ctx context.Context, t *domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	r.teams[t.ID] = *t
	return nil
}

func (r *fakeTeamRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.teams[id]
	if !ok {
		return nil, notFound("team", id)
	}
	return &t, nil
}

func (r *fakeTeamRepo) ListByDepartment(ctx context.Context, departmentID primitive.ObjectID) ([]domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Team{}
	for _, t := range r.teams {
		if t.DepartmentID == departmentID && !t.Deleted {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeTeamRepo) Rename(ctx context.Context, id primitive.ObjectID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.teams[id]
	if !ok || t.Deleted {
		return notFound("team", id)
	}
	t.Name = name
	r.teams[id] = t
	return nil
}

func (r *fakeTeamRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.teams[id]
	if !ok || t.Deleted {
		return notFound("team", id)
	}
	t.Deleted = true
	r.teams[id] = t
	return nil
}

type fakeMenuRepo struct {
	mu       sync.Mutex
	menus    map[primitive.ObjectID]domain.Menu
	replaced int
}

func newFakeMenuRepo(menus ...domain.Menu) *fakeMenuRepo {
	r := &fakeMenuRepo{menus: make(map[primitive.ObjectID]domain.Menu)}
	for _, m := range menus {
		r.menus[m.ID] = m
	}
	return r
}

func (r *fakeMenuRepo) Create(ctx context.Context, m *domain.Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	r.menus[m.ID] = *m
	return nil
}

func (r *fakeMenuRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Menu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.menus[id]
	if !ok {
		return nil, notFound("menu", id)
	}
	return &m, nil
}

func (r *fakeMenuRepo) ListByDepartment(ctx context.Context, departmentID primitive.ObjectID) ([]domain.Menu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Menu{}
	for _, m := range r.menus {
		if m.DepartmentID == departmentID && !m.Deleted {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *fakeMenuRepo) Update(ctx context.Context, m *domain.Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.menus[m.ID]; !ok {
		return notFound("menu", m.ID)
	}
	r.menus[m.ID] = *m
	return nil
}

func (r *fakeMenuRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.menus[id]
	if !ok || m.Deleted {
		return notFound("menu", id)
	}
	m.Deleted = true
	r.menus[id] = m
	return nil
}

func (r *fakeMenuRepo) ReplaceDepartment(ctx context.Context, departmentID primitive.ObjectID, menus []domain.Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, m := range r.menus {
		if m.DepartmentID == departmentID {
			m.Deleted = true
			r.menus[id] = m
		}
	}
	for _, m := range menus {
		m.ID = primitive.NewObjectID()
		m.DepartmentID = departmentID
		r.menus[m.ID] = m
	}
	r.replaced++
	return nil
}

type fakeVendorRepo struct {
	mu      sync.Mutex
	menus   map[string]domain.VendorMenu
	options []domain.VendorMenuOption
	cleared int
}

func newFakeVendorRepo(menus ...domain.VendorMenu) *fakeVendorRepo {
	r := &fakeVendorRepo{menus: make(map[string]domain.VendorMenu)}
	for _, m := range menus {
		r.menus[m.Code] = m
	}
	return r
}

func (r *fakeVendorRepo) List(ctx context.Context) ([]domain.VendorMenu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.VendorMenu{}
	for _, m := range r.menus {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *fakeVendorRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.VendorMenu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.menus {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, notFound("vendor menu", id)
}

func (r *fakeVendorRepo) Upsert(ctx context.Context, m *domain.VendorMenu) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.menus[m.Code]
	if ok {
		m.ID = existing.ID
		m.LocalImage = existing.LocalImage
	} else {
		m.ID = primitive.NewObjectID()
	}
	r.menus[m.Code] = *m
	return !ok, nil
}

func (r *fakeVendorRepo) SetLocalImage(ctx context.Context, code, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.menus[code]
	if !ok {
		return fmt.Errorf("vendor menu %s: %w", code, domain.ErrNotFound)
	}
	m.LocalImage = path
	r.menus[code] = m
	return nil
}

func (r *fakeVendorRepo) ListOptions(ctx context.Context, code string) ([]domain.VendorMenuOption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.VendorMenuOption{}
	for _, o := range r.options {
		if o.MenuCode == code {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeVendorRepo) DeleteAllOptions(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.options = nil
	r.cleared++
	return nil
}

func (r *fakeVendorRepo) InsertOptions(ctx context.Context, rows []domain.VendorMenuOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.options = append(r.options, rows...)
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders []domain.Order
	seq    int
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.orders {
		if !existing.Deleted && existing.TeamID == o.TeamID && existing.OrderDate == o.OrderDate {
			return domain.ErrAlreadyOrdered
		}
	}
	o.ID = primitive.NewObjectID()
	r.seq++
	o.CreatedAt = testNow.Add(time.Duration(r.seq) * time.Second)
	r.orders = append(r.orders, *o)
	return nil
}

func (r *fakeOrderRepo) find(id primitive.ObjectID) int {
	for i, o := range r.orders {
		if o.ID == id && !o.Deleted {
			return i
		}
	}
	return -1
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return nil, notFound("order", id)
	}
	o := r.orders[i]
	return &o, nil
}

func (r *fakeOrderRepo) ListByDate(ctx context.Context, departmentID primitive.ObjectID, date string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Order{}
	for _, o := range r.orders {
		if !o.Deleted && o.DepartmentID == departmentID && o.OrderDate == date {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) CountByDate(ctx context.Context, departmentID primitive.ObjectID, date string) (int64, error) {
	orders, _ := r.ListByDate(ctx, departmentID, date)
	return int64(len(orders)), nil
}

func (r *fakeOrderRepo) GetByTeamAndDate(ctx context.Context, teamID primitive.ObjectID, date string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if !o.Deleted && o.TeamID == teamID && o.OrderDate == date {
			return &o, nil
		}
	}
	return nil, notFound("team order", teamID)
}

func (r *fakeOrderRepo) LatestByTeam(ctx context.Context, teamID primitive.ObjectID) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *domain.Order
	for i := range r.orders {
		o := r.orders[i]
		if o.Deleted || o.TeamID != teamID {
			continue
		}
		if latest == nil || o.OrderDate > latest.OrderDate ||
			(o.OrderDate == latest.OrderDate && o.CreatedAt.After(latest.CreatedAt)) {
			latest = &o
		}
	}
	if latest == nil {
		return nil, notFound("latest order", teamID)
	}
	return latest, nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(o.ID)
	if i < 0 {
		return notFound("order", o.ID)
	}
	r.orders[i] = *o
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return notFound("order", id)
	}
	r.orders[i].Deleted = true
	return nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings map[primitive.ObjectID]domain.Settings
	writes   int
}

func newFakeSettingsRepo(settings ...domain.Settings) *fakeSettingsRepo {
	r := &fakeSettingsRepo{settings: make(map[primitive.ObjectID]domain.Settings)}
	for _, s := range settings {
		r.settings[s.DepartmentID] = s
	}
	return r
}

func (r *fakeSettingsRepo) GetByDepartment(ctx context.Context, departmentID primitive.ObjectID) (*domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.settings[departmentID]
	if !ok {
		return nil, notFound("settings", departmentID)
	}
	return &s, nil
}

func (r *fakeSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	r.settings[s.DepartmentID] = *s
	r.writes++
	return nil
}

type fakeSyncRepo struct {
	mu         sync.Mutex
	owner      string
	expires    time.Time
	progress   *domain.SyncProgress
	saves      []domain.SyncProgress
	now        func() time.Time
	releasedBy []string
}

func newFakeSyncRepo(now func() time.Time) *fakeSyncRepo {
	return &fakeSyncRepo{now: now}
}

func (r *fakeSyncRepo) AcquireLock(ctx context.Context, owner string, lease time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.owner != "" && r.owner != owner && r.now().Before(r.expires) {
		return false, nil
	}
	r.owner = owner
	r.expires = r.now().Add(lease)
	return true, nil
}

func (r *fakeSyncRepo) ReleaseLock(ctx context.Context, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.owner == owner {
		r.owner = ""
	}
	r.releasedBy = append(r.releasedBy, owner)
	return nil
}

func (r *fakeSyncRepo) LockHeld(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.owner != "" && r.now().Before(r.expires), nil
}

func (r *fakeSyncRepo) SaveProgress(ctx context.Context, p *domain.SyncProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = domain.SyncProgressID
	p.UpdatedAt = r.now()
	cp := *p
	r.progress = &cp
	r.saves = append(r.saves, cp)
	return nil
}

func (r *fakeSyncRepo) GetProgress(ctx context.Context) (*domain.SyncProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress == nil {
		return nil, fmt.Errorf("sync progress: %w", domain.ErrNotFound)
	}
	cp := *r.progress
	return &cp, nil
}

type fakeBroker struct {
	mu        sync.Mutex
	published map[string][][]byte
	err       error
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{published: make(map[string][][]byte)}
}

func (b *fakeBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.published[queueName] = append(b.published[queueName], message)
	return nil
}

func (b *fakeBroker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	return errors.New("not supported")
}

func (b *fakeBroker) Close() error { return nil }

type fakeCatalog struct {
	menus        []vendor.MenuItem
	menusErr     error
	temperatures map[string][]string
	sizes        map[string][]vendor.SizeOption
}

func (c *fakeCatalog) FetchMenus(ctx context.Context) ([]vendor.MenuItem, error) {
	return c.menus, c.menusErr
}

func (c *fakeCatalog) FetchTemperatures(ctx context.Context, code string) ([]string, error) {
	return c.temperatures[code], nil
}

func (c *fakeCatalog) FetchSizes(ctx context.Context, code, temperature string) ([]vendor.SizeOption, error) {
	return c.sizes[code+"/"+temperature], nil
}

type fakeImages struct {
	mu     sync.Mutex
	failed map[string]bool
	calls  int
}

func (f *fakeImages) Download(ctx context.Context, code, imageURL string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failed[code] {
		return "", errors.New("boom")
	}
	return "/images/vendor/" + code + ".jpg", nil
}

type fakeTransactor struct {
	calls int
}

func (t *fakeTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type fakeSheets struct {
	menus []domain.Menu
	err   error
}

func (f *fakeSheets) ReadMenus(ctx context.Context, spreadsheetID, readRange string) ([]domain.Menu, error) {
	return f.menus, f.err
}

type fakePersonalOptionRepo struct {
	mu      sync.Mutex
	options map[primitive.ObjectID]domain.PersonalOption
}

func newFakePersonalOptionRepo(options ...domain.PersonalOption) *fakePersonalOptionRepo {
	r := &fakePersonalOptionRepo{options: make(map[primitive.ObjectID]domain.PersonalOption)}
	for _, o := range options {
		if o.ID.IsZero() {
			o.ID = primitive.NewObjectID()
		}
		r.options[o.ID] = o
	}
	return r
}

func (r *fakePersonalOptionRepo) Create(ctx context.Context, o *domain.PersonalOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	r.options[o.ID] = *o
	return nil
}

func (r *fakePersonalOptionRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PersonalOption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.options[id]
	if !ok || o.Deleted {
		return nil, notFound("personal option", id)
	}
	return &o, nil
}

func (r *fakePersonalOptionRepo) List(ctx context.Context) ([]domain.PersonalOption, error) {
	return r.filter(func(domain.PersonalOption) bool { return true }), nil
}

func (r *fakePersonalOptionRepo) ListByCategory(ctx context.Context, category string) ([]domain.PersonalOption, error) {
	return r.filter(func(o domain.PersonalOption) bool { return o.GroupCategory() == category }), nil
}

func (r *fakePersonalOptionRepo) filter(keep func(domain.PersonalOption) bool) []domain.PersonalOption {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.PersonalOption{}
	for _, o := range r.options {
		if !o.Deleted && keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].SortOrder < out[j].SortOrder
	})
	return out
}

func (r *fakePersonalOptionRepo) Update(ctx context.Context, o *domain.PersonalOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.options[o.ID]
	if !ok || cur.Deleted {
		return notFound("personal option", o.ID)
	}
	r.options[o.ID] = *o
	return nil
}

func (r *fakePersonalOptionRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.options[id]
	if !ok || o.Deleted {
		return notFound("personal option", id)
	}
	o.Deleted = true
	r.options[id] = o
	return nil
}
