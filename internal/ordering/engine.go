package ordering

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultRefreshInterval = 5 * time.Second
	DefaultTickInterval    = time.Second
	DefaultLocation        = "Asia/Seoul"
)

type EventKind int

const (
	EventLoaded EventKind = iota
	EventOrders
	EventAvailability
	EventTick
	EventCandidate
	EventDraft
	EventSync
	EventError
)

// Event tells a front end what to redraw.
type Event struct {
	Kind         EventKind
	DepartmentID string
	Err          error
}

type Config struct {
	Logger           *zap.SugaredLogger
	Now              func() time.Time
	Location         *time.Location
	RefreshInterval  time.Duration
	TickInterval     time.Duration
	SyncPollInterval time.Duration
}

// Engine is the ordering view: one department at a time, its catalog, its
// members and today's orders, the draft being assembled, and the background
// refresh loops.
type Engine struct {
	backend Backend
	logger  *zap.SugaredLogger
	now     func() time.Time
	loc     *time.Location
	cfg     Config

	resolver  *CatalogResolver
	selection *Selection
	gate      *Gate
	conflicts *ConflictResolver
	sync      *SyncMonitor
	scopes    ScopeTracker

	mu        sync.RWMutex
	catalog   *Catalog
	settings  Settings
	members   []Member
	orders    []Order
	candidate *ReorderCandidate
	clock     time.Time
	onEvent   func(Event)

	// bgMu orders bg.Add against bg.Wait.
	bgMu sync.Mutex
	bg   sync.WaitGroup
}

func NewEngine(backend Backend, cfg Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Location == nil {
		loc, err := time.LoadLocation(DefaultLocation)
		if err != nil {
			loc = time.Local
		}
		cfg.Location = loc
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}

	e := &Engine{
		backend: backend,
		logger:  cfg.Logger,
		now:     cfg.Now,
		loc:     cfg.Location,
		cfg:     cfg,
		catalog: NewCatalog(ModeCustom, nil),
	}
	e.resolver = NewCatalogResolver(backend, e.logger)
	e.selection = NewSelection(e.resolver, e.logger)
	e.gate = NewGate(backend, e.logger)
	e.conflicts = NewConflictResolver(backend, TodayIn(e.now, e.loc), e.logger)
	e.sync = NewSyncMonitor(backend, cfg.SyncPollInterval, e.logger)

	e.selection.OnChange(func(Draft) { e.emit(Event{Kind: EventDraft}) })
	e.sync.OnUpdate(func(SyncProgress) { e.emit(Event{Kind: EventSync}) })
	return e
}

// OnEvent registers the redraw callback. It may be called from background
// goroutines and must not call back into Open or SelectMember.
func (e *Engine) OnEvent(fn func(Event)) {
	e.mu.Lock()
	e.onEvent = fn
	e.mu.Unlock()
}

func (e *Engine) emit(ev Event) {
	e.mu.RLock()
	fn := e.onEvent
	e.mu.RUnlock()
	if ev.DepartmentID == "" {
		ev.DepartmentID = e.scopes.Current().DepartmentID
	}
	if fn != nil {
		fn(ev)
	}
}

// Open switches the view to departmentID. Everything tied to the previous
// department is cancelled and the draft is reset before loading. Load
// failures are returned but leave the view usable with whatever did load.
func (e *Engine) Open(ctx context.Context, departmentID string) error {
	if departmentID == "" {
		return ErrNoDepartment
	}
	scope := e.scopes.Switch(ctx, departmentID)
	e.waitBackground()

	e.selection.Reset()
	e.mu.Lock()
	e.catalog = NewCatalog(ModeCustom, nil)
	e.settings = Settings{}
	e.members = nil
	e.orders = nil
	e.candidate = nil
	e.clock = e.now()
	e.mu.Unlock()

	err := e.load(scope)

	if _, gerr := e.gate.Refresh(scope.Context(), departmentID); gerr != nil {
		e.logger.Warnw("availability check failed", "department_id", departmentID, "error", gerr)
	}

	e.spawn(func() { e.refreshLoop(scope) })
	e.spawn(func() { e.availabilityLoop(scope) })
	e.spawn(func() { e.tickLoop(scope) })

	e.logger.Infow("ordering view opened", "department_id", departmentID, "version", scope.Version)
	e.emit(Event{Kind: EventLoaded, DepartmentID: departmentID, Err: err})
	return err
}

func (e *Engine) load(scope Scope) error {
	ctx := scope.Context()
	var (
		catalog  *Catalog
		settings Settings
		members  []Member
		orders   []Order

		catalogErr, membersErr, ordersErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		catalog, settings, catalogErr = e.resolver.Resolve(ctx, scope.DepartmentID)
		return nil
	})
	g.Go(func() error {
		members, membersErr = e.backend.Members(ctx, scope.DepartmentID)
		return nil
	})
	g.Go(func() error {
		orders, ordersErr = e.backend.TodayOrders(ctx, scope.DepartmentID)
		return nil
	})
	_ = g.Wait()

	if !e.scopes.IsCurrent(scope) {
		return context.Canceled
	}

	e.mu.Lock()
	e.catalog = catalog
	e.settings = settings
	if membersErr == nil {
		e.members = members
	}
	if ordersErr == nil {
		e.orders = orders
	}
	e.mu.Unlock()

	var errs []error
	if catalogErr != nil {
		errs = append(errs, catalogErr)
	}
	if membersErr != nil {
		errs = append(errs, fmt.Errorf("failed to load members: %w", membersErr))
	}
	if ordersErr != nil {
		errs = append(errs, fmt.Errorf("failed to load today's orders: %w", ordersErr))
	}
	return errors.Join(errs...)
}

// spawn runs fn as a background task of the view. Background tasks never
// call spawn themselves.
func (e *Engine) spawn(fn func()) {
	e.bgMu.Lock()
	e.bg.Add(1)
	e.bgMu.Unlock()
	go func() {
		defer e.bg.Done()
		fn()
	}()
}

func (e *Engine) waitBackground() {
	e.bgMu.Lock()
	e.bg.Wait()
	e.bgMu.Unlock()
}

func (e *Engine) refreshLoop(scope Scope) {
	ctx := scope.Context()

	ticker := time.NewTicker(e.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := e.refreshOrders(scope); err != nil && ctx.Err() == nil {
				e.logger.Warnw("failed to refresh orders", "department_id", scope.DepartmentID, "error", err)
				e.emit(Event{Kind: EventError, DepartmentID: scope.DepartmentID, Err: err})
			}
		}
	}
}

func (e *Engine) availabilityLoop(scope Scope) {
	e.gate.Run(scope.Context(), scope.DepartmentID, e.cfg.RefreshInterval, func(bool, error) {
		if e.scopes.IsCurrent(scope) {
			e.emit(Event{Kind: EventAvailability, DepartmentID: scope.DepartmentID})
		}
	})
}

func (e *Engine) tickLoop(scope Scope) {
	ctx := scope.Context()

	ticker := time.NewTicker(e.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.mu.Lock()
			e.clock = e.now()
			e.mu.Unlock()
			e.emit(Event{Kind: EventTick, DepartmentID: scope.DepartmentID})
		}
	}
}

func (e *Engine) refreshOrders(scope Scope) error {
	orders, err := e.backend.TodayOrders(scope.Context(), scope.DepartmentID)
	if err != nil {
		return err
	}
	if !e.scopes.IsCurrent(scope) {
		return nil
	}
	e.mu.Lock()
	e.orders = orders
	e.mu.Unlock()
	e.emit(Event{Kind: EventOrders, DepartmentID: scope.DepartmentID})
	return nil
}

// Close stops every background activity of the view.
func (e *Engine) Close() {
	e.scopes.Close()
	e.sync.Stop()
	e.waitBackground()
	e.selection.Wait()
}

func (e *Engine) scope() (Scope, error) {
	s := e.scopes.Current()
	if !s.Valid() {
		return s, ErrNoDepartment
	}
	return s, nil
}

// SelectMember starts a new draft for memberID and looks up their reorder
// candidate in the background.
func (e *Engine) SelectMember(memberID string) (Draft, error) {
	scope, err := e.scope()
	if err != nil {
		return Draft{}, err
	}
	if !e.hasMember(memberID) {
		return e.selection.Draft(), invalid("member", fmt.Sprintf("unknown member %q", memberID))
	}

	d := e.selection.SelectMember(memberID)

	e.mu.Lock()
	e.candidate = nil
	mode := e.settings.Mode
	e.mu.Unlock()

	e.spawn(func() { e.lookupCandidate(scope, memberID, mode) })
	return d, nil
}

func (e *Engine) hasMember(id string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, m := range e.members {
		if m.ID == id {
			return true
		}
	}
	return false
}

func (e *Engine) lookupCandidate(scope Scope, memberID string, mode MenuMode) {
	c, err := e.conflicts.Candidate(scope.Context(), memberID, mode)
	if !e.scopes.IsCurrent(scope) || e.selection.Draft().MemberID() != memberID {
		return
	}
	if err != nil {
		e.logger.Warnw("failed to look up reorder candidate", "member_id", memberID, "error", err)
		e.emit(Event{Kind: EventError, DepartmentID: scope.DepartmentID, Err: err})
		return
	}

	e.mu.Lock()
	e.candidate = c
	e.mu.Unlock()
	e.emit(Event{Kind: EventCandidate, DepartmentID: scope.DepartmentID})
}

// RefreshCandidate looks the candidate up synchronously for the current
// member.
func (e *Engine) RefreshCandidate(ctx context.Context) (*ReorderCandidate, error) {
	memberID := e.selection.Draft().MemberID()
	if memberID == "" {
		return nil, invalid("member", "select a member first")
	}
	c, err := e.conflicts.Candidate(ctx, memberID, e.Settings().Mode)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	e.candidate = c
	e.mu.Unlock()
	return c, nil
}

func (e *Engine) Candidate() *ReorderCandidate {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.candidate == nil {
		return nil
	}
	c := *e.candidate
	return &c
}

func (e *Engine) SelectCategory(category string) (Draft, error) {
	found := false
	for _, c := range e.Catalog().Categories() {
		if c == category {
			found = true
			break
		}
	}
	if !found {
		return e.selection.Draft(), invalid("category", fmt.Sprintf("unknown category %q", category))
	}
	return e.selection.SelectCategory(category)
}

func (e *Engine) SelectItem(itemID string) (Draft, error) {
	scope, err := e.scope()
	if err != nil {
		return Draft{}, err
	}
	item, ok := e.Catalog().Lookup(itemID)
	if !ok {
		return e.selection.Draft(), invalid("item", fmt.Sprintf("unknown item %q", itemID))
	}
	return e.selection.SelectItem(scope.Context(), item)
}

func (e *Engine) SelectTemperature(code string) (Draft, error) {
	return e.selection.SelectTemperature(code)
}

func (e *Engine) SelectSize(code string) (Draft, error) {
	return e.selection.SelectSize(code)
}

func (e *Engine) SetPersonalOption(text string) Draft {
	return e.selection.SetPersonalOption(text)
}

func (e *Engine) Presets(ctx context.Context) ([]OptionPreset, error) {
	return e.backend.OptionPresets(ctx)
}

// ApplyPreset adds the named preset to the draft's personal option.
func (e *Engine) ApplyPreset(ctx context.Context, name string) (Draft, error) {
	presets, err := e.Presets(ctx)
	if err != nil {
		return e.selection.Draft(), fmt.Errorf("failed to load presets: %w", err)
	}
	p, ok := FindPreset(presets, name)
	if !ok {
		return e.selection.Draft(), invalid("preset", fmt.Sprintf("unknown preset %q", name))
	}
	return e.selection.AppendPersonalOption(p.Name), nil
}

func (e *Engine) Draft() Draft {
	return e.selection.Draft()
}

// WaitVariants blocks until pending option loads have been applied.
func (e *Engine) WaitVariants() {
	e.selection.Wait()
}

// ensureOpen re-checks availability right before a mutating call.
func (e *Engine) ensureOpen(ctx context.Context, departmentID string) error {
	open, err := e.gate.Refresh(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("failed to check availability: %w", err)
	}
	if !open {
		return ErrOrderingClosed
	}
	return nil
}

func (e *Engine) mutationFailed(err error) error {
	if errors.Is(err, ErrOrderingClosed) {
		e.gate.markClosed()
		e.emit(Event{Kind: EventAvailability})
	}
	return err
}

// Submit sends the current draft. A member who already ordered today gets an
// OutcomeNeedsConfirmation and the draft is kept for ConfirmChange.
func (e *Engine) Submit(ctx context.Context) (SubmitOutcome, error) {
	scope, err := e.scope()
	if err != nil {
		return SubmitOutcome{}, err
	}
	draft := e.selection.Draft()
	if err := draft.Ready(); err != nil {
		return SubmitOutcome{}, err
	}
	if err := e.ensureOpen(ctx, scope.DepartmentID); err != nil {
		return SubmitOutcome{}, e.mutationFailed(err)
	}

	out, err := e.conflicts.Submit(ctx, scope.DepartmentID, draft)
	if err != nil {
		return SubmitOutcome{}, e.mutationFailed(err)
	}
	if out.Kind == OutcomeCreated {
		e.afterMutation(scope)
	}
	return out, nil
}

// ConfirmChange applies a pending change returned by Submit.
func (e *Engine) ConfirmChange(ctx context.Context, p PendingChange) (*Order, error) {
	scope, err := e.scope()
	if err != nil {
		return nil, err
	}
	if err := e.ensureOpen(ctx, scope.DepartmentID); err != nil {
		return nil, e.mutationFailed(err)
	}
	o, err := e.conflicts.Confirm(ctx, p)
	if err != nil {
		return nil, e.mutationFailed(err)
	}
	e.afterMutation(scope)
	return o, nil
}

// CancelChange drops a pending change; the draft is reset.
func (e *Engine) CancelChange() {
	e.selection.Reset()
}

// Reorder repeats the current reorder candidate for today.
func (e *Engine) Reorder(ctx context.Context) (*Order, error) {
	scope, err := e.scope()
	if err != nil {
		return nil, err
	}
	c := e.Candidate()
	if c == nil {
		return nil, ErrNoCandidate
	}
	if err := e.ensureOpen(ctx, scope.DepartmentID); err != nil {
		return nil, e.mutationFailed(err)
	}
	o, err := e.conflicts.Reorder(ctx, scope.DepartmentID, *c, e.Settings().Mode)
	if err != nil {
		return nil, e.mutationFailed(err)
	}
	e.afterMutation(scope)
	return o, nil
}

func (e *Engine) CancelOrder(ctx context.Context, orderID string) error {
	scope, err := e.scope()
	if err != nil {
		return err
	}
	if err := e.ensureOpen(ctx, scope.DepartmentID); err != nil {
		return e.mutationFailed(err)
	}
	if err := e.backend.DeleteOrder(ctx, orderID); err != nil {
		return e.mutationFailed(err)
	}
	if err := e.refreshOrders(scope); err != nil {
		e.logger.Warnw("failed to refresh orders", "department_id", scope.DepartmentID, "error", err)
	}
	return nil
}

func (e *Engine) afterMutation(scope Scope) {
	e.selection.Reset()
	e.mu.Lock()
	e.candidate = nil
	e.mu.Unlock()
	if err := e.refreshOrders(scope); err != nil {
		e.logger.Warnw("failed to refresh orders", "department_id", scope.DepartmentID, "error", err)
	}
}

// StartSync triggers the vendor sync, or follows the one already running.
// When the department uses the vendor menu the catalog is reloaded after a
// successful sync.
func (e *Engine) StartSync(ctx context.Context) error {
	if err := e.sync.Start(ctx); err != nil {
		return err
	}
	scope := e.scopes.Current()
	if !scope.Valid() {
		return nil
	}

	e.spawn(func() {
		p, err := e.sync.Wait(scope.Context())
		if err != nil || p.Status != SyncCompleted || e.Settings().Mode != ModeVendor {
			return
		}
		catalog, err := e.resolver.Load(scope.Context(), scope.DepartmentID, ModeVendor)
		if !e.scopes.IsCurrent(scope) {
			return
		}
		if err != nil {
			e.emit(Event{Kind: EventError, DepartmentID: scope.DepartmentID, Err: err})
			return
		}
		e.mu.Lock()
		e.catalog = catalog
		e.mu.Unlock()
		e.emit(Event{Kind: EventLoaded, DepartmentID: scope.DepartmentID})
	})
	return nil
}

func (e *Engine) Sync() *SyncMonitor {
	return e.sync
}

func (e *Engine) DepartmentID() string {
	return e.scopes.Current().DepartmentID
}

func (e *Engine) Catalog() *Catalog {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog
}

func (e *Engine) Settings() Settings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings
}

func (e *Engine) Members() []Member {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]Member(nil), e.members...)
}

func (e *Engine) TodayOrders() []Order {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]Order(nil), e.orders...)
}

// SubmitEnabled is the advisory state of the submit control.
func (e *Engine) SubmitEnabled() bool {
	return e.gate.Open() && e.selection.Draft().Ready() == nil
}

func (e *Engine) OrderingOpen() bool {
	return e.gate.Open()
}

// AvailabilityError is the error of the last availability check, nil when it
// succeeded.
func (e *Engine) AvailabilityError() error {
	return e.gate.LastError()
}

// PreviewCatalogs loads both the custom and the vendor catalog of the open
// department.
func (e *Engine) PreviewCatalogs(ctx context.Context) (custom, vendor *Catalog, err error) {
	scope, err := e.scope()
	if err != nil {
		return nil, nil, err
	}
	return e.resolver.Preview(ctx, scope.DepartmentID)
}

// Now is the wall clock as of the last tick, in department-local time.
func (e *Engine) Now() time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.clock.In(e.loc)
}

func (e *Engine) Today() string {
	return e.now().In(e.loc).Format(DateLayout)
}
