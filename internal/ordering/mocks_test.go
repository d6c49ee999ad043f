package ordering

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockBackend is an in-memory Backend. It enforces one order per member and
// day the way the real server does.
type MockBackend struct {
	mu sync.Mutex

	settings  map[string]Settings
	custom    map[string][]CatalogItem
	vendor    []CatalogItem
	options   map[string][]Temperature
	members   map[string][]Member
	presets   []OptionPreset
	orders    []Order
	latest    map[string]Order
	available bool
	nextID    int
	today     string

	syncInProgress bool
	syncStatuses   []SyncProgress
	syncTriggers   int
	statusCalls    int

	calls map[string]int

	SettingsFunc       func(ctx context.Context, departmentID string) (Settings, error)
	CustomMenusFunc    func(ctx context.Context, departmentID string) ([]CatalogItem, error)
	VendorOptionsFunc  func(ctx context.Context, code string) ([]Temperature, error)
	TodayOrdersFunc    func(ctx context.Context, departmentID string) ([]Order, error)
	OrderAvailableFunc func(ctx context.Context, departmentID string) (bool, error)
	CreateOrderFunc    func(ctx context.Context, req OrderRequest) (*Order, error)
	TriggerSyncFunc    func(ctx context.Context) error
}

func NewMockBackend(today string) *MockBackend {
	return &MockBackend{
		settings:  make(map[string]Settings),
		custom:    make(map[string][]CatalogItem),
		options:   make(map[string][]Temperature),
		members:   make(map[string][]Member),
		latest:    make(map[string]Order),
		available: true,
		today:     today,
		calls:     make(map[string]int),
	}
}

func (m *MockBackend) call(name string) {
	m.mu.Lock()
	m.calls[name]++
	m.mu.Unlock()
}

func (m *MockBackend) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *MockBackend) Settings(ctx context.Context, departmentID string) (Settings, error) {
	m.call("Settings")
	if m.SettingsFunc != nil {
		return m.SettingsFunc(ctx, departmentID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.settings[departmentID]
	if !ok {
		return Settings{Mode: ModeCustom, Cutoff: "09:00:00"}, nil
	}
	return s, nil
}

func (m *MockBackend) CustomMenus(ctx context.Context, departmentID string) ([]CatalogItem, error) {
	m.call("CustomMenus")
	if m.CustomMenusFunc != nil {
		return m.CustomMenusFunc(ctx, departmentID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.custom[departmentID], nil
}

func (m *MockBackend) VendorMenus(ctx context.Context) ([]CatalogItem, error) {
	m.call("VendorMenus")
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vendor, nil
}

func (m *MockBackend) VendorOptions(ctx context.Context, code string) ([]Temperature, error) {
	m.call("VendorOptions")
	if m.VendorOptionsFunc != nil {
		return m.VendorOptionsFunc(ctx, code)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.options[code], nil
}

func (m *MockBackend) Members(ctx context.Context, departmentID string) ([]Member, error) {
	m.call("Members")
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.members[departmentID], nil
}

func (m *MockBackend) OptionPresets(ctx context.Context) ([]OptionPreset, error) {
	m.call("OptionPresets")
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]OptionPreset(nil), m.presets...), nil
}

func (m *MockBackend) OrderAvailable(ctx context.Context, departmentID string) (bool, error) {
	m.call("OrderAvailable")
	if m.OrderAvailableFunc != nil {
		return m.OrderAvailableFunc(ctx, departmentID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available, nil
}

func (m *MockBackend) TodayOrders(ctx context.Context, departmentID string) ([]Order, error) {
	m.call("TodayOrders")
	if m.TodayOrdersFunc != nil {
		return m.TodayOrdersFunc(ctx, departmentID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Order
	for _, o := range m.orders {
		if o.Date == m.today {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *MockBackend) LatestOrder(ctx context.Context, memberID string) (*Order, error) {
	m.call("LatestOrder")
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.latest[memberID]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (m *MockBackend) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	m.call("CreateOrder")
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, req)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.available {
		return nil, &APIError{Status: 403, Code: "ORDERING_CLOSED", Kind: ErrOrderingClosed}
	}
	for _, o := range m.orders {
		if o.MemberID == req.MemberID && o.Date == req.Date {
			return nil, &APIError{Status: 409, Code: "ALREADY_ORDERED", Message: "already ordered", Kind: ErrAlreadyOrdered}
		}
	}
	m.nextID++
	o := Order{
		ID:        fmt.Sprintf("o%d", m.nextID),
		MemberID:  req.MemberID,
		Date:      req.Date,
		Source:    req.Source,
		ItemID:    req.ItemID(),
		Option:    req.Option,
		CreatedAt: time.Now(),
	}
	m.orders = append(m.orders, o)
	return &o, nil
}

// insertOrder stores an order directly, bypassing CreateOrder.
func (m *MockBackend) insertOrder(o Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, o)
}

func (m *MockBackend) UpdateOrder(ctx context.Context, id string, req OrderRequest) (*Order, error) {
	m.call("UpdateOrder")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID != id {
			continue
		}
		m.orders[i].Source = req.Source
		m.orders[i].ItemID = req.ItemID()
		m.orders[i].Option = req.Option
		o := m.orders[i]
		return &o, nil
	}
	return nil, ErrNotFound
}

func (m *MockBackend) DeleteOrder(ctx context.Context, id string) error {
	m.call("DeleteOrder")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MockBackend) Orders() []Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Order(nil), m.orders...)
}

func (m *MockBackend) TriggerSync(ctx context.Context) error {
	m.call("TriggerSync")
	if m.TriggerSyncFunc != nil {
		return m.TriggerSyncFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncTriggers++
	return nil
}

// SyncStatus returns the queued statuses in order, repeating the last one.
func (m *MockBackend) SyncStatus(ctx context.Context) (SyncProgress, error) {
	m.call("SyncStatus")
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.syncStatuses) == 0 {
		return SyncProgress{Status: SyncIdle}, nil
	}
	i := m.statusCalls
	if i >= len(m.syncStatuses) {
		i = len(m.syncStatuses) - 1
	}
	m.statusCalls++
	return m.syncStatuses[i], nil
}

func (m *MockBackend) SyncInProgress(ctx context.Context) (bool, error) {
	m.call("SyncInProgress")
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.syncInProgress, nil
}
