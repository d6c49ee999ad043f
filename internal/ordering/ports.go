package ordering

import "context"

// CatalogSource serves settings and both menu catalogs.
type CatalogSource interface {
	Settings(ctx context.Context, departmentID string) (Settings, error)
	CustomMenus(ctx context.Context, departmentID string) ([]CatalogItem, error)
	VendorMenus(ctx context.Context) ([]CatalogItem, error)
	VendorOptions(ctx context.Context, code string) ([]Temperature, error)
}

type TeamSource interface {
	Members(ctx context.Context, departmentID string) ([]Member, error)
}

type PresetSource interface {
	OptionPresets(ctx context.Context) ([]OptionPreset, error)
}

type AvailabilitySource interface {
	OrderAvailable(ctx context.Context, departmentID string) (bool, error)
}

// OrderStore is the order API. LatestOrder returns ErrNotFound when the member
// never ordered; CreateOrder returns ErrAlreadyOrdered on a duplicate day.
type OrderStore interface {
	TodayOrders(ctx context.Context, departmentID string) ([]Order, error)
	LatestOrder(ctx context.Context, memberID string) (*Order, error)
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
	UpdateOrder(ctx context.Context, id string, req OrderRequest) (*Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// SyncAPI is the vendor sync surface. TriggerSync returns ErrSyncInProgress
// when a sync is already running.
type SyncAPI interface {
	TriggerSync(ctx context.Context) error
	SyncStatus(ctx context.Context) (SyncProgress, error)
	SyncInProgress(ctx context.Context) (bool, error)
}

type Backend interface {
	CatalogSource
	TeamSource
	PresetSource
	AvailabilitySource
	OrderStore
	SyncAPI
}
