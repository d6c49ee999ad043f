package ordering

import "time"

// DateLayout is the day granularity used for order dates.
const DateLayout = "2006-01-02"

type MenuMode string

const (
	ModeCustom MenuMode = "CUSTOM"
	ModeVendor MenuMode = "VENDOR"
)

func (m MenuMode) Valid() bool {
	return m == ModeCustom || m == ModeVendor
}

type Member struct {
	ID   string
	Name string
}

// OptionPreset is a saved personal option text, shared by all departments.
type OptionPreset struct {
	ID       string
	Name     string
	Category string
}

// Settings is the department configuration the engine reads. Cutoff is
// "HH:MM:SS" in department-local time and is meaningless when Is24Hours is set.
type Settings struct {
	Mode      MenuMode
	Is24Hours bool
	Cutoff    string
}

type Size struct {
	Code string
	Name string
}

type Temperature struct {
	Code  string
	Name  string
	Sizes []Size
}

func (t Temperature) size(code string) (Size, bool) {
	for _, s := range t.Sizes {
		if s.Code == code {
			return s, true
		}
	}
	return Size{}, false
}

// Order is a server-owned order as seen by the engine.
type Order struct {
	ID         string
	MemberID   string
	MemberName string
	Date       string
	Source     MenuMode
	ItemID     string
	ItemName   string
	Option     *string
	CreatedAt  time.Time
}

// OptionText returns the combined option or "" when the order has none.
func (o Order) OptionText() string {
	if o.Option == nil {
		return ""
	}
	return *o.Option
}

// OrderRequest is the create/replace payload. Exactly one of CustomItemID and
// VendorItemID is set, matching Source.
type OrderRequest struct {
	MemberID     string
	DepartmentID string
	Source       MenuMode
	CustomItemID string
	VendorItemID string
	Option       *string
	Date         string
}

func (r OrderRequest) ItemID() string {
	if r.Source == ModeVendor {
		return r.VendorItemID
	}
	return r.CustomItemID
}

func requestFromOrder(o Order, departmentID, date string) OrderRequest {
	req := OrderRequest{
		MemberID:     o.MemberID,
		DepartmentID: departmentID,
		Source:       o.Source,
		Option:       o.Option,
		Date:         date,
	}
	if o.Source == ModeVendor {
		req.VendorItemID = o.ItemID
	} else {
		req.CustomItemID = o.ItemID
	}
	return req
}

type SyncStatus string

const (
	SyncIdle      SyncStatus = "IDLE"
	SyncRunning   SyncStatus = "RUNNING"
	SyncCompleted SyncStatus = "COMPLETED"
	SyncFailed    SyncStatus = "FAILED"
)

func (s SyncStatus) Terminal() bool {
	return s == SyncCompleted || s == SyncFailed
}

type SyncProgress struct {
	Status          SyncStatus
	StepName        string
	OverallProgress int
	ProcessedCount  int
	TotalCount      int
	ErrorMessage    string
}
