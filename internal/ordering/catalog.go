package ordering

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// VendorDetail is the variant descriptor carried by vendor items.
type VendorDetail struct {
	Code     string
	ImageRef string
}

// CatalogItem is either a custom item or a vendor item. Only vendor items
// carry a VendorDetail, and only they need temperature/size resolution.
type CatalogItem struct {
	id       string
	name     string
	category string
	vendor   *VendorDetail
}

func NewCustomItem(id, name, category string) CatalogItem {
	return CatalogItem{id: id, name: name, category: category}
}

func NewVendorItem(id, name, category, code, imageRef string) CatalogItem {
	return CatalogItem{
		id:       id,
		name:     name,
		category: category,
		vendor:   &VendorDetail{Code: code, ImageRef: imageRef},
	}
}

func (i CatalogItem) ID() string       { return i.id }
func (i CatalogItem) Name() string     { return i.name }
func (i CatalogItem) Category() string { return i.category }

func (i CatalogItem) Source() MenuMode {
	if i.vendor != nil {
		return ModeVendor
	}
	return ModeCustom
}

func (i CatalogItem) HasVariants() bool {
	return i.vendor != nil
}

func (i CatalogItem) Vendor() (VendorDetail, bool) {
	if i.vendor == nil {
		return VendorDetail{}, false
	}
	return *i.vendor, true
}

// Catalog is a category -> items view over one menu source. A nil *Catalog
// behaves as an empty one.
type Catalog struct {
	Mode       MenuMode
	categories []string
	items      map[string][]CatalogItem
	byID       map[string]CatalogItem
}

// NewCatalog groups items by category, listing categories in order of first
// appearance and keeping item order within each category.
func NewCatalog(mode MenuMode, items []CatalogItem) *Catalog {
	c := &Catalog{
		Mode:  mode,
		items: make(map[string][]CatalogItem),
		byID:  make(map[string]CatalogItem, len(items)),
	}
	for _, it := range items {
		if _, seen := c.items[it.category]; !seen {
			c.categories = append(c.categories, it.category)
		}
		c.items[it.category] = append(c.items[it.category], it)
		c.byID[it.id] = it
	}
	return c
}

func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) Items(category string) []CatalogItem {
	if c == nil {
		return nil
	}
	return c.items[category]
}

func (c *Catalog) Lookup(id string) (CatalogItem, bool) {
	if c == nil {
		return CatalogItem{}, false
	}
	it, ok := c.byID[id]
	return it, ok
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.byID)
}

// CatalogResolver decides which menu source is authoritative for a
// department and loads it.
type CatalogResolver struct {
	src    CatalogSource
	logger *zap.SugaredLogger
}

func NewCatalogResolver(src CatalogSource, logger *zap.SugaredLogger) *CatalogResolver {
	return &CatalogResolver{src: src, logger: logger}
}

// Resolve reads the department settings and loads only the active catalog.
// On failure it still returns a non-nil empty catalog so callers can render
// an empty category list.
func (r *CatalogResolver) Resolve(ctx context.Context, departmentID string) (*Catalog, Settings, error) {
	settings, err := r.src.Settings(ctx, departmentID)
	if err != nil {
		r.logger.Warnw("failed to load settings", "department_id", departmentID, "error", err)
		return NewCatalog(ModeCustom, nil), Settings{Mode: ModeCustom}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	if !settings.Mode.Valid() {
		settings.Mode = ModeCustom
	}

	catalog, err := r.Load(ctx, departmentID, settings.Mode)
	return catalog, settings, err
}

func (r *CatalogResolver) Load(ctx context.Context, departmentID string, mode MenuMode) (*Catalog, error) {
	var (
		items []CatalogItem
		err   error
	)
	if mode == ModeVendor {
		items, err = r.src.VendorMenus(ctx)
	} else {
		items, err = r.src.CustomMenus(ctx, departmentID)
	}
	if err != nil {
		r.logger.Warnw("failed to load catalog", "department_id", departmentID, "mode", mode, "error", err)
		return NewCatalog(mode, nil), fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	return NewCatalog(mode, items), nil
}

// Preview loads both catalogs at once, for switching the menu mode without a
// reload.
func (r *CatalogResolver) Preview(ctx context.Context, departmentID string) (custom, vendor *Catalog, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		custom, err = r.Load(gctx, departmentID, ModeCustom)
		return err
	})
	g.Go(func() error {
		var err error
		vendor, err = r.Load(gctx, departmentID, ModeVendor)
		return err
	})
	err = g.Wait()
	return custom, vendor, err
}

// Variants loads the temperature/size options for a vendor item. Custom
// items have none.
func (r *CatalogResolver) Variants(ctx context.Context, item CatalogItem) ([]Temperature, error) {
	v, ok := item.Vendor()
	if !ok {
		return nil, nil
	}
	temps, err := r.src.VendorOptions(ctx, v.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to load options for %s: %w", v.Code, err)
	}
	return temps, nil
}
