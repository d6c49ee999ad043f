package ordering

import (
	"fmt"
	"strings"
)

type Stage int

const (
	StageEmpty Stage = iota
	StageMemberChosen
	StageCategoryChosen
	StageItemChosen
	StageTemperatureChosen
	StageSizeChosen
)

func (s Stage) String() string {
	switch s {
	case StageEmpty:
		return "empty"
	case StageMemberChosen:
		return "member_chosen"
	case StageCategoryChosen:
		return "category_chosen"
	case StageItemChosen:
		return "item_chosen"
	case StageTemperatureChosen:
		return "temperature_chosen"
	case StageSizeChosen:
		return "size_chosen"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Draft is an in-progress order. It is an immutable value: the With*
// transitions return a new Draft and enforce the step dependencies, so a
// size never exists without its temperature and a custom item never carries
// variants.
type Draft struct {
	member   string
	category string
	item     *CatalogItem

	// variantsResolved is false while a vendor item's options are loading.
	variantsResolved bool
	temps            []Temperature
	temperature      string
	size             string

	personal string
	gen      uint64
	// itemGen is the generation at which the current item was selected.
	itemGen uint64
}

func (d Draft) next() Draft {
	d.gen++
	return d
}

// Generation changes on every transition; async results carry the generation
// they were started for.
func (d Draft) Generation() uint64 { return d.gen }

// ItemGeneration only changes when a new item is selected or the draft is
// reset, so personal text edits do not invalidate a pending variant load.
func (d Draft) ItemGeneration() uint64 { return d.itemGen }

func (d Draft) MemberID() string       { return d.member }
func (d Draft) Category() string       { return d.category }
func (d Draft) PersonalOption() string { return d.personal }

func (d Draft) Item() (CatalogItem, bool) {
	if d.item == nil {
		return CatalogItem{}, false
	}
	return *d.item, true
}

func (d Draft) Stage() Stage {
	switch {
	case d.member == "":
		return StageEmpty
	case d.category == "":
		return StageMemberChosen
	case d.item == nil:
		return StageCategoryChosen
	case d.size != "":
		return StageSizeChosen
	case d.temperature != "":
		return StageTemperatureChosen
	default:
		return StageItemChosen
	}
}

// Temperatures returns the loaded variant options; empty for variant-less
// items or while loading.
func (d Draft) Temperatures() []Temperature {
	return d.temps
}

// VariantsPending reports that the selected vendor item's options have not
// arrived yet.
func (d Draft) VariantsPending() bool {
	return d.item != nil && d.item.HasVariants() && !d.variantsResolved
}

func (d Draft) Temperature() (Temperature, bool) {
	for _, t := range d.temps {
		if t.Code == d.temperature {
			return t, d.temperature != ""
		}
	}
	return Temperature{}, false
}

func (d Draft) Size() (Size, bool) {
	t, ok := d.Temperature()
	if !ok || d.size == "" {
		return Size{}, false
	}
	return t.size(d.size)
}

// CustomItemID and VendorItemID are never both non-empty.
func (d Draft) CustomItemID() string {
	if d.item == nil || d.item.HasVariants() {
		return ""
	}
	return d.item.ID()
}

func (d Draft) VendorItemID() string {
	if d.item == nil || !d.item.HasVariants() {
		return ""
	}
	return d.item.ID()
}

// VariantDescription renders the chosen variant as "<temperature>/<size>",
// or just the temperature when the size is not needed.
func (d Draft) VariantDescription() string {
	t, ok := d.Temperature()
	if !ok {
		return ""
	}
	if s, ok := d.Size(); ok {
		return t.Name + "/" + s.Name
	}
	return t.Name
}

func (d Draft) CombinedOption() *string {
	return CombineOption(d.VariantDescription(), d.personal)
}

func (d Draft) WithMember(memberID string) Draft {
	return Draft{member: memberID, gen: d.gen + 1}
}

func (d Draft) WithCategory(category string) (Draft, error) {
	if d.member == "" {
		return d, invalid("member", "select a member first")
	}
	if category == "" {
		return d, invalid("category", "category is required")
	}
	out := Draft{member: d.member, category: category, gen: d.gen}
	return out.next(), nil
}

// WithItem selects an item of the current category. A vendor item leaves the
// draft waiting for WithVariants.
func (d Draft) WithItem(item CatalogItem) (Draft, error) {
	if d.category == "" {
		return d, invalid("category", "select a category first")
	}
	if item.Category() != d.category {
		return d, invalid("item", fmt.Sprintf("%q is not in category %q", item.Name(), d.category))
	}
	out := Draft{
		member:           d.member,
		category:         d.category,
		item:             &item,
		variantsResolved: !item.HasVariants(),
		personal:         d.personal,
		gen:              d.gen,
	}
	out = out.next()
	out.itemGen = out.gen
	return out, nil
}

// WithVariants installs loaded options and auto-selects the first
// temperature. No temperatures means the item is treated as variant-less.
func (d Draft) WithVariants(temps []Temperature) (Draft, error) {
	if d.item == nil || !d.item.HasVariants() {
		return d, invalid("item", "selected item has no options")
	}
	out := d
	out.variantsResolved = true
	out.temps = append([]Temperature(nil), temps...)
	out.temperature = ""
	out.size = ""
	if len(out.temps) > 0 {
		out.temperature = out.temps[0].Code
	}
	return out.next(), nil
}

func (d Draft) WithTemperature(code string) (Draft, error) {
	if !d.variantsResolved || len(d.temps) == 0 {
		return d, invalid("temperature", "selected item has no temperature options")
	}
	for _, t := range d.temps {
		if t.Code == code {
			out := d
			out.temperature = code
			out.size = ""
			return out.next(), nil
		}
	}
	return d, invalid("temperature", fmt.Sprintf("unknown temperature %q", code))
}

func (d Draft) WithSize(code string) (Draft, error) {
	t, ok := d.Temperature()
	if !ok {
		return d, invalid("size", "select a temperature first")
	}
	if _, ok := t.size(code); !ok {
		return d, invalid("size", fmt.Sprintf("size %q is not offered for %s", code, t.Name))
	}
	out := d
	out.size = code
	return out.next(), nil
}

func (d Draft) WithPersonalOption(text string) Draft {
	out := d
	out.personal = strings.TrimSpace(text)
	return out.next()
}

// Ready reports whether the draft can be submitted.
func (d Draft) Ready() error {
	if d.member == "" {
		return invalid("member", "select a member")
	}
	if d.item == nil {
		return invalid("item", "select a menu item")
	}
	if !d.item.HasVariants() {
		return nil
	}
	if !d.variantsResolved {
		return invalid("temperature", "options are still loading")
	}
	if len(d.temps) == 0 {
		return nil
	}
	t, ok := d.Temperature()
	if !ok {
		return invalid("temperature", "select a temperature")
	}
	if len(t.Sizes) > 0 && d.size == "" {
		return invalid("size", "select a size")
	}
	return nil
}

// Request builds the create/replace payload for a ready draft.
func (d Draft) Request(departmentID, date string) (OrderRequest, error) {
	if err := d.Ready(); err != nil {
		return OrderRequest{}, err
	}
	return OrderRequest{
		MemberID:     d.member,
		DepartmentID: departmentID,
		Source:       d.item.Source(),
		CustomItemID: d.CustomItemID(),
		VendorItemID: d.VendorItemID(),
		Option:       d.CombinedOption(),
		Date:         date,
	}, nil
}

// CombineOption joins the variant description and the personal text as
// "<variant>, <personal>". One part alone is used verbatim; nothing yields
// nil so "no option" stays distinct from empty text.
func CombineOption(variant, personal string) *string {
	variant = strings.TrimSpace(variant)
	personal = strings.TrimSpace(personal)

	var s string
	switch {
	case variant != "" && personal != "":
		s = variant + ", " + personal
	case variant != "":
		s = variant
	case personal != "":
		s = personal
	default:
		return nil
	}
	return &s
}
