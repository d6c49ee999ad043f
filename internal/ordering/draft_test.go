package ordering

import (
	"errors"
	"testing"
)

var (
	latte  = NewCustomItem("m1", "Latte", "Coffee")
	tea    = NewCustomItem("m2", "Green Tea", "Tea")
	amer   = NewVendorItem("v1", "Americano", "Coffee", "100001", "/images/100001.jpg")
	icedOn = []Temperature{
		{Code: "101I", Name: "ICE", Sizes: []Size{{Code: "T", Name: "Tall"}, {Code: "G", Name: "Grande"}}},
		{Code: "101H", Name: "HOT", Sizes: []Size{{Code: "R", Name: "Regular"}}},
	}
)

func mustDraft(t *testing.T) func(Draft, error) Draft {
	return func(d Draft, err error) Draft {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return d
	}
}

func TestCombineOption(t *testing.T) {
	tests := []struct {
		name     string
		variant  string
		personal string
		want     *string
	}{
		{"both", "ICE/Tall", "extra shot", strPtr("ICE/Tall, extra shot")},
		{"variant only", "ICE/Tall", "", strPtr("ICE/Tall")},
		{"personal only", "", "less ice", strPtr("less ice")},
		{"whitespace personal", "ICE/Tall", "   ", strPtr("ICE/Tall")},
		{"neither", "", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CombineOption(tt.variant, tt.personal)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %q", *got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Fatalf("expected %q, got %v", *tt.want, got)
			}
		})
	}
}

func strPtr(s string) *string { return &s }

func TestDraftCustomItemReadyWithoutVariants(t *testing.T) {
	d := Draft{}.WithMember("a")
	d = mustDraft(t)(d.WithCategory("Coffee"))
	d = mustDraft(t)(d.WithItem(latte))

	if err := d.Ready(); err != nil {
		t.Fatalf("custom item should be ready right after selection: %v", err)
	}
	if d.VariantsPending() {
		t.Fatal("custom item should not wait for variants")
	}
	if d.CustomItemID() != "m1" || d.VendorItemID() != "" {
		t.Fatalf("unexpected item ids: custom=%q vendor=%q", d.CustomItemID(), d.VendorItemID())
	}
	if d.Stage() != StageItemChosen {
		t.Fatalf("expected %s, got %s", StageItemChosen, d.Stage())
	}
}

func TestDraftCategoryRequiresMember(t *testing.T) {
	_, err := Draft{}.WithCategory("Coffee")
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "member" {
		t.Fatalf("expected member validation error, got %v", err)
	}
}

func TestDraftItemMustBelongToCategory(t *testing.T) {
	d := mustDraft(t)(Draft{}.WithMember("a").WithCategory("Coffee"))
	if _, err := d.WithItem(tea); err == nil {
		t.Fatal("expected an error for an item from another category")
	}
}

func TestDraftVendorItemVariants(t *testing.T) {
	d := mustDraft(t)(Draft{}.WithMember("a").WithCategory("Coffee"))
	d = mustDraft(t)(d.WithItem(amer))

	if !d.VariantsPending() {
		t.Fatal("vendor item should wait for variants")
	}
	if err := d.Ready(); err == nil {
		t.Fatal("draft should not be ready while variants load")
	}

	d = mustDraft(t)(d.WithVariants(icedOn))
	temp, ok := d.Temperature()
	if !ok || temp.Code != "101I" {
		t.Fatalf("first temperature should be auto-selected, got %+v", temp)
	}
	if err := d.Ready(); err == nil {
		t.Fatal("size must be chosen when the temperature offers sizes")
	}

	d = mustDraft(t)(d.WithSize("T"))
	if err := d.Ready(); err != nil {
		t.Fatalf("expected ready: %v", err)
	}
	if got := d.VariantDescription(); got != "ICE/Tall" {
		t.Fatalf("expected ICE/Tall, got %q", got)
	}
	if d.CustomItemID() != "" || d.VendorItemID() != "v1" {
		t.Fatalf("unexpected item ids: custom=%q vendor=%q", d.CustomItemID(), d.VendorItemID())
	}

	d = d.WithPersonalOption(" extra shot ")
	if got := d.CombinedOption(); got == nil || *got != "ICE/Tall, extra shot" {
		t.Fatalf("unexpected combined option %v", got)
	}
}

func TestDraftTemperatureClearsSize(t *testing.T) {
	d := mustDraft(t)(Draft{}.WithMember("a").WithCategory("Coffee"))
	d = mustDraft(t)(d.WithItem(amer))
	d = mustDraft(t)(d.WithVariants(icedOn))

	for _, temp := range []string{"101H", "101I", "101I"} {
		t.Run(temp, func(t *testing.T) {
			cur, _ := d.Temperature()
			d = mustDraft(t)(d.WithSize(cur.Sizes[0].Code))
			if _, ok := d.Size(); !ok {
				t.Fatal("size should be set")
			}

			d = mustDraft(t)(d.WithTemperature(temp))
			if _, ok := d.Size(); ok {
				t.Fatal("temperature change must clear the size")
			}
			if d.Stage() != StageTemperatureChosen {
				t.Fatalf("expected %s, got %s", StageTemperatureChosen, d.Stage())
			}
		})
	}
}

func TestDraftSizeMustBelongToTemperature(t *testing.T) {
	d := mustDraft(t)(Draft{}.WithMember("a").WithCategory("Coffee"))
	d = mustDraft(t)(d.WithItem(amer))
	d = mustDraft(t)(d.WithVariants(icedOn))
	d = mustDraft(t)(d.WithTemperature("101H"))

	if _, err := d.WithSize("T"); err == nil {
		t.Fatal("Tall is not offered for HOT")
	}
}

func TestDraftEmptyVariantsTreatedAsVariantless(t *testing.T) {
	d := mustDraft(t)(Draft{}.WithMember("a").WithCategory("Coffee"))
	d = mustDraft(t)(d.WithItem(amer))
	d = mustDraft(t)(d.WithVariants(nil))

	if err := d.Ready(); err != nil {
		t.Fatalf("item without temperatures should be ready: %v", err)
	}
	if d.CombinedOption() != nil {
		t.Fatal("no variant and no personal text must yield no option")
	}
	if _, err := d.WithTemperature("101I"); err == nil {
		t.Fatal("temperature should not be selectable")
	}
}

func TestDraftCategoryChangeClearsSelection(t *testing.T) {
	d := mustDraft(t)(Draft{}.WithMember("a").WithCategory("Coffee"))
	d = mustDraft(t)(d.WithItem(amer))
	d = mustDraft(t)(d.WithVariants(icedOn))
	d = d.WithPersonalOption("no sugar")

	d = mustDraft(t)(d.WithCategory("Tea"))
	if _, ok := d.Item(); ok {
		t.Fatal("item should be cleared")
	}
	if len(d.Temperatures()) != 0 {
		t.Fatal("variants should be cleared")
	}
	if d.PersonalOption() != "" {
		t.Fatalf("personal option should be cleared, got %q", d.PersonalOption())
	}
	if d.MemberID() != "a" {
		t.Fatal("member should be kept")
	}
}

func TestDraftMemberChangeResets(t *testing.T) {
	d := mustDraft(t)(Draft{}.WithMember("a").WithCategory("Coffee"))
	d = mustDraft(t)(d.WithItem(latte))
	d = d.WithPersonalOption("hot")

	d = d.WithMember("b")
	if d.Stage() != StageMemberChosen || d.PersonalOption() != "" {
		t.Fatalf("member change should reset the draft, got stage %s", d.Stage())
	}
}

func TestDraftItemIDsExclusive(t *testing.T) {
	base := mustDraft(t)(Draft{}.WithMember("a").WithCategory("Coffee"))
	for _, item := range []CatalogItem{latte, amer} {
		d := mustDraft(t)(base.WithItem(item))
		if d.CustomItemID() != "" && d.VendorItemID() != "" {
			t.Fatalf("%s: both item ids set", item.Name())
		}
	}
}

func TestDraftRequest(t *testing.T) {
	d := mustDraft(t)(Draft{}.WithMember("a").WithCategory("Coffee"))
	d = mustDraft(t)(d.WithItem(latte))

	req, err := d.Request("dept", "2026-10-18")
	if err != nil {
		t.Fatal(err)
	}
	if req.Source != ModeCustom || req.CustomItemID != "m1" || req.VendorItemID != "" {
		t.Fatalf("unexpected request %+v", req)
	}
	if req.Option != nil {
		t.Fatalf("expected nil option, got %q", *req.Option)
	}
	if req.Date != "2026-10-18" || req.DepartmentID != "dept" {
		t.Fatalf("unexpected request %+v", req)
	}

	if _, err := (Draft{}).Request("dept", "2026-10-18"); err == nil {
		t.Fatal("empty draft must not produce a request")
	}
}

func TestDraftItemGeneration(t *testing.T) {
	d := mustDraft(t)(Draft{}.WithMember("a").WithCategory("Coffee"))
	d = mustDraft(t)(d.WithItem(amer))
	gen := d.ItemGeneration()

	d = d.WithPersonalOption("extra shot")
	if d.ItemGeneration() != gen {
		t.Fatal("personal text must not change the item generation")
	}
	if d.Generation() == gen {
		t.Fatal("every transition changes the draft generation")
	}

	d = mustDraft(t)(d.WithItem(amer))
	if d.ItemGeneration() == gen {
		t.Fatal("selecting an item again must change the item generation")
	}
}
