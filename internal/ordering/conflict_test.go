package ordering

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

const testToday = "2026-10-18"

func fixedToday() string { return testToday }

func readyDraft(t *testing.T, member string, item CatalogItem) Draft {
	t.Helper()
	d := mustDraft(t)(Draft{}.WithMember(member).WithCategory(item.Category()))
	return mustDraft(t)(d.WithItem(item))
}

func TestSubmitCreatesWhenNoOrderToday(t *testing.T) {
	backend := NewMockBackend(testToday)
	r := NewConflictResolver(backend, fixedToday, zap.NewNop().Sugar())

	out, err := r.Submit(context.Background(), "dept", readyDraft(t, "A", latte))
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != OutcomeCreated || out.Order == nil {
		t.Fatalf("expected a created order, got %+v", out)
	}

	orders := backend.Orders()
	if len(orders) != 1 {
		t.Fatalf("expected exactly one order, got %d", len(orders))
	}
	o := orders[0]
	if o.MemberID != "A" || o.Date != testToday || o.ItemID != "m1" {
		t.Fatalf("unexpected order %+v", o)
	}
}

func TestSubmitTwiceRoutesToConfirmation(t *testing.T) {
	backend := NewMockBackend(testToday)
	r := NewConflictResolver(backend, fixedToday, zap.NewNop().Sugar())
	d := readyDraft(t, "A", latte)

	if _, err := r.Submit(context.Background(), "dept", d); err != nil {
		t.Fatal(err)
	}
	out, err := r.Submit(context.Background(), "dept", d)
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != OutcomeNeedsConfirmation {
		t.Fatalf("second submit should need confirmation, got %+v", out)
	}
	if n := len(backend.Orders()); n != 1 {
		t.Fatalf("expected one order, got %d", n)
	}
	if backend.Calls("CreateOrder") != 1 {
		t.Fatalf("second submit must not call create, got %d calls", backend.Calls("CreateOrder"))
	}
}

func TestSubmitExistingOrderThenConfirm(t *testing.T) {
	backend := NewMockBackend(testToday)
	backend.insertOrder(Order{ID: "o-x", MemberID: "A", Date: testToday, Source: ModeCustom, ItemID: "m1", ItemName: "Latte"})
	r := NewConflictResolver(backend, fixedToday, zap.NewNop().Sugar())

	y := NewCustomItem("m9", "Mocha", "Coffee")
	d := readyDraft(t, "A", y).WithPersonalOption("less sweet")

	out, err := r.Submit(context.Background(), "dept", d)
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != OutcomeNeedsConfirmation || out.Pending == nil {
		t.Fatalf("expected pending change, got %+v", out)
	}
	if backend.Calls("CreateOrder") != 0 || backend.Calls("UpdateOrder") != 0 {
		t.Fatal("nothing may be written before confirmation")
	}
	if out.Pending.Existing.ItemName != "Latte" || out.Pending.ProposedItemName != "Mocha" {
		t.Fatalf("unexpected pending change %+v", out.Pending)
	}
	if out.Pending.ProposedOption() != "less sweet" {
		t.Fatalf("unexpected proposed option %q", out.Pending.ProposedOption())
	}

	updated, err := r.Confirm(context.Background(), *out.Pending)
	if err != nil {
		t.Fatal(err)
	}
	if updated.ID != "o-x" || updated.MemberID != "A" || updated.Date != testToday || updated.ItemID != "m9" {
		t.Fatalf("confirm should replace the item and keep member/date, got %+v", updated)
	}
	if n := len(backend.Orders()); n != 1 {
		t.Fatalf("expected one order, got %d", n)
	}
}

func TestSubmitRaceOnCreateRoutesToConfirmation(t *testing.T) {
	backend := NewMockBackend(testToday)
	r := NewConflictResolver(backend, fixedToday, zap.NewNop().Sugar())

	// another client creates the order between the read and the create
	backend.CreateOrderFunc = func(ctx context.Context, req OrderRequest) (*Order, error) {
		backend.insertOrder(Order{ID: "o-race", MemberID: req.MemberID, Date: req.Date, Source: ModeCustom, ItemID: "m2"})
		return nil, &APIError{Status: 409, Code: "ALREADY_ORDERED", Kind: ErrAlreadyOrdered}
	}

	out, err := r.Submit(context.Background(), "dept", readyDraft(t, "A", latte))
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != OutcomeNeedsConfirmation || out.Pending.Existing.ID != "o-race" {
		t.Fatalf("expected confirmation against o-race, got %+v", out)
	}
}

func TestSubmitValidationMakesNoCalls(t *testing.T) {
	backend := NewMockBackend(testToday)
	r := NewConflictResolver(backend, fixedToday, zap.NewNop().Sugar())

	d := Draft{}.WithMember("A")
	_, err := r.Submit(context.Background(), "dept", d)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if backend.Calls("TodayOrders") != 0 || backend.Calls("CreateOrder") != 0 {
		t.Fatal("validation failures must not reach the backend")
	}
}

func TestCandidate(t *testing.T) {
	tests := []struct {
		name     string
		latest   *Order
		mode     MenuMode
		wantNil  bool
		wantOpen bool
	}{
		{name: "no history", wantNil: true, mode: ModeCustom},
		{name: "ordered today", latest: &Order{ID: "o1", MemberID: "A", Date: testToday, Source: ModeCustom}, mode: ModeCustom, wantNil: true},
		{name: "earlier same source", latest: &Order{ID: "o1", MemberID: "A", Date: "2026-10-17", Source: ModeCustom}, mode: ModeCustom, wantOpen: true},
		{name: "earlier other source", latest: &Order{ID: "o1", MemberID: "A", Date: "2026-10-17", Source: ModeVendor}, mode: ModeCustom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := NewMockBackend(testToday)
			if tt.latest != nil {
				backend.latest["A"] = *tt.latest
			}
			r := NewConflictResolver(backend, fixedToday, zap.NewNop().Sugar())

			c, err := r.Candidate(context.Background(), "A", tt.mode)
			if err != nil {
				t.Fatal(err)
			}
			if tt.wantNil {
				if c != nil {
					t.Fatalf("expected no candidate, got %+v", c)
				}
				return
			}
			if c == nil {
				t.Fatal("expected a candidate")
			}
			if c.Enabled != tt.wantOpen {
				t.Fatalf("expected enabled=%v, got %v", tt.wantOpen, c.Enabled)
			}
		})
	}
}

func TestReorderChecksAtActTime(t *testing.T) {
	backend := NewMockBackend(testToday)
	opt := "ICE/Tall"
	prev := Order{ID: "old", MemberID: "A", Date: "2026-10-17", Source: ModeCustom, ItemID: "m2", Option: &opt}
	backend.latest["A"] = prev
	r := NewConflictResolver(backend, fixedToday, zap.NewNop().Sugar())

	c, err := r.Candidate(context.Background(), "A", ModeCustom)
	if err != nil || c == nil {
		t.Fatalf("expected candidate, got %v %v", c, err)
	}

	// an order appears after the candidate was looked up
	backend.insertOrder(Order{ID: "today", MemberID: "A", Date: testToday, Source: ModeCustom, ItemID: "m1"})

	o, err := r.Reorder(context.Background(), "dept", *c, ModeCustom)
	if err != nil {
		t.Fatal(err)
	}
	if o.ID != "today" || o.ItemID != "m2" || o.OptionText() != "ICE/Tall" {
		t.Fatalf("expected today's order overwritten with the candidate, got %+v", o)
	}
	if backend.Calls("CreateOrder") != 0 {
		t.Fatal("reorder must overwrite, not create")
	}
}

func TestReorderCreates(t *testing.T) {
	backend := NewMockBackend(testToday)
	backend.latest["A"] = Order{ID: "old", MemberID: "A", Date: "2026-10-01", Source: ModeVendor, ItemID: "v1"}
	r := NewConflictResolver(backend, fixedToday, zap.NewNop().Sugar())

	c, _ := r.Candidate(context.Background(), "A", ModeVendor)
	o, err := r.Reorder(context.Background(), "dept", *c, ModeVendor)
	if err != nil {
		t.Fatal(err)
	}
	if o.Date != testToday || o.Source != ModeVendor || o.ItemID != "v1" {
		t.Fatalf("unexpected order %+v", o)
	}
}

func TestReorderSourceMismatch(t *testing.T) {
	backend := NewMockBackend(testToday)
	r := NewConflictResolver(backend, fixedToday, zap.NewNop().Sugar())

	c := ReorderCandidate{Order: Order{MemberID: "A", Date: "2026-10-01", Source: ModeVendor, ItemID: "v1"}}
	_, err := r.Reorder(context.Background(), "dept", c, ModeCustom)
	if !errors.Is(err, ErrSourceMismatch) {
		t.Fatalf("expected ErrSourceMismatch, got %v", err)
	}
	if backend.Calls("TodayOrders") != 0 {
		t.Fatal("mismatched candidate must not reach the backend")
	}
}
