package ordering

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type OutcomeKind int

const (
	OutcomeCreated OutcomeKind = iota
	OutcomeNeedsConfirmation
)

// PendingChange pairs the member's existing order for today with the draft
// that would replace it. Nothing is written until it is confirmed.
type PendingChange struct {
	Existing         Order
	Proposed         OrderRequest
	ProposedItemName string
}

func (p PendingChange) ProposedOption() string {
	if p.Proposed.Option == nil {
		return ""
	}
	return *p.Proposed.Option
}

type SubmitOutcome struct {
	Kind    OutcomeKind
	Order   *Order
	Pending *PendingChange
}

// ReorderCandidate is a member's most recent order from an earlier day.
// Enabled is false when it was placed from the other menu source.
type ReorderCandidate struct {
	Order   Order
	Enabled bool
}

// ConflictResolver keeps orders unique per member and day on the client
// side, routing duplicates to an explicit confirmation.
type ConflictResolver struct {
	orders OrderStore
	today  func() string
	logger *zap.SugaredLogger
}

func NewConflictResolver(orders OrderStore, today func() string, logger *zap.SugaredLogger) *ConflictResolver {
	return &ConflictResolver{orders: orders, today: today, logger: logger}
}

// findTodayOrder re-reads the department's orders for today and returns the
// member's, or nil. Submit and Reorder both decide through it.
func (r *ConflictResolver) findTodayOrder(ctx context.Context, departmentID, memberID string) (*Order, error) {
	orders, err := r.orders.TodayOrders(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's orders: %w", err)
	}
	for i := range orders {
		if orders[i].MemberID == memberID {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

// Submit validates draft and creates the order, or returns a pending change
// when the member already ordered today.
func (r *ConflictResolver) Submit(ctx context.Context, departmentID string, draft Draft) (SubmitOutcome, error) {
	if departmentID == "" {
		return SubmitOutcome{}, ErrNoDepartment
	}
	req, err := draft.Request(departmentID, r.today())
	if err != nil {
		return SubmitOutcome{}, err
	}
	item, _ := draft.Item()

	existing, err := r.findTodayOrder(ctx, departmentID, req.MemberID)
	if err != nil {
		return SubmitOutcome{}, err
	}
	if existing != nil {
		return needsConfirmation(*existing, req, item.Name()), nil
	}

	created, err := r.orders.CreateOrder(ctx, req)
	if errors.Is(err, ErrAlreadyOrdered) {
		r.logger.Infow("order created concurrently, asking for confirmation",
			"member_id", req.MemberID, "department_id", departmentID)
		existing, ferr := r.findTodayOrder(ctx, departmentID, req.MemberID)
		if ferr != nil {
			return SubmitOutcome{}, ferr
		}
		if existing == nil {
			return SubmitOutcome{}, err
		}
		return needsConfirmation(*existing, req, item.Name()), nil
	}
	if err != nil {
		return SubmitOutcome{}, err
	}

	r.logger.Infow("order created", "order_id", created.ID, "member_id", created.MemberID, "date", created.Date)
	return SubmitOutcome{Kind: OutcomeCreated, Order: created}, nil
}

func needsConfirmation(existing Order, req OrderRequest, itemName string) SubmitOutcome {
	return SubmitOutcome{
		Kind: OutcomeNeedsConfirmation,
		Pending: &PendingChange{
			Existing:         existing,
			Proposed:         req,
			ProposedItemName: itemName,
		},
	}
}

// Confirm replaces the existing order's item and option. Member and date stay
// those of the existing order.
func (r *ConflictResolver) Confirm(ctx context.Context, p PendingChange) (*Order, error) {
	req := p.Proposed
	req.MemberID = p.Existing.MemberID
	req.Date = p.Existing.Date

	updated, err := r.orders.UpdateOrder(ctx, p.Existing.ID, req)
	if err != nil {
		return nil, err
	}
	r.logger.Infow("order replaced", "order_id", updated.ID, "member_id", updated.MemberID)
	return updated, nil
}

// Candidate looks up memberID's latest order. It returns nil when the member
// never ordered or already ordered today.
func (r *ConflictResolver) Candidate(ctx context.Context, memberID string, mode MenuMode) (*ReorderCandidate, error) {
	latest, err := r.orders.LatestOrder(ctx, memberID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest order: %w", err)
	}
	if latest == nil || latest.Date == r.today() {
		return nil, nil
	}
	return &ReorderCandidate{Order: *latest, Enabled: latest.Source == mode}, nil
}

// Reorder repeats the candidate for today. Whether to create or overwrite is
// decided now, not when the candidate was looked up.
func (r *ConflictResolver) Reorder(ctx context.Context, departmentID string, c ReorderCandidate, mode MenuMode) (*Order, error) {
	if departmentID == "" {
		return nil, ErrNoDepartment
	}
	if !c.Enabled || c.Order.Source != mode {
		return nil, ErrSourceMismatch
	}
	req := requestFromOrder(c.Order, departmentID, r.today())

	existing, err := r.findTodayOrder(ctx, departmentID, req.MemberID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return r.replace(ctx, *existing, req)
	}

	created, err := r.orders.CreateOrder(ctx, req)
	if errors.Is(err, ErrAlreadyOrdered) {
		existing, ferr := r.findTodayOrder(ctx, departmentID, req.MemberID)
		if ferr != nil {
			return nil, ferr
		}
		if existing == nil {
			return nil, err
		}
		return r.replace(ctx, *existing, req)
	}
	if err != nil {
		return nil, err
	}
	r.logger.Infow("order repeated", "order_id", created.ID, "member_id", created.MemberID)
	return created, nil
}

func (r *ConflictResolver) replace(ctx context.Context, existing Order, req OrderRequest) (*Order, error) {
	return r.Confirm(ctx, PendingChange{Existing: existing, Proposed: req})
}

// TodayIn returns a func giving the current calendar day in loc.
func TodayIn(now func() time.Time, loc *time.Location) func() string {
	return func() string {
		return now().In(loc).Format(DateLayout)
	}
}
