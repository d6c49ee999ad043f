package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Beka01247/coffee-order/internal/domain"
	"github.com/Beka01247/coffee-order/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// OrderInput is the item part of an order. Exactly one of MenuID and
// VendorMenuID is set, matching MenuType.
type OrderInput struct {
	MenuType       domain.MenuType
	MenuID         *primitive.ObjectID
	VendorMenuID   *primitive.ObjectID
	PersonalOption *string
}

type CreateOrderInput struct {
	OrderInput
	TeamID       primitive.ObjectID
	DepartmentID *primitive.ObjectID
	OrderDate    string
}

type OrderService struct {
	orderRepo  repo.OrderRepository
	teamRepo   repo.TeamRepository
	menuRepo   repo.MenuRepository
	vendorRepo repo.VendorMenuRepository
	settings   *SettingsService
	clock      Clock
	logger     *zap.SugaredLogger
}

func NewOrderService(
	orderRepo repo.OrderRepository,
	teamRepo repo.TeamRepository,
	menuRepo repo.MenuRepository,
	vendorRepo repo.VendorMenuRepository,
	settings *SettingsService,
	clock Clock,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		teamRepo:   teamRepo,
		menuRepo:   menuRepo,
		vendorRepo: vendorRepo,
		settings:   settings,
		clock:      clock,
		logger:     logger,
	}
}

func (s *OrderService) Today(ctx context.Context, departmentID primitive.ObjectID) ([]domain.OrderView, error) {
	return s.ByDate(ctx, departmentID, s.clock.Today())
}

func (s *OrderService) ByDate(ctx context.Context, departmentID primitive.ObjectID, date string) ([]domain.OrderView, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListByDate(ctx, departmentID, date)
	if err != nil {
		return nil, err
	}

	return s.views(ctx, orders)
}

func (s *OrderService) Summary(ctx context.Context, departmentID primitive.ObjectID, date string) ([]domain.OrderSummary, error) {
	views, err := s.ByDate(ctx, departmentID, date)
	if err != nil {
		return nil, err
	}
	return domain.SummarizeOrders(views), nil
}

func (s *OrderService) TeamToday(ctx context.Context, teamID primitive.ObjectID) (*domain.OrderView, error) {
	order, err := s.orderRepo.GetByTeamAndDate(ctx, teamID, s.clock.Today())
	if err != nil {
		return nil, err
	}
	return s.view(ctx, order, newViewCache())
}

func (s *OrderService) TeamLatest(ctx context.Context, teamID primitive.ObjectID) (*domain.OrderView, error) {
	order, err := s.orderRepo.LatestByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, order, newViewCache())
}

func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*domain.OrderView, error) {
	team, err := s.teamRepo.GetByID(ctx, in.TeamID)
	if err != nil {
		return nil, err
	}
	if team.Deleted {
		return nil, fmt.Errorf("team %s: %w", in.TeamID.Hex(), domain.ErrNotFound)
	}

	departmentID := team.DepartmentID
	if in.DepartmentID != nil && !in.DepartmentID.IsZero() {
		departmentID = *in.DepartmentID
	}

	date := in.OrderDate
	if date == "" {
		date = s.clock.Today()
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	if err := s.ensureOpen(ctx, departmentID); err != nil {
		return nil, err
	}

	item, err := s.resolveItem(ctx, departmentID, in.OrderInput)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		TeamID:         team.ID,
		DepartmentID:   departmentID,
		MenuType:       item.MenuType,
		MenuID:         item.MenuID,
		VendorMenuID:   item.VendorMenuID,
		PersonalOption: item.PersonalOption,
		OrderDate:      date,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, domain.ErrAlreadyOrdered) {
			s.logger.Infow("duplicate order refused", "team_id", team.ID.Hex(), "order_date", date)
		}
		return nil, err
	}

	s.logger.Infow("order created",
		"order_id", order.ID.Hex(),
		"team_id", team.ID.Hex(),
		"department_id", departmentID.Hex(),
		"menu_type", order.MenuType,
		"order_date", date,
	)

	return s.view(ctx, order, newViewCache())
}

// Update replaces the item and option of an order; member and day stay.
func (s *OrderService) Update(ctx context.Context, id primitive.ObjectID, in OrderInput) (*domain.OrderView, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.ensureOpen(ctx, order.DepartmentID); err != nil {
		return nil, err
	}

	item, err := s.resolveItem(ctx, order.DepartmentID, in)
	if err != nil {
		return nil, err
	}

	order.MenuType = item.MenuType
	order.MenuID = item.MenuID
	order.VendorMenuID = item.VendorMenuID
	order.PersonalOption = item.PersonalOption

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Infow("order updated", "order_id", id.Hex(), "menu_type", order.MenuType)

	return s.view(ctx, order, newViewCache())
}

func (s *OrderService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("order deleted", "order_id", id.Hex())

	return nil
}

func (s *OrderService) ensureOpen(ctx context.Context, departmentID primitive.ObjectID) error {
	open, err := s.settings.OrderAvailable(ctx, departmentID)
	if err != nil {
		return err
	}
	if !open {
		return domain.ErrOrderingClosed
	}
	return nil
}

// resolveItem checks that the ids fit the menu type and point at live menus,
// and normalizes the personal option.
func (s *OrderService) resolveItem(ctx context.Context, departmentID primitive.ObjectID, in OrderInput) (OrderInput, error) {
	if in.MenuType == "" {
		in.MenuType = domain.MenuTypeCustom
	}

	switch in.MenuType {
	case domain.MenuTypeCustom:
		if in.MenuID == nil || in.VendorMenuID != nil {
			return in, fmt.Errorf("%w: custom orders need menu_id only", domain.ErrMenuMismatch)
		}
		menu, err := s.menuRepo.GetByID(ctx, *in.MenuID)
		if err != nil {
			return in, err
		}
		if menu.Deleted || menu.DepartmentID != departmentID {
			return in, fmt.Errorf("menu %s: %w", in.MenuID.Hex(), domain.ErrNotFound)
		}
	case domain.MenuTypeVendor:
		if in.VendorMenuID == nil || in.MenuID != nil {
			return in, fmt.Errorf("%w: vendor orders need vendor_menu_id only", domain.ErrMenuMismatch)
		}
		menu, err := s.vendorRepo.GetByID(ctx, *in.VendorMenuID)
		if err != nil {
			return in, err
		}
		if menu.Deleted {
			return in, fmt.Errorf("vendor menu %s: %w", in.VendorMenuID.Hex(), domain.ErrNotFound)
		}
	default:
		return in, fmt.Errorf("%w: unknown menu type %q", domain.ErrInvalidInput, in.MenuType)
	}

	in.PersonalOption = normalizeOption(in.PersonalOption)
	return in, nil
}

// normalizeOption trims the option; blank reads as no option.
func normalizeOption(opt *string) *string {
	if opt == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*opt)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func validateDate(date string) error {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date %q must be YYYY-MM-DD", domain.ErrInvalidInput, date)
	}
	return nil
}

type menuRef struct {
	name     string
	category string
}

// viewCache avoids looking the same team or menu up once per order.
type viewCache struct {
	teams map[primitive.ObjectID]string
	menus map[primitive.ObjectID]menuRef
}

func newViewCache() *viewCache {
	return &viewCache{
		teams: make(map[primitive.ObjectID]string),
		menus: make(map[primitive.ObjectID]menuRef),
	}
}

func (s *OrderService) views(ctx context.Context, orders []domain.Order) ([]domain.OrderView, error) {
	cache := newViewCache()
	views := make([]domain.OrderView, 0, len(orders))
	for i := range orders {
		v, err := s.view(ctx, &orders[i], cache)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (s *OrderService) view(ctx context.Context, order *domain.Order, cache *viewCache) (*domain.OrderView, error) {
	teamName, ok := cache.teams[order.TeamID]
	if !ok {
		team, err := s.teamRepo.GetByID(ctx, order.TeamID)
		switch {
		case err == nil:
			teamName = team.Name
		case errors.Is(err, domain.ErrNotFound):
			s.logger.Warnw("order references missing team", "order_id", order.ID.Hex(), "team_id", order.TeamID.Hex())
		default:
			return nil, err
		}
		cache.teams[order.TeamID] = teamName
	}

	itemID := order.ItemID()
	ref, ok := cache.menus[itemID]
	if !ok {
		var err error
		ref, err = s.lookupMenu(ctx, order)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			s.logger.Warnw("order references missing menu", "order_id", order.ID.Hex(), "menu_id", itemID.Hex())
		}
		cache.menus[itemID] = ref
	}

	v := &domain.OrderView{
		ID:             order.ID.Hex(),
		TeamID:         order.TeamID.Hex(),
		TeamName:       teamName,
		DepartmentID:   order.DepartmentID.Hex(),
		MenuType:       order.MenuType,
		MenuName:       ref.name,
		Category:       ref.category,
		PersonalOption: order.PersonalOption,
		OrderDate:      order.OrderDate,
		CreatedAt:      order.CreatedAt,
	}
	if order.MenuID != nil {
		v.MenuID = order.MenuID.Hex()
	}
	if order.VendorMenuID != nil {
		v.VendorMenuID = order.VendorMenuID.Hex()
	}

	return v, nil
}

func (s *OrderService) lookupMenu(ctx context.Context, order *domain.Order) (menuRef, error) {
	if order.MenuType == domain.MenuTypeVendor && order.VendorMenuID != nil {
		m, err := s.vendorRepo.GetByID(ctx, *order.VendorMenuID)
		if err != nil {
			return menuRef{}, err
		}
		return menuRef{name: m.Name, category: m.Category}, nil
	}
	if order.MenuID != nil {
		m, err := s.menuRepo.GetByID(ctx, *order.MenuID)
		if err != nil {
			return menuRef{}, err
		}
		return menuRef{name: m.Name, category: m.Category}, nil
	}
	return menuRef{}, fmt.Errorf("order %s has no menu: %w", order.ID.Hex(), domain.ErrNotFound)
}
