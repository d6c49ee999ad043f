package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Beka01247/coffee-order/internal/domain"
	"github.com/Beka01247/coffee-order/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MenuSheetReader reads a custom menu catalog from a spreadsheet.
type MenuSheetReader interface {
	ReadMenus(ctx context.Context, spreadsheetID, readRange string) ([]domain.Menu, error)
}

type MenuInput struct {
	Name      string
	Category  string
	SortOrder int
}

func (in MenuInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: menu name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: menu category is required", domain.ErrInvalidInput)
	}
	return nil
}

type MenuService struct {
	menuRepo       repo.MenuRepository
	departmentRepo repo.DepartmentRepository
	sheets         MenuSheetReader
	tx             repo.Transactor
	logger         *zap.SugaredLogger
}

// NewMenuService builds the custom menu service. sheets may be nil, which
// disables Import; tx may be nil, which runs imports without a transaction.
func NewMenuService(
	menuRepo repo.MenuRepository,
	departmentRepo repo.DepartmentRepository,
	sheets MenuSheetReader,
	tx repo.Transactor,
	logger *zap.SugaredLogger,
) *MenuService {
	return &MenuService{
		menuRepo:       menuRepo,
		departmentRepo: departmentRepo,
		sheets:         sheets,
		tx:             tx,
		logger:         logger,
	}
}

func (s *MenuService) List(ctx context.Context, departmentID primitive.ObjectID) ([]domain.Menu, error) {
	menus, err := s.menuRepo.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	return menus, nil
}

// Grouped lists the department's menus by category, in sort order.
func (s *MenuService) Grouped(ctx context.Context, departmentID primitive.ObjectID) ([]domain.CategoryGroup[domain.Menu], error) {
	menus, err := s.List(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	return domain.GroupByCategory(menus, func(m domain.Menu) string { return m.Category }), nil
}

func (s *MenuService) Create(ctx context.Context, departmentID primitive.ObjectID, in MenuInput) (*domain.Menu, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}

	menu := &domain.Menu{
		DepartmentID: departmentID,
		Name:         strings.TrimSpace(in.Name),
		Category:     strings.TrimSpace(in.Category),
		SortOrder:    in.SortOrder,
	}
	if err := s.menuRepo.Create(ctx, menu); err != nil {
		return nil, err
	}

	s.logger.Infow("menu created", "menu_id", menu.ID.Hex(), "department_id", departmentID.Hex())

	return menu, nil
}

func (s *MenuService) Update(ctx context.Context, id primitive.ObjectID, in MenuInput) (*domain.Menu, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	menu, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if menu.Deleted {
		return nil, fmt.Errorf("menu %s: %w", id.Hex(), domain.ErrNotFound)
	}

	menu.Name = strings.TrimSpace(in.Name)
	menu.Category = strings.TrimSpace(in.Category)
	menu.SortOrder = in.SortOrder

	if err := s.menuRepo.Update(ctx, menu); err != nil {
		return nil, err
	}

	return menu, nil
}

func (s *MenuService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.menuRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("menu deleted", "menu_id", id.Hex())

	return nil
}

// Import replaces the department's custom catalog with the sheet contents.
func (s *MenuService) Import(ctx context.Context, departmentID primitive.ObjectID, spreadsheetID, readRange string) (int, error) {
	if s.sheets == nil {
		return 0, domain.ErrImportDisabled
	}

	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return 0, err
	}

	menus, err := s.sheets.ReadMenus(ctx, spreadsheetID, readRange)
	if err != nil {
		s.logger.Errorw("failed to read menu sheet", "spreadsheet_id", spreadsheetID, "error", err)
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	replace := func(ctx context.Context) error {
		return s.menuRepo.ReplaceDepartment(ctx, departmentID, menus)
	}

	if s.tx != nil {
		err = s.tx.WithTransaction(ctx, replace)
	} else {
		err = replace(ctx)
	}
	if err != nil {
		s.logger.Errorw("failed to import menus", "department_id", departmentID.Hex(), "error", err)
		return 0, fmt.Errorf("failed to import menus: %w", err)
	}

	s.logger.Infow("menus imported", "department_id", departmentID.Hex(), "spreadsheet_id", spreadsheetID, "count", len(menus))

	return len(menus), nil
}

// VendorMenuService serves the synced vendor catalog.
type VendorMenuService struct {
	vendorRepo repo.VendorMenuRepository
	logger     *zap.SugaredLogger
}

func NewVendorMenuService(vendorRepo repo.VendorMenuRepository, logger *zap.SugaredLogger) *VendorMenuService {
	return &VendorMenuService{
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

func (s *VendorMenuService) Grouped(ctx context.Context) ([]domain.CategoryGroup[domain.VendorMenu], error) {
	menus, err := s.vendorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor menus: %w", err)
	}
	return domain.GroupByCategory(menus, func(m domain.VendorMenu) string { return m.Category }), nil
}

func (s *VendorMenuService) Options(ctx context.Context, code string) (domain.VendorOptions, error) {
	rows, err := s.vendorRepo.ListOptions(ctx, code)
	if err != nil {
		return domain.VendorOptions{}, fmt.Errorf("failed to list vendor options: %w", err)
	}
	return domain.BuildVendorOptions(code, rows), nil
}
