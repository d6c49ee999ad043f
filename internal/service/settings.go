package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Beka01247/coffee-order/internal/domain"
	"github.com/Beka01247/coffee-order/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type SettingsInput struct {
	MenuMode   domain.MenuType
	Is24Hours  bool
	CutoffTime string
}

type SettingsService struct {
	settingsRepo   repo.SettingsRepository
	orderRepo      repo.OrderRepository
	departmentRepo repo.DepartmentRepository
	clock          Clock
	logger         *zap.SugaredLogger
}

func NewSettingsService(
	settingsRepo repo.SettingsRepository,
	orderRepo repo.OrderRepository,
	departmentRepo repo.DepartmentRepository,
	clock Clock,
	logger *zap.SugaredLogger,
) *SettingsService {
	return &SettingsService{
		settingsRepo:   settingsRepo,
		orderRepo:      orderRepo,
		departmentRepo: departmentRepo,
		clock:          clock,
		logger:         logger,
	}
}

// Get returns the department settings, creating the defaults on first read.
func (s *SettingsService) Get(ctx context.Context, departmentID primitive.ObjectID) (*domain.Settings, error) {
	settings, err := s.settingsRepo.GetByDepartment(ctx, departmentID)
	if err == nil {
		if settings.MenuMode == "" {
			settings.MenuMode = domain.MenuTypeCustom
		}
		return settings, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}

	defaults := domain.DefaultSettings(departmentID)
	if err := s.settingsRepo.Upsert(ctx, &defaults); err != nil {
		return nil, err
	}

	s.logger.Infow("default settings created", "department_id", departmentID.Hex())

	return &defaults, nil
}

// Update replaces the settings. Changing the menu mode is refused while the
// department has orders today, and nothing is written in that case.
func (s *SettingsService) Update(ctx context.Context, departmentID primitive.ObjectID, in SettingsInput) (*domain.Settings, error) {
	if in.MenuMode == "" {
		in.MenuMode = domain.MenuTypeCustom
	}
	if !in.MenuMode.Valid() {
		return nil, fmt.Errorf("%w: unknown menu mode %q", domain.ErrInvalidInput, in.MenuMode)
	}

	cutoff := ""
	if in.CutoffTime != "" {
		t, err := domain.ParseCutoff(in.CutoffTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		cutoff = t.Format(domain.CutoffLayout)
	}

	current, err := s.Get(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	if current.MenuMode != in.MenuMode {
		count, err := s.orderRepo.CountByDate(ctx, departmentID, s.clock.Today())
		if err != nil {
			return nil, err
		}
		if count > 0 {
			s.logger.Warnw("menu mode change refused", "department_id", departmentID.Hex(), "orders_today", count)
			return nil, domain.ErrMenuModeLocked
		}
	}

	updated := *current
	updated.MenuMode = in.MenuMode
	updated.Is24Hours = in.Is24Hours
	updated.CutoffTime = cutoff

	if err := s.settingsRepo.Upsert(ctx, &updated); err != nil {
		return nil, err
	}

	s.logger.Infow("settings updated",
		"department_id", departmentID.Hex(),
		"menu_mode", updated.MenuMode,
		"is_24_hours", updated.Is24Hours,
		"cutoff_time", updated.CutoffTime,
	)

	return &updated, nil
}

func (s *SettingsService) OrderAvailable(ctx context.Context, departmentID primitive.ObjectID) (bool, error) {
	settings, err := s.Get(ctx, departmentID)
	if err != nil {
		return false, err
	}
	return settings.OrderAvailable(s.clock.Now(), s.clock.Location()), nil
}
