package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Beka01247/coffee-order/internal/domain"
	"github.com/Beka01247/coffee-order/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	maxOptionNameLen     = 50
	maxOptionCategoryLen = 30
)

type PersonalOptionInput struct {
	Name      string
	Category  string
	SortOrder int
}

func (in PersonalOptionInput) normalize() (PersonalOptionInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" {
		return in, fmt.Errorf("%w: option name is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(in.Name) > maxOptionNameLen {
		return in, fmt.Errorf("%w: option name must be at most %d characters", domain.ErrInvalidInput, maxOptionNameLen)
	}
	if utf8.RuneCountInString(in.Category) > maxOptionCategoryLen {
		return in, fmt.Errorf("%w: option category must be at most %d characters", domain.ErrInvalidInput, maxOptionCategoryLen)
	}
	return in, nil
}

// PersonalOptionService manages the shared personal option presets.
type PersonalOptionService struct {
	optionRepo repo.PersonalOptionRepository
	logger     *zap.SugaredLogger
}

func NewPersonalOptionService(optionRepo repo.PersonalOptionRepository, logger *zap.SugaredLogger) *PersonalOptionService {
	return &PersonalOptionService{
		optionRepo: optionRepo,
		logger:     logger,
	}
}

func (s *PersonalOptionService) List(ctx context.Context) ([]domain.PersonalOption, error) {
	presets, err := s.optionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list personal options: %w", err)
	}
	return presets, nil
}

// Grouped lists presets by category. Uncategorized presets come last, under
// domain.DefaultOptionCategory.
func (s *PersonalOptionService) Grouped(ctx context.Context) ([]domain.CategoryGroup[domain.PersonalOption], error) {
	presets, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	groups := domain.GroupByCategory(presets, domain.PersonalOption.GroupCategory)
	for i, g := range groups {
		if g.Category == domain.DefaultOptionCategory && i != len(groups)-1 {
			groups = append(append(groups[:i:i], groups[i+1:]...), g)
			break
		}
	}
	return groups, nil
}

func (s *PersonalOptionService) ByCategory(ctx context.Context, category string) ([]domain.PersonalOption, error) {
	presets, err := s.optionRepo.ListByCategory(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list personal options: %w", err)
	}
	return presets, nil
}

func (s *PersonalOptionService) Get(ctx context.Context, id primitive.ObjectID) (*domain.PersonalOption, error) {
	return s.optionRepo.GetByID(ctx, id)
}

func (s *PersonalOptionService) Create(ctx context.Context, in PersonalOptionInput) (*domain.PersonalOption, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	option := &domain.PersonalOption{
		Name:      in.Name,
		Category:  in.Category,
		SortOrder: in.SortOrder,
	}
	if err := s.optionRepo.Create(ctx, option); err != nil {
		return nil, err
	}

	s.logger.Infow("personal option created", "option_id", option.ID.Hex(), "name", option.Name)

	return option, nil
}

func (s *PersonalOptionService) Update(ctx context.Context, id primitive.ObjectID, in PersonalOptionInput) (*domain.PersonalOption, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	option, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	option.Name = in.Name
	option.Category = in.Category
	option.SortOrder = in.SortOrder

	if err := s.optionRepo.Update(ctx, option); err != nil {
		return nil, err
	}

	return option, nil
}

func (s *PersonalOptionService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.optionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("personal option deleted", "option_id", id.Hex())

	return nil
}
