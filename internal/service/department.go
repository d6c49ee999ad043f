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

type DepartmentService struct {
	departmentRepo repo.DepartmentRepository
	logger         *zap.SugaredLogger
}

func NewDepartmentService(departmentRepo repo.DepartmentRepository, logger *zap.SugaredLogger) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

func (s *DepartmentService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

func (s *DepartmentService) Create(ctx context.Context, name string) (*domain.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: department name is required", domain.ErrInvalidInput)
	}

	department := &domain.Department{Name: name}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Infow("department created", "department_id", department.ID.Hex(), "name", name)

	return department, nil
}

func (s *DepartmentService) Rename(ctx context.Context, id primitive.ObjectID, name string) (*domain.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: department name is required", domain.ErrInvalidInput)
	}

	if err := s.departmentRepo.Rename(ctx, id, name); err != nil {
		return nil, err
	}

	s.logger.Infow("department renamed", "department_id", id.Hex(), "name", name)

	return s.departmentRepo.GetByID(ctx, id)
}

func (s *DepartmentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("department deleted", "department_id", id.Hex())

	return nil
}

// TeamService manages the members of a department.
type TeamService struct {
	teamRepo       repo.TeamRepository
	departmentRepo repo.DepartmentRepository
	logger         *zap.SugaredLogger
}

func NewTeamService(teamRepo repo.TeamRepository, departmentRepo repo.DepartmentRepository, logger *zap.SugaredLogger) *TeamService {
	return &TeamService{
		teamRepo:       teamRepo,
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

func (s *TeamService) List(ctx context.Context, departmentID primitive.ObjectID) ([]domain.Team, error) {
	teams, err := s.teamRepo.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) Create(ctx context.Context, departmentID primitive.ObjectID, name string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: member name is required", domain.ErrInvalidInput)
	}

	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}

	team := &domain.Team{DepartmentID: departmentID, Name: name}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Infow("team member created", "team_id", team.ID.Hex(), "department_id", departmentID.Hex())

	return team, nil
}

func (s *TeamService) Rename(ctx context.Context, id primitive.ObjectID, name string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: member name is required", domain.ErrInvalidInput)
	}

	if err := s.teamRepo.Rename(ctx, id, name); err != nil {
		return nil, err
	}

	return s.teamRepo.GetByID(ctx, id)
}

func (s *TeamService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("team member deleted", "team_id", id.Hex())

	return nil
}
