package repo

import (
	"context"

	"github.com/Beka01247/coffee-order/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderRepository interface {
	// Create returns domain.ErrAlreadyOrdered when the member already has a
	// live order for the date.
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	ListByDate(ctx context.Context, departmentID primitive.ObjectID, date string) ([]domain.Order, error)
	CountByDate(ctx context.Context, departmentID primitive.ObjectID, date string) (int64, error)
	GetByTeamAndDate(ctx context.Context, teamID primitive.ObjectID, date string) (*domain.Order, error)
	LatestByTeam(ctx context.Context, teamID primitive.ObjectID) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type SettingsRepository interface {
	GetByDepartment(ctx context.Context, departmentID primitive.ObjectID) (*domain.Settings, error)
	Upsert(ctx context.Context, settings *domain.Settings) error
}
