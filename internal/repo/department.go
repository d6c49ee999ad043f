package repo

import (
	"context"
	"time"

	"github.com/Beka01247/coffee-order/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DepartmentRepository interface {
	Create(ctx context.Context, department *domain.Department) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	Rename(ctx context.Context, id primitive.ObjectID, name string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Team, error)
	ListByDepartment(ctx context.Context, departmentID primitive.ObjectID) ([]domain.Team, error)
	Rename(ctx context.Context, id primitive.ObjectID, name string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SyncRepository holds the sync lease and the progress document.
type SyncRepository interface {
	// AcquireLock takes the lease for owner unless another live lease exists.
	AcquireLock(ctx context.Context, owner string, lease time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, owner string) error
	LockHeld(ctx context.Context) (bool, error)
	SaveProgress(ctx context.Context, progress *domain.SyncProgress) error
	GetProgress(ctx context.Context) (*domain.SyncProgress, error)
}

// Transactor runs fn in a transaction when the store supports it.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
