package repo

import (
	"context"

	"github.com/Beka01247/coffee-order/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuRepository interface {
	Create(ctx context.Context, menu *domain.Menu) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Menu, error)
	ListByDepartment(ctx context.Context, departmentID primitive.ObjectID) ([]domain.Menu, error)
	Update(ctx context.Context, menu *domain.Menu) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// ReplaceDepartment soft-deletes every live menu of the department and
	// inserts menus in its place.
	ReplaceDepartment(ctx context.Context, departmentID primitive.ObjectID, menus []domain.Menu) error
}

type VendorMenuRepository interface {
	List(ctx context.Context) ([]domain.VendorMenu, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.VendorMenu, error)
	// Upsert inserts or updates by vendor code and reports whether it inserted.
	Upsert(ctx context.Context, menu *domain.VendorMenu) (bool, error)
	SetLocalImage(ctx context.Context, code, path string) error
	ListOptions(ctx context.Context, code string) ([]domain.VendorMenuOption, error)
	DeleteAllOptions(ctx context.Context) error
	InsertOptions(ctx context.Context, options []domain.VendorMenuOption) error
}

type PersonalOptionRepository interface {
	Create(ctx context.Context, option *domain.PersonalOption) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PersonalOption, error)
	// List returns live presets ordered by category, then sort order.
	List(ctx context.Context) ([]domain.PersonalOption, error)
	ListByCategory(ctx context.Context, category string) ([]domain.PersonalOption, error)
	Update(ctx context.Context, option *domain.PersonalOption) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
