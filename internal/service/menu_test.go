package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Beka01247/coffee-order/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMenuImport(t *testing.T) {
	dept := primitive.NewObjectID()
	old := domain.Menu{ID: primitive.NewObjectID(), DepartmentID: dept, Name: "Old Brew", Category: "Coffee"}

	tests := []struct {
		name     string
		sheets   MenuSheetReader
		want     error
		replaced int
	}{
		{"disabled", nil, domain.ErrImportDisabled, 0},
		{"sheet error", &fakeSheets{err: errors.New("403 forbidden")}, domain.ErrInvalidInput, 0},
		{"replaces catalog", &fakeSheets{menus: []domain.Menu{
			{Name: "Latte", Category: "Coffee", SortOrder: 1},
			{Name: "Green Tea", Category: "Tea", SortOrder: 2},
		}}, nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menus := newFakeMenuRepo(old)
			tx := &fakeTransactor{}
			svc := NewMenuService(menus, newFakeDepartmentRepo(dept), tt.sheets, tx, testLogger())

			n, err := svc.Import(context.Background(), dept, "sheet-id", "")
			if tt.want != nil {
				if !errors.Is(err, tt.want) {
					t.Fatalf("expected %v, got %v", tt.want, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if menus.replaced != tt.replaced || tx.calls != tt.replaced {
				t.Fatalf("expected %d replace, got %d (tx %d)", tt.replaced, menus.replaced, tx.calls)
			}

			if tt.want == nil {
				if n != 2 {
					t.Fatalf("expected 2 imported, got %d", n)
				}
				list, _ := svc.List(context.Background(), dept)
				if len(list) != 2 || list[0].Name != "Latte" {
					t.Fatalf("unexpected menus %+v", list)
				}
			}
		})
	}
}

func TestMenuGrouped(t *testing.T) {
	dept := primitive.NewObjectID()
	menus := newFakeMenuRepo(
		domain.Menu{ID: primitive.NewObjectID(), DepartmentID: dept, Name: "Americano", Category: "Coffee", SortOrder: 1},
		domain.Menu{ID: primitive.NewObjectID(), DepartmentID: dept, Name: "Green Tea", Category: "Tea", SortOrder: 2},
		domain.Menu{ID: primitive.NewObjectID(), DepartmentID: dept, Name: "Latte", Category: "Coffee", SortOrder: 3},
	)
	svc := NewMenuService(menus, newFakeDepartmentRepo(dept), nil, nil, testLogger())

	groups, err := svc.Grouped(context.Background(), dept)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 || groups[0].Category != "Coffee" || len(groups[0].Items) != 2 {
		t.Fatalf("unexpected groups %+v", groups)
	}
	if groups[0].Items[1].Name != "Latte" {
		t.Fatalf("sort order not kept: %+v", groups[0].Items)
	}
}

func TestMenuCreateAndUpdate(t *testing.T) {
	dept := primitive.NewObjectID()
	menus := newFakeMenuRepo()
	svc := NewMenuService(menus, newFakeDepartmentRepo(dept), nil, nil, testLogger())
	ctx := context.Background()

	if _, err := svc.Create(ctx, dept, MenuInput{Name: "  ", Category: "Coffee"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, primitive.NewObjectID(), MenuInput{Name: "Latte", Category: "Coffee"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	menu, err := svc.Create(ctx, dept, MenuInput{Name: " Latte ", Category: "Coffee"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if menu.Name != "Latte" {
		t.Fatalf("name not trimmed: %q", menu.Name)
	}

	updated, err := svc.Update(ctx, menu.ID, MenuInput{Name: "Vanilla Latte", Category: "Coffee", SortOrder: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Vanilla Latte" || updated.SortOrder != 4 {
		t.Fatalf("unexpected menu %+v", updated)
	}

	if err := svc.Delete(ctx, menu.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Update(ctx, menu.ID, MenuInput{Name: "Latte", Category: "Coffee"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
