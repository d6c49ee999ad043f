package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Beka01247/coffee-order/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDepartmentRename(t *testing.T) {
	dept := primitive.NewObjectID()
	svc := NewDepartmentService(newFakeDepartmentRepo(dept), testLogger())
	ctx := context.Background()

	got, err := svc.Rename(ctx, dept, "  Design  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Design" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}

	fetched, err := svc.Get(ctx, dept)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched.Name != "Design" {
		t.Fatalf("rename not persisted, got %q", fetched.Name)
	}
}

func TestDepartmentRenameErrors(t *testing.T) {
	dept := primitive.NewObjectID()
	svc := NewDepartmentService(newFakeDepartmentRepo(dept), testLogger())
	ctx := context.Background()

	tests := []struct {
		name string
		id   primitive.ObjectID
		new  string
		want error
	}{
		{"blank name", dept, "   ", domain.ErrInvalidInput},
		{"unknown department", primitive.NewObjectID(), "Design", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Rename(ctx, tt.id, tt.new); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDepartmentGetDeleted(t *testing.T) {
	dept := primitive.NewObjectID()
	svc := NewDepartmentService(newFakeDepartmentRepo(dept), testLogger())
	ctx := context.Background()

	if err := svc.Delete(ctx, dept); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(ctx, dept); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Rename(ctx, dept, "Design"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
