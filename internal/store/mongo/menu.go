package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/coffee-order/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MenuRepository struct {
	collection *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{
		collection: db.Collection(collMenus),
	}
}

func (r *MenuRepository) Create(ctx context.Context, menu *domain.Menu) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if menu.ID.IsZero() {
		menu.ID = primitive.NewObjectID()
	}
	menu.CreatedAt = time.Now()
	menu.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, menu)
	if err != nil {
		return fmt.Errorf("failed to create menu: %w", err)
	}

	return nil
}

// GetByID also finds deleted menus so old orders keep their names.
func (r *MenuRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Menu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var menu domain.Menu
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&menu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("menu %s: %w", id.Hex(), domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	return &menu, nil
}

func (r *MenuRepository) ListByDepartment(ctx context.Context, departmentID primitive.ObjectID) ([]domain.Menu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"department_id": departmentID, "deleted": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	defer cursor.Close(ctx)

	menus := []domain.Menu{}
	if err := cursor.All(ctx, &menus); err != nil {
		return nil, fmt.Errorf("failed to decode menus: %w", err)
	}

	return menus, nil
}

func (r *MenuRepository) Update(ctx context.Context, menu *domain.Menu) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	menu.UpdatedAt = time.Now()

	filter := bson.M{"_id": menu.ID, "deleted": false}
	update := bson.M{
		"$set": bson.M{
			"name":       menu.Name,
			"category":   menu.Category,
			"sort_order": menu.SortOrder,
			"updated_at": menu.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update menu: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("menu %s: %w", menu.ID.Hex(), domain.ErrNotFound)
	}

	return nil
}

// Delete is soft so past orders keep resolving their menu name.
func (r *MenuRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "deleted": false}, update)
	if err != nil {
		return fmt.Errorf("failed to delete menu: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("menu %s: %w", id.Hex(), domain.ErrNotFound)
	}

	return nil
}

func (r *MenuRepository) ReplaceDepartment(ctx context.Context, departmentID primitive.ObjectID, menus []domain.Menu) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	now := time.Now()
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"department_id": departmentID, "deleted": false},
		bson.M{"$set": bson.M{"deleted": true, "updated_at": now}},
	)
	if err != nil {
		return fmt.Errorf("failed to clear department menus: %w", err)
	}

	if len(menus) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(menus))
	for i := range menus {
		m := menus[i]
		m.ID = primitive.NewObjectID()
		m.DepartmentID = departmentID
		m.Deleted = false
		m.CreatedAt = now
		m.UpdatedAt = now
		docs = append(docs, m)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert menus: %w", err)
	}

	return nil
}

type VendorMenuRepository struct {
	menus   *mongo.Collection
	options *mongo.Collection
}

func NewVendorMenuRepository(db *mongo.Database) *VendorMenuRepository {
	return &VendorMenuRepository{
		menus:   db.Collection(collVendorMenus),
		options: db.Collection(collVendorOptions),
	}
}

func (r *VendorMenuRepository) List(ctx context.Context) ([]domain.VendorMenu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "code", Value: 1}})
	cursor, err := r.menus.Find(ctx, bson.M{"deleted": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor menus: %w", err)
	}
	defer cursor.Close(ctx)

	menus := []domain.VendorMenu{}
	if err := cursor.All(ctx, &menus); err != nil {
		return nil, fmt.Errorf("failed to decode vendor menus: %w", err)
	}

	return menus, nil
}

func (r *VendorMenuRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.VendorMenu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var menu domain.VendorMenu
	err := r.menus.FindOne(ctx, bson.M{"_id": id}).Decode(&menu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("vendor menu %s: %w", id.Hex(), domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vendor menu: %w", err)
	}

	return &menu, nil
}

func (r *VendorMenuRepository) Upsert(ctx context.Context, menu *domain.VendorMenu) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"code": menu.Code}
	update := bson.M{
		"$set": bson.M{
			"name":         menu.Name,
			"english_name": menu.EnglishName,
			"category":     menu.Category,
			"image_url":    menu.ImageURL,
			"sort_order":   menu.SortOrder,
			"deleted":      false,
			"updated_at":   now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}

	result, err := r.menus.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("failed to upsert vendor menu %s: %w", menu.Code, err)
	}

	if id, ok := result.UpsertedID.(primitive.ObjectID); ok {
		menu.ID = id
		return true, nil
	}

	return false, nil
}

func (r *VendorMenuRepository) SetLocalImage(ctx context.Context, code, path string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"local_image": path, "updated_at": time.Now()}}
	result, err := r.menus.UpdateOne(ctx, bson.M{"code": code}, update)
	if err != nil {
		return fmt.Errorf("failed to set local image: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("vendor menu %s: %w", code, domain.ErrNotFound)
	}

	return nil
}

func (r *VendorMenuRepository) ListOptions(ctx context.Context, code string) ([]domain.VendorMenuOption, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.options.Find(ctx, bson.M{"menu_code": code}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor options: %w", err)
	}
	defer cursor.Close(ctx)

	rows := []domain.VendorMenuOption{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode vendor options: %w", err)
	}

	return rows, nil
}

func (r *VendorMenuRepository) DeleteAllOptions(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.options.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear vendor options: %w", err)
	}

	return nil
}

func (r *VendorMenuRepository) InsertOptions(ctx context.Context, rows []domain.VendorMenuOption) error {
	if len(rows) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, 0, len(rows))
	for i := range rows {
		row := rows[i]
		if row.ID.IsZero() {
			row.ID = primitive.NewObjectID()
		}
		row.CreatedAt = now
		docs = append(docs, row)
	}

	if _, err := r.options.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert vendor options: %w", err)
	}

	return nil
}
