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

type PersonalOptionRepository struct {
	collection *mongo.Collection
}

func NewPersonalOptionRepository(db *mongo.Database) *PersonalOptionRepository {
	return &PersonalOptionRepository{
		collection: db.Collection(collPresets),
	}
}

func (r *PersonalOptionRepository) Create(ctx context.Context, option *domain.PersonalOption) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if option.ID.IsZero() {
		option.ID = primitive.NewObjectID()
	}
	option.CreatedAt = time.Now()
	option.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, option); err != nil {
		return fmt.Errorf("failed to create personal option: %w", err)
	}

	return nil
}

func (r *PersonalOptionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PersonalOption, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var option domain.PersonalOption
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "deleted": false}).Decode(&option)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("personal option %s: %w", id.Hex(), domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get personal option: %w", err)
	}

	return &option, nil
}

func (r *PersonalOptionRepository) List(ctx context.Context) ([]domain.PersonalOption, error) {
	return r.find(ctx, bson.M{"deleted": false})
}

func (r *PersonalOptionRepository) ListByCategory(ctx context.Context, category string) ([]domain.PersonalOption, error) {
	filter := bson.M{"category": category, "deleted": false}
	if category == domain.DefaultOptionCategory {
		// uncategorized presets are listed under the default category
		filter = bson.M{
			"deleted": false,
			"$or": bson.A{
				bson.M{"category": category},
				bson.M{"category": bson.M{"$exists": false}},
				bson.M{"category": ""},
			},
		}
	}
	return r.find(ctx, filter)
}

func (r *PersonalOptionRepository) find(ctx context.Context, filter bson.M) ([]domain.PersonalOption, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "category", Value: 1},
		{Key: "sort_order", Value: 1},
		{Key: "name", Value: 1},
	})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list personal options: %w", err)
	}
	defer cursor.Close(ctx)

	presets := []domain.PersonalOption{}
	if err := cursor.All(ctx, &presets); err != nil {
		return nil, fmt.Errorf("failed to decode personal options: %w", err)
	}

	return presets, nil
}

func (r *PersonalOptionRepository) Update(ctx context.Context, option *domain.PersonalOption) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	option.UpdatedAt = time.Now()

	filter := bson.M{"_id": option.ID, "deleted": false}
	update := bson.M{
		"$set": bson.M{
			"name":       option.Name,
			"category":   option.Category,
			"sort_order": option.SortOrder,
			"updated_at": option.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update personal option: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("personal option %s: %w", option.ID.Hex(), domain.ErrNotFound)
	}

	return nil
}

func (r *PersonalOptionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "deleted": false}, update)
	if err != nil {
		return fmt.Errorf("failed to delete personal option: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("personal option %s: %w", id.Hex(), domain.ErrNotFound)
	}

	return nil
}
