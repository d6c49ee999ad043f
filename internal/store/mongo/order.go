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

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection(collOrders),
	}
}

// Create relies on the partial unique index on (team_id, order_date) so two
// concurrent creates for the same member and day cannot both succeed.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	now := time.Now()
	order.Deleted = false
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyOrdered
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var order domain.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "deleted": false}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("order %s: %w", id.Hex(), domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

func (r *OrderRepository) ListByDate(ctx context.Context, departmentID primitive.ObjectID, date string) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"department_id": departmentID, "order_date": date, "deleted": false}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}

func (r *OrderRepository) CountByDate(ctx context.Context, departmentID primitive.ObjectID, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"department_id": departmentID, "order_date": date, "deleted": false}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return count, nil
}

func (r *OrderRepository) GetByTeamAndDate(ctx context.Context, teamID primitive.ObjectID, date string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var order domain.Order
	filter := bson.M{"team_id": teamID, "order_date": date, "deleted": false}
	err := r.collection.FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("order for team %s on %s: %w", teamID.Hex(), date, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get team order: %w", err)
	}

	return &order, nil
}

// LatestByTeam returns the newest live order by date, then creation time.
func (r *OrderRepository) LatestByTeam(ctx context.Context, teamID primitive.ObjectID) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{
		{Key: "order_date", Value: -1},
		{Key: "created_at", Value: -1},
	})

	var order domain.Order
	err := r.collection.FindOne(ctx, bson.M{"team_id": teamID, "deleted": false}, opts).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("latest order for team %s: %w", teamID.Hex(), domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get latest order: %w", err)
	}

	return &order, nil
}

// Update rewrites the menu and option of an order. Member and date stay.
func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	order.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"menu_type":       order.MenuType,
			"menu_id":         order.MenuID,
			"vendor_menu_id":  order.VendorMenuID,
			"personal_option": order.PersonalOption,
			"updated_at":      order.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": order.ID, "deleted": false}, update)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("order %s: %w", order.ID.Hex(), domain.ErrNotFound)
	}

	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "deleted": false}, update)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("order %s: %w", id.Hex(), domain.ErrNotFound)
	}

	return nil
}

type SettingsRepository struct {
	collection *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Collection(collSettings),
	}
}

func (r *SettingsRepository) GetByDepartment(ctx context.Context, departmentID primitive.ObjectID) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings domain.Settings
	err := r.collection.FindOne(ctx, bson.M{"department_id": departmentID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("settings for department %s: %w", departmentID.Hex(), domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return &settings, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, settings *domain.Settings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	settings.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"menu_mode":   settings.MenuMode,
			"is_24_hours": settings.Is24Hours,
			"cutoff_time": settings.CutoffTime,
			"updated_at":  settings.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"department_id": settings.DepartmentID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if id, ok := result.UpsertedID.(primitive.ObjectID); ok {
		settings.ID = id
	}

	return nil
}
