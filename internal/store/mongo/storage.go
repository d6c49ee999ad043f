package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collDepartments   = "departments"
	collTeams         = "teams"
	collMenus         = "menus"
	collVendorMenus   = "vendor_menus"
	collVendorOptions = "vendor_menu_options"
	collOrders        = "orders"
	collSettings      = "settings"
	collSyncLocks     = "sync_locks"
	collSyncProgress  = "sync_progress"
	collPresets       = "personal_options"
)

type Storage struct {
	client   *mongo.Client
	database *mongo.Database
	config   Config
}

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func New(cfg Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	database := client.Database(cfg.Database)

	return &Storage{
		client:   client,
		database: database,
		config:   cfg,
	}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Database() *mongo.Database {
	return s.database
}

func (s *Storage) Client() *mongo.Client {
	return s.client
}

// WithTransaction runs fn inside a session transaction. fn must use the
// context it is given.
func (s *Storage) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func (s *Storage) CreateIndexes(ctx context.Context) error {
	// one live order per member and day
	ordersIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "team_id", Value: 1}, {Key: "order_date", Value: 1}},
			Options: options.Index().
				SetName("uniq_team_day").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"deleted": false}),
		},
		{
			Keys: bson.D{{Key: "department_id", Value: 1}, {Key: "order_date", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "team_id", Value: 1}, {Key: "order_date", Value: -1}, {Key: "created_at", Value: -1}},
		},
	}
	if _, err := s.database.Collection(collOrders).Indexes().CreateMany(ctx, ordersIndexes); err != nil {
		return fmt.Errorf("failed to create orders indexes: %w", err)
	}

	menusIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "department_id", Value: 1}, {Key: "sort_order", Value: 1}},
		},
	}
	if _, err := s.database.Collection(collMenus).Indexes().CreateMany(ctx, menusIndexes); err != nil {
		return fmt.Errorf("failed to create menus indexes: %w", err)
	}

	vendorIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := s.database.Collection(collVendorMenus).Indexes().CreateMany(ctx, vendorIndexes); err != nil {
		return fmt.Errorf("failed to create vendor_menus indexes: %w", err)
	}

	optionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "menu_code", Value: 1}, {Key: "temperature_code", Value: 1}},
		},
	}
	if _, err := s.database.Collection(collVendorOptions).Indexes().CreateMany(ctx, optionIndexes); err != nil {
		return fmt.Errorf("failed to create vendor_menu_options indexes: %w", err)
	}

	teamsIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "department_id", Value: 1}},
		},
	}
	if _, err := s.database.Collection(collTeams).Indexes().CreateMany(ctx, teamsIndexes); err != nil {
		return fmt.Errorf("failed to create teams indexes: %w", err)
	}

	settingsIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "department_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := s.database.Collection(collSettings).Indexes().CreateMany(ctx, settingsIndexes); err != nil {
		return fmt.Errorf("failed to create settings indexes: %w", err)
	}

	presetIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "category", Value: 1}, {Key: "sort_order", Value: 1}},
		},
	}
	if _, err := s.database.Collection(collPresets).Indexes().CreateMany(ctx, presetIndexes); err != nil {
		return fmt.Errorf("failed to create personal_options indexes: %w", err)
	}

	return nil
}
