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

type DepartmentRepository struct {
	collection *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) *DepartmentRepository {
	return &DepartmentRepository{
		collection: db.Collection(collDepartments),
	}
}

func (r *DepartmentRepository) Create(ctx context.Context, department *domain.Department) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if department.ID.IsZero() {
		department.ID = primitive.NewObjectID()
	}
	department.CreatedAt = time.Now()
	department.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, department); err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}

	return nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var department domain.Department
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "deleted": false}).Decode(&department)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("department %s: %w", id.Hex(), domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return &department, nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"deleted": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer cursor.Close(ctx)

	departments := []domain.Department{}
	if err := cursor.All(ctx, &departments); err != nil {
		return nil, fmt.Errorf("failed to decode departments: %w", err)
	}

	return departments, nil
}

func (r *DepartmentRepository) Rename(ctx context.Context, id primitive.ObjectID, name string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"name": name, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "deleted": false}, update)
	if err != nil {
		return fmt.Errorf("failed to rename department: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("department %s: %w", id.Hex(), domain.ErrNotFound)
	}

	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "deleted": false}, update)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("department %s: %w", id.Hex(), domain.ErrNotFound)
	}

	return nil
}

type TeamRepository struct {
	collection *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{
		collection: db.Collection(collTeams),
	}
}

func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if team.ID.IsZero() {
		team.ID = primitive.NewObjectID()
	}
	team.CreatedAt = time.Now()
	team.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, team); err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}

	return nil
}

// GetByID also finds deleted members so old orders keep their names.
func (r *TeamRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var team domain.Team
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("team %s: %w", id.Hex(), domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return &team, nil
}

func (r *TeamRepository) ListByDepartment(ctx context.Context, departmentID primitive.ObjectID) ([]domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"department_id": departmentID, "deleted": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer cursor.Close(ctx)

	teams := []domain.Team{}
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, fmt.Errorf("failed to decode teams: %w", err)
	}

	return teams, nil
}

func (r *TeamRepository) Rename(ctx context.Context, id primitive.ObjectID, name string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"name": name, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "deleted": false}, update)
	if err != nil {
		return fmt.Errorf("failed to rename team: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("team %s: %w", id.Hex(), domain.ErrNotFound)
	}

	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "deleted": false}, update)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("team %s: %w", id.Hex(), domain.ErrNotFound)
	}

	return nil
}
