package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/coffee-order/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const syncLockID = "vendor-menu-sync-lock"

type SyncRepository struct {
	locks    *mongo.Collection
	progress *mongo.Collection
}

func NewSyncRepository(db *mongo.Database) *SyncRepository {
	return &SyncRepository{
		locks:    db.Collection(collSyncLocks),
		progress: db.Collection(collSyncProgress),
	}
}

// AcquireLock upserts the lock document only when it is expired or already
// owned by owner. A live lease held by someone else makes the upsert collide
// on _id, which reads as "not acquired".
func (r *SyncRepository) AcquireLock(ctx context.Context, owner string, lease time.Duration) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{
		"_id": syncLockID,
		"$or": bson.A{
			bson.M{"expires_at": bson.M{"$lte": now}},
			bson.M{"owner": owner},
		},
	}
	update := bson.M{"$set": bson.M{"owner": owner, "expires_at": now.Add(lease)}}

	_, err := r.locks.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to acquire sync lock: %w", err)
	}

	return true, nil
}

func (r *SyncRepository) ReleaseLock(ctx context.Context, owner string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.locks.DeleteOne(ctx, bson.M{"_id": syncLockID, "owner": owner}); err != nil {
		return fmt.Errorf("failed to release sync lock: %w", err)
	}

	return nil
}

func (r *SyncRepository) LockHeld(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.locks.CountDocuments(ctx, bson.M{
		"_id":        syncLockID,
		"expires_at": bson.M{"$gt": time.Now()},
	})
	if err != nil {
		return false, fmt.Errorf("failed to check sync lock: %w", err)
	}

	return count > 0, nil
}

func (r *SyncRepository) SaveProgress(ctx context.Context, progress *domain.SyncProgress) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	progress.ID = domain.SyncProgressID
	progress.UpdatedAt = time.Now()

	_, err := r.progress.ReplaceOne(ctx,
		bson.M{"_id": domain.SyncProgressID},
		progress,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save sync progress: %w", err)
	}

	return nil
}

func (r *SyncRepository) GetProgress(ctx context.Context) (*domain.SyncProgress, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var progress domain.SyncProgress
	err := r.progress.FindOne(ctx, bson.M{"_id": domain.SyncProgressID}).Decode(&progress)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("sync progress: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get sync progress: %w", err)
	}

	return &progress, nil
}
