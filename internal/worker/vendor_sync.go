package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Beka01247/coffee-order/internal/domain"
	"github.com/Beka01247/coffee-order/internal/queue"
	"go.uber.org/zap"
)

// SyncRunner runs one queued vendor sync job.
type SyncRunner interface {
	Run(ctx context.Context, msg domain.VendorSyncMessage) error
}

type VendorSyncWorker struct {
	syncService SyncRunner
	broker      queue.Broker
	logger      *zap.SugaredLogger
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewVendorSyncWorker(
	syncService SyncRunner,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *VendorSyncWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &VendorSyncWorker{
		syncService: syncService,
		broker:      broker,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (w *VendorSyncWorker) Start() error {
	w.logger.Info("starting vendor sync worker")

	return w.broker.Subscribe(w.ctx, queue.QueueVendorSync, w.handleMessage)
}

func (w *VendorSyncWorker) Stop() {
	w.logger.Info("stopping vendor sync worker")
	w.cancel()
}

// handleMessage returns an error only for undecodable messages. A failed sync
// is already recorded as FAILED, and redelivering it would start a new run
// nobody asked for.
func (w *VendorSyncWorker) handleMessage(ctx context.Context, message []byte) error {
	var msg domain.VendorSyncMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		w.logger.Errorw("failed to unmarshal message", "error", err)
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	if msg.JobID == "" {
		w.logger.Errorw("sync message without job id", "trigger", msg.Trigger)
		return errors.New("sync message without job id")
	}

	w.logger.Infow("processing vendor sync message", "job_id", msg.JobID, "trigger", msg.Trigger)

	if err := w.syncService.Run(ctx, msg); err != nil {
		w.logger.Errorw("vendor sync job failed", "job_id", msg.JobID, "error", err)
	}

	return nil
}
