package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Beka01247/coffee-order/internal/domain"
	"go.uber.org/zap"
)

// SyncTrigger queues a vendor sync.
type SyncTrigger interface {
	Trigger(ctx context.Context, trigger string) (string, error)
}

// SyncScheduler triggers the vendor sync once a day at a fixed local time.
type SyncScheduler struct {
	syncService SyncTrigger
	hour        int
	minute      int
	loc         *time.Location
	now         func() time.Time
	logger      *zap.SugaredLogger
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

func NewSyncScheduler(
	syncService SyncTrigger,
	hour, minute int,
	loc *time.Location,
	logger *zap.SugaredLogger,
) *SyncScheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &SyncScheduler{
		syncService: syncService,
		hour:        hour,
		minute:      minute,
		loc:         loc,
		now:         time.Now,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (s *SyncScheduler) Start() {
	s.logger.Infow("starting vendor sync scheduler", "hour", s.hour, "minute", s.minute, "zone", s.loc.String())

	s.wg.Add(1)
	go s.loop()
}

func (s *SyncScheduler) Stop() {
	s.logger.Info("stopping vendor sync scheduler")
	s.cancel()
	s.wg.Wait()
}

func (s *SyncScheduler) loop() {
	defer s.wg.Done()

	for {
		next := nextRun(s.now(), s.hour, s.minute, s.loc)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-s.ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.fire(s.ctx)
		}
	}
}

func (s *SyncScheduler) fire(ctx context.Context) {
	jobID, err := s.syncService.Trigger(ctx, domain.TriggerScheduled)
	switch {
	case err == nil:
		s.logger.Infow("scheduled vendor sync queued", "job_id", jobID)
	case errors.Is(err, domain.ErrSyncInProgress):
		s.logger.Infow("scheduled vendor sync skipped, sync already running")
	default:
		s.logger.Errorw("failed to trigger scheduled vendor sync", "error", err)
	}
}

// nextRun is the first hour:minute in loc strictly after now.
func nextRun(now time.Time, hour, minute int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc)
	}
	return next
}
