package ordering

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const DefaultSyncPollInterval = 2 * time.Second

// SyncMonitor triggers the vendor sync and follows it until it ends. A poll
// task exists only while the monitor believes a sync is running.
type SyncMonitor struct {
	api      SyncAPI
	logger   *zap.SugaredLogger
	interval time.Duration

	mu        sync.Mutex
	running   bool
	initiator bool
	progress  SyncProgress
	cancel    context.CancelFunc
	done      chan struct{}
	onUpdate  func(SyncProgress)
}

func NewSyncMonitor(api SyncAPI, interval time.Duration, logger *zap.SugaredLogger) *SyncMonitor {
	if interval <= 0 {
		interval = DefaultSyncPollInterval
	}
	done := make(chan struct{})
	close(done)
	return &SyncMonitor{
		api:      api,
		logger:   logger,
		interval: interval,
		progress: SyncProgress{Status: SyncIdle},
		done:     done,
	}
}

// OnUpdate registers a callback for every observed progress value.
func (m *SyncMonitor) OnUpdate(fn func(SyncProgress)) {
	m.mu.Lock()
	m.onUpdate = fn
	m.mu.Unlock()
}

// Start begins a sync, or attaches to the one already running. Finding a
// sync in progress is not an error: the monitor just polls it.
func (m *SyncMonitor) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = true
	m.initiator = false
	m.mu.Unlock()

	initiator, err := m.trigger(ctx)
	if err != nil {
		m.mu.Lock()
		m.running = false
		m.mu.Unlock()
		return err
	}

	pollCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	m.mu.Lock()
	m.initiator = initiator
	m.cancel = cancel
	m.done = done
	m.progress = SyncProgress{Status: SyncRunning}
	m.mu.Unlock()

	go m.poll(pollCtx, done)
	return nil
}

func (m *SyncMonitor) trigger(ctx context.Context) (bool, error) {
	inProgress, err := m.api.SyncInProgress(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check sync state: %w", err)
	}
	if inProgress {
		m.logger.Infow("sync already running, following it")
		return false, nil
	}

	err = m.api.TriggerSync(ctx)
	if errors.Is(err, ErrSyncInProgress) {
		m.logger.Infow("sync started elsewhere, following it")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to trigger sync: %w", err)
	}
	m.logger.Infow("sync triggered")
	return true, nil
}

func (m *SyncMonitor) poll(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer func() {
		m.mu.Lock()
		if m.done == done {
			m.running = false
			if m.cancel != nil {
				m.cancel()
				m.cancel = nil
			}
		}
		m.mu.Unlock()
	}()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		if m.check(ctx) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// check fetches the status once and reports whether polling should stop.
func (m *SyncMonitor) check(ctx context.Context) bool {
	p, err := m.api.SyncStatus(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}
		m.logger.Warnw("failed to fetch sync status", "error", err)
		return false
	}

	stop := p.Status.Terminal() || p.Status == SyncIdle

	m.mu.Lock()
	m.progress = p
	if stop {
		m.running = false
	}
	cb := m.onUpdate
	m.mu.Unlock()

	if cb != nil {
		cb(p)
	}
	if stop {
		m.logger.Infow("sync finished", "status", p.Status, "processed", p.ProcessedCount, "total", p.TotalCount)
	}
	return stop
}

// Stop cancels polling. The backend job keeps running.
func (m *SyncMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.running = false
	done := m.done
	m.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (m *SyncMonitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Initiator reports whether this monitor's trigger started the current sync.
func (m *SyncMonitor) Initiator() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initiator
}

func (m *SyncMonitor) Progress() SyncProgress {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progress
}

// Done is closed when the current poll task ends.
func (m *SyncMonitor) Done() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done
}

// Wait blocks until polling ends and returns the last progress. Only a FAILED
// status is an error; a sync that ended elsewhere (IDLE) is not.
func (m *SyncMonitor) Wait(ctx context.Context) (SyncProgress, error) {
	select {
	case <-ctx.Done():
		return m.Progress(), ctx.Err()
	case <-m.Done():
	}

	p := m.Progress()
	if p.Status == SyncFailed {
		msg := p.ErrorMessage
		if msg == "" {
			msg = "unknown error"
		}
		return p, fmt.Errorf("vendor sync failed: %s", msg)
	}
	return p, nil
}
