package ordering

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const DefaultAvailabilityInterval = 5 * time.Second

// Gate caches whether ordering is currently open for a department. The value
// only drives the submit control; the backend decides for real.
type Gate struct {
	src    AvailabilitySource
	logger *zap.SugaredLogger

	mu        sync.RWMutex
	open      bool
	checkedAt time.Time
	lastErr   error
}

func NewGate(src AvailabilitySource, logger *zap.SugaredLogger) *Gate {
	return &Gate{src: src, logger: logger}
}

// Refresh re-fetches availability. On failure the gate closes and the error
// is returned.
func (g *Gate) Refresh(ctx context.Context, departmentID string) (bool, error) {
	open, err := g.src.OrderAvailable(ctx, departmentID)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.checkedAt = time.Now()
	g.lastErr = err
	if err != nil {
		g.open = false
		return false, err
	}
	g.open = open
	return open, nil
}

func (g *Gate) Open() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.open
}

func (g *Gate) LastError() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.lastErr
}

// markClosed records a late "closed" rejection from a mutating call.
func (g *Gate) markClosed() {
	g.mu.Lock()
	g.open = false
	g.checkedAt = time.Now()
	g.mu.Unlock()
}

// Run refreshes the gate every interval until ctx is done. onRefresh, if
// set, is called after every check.
func (g *Gate) Run(ctx context.Context, departmentID string, interval time.Duration, onRefresh func(open bool, err error)) {
	if interval <= 0 {
		interval = DefaultAvailabilityInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			open, err := g.Refresh(ctx, departmentID)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				g.logger.Warnw("availability check failed", "department_id", departmentID, "error", err)
			}
			if onRefresh != nil {
				onRefresh(open, err)
			}
		}
	}
}
