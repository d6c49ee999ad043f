package ordering

import (
	"context"
	"sync"
)

// Scope is the department context a request or background task runs under.
// Its context is cancelled as soon as another department is selected.
type Scope struct {
	DepartmentID string
	Version      uint64

	ctx context.Context
}

func (s Scope) Context() context.Context {
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}

func (s Scope) Valid() bool {
	return s.DepartmentID != "" && s.ctx != nil && s.ctx.Err() == nil
}

// ScopeTracker issues scopes and invalidates the previous one on every
// switch.
type ScopeTracker struct {
	mu      sync.Mutex
	current Scope
	cancel  context.CancelFunc
}

// Switch starts a new scope for departmentID derived from parent and cancels
// the one before it.
func (t *ScopeTracker) Switch(parent context.Context, departmentID string) Scope {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	t.current = Scope{
		DepartmentID: departmentID,
		Version:      t.current.Version + 1,
		ctx:          ctx,
	}
	t.cancel = cancel
	return t.current
}

func (t *ScopeTracker) Current() Scope {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// IsCurrent reports whether s is still the active scope.
func (t *ScopeTracker) IsCurrent(s Scope) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return s.Version == t.current.Version && s.ctx != nil && s.ctx.Err() == nil
}

func (t *ScopeTracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
