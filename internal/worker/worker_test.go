package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Beka01247/coffee-order/internal/domain"
	"go.uber.org/zap"
)

type fakeRunner struct {
	msgs []domain.VendorSyncMessage
	err  error
}

func (r *fakeRunner) Run(ctx context.Context, msg domain.VendorSyncMessage) error {
	r.msgs = append(r.msgs, msg)
	return r.err
}

type fakeTrigger struct {
	triggers []string
	err      error
}

func (t *fakeTrigger) Trigger(ctx context.Context, trigger string) (string, error) {
	t.triggers = append(t.triggers, trigger)
	return "job-1", t.err
}

func TestVendorSyncWorkerHandleMessage(t *testing.T) {
	payload, _ := json.Marshal(domain.VendorSyncMessage{JobID: "job-1", Trigger: domain.TriggerManual})

	tests := []struct {
		name    string
		message []byte
		runErr  error
		wantErr bool
		runs    int
	}{
		{"runs job", payload, nil, false, 1},
		{"failed sync is not retried", payload, errors.New("vendor down"), false, 1},
		{"bad payload", []byte("{"), nil, true, 0},
		{"missing job id", []byte(`{"trigger":"manual"}`), nil, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{err: tt.runErr}
			w := NewVendorSyncWorker(runner, nil, zap.NewNop().Sugar())

			err := w.handleMessage(context.Background(), tt.message)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if len(runner.msgs) != tt.runs {
				t.Fatalf("expected %d runs, got %d", tt.runs, len(runner.msgs))
			}
		})
	}
}

func TestNextRun(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"later today", time.Date(2026, 10, 18, 1, 0, 0, 0, kst), time.Date(2026, 10, 18, 3, 0, 0, 0, kst)},
		{"exactly at run time", time.Date(2026, 10, 18, 3, 0, 0, 0, kst), time.Date(2026, 10, 19, 3, 0, 0, 0, kst)},
		{"already passed", time.Date(2026, 10, 18, 8, 30, 0, 0, kst), time.Date(2026, 10, 19, 3, 0, 0, 0, kst)},
		{"month end", time.Date(2026, 10, 31, 23, 0, 0, 0, kst), time.Date(2026, 11, 1, 3, 0, 0, 0, kst)},
		{"other zone", time.Date(2026, 10, 18, 17, 0, 0, 0, time.UTC), time.Date(2026, 10, 19, 3, 0, 0, 0, kst)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextRun(tt.now, 3, 0, kst)
			if !got.Equal(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSyncSchedulerFire(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"queued", nil},
		{"already running", domain.ErrSyncInProgress},
		{"broker down", errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trigger := &fakeTrigger{err: tt.err}
			s := NewSyncScheduler(trigger, 3, 0, time.UTC, zap.NewNop().Sugar())

			s.fire(context.Background())

			if len(trigger.triggers) != 1 || trigger.triggers[0] != domain.TriggerScheduled {
				t.Fatalf("unexpected triggers %v", trigger.triggers)
			}
		})
	}
}

func TestSyncSchedulerStop(t *testing.T) {
	trigger := &fakeTrigger{}
	s := NewSyncScheduler(trigger, 3, 0, time.UTC, zap.NewNop().Sugar())

	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
