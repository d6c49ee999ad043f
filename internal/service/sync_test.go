package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Beka01247/coffee-order/internal/domain"
	"github.com/Beka01247/coffee-order/internal/queue"
	"github.com/Beka01247/coffee-order/internal/vendor"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type syncFixture struct {
	now     time.Time
	repo    *fakeSyncRepo
	vendors *fakeVendorRepo
	catalog *fakeCatalog
	images  *fakeImages
	broker  *fakeBroker
	svc     *SyncService
}

func newSyncFixture(catalog *fakeCatalog, existing ...domain.VendorMenu) *syncFixture {
	f := &syncFixture{
		now:     testNow,
		vendors: newFakeVendorRepo(existing...),
		catalog: catalog,
		images:  &fakeImages{failed: map[string]bool{}},
		broker:  newFakeBroker(),
	}
	nowFn := func() time.Time { return f.now }
	f.repo = newFakeSyncRepo(nowFn)
	f.svc = NewSyncService(f.repo, f.vendors, f.catalog, f.images, f.broker, NewClock(nowFn, kst), testLogger())
	return f
}

func (f *syncFixture) queued(t *testing.T) domain.VendorSyncMessage {
	t.Helper()
	msgs := f.broker.published[queue.QueueVendorSync]
	if len(msgs) == 0 {
		t.Fatal("no sync job published")
	}
	var msg domain.VendorSyncMessage
	if err := json.Unmarshal(msgs[len(msgs)-1], &msg); err != nil {
		t.Fatalf("failed to decode message: %v", err)
	}
	return msg
}

func TestSyncTrigger(t *testing.T) {
	f := newSyncFixture(&fakeCatalog{})
	ctx := context.Background()

	jobID, err := f.svc.Trigger(ctx, domain.TriggerManual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := f.queued(t)
	if msg.JobID != jobID || msg.Trigger != domain.TriggerManual {
		t.Fatalf("unexpected message %+v", msg)
	}

	status, _ := f.svc.Status(ctx)
	if status.Status != domain.SyncRunning || status.JobID != jobID {
		t.Fatalf("unexpected status %+v", status)
	}

	if _, err := f.svc.Trigger(ctx, domain.TriggerManual); !errors.Is(err, domain.ErrSyncInProgress) {
		t.Fatalf("expected ErrSyncInProgress, got %v", err)
	}
	if len(f.broker.published[queue.QueueVendorSync]) != 1 {
		t.Fatal("second trigger published a job")
	}

	inProgress, _ := f.svc.InProgress(ctx)
	if !inProgress {
		t.Fatal("expected sync in progress")
	}
}

func TestSyncTriggerPublishFailure(t *testing.T) {
	f := newSyncFixture(&fakeCatalog{})
	f.broker.err = errors.New("channel closed")
	ctx := context.Background()

	if _, err := f.svc.Trigger(ctx, domain.TriggerManual); err == nil {
		t.Fatal("expected error")
	}

	status, _ := f.svc.Status(ctx)
	if status.Status != domain.SyncFailed || status.ErrorMessage == "" {
		t.Fatalf("unexpected status %+v", status)
	}

	held, _ := f.repo.LockHeld(ctx)
	if held {
		t.Fatal("lock not released")
	}
}

func TestSyncRun(t *testing.T) {
	catalog := &fakeCatalog{
		menus: []vendor.MenuItem{
			{Code: "100", Name: "Americano", Category: "Coffee", Image: "/upload/100.jpg"},
			{Code: "200", Name: "Latte", Category: "Coffee", Image: "/upload/200.jpg"},
			{Code: ""},
			{Code: "300", Name: "Earl Grey", Category: "Tea"},
		},
		temperatures: map[string][]string{
			"100": {"010H", "010I"},
			"200": {"010I"},
		},
		sizes: map[string][]vendor.SizeOption{
			"100/010H": {{Code: "S1", Name: "Regular"}, {Code: "S2", Name: "Large"}},
			"200/010I": {{Code: "S1", Name: "Regular"}},
		},
	}
	f := newSyncFixture(catalog, domain.VendorMenu{ID: primitive.NewObjectID(), Code: "200", Name: "Cafe Latte"})
	f.images.failed["200"] = true
	ctx := context.Background()

	jobID, err := f.svc.Trigger(ctx, domain.TriggerManual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.now = f.now.Add(2 * time.Second)
	if err := f.svc.Run(ctx, f.queued(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status, _ := f.svc.Status(ctx)
	if status.Status != domain.SyncCompleted || status.OverallProgress != 100 {
		t.Fatalf("unexpected status %+v", status)
	}
	if status.MenuCount != 3 || status.InsertedCount != 2 || status.UpdatedCount != 1 {
		t.Fatalf("unexpected menu counts %+v", status)
	}
	if status.ImageCount != 1 || status.OptionCount != 4 {
		t.Fatalf("unexpected image/option counts %+v", status)
	}
	if status.ElapsedMs != 2000 {
		t.Fatalf("expected 2000ms elapsed, got %d", status.ElapsedMs)
	}

	if got := f.vendors.menus["100"].LocalImage; got != "/images/vendor/100.jpg" {
		t.Fatalf("unexpected local image %q", got)
	}
	if got := f.vendors.menus["200"].LocalImage; got != "" {
		t.Fatalf("failed image should stay empty, got %q", got)
	}
	if f.vendors.menus["200"].Name != "Latte" {
		t.Fatal("existing menu not updated")
	}

	want := []struct{ code, temp, size string }{
		{"100", "010H", "S1"},
		{"100", "010H", "S2"},
		{"100", "010I", ""},
		{"200", "010I", "S1"},
	}
	if len(f.vendors.options) != len(want) {
		t.Fatalf("expected %d options, got %d", len(want), len(f.vendors.options))
	}
	for i, w := range want {
		got := f.vendors.options[i]
		if got.MenuCode != w.code || got.TemperatureCode != w.temp || got.SizeCode != w.size || got.Position != i {
			t.Fatalf("option %d: unexpected %+v", i, got)
		}
	}
	if f.vendors.cleared != 1 {
		t.Fatalf("expected options cleared once, got %d", f.vendors.cleared)
	}

	if held, _ := f.repo.LockHeld(ctx); held {
		t.Fatal("lock not released")
	}
	if last := f.repo.releasedBy[len(f.repo.releasedBy)-1]; last != jobID {
		t.Fatalf("lock released by %q", last)
	}
}

func TestSyncRunNoMenus(t *testing.T) {
	f := newSyncFixture(&fakeCatalog{})
	ctx := context.Background()

	if _, err := f.svc.Trigger(ctx, domain.TriggerScheduled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.svc.Run(ctx, f.queued(t)); err == nil {
		t.Fatal("expected error")
	}

	status, _ := f.svc.Status(ctx)
	if status.Status != domain.SyncFailed || status.ErrorMessage == "" {
		t.Fatalf("unexpected status %+v", status)
	}
	if f.vendors.cleared != 0 {
		t.Fatal("options cleared on failed sync")
	}
	if held, _ := f.repo.LockHeld(ctx); held {
		t.Fatal("lock not released")
	}
}

func TestSyncRunLockHeldElsewhere(t *testing.T) {
	f := newSyncFixture(&fakeCatalog{menus: []vendor.MenuItem{{Code: "100"}}})
	ctx := context.Background()

	if _, err := f.repo.AcquireLock(ctx, "other", SyncLease); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := f.svc.Run(ctx, domain.VendorSyncMessage{JobID: "job-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.vendors.menus) != 0 {
		t.Fatal("sync ran without the lock")
	}
}

func TestSyncStatus(t *testing.T) {
	tests := []struct {
		name    string
		lease   time.Duration
		advance time.Duration
		want    domain.SyncStatus
	}{
		{"fresh running", SyncLease, time.Minute, domain.SyncRunning},
		{"stale without lock", SyncLease, SyncProgressTTL + time.Minute, domain.SyncIdle},
		{"stale with live lock", 2 * SyncProgressTTL, SyncProgressTTL + time.Minute, domain.SyncRunning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSyncFixture(&fakeCatalog{})
			ctx := context.Background()

			if _, err := f.repo.AcquireLock(ctx, "job-1", tt.lease); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			progress := domain.StartedProgress("job-1", f.now)
			if err := f.repo.SaveProgress(ctx, &progress); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			f.now = f.now.Add(tt.advance)

			status, err := f.svc.Status(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if status.Status != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, status.Status)
			}
		})
	}
}

func TestSyncStatusWithoutProgress(t *testing.T) {
	f := newSyncFixture(&fakeCatalog{})

	status, err := f.svc.Status(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Status != domain.SyncIdle || status.OverallProgress != 0 {
		t.Fatalf("unexpected status %+v", status)
	}
}
