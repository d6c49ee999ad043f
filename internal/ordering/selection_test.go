package ordering

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

// gatedLoader holds every Variants call until release is closed.
type gatedLoader struct {
	started chan struct{}
	release chan struct{}
	temps   []Temperature
}

func newGatedLoader(temps []Temperature) *gatedLoader {
	return &gatedLoader{
		started: make(chan struct{}, 4),
		release: make(chan struct{}),
		temps:   temps,
	}
}

func (l *gatedLoader) Variants(ctx context.Context, item CatalogItem) ([]Temperature, error) {
	l.started <- struct{}{}
	select {
	case <-l.release:
		return l.temps, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func selectionWithCategory(t *testing.T, loader VariantLoader) *Selection {
	t.Helper()
	s := NewSelection(loader, zap.NewNop().Sugar())
	s.SelectMember("a")
	if _, err := s.SelectCategory("Coffee"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestSelectionPersonalOptionDuringVariantLoad(t *testing.T) {
	loader := newGatedLoader(icedOn)
	s := selectionWithCategory(t, loader)

	if _, err := s.SelectItem(context.Background(), amer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	<-loader.started
	s.SetPersonalOption("extra shot")
	close(loader.release)
	s.Wait()

	d := s.Draft()
	if d.VariantsPending() {
		t.Fatal("variants should have been applied")
	}
	temp, ok := d.Temperature()
	if !ok || temp.Code != "101I" {
		t.Fatalf("expected first temperature auto-selected, got %+v (ok=%v)", temp, ok)
	}
	if d.PersonalOption() != "extra shot" {
		t.Fatalf("personal option lost: %q", d.PersonalOption())
	}
	if _, err := s.SelectSize("T"); err != nil {
		t.Fatalf("size should be selectable after load: %v", err)
	}
}

func TestSelectionDropsLoadForReplacedItem(t *testing.T) {
	loader := newGatedLoader(icedOn)
	s := selectionWithCategory(t, loader)

	if _, err := s.SelectItem(context.Background(), amer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	<-loader.started
	if _, err := s.SelectItem(context.Background(), latte); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	close(loader.release)
	s.Wait()

	d := s.Draft()
	item, _ := d.Item()
	if item.ID() != latte.ID() {
		t.Fatalf("expected %s selected, got %s", latte.ID(), item.ID())
	}
	if len(d.Temperatures()) != 0 {
		t.Fatalf("stale variants applied: %+v", d.Temperatures())
	}
}

func TestSelectionDropsLoadAfterReset(t *testing.T) {
	loader := newGatedLoader(icedOn)
	s := selectionWithCategory(t, loader)

	if _, err := s.SelectItem(context.Background(), amer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	<-loader.started
	s.Reset()
	close(loader.release)
	s.Wait()

	if d := s.Draft(); d.Stage() != StageEmpty || len(d.Temperatures()) != 0 {
		t.Fatalf("reset draft should stay empty, got stage %s", d.Stage())
	}
}
