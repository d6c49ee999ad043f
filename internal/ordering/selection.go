package ordering

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// VariantLoader fetches the temperature/size options of a vendor item.
type VariantLoader interface {
	Variants(ctx context.Context, item CatalogItem) ([]Temperature, error)
}

// Selection holds the current draft for one ordering view. Variant loads run
// in the background and are dropped if the draft moved on in the meantime.
type Selection struct {
	mu     sync.Mutex
	draft  Draft
	loader VariantLoader
	logger *zap.SugaredLogger

	onChange func(Draft)
	wg       sync.WaitGroup
}

func NewSelection(loader VariantLoader, logger *zap.SugaredLogger) *Selection {
	return &Selection{loader: loader, logger: logger}
}

// OnChange registers a callback run after every applied transition. It is
// called without the lock held.
func (s *Selection) OnChange(fn func(Draft)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Selection) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *Selection) Reset() {
	s.apply(func(d Draft) (Draft, error) {
		return Draft{gen: d.gen + 1}, nil
	})
}

func (s *Selection) SelectMember(memberID string) Draft {
	d, _ := s.apply(func(d Draft) (Draft, error) {
		return d.WithMember(memberID), nil
	})
	return d
}

func (s *Selection) SelectCategory(category string) (Draft, error) {
	return s.apply(func(d Draft) (Draft, error) {
		return d.WithCategory(category)
	})
}

// SelectItem selects item and, for vendor items, starts loading its options
// in the background. ctx bounds that load.
func (s *Selection) SelectItem(ctx context.Context, item CatalogItem) (Draft, error) {
	d, err := s.apply(func(d Draft) (Draft, error) {
		return d.WithItem(item)
	})
	if err != nil {
		return d, err
	}
	if item.HasVariants() {
		s.wg.Add(1)
		go s.loadVariants(ctx, item, d.ItemGeneration())
	}
	return d, nil
}

func (s *Selection) loadVariants(ctx context.Context, item CatalogItem, gen uint64) {
	defer s.wg.Done()

	temps, err := s.loader.Variants(ctx, item)
	if err != nil {
		// treat as variant-less
		s.logger.Warnw("failed to load variants", "item_id", item.ID(), "error", err)
		temps = nil
	}
	if ctx.Err() != nil {
		return
	}

	s.apply(func(d Draft) (Draft, error) {
		if d.ItemGeneration() != gen || !d.VariantsPending() {
			return d, errStale
		}
		return d.WithVariants(temps)
	})
}

func (s *Selection) SelectTemperature(code string) (Draft, error) {
	return s.apply(func(d Draft) (Draft, error) {
		return d.WithTemperature(code)
	})
}

func (s *Selection) SelectSize(code string) (Draft, error) {
	return s.apply(func(d Draft) (Draft, error) {
		return d.WithSize(code)
	})
}

func (s *Selection) SetPersonalOption(text string) Draft {
	d, _ := s.apply(func(d Draft) (Draft, error) {
		return d.WithPersonalOption(text), nil
	})
	return d
}

// AppendPersonalOption adds text to the personal option unless it is
// already part of it.
func (s *Selection) AppendPersonalOption(text string) Draft {
	d, _ := s.apply(func(d Draft) (Draft, error) {
		return d.WithPersonalOption(AppendOption(d.PersonalOption(), text)), nil
	})
	return d
}

// Wait blocks until pending variant loads have finished.
func (s *Selection) Wait() {
	s.wg.Wait()
}

func (s *Selection) apply(fn func(Draft) (Draft, error)) (Draft, error) {
	s.mu.Lock()
	next, err := fn(s.draft)
	if err != nil {
		cur := s.draft
		s.mu.Unlock()
		return cur, err
	}
	s.draft = next
	cb := s.onChange
	s.mu.Unlock()

	if cb != nil {
		cb(next)
	}
	return next, nil
}
