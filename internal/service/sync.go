package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Beka01247/coffee-order/internal/domain"
	"github.com/Beka01247/coffee-order/internal/queue"
	"github.com/Beka01247/coffee-order/internal/repo"
	"github.com/Beka01247/coffee-order/internal/vendor"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// SyncLease bounds how long a crashed sync can block the next one.
	SyncLease = 10 * time.Minute
	// SyncProgressTTL is how long a RUNNING document without a lock is
	// believed.
	SyncProgressTTL = 30 * time.Minute

	syncWorkers       = 10
	progressEvery     = 10
	optionInsertBatch = 500
)

var errNoMenus = errors.New("vendor returned no menus")

// VendorCatalog is the vendor's public menu API.
type VendorCatalog interface {
	FetchMenus(ctx context.Context) ([]vendor.MenuItem, error)
	FetchTemperatures(ctx context.Context, code string) ([]string, error)
	FetchSizes(ctx context.Context, code, temperature string) ([]vendor.SizeOption, error)
}

type ImageDownloader interface {
	Download(ctx context.Context, code, imageURL string) (string, error)
}

type SyncService struct {
	syncRepo   repo.SyncRepository
	vendorRepo repo.VendorMenuRepository
	catalog    VendorCatalog
	images     ImageDownloader
	broker     queue.Broker
	clock      Clock
	logger     *zap.SugaredLogger
}

func NewSyncService(
	syncRepo repo.SyncRepository,
	vendorRepo repo.VendorMenuRepository,
	catalog VendorCatalog,
	images ImageDownloader,
	broker queue.Broker,
	clock Clock,
	logger *zap.SugaredLogger,
) *SyncService {
	return &SyncService{
		syncRepo:   syncRepo,
		vendorRepo: vendorRepo,
		catalog:    catalog,
		images:     images,
		broker:     broker,
		clock:      clock,
		logger:     logger,
	}
}

// Trigger takes the sync lock, marks the progress RUNNING and queues the job.
// It returns domain.ErrSyncInProgress when another sync holds the lock.
func (s *SyncService) Trigger(ctx context.Context, trigger string) (string, error) {
	jobID := uuid.NewString()

	acquired, err := s.syncRepo.AcquireLock(ctx, jobID, SyncLease)
	if err != nil {
		return "", err
	}
	if !acquired {
		return "", domain.ErrSyncInProgress
	}

	now := s.clock.Now()
	progress := domain.StartedProgress(jobID, now)
	if err := s.syncRepo.SaveProgress(ctx, &progress); err != nil {
		_ = s.syncRepo.ReleaseLock(ctx, jobID)
		return "", err
	}

	message := domain.VendorSyncMessage{
		JobID:       jobID,
		Trigger:     trigger,
		RequestedAt: now,
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		_ = s.syncRepo.ReleaseLock(ctx, jobID)
		return "", fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueVendorSync, messageBytes); err != nil {
		s.logger.Errorw("failed to publish sync job", "job_id", jobID, "error", err)
		progress.Fail(s.clock.Now(), "failed to queue sync job")
		_ = s.syncRepo.SaveProgress(ctx, &progress)
		_ = s.syncRepo.ReleaseLock(ctx, jobID)
		return "", fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("vendor sync queued", "job_id", jobID, "trigger", trigger)

	return jobID, nil
}

// Status returns the progress document. A missing document, or a RUNNING one
// that outlived its TTL with no lock held, reads as IDLE.
func (s *SyncService) Status(ctx context.Context) (domain.SyncProgress, error) {
	progress, err := s.syncRepo.GetProgress(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.IdleProgress(), nil
		}
		return domain.SyncProgress{}, err
	}

	if progress.Status == domain.SyncRunning && s.clock.Now().Sub(progress.UpdatedAt) > SyncProgressTTL {
		held, err := s.syncRepo.LockHeld(ctx)
		if err != nil {
			return domain.SyncProgress{}, err
		}
		if !held {
			return domain.IdleProgress(), nil
		}
	}

	return *progress, nil
}

func (s *SyncService) InProgress(ctx context.Context) (bool, error) {
	return s.syncRepo.LockHeld(ctx)
}

// Run executes a queued sync job. The lock is released when Run returns.
// Sync failures are recorded in the progress document and returned.
func (s *SyncService) Run(ctx context.Context, msg domain.VendorSyncMessage) error {
	acquired, err := s.syncRepo.AcquireLock(ctx, msg.JobID, SyncLease)
	if err != nil {
		return err
	}
	if !acquired {
		s.logger.Warnw("sync lock held by another job, dropping message", "job_id", msg.JobID)
		return nil
	}
	defer func() {
		if err := s.syncRepo.ReleaseLock(context.WithoutCancel(ctx), msg.JobID); err != nil {
			s.logger.Errorw("failed to release sync lock", "job_id", msg.JobID, "error", err)
		}
	}()

	progress := domain.StartedProgress(msg.JobID, s.clock.Now())
	if existing, err := s.syncRepo.GetProgress(ctx); err == nil && existing.JobID == msg.JobID && existing.StartedAt != nil {
		progress.StartedAt = existing.StartedAt
	}

	r := &syncRun{SyncService: s, progress: &progress, jobID: msg.JobID}

	s.logger.Infow("vendor sync started", "job_id", msg.JobID, "trigger", msg.Trigger)

	if err := r.run(ctx); err != nil {
		s.logger.Errorw("vendor sync failed", "job_id", msg.JobID, "error", err)
		r.fail(context.WithoutCancel(ctx), err)
		return err
	}

	s.logger.Infow("vendor sync completed",
		"job_id", msg.JobID,
		"menus", progress.MenuCount,
		"inserted", progress.InsertedCount,
		"updated", progress.UpdatedCount,
		"images", progress.ImageCount,
		"options", progress.OptionCount,
		"elapsed_ms", progress.ElapsedMs,
	)

	return nil
}

// syncRun is the state of one sync execution. mu guards progress, which the
// parallel steps update.
type syncRun struct {
	*SyncService
	jobID    string
	mu       sync.Mutex
	progress *domain.SyncProgress
}

func (r *syncRun) save(ctx context.Context) error {
	return r.syncRepo.SaveProgress(ctx, r.progress)
}

func (r *syncRun) step(ctx context.Context, step domain.SyncStep, processed, total int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress.UpdateStep(step, processed, total)
	return r.save(ctx)
}

// report saves progress every few items and on the last one. Save errors are
// logged only; they must not abort a step.
func (r *syncRun) report(ctx context.Context, step domain.SyncStep, processed, total int) {
	if processed%progressEvery != 0 && processed != total {
		return
	}
	if err := r.step(ctx, step, processed, total); err != nil {
		r.logger.Warnw("failed to save sync progress", "job_id", r.jobID, "step", step, "error", err)
	}
}

func (r *syncRun) fail(ctx context.Context, cause error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress.Fail(r.clock.Now(), cause.Error())
	if err := r.save(ctx); err != nil {
		r.logger.Errorw("failed to save failed sync progress", "job_id", r.jobID, "error", err)
	}
}

func (r *syncRun) run(ctx context.Context) error {
	if err := r.step(ctx, domain.StepMenuSync, 0, 1); err != nil {
		return err
	}

	menus, err := r.syncMenus(ctx)
	if err != nil {
		return err
	}
	if err := r.step(ctx, domain.StepMenuSync, 1, 1); err != nil {
		return err
	}

	if err := r.syncImages(ctx, menus); err != nil {
		return err
	}

	if err := r.step(ctx, domain.StepOptionClear, 0, 1); err != nil {
		return err
	}
	if err := r.vendorRepo.DeleteAllOptions(ctx); err != nil {
		return err
	}
	if err := r.step(ctx, domain.StepOptionClear, 1, 1); err != nil {
		return err
	}

	if err := r.syncOptions(ctx, menus); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress.Complete(r.clock.Now())
	return r.save(ctx)
}

func (r *syncRun) syncMenus(ctx context.Context) ([]domain.VendorMenu, error) {
	items, err := r.catalog.FetchMenus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vendor menus: %w", err)
	}
	if len(items) == 0 {
		return nil, errNoMenus
	}

	menus := make([]domain.VendorMenu, 0, len(items))
	inserted, updated := 0, 0

	for i, item := range items {
		if item.Code == "" {
			continue
		}

		sortOrder := i
		if item.SortOrder != nil {
			sortOrder = *item.SortOrder
		}

		menu := domain.VendorMenu{
			Code:        item.Code,
			Name:        item.Name,
			EnglishName: item.EnglishName,
			Category:    item.Category,
			ImageURL:    item.ImagePath(),
			SortOrder:   sortOrder,
		}

		isNew, err := r.vendorRepo.Upsert(ctx, &menu)
		if err != nil {
			return nil, err
		}
		if isNew {
			inserted++
		} else {
			updated++
		}

		menus = append(menus, menu)
	}

	if len(menus) == 0 {
		return nil, errNoMenus
	}

	r.mu.Lock()
	r.progress.MenuCount = len(menus)
	r.progress.InsertedCount = inserted
	r.progress.UpdatedCount = updated
	r.mu.Unlock()

	r.logger.Infow("vendor menus synced", "job_id", r.jobID, "inserted", inserted, "updated", updated)

	return menus, nil
}

// syncImages downloads images in parallel. A failed image is skipped.
func (r *syncRun) syncImages(ctx context.Context, menus []domain.VendorMenu) error {
	var (
		mu         sync.Mutex
		processed  int
		downloaded int
	)
	total := len(menus)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(syncWorkers)

	for _, menu := range menus {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			ok := false
			if menu.ImageURL != "" {
				local, err := r.images.Download(gctx, menu.Code, menu.ImageURL)
				if err != nil {
					r.logger.Warnw("failed to download image", "code", menu.Code, "error", err)
				} else if err := r.vendorRepo.SetLocalImage(gctx, menu.Code, local); err != nil {
					r.logger.Warnw("failed to save image path", "code", menu.Code, "error", err)
				} else {
					ok = true
				}
			}

			mu.Lock()
			processed++
			if ok {
				downloaded++
			}
			n := processed
			mu.Unlock()

			r.report(gctx, domain.StepImageDownload, n, total)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	r.mu.Lock()
	r.progress.ImageCount = downloaded
	r.mu.Unlock()

	r.logger.Infow("vendor images synced", "job_id", r.jobID, "downloaded", downloaded, "total", total)

	return nil
}

// syncOptions fetches temperatures and sizes in parallel, then stores every
// row in menu order.
func (r *syncRun) syncOptions(ctx context.Context, menus []domain.VendorMenu) error {
	var (
		mu        sync.Mutex
		processed int
	)
	total := len(menus)
	results := make([][]domain.VendorMenuOption, len(menus))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(syncWorkers)

	for i, menu := range menus {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = r.fetchOptions(gctx, menu.Code)

			mu.Lock()
			processed++
			n := processed
			mu.Unlock()

			r.report(gctx, domain.StepOptionSync, n, total)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	all := []domain.VendorMenuOption{}
	for _, rows := range results {
		for _, row := range rows {
			row.Position = len(all)
			all = append(all, row)
		}
	}

	for start := 0; start < len(all); start += optionInsertBatch {
		end := min(start+optionInsertBatch, len(all))
		if err := r.vendorRepo.InsertOptions(ctx, all[start:end]); err != nil {
			return err
		}
	}

	r.mu.Lock()
	r.progress.OptionCount = len(all)
	r.mu.Unlock()

	r.logger.Infow("vendor options synced", "job_id", r.jobID, "options", len(all))

	return nil
}

// fetchOptions returns the option rows of one item. Fetch errors leave the
// item without options. A temperature without sizes still gets a row.
func (r *syncRun) fetchOptions(ctx context.Context, code string) []domain.VendorMenuOption {
	temperatures, err := r.catalog.FetchTemperatures(ctx, code)
	if err != nil {
		r.logger.Warnw("failed to fetch temperatures", "code", code, "error", err)
		return nil
	}

	var rows []domain.VendorMenuOption
	for _, t := range temperatures {
		sizes, err := r.catalog.FetchSizes(ctx, code, t)
		if err != nil {
			r.logger.Warnw("failed to fetch sizes", "code", code, "temperature", t, "error", err)
		}

		base := domain.VendorMenuOption{
			MenuCode:        code,
			TemperatureCode: t,
			TemperatureName: vendor.TemperatureName(t),
		}

		if len(sizes) == 0 {
			rows = append(rows, base)
			continue
		}

		for _, size := range sizes {
			row := base
			row.SizeCode = size.Code
			row.SizeName = size.Name
			row.SizeGroupCode = size.GroupCode
			row.Opts = size.Opts
			rows = append(rows, row)
		}
	}

	return rows
}
