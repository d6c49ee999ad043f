package domain

import (
	"fmt"
	"time"
)

type SyncStatus string

const (
	SyncIdle      SyncStatus = "IDLE"
	SyncRunning   SyncStatus = "RUNNING"
	SyncCompleted SyncStatus = "COMPLETED"
	SyncFailed    SyncStatus = "FAILED"
)

type SyncStep string

const (
	StepNone          SyncStep = "NONE"
	StepMenuSync      SyncStep = "MENU_SYNC"
	StepImageDownload SyncStep = "IMAGE_DOWNLOAD"
	StepOptionClear   SyncStep = "OPTION_CLEAR"
	StepOptionSync    SyncStep = "OPTION_SYNC"
)

// weight is the step's share of the overall progress; base is the progress
// reached when the step starts.
func (s SyncStep) weight() (base, weight int) {
	switch s {
	case StepMenuSync:
		return 0, 10
	case StepImageDownload:
		return 10, 40
	case StepOptionClear:
		return 50, 5
	case StepOptionSync:
		return 55, 45
	}
	return 0, 0
}

// SyncProgressID is the id of the single progress document.
const SyncProgressID = "vendor-menu-sync"

// SyncProgress is the state of the vendor catalog sync. There is one per
// backend.
type SyncProgress struct {
	ID              string     `bson:"_id" json:"-"`
	JobID           string     `bson:"job_id" json:"job_id,omitempty"`
	Status          SyncStatus `bson:"status" json:"status"`
	Step            SyncStep   `bson:"step" json:"step"`
	StepName        string     `bson:"step_name" json:"step_name"`
	StepProgress    int        `bson:"step_progress" json:"step_progress"`
	OverallProgress int        `bson:"overall_progress" json:"overall_progress"`
	ProcessedCount  int        `bson:"processed_count" json:"processed_count"`
	TotalCount      int        `bson:"total_count" json:"total_count"`
	MenuCount       int        `bson:"menu_count" json:"menu_count"`
	InsertedCount   int        `bson:"inserted_count" json:"inserted_count"`
	UpdatedCount    int        `bson:"updated_count" json:"updated_count"`
	ImageCount      int        `bson:"image_count" json:"image_count"`
	OptionCount     int        `bson:"option_count" json:"option_count"`
	ErrorMessage    string     `bson:"error_message,omitempty" json:"error_message,omitempty"`
	StartedAt       *time.Time `bson:"started_at,omitempty" json:"started_at,omitempty"`
	CompletedAt     *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	ElapsedMs       int64      `bson:"elapsed_ms" json:"elapsed_ms"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updated_at"`
}

func IdleProgress() SyncProgress {
	return SyncProgress{
		ID:       SyncProgressID,
		Status:   SyncIdle,
		Step:     StepNone,
		StepName: "idle",
	}
}

func StartedProgress(jobID string, now time.Time) SyncProgress {
	return SyncProgress{
		ID:        SyncProgressID,
		JobID:     jobID,
		Status:    SyncRunning,
		Step:      StepMenuSync,
		StepName:  "syncing menus",
		StartedAt: &now,
		UpdatedAt: now,
	}
}

// UpdateStep records progress within step and recomputes the overall
// percentage from the step weights.
func (p *SyncProgress) UpdateStep(step SyncStep, processed, total int) {
	p.Step = step
	p.ProcessedCount = processed
	p.TotalCount = total
	p.StepProgress = 0
	if total > 0 {
		p.StepProgress = processed * 100 / total
	}

	base, weight := step.weight()
	p.OverallProgress = base + weight*p.StepProgress/100

	switch step {
	case StepMenuSync:
		p.StepName = "syncing menus"
	case StepImageDownload:
		p.StepName = fmt.Sprintf("downloading images (%d/%d)", processed, total)
	case StepOptionClear:
		p.StepName = "clearing options"
	case StepOptionSync:
		p.StepName = fmt.Sprintf("syncing options (%d/%d)", processed, total)
	default:
		p.StepName = "idle"
	}
}

func (p *SyncProgress) Complete(now time.Time) {
	p.Status = SyncCompleted
	p.OverallProgress = 100
	p.StepName = "completed"
	p.CompletedAt = &now
	if p.StartedAt != nil {
		p.ElapsedMs = now.Sub(*p.StartedAt).Milliseconds()
	}
}

func (p *SyncProgress) Fail(now time.Time, msg string) {
	p.Status = SyncFailed
	p.ErrorMessage = msg
	p.CompletedAt = &now
	if p.StartedAt != nil {
		p.ElapsedMs = now.Sub(*p.StartedAt).Milliseconds()
	}
}

// SyncLock is the lease that keeps a single sync running at a time.
type SyncLock struct {
	ID        string    `bson:"_id"`
	Owner     string    `bson:"owner"`
	ExpiresAt time.Time `bson:"expires_at"`
}
