package domain

import "time"

// VendorSyncMessage asks a worker to run the vendor catalog sync. The lock is
// already held under JobID when it is published.
type VendorSyncMessage struct {
	JobID       string    `json:"job_id"`
	Trigger     string    `json:"trigger"`
	RequestedAt time.Time `json:"requested_at"`
}

const (
	TriggerManual    = "manual"
	TriggerScheduled = "scheduled"
)
