package models

import "time"

// CycleStatus classifies the outcome of one refresh cycle
type CycleStatus string

const (
	CycleSuccess CycleStatus = "success"
	CyclePartial CycleStatus = "partial"
	CycleFailed  CycleStatus = "failed"
)

// CycleResult is the typed outcome of a single background refresh cycle.
// The refresh loop itself never terminates on failure; the result is fed to
// the logger so degraded cycles stay visible.
type CycleResult struct {
	Status   CycleStatus   `json:"status"`
	Reasons  []string      `json:"reasons,omitempty"`
	Fetched  int           `json:"fetched"`
	Kept     int           `json:"kept"`
	Duration time.Duration `json:"duration"`
}

// AddReason records one degradation reason for this cycle
func (r *CycleResult) AddReason(reason string) {
	r.Reasons = append(r.Reasons, reason)
}
