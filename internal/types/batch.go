package types

import "time"

// BatchStatus is the lifecycle state of an external batch job. The values
// mirror the vendor's wire strings so status responses map directly.
type BatchStatus string

const (
	BatchQueued     BatchStatus = "queued"
	BatchValidating BatchStatus = "validating"
	BatchInProgress BatchStatus = "in_progress"
	BatchFinalizing BatchStatus = "finalizing"
	BatchCompleted  BatchStatus = "completed"
	BatchFailed     BatchStatus = "failed"
	BatchExpired    BatchStatus = "expired"
	BatchCancelled  BatchStatus = "cancelled"
)

// Terminal reports whether the status is final and polling should stop.
func (s BatchStatus) Terminal() bool {
	switch s {
	case BatchCompleted, BatchFailed, BatchExpired, BatchCancelled:
		return true
	}
	return false
}

// BatchJob tracks one asynchronous job submitted to the model service.
// MemberIDs is fixed at submission time and never mutated afterwards.
type BatchJob struct {
	ExternalID  string      `json:"external_id"`
	MemberIDs   []int       `json:"member_ids"`
	Status      BatchStatus `json:"status"`
	OutputRef   string      `json:"output_ref,omitempty"`
	SubmittedAt time.Time   `json:"submitted_at"`
}
