package types

import "time"

// CandidateRecord is one unprocessed resume row selected from the store.
type CandidateRecord struct {
	ID         int       `json:"id"`
	ResumeText string    `json:"resume_text"`
	ReadyAt    time.Time `json:"ready_at"`
}

// JobStint is one work-history entry as extracted from a resume, input to
// the experience aggregator. All values are raw field text; date parsing
// happens downstream.
type JobStint struct {
	Company   Field `json:"company"`
	StartDate Field `json:"start_date"`
	EndDate   Field `json:"end_date"`
	Location  Field `json:"location"`
}
