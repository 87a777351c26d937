package types

import "time"

// JobMetric is the computed tenure detail for a single work-history entry.
type JobMetric struct {
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	TenureYears float64   `json:"tenure_years"`
	Confidence  float64   `json:"confidence"`
	IsCurrent   bool      `json:"is_current"`
	StartDate   time.Time `json:"start_date,omitempty"`
	EndDate     time.Time `json:"end_date,omitempty"`
	HasStart    bool      `json:"has_start"`
	HasEnd      bool      `json:"has_end"`
}

// ExperienceMetrics aggregates tenure across all work-history entries.
// Recomputed each run; never persisted directly.
type ExperienceMetrics struct {
	TotalExperience float64     `json:"total_experience"`
	AvgTenure       float64     `json:"avg_tenure"`
	USExperience    float64     `json:"us_experience"`
	Confidence      float64     `json:"confidence"`
	JobMetrics      []JobMetric `json:"job_metrics"`
}
