package models

import "time"

// AnalyticsEntry is the per-job counter record stored in the job_analytics
// mapping. ViewHistory keeps at most the 100 most recent view timestamps.
type AnalyticsEntry struct {
	Views        int         `json:"views"`
	Applications int         `json:"applications"`
	ViewHistory  []time.Time `json:"viewHistory"`
}

// JobAnalytics is the derived read view of a job's counters.
type JobAnalytics struct {
	Views          int         `json:"views"`
	Applications   int         `json:"applications"`
	ConversionRate int         `json:"conversionRate"`
	ViewHistory    []time.Time `json:"viewHistory"`
}
