package store

import (
	"context"
	"math"
	"time"

	"github.com/rzeqiri/jobportal/internal/kv"
	"github.com/rzeqiri/jobportal/internal/models"
)

// maxViewHistory bounds the per-job view timestamp history; the oldest
// entries are evicted first.
const maxViewHistory = 100

// AnalyticsStore keeps per-job view and application counters in the
// job_analytics mapping. Counters are initialized lazily on first track.
type AnalyticsStore struct {
	kv kv.Store
}

// NewAnalyticsStore builds an AnalyticsStore over the shared namespace.
func NewAnalyticsStore(s kv.Store) *AnalyticsStore {
	return &AnalyticsStore{kv: s}
}

func (s *AnalyticsStore) all(ctx context.Context) map[string]models.AnalyticsEntry {
	return kv.ReadJSON(ctx, s.kv, analyticsKey, map[string]models.AnalyticsEntry{})
}

// TrackView increments the job's view counter and appends a timestamp to
// the bounded view history.
func (s *AnalyticsStore) TrackView(ctx context.Context, jobID string) error {
	analytics := s.all(ctx)
	entry := analytics[jobID]

	entry.Views++
	entry.ViewHistory = append(entry.ViewHistory, time.Now().UTC())
	if len(entry.ViewHistory) > maxViewHistory {
		entry.ViewHistory = entry.ViewHistory[len(entry.ViewHistory)-maxViewHistory:]
	}

	analytics[jobID] = entry
	return kv.WriteJSON(ctx, s.kv, analyticsKey, analytics)
}

// TrackApplication increments the job's application counter.
func (s *AnalyticsStore) TrackApplication(ctx context.Context, jobID string) error {
	analytics := s.all(ctx)
	entry := analytics[jobID]
	entry.Applications++
	analytics[jobID] = entry
	return kv.WriteJSON(ctx, s.kv, analyticsKey, analytics)
}

// JobAnalytics returns the job's counters with the derived conversion rate:
// round(applications/views*100), zero when there are no views.
func (s *AnalyticsStore) JobAnalytics(ctx context.Context, jobID string) models.JobAnalytics {
	entry, ok := s.all(ctx)[jobID]
	if !ok {
		return models.JobAnalytics{}
	}

	rate := 0
	if entry.Views > 0 {
		rate = int(math.Round(float64(entry.Applications) / float64(entry.Views) * 100))
	}
	return models.JobAnalytics{
		Views:          entry.Views,
		Applications:   entry.Applications,
		ConversionRate: rate,
		ViewHistory:    entry.ViewHistory,
	}
}

// All returns the whole analytics mapping keyed by job id.
func (s *AnalyticsStore) All(ctx context.Context) map[string]models.AnalyticsEntry {
	return s.all(ctx)
}
