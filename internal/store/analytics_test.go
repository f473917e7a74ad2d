package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rzeqiri/jobportal/internal/models"
)

func TestJobAnalyticsUnknownJob(t *testing.T) {
	f := newFixture(t)

	require.Equal(t, models.JobAnalytics{}, f.analytics.JobAnalytics(context.Background(), "job-1"))
}

func TestConversionRate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, f.analytics.TrackView(ctx, "job-1"))
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, f.analytics.TrackApplication(ctx, "job-1"))
	}

	got := f.analytics.JobAnalytics(ctx, "job-1")
	require.Equal(t, 10, got.Views)
	require.Equal(t, 3, got.Applications)
	require.Equal(t, 30, got.ConversionRate)
	require.Len(t, got.ViewHistory, 10)
}

func TestConversionRateWithoutViews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.analytics.TrackApplication(ctx, "job-1"))

	got := f.analytics.JobAnalytics(ctx, "job-1")
	require.Equal(t, 0, got.Views)
	require.Equal(t, 1, got.Applications)
	require.Equal(t, 0, got.ConversionRate)
}

func TestViewHistoryIsBounded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < maxViewHistory+20; i++ {
		require.NoError(t, f.analytics.TrackView(ctx, "job-1"))
	}

	got := f.analytics.JobAnalytics(ctx, "job-1")
	require.Equal(t, maxViewHistory+20, got.Views)
	require.Len(t, got.ViewHistory, maxViewHistory)

	// The kept entries are the most recent ones.
	for i := 1; i < len(got.ViewHistory); i++ {
		require.False(t, got.ViewHistory[i].Before(got.ViewHistory[i-1]))
	}
}

func TestAllKeyedByJob(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.analytics.TrackView(ctx, "job-1"))
	require.NoError(t, f.analytics.TrackView(ctx, "job-2"))
	require.NoError(t, f.analytics.TrackApplication(ctx, "job-2"))

	all := f.analytics.All(ctx)
	require.Len(t, all, 2)
	require.Equal(t, 1, all["job-1"].Views)
	require.Equal(t, 1, all["job-2"].Applications)
}
