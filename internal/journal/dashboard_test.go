package journal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huntlog/huntlog/internal/conf"
	"github.com/huntlog/huntlog/internal/observability/metrics"
	"github.com/huntlog/huntlog/internal/species"
)

func TestDashboard(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	area := h.area(t, h.hunter, "Hochwald")
	h.entry(t, h.hunter, EntryInput{Species: Some(species.Hare), Date: Some("2023-11-01"), TrophyKept: Some(true)})
	h.entry(t, h.hunter, EntryInput{Species: Some(species.Fox), Date: Some("2024-03-31"), TrophyKept: Some(true)})
	h.entry(t, h.hunter, EntryInput{Species: Some(species.Fox), Date: Some("2024-04-10"), AreaID: Some(area.ID)})
	h.entry(t, h.hunter, EntryInput{Species: Some(species.Roebuck), Date: Some("2024-05-01"), TrophyKept: Some(true)})
	h.entry(t, h.hunter, EntryInput{Species: Some(species.Boar), Date: Some("2024-06-01")})
	h.entry(t, h.other, EntryInput{Species: Some(species.RedStag), Date: Some("2024-06-02")})

	d, err := h.svc.Dashboard(ctx, h.hunter, h.svc.Today())
	require.NoError(t, err)

	assert.Equal(t, "2024-06-15", d.Date)
	assert.Equal(t, "2024-04-01", d.Season.StartDate())
	assert.Equal(t, "2025-03-31", d.Season.EndDate())

	assert.Equal(t, 3, d.Current.Counts.Total)
	assert.Equal(t, 1, d.Current.Counts.BigGame)
	assert.Equal(t, 1, d.Current.Counts.WildBoar)
	assert.Equal(t, 1, d.Current.Counts.Predator)
	assert.Zero(t, d.Current.Counts.SmallGame)
	assert.Equal(t, 5, d.AllTime.Counts.Total)

	require.Len(t, d.Current.Species, 3)
	require.Len(t, d.Current.Areas, 1)
	assert.Equal(t, "Hochwald", d.Current.Areas[0].Name)
	require.Len(t, d.AllTime.Species, 4)
	assert.Equal(t, species.Fox, d.AllTime.Species[0].Species)
	assert.Equal(t, 2, d.AllTime.Species[0].Count)

	require.Len(t, d.Trophies, 3)
	assert.Equal(t, []species.Code{species.Roebuck, species.Fox, species.Hare},
		[]species.Code{d.Trophies[0].Species, d.Trophies[1].Species, d.Trophies[2].Species})

	require.Len(t, d.Recent, 5)
	assert.Equal(t, species.Boar, d.Recent[0].Species)
}

func TestDashboardCache(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	h.entry(t, h.hunter, EntryInput{Species: Some(species.Fox), Date: Some("2024-05-01")})

	first, err := h.svc.Dashboard(ctx, h.hunter, h.svc.Today())
	require.NoError(t, err)
	second, err := h.svc.Dashboard(ctx, h.hunter, h.svc.Today())
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, h.recorder.OperationCount(metrics.OpCacheGet, metrics.StatusHit))

	h.entry(t, h.hunter, EntryInput{Species: Some(species.Badger), Date: Some("2024-05-02")})
	third, err := h.svc.Dashboard(ctx, h.hunter, h.svc.Today())
	require.NoError(t, err)
	assert.Equal(t, 2, third.Current.Counts.Total, "writes invalidate the cached dashboard")

	nextDay, err := h.svc.Dashboard(ctx, h.hunter, h.svc.Today().AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.NotSame(t, third, nextDay)
	assert.Equal(t, 3, h.recorder.OperationCount(metrics.OpCacheGet, metrics.StatusMiss))
}

func TestDashboardWithoutCache(t *testing.T) {
	t.Parallel()
	h := newHarness(t, func(s *conf.Settings) { s.Dashboard.CacheTTL = 0 })
	ctx := context.Background()

	first, err := h.svc.Dashboard(ctx, h.hunter, h.svc.Today())
	require.NoError(t, err)
	second, err := h.svc.Dashboard(ctx, h.hunter, h.svc.Today())
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Zero(t, h.recorder.OperationCount(metrics.OpCacheGet, metrics.StatusHit))
	assert.Empty(t, first.Trophies)
	assert.Empty(t, first.Recent)
}
