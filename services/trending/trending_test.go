package trending

import (
	"context"
	"testing"
	"time"

	"eventconnect/cache"
	"eventconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo serves a fixed slice and counts upcoming-query calls.
type fakeEventRepo struct {
	events []models.Event
	calls  int
}

func (f *fakeEventRepo) GetAll(ctx context.Context) ([]models.Event, error) { return f.events, nil }
func (f *fakeEventRepo) GetUpcoming(ctx context.Context, now time.Time) ([]models.Event, error) {
	f.calls++
	return f.events, nil
}
func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) GetByCategory(ctx context.Context, category string) ([]models.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) Create(ctx context.Context, event *models.Event) error { return nil }
func (f *fakeEventRepo) Count(ctx context.Context) (int64, error)              { return int64(len(f.events)), nil }

func newTestService(events []models.Event) (*DefaultTrendingService, *fakeEventRepo) {
	repo := &fakeEventRepo{events: events}
	svc := NewDefaultTrendingService(repo, cache.NewMemoryCache(16), time.Minute)
	svc.Now = func() time.Time { return testNow }
	return svc, repo
}

func TestGetTrendingCachesResult(t *testing.T) {
	svc, repo := newTestService([]models.Event{hotEvent("e1")})
	ctx := context.Background()

	first, err := svc.GetTrending(ctx, models.TrendingMetrics{TimeWindow: "24h"})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.GetTrending(ctx, models.TrendingMetrics{TimeWindow: "24h"})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls, "second call must be served from cache")
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].TrendingScore, second[0].TrendingScore)
}

func TestGetTrendingNormalizesTimeWindow(t *testing.T) {
	svc, repo := newTestService([]models.Event{hotEvent("e1")})
	ctx := context.Background()

	_, err := svc.GetTrending(ctx, models.TrendingMetrics{TimeWindow: "bogus"})
	require.NoError(t, err)

	// "bogus" normalized to the default window, so this hits the same entry.
	_, err = svc.GetTrending(ctx, models.TrendingMetrics{TimeWindow: "24h"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
}

func TestRefreshRewritesCache(t *testing.T) {
	svc, repo := newTestService([]models.Event{hotEvent("e1")})
	ctx := context.Background()

	_, err := svc.GetTrending(ctx, models.TrendingMetrics{TimeWindow: "24h"})
	require.NoError(t, err)

	require.NoError(t, svc.Refresh(ctx, models.TrendingMetrics{TimeWindow: "24h"}))
	assert.Equal(t, 2, repo.calls, "refresh recomputes even on a warm cache")

	_, err = svc.GetTrending(ctx, models.TrendingMetrics{TimeWindow: "24h"})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls, "read after refresh is served from cache")
}
