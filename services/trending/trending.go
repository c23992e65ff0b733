package trending

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"eventconnect/cache"
	eventRepo "eventconnect/database/repository/event"
	"eventconnect/models"

	"go.uber.org/zap"
)

// Valid time windows for a trending query.
var timeWindows = map[string]bool{
	"1h": true, "6h": true, "24h": true, "7d": true,
}

const defaultTimeWindow = "24h"

// TrendingService computes the ranked trending feed.
type TrendingService interface {
	GetTrending(ctx context.Context, metrics models.TrendingMetrics) ([]models.TrendingEvent, error)
	Refresh(ctx context.Context, metrics models.TrendingMetrics) error
}

// DefaultTrendingService ranks upcoming events and caches the result so the
// feed survives the UI's re-poll interval without recomputation.
type DefaultTrendingService struct {
	Repo     eventRepo.EventRepository
	Cache    cache.Cache
	CacheTTL time.Duration
	Now      func() time.Time
}

func NewDefaultTrendingService(repo eventRepo.EventRepository, c cache.Cache, ttl time.Duration) *DefaultTrendingService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &DefaultTrendingService{
		Repo:     repo,
		Cache:    c,
		CacheTTL: ttl,
		Now:      time.Now,
	}
}

// GetTrending returns the cached trending feed for the given window and
// location, recomputing it on a miss.
func (s *DefaultTrendingService) GetTrending(ctx context.Context, metrics models.TrendingMetrics) ([]models.TrendingEvent, error) {
	metrics = normalize(metrics)
	key := cacheKey(metrics)

	if cached, err := s.Cache.Get(ctx, key); err == nil {
		var out []models.TrendingEvent
		if err := json.Unmarshal(cached, &out); err == nil {
			return out, nil
		}
		// A corrupt cache entry falls through to recomputation.
	}

	return s.compute(ctx, metrics, key)
}

// Refresh recomputes the feed and rewrites the cache entry unconditionally.
func (s *DefaultTrendingService) Refresh(ctx context.Context, metrics models.TrendingMetrics) error {
	metrics = normalize(metrics)
	_, err := s.compute(ctx, metrics, cacheKey(metrics))
	return err
}

func (s *DefaultTrendingService) compute(ctx context.Context, metrics models.TrendingMetrics, key string) ([]models.TrendingEvent, error) {
	events, err := s.Repo.GetUpcoming(ctx, s.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming events: %w", err)
	}

	ranked := Rank(events, s.Now(), metrics)

	if data, err := json.Marshal(ranked); err == nil {
		if err := s.Cache.Set(ctx, key, data, s.CacheTTL); err != nil {
			zap.L().Warn("failed to cache trending feed", zap.String("key", key), zap.Error(err))
		}
	}
	return ranked, nil
}

func normalize(metrics models.TrendingMetrics) models.TrendingMetrics {
	if !timeWindows[metrics.TimeWindow] {
		metrics.TimeWindow = defaultTimeWindow
	}
	metrics.Location = strings.TrimSpace(metrics.Location)
	return metrics
}

func cacheKey(metrics models.TrendingMetrics) string {
	return fmt.Sprintf("trending:%s:%s", metrics.TimeWindow, strings.ToLower(metrics.Location))
}
