package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"eventconnect/config"
	"eventconnect/models"
	"eventconnect/services/trending"

	"github.com/hibiken/asynq"
)

const TypeTrendingRefresh = "trending:refresh"

// Windows the refresher keeps warm. Location-scoped feeds are computed on
// demand; only the global feeds are precomputed.
var refreshWindows = []string{"1h", "6h", "24h", "7d"}

// InitTrendingWorker runs the async worker and its periodic scheduler in the
// background, recomputing the trending cache so UI polls always hit warm data.
func InitTrendingWorker(trendingSvc trending.TrendingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeTrendingRefresh, handleTrendingRefresh(trendingSvc))

	go func() {
		log.Println("[TrendingWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TrendingWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Println("[TrendingWorker] max retry attempts reached, giving up")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runScheduler(redisOpts)
}

func runScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, nil)

	every := config.AppConfig.TrendingRefreshEvery
	if every <= 0 {
		every = 5 * time.Minute
	}
	spec := fmt.Sprintf("@every %s", every)

	for _, window := range refreshWindows {
		payload, err := json.Marshal(models.TrendingMetrics{TimeWindow: window})
		if err != nil {
			log.Printf("[TrendingWorker] failed to marshal payload for window %s: %v", window, err)
			continue
		}
		if _, err := scheduler.Register(spec, asynq.NewTask(TypeTrendingRefresh, payload)); err != nil {
			log.Printf("[TrendingWorker] failed to schedule refresh for window %s: %v", window, err)
		}
	}

	if err := scheduler.Run(); err != nil {
		log.Printf("[TrendingWorker] scheduler stopped: %v", err)
	}
}

func handleTrendingRefresh(trendingSvc trending.TrendingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var metrics models.TrendingMetrics
		if err := json.Unmarshal(task.Payload(), &metrics); err != nil {
			log.Printf("[TrendingRefresh] invalid payload: %v", err)
			return err
		}

		if err := trendingSvc.Refresh(ctx, metrics); err != nil {
			log.Printf("[TrendingRefresh] failed to refresh window %s: %v", metrics.TimeWindow, err)
			return err
		}
		return nil
	}
}
