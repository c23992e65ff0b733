package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventconnect/cache"
	"eventconnect/config"
	"eventconnect/cron"
	"eventconnect/database"
	eventRepo "eventconnect/database/repository/event"
	profileRepo "eventconnect/database/repository/profile"
	"eventconnect/handlers"
	"eventconnect/middleware"
	"eventconnect/routes"
	"eventconnect/services/gamification"
	"eventconnect/services/search"
	"eventconnect/services/trending"
	"eventconnect/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Prefer Redis for the scoring cache; fall back to the bounded
	// in-process cache when it is unreachable.
	var scoreCache cache.Cache
	redisClient, err := utils.ConnectRedis()
	if err != nil {
		logger.Sugar().Warnf("main: redis unavailable, using in-memory cache: %v", err)
		scoreCache = cache.NewMemoryCache(config.AppConfig.MemoryCacheMaxEntries)
	} else {
		scoreCache = cache.NewRedisCache(redisClient)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	eventsRepo := eventRepo.NewMongoEventRepo()
	profilesRepo := profileRepo.NewMongoProfileRepo()

	// services.
	trendingService := trending.NewDefaultTrendingService(eventsRepo, scoreCache, config.AppConfig.TrendingCacheTTL)
	searchService := search.NewDefaultSearchService(eventsRepo)
	gamificationService := gamification.NewDefaultGamificationService(profilesRepo)

	// The refresh worker needs Redis for its queue; without it the feed is
	// simply computed on demand.
	if redisClient != nil {
		cron.InitTrendingWorker(trendingService)
	}

	utils.StartHealthMonitor(redisClient, database.MongoClient)

	recommendationHandler := handlers.NewRecommendationHandler(trendingService, searchService, logger)
	searchHandler := handlers.NewSearchHandler(searchService, logger)
	gamificationHandler := handlers.NewGamificationHandler(gamificationService, logger)
	eventHandler := handlers.NewEventHandler(eventsRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SearchEventsHandler:    searchHandler.SearchEventsHandler,
		GetTrendingHandler:     recommendationHandler.GetTrendingHandler,
		GetPersonalizedHandler: recommendationHandler.GetPersonalizedHandler,

		GetProfileHandler:   gamificationHandler.GetProfileHandler,
		RecordActionHandler: gamificationHandler.RecordActionHandler,

		ListEventsHandler:  eventHandler.ListEventsHandler,
		GetEventHandler:    eventHandler.GetEventHandler,
		CreateEventHandler: eventHandler.CreateEventHandler,

		IssueTokenHandler: handlers.IssueTokenHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
