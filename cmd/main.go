package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"nextstep-career-api/internal/ai"
	"nextstep-career-api/internal/cache"
	"nextstep-career-api/internal/config"
	"nextstep-career-api/internal/crawler"
	"nextstep-career-api/internal/logger"
	"nextstep-career-api/internal/queue"
	"nextstep-career-api/internal/store"
	"nextstep-career-api/internal/telemetry"
	"nextstep-career-api/middleware"
	"nextstep-career-api/routes"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.InitLogger(cfg)

	if cfg.OTLPEndpoint != "" {
		shutdownTracer, err := telemetry.InitTracer("nextstep-career-api", cfg.OTLPEndpoint, cfg.TraceSampleRatio)
		if err != nil {
			logger.Warn("Tracing disabled", "error", err)
		} else {
			defer shutdownTracer()
		}
	}

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		log.Fatal("Failed to initialize metrics:", err)
	}

	mongoClient, err := config.ConnectMongoDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		mongoClient.Disconnect(ctx)
	}()

	rdb, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer rdb.Close()

	ctx := context.Background()
	gateway, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, time.Duration(cfg.AITimeout)*time.Second, metrics)
	if err != nil {
		log.Fatal("Failed to initialize Gemini client:", err)
	}
	defer gateway.Close()

	db := mongoClient.Database(cfg.DBName)
	profiles := store.NewMongoProfiles(db)
	analyses := store.NewMongoAnalyses(db)
	advice := store.NewMongoAdvice(db)
	searches := store.NewMongoSearches(db)
	jobs := store.NewMongoJobs(db)

	redisOpt, err := config.AsynqRedisOpt(cfg)
	if err != nil {
		log.Fatal("Failed to configure Redis for the queue:", err)
	}
	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.TracingMiddleware())
	router.Use(middleware.EnrichTrace())
	router.Use(middleware.RateLimitMiddleware(rdb, cfg))
	router.Use(metricsMiddleware(metrics))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
	})

	api := router.Group("/api")
	routes.SetupProfileRoutes(api, profiles)
	routes.SetupAnalysisRoutes(api, profiles, analyses, gateway)
	routes.SetupAdviceRoutes(api, profiles, advice, gateway)
	routes.SetupSearchRoutes(api, searches, gateway, cache.NewRedisTopics(rdb, time.Duration(cfg.TopicsCacheTTL)*time.Second))
	routes.SetupDegreeRoutes(api, gateway)
	routes.SetupJobRoutes(api, jobs, asynqClient)

	// Periodic scrapes run through the same queue the refresh endpoint uses,
	// so the worker process stays the single place listings are fetched.
	scheduler := crawler.NewScheduler()
	if cfg.ScrapeInterval > 0 {
		for _, source := range cfg.ScrapeSources {
			src := source
			err := scheduler.ScheduleInterval("scrape:"+src, time.Duration(cfg.ScrapeInterval)*time.Minute, func() error {
				task, err := queue.NewScrapeJobsTask(src, cfg.ScrapeQuery, cfg.ScrapeLocation, cfg.ScrapeLimit)
				if err != nil {
					return err
				}
				_, err = asynqClient.Enqueue(task)
				return err
			})
			if err != nil {
				logger.Warn("Failed to schedule scrape", "source", src, "error", err)
			}
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}

func metricsMiddleware(m *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.RecordRequest(c.Request.Context(), c.FullPath(), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
