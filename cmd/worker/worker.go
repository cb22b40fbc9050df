package main

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"nextstep-career-api/internal/config"
	"nextstep-career-api/internal/crawler"
	"nextstep-career-api/internal/logger"
	"nextstep-career-api/internal/queue"
	"nextstep-career-api/internal/store"
	"nextstep-career-api/internal/telemetry"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.InitLogger(cfg)

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

	jobs := store.NewMongoJobs(mongoClient.Database(cfg.DBName))
	cr := crawler.New(30 * time.Second)
	processor := queue.NewTaskProcessor(cr, jobs, metrics)

	redisOpt, err := config.AsynqRedisOpt(cfg)
	if err != nil {
		log.Fatal("Failed to configure Redis for the queue:", err)
	}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("Task failed", "type", task.Type(), "error", err)
			}),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TaskScrapeJobs, processor.HandleScrapeJobs)

	logger.Info("Starting worker", "redis", cfg.RedisURL, "concurrency", 10)
	if err := server.Run(mux); err != nil {
		log.Fatal("Worker stopped:", err)
	}
}
