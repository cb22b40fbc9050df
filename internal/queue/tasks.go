package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"nextstep-career-api/internal/crawler"
	"nextstep-career-api/internal/logger"
	"nextstep-career-api/internal/store"
	"nextstep-career-api/internal/telemetry"
)

const TaskScrapeJobs = "jobs:scrape"

type ScrapeJobsPayload struct {
	Source   string `json:"source"`
	Query    string `json:"query"`
	Location string `json:"location"`
	Limit    int    `json:"limit"`
}

// NewScrapeJobsTask builds a scrape task for one source.
func NewScrapeJobsTask(source, query, location string, limit int) (*asynq.Task, error) {
	payload, err := json.Marshal(ScrapeJobsPayload{
		Source:   source,
		Query:    query,
		Location: location,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskScrapeJobs,
		payload,
		asynq.MaxRetry(3),
		asynq.Timeout(5*time.Minute),
		asynq.Queue("default"),
	), nil
}

// TaskProcessor handles queued scrape tasks in the worker process.
type TaskProcessor struct {
	crawler *crawler.Crawler
	jobs    store.JobStore
	metrics *telemetry.Metrics
}

func NewTaskProcessor(cr *crawler.Crawler, jobs store.JobStore, metrics *telemetry.Metrics) *TaskProcessor {
	return &TaskProcessor{
		crawler: cr,
		jobs:    jobs,
		metrics: metrics,
	}
}

func (p *TaskProcessor) HandleScrapeJobs(ctx context.Context, t *asynq.Task) error {
	var payload ScrapeJobsPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal failed: %w", asynq.SkipRetry)
	}

	src, ok := crawler.LookupSource(payload.Source)
	if !ok {
		// Unknown source is a configuration mistake, retrying won't fix it
		return fmt.Errorf("unknown source %q: %w", payload.Source, asynq.SkipRetry)
	}

	query := payload.Query
	if payload.Location != "" {
		query = query + " " + payload.Location
	}

	jobs, err := p.crawler.ScrapeJobs(src, query, payload.Limit)
	if err != nil {
		return err // Will retry
	}

	stored := 0
	for i := range jobs {
		if err := p.jobs.Upsert(ctx, &jobs[i]); err != nil {
			logger.Warn("Failed to store job posting", "url", jobs[i].URL, "error", err)
			continue
		}
		stored++
	}

	p.metrics.RecordJobsScraped(ctx, payload.Source, int64(stored))
	logger.Info("Scrape completed", "source", payload.Source, "found", len(jobs), "stored", stored)
	return nil
}
