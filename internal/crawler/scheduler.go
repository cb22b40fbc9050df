package crawler

import (
	"time"

	"github.com/go-co-op/gocron"
)

// Scheduler manages scheduled scrape jobs
type Scheduler struct {
	scheduler *gocron.Scheduler
}

// NewScheduler creates a new scrape scheduler
func NewScheduler() *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.TagsUnique()
	return &Scheduler{scheduler: s}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.scheduler.StartAsync()
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// ScheduleInterval schedules a job to run at regular intervals
func (s *Scheduler) ScheduleInterval(tag string, interval time.Duration, job func() error) error {
	_, err := s.scheduler.Every(interval).Tag(tag).Do(job)
	return err
}
