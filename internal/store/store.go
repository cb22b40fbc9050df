// Package store owns persistence for every record the API serves. Handlers
// depend on the interfaces here so tests can substitute in-memory fakes.
package store

import (
	"context"
	"errors"

	"nextstep-career-api/models"
)

// ErrNotFound is returned when a looked-up document does not exist.
var ErrNotFound = errors.New("store: not found")

type ProfileStore interface {
	// Create assigns the identifier and creation timestamp, persists, and
	// returns the stored document.
	Create(ctx context.Context, in models.ProfileCreate) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Get(ctx context.Context, id string) (*models.Profile, error)
	// Update replaces the full document, preserving id and created_at.
	Update(ctx context.Context, id string, in models.ProfileCreate) (*models.Profile, error)
}

type AnalysisStore interface {
	Insert(ctx context.Context, rec *models.JobAnalysis) error
	ListByUser(ctx context.Context, userID string) ([]models.JobAnalysis, error)
}

type AdviceStore interface {
	Insert(ctx context.Context, rec *models.CareerAdvice) error
	ListByUser(ctx context.Context, userID string) ([]models.CareerAdvice, error)
}

type SearchStore interface {
	Insert(ctx context.Context, rec *models.AnonymousSearch) error
}

type JobStore interface {
	// Upsert inserts or refreshes a posting keyed by its listing URL.
	Upsert(ctx context.Context, job *models.JobPosting) error
	Search(ctx context.Context, query, location string, limit int64) ([]models.JobPosting, error)
}
