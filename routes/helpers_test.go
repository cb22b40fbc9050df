package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nextstep-career-api/internal/store"
	"nextstep-career-api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// completerFunc adapts a function to the gateway interface.
type completerFunc func(ctx context.Context, system, user string) (string, error)

func (f completerFunc) Complete(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}

func cannedCompleter(reply string) completerFunc {
	return func(context.Context, string, string) (string, error) {
		return reply, nil
	}
}

func failingCompleter(err error) completerFunc {
	return func(context.Context, string, string) (string, error) {
		return "", err
	}
}

type fakeProfiles struct {
	mu    sync.Mutex
	items map[string]models.Profile
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{items: map[string]models.Profile{}}
}

func (f *fakeProfiles) Create(_ context.Context, in models.ProfileCreate) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := models.Profile{
		ID:              uuid.NewString(),
		Name:            in.Name,
		EducationLevel:  in.EducationLevel,
		FieldOfStudy:    in.FieldOfStudy,
		Skills:          in.Skills,
		ExperienceYears: in.ExperienceYears,
		CurrentRole:     in.CurrentRole,
		CareerInterests: in.CareerInterests,
		CreatedAt:       time.Now().UTC(),
	}
	f.items[p.ID] = p
	return &p, nil
}

func (f *fakeProfiles) List(context.Context) ([]models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Profile{}
	for _, p := range f.items {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfiles) Get(_ context.Context, id string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProfiles) Update(_ context.Context, id string, in models.ProfileCreate) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	old, ok := f.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	p := models.Profile{
		ID:              old.ID,
		Name:            in.Name,
		EducationLevel:  in.EducationLevel,
		FieldOfStudy:    in.FieldOfStudy,
		Skills:          in.Skills,
		ExperienceYears: in.ExperienceYears,
		CurrentRole:     in.CurrentRole,
		CareerInterests: in.CareerInterests,
		CreatedAt:       old.CreatedAt,
	}
	f.items[id] = p
	return &p, nil
}

type fakeAnalyses struct {
	mu    sync.Mutex
	items []models.JobAnalysis
	err   error
}

func (f *fakeAnalyses) Insert(_ context.Context, rec *models.JobAnalysis) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, *rec)
	return nil
}

func (f *fakeAnalyses) ListByUser(_ context.Context, userID string) ([]models.JobAnalysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.JobAnalysis{}
	for _, rec := range f.items {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeAdvice struct {
	mu    sync.Mutex
	items []models.CareerAdvice
}

func (f *fakeAdvice) Insert(_ context.Context, rec *models.CareerAdvice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, *rec)
	return nil
}

func (f *fakeAdvice) ListByUser(_ context.Context, userID string) ([]models.CareerAdvice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.CareerAdvice{}
	for _, rec := range f.items {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeSearches struct {
	mu    sync.Mutex
	items []models.AnonymousSearch
	err   error
}

func (f *fakeSearches) Insert(_ context.Context, rec *models.AnonymousSearch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, *rec)
	return nil
}

type fakeJobs struct {
	mu    sync.Mutex
	items []models.JobPosting
}

func (f *fakeJobs) Upsert(_ context.Context, job *models.JobPosting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].URL == job.URL {
			f.items[i] = *job
			return nil
		}
	}
	f.items = append(f.items, *job)
	return nil
}

func (f *fakeJobs) Search(_ context.Context, query, location string, limit int64) ([]models.JobPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.JobPosting{}
	for _, job := range f.items {
		out = append(out, job)
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func newAPIRouter() (*gin.Engine, *gin.RouterGroup) {
	router := gin.New()
	return router, router.Group("/api")
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func mustCreateProfile(t *testing.T, profiles *fakeProfiles) *models.Profile {
	t.Helper()
	p, err := profiles.Create(context.Background(), models.ProfileCreate{
		Name:            "Ana",
		EducationLevel:  "Bachelor's",
		FieldOfStudy:    "Computer Science",
		Skills:          []string{"Go", "SQL"},
		ExperienceYears: 3,
		CurrentRole:     "Backend Developer",
		CareerInterests: []string{"Data Engineering"},
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return p
}
