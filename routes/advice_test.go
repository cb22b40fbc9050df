package routes

import (
	"net/http"
	"testing"

	"nextstep-career-api/internal/ai"
	"nextstep-career-api/models"
)

func TestCareerAdvice(t *testing.T) {
	profiles := newFakeProfiles()
	advice := &fakeAdvice{}
	router, api := newAPIRouter()
	SetupAdviceRoutes(api, profiles, advice, cannedCompleter("Focus on data engineering fundamentals."))

	profile := mustCreateProfile(t, profiles)

	rec := doJSON(t, router, http.MethodPost, "/api/career-advice", models.CareerAdviceRequest{
		UserID: profile.ID,
		Query:  "How do I move into data engineering?",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var result models.CareerAdvice
	decodeBody(t, rec, &result)
	if result.ID == "" || result.UserID != profile.ID {
		t.Errorf("result identity wrong: %+v", result)
	}
	if result.Advice != "Focus on data engineering fundamentals." {
		t.Errorf("advice = %q", result.Advice)
	}
	if result.Query != "How do I move into data engineering?" {
		t.Errorf("query must be echoed back, got %q", result.Query)
	}
	if len(advice.items) != 1 {
		t.Errorf("advice must be persisted, stored %d", len(advice.items))
	}
}

func TestCareerAdviceUnknownUser(t *testing.T) {
	router, api := newAPIRouter()
	SetupAdviceRoutes(api, newFakeProfiles(), &fakeAdvice{}, cannedCompleter("ignored"))

	rec := doJSON(t, router, http.MethodPost, "/api/career-advice", models.CareerAdviceRequest{
		UserID: "missing",
		Query:  "anything",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown user must 404, got %d", rec.Code)
	}
}

func TestCareerAdviceGatewayError(t *testing.T) {
	profiles := newFakeProfiles()
	router, api := newAPIRouter()
	SetupAdviceRoutes(api, profiles, &fakeAdvice{}, failingCompleter(ai.ErrTimeout))

	profile := mustCreateProfile(t, profiles)

	rec := doJSON(t, router, http.MethodPost, "/api/career-advice", models.CareerAdviceRequest{
		UserID: profile.ID,
		Query:  "anything",
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp map[string]interface{}
	decodeBody(t, rec, &resp)
	if resp["error_code"] != "ai_timeout" {
		t.Errorf("error_code = %v", resp["error_code"])
	}
}

func TestCareerAdviceValidation(t *testing.T) {
	router, api := newAPIRouter()
	SetupAdviceRoutes(api, newFakeProfiles(), &fakeAdvice{}, cannedCompleter("ignored"))

	rec := doJSON(t, router, http.MethodPost, "/api/career-advice", map[string]string{"user_id": "u-1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing query must be rejected, got %d", rec.Code)
	}
}

func TestListCareerAdviceByUser(t *testing.T) {
	profiles := newFakeProfiles()
	advice := &fakeAdvice{}
	router, api := newAPIRouter()
	SetupAdviceRoutes(api, profiles, advice, cannedCompleter("answer"))

	profile := mustCreateProfile(t, profiles)
	rec := doJSON(t, router, http.MethodPost, "/api/career-advice", models.CareerAdviceRequest{
		UserID: profile.ID,
		Query:  "first question",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("advise status = %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/career-advice/"+profile.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}

	var list []models.CareerAdvice
	decodeBody(t, rec, &list)
	if len(list) != 1 || list[0].Query != "first question" {
		t.Errorf("unexpected history: %+v", list)
	}
}
