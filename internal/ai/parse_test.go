package ai

import (
	"reflect"
	"testing"

	"nextstep-career-api/models"
)

func TestParseAnalysisStructured(t *testing.T) {
	raw := `{"required_education": "Bachelor's", "match_score": 0.82}`

	analysis := ParseAnalysis(raw)
	if !analysis.IsStructured() {
		t.Fatalf("expected structured analysis, got freeform: %q", analysis.Freeform)
	}
	if analysis.Structured["required_education"] != "Bachelor's" {
		t.Errorf("unexpected required_education: %v", analysis.Structured["required_education"])
	}
}

func TestParseAnalysisCodeFence(t *testing.T) {
	raw := "```json\n{\"career_level\": \"senior\"}\n```"

	analysis := ParseAnalysis(raw)
	if !analysis.IsStructured() {
		t.Fatalf("expected fenced JSON to parse as structured")
	}
	if analysis.Structured["career_level"] != "senior" {
		t.Errorf("unexpected career_level: %v", analysis.Structured["career_level"])
	}
}

func TestParseAnalysisFreeform(t *testing.T) {
	raw := "This role requires strong Go experience and a few years in backend teams."

	analysis := ParseAnalysis(raw)
	if analysis.IsStructured() {
		t.Fatalf("expected freeform analysis")
	}
	if analysis.Freeform != raw {
		t.Errorf("freeform text must keep the original reply, got %q", analysis.Freeform)
	}
}

func TestExtractMatchScore(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want float64
	}{
		{"float in range", 0.82, 0.82},
		{"percentage scale", 85.0, 0.85},
		{"numeric string", "0.6", 0.6},
		{"percent string", "75%", 0.75},
		{"negative clamped", -0.3, 0},
		{"garbage string", "very good fit", DefaultMatchScore},
		{"wrong type", []interface{}{1.0}, DefaultMatchScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := models.Analysis{Structured: map[string]interface{}{"match_score": tt.raw}}
			if got := ExtractMatchScore(a); got != tt.want {
				t.Errorf("ExtractMatchScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractMatchScoreDefaults(t *testing.T) {
	if got := ExtractMatchScore(models.Analysis{Freeform: "no structure"}); got != DefaultMatchScore {
		t.Errorf("freeform analysis must yield the default score, got %v", got)
	}
	if got := ExtractMatchScore(models.Analysis{Structured: map[string]interface{}{}}); got != DefaultMatchScore {
		t.Errorf("missing match_score must yield the default score, got %v", got)
	}
}

func TestSplitRecommendations(t *testing.T) {
	raw := "- Learn Kubernetes\n\n2. Get an AWS certification\n* Contribute to open source\n"

	got := SplitRecommendations(raw)
	want := []string{"Learn Kubernetes", "Get an AWS certification", "Contribute to open source"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitRecommendations() = %v, want %v", got, want)
	}
}

func TestSplitSuggestionsCapsAtMax(t *testing.T) {
	raw := "1. one\n2. two\n3. three\n4. four\n5. five"

	got := SplitSuggestions(raw, 4)
	if len(got) != 4 {
		t.Fatalf("expected 4 suggestions, got %d: %v", len(got), got)
	}
	if got[0] != "one" || got[3] != "four" {
		t.Errorf("unexpected suggestions: %v", got)
	}
}

func TestSplitSuggestionsFallsBackToDefaults(t *testing.T) {
	got := SplitSuggestions("   \n\n", 4)
	if !reflect.DeepEqual(got, DefaultSuggestions) {
		t.Errorf("empty reply must yield the default suggestions, got %v", got)
	}
}

func TestParsePopularTopics(t *testing.T) {
	raw := "```json\n" + `{
		"trending_careers": ["Data Scientist", "Cloud Engineer", "PM", "Designer", "Analyst"],
		"popular_questions": ["How to start?", "What to learn?", "Which cert?", "Remote work?", "Salary?"],
		"industry_insights": ["Technology", "Healthcare", "Finance", "Education", "Energy"]
	}` + "\n```"

	topics, ok := ParsePopularTopics(raw)
	if !ok {
		t.Fatalf("expected topics to parse")
	}
	if len(topics.TrendingCareers) != 5 {
		t.Errorf("unexpected trending careers: %v", topics.TrendingCareers)
	}
}

func TestParsePopularTopicsRejectsPartial(t *testing.T) {
	if _, ok := ParsePopularTopics(`{"trending_careers": ["only one list"]}`); ok {
		t.Errorf("a reply missing lists must be rejected")
	}
	if _, ok := ParsePopularTopics("not json at all"); ok {
		t.Errorf("a non-JSON reply must be rejected")
	}
}
