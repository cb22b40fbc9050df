package ai

import (
	"encoding/json"
	"strconv"
	"strings"

	"nextstep-career-api/models"
)

// DefaultMatchScore is returned when no usable score can be extracted from
// the analysis. Partial results are preferred over failing the request.
const DefaultMatchScore = 0.75

// DefaultSuggestions keeps the search response useful when the model returns
// nothing parseable for the follow-up suggestions.
var DefaultSuggestions = []string{
	"What skills are most in-demand in this field?",
	"What are the typical career paths?",
	"What education is required?",
	"What's the job market outlook?",
}

// ParseAnalysis normalizes a model reply into the analysis sum type:
// structured when the reply decodes as a JSON object, freeform text
// otherwise.
func ParseAnalysis(raw string) models.Analysis {
	cleaned := stripCodeFence(raw)

	var structured map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &structured); err == nil && len(structured) > 0 {
		return models.Analysis{Structured: structured}
	}

	return models.Analysis{Freeform: raw}
}

// ExtractMatchScore pulls a [0,1] fit score out of a structured analysis.
// Accepts numeric values, numeric strings and percentages; anything else
// yields DefaultMatchScore.
func ExtractMatchScore(a models.Analysis) float64 {
	if !a.IsStructured() {
		return DefaultMatchScore
	}

	raw, ok := a.Structured["match_score"]
	if !ok {
		return DefaultMatchScore
	}

	switch v := raw.(type) {
	case float64:
		return clampScore(v)
	case string:
		s := strings.TrimSpace(v)
		percent := strings.HasSuffix(s, "%")
		s = strings.TrimSuffix(s, "%")
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return DefaultMatchScore
		}
		if percent {
			f /= 100
		}
		return clampScore(f)
	default:
		return DefaultMatchScore
	}
}

func clampScore(f float64) float64 {
	// Models occasionally answer on a 0-100 scale despite the instructions.
	if f > 1 && f <= 100 {
		f /= 100
	}
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// SplitRecommendations breaks a line-per-item reply into a list, trimming
// bullet markers and blank lines.
func SplitRecommendations(raw string) []string {
	out := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = trimBullet(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// SplitSuggestions parses follow-up suggestions: at most max entries, bullet
// markers stripped, DefaultSuggestions when nothing survives.
func SplitSuggestions(raw string, max int) []string {
	out := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = trimBullet(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == max {
			break
		}
	}
	if len(out) == 0 {
		return append([]string{}, DefaultSuggestions...)
	}
	return out
}

// ParsePopularTopics decodes a topics reply; all three lists must be
// non-empty for the snapshot to be usable.
func ParsePopularTopics(raw string) (models.PopularTopics, bool) {
	var topics models.PopularTopics
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &topics); err != nil {
		return models.PopularTopics{}, false
	}
	if len(topics.TrendingCareers) == 0 || len(topics.PopularQuestions) == 0 || len(topics.IndustryInsights) == 0 {
		return models.PopularTopics{}, false
	}
	return topics, true
}

func trimBullet(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "-*• \t")
	// Numbered lists: "1. item" / "2) item"
	if i := strings.IndexAny(line, ".)"); i > 0 && i <= 2 {
		if _, err := strconv.Atoi(line[:i]); err == nil {
			line = line[i+1:]
		}
	}
	return strings.TrimSpace(line)
}

// stripCodeFence removes a surrounding markdown code fence, which the model
// adds around JSON replies more often than not.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:] // drop the language tag line
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
