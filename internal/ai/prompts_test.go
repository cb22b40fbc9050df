package ai

import (
	"strings"
	"testing"

	"nextstep-career-api/models"
)

func sampleProfile() *models.Profile {
	return &models.Profile{
		ID:              "u-1",
		Name:            "Ana",
		EducationLevel:  "Bachelor's",
		FieldOfStudy:    "Computer Science",
		Skills:          []string{"Go", "SQL"},
		ExperienceYears: 3,
		CurrentRole:     "Backend Developer",
		CareerInterests: []string{"Data Engineering"},
	}
}

func TestProfileContext(t *testing.T) {
	got := profileContext(sampleProfile())

	for _, want := range []string{
		"- Name: Ana",
		"- Education: Bachelor's in Computer Science",
		"- Skills: Go, SQL",
		"- Experience: 3 years",
		"- Current Role: Backend Developer",
		"- Career Interests: Data Engineering",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("profile context missing %q:\n%s", want, got)
		}
	}
}

func TestProfileContextOptionalFields(t *testing.T) {
	p := sampleProfile()
	p.FieldOfStudy = ""
	p.CurrentRole = ""

	got := profileContext(p)
	if !strings.Contains(got, "- Education: Bachelor's\n") {
		t.Errorf("education without field of study rendered wrong:\n%s", got)
	}
	if strings.Contains(got, "Current Role") {
		t.Errorf("empty current role must be omitted:\n%s", got)
	}
}

func TestJobAnalysisPrompt(t *testing.T) {
	got := JobAnalysisPrompt(sampleProfile(), "Senior Go developer at Acme")

	if !strings.Contains(got, "Senior Go developer at Acme") {
		t.Errorf("prompt must embed the job description:\n%s", got)
	}
	if !strings.Contains(got, "- Name: Ana") {
		t.Errorf("prompt must embed the profile context:\n%s", got)
	}
}

func TestSearchSystemPerType(t *testing.T) {
	seen := map[string]bool{}
	for _, st := range []string{
		models.SearchTypeGeneral,
		models.SearchTypeCareerPath,
		models.SearchTypeSkills,
		models.SearchTypeIndustry,
	} {
		msg := SearchSystem(st)
		if msg == "" {
			t.Fatalf("no system message for %q", st)
		}
		if seen[msg] {
			t.Errorf("search type %q shares a system message with another type", st)
		}
		seen[msg] = true
	}
}

func TestSearchSystemFallsBackToGeneral(t *testing.T) {
	if SearchSystem("astrology") != SearchSystem(models.SearchTypeGeneral) {
		t.Errorf("unknown search types must fall back to the general advisor")
	}
}

func TestDegreeCareerPrompt(t *testing.T) {
	got := DegreeCareerPrompt("Computer Science", "fintech")
	if !strings.Contains(got, "Computer Science") || !strings.Contains(got, "fintech") {
		t.Errorf("prompt must embed degree and interest:\n%s", got)
	}
}
