package crawler

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const cardHTML = `
<div id="listings">
  <div class="job-item">
    <h3><a href="/listings/backend-developer-123">Backend Developer</a></h3>
    <div class="company">Acme Ltd</div>
    <div class="location">Nairobi</div>
    <span class="job-type">Full Time</span>
  </div>
  <div class="job-item">
    <h3><a href="https://example.org/jobs/data-analyst#apply">Data Analyst</a></h3>
    <div class="location">Mombasa</div>
  </div>
  <div class="job-item">
    <div class="company">No Title Ltd</div>
  </div>
</div>`

func parseCards(t *testing.T) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(cardHTML))
	if err != nil {
		t.Fatalf("fixture parse: %v", err)
	}
	return doc.Find("div.job-item")
}

func TestParseJobCard(t *testing.T) {
	src := Sources["brightermonday"]
	base, _ := url.Parse(src.BaseURL)
	cards := parseCards(t)

	job := ParseJobCard(cards.Eq(0), src, base)
	if job == nil {
		t.Fatal("expected a posting from a complete card")
	}
	if job.Title != "Backend Developer" {
		t.Errorf("title = %q", job.Title)
	}
	if job.Company != "Acme Ltd" {
		t.Errorf("company = %q", job.Company)
	}
	if job.Location != "Nairobi" {
		t.Errorf("location = %q", job.Location)
	}
	if job.JobType != "Full Time" {
		t.Errorf("job type = %q", job.JobType)
	}
	if job.URL != "https://www.brightermonday.co.ke/listings/backend-developer-123" {
		t.Errorf("relative link not resolved: %q", job.URL)
	}
	if job.Source != src.Name {
		t.Errorf("source = %q", job.Source)
	}
	if job.ID == "" || job.ScrapedAt.IsZero() {
		t.Error("id and scraped_at must be assigned")
	}
}

func TestParseJobCardDefaultsCompany(t *testing.T) {
	src := Sources["brightermonday"]
	base, _ := url.Parse(src.BaseURL)

	job := ParseJobCard(parseCards(t).Eq(1), src, base)
	if job == nil {
		t.Fatal("expected a posting")
	}
	if job.Company != "Unknown" {
		t.Errorf("missing company must default to Unknown, got %q", job.Company)
	}
	if strings.Contains(job.URL, "#") {
		t.Errorf("fragment must be stripped: %q", job.URL)
	}
	if job.URL != "https://example.org/jobs/data-analyst" {
		t.Errorf("absolute link must be kept as is: %q", job.URL)
	}
}

func TestParseJobCardSkipsUnusable(t *testing.T) {
	src := Sources["brightermonday"]
	base, _ := url.Parse(src.BaseURL)

	if job := ParseJobCard(parseCards(t).Eq(2), src, base); job != nil {
		t.Errorf("card without title and link must be skipped, got %+v", job)
	}
}

func TestSearchURL(t *testing.T) {
	src := Sources["brightermonday"]
	got := src.SearchURL("software engineer")
	if got != "https://www.brightermonday.co.ke/jobs/search?q=software+engineer" {
		t.Errorf("SearchURL() = %q", got)
	}
}
