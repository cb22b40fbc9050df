package crawler

import (
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"nextstep-career-api/models"
)

// ParseJobCard extracts a posting from one listing card. Returns nil when the
// card has no usable title or link.
func ParseJobCard(card *goquery.Selection, src Source, base *url.URL) *models.JobPosting {
	titleEl := card.Find(src.TitleSelector).First()
	title := strings.TrimSpace(titleEl.Text())

	href, _ := card.Find(src.LinkSelector).First().Attr("href")
	if href == "" {
		// Some boards hyperlink the whole card instead of the title
		href, _ = card.Attr("href")
	}
	if title == "" || href == "" {
		return nil
	}

	link := resolveLink(base, href)
	if link == "" {
		return nil
	}

	company := strings.TrimSpace(card.Find(src.CompanySelector).First().Text())
	if company == "" {
		company = "Unknown"
	}

	return &models.JobPosting{
		ID:        uuid.NewString(),
		Title:     title,
		Company:   company,
		Location:  strings.TrimSpace(card.Find(src.LocationSelector).First().Text()),
		JobType:   strings.TrimSpace(card.Find(src.TypeSelector).First().Text()),
		URL:       link,
		Source:    src.Name,
		ScrapedAt: time.Now().UTC(),
	}
}

// resolveLink makes a card link absolute against the board's base URL.
func resolveLink(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	resolved.Fragment = ""
	return resolved.String()
}
