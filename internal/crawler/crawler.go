package crawler

import (
	"fmt"
	"net/url"
	"time"

	colly "github.com/gocolly/colly/v2"

	"nextstep-career-api/models"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Crawler scrapes job listings from configured boards.
type Crawler struct {
	timeout   time.Duration
	userAgent string
}

func New(timeout time.Duration) *Crawler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Crawler{
		timeout:   timeout,
		userAgent: defaultUserAgent,
	}
}

// ScrapeJobs fetches one search-results page from a source and parses its
// listing cards. Only listing-level fields are collected; detail pages are
// not followed.
func (cr *Crawler) ScrapeJobs(src Source, query string, limit int) ([]models.JobPosting, error) {
	base, err := url.Parse(src.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL for %s: %w", src.Name, err)
	}

	if limit <= 0 {
		limit = 50
	}

	collector := colly.NewCollector(
		colly.AllowedDomains(base.Host),
		colly.UserAgent(cr.userAgent),
	)
	collector.SetRequestTimeout(cr.timeout)

	jobs := make([]models.JobPosting, 0, limit)
	collector.OnHTML(src.CardSelector, func(e *colly.HTMLElement) {
		if len(jobs) >= limit {
			return
		}
		if job := ParseJobCard(e.DOM, src, base); job != nil {
			jobs = append(jobs, *job)
		}
	})

	var fetchErr error
	collector.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	if err := collector.Visit(src.SearchURL(query)); err != nil {
		return nil, fmt.Errorf("visit %s: %w", src.Name, err)
	}
	collector.Wait()

	if fetchErr != nil && len(jobs) == 0 {
		return nil, fmt.Errorf("fetch %s: %w", src.Name, fetchErr)
	}
	return jobs, nil
}
