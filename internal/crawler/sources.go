package crawler

import (
	"fmt"
	"net/url"
)

// Source describes one job board: where to search and which selectors pull
// the fields out of a listing card. Selectors may list alternatives
// (comma-separated) since boards restyle their markup without notice.
type Source struct {
	Name    string
	BaseURL string
	// SearchPath receives the url-escaped query.
	SearchPath       string
	CardSelector     string
	TitleSelector    string
	CompanySelector  string
	LocationSelector string
	TypeSelector     string
	LinkSelector     string
}

// Sources are the configured job boards.
var Sources = map[string]Source{
	"brightermonday": {
		Name:             "BrighterMonday",
		BaseURL:          "https://www.brightermonday.co.ke",
		SearchPath:       "/jobs/search?q=%s",
		CardSelector:     "div.job-item, div.search-job, article.job",
		TitleSelector:    "h3 a, h2 a, a.job-title",
		CompanySelector:  "div.company, span.company-name, p.company",
		LocationSelector: "div.location, span.location",
		TypeSelector:     "span.job-type",
		LinkSelector:     "h3 a, h2 a, a.job-title",
	},
	"myjobmag": {
		Name:             "MyJobMag",
		BaseURL:          "https://www.myjobmag.co.ke",
		SearchPath:       "/search/jobs?q=%s",
		CardSelector:     "li.job-list-li, div.job-info",
		TitleSelector:    "h2 a, h3 a",
		CompanySelector:  "li.job-item-company, span.company",
		LocationSelector: "li.job-item-location, span.location",
		TypeSelector:     "li.job-item-type",
		LinkSelector:     "h2 a, h3 a",
	},
}

// LookupSource resolves a configured source by its key.
func LookupSource(name string) (Source, bool) {
	src, ok := Sources[name]
	return src, ok
}

// SearchURL builds the absolute search URL for a query.
func (s Source) SearchURL(query string) string {
	return s.BaseURL + fmt.Sprintf(s.SearchPath, url.QueryEscape(query))
}
