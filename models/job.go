package models

import "time"

// JobPosting is a listing scraped from an external job board. The listing URL
// is the natural key; re-scrapes upsert on it.
type JobPosting struct {
	ID        string    `bson:"_id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Company   string    `bson:"company" json:"company"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	JobType   string    `bson:"job_type,omitempty" json:"job_type,omitempty"`
	URL       string    `bson:"url" json:"url"`
	Source    string    `bson:"source" json:"source"`
	ScrapedAt time.Time `bson:"scraped_at" json:"scraped_at"`
}

type ScrapeRequest struct {
	Source   string `json:"source" binding:"required"`
	Query    string `json:"query"`
	Location string `json:"location"`
	Limit    int    `json:"limit" binding:"gte=0,lte=200"`
}
