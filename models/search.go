package models

import "time"

// Search types accepted by the anonymous search endpoint.
const (
	SearchTypeGeneral    = "general"
	SearchTypeCareerPath = "career_path"
	SearchTypeSkills     = "skills"
	SearchTypeIndustry   = "industry"
)

// AnonymousSearch is a search served without a profile. Saved for analytics
// only; a failed insert does not fail the request.
type AnonymousSearch struct {
	ID          string    `bson:"_id" json:"id"`
	Query       string    `bson:"query" json:"query"`
	SearchType  string    `bson:"search_type" json:"search_type"`
	Response    string    `bson:"response" json:"response"`
	Suggestions []string  `bson:"suggestions" json:"suggestions"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

type AnonymousSearchRequest struct {
	Query      string `json:"query" binding:"required,min=1"`
	SearchType string `json:"search_type" binding:"omitempty,oneof=general career_path skills industry"`
}

// MarketInsight is computed per request and never persisted.
type MarketInsight struct {
	Field       string    `json:"field"`
	Insights    string    `json:"insights"`
	GeneratedAt time.Time `json:"generated_at"`
}

type DegreeCareerRequest struct {
	Degree         string `json:"degree" binding:"required,min=1"`
	CareerInterest string `json:"career_interest"`
}

// DegreeGuidance is computed per request and never persisted.
type DegreeGuidance struct {
	Degree         string    `json:"degree"`
	CareerInterest string    `json:"career_interest"`
	Guidance       string    `json:"guidance"`
	GeneratedAt    time.Time `json:"generated_at"`
}
