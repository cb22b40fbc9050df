package models

import "time"

// Analysis normalizes the model's reply at the boundary: exactly one of the
// two fields is set. Structured holds the decoded JSON object when the model
// honored the requested format; Freeform holds the raw text otherwise.
type Analysis struct {
	Structured map[string]interface{} `bson:"structured,omitempty" json:"structured,omitempty"`
	Freeform   string                 `bson:"freeform,omitempty" json:"freeform,omitempty"`
}

// IsStructured reports whether the analysis parsed into the requested JSON shape.
func (a Analysis) IsStructured() bool {
	return a.Structured != nil
}

// JobAnalysis is one analysis run for one profile. Immutable after creation.
type JobAnalysis struct {
	ID              string    `bson:"_id" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	JobDescription  string    `bson:"job_description" json:"job_description"`
	Analysis        Analysis  `bson:"analysis" json:"analysis"`
	Recommendations []string  `bson:"recommendations" json:"recommendations"`
	MatchScore      float64   `bson:"match_score" json:"match_score"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

type JobAnalysisRequest struct {
	UserID         string `json:"user_id" binding:"required"`
	JobDescription string `json:"job_description" binding:"required,min=1"`
}
