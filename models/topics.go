package models

// PopularTopics is the snapshot of trending careers, questions and industries.
// Computed on request (optionally cached), never persisted in Mongo.
type PopularTopics struct {
	TrendingCareers  []string `json:"trending_careers"`
	PopularQuestions []string `json:"popular_questions"`
	IndustryInsights []string `json:"industry_insights"`
}
