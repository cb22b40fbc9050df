package models

import "time"

// Profile is a persisted record describing one user's education, skills,
// experience and interests. Identifiers are generated uuid strings, matching
// the documents the frontend already stores.
type Profile struct {
	ID              string    `bson:"_id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	EducationLevel  string    `bson:"education_level" json:"education_level"`
	FieldOfStudy    string    `bson:"field_of_study,omitempty" json:"field_of_study,omitempty"`
	Skills          []string  `bson:"skills" json:"skills"`
	ExperienceYears int       `bson:"experience_years" json:"experience_years"`
	CurrentRole     string    `bson:"current_role,omitempty" json:"current_role,omitempty"`
	CareerInterests []string  `bson:"career_interests" json:"career_interests"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// ProfileCreate carries the caller-supplied fields for both create and
// full-document update. Identifier and creation timestamp are always
// server-assigned.
type ProfileCreate struct {
	Name            string   `json:"name" binding:"required,min=1,max=200"`
	EducationLevel  string   `json:"education_level" binding:"required"`
	FieldOfStudy    string   `json:"field_of_study"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years" binding:"gte=0"`
	CurrentRole     string   `json:"current_role"`
	CareerInterests []string `json:"career_interests"`
}
