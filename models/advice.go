package models

import "time"

// CareerAdvice is one answered question for one profile. Immutable after creation.
type CareerAdvice struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Query     string    `bson:"query" json:"query"`
	Advice    string    `bson:"advice" json:"advice"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type CareerAdviceRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Query  string `json:"query" binding:"required,min=1"`
}
