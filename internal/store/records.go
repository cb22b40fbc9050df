package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nextstep-career-api/models"
)

// MongoAnalyses stores job analysis records.
type MongoAnalyses struct {
	collection *mongo.Collection
}

func NewMongoAnalyses(db *mongo.Database) *MongoAnalyses {
	return &MongoAnalyses{collection: db.Collection("job_analyses")}
}

func (s *MongoAnalyses) Insert(ctx context.Context, rec *models.JobAnalysis) error {
	_, err := s.collection.InsertOne(ctx, rec)
	return err
}

func (s *MongoAnalyses) ListByUser(ctx context.Context, userID string) ([]models.JobAnalysis, error) {
	cursor, err := s.collection.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(100),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]models.JobAnalysis, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// MongoAdvice stores career advice records.
type MongoAdvice struct {
	collection *mongo.Collection
}

func NewMongoAdvice(db *mongo.Database) *MongoAdvice {
	return &MongoAdvice{collection: db.Collection("career_advice")}
}

func (s *MongoAdvice) Insert(ctx context.Context, rec *models.CareerAdvice) error {
	_, err := s.collection.InsertOne(ctx, rec)
	return err
}

func (s *MongoAdvice) ListByUser(ctx context.Context, userID string) ([]models.CareerAdvice, error) {
	cursor, err := s.collection.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(100),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]models.CareerAdvice, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// MongoSearches stores anonymous search records for analytics.
type MongoSearches struct {
	collection *mongo.Collection
}

func NewMongoSearches(db *mongo.Database) *MongoSearches {
	return &MongoSearches{collection: db.Collection("anonymous_searches")}
}

func (s *MongoSearches) Insert(ctx context.Context, rec *models.AnonymousSearch) error {
	_, err := s.collection.InsertOne(ctx, rec)
	return err
}
