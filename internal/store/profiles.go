package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"nextstep-career-api/models"
)

// MongoProfiles stores profiles in the user_profiles collection.
type MongoProfiles struct {
	collection *mongo.Collection
}

func NewMongoProfiles(db *mongo.Database) *MongoProfiles {
	return &MongoProfiles{collection: db.Collection("user_profiles")}
}

func (s *MongoProfiles) Create(ctx context.Context, in models.ProfileCreate) (*models.Profile, error) {
	profile := &models.Profile{
		ID:              uuid.NewString(),
		Name:            in.Name,
		EducationLevel:  in.EducationLevel,
		FieldOfStudy:    in.FieldOfStudy,
		Skills:          emptyIfNil(in.Skills),
		ExperienceYears: in.ExperienceYears,
		CurrentRole:     in.CurrentRole,
		CareerInterests: emptyIfNil(in.CareerInterests),
		CreatedAt:       time.Now().UTC(),
	}

	if _, err := s.collection.InsertOne(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *MongoProfiles) List(ctx context.Context) ([]models.Profile, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	profiles := make([]models.Profile, 0)
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *MongoProfiles) Get(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *MongoProfiles) Update(ctx context.Context, id string, in models.ProfileCreate) (*models.Profile, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := &models.Profile{
		ID:              existing.ID,
		Name:            in.Name,
		EducationLevel:  in.EducationLevel,
		FieldOfStudy:    in.FieldOfStudy,
		Skills:          emptyIfNil(in.Skills),
		ExperienceYears: in.ExperienceYears,
		CurrentRole:     in.CurrentRole,
		CareerInterests: emptyIfNil(in.CareerInterests),
		CreatedAt:       existing.CreatedAt,
	}

	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": id}, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// emptyIfNil keeps list fields as [] rather than null in stored documents
// and JSON responses.
func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
