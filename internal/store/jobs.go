package store

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nextstep-career-api/models"
)

const defaultJobSearchLimit = 50

// MongoJobs stores scraped job postings.
type MongoJobs struct {
	collection *mongo.Collection
}

func NewMongoJobs(db *mongo.Database) *MongoJobs {
	return &MongoJobs{collection: db.Collection("job_postings")}
}

// Upsert keys on the listing URL so re-scrapes refresh instead of duplicate.
func (s *MongoJobs) Upsert(ctx context.Context, job *models.JobPosting) error {
	update := bson.M{
		"$set": bson.M{
			"title":      job.Title,
			"company":    job.Company,
			"location":   job.Location,
			"job_type":   job.JobType,
			"source":     job.Source,
			"scraped_at": job.ScrapedAt,
		},
		"$setOnInsert": bson.M{"_id": job.ID},
	}

	_, err := s.collection.UpdateOne(ctx,
		bson.M{"url": job.URL},
		update,
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *MongoJobs) Search(ctx context.Context, query, location string, limit int64) ([]models.JobPosting, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultJobSearchLimit
	}

	cursor, err := s.collection.Find(ctx,
		jobSearchFilter(query, location),
		options.Find().SetSort(bson.M{"scraped_at": -1}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	jobs := make([]models.JobPosting, 0)
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// jobSearchFilter builds the case-insensitive substring filter. Terms are
// caller input, so regex metacharacters are escaped.
func jobSearchFilter(query, location string) bson.M {
	filter := bson.M{}
	if query != "" {
		filter["title"] = bson.M{"$regex": containsPattern(query)}
	}
	if location != "" {
		filter["location"] = bson.M{"$regex": containsPattern(location)}
	}
	return filter
}

func containsPattern(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}
