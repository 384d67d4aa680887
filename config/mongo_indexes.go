package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}
	db := MongoDatabase()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// ratings: one row per (category, receiver, sender) triple; the
	// rating endpoint relies on this for its upsert semantics.
	ratings := db.Collection("ratings")
	_, err := ratings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "category", Value: 1},
				{Key: "receiverId", Value: 1},
				{Key: "senderId", Value: 1},
			},
			Options: options.Index().
				SetName("uniq_category_receiver_sender").
				SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "receiverId", Value: 1}, {Key: "category", Value: 1}},
			Options: options.Index().SetName("by_receiver_category"),
		},
	})
	if err != nil {
		return err
	}

	// applications: capacity counts and lifecycle lookups.
	applications := db.Collection("applications")
	_, err = applications.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "jobId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("by_job_status"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("by_applicant_status"),
		},
		{
			Keys:    bson.D{{Key: "recruiterId", Value: 1}, {Key: "jobId", Value: 1}},
			Options: options.Index().SetName("by_recruiter_job"),
		},
	})
	if err != nil {
		return err
	}

	// jobs: owner listing ("myjobs") and the recruiter-profile join key.
	jobs := db.Collection("jobs")
	_, err = jobs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetName("by_owner"),
		},
	})
	if err != nil {
		return err
	}

	// profile collections are joined on userId from jobs and applications.
	for _, name := range []string{"jobapplicantinfos", "recruiterinfos"} {
		col := db.Collection(name)
		_, err = col.Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "userId", Value: 1}},
				Options: options.Index().
					SetName("uniq_user").
					SetUnique(true),
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
