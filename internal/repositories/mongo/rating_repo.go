package mongo

import (
	"context"
	"errors"

	"github.com/jobhunt/backend/internal/models"
	"github.com/jobhunt/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RatingRepository interface {
	Get(ctx context.Context, senderID, receiverID primitive.ObjectID, category models.RatingCategory) (*models.Rating, error)

	// Save upserts on the (category, receiver, sender) triple.
	Save(ctx context.Context, rt *models.Rating) error

	// AverageFor rescans every rating row for the receiver and returns
	// the arithmetic mean. O(n) per call; fine at this scale.
	AverageFor(ctx context.Context, receiverID primitive.ObjectID, category models.RatingCategory) (float64, error)
}

type ratingRepo struct {
	col *mongo.Collection
}

func NewRatingRepo(db *mongo.Database) RatingRepository {
	return &ratingRepo{col: db.Collection("ratings")}
}

func (r *ratingRepo) Get(ctx context.Context, senderID, receiverID primitive.ObjectID, category models.RatingCategory) (*models.Rating, error) {
	var rt models.Rating
	err := r.col.FindOne(ctx, bson.M{
		"senderId":   senderID,
		"receiverId": receiverID,
		"category":   category,
	}).Decode(&rt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &rt, err
}

func (r *ratingRepo) Save(ctx context.Context, rt *models.Rating) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{
			"senderId":   rt.SenderID,
			"receiverId": rt.ReceiverID,
			"category":   rt.Category,
		},
		bson.M{"$set": bson.M{"rating": rt.Rating}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *ratingRepo) AverageFor(ctx context.Context, receiverID primitive.ObjectID, category models.RatingCategory) (float64, error) {
	cur, err := r.col.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"receiverId": receiverID,
			"category":   category,
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$rating"},
		}}},
	})
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Average float64 `bson:"average"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, utils.ErrNotFound
	}
	return rows[0].Average, nil
}
