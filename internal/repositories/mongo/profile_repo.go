package mongo

import (
	"context"
	"errors"

	"github.com/jobhunt/backend/internal/models"
	"github.com/jobhunt/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProfileRepository covers both profile collections; every method is
// keyed by the owning user's id, not the profile document id.
type ProfileRepository interface {
	GetApplicant(ctx context.Context, userID primitive.ObjectID) (*models.ApplicantProfile, error)
	ReplaceApplicant(ctx context.Context, p *models.ApplicantProfile) error
	SetApplicantRating(ctx context.Context, userID primitive.ObjectID, rating float64) error

	GetRecruiter(ctx context.Context, userID primitive.ObjectID) (*models.RecruiterProfile, error)
	ReplaceRecruiter(ctx context.Context, p *models.RecruiterProfile) error
}

type profileRepo struct {
	applicants *mongo.Collection
	recruiters *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) ProfileRepository {
	return &profileRepo{
		applicants: db.Collection("jobapplicantinfos"),
		recruiters: db.Collection("recruiterinfos"),
	}
}

func (r *profileRepo) GetApplicant(ctx context.Context, userID primitive.ObjectID) (*models.ApplicantProfile, error) {
	var p models.ApplicantProfile
	err := r.applicants.FindOne(ctx, bson.M{"userId": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *profileRepo) ReplaceApplicant(ctx context.Context, p *models.ApplicantProfile) error {
	res, err := r.applicants.ReplaceOne(ctx, bson.M{"userId": p.UserID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *profileRepo) SetApplicantRating(ctx context.Context, userID primitive.ObjectID, rating float64) error {
	res, err := r.applicants.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"rating": rating}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *profileRepo) GetRecruiter(ctx context.Context, userID primitive.ObjectID) (*models.RecruiterProfile, error) {
	var p models.RecruiterProfile
	err := r.recruiters.FindOne(ctx, bson.M{"userId": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *profileRepo) ReplaceRecruiter(ctx context.Context, p *models.RecruiterProfile) error {
	res, err := r.recruiters.ReplaceOne(ctx, bson.M{"userId": p.UserID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
