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

// JobFilter is conjunctive: every set field narrows the result.
type JobFilter struct {
	OwnerID       *primitive.ObjectID // recruiter's own postings only
	TitleQuery    string              // case-insensitive substring
	JobTypes      []string            // set membership
	SalaryMin     *int                // inclusive
	SalaryMax     *int                // inclusive
	DurationUnder *int                // strict upper bound
}

type SortKey struct {
	Field string
	Desc  bool
}

type JobRepository interface {
	Insert(ctx context.Context, j *models.Job) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
	GetOwned(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Job, error)
	Replace(ctx context.Context, j *models.Job) error
	DeleteOwned(ctx context.Context, id, ownerID primitive.ObjectID) error
	List(ctx context.Context, f JobFilter, sort []SortKey) ([]models.JobWithRecruiter, error)
	SetAcceptedCandidates(ctx context.Context, id, ownerID primitive.ObjectID, count int) error
	SetRating(ctx context.Context, id primitive.ObjectID, rating float64) error
}

type jobRepo struct {
	col *mongo.Collection
}

func NewJobRepo(db *mongo.Database) JobRepository {
	return &jobRepo{col: db.Collection("jobs")}
}

func (r *jobRepo) Insert(ctx context.Context, j *models.Job) error {
	res, err := r.col.InsertOne(ctx, j)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		j.ID = id
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	var j models.Job
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func (r *jobRepo) GetOwned(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Job, error) {
	var j models.Job
	err := r.col.FindOne(ctx, bson.M{"_id": id, "userId": ownerID}).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func (r *jobRepo) Replace(ctx context.Context, j *models.Job) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": j.ID}, j)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *jobRepo) DeleteOwned(ctx context.Context, id, ownerID primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "userId": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *jobRepo) List(ctx context.Context, f JobFilter, sort []SortKey) ([]models.JobWithRecruiter, error) {
	cur, err := r.col.Aggregate(ctx, buildJobPipeline(f, sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.JobWithRecruiter{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *jobRepo) SetAcceptedCandidates(ctx context.Context, id, ownerID primitive.ObjectID, count int) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "userId": ownerID},
		bson.M{"$set": bson.M{"acceptedCandidates": count}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *jobRepo) SetRating(ctx context.Context, id primitive.ObjectID, rating float64) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
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

// buildJobPipeline joins each job with its owner's recruiter profile and
// applies the filter and sort. The $unwind makes the join inner: a job
// whose owner has no recruiterinfos document is dropped from the view.
func buildJobPipeline(f JobFilter, sort []SortKey) mongo.Pipeline {
	p := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "recruiterinfos",
			"localField":   "userId",
			"foreignField": "userId",
			"as":           "recruiter",
		}}},
		bson.D{{Key: "$unwind", Value: "$recruiter"}},
		bson.D{{Key: "$match", Value: buildJobMatch(f)}},
	}
	if len(sort) > 0 {
		p = append(p, bson.D{{Key: "$sort", Value: buildSort(sort)}})
	}
	return p
}

func buildJobMatch(f JobFilter) bson.M {
	match := bson.M{}
	if f.OwnerID != nil {
		match["userId"] = *f.OwnerID
	}
	if f.TitleQuery != "" {
		match["title"] = bson.M{"$regex": primitive.Regex{Pattern: f.TitleQuery, Options: "i"}}
	}
	if len(f.JobTypes) > 0 {
		match["jobType"] = bson.M{"$in": f.JobTypes}
	}
	if f.SalaryMin != nil || f.SalaryMax != nil {
		salary := bson.M{}
		if f.SalaryMin != nil {
			salary["$gte"] = *f.SalaryMin
		}
		if f.SalaryMax != nil {
			salary["$lte"] = *f.SalaryMax
		}
		match["salary"] = salary
	}
	if f.DurationUnder != nil {
		match["duration"] = bson.M{"$lt": *f.DurationUnder}
	}
	return match
}

func buildSort(keys []SortKey) bson.D {
	d := bson.D{}
	for _, k := range keys {
		dir := 1
		if k.Desc {
			dir = -1
		}
		d = append(d, bson.E{Key: k.Field, Value: dir})
	}
	return d
}
