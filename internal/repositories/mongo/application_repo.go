package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/jobhunt/backend/internal/models"
	"github.com/jobhunt/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CountFilter selects applications for the capacity and eligibility
// counts. Nil id fields are ignored; StatusIn and StatusNotIn are
// mutually exclusive in practice.
type CountFilter struct {
	JobID       *primitive.ObjectID
	ApplicantID *primitive.ObjectID
	RecruiterID *primitive.ObjectID
	StatusIn    []models.ApplicationStatus
	StatusNotIn []models.ApplicationStatus
}

// ApplicantFilter selects rows for the recruiter's applicants listing.
type ApplicantFilter struct {
	RecruiterID primitive.ObjectID
	JobID       *primitive.ObjectID
	StatusIn    []models.ApplicationStatus
}

type ApplicationRepository interface {
	Insert(ctx context.Context, a *models.Application) error
	GetForRecruiter(ctx context.Context, id, recruiterID primitive.ObjectID) (*models.Application, error)
	GetForApplicant(ctx context.Context, id, applicantID primitive.ObjectID) (*models.Application, error)

	// FindOpen returns the applicant's application for a job whose
	// status is outside {deleted, accepted, cancelled}.
	FindOpen(ctx context.Context, applicantID, jobID primitive.ObjectID) (*models.Application, error)

	Count(ctx context.Context, f CountFilter) (int64, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) error
	Accept(ctx context.Context, id primitive.ObjectID, dateOfJoining time.Time) error

	// CancelOtherActive closes every other active, non-accepted
	// application of the applicant. Returns the number modified.
	CancelOtherActive(ctx context.Context, applicantID, except primitive.ObjectID) (int64, error)

	ListForJob(ctx context.Context, jobID, recruiterID primitive.ObjectID, statusIn []models.ApplicationStatus) ([]models.Application, error)
	ListEnrichedByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]models.EnrichedApplication, error)
	ListEnrichedByRecruiter(ctx context.Context, recruiterID primitive.ObjectID) ([]models.EnrichedApplication, error)
	ListApplicants(ctx context.Context, f ApplicantFilter, sort []SortKey) ([]models.ApplicantView, error)
}

type applicationRepo struct {
	col *mongo.Collection
}

func NewApplicationRepo(db *mongo.Database) ApplicationRepository {
	return &applicationRepo{col: db.Collection("applications")}
}

func (r *applicationRepo) Insert(ctx context.Context, a *models.Application) error {
	if a.DateOfApplication.IsZero() {
		a.DateOfApplication = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = id
	}
	return nil
}

func (r *applicationRepo) getOne(ctx context.Context, filter bson.M) (*models.Application, error) {
	var a models.Application
	err := r.col.FindOne(ctx, filter).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *applicationRepo) GetForRecruiter(ctx context.Context, id, recruiterID primitive.ObjectID) (*models.Application, error) {
	return r.getOne(ctx, bson.M{"_id": id, "recruiterId": recruiterID})
}

func (r *applicationRepo) GetForApplicant(ctx context.Context, id, applicantID primitive.ObjectID) (*models.Application, error) {
	return r.getOne(ctx, bson.M{"_id": id, "userId": applicantID})
}

func (r *applicationRepo) FindOpen(ctx context.Context, applicantID, jobID primitive.ObjectID) (*models.Application, error) {
	return r.getOne(ctx, bson.M{
		"userId": applicantID,
		"jobId":  jobID,
		"status": bson.M{"$nin": []models.ApplicationStatus{models.Deleted, models.Accepted, models.Cancelled}},
	})
}

func (r *applicationRepo) Count(ctx context.Context, f CountFilter) (int64, error) {
	filter := bson.M{}
	if f.JobID != nil {
		filter["jobId"] = *f.JobID
	}
	if f.ApplicantID != nil {
		filter["userId"] = *f.ApplicantID
	}
	if f.RecruiterID != nil {
		filter["recruiterId"] = *f.RecruiterID
	}
	if len(f.StatusIn) > 0 {
		filter["status"] = bson.M{"$in": f.StatusIn}
	} else if len(f.StatusNotIn) > 0 {
		filter["status"] = bson.M{"$nin": f.StatusNotIn}
	}
	return r.col.CountDocuments(ctx, filter)
}

func (r *applicationRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) Accept(ctx context.Context, id primitive.ObjectID, dateOfJoining time.Time) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":        models.Accepted,
			"dateOfJoining": dateOfJoining.UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) CancelOtherActive(ctx context.Context, applicantID, except primitive.ObjectID) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{
			"_id":    bson.M{"$ne": except},
			"userId": applicantID,
			"status": bson.M{"$nin": []models.ApplicationStatus{
				models.Rejected, models.Deleted, models.Cancelled, models.Accepted, models.Finished,
			}},
		},
		bson.M{"$set": bson.M{"status": models.Cancelled}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *applicationRepo) ListForJob(ctx context.Context, jobID, recruiterID primitive.ObjectID, statusIn []models.ApplicationStatus) ([]models.Application, error) {
	filter := bson.M{"jobId": jobID, "recruiterId": recruiterID}
	if len(statusIn) > 0 {
		filter["status"] = bson.M{"$in": statusIn}
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Application{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *applicationRepo) ListEnrichedByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]models.EnrichedApplication, error) {
	return r.listEnriched(ctx, bson.M{"userId": applicantID})
}

func (r *applicationRepo) ListEnrichedByRecruiter(ctx context.Context, recruiterID primitive.ObjectID) ([]models.EnrichedApplication, error) {
	return r.listEnriched(ctx, bson.M{"recruiterId": recruiterID})
}

func (r *applicationRepo) listEnriched(ctx context.Context, match bson.M) ([]models.EnrichedApplication, error) {
	cur, err := r.col.Aggregate(ctx, buildEnrichedPipeline(match))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.EnrichedApplication{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *applicationRepo) ListApplicants(ctx context.Context, f ApplicantFilter, sort []SortKey) ([]models.ApplicantView, error) {
	cur, err := r.col.Aggregate(ctx, buildApplicantPipeline(f, sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.ApplicantView{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func lookupStage(from, local, foreign, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         from,
		"localField":   local,
		"foreignField": foreign,
		"as":           as,
	}}}
}

// buildEnrichedPipeline joins each application with the applicant
// profile, the job, and the recruiter profile, newest applications
// first. All three joins unwind, so rows with a dangling reference
// disappear.
func buildEnrichedPipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		lookupStage("jobapplicantinfos", "userId", "userId", "jobApplicant"),
		bson.D{{Key: "$unwind", Value: "$jobApplicant"}},
		lookupStage("jobs", "jobId", "_id", "job"),
		bson.D{{Key: "$unwind", Value: "$job"}},
		lookupStage("recruiterinfos", "recruiterId", "userId", "recruiter"),
		bson.D{{Key: "$unwind", Value: "$recruiter"}},
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "dateOfApplication", Value: -1}}}},
	}
}

func buildApplicantPipeline(f ApplicantFilter, sort []SortKey) mongo.Pipeline {
	match := bson.M{"recruiterId": f.RecruiterID}
	if f.JobID != nil {
		match["jobId"] = *f.JobID
	}
	if len(f.StatusIn) > 0 {
		match["status"] = bson.M{"$in": f.StatusIn}
	}
	if len(sort) == 0 {
		sort = []SortKey{{Field: "_id"}}
	}
	return mongo.Pipeline{
		lookupStage("jobapplicantinfos", "userId", "userId", "jobApplicant"),
		bson.D{{Key: "$unwind", Value: "$jobApplicant"}},
		lookupStage("jobs", "jobId", "_id", "job"),
		bson.D{{Key: "$unwind", Value: "$job"}},
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: buildSort(sort)}},
	}
}
