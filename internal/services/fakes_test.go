package services

import (
	"context"
	"time"

	"github.com/jobhunt/backend/internal/models"
	mongorepo "github.com/jobhunt/backend/internal/repositories/mongo"
	"github.com/jobhunt/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeAppRepo keeps applications in a slice and mirrors the store's
// filter semantics closely enough for the service-level flows.
type fakeAppRepo struct {
	apps []*models.Application

	applicants []models.ApplicantView
	countErr   error
}

func (f *fakeAppRepo) Insert(_ context.Context, a *models.Application) error {
	a.ID = primitive.NewObjectID()
	f.apps = append(f.apps, a)
	return nil
}

func (f *fakeAppRepo) GetForRecruiter(_ context.Context, id, recruiterID primitive.ObjectID) (*models.Application, error) {
	for _, a := range f.apps {
		if a.ID == id && a.RecruiterID == recruiterID {
			return a, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeAppRepo) GetForApplicant(_ context.Context, id, applicantID primitive.ObjectID) (*models.Application, error) {
	for _, a := range f.apps {
		if a.ID == id && a.UserID == applicantID {
			return a, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeAppRepo) FindOpen(_ context.Context, applicantID, jobID primitive.ObjectID) (*models.Application, error) {
	for _, a := range f.apps {
		if a.UserID != applicantID || a.JobID != jobID {
			continue
		}
		switch a.Status {
		case models.Deleted, models.Accepted, models.Cancelled:
		default:
			return a, nil
		}
	}
	return nil, utils.ErrNotFound
}

func statusIn(s models.ApplicationStatus, set []models.ApplicationStatus) bool {
	for _, x := range set {
		if s == x {
			return true
		}
	}
	return false
}

func (f *fakeAppRepo) Count(_ context.Context, c mongorepo.CountFilter) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var n int64
	for _, a := range f.apps {
		if c.JobID != nil && a.JobID != *c.JobID {
			continue
		}
		if c.ApplicantID != nil && a.UserID != *c.ApplicantID {
			continue
		}
		if c.RecruiterID != nil && a.RecruiterID != *c.RecruiterID {
			continue
		}
		if len(c.StatusIn) > 0 && !statusIn(a.Status, c.StatusIn) {
			continue
		}
		if len(c.StatusNotIn) > 0 && statusIn(a.Status, c.StatusNotIn) {
			continue
		}
		n++
	}
	return n, nil
}

func (f *fakeAppRepo) SetStatus(_ context.Context, id primitive.ObjectID, status models.ApplicationStatus) error {
	for _, a := range f.apps {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeAppRepo) Accept(_ context.Context, id primitive.ObjectID, dateOfJoining time.Time) error {
	for _, a := range f.apps {
		if a.ID == id {
			a.Status = models.Accepted
			a.DateOfJoining = &dateOfJoining
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeAppRepo) CancelOtherActive(_ context.Context, applicantID, except primitive.ObjectID) (int64, error) {
	var n int64
	for _, a := range f.apps {
		if a.UserID != applicantID || a.ID == except {
			continue
		}
		switch a.Status {
		case models.Rejected, models.Deleted, models.Cancelled, models.Accepted, models.Finished:
		default:
			a.Status = models.Cancelled
			n++
		}
	}
	return n, nil
}

func (f *fakeAppRepo) ListForJob(_ context.Context, jobID, recruiterID primitive.ObjectID, in []models.ApplicationStatus) ([]models.Application, error) {
	out := []models.Application{}
	for _, a := range f.apps {
		if a.JobID != jobID || a.RecruiterID != recruiterID {
			continue
		}
		if len(in) > 0 && !statusIn(a.Status, in) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppRepo) ListEnrichedByApplicant(_ context.Context, applicantID primitive.ObjectID) ([]models.EnrichedApplication, error) {
	out := []models.EnrichedApplication{}
	for _, a := range f.apps {
		if a.UserID == applicantID {
			out = append(out, models.EnrichedApplication{Application: *a})
		}
	}
	return out, nil
}

func (f *fakeAppRepo) ListEnrichedByRecruiter(_ context.Context, recruiterID primitive.ObjectID) ([]models.EnrichedApplication, error) {
	out := []models.EnrichedApplication{}
	for _, a := range f.apps {
		if a.RecruiterID == recruiterID {
			out = append(out, models.EnrichedApplication{Application: *a})
		}
	}
	return out, nil
}

func (f *fakeAppRepo) ListApplicants(_ context.Context, _ mongorepo.ApplicantFilter, _ []mongorepo.SortKey) ([]models.ApplicantView, error) {
	return f.applicants, nil
}

type fakeJobRepo struct {
	jobs map[primitive.ObjectID]*models.Job

	acceptedSet map[primitive.ObjectID]int
	ratingSet   map[primitive.ObjectID]float64
}

func newFakeJobRepo(jobs ...*models.Job) *fakeJobRepo {
	f := &fakeJobRepo{
		jobs:        map[primitive.ObjectID]*models.Job{},
		acceptedSet: map[primitive.ObjectID]int{},
		ratingSet:   map[primitive.ObjectID]float64{},
	}
	for _, j := range jobs {
		f.jobs[j.ID] = j
	}
	return f
}

func (f *fakeJobRepo) Insert(_ context.Context, j *models.Job) error {
	if j.ID.IsZero() {
		j.ID = primitive.NewObjectID()
	}
	f.jobs[j.ID] = j
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) GetOwned(_ context.Context, id, ownerID primitive.ObjectID) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok || j.UserID != ownerID {
		return nil, utils.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) Replace(_ context.Context, j *models.Job) error {
	if _, ok := f.jobs[j.ID]; !ok {
		return utils.ErrNotFound
	}
	f.jobs[j.ID] = j
	return nil
}

func (f *fakeJobRepo) DeleteOwned(_ context.Context, id, ownerID primitive.ObjectID) error {
	j, ok := f.jobs[id]
	if !ok || j.UserID != ownerID {
		return utils.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) List(_ context.Context, _ mongorepo.JobFilter, _ []mongorepo.SortKey) ([]models.JobWithRecruiter, error) {
	out := []models.JobWithRecruiter{}
	for _, j := range f.jobs {
		out = append(out, models.JobWithRecruiter{Job: *j})
	}
	return out, nil
}

func (f *fakeJobRepo) SetAcceptedCandidates(_ context.Context, id, ownerID primitive.ObjectID, count int) error {
	j, ok := f.jobs[id]
	if !ok || j.UserID != ownerID {
		return utils.ErrNotFound
	}
	j.AcceptedCandidates = count
	f.acceptedSet[id] = count
	return nil
}

func (f *fakeJobRepo) SetRating(_ context.Context, id primitive.ObjectID, rating float64) error {
	j, ok := f.jobs[id]
	if !ok {
		return utils.ErrNotFound
	}
	j.Rating = rating
	f.ratingSet[id] = rating
	return nil
}

type ratingKey struct {
	sender   primitive.ObjectID
	receiver primitive.ObjectID
	category models.RatingCategory
}

type fakeRatingRepo struct {
	rows map[ratingKey]float64
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{rows: map[ratingKey]float64{}}
}

func (f *fakeRatingRepo) Get(_ context.Context, senderID, receiverID primitive.ObjectID, category models.RatingCategory) (*models.Rating, error) {
	v, ok := f.rows[ratingKey{senderID, receiverID, category}]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &models.Rating{Category: category, ReceiverID: receiverID, SenderID: senderID, Rating: v}, nil
}

func (f *fakeRatingRepo) Save(_ context.Context, rt *models.Rating) error {
	f.rows[ratingKey{rt.SenderID, rt.ReceiverID, rt.Category}] = rt.Rating
	return nil
}

func (f *fakeRatingRepo) AverageFor(_ context.Context, receiverID primitive.ObjectID, category models.RatingCategory) (float64, error) {
	var sum float64
	var n int
	for k, v := range f.rows {
		if k.receiver == receiverID && k.category == category {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, utils.ErrNotFound
	}
	return sum / float64(n), nil
}

type fakeProfileRepo struct {
	applicants map[primitive.ObjectID]*models.ApplicantProfile
	recruiters map[primitive.ObjectID]*models.RecruiterProfile

	applicantRating map[primitive.ObjectID]float64
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		applicants:      map[primitive.ObjectID]*models.ApplicantProfile{},
		recruiters:      map[primitive.ObjectID]*models.RecruiterProfile{},
		applicantRating: map[primitive.ObjectID]float64{},
	}
}

func (f *fakeProfileRepo) GetApplicant(_ context.Context, userID primitive.ObjectID) (*models.ApplicantProfile, error) {
	p, ok := f.applicants[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) ReplaceApplicant(_ context.Context, p *models.ApplicantProfile) error {
	f.applicants[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) SetApplicantRating(_ context.Context, userID primitive.ObjectID, rating float64) error {
	f.applicantRating[userID] = rating
	return nil
}

func (f *fakeProfileRepo) GetRecruiter(_ context.Context, userID primitive.ObjectID) (*models.RecruiterProfile, error) {
	p, ok := f.recruiters[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) ReplaceRecruiter(_ context.Context, p *models.RecruiterProfile) error {
	f.recruiters[p.UserID] = p
	return nil
}
