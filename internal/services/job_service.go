package services

import (
	"context"
	"errors"
	"time"

	"github.com/jobhunt/backend/internal/models"
	mongorepo "github.com/jobhunt/backend/internal/repositories/mongo"
	"github.com/jobhunt/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobPatch holds the only fields a recruiter may edit after posting.
type JobPatch struct {
	MaxApplicants *int
	MaxPositions  *int
	Deadline      *time.Time
}

type JobService interface {
	Create(ctx context.Context, recruiter models.Principal, j *models.Job) error
	List(ctx context.Context, f mongorepo.JobFilter, sort []mongorepo.SortKey) ([]models.JobWithRecruiter, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
	Update(ctx context.Context, recruiter models.Principal, id primitive.ObjectID, patch JobPatch) error
	Delete(ctx context.Context, recruiter models.Principal, id primitive.ObjectID) error
}

type jobService struct {
	jobs mongorepo.JobRepository
}

func NewJobService(jobs mongorepo.JobRepository) JobService {
	return &jobService{jobs: jobs}
}

func (s *jobService) Create(ctx context.Context, recruiter models.Principal, j *models.Job) error {
	const op = "JobService.Create"

	if j.Title == "" {
		return utils.E(utils.CodeInvalidArgument, op, "title is required", nil)
	}
	if j.MaxApplicants <= 0 || j.MaxPositions <= 0 {
		return utils.E(utils.CodeInvalidArgument, op, "maxApplicants and maxPositions must be positive", nil)
	}

	j.UserID = recruiter.ID
	j.AcceptedCandidates = 0
	if j.DateOfPosting.IsZero() {
		j.DateOfPosting = time.Now().UTC()
	}
	if j.Rating == 0 {
		j.Rating = models.NoRating
	}

	if err := s.jobs.Insert(ctx, j); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create job", err)
	}
	return nil
}

func (s *jobService) List(ctx context.Context, f mongorepo.JobFilter, sort []mongorepo.SortKey) ([]models.JobWithRecruiter, error) {
	const op = "JobService.List"

	out, err := s.jobs.List(ctx, f, sort)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	return out, nil
}

func (s *jobService) Get(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	const op = "JobService.Get"

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Job does not exist", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}
	return job, nil
}

func (s *jobService) Update(ctx context.Context, recruiter models.Principal, id primitive.ObjectID, patch JobPatch) error {
	const op = "JobService.Update"

	job, err := s.jobs.GetOwned(ctx, id, recruiter.ID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Job does not exist", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load job", err)
	}

	if patch.MaxApplicants != nil {
		job.MaxApplicants = *patch.MaxApplicants
	}
	if patch.MaxPositions != nil {
		job.MaxPositions = *patch.MaxPositions
	}
	if patch.Deadline != nil {
		job.Deadline = patch.Deadline
	}

	if err := s.jobs.Replace(ctx, job); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update job", err)
	}
	return nil
}

// Delete reports a missing or foreign job as a permissions rejection,
// not a 404. Odd, but it is the published contract of this endpoint.
func (s *jobService) Delete(ctx context.Context, recruiter models.Principal, id primitive.ObjectID) error {
	const op = "JobService.Delete"

	err := s.jobs.DeleteOwned(ctx, id, recruiter.ID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeForbidden, op, "You don't have permissions to delete the job", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete job", err)
	}
	return nil
}
