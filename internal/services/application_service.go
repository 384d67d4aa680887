package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jobhunt/backend/internal/models"
	mongorepo "github.com/jobhunt/backend/internal/repositories/mongo"
	"github.com/jobhunt/backend/internal/utils"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxActiveApplications is the global cap on one applicant's open
// applications across all jobs.
const maxActiveApplications = 10

type ApplicationService interface {
	Apply(ctx context.Context, applicant models.Principal, jobID primitive.ObjectID, sop string) (*models.Application, error)
	UpdateStatus(ctx context.Context, actor models.Principal, id primitive.ObjectID, requested models.ApplicationStatus, dateOfJoining *time.Time) (string, error)
	ListForJob(ctx context.Context, recruiter models.Principal, jobID primitive.ObjectID, statusIn []models.ApplicationStatus) ([]models.Application, error)
	ListMine(ctx context.Context, p models.Principal) ([]models.EnrichedApplication, error)
	ListApplicants(ctx context.Context, recruiter models.Principal, jobID *primitive.ObjectID, statusIn []models.ApplicationStatus, sort []mongorepo.SortKey) ([]models.ApplicantView, error)
}

type applicationService struct {
	apps mongorepo.ApplicationRepository
	jobs mongorepo.JobRepository
	log  *logrus.Logger
}

func NewApplicationService(apps mongorepo.ApplicationRepository, jobs mongorepo.JobRepository, log *logrus.Logger) ApplicationService {
	return &applicationService{apps: apps, jobs: jobs, log: log}
}

// Apply runs the five sequential admission gates; the first failing
// gate decides the rejection reason. The counts are read-then-write
// with no transaction, so two racing applies can both pass a gate that
// only one of them should.
func (s *applicationService) Apply(ctx context.Context, applicant models.Principal, jobID primitive.ObjectID, sop string) (*models.Application, error) {
	const op = "ApplicationService.Apply"

	_, err := s.apps.FindOpen(ctx, applicant.ID, jobID)
	if err == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "You have already applied for this job", nil)
	}
	if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to check existing application", err)
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Job does not exist", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}

	jobActive, err := s.apps.Count(ctx, mongorepo.CountFilter{
		JobID:       &jobID,
		StatusNotIn: models.TerminalStatuses,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count job applications", err)
	}
	if jobActive >= int64(job.MaxApplicants) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Application limit reached", nil)
	}

	myActive, err := s.apps.Count(ctx, mongorepo.CountFilter{
		ApplicantID: &applicant.ID,
		StatusNotIn: models.TerminalStatuses,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count applicant applications", err)
	}
	if myActive >= maxActiveApplications {
		return nil, utils.E(utils.CodeInvalidArgument, op, "You have 10 active applications. Hence you cannot apply.", nil)
	}

	accepted, err := s.apps.Count(ctx, mongorepo.CountFilter{
		ApplicantID: &applicant.ID,
		StatusIn:    []models.ApplicationStatus{models.Accepted},
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count accepted applications", err)
	}
	if accepted > 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "You already have an accepted job. Hence you cannot apply.", nil)
	}

	app := &models.Application{
		UserID:            applicant.ID,
		RecruiterID:       job.UserID,
		JobID:             job.ID,
		Status:            models.Applied,
		DateOfApplication: time.Now().UTC(),
		SOP:               sop,
	}
	if err := s.apps.Insert(ctx, app); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create application", err)
	}
	return app, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, actor models.Principal, id primitive.ObjectID, requested models.ApplicationStatus, dateOfJoining *time.Time) (string, error) {
	const op = "ApplicationService.UpdateStatus"

	if actor.Type == models.TypeRecruiter && requested == models.Accepted {
		return s.accept(ctx, actor, id, dateOfJoining)
	}

	var app *models.Application
	var err error
	switch actor.Type {
	case models.TypeRecruiter:
		app, err = s.apps.GetForRecruiter(ctx, id, actor.ID)
	case models.TypeApplicant:
		app, err = s.apps.GetForApplicant(ctx, id, actor.ID)
	default:
		return "", utils.E(utils.CodeForbidden, op, "You don't have permissions to update job status", nil)
	}
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeNotFound, op, "Application not found", err)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to load application", err)
	}

	if err := DecideTransition(app.Status, actor.Type, requested); err != nil {
		return "", err
	}
	if err := s.apps.SetStatus(ctx, app.ID, requested); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to update application status", err)
	}

	if requested == models.Finished {
		return fmt.Sprintf("Job %s successfully", requested), nil
	}
	return fmt.Sprintf("Application %s successfully", requested), nil
}

// accept is the acceptance protocol. Steps 1-3 abort cleanly; the two
// side effects after the primary write are best-effort and only logged
// on failure, leaving counters eventually consistent. Two concurrent
// accepts can both observe count < maxPositions for the last open
// position; the store is not asked for a transaction here.
func (s *applicationService) accept(ctx context.Context, recruiter models.Principal, id primitive.ObjectID, dateOfJoining *time.Time) (string, error) {
	const op = "ApplicationService.accept"

	if dateOfJoining == nil {
		return "", utils.E(utils.CodeInvalidArgument, op, "dateOfJoining is required", nil)
	}

	app, err := s.apps.GetForRecruiter(ctx, id, recruiter.ID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeNotFound, op, "Application not found", err)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to load application", err)
	}

	job, err := s.jobs.GetOwned(ctx, app.JobID, recruiter.ID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeNotFound, op, "Job does not exist", err)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to load job", err)
	}

	acceptedCount, err := s.apps.Count(ctx, mongorepo.CountFilter{
		RecruiterID: &recruiter.ID,
		JobID:       &job.ID,
		StatusIn:    []models.ApplicationStatus{models.Accepted},
	})
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to count accepted applications", err)
	}
	if acceptedCount >= int64(job.MaxPositions) {
		return "", utils.E(utils.CodeInvalidArgument, op, "All positions for this job are already filled", nil)
	}

	if err := s.apps.Accept(ctx, app.ID, *dateOfJoining); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to accept application", err)
	}

	// One active offer at a time: close the applicant's other open
	// applications. The acceptance above has already committed.
	if _, err := s.apps.CancelOtherActive(ctx, app.UserID, app.ID); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"application_id": app.ID.Hex(),
			"applicant_id":   app.UserID.Hex(),
		}).Error("failed to cancel applicant's other active applications")
	}

	if err := s.jobs.SetAcceptedCandidates(ctx, job.ID, recruiter.ID, int(acceptedCount)+1); err != nil {
		s.log.WithError(err).WithField("job_id", job.ID.Hex()).
			Error("failed to update job accepted candidates count")
	}

	return fmt.Sprintf("Application %s successfully", models.Accepted), nil
}

func (s *applicationService) ListForJob(ctx context.Context, recruiter models.Principal, jobID primitive.ObjectID, statusIn []models.ApplicationStatus) ([]models.Application, error) {
	const op = "ApplicationService.ListForJob"

	out, err := s.apps.ListForJob(ctx, jobID, recruiter.ID, statusIn)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list job applications", err)
	}
	return out, nil
}

func (s *applicationService) ListMine(ctx context.Context, p models.Principal) ([]models.EnrichedApplication, error) {
	const op = "ApplicationService.ListMine"

	var out []models.EnrichedApplication
	var err error
	if p.Type == models.TypeRecruiter {
		out, err = s.apps.ListEnrichedByRecruiter(ctx, p.ID)
	} else {
		out, err = s.apps.ListEnrichedByApplicant(ctx, p.ID)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return out, nil
}

// ListApplicants treats an empty result as not-found. That differs from
// the job listing on purpose; each endpoint keeps its own policy.
func (s *applicationService) ListApplicants(ctx context.Context, recruiter models.Principal, jobID *primitive.ObjectID, statusIn []models.ApplicationStatus, sort []mongorepo.SortKey) ([]models.ApplicantView, error) {
	const op = "ApplicationService.ListApplicants"

	out, err := s.apps.ListApplicants(ctx, mongorepo.ApplicantFilter{
		RecruiterID: recruiter.ID,
		JobID:       jobID,
		StatusIn:    statusIn,
	}, sort)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applicants", err)
	}
	if len(out) == 0 {
		return nil, utils.E(utils.CodeNotFound, op, "No applicants found", nil)
	}
	return out, nil
}
