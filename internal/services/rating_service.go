package services

import (
	"context"
	"errors"

	"github.com/jobhunt/backend/internal/models"
	mongorepo "github.com/jobhunt/backend/internal/repositories/mongo"
	"github.com/jobhunt/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RatingService interface {
	// Upsert stores the sender's rating for the receiver and refreshes
	// the receiver's running average. Returns the success message.
	Upsert(ctx context.Context, sender models.Principal, receiverID primitive.ObjectID, value float64) (string, error)

	// Get returns the sender's own rating for the receiver, or the
	// NoRating sentinel when none exists.
	Get(ctx context.Context, sender models.Principal, receiverID primitive.ObjectID) (float64, error)
}

type ratingService struct {
	ratings  mongorepo.RatingRepository
	apps     mongorepo.ApplicationRepository
	jobs     mongorepo.JobRepository
	profiles mongorepo.ProfileRepository
}

func NewRatingService(ratings mongorepo.RatingRepository, apps mongorepo.ApplicationRepository, jobs mongorepo.JobRepository, profiles mongorepo.ProfileRepository) RatingService {
	return &ratingService{ratings: ratings, apps: apps, jobs: jobs, profiles: profiles}
}

func categoryFor(t models.UserType) models.RatingCategory {
	if t == models.TypeRecruiter {
		return models.RatesApplicant
	}
	return models.RatesJob
}

func (s *ratingService) Upsert(ctx context.Context, sender models.Principal, receiverID primitive.ObjectID, value float64) (string, error) {
	const op = "RatingService.Upsert"

	if value < 1 || value > 5 {
		return "", utils.E(utils.CodeInvalidArgument, op, "rating must be between 1 and 5", nil)
	}
	category := categoryFor(sender.Type)

	_, err := s.ratings.Get(ctx, sender.ID, receiverID, category)
	isNew := errors.Is(err, utils.ErrNotFound)
	if err != nil && !isNew {
		return "", utils.E(utils.CodeInternal, op, "failed to load rating", err)
	}

	// Eligibility is checked on first insert only; an overwrite keeps
	// working even if the relationship has since changed.
	if isNew {
		if err := s.checkEligibility(ctx, sender, receiverID); err != nil {
			return "", err
		}
	}

	if err := s.ratings.Save(ctx, &models.Rating{
		Category:   category,
		ReceiverID: receiverID,
		SenderID:   sender.ID,
		Rating:     value,
	}); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to save rating", err)
	}

	avg, err := s.ratings.AverageFor(ctx, receiverID, category)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "Error while calculating rating", err)
	}

	switch category {
	case models.RatesApplicant:
		err = s.profiles.SetApplicantRating(ctx, receiverID, avg)
		if err != nil {
			return "", utils.E(utils.CodeInternal, op, "Error while updating applicant's average rating", err)
		}
	case models.RatesJob:
		err = s.jobs.SetRating(ctx, receiverID, avg)
		if err != nil {
			return "", utils.E(utils.CodeInternal, op, "Error while updating job's average rating", err)
		}
	}

	if isNew {
		return "Rating added successfully", nil
	}
	return "Rating updated successfully", nil
}

// checkEligibility requires at least one accepted or finished
// application between sender and receiver.
func (s *ratingService) checkEligibility(ctx context.Context, sender models.Principal, receiverID primitive.ObjectID) error {
	const op = "RatingService.Upsert"

	worked := []models.ApplicationStatus{models.Accepted, models.Finished}

	if sender.Type == models.TypeRecruiter {
		n, err := s.apps.Count(ctx, mongorepo.CountFilter{
			ApplicantID: &receiverID,
			RecruiterID: &sender.ID,
			StatusIn:    worked,
		})
		if err != nil {
			return utils.E(utils.CodeInternal, op, "failed to check rating eligibility", err)
		}
		if n == 0 {
			return utils.E(utils.CodeInvalidArgument, op, "Applicant didn't work under you. Hence you cannot give a rating.", nil)
		}
		return nil
	}

	n, err := s.apps.Count(ctx, mongorepo.CountFilter{
		ApplicantID: &sender.ID,
		JobID:       &receiverID,
		StatusIn:    worked,
	})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to check rating eligibility", err)
	}
	if n == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "You haven't worked for this job. Hence you cannot give a rating.", nil)
	}
	return nil
}

func (s *ratingService) Get(ctx context.Context, sender models.Principal, receiverID primitive.ObjectID) (float64, error) {
	const op = "RatingService.Get"

	rt, err := s.ratings.Get(ctx, sender.ID, receiverID, categoryFor(sender.Type))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return models.NoRating, nil
		}
		return 0, utils.E(utils.CodeInternal, op, "failed to load rating", err)
	}
	return rt.Rating, nil
}
