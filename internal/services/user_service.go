package services

import (
	"context"
	"errors"

	"github.com/jobhunt/backend/internal/models"
	mongorepo "github.com/jobhunt/backend/internal/repositories/mongo"
	"github.com/jobhunt/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicantPatch and RecruiterPatch are partial updates; nil fields are
// left untouched, matching the form-driven frontend.
type ApplicantPatch struct {
	Name      *string
	Education *[]models.Education
	Skills    *[]string
	Resume    *string
	Profile   *string
}

type RecruiterPatch struct {
	Name                 *string
	ContactNumber        *string
	Bio                  *string
	VerificationDocument *string
}

type UserService interface {
	// Resolve turns a verified token subject into the request principal.
	Resolve(ctx context.Context, id primitive.ObjectID) (*models.Principal, error)

	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetApplicantProfile(ctx context.Context, userID primitive.ObjectID) (*models.ApplicantProfile, error)
	GetRecruiterProfile(ctx context.Context, userID primitive.ObjectID) (*models.RecruiterProfile, error)
	UpdateApplicantProfile(ctx context.Context, userID primitive.ObjectID, patch ApplicantPatch) error
	UpdateRecruiterProfile(ctx context.Context, userID primitive.ObjectID, patch RecruiterPatch) error

	SetUserStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) error
	ListRecruiters(ctx context.Context) ([]models.User, error)
	VerificationDocument(ctx context.Context, userID primitive.ObjectID) (string, error)
}

type userService struct {
	users    mongorepo.UserRepository
	profiles mongorepo.ProfileRepository
}

func NewUserService(users mongorepo.UserRepository, profiles mongorepo.ProfileRepository) UserService {
	return &userService{users: users, profiles: profiles}
}

func (s *userService) Resolve(ctx context.Context, id primitive.ObjectID) (*models.Principal, error) {
	const op = "UserService.Resolve"

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "unknown user", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to resolve user", err)
	}
	return &models.Principal{ID: u.ID, Type: u.Type, Status: u.Status}, nil
}

func (s *userService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	const op = "UserService.GetUser"

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "User does not exist", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	return u, nil
}

func (s *userService) GetApplicantProfile(ctx context.Context, userID primitive.ObjectID) (*models.ApplicantProfile, error) {
	const op = "UserService.GetApplicantProfile"

	p, err := s.profiles.GetApplicant(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "User does not exist", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load applicant profile", err)
	}
	return p, nil
}

func (s *userService) GetRecruiterProfile(ctx context.Context, userID primitive.ObjectID) (*models.RecruiterProfile, error) {
	const op = "UserService.GetRecruiterProfile"

	p, err := s.profiles.GetRecruiter(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "User does not exist", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load recruiter profile", err)
	}
	return p, nil
}

func (s *userService) UpdateApplicantProfile(ctx context.Context, userID primitive.ObjectID, patch ApplicantPatch) error {
	const op = "UserService.UpdateApplicantProfile"

	p, err := s.GetApplicantProfile(ctx, userID)
	if err != nil {
		return err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Education != nil {
		p.Education = *patch.Education
	}
	if patch.Skills != nil {
		p.Skills = *patch.Skills
	}
	if patch.Resume != nil {
		p.Resume = *patch.Resume
	}
	if patch.Profile != nil {
		p.Profile = *patch.Profile
	}

	if err := s.profiles.ReplaceApplicant(ctx, p); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update applicant profile", err)
	}
	return nil
}

func (s *userService) UpdateRecruiterProfile(ctx context.Context, userID primitive.ObjectID, patch RecruiterPatch) error {
	const op = "UserService.UpdateRecruiterProfile"

	p, err := s.GetRecruiterProfile(ctx, userID)
	if err != nil {
		return err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.ContactNumber != nil {
		p.ContactNumber = *patch.ContactNumber
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.VerificationDocument != nil {
		p.VerificationDocument = *patch.VerificationDocument
	}

	if err := s.profiles.ReplaceRecruiter(ctx, p); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update recruiter profile", err)
	}
	return nil
}

func (s *userService) SetUserStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) error {
	const op = "UserService.SetUserStatus"

	if status != models.UserApproved && status != models.UserRejected && status != models.UserUnverified {
		return utils.E(utils.CodeInvalidArgument, op, "invalid status", nil)
	}
	if err := s.users.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "User does not exist", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to set user status", err)
	}
	return nil
}

func (s *userService) ListRecruiters(ctx context.Context) ([]models.User, error) {
	const op = "UserService.ListRecruiters"

	out, err := s.users.ListByType(ctx, models.TypeRecruiter)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list recruiters", err)
	}
	return out, nil
}

func (s *userService) VerificationDocument(ctx context.Context, userID primitive.ObjectID) (string, error) {
	const op = "UserService.VerificationDocument"

	p, err := s.profiles.GetRecruiter(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeNotFound, op, "Recruiter not found", err)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to load recruiter profile", err)
	}
	if p.VerificationDocument == "" {
		return "", utils.E(utils.CodeNotFound, op, "Verification document not found", nil)
	}
	return p.VerificationDocument, nil
}
