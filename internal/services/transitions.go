package services

import (
	"github.com/jobhunt/backend/internal/models"
	"github.com/jobhunt/backend/internal/utils"
)

// closedForRecruiter are the states a recruiter cannot move an
// application out of: no resurrecting a closed application.
var closedForRecruiter = map[models.ApplicationStatus]bool{
	models.Rejected:  true,
	models.Deleted:   true,
	models.Cancelled: true,
}

// DecideTransition is the pure legality check for a status change,
// keyed by (current status, actor role, requested status). Capacity
// gates for acceptance live in the acceptance protocol, not here.
//
// Applicants may only cancel their own still-active applications.
// Recruiters may move an application to any status unless it is
// already closed; the move to accepted is always legal here because
// the acceptance protocol applies its own gates afterwards.
func DecideTransition(current models.ApplicationStatus, actor models.UserType, requested models.ApplicationStatus) error {
	if !requested.Valid() {
		return utils.E(utils.CodeInvalidArgument, "", "Invalid application status", nil)
	}

	switch actor {
	case models.TypeApplicant:
		if requested != models.Cancelled {
			return utils.E(utils.CodeForbidden, "", "You don't have permissions to update job status", nil)
		}
		if !current.Active() {
			return utils.E(utils.CodeInvalidArgument, "", "Application status cannot be updated", nil)
		}
		return nil

	case models.TypeRecruiter:
		if requested == models.Accepted {
			return nil
		}
		if closedForRecruiter[current] {
			return utils.E(utils.CodeInvalidArgument, "", "Application status cannot be updated", nil)
		}
		return nil

	default:
		return utils.E(utils.CodeForbidden, "", "You don't have permissions to update job status", nil)
	}
}
