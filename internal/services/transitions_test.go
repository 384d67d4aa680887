package services

import (
	"testing"

	"github.com/jobhunt/backend/internal/models"
	"github.com/jobhunt/backend/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestDecideTransition(t *testing.T) {
	tests := []struct {
		name      string
		current   models.ApplicationStatus
		actor     models.UserType
		requested models.ApplicationStatus
		wantCode  utils.Code
		wantMsg   string
	}{
		{
			name:    "applicant cancels applied",
			current: models.Applied, actor: models.TypeApplicant, requested: models.Cancelled,
		},
		{
			name:    "applicant cancels shortlisted",
			current: models.Shortlisted, actor: models.TypeApplicant, requested: models.Cancelled,
		},
		{
			name:    "applicant cancels accepted",
			current: models.Accepted, actor: models.TypeApplicant, requested: models.Cancelled,
		},
		{
			name:    "applicant cannot cancel rejected",
			current: models.Rejected, actor: models.TypeApplicant, requested: models.Cancelled,
			wantCode: utils.CodeInvalidArgument, wantMsg: "Application status cannot be updated",
		},
		{
			name:    "applicant cannot cancel cancelled",
			current: models.Cancelled, actor: models.TypeApplicant, requested: models.Cancelled,
			wantCode: utils.CodeInvalidArgument, wantMsg: "Application status cannot be updated",
		},
		{
			name:    "applicant cannot shortlist",
			current: models.Applied, actor: models.TypeApplicant, requested: models.Shortlisted,
			wantCode: utils.CodeForbidden, wantMsg: "You don't have permissions to update job status",
		},
		{
			name:    "applicant cannot accept",
			current: models.Applied, actor: models.TypeApplicant, requested: models.Accepted,
			wantCode: utils.CodeForbidden, wantMsg: "You don't have permissions to update job status",
		},
		{
			name:    "recruiter shortlists applied",
			current: models.Applied, actor: models.TypeRecruiter, requested: models.Shortlisted,
		},
		{
			name:    "recruiter rejects shortlisted",
			current: models.Shortlisted, actor: models.TypeRecruiter, requested: models.Rejected,
		},
		{
			name:    "recruiter finishes accepted",
			current: models.Accepted, actor: models.TypeRecruiter, requested: models.Finished,
		},
		{
			name:    "recruiter cannot reopen rejected",
			current: models.Rejected, actor: models.TypeRecruiter, requested: models.Shortlisted,
			wantCode: utils.CodeInvalidArgument, wantMsg: "Application status cannot be updated",
		},
		{
			name:    "recruiter cannot touch cancelled",
			current: models.Cancelled, actor: models.TypeRecruiter, requested: models.Rejected,
			wantCode: utils.CodeInvalidArgument, wantMsg: "Application status cannot be updated",
		},
		{
			// capacity gating happens in the acceptance protocol, the
			// table itself never blocks a recruiter's accept
			name:    "recruiter accept is always table-legal",
			current: models.Cancelled, actor: models.TypeRecruiter, requested: models.Accepted,
		},
		{
			name:    "unknown status rejected",
			current: models.Applied, actor: models.TypeRecruiter, requested: models.ApplicationStatus("promoted"),
			wantCode: utils.CodeInvalidArgument, wantMsg: "Invalid application status",
		},
		{
			name:    "admin has no transitions",
			current: models.Applied, actor: models.TypeAdmin, requested: models.Shortlisted,
			wantCode: utils.CodeForbidden, wantMsg: "You don't have permissions to update job status",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := DecideTransition(tc.current, tc.actor, tc.requested)
			if tc.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.True(t, utils.IsCode(err, tc.wantCode), "want code %s, got %v", tc.wantCode, err)
				var ae *utils.AppError
				if assert.ErrorAs(t, err, &ae) {
					assert.Equal(t, tc.wantMsg, ae.Message)
				}
			}
		})
	}
}
