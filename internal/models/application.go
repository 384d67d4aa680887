package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationStatus string

const (
	Applied     ApplicationStatus = "applied"
	Shortlisted ApplicationStatus = "shortlisted"
	Accepted    ApplicationStatus = "accepted"
	Rejected    ApplicationStatus = "rejected"
	Cancelled   ApplicationStatus = "cancelled"
	Deleted     ApplicationStatus = "deleted"
	Finished    ApplicationStatus = "finished"
)

// TerminalStatuses are the closed states: an application in one of these
// never counts against any capacity bound and cannot move again.
var TerminalStatuses = []ApplicationStatus{Rejected, Deleted, Cancelled, Finished}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case Applied, Shortlisted, Accepted, Rejected, Cancelled, Deleted, Finished:
		return true
	}
	return false
}

// Active reports whether the application still counts toward capacity
// bounds (accepted included).
func (s ApplicationStatus) Active() bool {
	switch s {
	case Rejected, Deleted, Cancelled, Finished:
		return false
	}
	return s.Valid()
}

type Application struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID            primitive.ObjectID `bson:"userId" json:"userId"`           // applicant
	RecruiterID       primitive.ObjectID `bson:"recruiterId" json:"recruiterId"` // denormalized job owner
	JobID             primitive.ObjectID `bson:"jobId" json:"jobId"`
	Status            ApplicationStatus  `bson:"status" json:"status"`
	DateOfApplication time.Time          `bson:"dateOfApplication" json:"dateOfApplication"`
	DateOfJoining     *time.Time         `bson:"dateOfJoining,omitempty" json:"dateOfJoining,omitempty"`
	SOP               string             `bson:"sop,omitempty" json:"sop,omitempty"`
}

// EnrichedApplication is the "my applications" listing shape: the
// application joined with the applicant profile, the job, and the
// recruiter profile.
type EnrichedApplication struct {
	Application  `bson:",inline"`
	JobApplicant ApplicantProfile `bson:"jobApplicant" json:"jobApplicant"`
	Job          Job              `bson:"job" json:"job"`
	Recruiter    RecruiterProfile `bson:"recruiter" json:"recruiter"`
}

// ApplicantView is the recruiter-facing applicants listing: application
// joined with applicant profile and job.
type ApplicantView struct {
	Application  `bson:",inline"`
	JobApplicant ApplicantProfile `bson:"jobApplicant" json:"jobApplicant"`
	Job          Job              `bson:"job" json:"job"`
}
