package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Job struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID             primitive.ObjectID `bson:"userId" json:"userId"` // owning recruiter
	Title              string             `bson:"title" json:"title"`
	MaxApplicants      int                `bson:"maxApplicants" json:"maxApplicants"`
	MaxPositions       int                `bson:"maxPositions" json:"maxPositions"`
	AcceptedCandidates int                `bson:"acceptedCandidates" json:"acceptedCandidates"`
	DateOfPosting      time.Time          `bson:"dateOfPosting" json:"dateOfPosting"`
	Deadline           *time.Time         `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Skillsets          []string           `bson:"skillsets,omitempty" json:"skillsets,omitempty"`
	JobType            string             `bson:"jobType" json:"jobType"`
	Duration           int                `bson:"duration" json:"duration"` // months, 0 = flexible
	Salary             int                `bson:"salary" json:"salary"`
	Rating             float64            `bson:"rating" json:"rating"` // running average, -1 = unrated
	CompanyName        string             `bson:"companyName,omitempty" json:"companyName,omitempty"`
	Responsibility     string             `bson:"responsibility,omitempty" json:"responsibility,omitempty"`
}

// JobWithRecruiter is the listing shape: a job joined with its owner's
// recruiter profile. Jobs whose owner profile is missing never appear
// (the lookup unwinds, so the join is inner).
type JobWithRecruiter struct {
	Job       `bson:",inline"`
	Recruiter RecruiterProfile `bson:"recruiter" json:"recruiter"`
}
