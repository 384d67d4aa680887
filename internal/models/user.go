package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type UserType string

const (
	TypeApplicant UserType = "applicant"
	TypeRecruiter UserType = "recruiter"
	TypeAdmin     UserType = "admin"
)

// UserStatus is the recruiter verification state; applicants and admins
// leave it empty.
type UserStatus string

const (
	UserUnverified UserStatus = "unverified"
	UserApproved   UserStatus = "approved"
	UserRejected   UserStatus = "rejected"
)

type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email  string             `bson:"email" json:"email"`
	Type   UserType           `bson:"type" json:"type"`
	Status UserStatus         `bson:"status,omitempty" json:"status,omitempty"`
}

// Principal is the authenticated actor resolved by the auth middleware.
// Handlers trust it without re-verifying credentials.
type Principal struct {
	ID     primitive.ObjectID `json:"_id"`
	Type   UserType           `json:"type"`
	Status UserStatus         `json:"status,omitempty"`
}
