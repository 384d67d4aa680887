package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Education struct {
	InstitutionName string `bson:"institutionName" json:"institutionName"`
	Degree          string `bson:"degree,omitempty" json:"degree,omitempty"`
	StartYear       int    `bson:"startYear,omitempty" json:"startYear,omitempty"`
	EndYear         int    `bson:"endYear,omitempty" json:"endYear,omitempty"`
}

// ApplicantProfile lives in the jobapplicantinfos collection, keyed by the
// owning user's id. Rating is the running average maintained by the rating
// aggregator; -1 means unrated.
type ApplicantProfile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Education []Education        `bson:"education,omitempty" json:"education,omitempty"`
	Skills    []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Rating    float64            `bson:"rating" json:"rating"`
	Resume    string             `bson:"resume,omitempty" json:"resume,omitempty"`
	Profile   string             `bson:"profile,omitempty" json:"profile,omitempty"`
}

// RecruiterProfile lives in the recruiterinfos collection.
type RecruiterProfile struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID               primitive.ObjectID `bson:"userId" json:"userId"`
	Name                 string             `bson:"name" json:"name"`
	ContactNumber        string             `bson:"contactNumber,omitempty" json:"contactNumber,omitempty"`
	Bio                  string             `bson:"bio,omitempty" json:"bio,omitempty"`
	VerificationDocument string             `bson:"verificationDocument,omitempty" json:"verificationDocument,omitempty"`
}
