package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type RatingCategory string

const (
	RatesApplicant RatingCategory = "applicant" // recruiter rating an applicant
	RatesJob       RatingCategory = "job"       // applicant rating a job
)

// Rating is a directed edge from sender to receiver. At most one row may
// exist per (category, receiverId, senderId); a unique index enforces it.
type Rating struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Category   RatingCategory     `bson:"category" json:"category"`
	ReceiverID primitive.ObjectID `bson:"receiverId" json:"receiverId"`
	SenderID   primitive.ObjectID `bson:"senderId" json:"senderId"`
	Rating     float64            `bson:"rating" json:"rating"`
}

// NoRating is the sentinel returned when a sender has not rated a
// receiver yet. It is a designed value, not an error.
const NoRating = -1.0
