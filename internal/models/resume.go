package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type ResumeProject struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Link        string `bson:"link,omitempty" json:"link,omitempty"`
}

// Resume holds the structured fields the builder renders into a PDF.
type Resume struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Summary       string             `bson:"summary,omitempty" json:"summary,omitempty"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	ContactNumber string             `bson:"contactNumber,omitempty" json:"contactNumber,omitempty"`
	Education     []Education        `bson:"education,omitempty" json:"education,omitempty"`
	Projects      []ResumeProject    `bson:"projects,omitempty" json:"projects,omitempty"`
	Skills        []string           `bson:"skills,omitempty" json:"skills,omitempty"`
}
