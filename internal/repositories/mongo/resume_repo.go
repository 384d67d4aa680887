package mongo

import (
	"context"
	"errors"

	"github.com/jobhunt/backend/internal/models"
	"github.com/jobhunt/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ResumeRepository interface {
	Insert(ctx context.Context, rs *models.Resume) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Resume, error)
}

type resumeRepo struct {
	col *mongo.Collection
}

func NewResumeRepo(db *mongo.Database) ResumeRepository {
	return &resumeRepo{col: db.Collection("resumes")}
}

func (r *resumeRepo) Insert(ctx context.Context, rs *models.Resume) error {
	res, err := r.col.InsertOne(ctx, rs)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		rs.ID = id
	}
	return nil
}

func (r *resumeRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Resume, error) {
	var rs models.Resume
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &rs, err
}
