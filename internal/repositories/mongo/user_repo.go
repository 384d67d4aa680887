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

type UserRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) error
	ListByType(ctx context.Context, t models.UserType) ([]models.User, error)
}

type userRepo struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepository {
	return &userRepo{col: db.Collection("users")}
}

func (r *userRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &u, err
}

func (r *userRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *userRepo) ListByType(ctx context.Context, t models.UserType) ([]models.User, error) {
	cur, err := r.col.Find(ctx, bson.M{"type": t})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
