package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	domain "github.com/BruksfildServices01/ubereats-api/internal/domain/user"
	"github.com/BruksfildServices01/ubereats-api/internal/models"
)

const UsersCollection = "users"

type UserMongoRepository struct {
	coll *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Database) *UserMongoRepository {
	return &UserMongoRepository{coll: db.Collection(UsersCollection)}
}

var _ domain.Repository = (*UserMongoRepository)(nil)

// EnsureIndexes creates the unique email index the register flow relies on
// when two requests race past the existence check.
func (r *UserMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserMongoRepository) Create(
	ctx context.Context,
	u *models.User,
) error {

	if err := u.PrepareForInsert(time.Now().UTC()); err != nil {
		return err
	}

	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailExists
		}
		return err
	}

	return nil
}

func userByEmail(email string) bson.M {
	return bson.M{"email": models.NormalizeEmail(email)}
}

func (r *UserMongoRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {
	return r.findOne(ctx, userByEmail(email))
}

func (r *UserMongoRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	if !models.IsValidID(id) {
		return nil, domain.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserMongoRepository) findOne(ctx context.Context, q bson.M) (*models.User, error) {
	var u models.User
	if err := r.coll.FindOne(ctx, q).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
