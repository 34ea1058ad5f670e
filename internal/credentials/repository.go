package credentials

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/forumhub/forumhub/backend/forum-service/internal/models"
)

// UserRepository defines persistence operations for credential records.
// Create must be atomic create-if-absent: inserting an already-taken username
// fails with ErrUsernameTaken rather than overwriting.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	Get(ctx context.Context, username string) (*models.User, error)
}

// MongoUserRepository implements UserRepository on the shared documents
// collection. The username is the document _id, so uniqueness is enforced by
// the primary key and concurrent registrations for the same name cannot race.
type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(col *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{col: col}
}

func (r *MongoUserRepository) Create(ctx context.Context, u *models.User) error {
	u.Type = models.TypeUser
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *MongoUserRepository) Get(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.M{"_id": username, "type": models.TypeUser}).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
