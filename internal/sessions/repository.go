package sessions

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository maps an opaque per-client handle to an authenticated username.
// Bind is an idempotent overwrite; Identity returns "" for an unknown handle
// (absence is not an error, it simply means unauthenticated).
type Repository interface {
	Bind(ctx context.Context, handle, username string) error
	Identity(ctx context.Context, handle string) (string, error)
	Unbind(ctx context.Context, handle string) error
}

type binding struct {
	Handle    string    `bson:"_id"`
	Username  string    `bson:"username"`
	CreatedAt time.Time `bson:"createdAt"`
}

// MongoRepository implements Repository using a Mongo collection. Used when
// Redis is not configured.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Bind(ctx context.Context, handle, username string) error {
	upd := bson.M{"$set": bson.M{"username": username}, "$setOnInsert": bson.M{"createdAt": time.Now().UTC()}}
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": handle}, upd, options.Update().SetUpsert(true))
	return err
}

func (r *MongoRepository) Identity(ctx context.Context, handle string) (string, error) {
	var b binding
	if err := r.col.FindOne(ctx, bson.M{"_id": handle}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil
		}
		return "", err
	}
	return b.Username, nil
}

func (r *MongoRepository) Unbind(ctx context.Context, handle string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": handle})
	return err
}
