package content

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forumhub/forumhub/backend/forum-service/internal/models"
)

// MongoStore implements Store on the shared documents collection. Every call
// is bounded by opTimeout so a stuck store surfaces as an error instead of a
// hung request chain.
type MongoStore struct {
	col       *mongo.Collection
	opTimeout time.Duration
}

func NewMongoStore(col *mongo.Collection, opTimeout time.Duration) *MongoStore {
	if opTimeout <= 0 {
		opTimeout = 10 * time.Second
	}
	return &MongoStore{col: col, opTimeout: opTimeout}
}

func (s *MongoStore) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

func (s *MongoStore) Forum(ctx context.Context, id string) (*models.Forum, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	var f models.Forum
	err := s.col.FindOne(ctx, bson.M{"_id": id, "type": models.TypeForum}).Decode(&f)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrForumNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (s *MongoStore) Message(ctx context.Context, id string) (*models.Message, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	var m models.Message
	err := s.col.FindOne(ctx, bson.M{"_id": id, "type": models.TypeMessage}).Decode(&m)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *MongoStore) Forums(ctx context.Context) ([]models.Forum, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	cur, err := s.col.Find(ctx, bson.M{"type": models.TypeForum},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	forums := []models.Forum{}
	if err := cur.All(ctx, &forums); err != nil {
		return nil, err
	}
	return forums, nil
}

func (s *MongoStore) PostsByForum(ctx context.Context, forumID string) ([]models.Message, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	filter := bson.M{"type": models.TypeMessage, "forum": forumID, "parent": ""}
	cur, err := s.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	posts := []models.Message{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *MongoStore) RepliesTo(ctx context.Context, messageID string) ([]models.Message, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	cur, err := s.col.Find(ctx, bson.M{"type": models.TypeMessage, "parent": messageID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	replies := []models.Message{}
	if err := cur.All(ctx, &replies); err != nil {
		return nil, err
	}
	return replies, nil
}
