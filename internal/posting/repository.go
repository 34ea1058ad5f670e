package posting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/forumhub/forumhub/backend/forum-service/internal/models"
)

// MessageRepository persists new messages. The store assigns the id and
// returns it; messages are never updated or deleted here.
type MessageRepository interface {
	CreateMessage(ctx context.Context, m *models.Message) (string, error)
}

// MongoMessageRepository implements MessageRepository on the shared documents
// collection.
type MongoMessageRepository struct {
	col       *mongo.Collection
	opTimeout time.Duration
}

func NewMongoMessageRepository(col *mongo.Collection, opTimeout time.Duration) *MongoMessageRepository {
	if opTimeout <= 0 {
		opTimeout = 10 * time.Second
	}
	return &MongoMessageRepository{col: col, opTimeout: opTimeout}
}

func (r *MongoMessageRepository) CreateMessage(ctx context.Context, m *models.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.Type = models.TypeMessage
	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return "", err
	}
	return m.ID, nil
}
