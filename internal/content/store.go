package content

import (
	"context"
	"errors"

	"github.com/forumhub/forumhub/backend/forum-service/internal/models"
)

var (
	ErrForumNotFound   = errors.New("forum not found")
	ErrMessageNotFound = errors.New("message not found")
)

// Store is the read surface the aggregator depends on. Forum and Message are
// retrieve-by-key; the remaining three are secondary-index queries:
// forums-by-name (no key filter), top-level posts by forum ordered newest
// first, and replies by parent in natural order.
type Store interface {
	Forum(ctx context.Context, id string) (*models.Forum, error)
	Message(ctx context.Context, id string) (*models.Message, error)
	Forums(ctx context.Context) ([]models.Forum, error)
	PostsByForum(ctx context.Context, forumID string) ([]models.Message, error)
	RepliesTo(ctx context.Context, messageID string) ([]models.Message, error)
}
