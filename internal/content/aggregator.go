package content

import (
	"context"
	"fmt"
)

// Aggregator assembles read views through chains of dependent store lookups.
// Each chain is strictly sequential: a step runs only if the prior step
// succeeded, and the first failure aborts the rest. No retries, no partial
// results.
type Aggregator struct {
	store Store
}

func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// ForumList returns all forums in index-defined order.
func (a *Aggregator) ForumList(ctx context.Context) (*ForumListView, error) {
	forums, err := a.store.Forums(ctx)
	if err != nil {
		return nil, fmt.Errorf("list forums: %w", err)
	}
	return &ForumListView{Forums: forums}, nil
}

// ForumView returns a forum and its top-level posts, newest first. The posts
// query is only issued once the forum is known to exist.
func (a *Aggregator) ForumView(ctx context.Context, forumID string) (*ForumView, error) {
	forum, err := a.store.Forum(ctx, forumID)
	if err != nil {
		return nil, err
	}
	posts, err := a.store.PostsByForum(ctx, forumID)
	if err != nil {
		return nil, fmt.Errorf("posts for forum %q: %w", forumID, err)
	}
	return &ForumView{Forum: *forum, Posts: posts}, nil
}

// ThreadView returns a forum, a thread root and its direct replies. A message
// that exists but belongs to a different forum is accepted as-is; no
// cross-check is performed.
func (a *Aggregator) ThreadView(ctx context.Context, forumID, messageID string) (*ThreadView, error) {
	forum, err := a.store.Forum(ctx, forumID)
	if err != nil {
		return nil, err
	}
	msg, err := a.store.Message(ctx, messageID)
	if err != nil {
		return nil, err
	}
	replies, err := a.store.RepliesTo(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("replies to %q: %w", messageID, err)
	}
	return &ThreadView{Forum: *forum, Message: *msg, Replies: replies}, nil
}
