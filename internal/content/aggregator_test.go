package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forumhub/forumhub/backend/forum-service/internal/models"
)

func seedStore(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	s.AddForum(models.Forum{ID: "F1", Name: "General"})
	s.AddForum(models.Forum{ID: "F2", Name: "Announcements"})
	return s
}

func TestForumList(t *testing.T) {
	s := seedStore(t)
	agg := NewAggregator(s)

	view, err := agg.ForumList(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Forums, 2)
	// index order: by name
	require.Equal(t, "Announcements", view.Forums[0].Name)
	require.Equal(t, "General", view.Forums[1].Name)
}

func TestForumViewOrdersPostsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := seedStore(t)
	_, err := s.CreateMessage(ctx, &models.Message{ID: "p1", Forum: "F1", Title: "older", Date: "2020-01-01 10:00:00"})
	require.NoError(t, err)
	_, err = s.CreateMessage(ctx, &models.Message{ID: "p2", Forum: "F1", Title: "newer", Date: "2020-02-01 10:00:00"})
	require.NoError(t, err)
	// a reply must not appear among top-level posts
	_, err = s.CreateMessage(ctx, &models.Message{ID: "r1", Forum: "F1", Parent: "p1", Date: "2020-03-01 10:00:00"})
	require.NoError(t, err)

	agg := NewAggregator(s)
	view, err := agg.ForumView(ctx, "F1")
	require.NoError(t, err)
	require.Equal(t, "F1", view.Forum.ID)
	require.Len(t, view.Posts, 2)
	require.Equal(t, "p2", view.Posts[0].ID)
	require.Equal(t, "p1", view.Posts[1].ID)
}

func TestThreadView(t *testing.T) {
	ctx := context.Background()
	s := seedStore(t)
	_, err := s.CreateMessage(ctx, &models.Message{ID: "m1", Forum: "F1", Title: "root", Date: "2020-01-01 10:00:00"})
	require.NoError(t, err)
	_, err = s.CreateMessage(ctx, &models.Message{ID: "r1", Forum: "F1", Parent: "m1", Date: "2020-01-02 10:00:00"})
	require.NoError(t, err)
	_, err = s.CreateMessage(ctx, &models.Message{ID: "r2", Forum: "F1", Parent: "m1", Date: "2020-01-03 10:00:00"})
	require.NoError(t, err)

	agg := NewAggregator(s)
	view, err := agg.ThreadView(ctx, "F1", "m1")
	require.NoError(t, err)
	require.Equal(t, "m1", view.Message.ID)
	require.Len(t, view.Replies, 2)

	_, err = agg.ThreadView(ctx, "F1", "missing")
	require.ErrorIs(t, err, ErrMessageNotFound)
}

func TestThreadViewAcceptsForumMismatch(t *testing.T) {
	// a message that belongs to a different forum is accepted as-is
	ctx := context.Background()
	s := seedStore(t)
	_, err := s.CreateMessage(ctx, &models.Message{ID: "m1", Forum: "F2", Title: "elsewhere", Date: "2020-01-01 10:00:00"})
	require.NoError(t, err)

	agg := NewAggregator(s)
	view, err := agg.ThreadView(ctx, "F1", "m1")
	require.NoError(t, err)
	require.Equal(t, "F1", view.Forum.ID)
	require.Equal(t, "F2", view.Message.Forum)
}

// countingStore records which queries were issued, to assert short-circuiting.
type countingStore struct {
	Store
	postsQueries   int
	repliesQueries int
}

func (c *countingStore) PostsByForum(ctx context.Context, forumID string) ([]models.Message, error) {
	c.postsQueries++
	return c.Store.PostsByForum(ctx, forumID)
}

func (c *countingStore) RepliesTo(ctx context.Context, messageID string) ([]models.Message, error) {
	c.repliesQueries++
	return c.Store.RepliesTo(ctx, messageID)
}

func TestForumViewShortCircuitsOnMissingForum(t *testing.T) {
	cs := &countingStore{Store: seedStore(t)}
	agg := NewAggregator(cs)

	_, err := agg.ForumView(context.Background(), "missing")
	require.ErrorIs(t, err, ErrForumNotFound)
	require.Zero(t, cs.postsQueries, "no index query may be issued for a missing forum")
}

func TestThreadViewShortCircuitsOnMissingMessage(t *testing.T) {
	cs := &countingStore{Store: seedStore(t)}
	agg := NewAggregator(cs)

	_, err := agg.ThreadView(context.Background(), "F1", "missing")
	require.ErrorIs(t, err, ErrMessageNotFound)
	require.Zero(t, cs.repliesQueries, "no replies query may be issued for a missing message")
}

type failingStore struct {
	Store
	err error
}

func (f *failingStore) Forums(ctx context.Context) ([]models.Forum, error) {
	return nil, f.err
}

func TestForumListSurfacesStoreErrors(t *testing.T) {
	boom := errors.New("index unavailable")
	agg := NewAggregator(&failingStore{Store: NewMemoryStore(), err: boom})

	_, err := agg.ForumList(context.Background())
	require.ErrorIs(t, err, boom)
}
