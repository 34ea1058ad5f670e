package content

import "github.com/forumhub/forumhub/backend/forum-service/internal/models"

// Typed per-view results handed to the rendering layer. One structure per
// view; no string-keyed bags.

// ForumListView is the front-page view: all forums in index order.
type ForumListView struct {
	Forums []models.Forum `json:"forums"`
}

// ForumView is a single forum plus its top-level posts, newest first.
type ForumView struct {
	Forum models.Forum     `json:"forum"`
	Posts []models.Message `json:"posts"`
}

// ThreadView is a thread root plus its direct replies.
type ThreadView struct {
	Forum   models.Forum     `json:"forum"`
	Message models.Message   `json:"message"`
	Replies []models.Message `json:"replies"`
}
