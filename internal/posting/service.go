package posting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/forumhub/forumhub/backend/forum-service/internal/models"
)

var (
	// ErrNotAuthenticated means submission was attempted without a bound
	// identity. No store write happens in that case.
	ErrNotAuthenticated = errors.New("posting requires an authenticated identity")
	// ErrEmptyField means title or body was missing or blank after trimming.
	ErrEmptyField = errors.New("title and body are required")
)

// SubmitRequest carries a validated submission. ParentID is empty for a
// top-level post and holds the thread root's id for a reply.
type SubmitRequest struct {
	ForumID  string
	ParentID string
	Identity string
	Title    string
	Body     string
}

// SubmitResult is the outcome of a successful submission. Redirect points at
// the thread the reader should land on: the new message's own thread for a
// top-level post, the existing thread root for a reply.
type SubmitResult struct {
	MessageID string
	Redirect  string
}

// Service validates and commits new messages. It is the only component that
// writes Message documents.
type Service struct {
	repo MessageRepository
	now  func() time.Time
}

func NewService(repo MessageRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Submit builds a message from the request, persists it and computes the
// redirect target. Identity is checked first; validation failures never reach
// the store.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	if req.Identity == "" {
		return nil, ErrNotAuthenticated
	}
	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Body)
	if title == "" || body == "" {
		return nil, ErrEmptyField
	}

	m := &models.Message{
		Type:   models.TypeMessage,
		Forum:  req.ForumID,
		Parent: req.ParentID,
		Title:  title,
		Body:   body,
		User:   req.Identity,
		Date:   s.now().UTC().Format(models.DateFormat),
	}
	id, err := s.repo.CreateMessage(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	// Replies land back on the thread root, not on the reply itself; this
	// keeps the reader on the thread they were viewing.
	target := id
	if req.ParentID != "" {
		target = req.ParentID
	}
	return &SubmitResult{
		MessageID: id,
		Redirect:  fmt.Sprintf("/forum/%s/%s", req.ForumID, target),
	}, nil
}
