package content

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/forumhub/forumhub/backend/forum-service/internal/models"
)

// MemoryStore is an in-memory document store for unit and handler tests. It
// implements both the aggregator's Store and the posting repository, so a
// message created through the write path is visible to the read views.
type MemoryStore struct {
	mu       sync.RWMutex
	forums   map[string]models.Forum
	messages map[string]models.Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		forums:   make(map[string]models.Forum),
		messages: make(map[string]models.Message),
	}
}

// AddForum seeds a forum document.
func (s *MemoryStore) AddForum(f models.Forum) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.Type = models.TypeForum
	s.forums[f.ID] = f
}

func (s *MemoryStore) Forum(ctx context.Context, id string) (*models.Forum, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.forums[id]
	if !ok {
		return nil, ErrForumNotFound
	}
	return &f, nil
}

func (s *MemoryStore) Message(ctx context.Context, id string) (*models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.messages[id]
	if !ok {
		return nil, ErrMessageNotFound
	}
	return &m, nil
}

func (s *MemoryStore) Forums(ctx context.Context) ([]models.Forum, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Forum, 0, len(s.forums))
	for _, f := range s.forums {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) PostsByForum(ctx context.Context, forumID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Message{}
	for _, m := range s.messages {
		if m.Forum == forumID && m.Parent == "" {
			out = append(out, m)
		}
	}
	// the textual date format sorts lexicographically in chronological order
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *MemoryStore) RepliesTo(ctx context.Context, messageID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Message{}
	for _, m := range s.messages {
		if m.Parent == messageID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// CreateMessage assigns an id and stores the message; satisfies the posting
// repository.
func (s *MemoryStore) CreateMessage(ctx context.Context, m *models.Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.Type = models.TypeMessage
	s.messages[m.ID] = *m
	return m.ID, nil
}
