package credentials

import (
	"context"
	"sync"

	"github.com/forumhub/forumhub/backend/forum-service/internal/models"
)

// MemoryUserRepository is an in-memory UserRepository used by unit and
// handler tests.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

func (r *MemoryUserRepository) Create(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Username]; ok {
		return ErrUsernameTaken
	}
	u.Type = models.TypeUser
	r.users[u.Username] = *u
	return nil
}

func (r *MemoryUserRepository) Get(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
