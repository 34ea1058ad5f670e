package credentials

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/forumhub/forumhub/backend/forum-service/internal/models"
	"github.com/forumhub/forumhub/backend/forum-service/pkg/logger"
)

var (
	// ErrUsernameTaken means a user document already exists for the name.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUnknownUser and ErrInvalidCredentials are distinct internally but
	// must map to the same response at the HTTP boundary to avoid username
	// enumeration.
	ErrUnknownUser        = errors.New("unknown user")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmptyCredentials means username or password was empty after trimming.
	ErrEmptyCredentials = errors.New("username and password are required")
)

// Service owns creation and verification of user credentials. It is the only
// component that writes User documents.
type Service struct {
	repo           UserRepository
	fallbackSecret string
}

func NewService(repo UserRepository, fallbackSecret string) *Service {
	return &Service{repo: repo, fallbackSecret: fallbackSecret}
}

// Register creates a user document keyed by username. The existence check and
// the insert are a single atomic create-if-absent at the repository, so a
// concurrent duplicate registration loses cleanly with ErrUsernameTaken.
func (s *Service) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}

	if existing, err := s.repo.Get(ctx, username); err != nil {
		return fmt.Errorf("lookup user %q: %w", username, err)
	} else if existing != nil {
		return ErrUsernameTaken
	}

	salt, random := newSalt(username, password, s.fallbackSecret)
	if !random {
		logger.Warnf("random source unavailable, using derived salt for user %q", username)
	}
	u := &models.User{
		Username:     username,
		Type:         models.TypeUser,
		Salt:         encodeHex(salt),
		PasswordHash: encodeHex(DeriveHash(password, salt)),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user %q: %w", username, err)
	}
	return nil
}

// Verify checks a password against the stored derived key and returns the
// authenticated identity on success. Input is normalized exactly as in
// Register, so a registered credential always round-trips. The hash
// comparison is constant time.
func (s *Service) Verify(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	u, err := s.repo.Get(ctx, username)
	if err != nil {
		return "", fmt.Errorf("lookup user %q: %w", username, err)
	}
	if u == nil {
		return "", ErrUnknownUser
	}

	salt, err := decodeHex(u.Salt)
	if err != nil {
		return "", fmt.Errorf("stored salt for %q is corrupt: %w", username, err)
	}
	got := encodeHex(DeriveHash(password, salt))
	if subtle.ConstantTimeCompare([]byte(got), []byte(u.PasswordHash)) != 1 {
		return "", ErrInvalidCredentials
	}
	return u.Username, nil
}
