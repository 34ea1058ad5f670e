package sessions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// Service wraps repository operations with handle generation. The handle is
// an opaque random token; it carries no information about the identity it is
// bound to.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// Bind mints a fresh handle and binds it to the username. Called only after a
// successful credential verification.
func (s *Service) Bind(ctx context.Context, username string) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	handle := hex.EncodeToString(b)
	if err := s.repo.Bind(ctx, handle, username); err != nil {
		return "", err
	}
	return handle, nil
}

// Identity resolves the username bound to a handle; "" means unauthenticated.
func (s *Service) Identity(ctx context.Context, handle string) (string, error) {
	if handle == "" {
		return "", nil
	}
	return s.repo.Identity(ctx, handle)
}

// Unbind removes a binding (logout). Unknown handles are a no-op.
func (s *Service) Unbind(ctx context.Context, handle string) error {
	if handle == "" {
		return nil
	}
	return s.repo.Unbind(ctx, handle)
}
