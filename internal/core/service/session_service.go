package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

// SessionService owns the current authenticated identity. The in-memory
// cache is the single mutable shared resource of the core: only Login and
// Logout assign it, everything else reads through Current. A mutex
// serializes all access so the cache and the durable record never diverge
// (last-write-wins; torn writes are impossible).
type SessionService struct {
	directory ports.UserDirectory
	store     ports.SessionRecordStore
	verifier  ports.CredentialVerifier
	log       zerolog.Logger

	mu       sync.Mutex
	current  *domain.User
	hydrated bool
}

func NewSessionService(directory ports.UserDirectory, store ports.SessionRecordStore, verifier ports.CredentialVerifier, log zerolog.Logger) *SessionService {
	return &SessionService{
		directory: directory,
		store:     store,
		verifier:  verifier,
		log:       log,
	}
}

// Login resolves the email against the known-users directory, verifies the
// claimed credentials, persists the session record, and caches it. A lookup
// miss and a failed verification are indistinguishable to the caller.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.verifier.Verify(user, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, user); err != nil {
		// Degrade to an in-memory-only session rather than failing the login.
		s.log.Warn().Err(err).Str("email", email).Msg("session record write failed")
	}
	s.current = user
	s.hydrated = true

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("session created")

	clone := *user
	return &clone, nil
}

// Logout clears the durable record and the cache. Safe to call with no
// active session; calling it twice is the same as calling it once.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx); err != nil {
		s.log.Warn().Err(err).Msg("session record delete failed")
	}
	s.current = nil
	s.hydrated = true
	return nil
}

// Current returns the cached session, hydrating it from the durable record
// on first read. A failed or malformed read degrades to "no session".
func (s *SessionService) Current(ctx context.Context) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hydrated {
		user, err := s.store.Load(ctx)
		if err != nil {
			// Leave hydrated unset so a later read can retry the store.
			s.log.Warn().Err(err).Msg("session record read failed")
			return nil, nil
		}
		s.current = user
		s.hydrated = true
	}

	if s.current == nil {
		return nil, nil
	}
	clone := *s.current
	return &clone, nil
}

// IsAuthenticated reports whether a session is active.
func (s *SessionService) IsAuthenticated(ctx context.Context) bool {
	user, _ := s.Current(ctx)
	return user != nil
}
