package ports

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// UserDirectory is the known-users lookup consulted by login.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SessionRecordStore is the single durable slot holding the serialized
// session. Load returns (nil, nil) when the slot is absent; implementations
// must treat a malformed record as absent and clear it.
type SessionRecordStore interface {
	Save(ctx context.Context, user *domain.User) error
	Load(ctx context.Context) (*domain.User, error)
	Delete(ctx context.Context) error
}

// CredentialVerifier checks a claimed password against a directory record.
type CredentialVerifier interface {
	Verify(user *domain.User, password string) error
}

// SessionService owns the current authenticated identity and its persisted
// representation. Persistence failures degrade to an in-memory-only session
// on write and to "no session" on read; they are never surfaced to callers.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*domain.User, error)
	IsAuthenticated(ctx context.Context) bool
}

// Authorizer evaluates permissions for the current session. With no active
// session every check falls back to guest semantics.
type Authorizer interface {
	CanPerformAction(ctx context.Context, action domain.Action) bool
	HasRole(ctx context.Context, role domain.Role) bool
}
