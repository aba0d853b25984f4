package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// NoopVerifier accepts any password for a known email. This reproduces the
// observed demo behaviour and must not be used outside development; wire
// BcryptVerifier instead.
type NoopVerifier struct{}

func (NoopVerifier) Verify(_ *domain.User, _ string) error { return nil }

// BcryptVerifier compares the claimed password against the directory
// record's bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(user *domain.User, password string) error {
	if user.PasswordHash == "" {
		return domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
