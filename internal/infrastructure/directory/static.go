// Package directory provides the static, preloaded known-users directory
// consulted by login when no database-backed directory is configured.
package directory

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// Static is an immutable in-memory user directory.
type Static struct {
	byEmail map[string]domain.User
}

func NewStatic(users ...domain.User) *Static {
	d := &Static{byEmail: make(map[string]domain.User, len(users))}
	for _, u := range users {
		d.byEmail[u.Email] = u
	}
	return d
}

func (d *Static) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := d.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := u
	return &clone, nil
}

// DemoUsers returns the built-in development accounts.
func DemoUsers() []domain.User {
	return []domain.User{
		{ID: "1", Email: "admin@example.com", Name: "Admin User", Role: domain.RoleAdmin},
		{ID: "2", Email: "user@example.com", Name: "Regular User", Role: domain.RoleUser},
	}
}
