package service

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

// Evaluator answers permission questions for whoever currently holds the
// session. It is stateless beyond the session lookup; the rule table itself
// lives on domain.Role.
type Evaluator struct {
	sessions ports.SessionService
}

func NewEvaluator(sessions ports.SessionService) *Evaluator {
	return &Evaluator{sessions: sessions}
}

// CanPerformAction reports whether the current session's role permits the
// action. No session means guest semantics: everything is denied.
func (e *Evaluator) CanPerformAction(ctx context.Context, action domain.Action) bool {
	return e.currentRole(ctx).Can(action)
}

// HasRole reports whether the current session satisfies the requested role.
// Admin satisfies every check.
func (e *Evaluator) HasRole(ctx context.Context, role domain.Role) bool {
	user, _ := e.sessions.Current(ctx)
	if user == nil {
		return false
	}
	return user.Role.Satisfies(role)
}

func (e *Evaluator) currentRole(ctx context.Context) domain.Role {
	user, _ := e.sessions.Current(ctx)
	if user == nil {
		return domain.RoleGuest
	}
	return user.Role
}
