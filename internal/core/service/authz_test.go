package service

import (
	"context"
	"testing"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// stubSessions returns a fixed current user (nil = no session).
type stubSessions struct {
	user *domain.User
}

func (s *stubSessions) Login(context.Context, string, string) (*domain.User, error) {
	return nil, nil
}
func (s *stubSessions) Logout(context.Context) error { return nil }
func (s *stubSessions) Current(context.Context) (*domain.User, error) {
	return s.user, nil
}
func (s *stubSessions) IsAuthenticated(context.Context) bool { return s.user != nil }

func TestEvaluator_CanPerformAction_PerRole(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		role   domain.Role
		action domain.Action
		want   bool
	}{
		{domain.RoleAdmin, domain.ActionCreate, true},
		{domain.RoleAdmin, domain.ActionUpdate, true},
		{domain.RoleAdmin, domain.ActionDelete, true},
		{domain.RoleUser, domain.ActionCreate, false},
		{domain.RoleUser, domain.ActionUpdate, true},
		{domain.RoleUser, domain.ActionDelete, false},
		{domain.RoleGuest, domain.ActionCreate, false},
		{domain.RoleGuest, domain.ActionUpdate, false},
		{domain.RoleGuest, domain.ActionDelete, false},
	}

	for _, tc := range cases {
		ev := NewEvaluator(&stubSessions{user: &domain.User{ID: "1", Role: tc.role}})
		if got := ev.CanPerformAction(ctx, tc.action); got != tc.want {
			t.Fatalf("role %s action %s: got %v, want %v", tc.role, tc.action, got, tc.want)
		}
	}
}

func TestEvaluator_NoSession_DeniesEverything(t *testing.T) {
	ctx := context.Background()
	ev := NewEvaluator(&stubSessions{})

	for _, action := range []domain.Action{domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete} {
		if ev.CanPerformAction(ctx, action) {
			t.Fatalf("no session must deny %s", action)
		}
	}
	if ev.HasRole(ctx, domain.RoleGuest) {
		t.Fatalf("no session must fail every role check")
	}
}

func TestEvaluator_HasRole_AdminBypass(t *testing.T) {
	ctx := context.Background()

	admin := NewEvaluator(&stubSessions{user: &domain.User{Role: domain.RoleAdmin}})
	if !admin.HasRole(ctx, domain.RoleUser) {
		t.Fatalf("admin must pass the user role check")
	}

	user := NewEvaluator(&stubSessions{user: &domain.User{Role: domain.RoleUser}})
	if !user.HasRole(ctx, domain.RoleUser) {
		t.Fatalf("user must pass its own role check")
	}

	guest := NewEvaluator(&stubSessions{user: &domain.User{Role: domain.RoleGuest}})
	if guest.HasRole(ctx, domain.RoleUser) {
		t.Fatalf("guest must fail the user role check")
	}
}
