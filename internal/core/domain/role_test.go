package domain

import "testing"

func TestRole_Can_Table(t *testing.T) {
	cases := []struct {
		role   Role
		action Action
		want   bool
	}{
		{RoleAdmin, ActionCreate, true},
		{RoleAdmin, ActionUpdate, true},
		{RoleAdmin, ActionDelete, true},
		{RoleUser, ActionCreate, false},
		{RoleUser, ActionUpdate, true},
		{RoleUser, ActionDelete, false},
		{RoleGuest, ActionCreate, false},
		{RoleGuest, ActionUpdate, false},
		{RoleGuest, ActionDelete, false},
	}

	for _, tc := range cases {
		if got := tc.role.Can(tc.action); got != tc.want {
			t.Fatalf("%s.Can(%s) = %v, want %v", tc.role, tc.action, got, tc.want)
		}
	}
}

func TestRole_Can_UnknownRole(t *testing.T) {
	if Role("superuser").Can(ActionDelete) {
		t.Fatalf("unknown role must be denied everything")
	}
}

func TestRole_Satisfies(t *testing.T) {
	if !RoleAdmin.Satisfies(RoleUser) {
		t.Fatalf("admin must satisfy the user role check")
	}
	if !RoleAdmin.Satisfies(RoleGuest) {
		t.Fatalf("admin must satisfy the guest role check")
	}
	if !RoleUser.Satisfies(RoleUser) {
		t.Fatalf("user must satisfy its own role check")
	}
	if RoleUser.Satisfies(RoleAdmin) {
		t.Fatalf("user must not satisfy the admin role check")
	}
	if RoleGuest.Satisfies(RoleUser) {
		t.Fatalf("guest must not satisfy the user role check")
	}
}

func TestParseRole(t *testing.T) {
	if got := ParseRole("admin"); got != RoleAdmin {
		t.Fatalf("expected admin, got %s", got)
	}
	if got := ParseRole("root"); got != RoleGuest {
		t.Fatalf("unknown role must parse to guest, got %s", got)
	}
	if got := ParseRole(""); got != RoleGuest {
		t.Fatalf("empty role must parse to guest, got %s", got)
	}
}
