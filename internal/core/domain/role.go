package domain

// Role is the closed set of access levels a user can hold.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Action is a catalog mutation a caller may attempt.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// permissions defines which actions each role may perform.
var permissions = map[Role]map[Action]bool{
	RoleAdmin: {ActionCreate: true, ActionUpdate: true, ActionDelete: true},
	RoleUser:  {ActionCreate: false, ActionUpdate: true, ActionDelete: false},
	RoleGuest: {ActionCreate: false, ActionUpdate: false, ActionDelete: false},
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := permissions[r]
	return ok
}

// Can reports whether the role is permitted to perform action.
// Unknown roles and unknown actions are denied.
func (r Role) Can(action Action) bool {
	return permissions[r][action]
}

// Satisfies reports whether the role meets a requested role check.
// Admin satisfies every check; all other roles require an exact match.
func (r Role) Satisfies(requested Role) bool {
	if r == RoleAdmin {
		return true
	}
	return r == requested
}

// ParseRole converts a raw string into a Role, falling back to guest for
// anything outside the known set.
func ParseRole(s string) Role {
	r := Role(s)
	if !r.Valid() {
		return RoleGuest
	}
	return r
}
