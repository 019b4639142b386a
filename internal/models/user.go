package models

import "fmt"

// Role is an account role. Roles are assigned server-side and never
// mutated by the client.
type Role string

const (
	RoleBuyer           Role = "buyer"
	RoleSeller          Role = "seller"
	RoleServiceProvider Role = "service_provider"
	RoleAdmin           Role = "admin"
)

// roleLabels maps user-facing labels to API roles. The marketplace
// presents service providers as "partners".
var roleLabels = map[string]Role{
	"buyer":            RoleBuyer,
	"seller":           RoleSeller,
	"partner":          RoleServiceProvider,
	"service_provider": RoleServiceProvider,
	"admin":            RoleAdmin,
}

// ParseRole parses a canonical API role value.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleBuyer, RoleSeller, RoleServiceProvider, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// RoleFromLabel resolves a user-facing role label (including "partner")
// to its API role value.
func RoleFromLabel(label string) (Role, error) {
	role, ok := roleLabels[label]
	if !ok {
		return "", fmt.Errorf("unknown role %q (expected buyer, seller, partner or admin)", label)
	}
	return role, nil
}

// Valid reports whether the role is a member of the closed role set.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// User is the authenticated identity returned by the API.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}
