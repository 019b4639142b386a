package routes

import (
	"slices"
	"strings"

	"github.com/homeharbor/homeharbor-cli/internal/models"
)

// Action is the outcome of a guard evaluation.
type Action int

const (
	// ActionPending means the session restore has not completed; render
	// a placeholder and do not navigate.
	ActionPending Action = iota

	// ActionRender allows the requested destination.
	ActionRender

	// ActionRedirect sends the user elsewhere, with the target in
	// Decision.Target.
	ActionRedirect
)

// Decision is the result of evaluating a route against session state.
// From preserves the originally requested path when redirecting to the
// login page; nothing consumes it yet.
type Decision struct {
	Action Action
	Target string
	From   string
}

// Route declares one navigable path and its access requirements. An
// empty AllowedRoles on a non-public route admits any authenticated
// user.
type Route struct {
	Path         string
	Public       bool
	AllowedRoles []models.Role
}

var table = []Route{
	{Path: "/", Public: true},
	{Path: "/properties", Public: true},
	{Path: "/properties/:id", Public: true},
	{Path: "/services", Public: true},
	{Path: "/login", Public: true},
	{Path: "/register", Public: true},

	{Path: "/buyer", AllowedRoles: []models.Role{models.RoleBuyer}},
	{Path: "/buyer/properties", AllowedRoles: []models.Role{models.RoleBuyer}},
	{Path: "/buyer/saved", AllowedRoles: []models.Role{models.RoleBuyer}},
	{Path: "/buyer/requests", AllowedRoles: []models.Role{models.RoleBuyer}},

	{Path: "/seller", AllowedRoles: []models.Role{models.RoleSeller}},
	{Path: "/seller/properties", AllowedRoles: []models.Role{models.RoleSeller}},
	{Path: "/seller/property/new", AllowedRoles: []models.Role{models.RoleSeller}},
	{Path: "/seller/property/:id/edit", AllowedRoles: []models.Role{models.RoleSeller}},
	{Path: "/seller/requests", AllowedRoles: []models.Role{models.RoleSeller}},
	{Path: "/seller/marketing", AllowedRoles: []models.Role{models.RoleSeller}},

	{Path: "/partner", AllowedRoles: []models.Role{models.RoleServiceProvider}},
	{Path: "/partner/services", AllowedRoles: []models.Role{models.RoleServiceProvider}},
	{Path: "/partner/services/new", AllowedRoles: []models.Role{models.RoleServiceProvider}},
	{Path: "/partner/service/:id/edit", AllowedRoles: []models.Role{models.RoleServiceProvider}},
	{Path: "/partner/properties", AllowedRoles: []models.Role{models.RoleServiceProvider}},
	{Path: "/partner/chatbot", AllowedRoles: []models.Role{models.RoleServiceProvider}},

	{Path: "/admin", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/users", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/properties", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/services", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/ai-usage", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/billing", AllowedRoles: []models.Role{models.RoleAdmin}},
	{Path: "/admin/settings", AllowedRoles: []models.Role{models.RoleAdmin}},
}

// Table returns the full route table.
func Table() []Route {
	return slices.Clone(table)
}

// Match resolves a concrete path against the route table. Path segments
// declared as ":name" match any value. Unmatched paths fall through to
// the not-found page.
func Match(path string) (Route, bool) {
	for _, route := range table {
		if matchPath(route.Path, path) {
			return route, true
		}
	}
	return Route{}, false
}

func matchPath(pattern, path string) bool {
	patternSegs := strings.Split(strings.Trim(pattern, "/"), "/")
	pathSegs := strings.Split(strings.Trim(path, "/"), "/")
	if len(patternSegs) != len(pathSegs) {
		return false
	}
	for i, seg := range patternSegs {
		if strings.HasPrefix(seg, ":") {
			if pathSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return true
}

// Evaluate decides whether a navigation may proceed. First match wins:
// public routes always render; while the session is loading nothing is
// decided; anonymous users are sent to the login page with the
// requested path preserved; a role outside the route's allowed set is
// sent home; otherwise the destination renders.
func Evaluate(loading bool, user *models.User, route Route) Decision {
	if route.Public {
		return Decision{Action: ActionRender}
	}
	if loading {
		return Decision{Action: ActionPending}
	}
	if user == nil {
		return Decision{Action: ActionRedirect, Target: "/login", From: route.Path}
	}
	if len(route.AllowedRoles) > 0 && !slices.Contains(route.AllowedRoles, user.Role) {
		return Decision{Action: ActionRedirect, Target: "/"}
	}
	return Decision{Action: ActionRender}
}
