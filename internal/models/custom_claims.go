package models

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Landing routes the console redirects to after login or on a role mismatch
const (
	RouteLogin         = "/login"
	RouteAdmin         = "/admin"
	RouteUser          = "/user"
	RouteResetPassword = "/reset-password"
)

// SessionClaims are the claims the console reads from the backend token.
// The signature is never verified here; the backend does that on every call.
type SessionClaims struct {
	jwt.RegisteredClaims
	Role        any `json:"role,omitempty"`
	Roles       any `json:"roles,omitempty"`
	Authorities any `json:"authorities,omitempty"`
	RoleName    any `json:"roleName,omitempty"`
}

// ResolvedRole flattens whichever role claim the backend populated into an
// upper-case string such as "ROLE_ADMIN" or "USER,ADMIN".
func (c *SessionClaims) ResolvedRole() string {
	for _, v := range []any{c.Role, c.Roles, c.Authorities, c.RoleName} {
		if s := flattenRole(v); s != "" {
			return strings.ToUpper(s)
		}
	}
	return ""
}

func flattenRole(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if s := flattenRole(e); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ",")
	case map[string]any:
		for _, key := range []string{"authority", "role", "name"} {
			if s := flattenRole(t[key]); s != "" {
				return s
			}
		}
		return ""
	default:
		return Scalarize(t)
	}
}

// IsAdminRole reports whether a resolved role grants the admin console.
func IsAdminRole(role string) bool {
	return strings.Contains(strings.ToUpper(role), RoleAdmin)
}

// LandingRoute returns the route a session with the given role belongs on.
func LandingRoute(role string) string {
	if IsAdminRole(role) {
		return RouteAdmin
	}
	return RouteUser
}
