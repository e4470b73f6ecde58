package auth

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"

	"flightops360/hangar/internal/constants"
)

// UserClaims is what handlers see of the authenticated caller.
type UserClaims interface {
	UserID() string
	Email() string
	Roles() []string
	HasRole(role constants.Role) bool
	Source() string
}

// Claims is the JWT payload: sub, email and the roles custom claim.
type Claims struct {
	EmailValue string   `json:"email,omitempty"`
	RoleValues []string `json:"roles"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string  { return c.Subject }
func (c *Claims) Email() string   { return c.EmailValue }
func (c *Claims) Roles() []string { return c.RoleValues }
func (c *Claims) Source() string  { return "JWT" }

// HasRole treats Admin as holding every role.
func (c *Claims) HasRole(role constants.Role) bool {
	return slices.Contains(c.RoleValues, role.String()) ||
		slices.Contains(c.RoleValues, constants.RoleAdmin.String())
}
