// Package models holds the domain entities of the storefront client.
package models

// Role values issued by the server in /me responses.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the server-asserted owner of the current session.
// It is read-only on the client.
type Identity struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
