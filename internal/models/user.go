package models

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Capability tags carried by a user and copied into the session claims.
const (
	PermissionView        = "view"
	PermissionEdit        = "edit"
	PermissionPrescribe   = "prescribe"
	PermissionCheckout    = "checkout"
	PermissionManageUsers = "manage_users"
)

// User is one row of the fixed cashier/pharmacist table supplied by
// configuration. Passwords are either plain text or bcrypt hashes.
type User struct {
	ID          int64    `json:"id"          yaml:"id"`
	Username    string   `json:"username"    yaml:"username"`
	Password    string   `json:"-"           yaml:"password"`
	Name        string   `json:"name"        yaml:"name"`
	Role        string   `json:"role"        yaml:"role"`
	Permissions []string `json:"permissions" yaml:"permissions"`
}

func (u *User) HasPermission(permission string) bool {
	return slices.Contains(u.Permissions, permission)
}

// Claims is the session token payload. The permission set travels inside
// the token so gating stays a pure predicate over the claims.
type Claims struct {
	UserID      int64    `json:"user_id"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

func (c *Claims) HasPermission(permission string) bool {
	return slices.Contains(c.Permissions, permission)
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token,omitempty"`
	ExpiresIn int    `json:"expires_in,omitempty"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	Message   string `json:"message,omitempty"`
}
