package domain

import (
	"errors"
	"time"
)

// Role values are stored verbatim on the user document and inside token
// claims, so the capitalised spelling is part of the wire contract.
const (
	RoleReader = "Reader"
	RoleWriter = "Writer"
	RoleEditor = "Editor"
	RoleAdmin  = "Admin"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidRefresh = errors.New("invalid refresh token")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether role is one of the four known role values.
func ValidRole(role string) bool {
	switch role {
	case RoleReader, RoleWriter, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

// SelfAssignableRole reports whether a user may request this role at
// registration. Admin is never self-assignable; it is granted only by the
// first-user bootstrap or an explicit admin role change.
func SelfAssignableRole(role string) bool {
	switch role {
	case RoleReader, RoleWriter, RoleEditor:
		return true
	}
	return false
}

// User models a registered identity.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
