package auth

import (
	"time"

	"github.com/wheels-hub/wheels-hub/internal/rbac"
)

// User represents an authenticated hub account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         rbac.Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterInput carries sign-up form data.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     rbac.Role
}
