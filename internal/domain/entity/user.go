// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// ValidatePassword applies the registration password policy.
func ValidatePassword(plain string) error {
	if len(plain) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}
	return nil
}

// User represents a user of the Hub Manager system.
// New users start unapproved and cannot log in until an admin approves them.
type User struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	IsAdmin      bool
	IsApproved   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new pending, non admin User.
func NewUser(email, fullName, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewAdminUser creates an approved admin User.
func NewAdminUser(email, fullName, passwordHash string) *User {
	user := NewUser(email, fullName, passwordHash)
	user.IsAdmin = true
	user.IsApproved = true
	return user
}

// Approve marks the user as approved.
func (u *User) Approve() {
	u.IsApproved = true
	u.UpdatedAt = time.Now().UTC()
}
