package domain

import "time"

// Role enumerates the access levels a user can hold.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleQA    Role = "QA"
	RoleGuest Role = "GUEST"
	RoleUser  Role = "USER"
)

// ValidRole reports whether the value is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleQA, RoleGuest, RoleUser:
		return true
	}
	return false
}

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusPending   UserStatus = "PENDING"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// ValidStatus reports whether the value is a known account status.
func ValidStatus(s UserStatus) bool {
	switch s {
	case UserStatusActive, UserStatusPending, UserStatusSuspended:
		return true
	}
	return false
}

// User is the domain model for accounts that sign in to the application.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
