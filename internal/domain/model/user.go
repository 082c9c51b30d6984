package model

import "time"

// UserRole restricts which parts of the admin surface an account can reach.
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleStaff   UserRole = "staff"
)

// User represents a staff account of the storefront dashboard.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	Status       ActiveStatus
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ActiveStatus is the shared active/inactive flag used across catalog entities.
type ActiveStatus string

const (
	StatusActive   ActiveStatus = "active"
	StatusInactive ActiveStatus = "inactive"
)
