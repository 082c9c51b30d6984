package repository

import (
	"context"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
)

// UserRepository describes persistence operations for staff accounts.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string, role model.UserRole) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	TouchLastLogin(ctx context.Context, id int64) error
}
