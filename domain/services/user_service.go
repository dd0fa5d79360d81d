package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"event-gallery/domain/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("role must be admin or user")
)

// UserService is the admin user-management surface.
type UserService interface {
	ListUsers(ctx context.Context, page, limit int) ([]*models.User, int64, error)
	CreateUser(ctx context.Context, email, password, fullName, role string) (*models.User, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, role string) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
