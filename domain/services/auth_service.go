package services

import (
	"context"
	"errors"

	"event-gallery/domain/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUserInactive       = errors.New("user account is inactive")
)

type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*models.User, error)

	// Login returns a signed JWT and the authenticated user
	Login(ctx context.Context, email, password string) (string, *models.User, error)

	GetCurrentUser(ctx context.Context, tokenString string) (*models.User, error)
}
