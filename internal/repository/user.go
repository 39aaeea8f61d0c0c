package repository

import (
	"context"

	"github.com/aidosk/taskvault/internal/domain"
)

// UserRepository stores credentials. Emails are persisted lowercased, so
// lookups are effectively case-insensitive.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, name, email string) (*domain.User, error)
}
