package repository

import (
	"context"

	"github.com/aidosk/taskvault/internal/domain"
)

// Usecases depend on the interface, not the concrete implementation.
// This way we get: 1) can swap DB later without touching usecase 2) We can pass a mock implementation of interface in tests
//
// Every read/mutation takes the owner's user ID and applies it inside the
// query predicate itself, never as a check after fetching by id alone.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	List(ctx context.Context, ownerID string) ([]*domain.Task, error)
	GetByID(ctx context.Context, taskID, ownerID string) (*domain.Task, error)
	Update(ctx context.Context, taskID, ownerID, title, description string) (*domain.Task, error)
	Delete(ctx context.Context, taskID, ownerID string) error
}
