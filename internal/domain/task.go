package domain

import (
	"errors"
	"time"
)

var (
	// ErrTaskNotFound covers both a missing task and a task owned by a
	// different user. Callers must not be able to tell the two apart.
	ErrTaskNotFound = errors.New("task not found")

	ErrTitleRequired = errors.New("title is required")
)

type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
