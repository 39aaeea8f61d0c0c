package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aidosk/taskvault/internal/domain"
	"github.com/aidosk/taskvault/internal/repository"
)

type TaskUsecase struct {
	repo repository.TaskRepository
}

func NewTaskUsecase(repo repository.TaskRepository) *TaskUsecase {
	return &TaskUsecase{repo: repo}
}

type CreateTaskInput struct {
	OwnerID     string
	Title       string
	Description string
}

// CreateTask validates the title before anything touches the store: a
// whitespace-only title never produces a row.
func (u *TaskUsecase) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	task := &domain.Task{
		OwnerID:     input.OwnerID,
		Title:       title,
		Description: input.Description,
	}

	created, err := u.repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return created, nil
}

func (u *TaskUsecase) ListTasks(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	tasks, err := u.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (u *TaskUsecase) GetByID(ctx context.Context, taskID, ownerID string) (*domain.Task, error) {
	task, err := u.repo.GetByID(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

func (u *TaskUsecase) UpdateTask(ctx context.Context, taskID, ownerID, title, description string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	task, err := u.repo.Update(ctx, taskID, ownerID, title, description)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (u *TaskUsecase) DeleteTask(ctx context.Context, taskID, ownerID string) error {
	if err := u.repo.Delete(ctx, taskID, ownerID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return err
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
