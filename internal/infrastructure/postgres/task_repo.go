package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/aidosk/taskvault/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = "id, owner_id, title, description, created_at, updated_at"

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `
		INSERT INTO tasks (owner_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING ` + taskColumns

	row := r.pool.QueryRow(ctx, query, task.OwnerID, task.Title, task.Description)
	created, err := scanTask(row)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *TaskRepository) List(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetByID matches on id AND owner in a single predicate. A task owned by
// someone else is indistinguishable from one that does not exist.
func (r *TaskRepository) GetByID(ctx context.Context, taskID, ownerID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND owner_id = $2`
	return scanTask(r.pool.QueryRow(ctx, query, taskID, ownerID))
}

func (r *TaskRepository) Update(ctx context.Context, taskID, ownerID, title, description string) (*domain.Task, error) {
	query := `
		UPDATE tasks
		SET    title       = $3,
		       description = $4,
		       updated_at  = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + taskColumns

	return scanTask(r.pool.QueryRow(ctx, query, taskID, ownerID, title, description))
}

// Delete is not idempotent: removing an already-removed id reports
// ErrTaskNotFound again.
func (r *TaskRepository) Delete(ctx context.Context, taskID, ownerID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND owner_id = $2`, taskID, ownerID)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// pgx.Row and pgx.Rows both implement this.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &t, nil
}

// A path param that is not a UUID can never match a row, so Postgres'
// invalid-text-representation error (22P02) is reported as not-found.
func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
