package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"jotter/internal/database/models"

	"github.com/google/uuid"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.Task, error)
	GetAll(ctx context.Context, userID uuid.UUID) ([]models.Task, error)
	Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, title, description *string, completed *bool) (*models.Task, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, title, description, completed, user_id, created_at, updated_at`

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (title, description, completed, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, task.Title, task.Description, task.Completed, task.UserID).
		Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating task: %v", err)
	}
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.Task, error) {
	task := models.Task{}
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&task.ID, &task.Title, &task.Description, &task.Completed, &task.UserID, &task.CreatedAt, &task.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting task: %v", err)
	}
	return &task, nil
}

func (r *taskRepository) GetAll(ctx context.Context, userID uuid.UUID) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 ORDER BY created_at DESC`
	result, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying tasks: %v", err)
	}
	defer result.Close()
	var tasks []models.Task
	for result.Next() {
		var task models.Task
		err := result.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Completed,
			&task.UserID,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning task: %v", err)
		}
		tasks = append(tasks, task)
	}
	if err = result.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %v", err)
	}
	return tasks, nil
}

// Update applies a partial update; nil fields keep their stored value. The
// completed toggle arrives on its own from clients.
func (r *taskRepository) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, title, description *string, completed *bool) (*models.Task, error) {
	task := models.Task{}
	query := `
		UPDATE tasks
		SET title = COALESCE($1, title), description = COALESCE($2, description),
		    completed = COALESCE($3, completed), updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND user_id = $5
		RETURNING ` + taskColumns
	err := r.db.QueryRowContext(ctx, query, title, description, completed, id, userID).
		Scan(&task.ID, &task.Title, &task.Description, &task.Completed, &task.UserID, &task.CreatedAt, &task.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating task: %v", err)
	}
	return &task, nil
}

func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("error deleting task: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
