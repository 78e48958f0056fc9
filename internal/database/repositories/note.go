package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"jotter/internal/database/models"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.Note, error)
	GetAll(ctx context.Context, userID uuid.UUID) ([]models.Note, error)
	Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, title, content *string) (*models.Note, error)
	UpdateSummary(ctx context.Context, id uuid.UUID, userID uuid.UUID, summary string) (*models.Note, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type noteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) NoteRepository {
	return &noteRepository{db: db}
}

const noteColumns = `id, title, content, ai_summary, user_id, created_at, updated_at`

func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO notes (title, content, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, ai_summary, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, note.Title, note.Content, note.UserID).
		Scan(&note.ID, &note.AISummary, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating note: %v", err)
	}
	return nil
}

func (r *noteRepository) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.Note, error) {
	note := models.Note{}
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&note.ID, &note.Title, &note.Content, &note.AISummary, &note.UserID, &note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting note: %v", err)
	}
	return &note, nil
}

func (r *noteRepository) GetAll(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 ORDER BY created_at DESC`
	result, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying notes: %v", err)
	}
	defer result.Close()
	var notes []models.Note
	for result.Next() {
		var note models.Note
		err := result.Scan(
			&note.ID,
			&note.Title,
			&note.Content,
			&note.AISummary,
			&note.UserID,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning note: %v", err)
		}
		notes = append(notes, note)
	}
	if err = result.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %v", err)
	}
	return notes, nil
}

// Update applies a partial update; nil fields keep their stored value.
func (r *noteRepository) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, title, content *string) (*models.Note, error) {
	note := models.Note{}
	query := `
		UPDATE notes
		SET title = COALESCE($1, title), content = COALESCE($2, content), updated_at = CURRENT_TIMESTAMP
		WHERE id = $3 AND user_id = $4
		RETURNING ` + noteColumns
	err := r.db.QueryRowContext(ctx, query, title, content, id, userID).
		Scan(&note.ID, &note.Title, &note.Content, &note.AISummary, &note.UserID, &note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating note: %v", err)
	}
	return &note, nil
}

// UpdateSummary writes the summary field only.
func (r *noteRepository) UpdateSummary(ctx context.Context, id uuid.UUID, userID uuid.UUID, summary string) (*models.Note, error) {
	note := models.Note{}
	query := `
		UPDATE notes
		SET ai_summary = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND user_id = $3
		RETURNING ` + noteColumns
	err := r.db.QueryRowContext(ctx, query, summary, id, userID).
		Scan(&note.ID, &note.Title, &note.Content, &note.AISummary, &note.UserID, &note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating note summary: %v", err)
	}
	return &note, nil
}

func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("error deleting note: %v", err)
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
