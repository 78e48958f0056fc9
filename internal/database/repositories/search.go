package repositories

import (
	"context"
	"database/sql"
	"jotter/internal/database/models"
	"strings"

	"github.com/google/uuid"
)

type SearchRepository interface {
	SearchQuery(ctx context.Context, query string, userID uuid.UUID) (*models.SearchResult, error)
}

type searchRepository struct {
	db *sql.DB
}

func NewSearchRepository(db *sql.DB) SearchRepository {
	return &searchRepository{db: db}
}

func (s *searchRepository) SearchQuery(ctx context.Context, query string, userID uuid.UUID) (*models.SearchResult, error) {
	tsQuery := "to_tsquery('english', $1)"
	notesQuery := `
   	SELECT id, title, content, ai_summary, created_at, updated_at, user_id
   	FROM notes
   	WHERE user_id = $2 AND
   	      (to_tsvector('english', title) @@ ` + tsQuery + ` OR
   	       to_tsvector('english', content) @@ ` + tsQuery + `)
   	ORDER BY ts_rank(to_tsvector('english', title || ' ' || content), ` + tsQuery + `) DESC
   `
	tasksQuery := `
   	SELECT id, title, description, completed, created_at, updated_at, user_id
   	FROM tasks
   	WHERE user_id = $2 AND
   	      (to_tsvector('english', title) @@ ` + tsQuery + ` OR
   	       to_tsvector('english', description) @@ ` + tsQuery + `)
   	ORDER BY ts_rank(to_tsvector('english', title || ' ' || description), ` + tsQuery + `) DESC
   `

	formattedQuery := formatTsQuery(query)

	notesRows, err := s.db.QueryContext(ctx, notesQuery, formattedQuery, userID)
	if err != nil {
		return &models.SearchResult{}, err
	}
	defer notesRows.Close()

	var notes []models.Note
	for notesRows.Next() {
		var note models.Note
		if err := notesRows.Scan(
			&note.ID,
			&note.Title,
			&note.Content,
			&note.AISummary,
			&note.CreatedAt,
			&note.UpdatedAt,
			&note.UserID,
		); err != nil {
			return &models.SearchResult{}, err
		}
		notes = append(notes, note)
	}

	if err := notesRows.Err(); err != nil {
		return &models.SearchResult{}, err
	}

	tasksRows, err := s.db.QueryContext(ctx, tasksQuery, formattedQuery, userID)
	if err != nil {
		return &models.SearchResult{}, err
	}
	defer tasksRows.Close()

	var tasks []models.Task
	for tasksRows.Next() {
		var task models.Task
		if err := tasksRows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Completed,
			&task.CreatedAt,
			&task.UpdatedAt,
			&task.UserID,
		); err != nil {
			return &models.SearchResult{}, err
		}
		tasks = append(tasks, task)
	}

	if err := tasksRows.Err(); err != nil {
		return &models.SearchResult{}, err
	}
	return &models.SearchResult{
		Notes: notes,
		Tasks: tasks,
	}, nil
}

func formatTsQuery(query string) string {
	words := strings.Fields(query)

	for i, word := range words {
		word = strings.ReplaceAll(word, "'", "''")
		// Prefix matching so partial words still hit
		words[i] = word + ":*"
	}

	return strings.Join(words, " & ")
}
