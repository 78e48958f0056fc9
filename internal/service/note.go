// Package service holds the note summarization orchestration.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"jotter/internal/database/models"
	"jotter/internal/database/repositories"
	"jotter/internal/summarizer"
)

// Fallback texts stored when the provider cannot produce a usable summary.
// Provider trouble is absorbed here: the summarize operation itself still
// succeeds with a placeholder.
const (
	EmptySummaryFallback = "Unable to generate summary"
	UnavailableFallback  = "AI summarization is currently unavailable. Please check your Gemini API key configuration."
)

// NoteService orchestrates ownership-checked note summarization.
type NoteService struct {
	notes      repositories.NoteRepository
	summarizer summarizer.Summarizer
	timeout    time.Duration
	log        zerolog.Logger
}

func NewNoteService(notes repositories.NoteRepository, s summarizer.Summarizer, timeout time.Duration, log zerolog.Logger) *NoteService {
	return &NoteService{
		notes:      notes,
		summarizer: s,
		timeout:    timeout,
		log:        log,
	}
}

// Summarize generates and persists a summary for the caller's note.
//
// The note is fetched scoped by both id and owner, so a note owned by someone
// else is reported exactly like a missing one. The provider is invoked once,
// under a bounded timeout; any failure is logged and downgraded to a fixed
// placeholder rather than failing the request. Exactly one record mutation
// happens per call, and the last writer wins.
func (s *NoteService) Summarize(ctx context.Context, noteID uuid.UUID, userID uuid.UUID) (*models.Note, error) {
	note, err := s.notes.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	summary, err := s.summarizer.Summarize(callCtx, note.Title, note.Content)
	if err != nil {
		s.log.Error().Err(err).Str("note_id", noteID.String()).Msg("summarization provider failed")
		summary = UnavailableFallback
	} else if summary == "" {
		summary = EmptySummaryFallback
	}

	return s.notes.UpdateSummary(ctx, noteID, userID, summary)
}
