// Package summarizer produces short natural-language summaries of notes.
//
// Two implementations exist: Gemini, backed by Google's generative API, and
// Mock, a deterministic offline fallback. Which one is used is decided once,
// at construction, from the presence of the API key.
package summarizer

import (
	"context"

	"jotter/internal/config"
)

// Summarizer generates a short summary for a note's title and content.
type Summarizer interface {
	Summarize(ctx context.Context, title, content string) (string, error)
}

// New returns the Gemini summarizer when an API key is configured and the
// mock summarizer otherwise. A missing key is a supported state, not an
// error.
func New(cfg *config.Config) (Summarizer, error) {
	if cfg.GeminiAPIKey == "" {
		return NewMock(), nil
	}
	return NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel)
}
