package summarizer

import (
	"context"
	"fmt"
	"strings"
)

// Mock produces a deterministic summary without any network access. It is
// used whenever no Gemini API key is configured and never fails.
type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Summarize(_ context.Context, title, content string) (string, error) {
	wordCount := len(strings.Split(content, " "))
	summary := fmt.Sprintf(
		"This note contains %d words about \"%s\". It covers the main topics discussed in the content and provides key insights. This is a mock summary since no Gemini API key is configured.",
		wordCount, title)
	return summary, nil
}
