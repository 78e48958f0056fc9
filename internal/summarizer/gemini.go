package summarizer

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-1.5-flash"

const promptTemplate = `You are a helpful assistant that summarizes notes. Provide a concise summary in 2-3 sentences.

Please summarize this note:

Title: %s

Content: %s`

// Gemini summarizes notes using Google's Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini summarizer.
func NewGemini(apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// Summarize makes a single generation call. No retries: callers decide what
// a failure means.
func (g *Gemini) Summarize(ctx context.Context, title, content string) (string, error) {
	prompt := fmt.Sprintf(promptTemplate, title, content)

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	return result.Text(), nil
}
