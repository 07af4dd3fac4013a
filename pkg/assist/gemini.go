// Package assist wraps the Gemini API behind a small interface so the
// writing assistant can fail independently of contact delivery.
package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Improver rewrites a contact form message for clarity.
type Improver interface {
	Improve(ctx context.Context, message string) (string, error)
}

const improvePromptTemplate = `You are an AI assistant that reviews user messages from a contact form and provides suggestions to improve clarity, grammar, and overall writing quality.

Please provide a revised version of the following message with improvements:
%s`

// GeminiImprover implements Improver using the Gemini API.
type GeminiImprover struct {
	client *genai.Client
	model  string
}

func NewGeminiImprover(ctx context.Context, apiKey, model string) (*GeminiImprover, error) {
	if apiKey == "" {
		return nil, errors.New("assist: API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("assist: failed to create genai client: %w", err)
	}
	return &GeminiImprover{client: client, model: model}, nil
}

// Improve asks the model for a rewritten version of the message.
func (g *GeminiImprover) Improve(ctx context.Context, message string) (string, error) {
	prompt := fmt.Sprintf(improvePromptTemplate, message)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("assist: generate content: %w", err)
	}

	improved := strings.TrimSpace(resp.Text())
	if improved == "" {
		return "", errors.New("assist: model returned an empty response")
	}
	return improved, nil
}
