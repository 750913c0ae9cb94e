// File: services/weather/geminiClient.go
package weather

import (
	"context"
	"fmt"
	"strings"

	"courtside/config"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TextGenerator abstracts the generative endpoint behind the assistant.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

const defaultGeminiModel = "models/gemini-1.5-pro"

// GeminiClient answers assistant prompts through the Gemini API.
type GeminiClient struct {
	model *genai.GenerativeModel
}

// NewGeminiClient dials the Gemini API. The model name comes from
// configuration so deployments can move between model revisions without a
// rebuild.
func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize assistant client: %w", err)
	}
	name := config.AppConfig.GeminiModel
	if name == "" {
		name = defaultGeminiModel
	}
	return &GeminiClient{model: client.GenerativeModel(name)}, nil
}

func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	return responseText(resp)
}

// responseText flattens the first candidate's text parts. A prompt the model
// declines to answer comes back with no candidates rather than an error.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("assistant returned no answer")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("assistant returned no answer")
	}
	return sb.String(), nil
}
