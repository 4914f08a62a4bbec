package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompletionClient implements CompletionClientInterface using Google's Gemini models
type GeminiCompletionClient struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewGeminiCompletionClient creates a new Gemini client
func NewGeminiCompletionClient(ctx context.Context, apiKey, model string, temperature float32, maxTokens int) (*GeminiCompletionClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client:      client,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Complete sends the whole conversation as a single text part, prior turns first.
func (c *GeminiCompletionClient) Complete(ctx context.Context, prompt string, history []string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	if c.temperature > 0 {
		m.SetTemperature(c.temperature)
	}
	if c.maxTokens > 0 {
		m.SetMaxOutputTokens(int32(c.maxTokens))
	}

	resp, err := m.GenerateContent(ctx, genai.Text(BuildConversation(history, prompt)))
	if err != nil {
		return "", completionError(c.Name(), err)
	}

	content := geminiResponseText(resp)
	if strings.TrimSpace(content) == "" {
		return "", completionError(c.Name(), fmt.Errorf("no content generated"))
	}

	return content, nil
}

func (c *GeminiCompletionClient) Name() string {
	return "gemini-" + c.model
}

// Close closes the Gemini client
func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}

func geminiResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
