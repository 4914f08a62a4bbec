package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-3-5-haiku-latest"

type AnthropicCompletionClient struct {
	client      anthropic.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewAnthropicCompletionClient(apiKey, model, baseURL string, temperature float32, maxTokens int) *AnthropicCompletionClient {
	if model == "" {
		model = defaultAnthropicModel
	}
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	opts := []anthropicoption.RequestOption{
		anthropicoption.WithAPIKey(apiKey),
		anthropicoption.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, anthropicoption.WithBaseURL(baseURL))
	}

	return &AnthropicCompletionClient{
		client:      anthropic.NewClient(opts...),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (c *AnthropicCompletionClient) Complete(ctx context.Context, prompt string, history []string) (string, error) {
	messages := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, turn := range history {
		role, content := SplitTurn(turn)
		if role == "assistant" {
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(content)))
			continue
		}
		messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(content)))
	}
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)))

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(c.maxTokens),
		Messages:  messages,
	}
	if c.temperature > 0 {
		params.Temperature = anthropic.Float(float64(c.temperature))
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", completionError(c.Name(), err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", completionError(c.Name(), fmt.Errorf("no content generated"))
	}

	return b.String(), nil
}

func (c *AnthropicCompletionClient) Name() string {
	return "anthropic-" + c.model
}
