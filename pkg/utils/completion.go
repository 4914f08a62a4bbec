package utils

import (
	"context"
	"fmt"
	"strings"
)

const (
	userTurnPrefix      = "User: "
	assistantTurnPrefix = "Assistant: "
)

// CompletionClientInterface sends a prompt, optionally preceded by labelled
// conversation turns, to a hosted text-generation model.
type CompletionClientInterface interface {
	Complete(ctx context.Context, prompt string, history []string) (string, error)
	Name() string
}

type CompletionConfig struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
	MaxTokens   int
}

func UserTurn(text string) string {
	return userTurnPrefix + text
}

func AssistantTurn(text string) string {
	return assistantTurnPrefix + text
}

// SplitTurn returns the role ("user" or "assistant") and content of a labelled turn.
// Unlabelled turns are treated as user input.
func SplitTurn(turn string) (string, string) {
	if rest, ok := strings.CutPrefix(turn, assistantTurnPrefix); ok {
		return "assistant", rest
	}
	if rest, ok := strings.CutPrefix(turn, userTurnPrefix); ok {
		return "user", rest
	}
	return "user", turn
}

// BuildConversation joins the prior turns and the new question into one text block.
func BuildConversation(history []string, prompt string) string {
	turns := make([]string, 0, len(history)+1)
	turns = append(turns, history...)
	turns = append(turns, UserTurn(prompt))
	return strings.Join(turns, "\n")
}

func completionError(provider string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrCompletionUnavailable, provider, err)
}

// NewCompletionClient Factory function to create the configured provider's client
func NewCompletionClient(ctx context.Context, cfg CompletionConfig) (CompletionClientInterface, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("missing API key for completion provider %q", cfg.Provider)
	}

	switch strings.ToLower(cfg.Provider) {
	case "gemini", "":
		client, err := NewGeminiCompletionClient(ctx, cfg.APIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "openai":
		return NewOpenAICompletionClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Temperature, cfg.MaxTokens), nil
	case "anthropic":
		return NewAnthropicCompletionClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Temperature, cfg.MaxTokens), nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s. Use 'gemini', 'openai' or 'anthropic'", cfg.Provider)
	}
}
