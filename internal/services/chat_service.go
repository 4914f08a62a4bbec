package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

type ChatServiceInterface interface {
	Ask(ctx context.Context, state *memcache.SessionState, question string) (response_models.ChatResponse, error)
	History(ctx context.Context, state *memcache.SessionState) []response_models.ChatMessage
	Reset(ctx context.Context, state *memcache.SessionState)
}

type ChatService struct {
	completion utils.CompletionClientInterface
}

func NewChatService(completion utils.CompletionClientInterface) ChatServiceInterface {
	return &ChatService{completion: completion}
}

// Ask sends the question with the session transcript as context.
// The turn pair is recorded only when the model answers.
func (s *ChatService) Ask(ctx context.Context, state *memcache.SessionState, question string) (response_models.ChatResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return response_models.ChatResponse{}, fmt.Errorf("%w: message is required", utils.ErrIncompleteInput)
	}

	answer, err := s.completion.Complete(ctx, question, state.ChatHistory())
	if err != nil {
		if !errors.Is(err, utils.ErrCompletionUnavailable) {
			err = fmt.Errorf("%w: %v", utils.ErrCompletionUnavailable, err)
		}
		log.Printf("Session %s: chat completion failed: %v", state.ID, err)
		return response_models.ChatResponse{}, err
	}

	return response_models.ChatResponse{
		Answer:   answer,
		Messages: state.AppendChatTurn(question, answer),
	}, nil
}

func (s *ChatService) History(ctx context.Context, state *memcache.SessionState) []response_models.ChatMessage {
	return state.ChatMessages()
}

func (s *ChatService) Reset(ctx context.Context, state *memcache.SessionState) {
	state.ResetChat()
	log.Printf("Session %s: chat history cleared", state.ID)
}
