package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

type SessionServiceInterface interface {
	StartSession(ctx context.Context) (response_models.SessionResponse, error)
	EndSession(ctx context.Context, state *memcache.SessionState)
	SweepExpired(ctx context.Context) int
}

type SessionService struct {
	store  memcache.SessionStore
	secret []byte
	ttl    time.Duration
}

func NewSessionService(store memcache.SessionStore, secret []byte, ttl time.Duration) SessionServiceInterface {
	return &SessionService{
		store:  store,
		secret: secret,
		ttl:    ttl,
	}
}

// StartSession opens an empty planning session and signs its id for the client.
func (s *SessionService) StartSession(ctx context.Context) (response_models.SessionResponse, error) {
	state := s.store.Create(s.ttl)

	token, err := utils.CreateSessionToken(s.secret, state.ID, s.ttl)
	if err != nil {
		s.store.Delete(state.ID)
		return response_models.SessionResponse{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	log.Printf("Session %s: started", state.ID)
	return response_models.SessionResponse{
		SessionID: state.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.ttl).Unix(),
	}, nil
}

func (s *SessionService) EndSession(ctx context.Context, state *memcache.SessionState) {
	s.store.Delete(state.ID)
	log.Printf("Session %s: ended", state.ID)
}

func (s *SessionService) SweepExpired(ctx context.Context) int {
	removed := s.store.Sweep()
	if removed > 0 {
		log.Printf("Removed %d expired session(s)", removed)
	}
	return removed
}
