package memcache

import (
	"sync"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

// SessionState is everything one planning session remembers between interactions.
type SessionState struct {
	ID string

	mu            sync.Mutex
	trip          *request_models.TripRequest
	itinerary     *response_models.Itinerary
	rawCompletion string
	selections    *SelectionState
	chat          []response_models.ChatMessage
}

func NewSessionState(id string) *SessionState {
	return &SessionState{
		ID:         id,
		selections: NewSelectionState(),
	}
}

func (s *SessionState) Trip() (request_models.TripRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.trip == nil {
		return request_models.TripRequest{}, false
	}
	return cloneTrip(*s.trip), true
}

// SetTrip replaces the submitted trip and drops recommendations made for the previous one.
func (s *SessionState) SetTrip(trip request_models.TripRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := cloneTrip(trip)
	s.trip = &t
	s.itinerary = nil
	s.rawCompletion = ""
	s.selections.Clear()
}

func (s *SessionState) Itinerary() (response_models.Itinerary, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.itinerary == nil {
		return response_models.Itinerary{}, "", false
	}
	return *s.itinerary, s.rawCompletion, true
}

// SetItinerary stores a freshly parsed itinerary; selections made against the old one are cleared.
func (s *SessionState) SetItinerary(itinerary response_models.Itinerary, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itinerary = &itinerary
	s.rawCompletion = raw
	s.selections.Clear()
}

func (s *SessionState) ToggleSelection(key string, record response_models.SelectionRecord, selected bool) []response_models.SelectionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections.Toggle(key, record, selected)
	return s.selections.Records()
}

func (s *SessionState) Selections() []response_models.SelectionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selections.Records()
}

func (s *SessionState) ChatMessages() []response_models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]response_models.ChatMessage, len(s.chat))
	copy(out, s.chat)
	return out
}

// ChatHistory renders the transcript as "User:"/"Assistant:" labelled turns.
func (s *SessionState) ChatHistory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]string, 0, len(s.chat))
	for _, m := range s.chat {
		if m.Role == "assistant" {
			history = append(history, utils.AssistantTurn(m.Content))
			continue
		}
		history = append(history, utils.UserTurn(m.Content))
	}
	return history
}

// AppendChatTurn records one answered question as a user/assistant pair.
func (s *SessionState) AppendChatTurn(question, answer string) []response_models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat,
		response_models.ChatMessage{Role: "user", Content: question},
		response_models.ChatMessage{Role: "assistant", Content: answer},
	)
	out := make([]response_models.ChatMessage, len(s.chat))
	copy(out, s.chat)
	return out
}

func (s *SessionState) ResetChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = nil
}

func cloneTrip(t request_models.TripRequest) request_models.TripRequest {
	if t.Transportation != nil {
		t.Transportation = append([]string(nil), t.Transportation...)
	}
	return t
}
