package memcache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripplanner/internal/models/response_models"
)

func TestSelectionKey(t *testing.T) {
	assert.Equal(t, "Day 1: - Morning Plan:", SelectionKey("Day 1:", "Morning Plan:"))
}

func TestSelectionState_ToggleIdempotent(t *testing.T) {
	s := NewSelectionState()
	rec := response_models.SelectionRecord{Description: "Walk", EstimatedCost: "$10", People: 2}

	s.Toggle("a", rec, true)
	once := s.Records()
	s.Toggle("a", rec, true)
	assert.Equal(t, once, s.Records())
	assert.Equal(t, "a", once[0].Key)

	s.Toggle("a", rec, false)
	assert.Zero(t, s.Len())
	s.Toggle("a", rec, false)
	assert.Zero(t, s.Len())
}

func TestSelectionState_OrderAndUpdate(t *testing.T) {
	s := NewSelectionState()
	s.Toggle("a", response_models.SelectionRecord{People: 1}, true)
	s.Toggle("b", response_models.SelectionRecord{People: 1}, true)
	s.Toggle("c", response_models.SelectionRecord{People: 1}, true)
	s.Toggle("a", response_models.SelectionRecord{People: 5}, true)
	s.Toggle("b", response_models.SelectionRecord{}, false)

	records := s.Records()
	assert.Equal(t, []string{"a", "c"}, []string{records[0].Key, records[1].Key})
	assert.Equal(t, 5, records[0].People)

	rec, ok := s.Get("c")
	assert.True(t, ok)
	assert.Equal(t, "c", rec.Key)

	s.Clear()
	assert.Empty(t, s.Records())
	_, ok = s.Get("a")
	assert.False(t, ok)
}
