package memcache

import "tripplanner/internal/models/response_models"

// SelectionKey builds the composite key of a plan section within a day.
func SelectionKey(day, section string) string {
	return day + " - " + section
}

// SelectionState keeps chosen plan sections in the order they were first selected.
// It is not safe for concurrent use; SessionState guards it.
type SelectionState struct {
	order   []string
	records map[string]response_models.SelectionRecord
}

func NewSelectionState() *SelectionState {
	return &SelectionState{
		records: make(map[string]response_models.SelectionRecord),
	}
}

// Toggle mirrors a checkbox value: selected stores (or refreshes) the record,
// unselected removes it. Repeating the same value leaves the state unchanged.
func (s *SelectionState) Toggle(key string, record response_models.SelectionRecord, selected bool) {
	if !selected {
		if _, ok := s.records[key]; !ok {
			return
		}
		delete(s.records, key)
		for i, k := range s.order {
			if k == key {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}

	record.Key = key
	if _, ok := s.records[key]; !ok {
		s.order = append(s.order, key)
	}
	s.records[key] = record
}

func (s *SelectionState) Get(key string) (response_models.SelectionRecord, bool) {
	rec, ok := s.records[key]
	return rec, ok
}

func (s *SelectionState) Records() []response_models.SelectionRecord {
	out := make([]response_models.SelectionRecord, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.records[k])
	}
	return out
}

func (s *SelectionState) Len() int {
	return len(s.order)
}

func (s *SelectionState) Clear() {
	s.order = nil
	s.records = make(map[string]response_models.SelectionRecord)
}
