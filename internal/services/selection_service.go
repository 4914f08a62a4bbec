package services

import (
	"context"
	"fmt"
	"log"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

type SelectionServiceInterface interface {
	ToggleSelection(ctx context.Context, state *memcache.SessionState, req request_models.ToggleSelectionRequest) (response_models.SelectionResponse, error)
	ListSelections(ctx context.Context, state *memcache.SessionState) response_models.SelectionResponse
}

type SelectionService struct {
	assetDir string
}

func NewSelectionService(assetDir string) SelectionServiceInterface {
	return &SelectionService{assetDir: assetDir}
}

// ToggleSelection applies one checkbox change. Selecting copies the section's
// description and cost into the record; a missing image is reported as a warning
// and the record is kept without it.
func (s *SelectionService) ToggleSelection(ctx context.Context, state *memcache.SessionState, req request_models.ToggleSelectionRequest) (response_models.SelectionResponse, error) {
	key := memcache.SelectionKey(req.Day, req.Section)

	if !req.Selected {
		return response_models.SelectionResponse{
			Selections: state.ToggleSelection(key, response_models.SelectionRecord{}, false),
		}, nil
	}

	if req.People < 0 {
		return response_models.SelectionResponse{}, fmt.Errorf("%w: people must be at least 1", utils.ErrInvalidInput)
	}
	people := req.People
	if people == 0 {
		people = 1
	}

	itinerary, _, ok := state.Itinerary()
	if !ok {
		return response_models.SelectionResponse{}, utils.ErrItineraryMissing
	}
	day, ok := itinerary.Day(req.Day)
	if !ok {
		return response_models.SelectionResponse{}, fmt.Errorf("%w: %s", utils.ErrSectionNotFound, req.Day)
	}
	section, ok := day.Section(req.Section)
	if !ok {
		return response_models.SelectionResponse{}, fmt.Errorf("%w: %s", utils.ErrSectionNotFound, key)
	}

	record := response_models.SelectionRecord{
		Day:           day.Label,
		Section:       section.Label,
		Description:   section.Description,
		EstimatedCost: section.EstimatedCost,
		People:        people,
	}

	var warnings []string
	if req.Image != "" {
		if _, err := utils.ResolveAsset(s.assetDir, req.Image); err != nil {
			log.Printf("Session %s: %v", state.ID, err)
			warnings = append(warnings, fmt.Sprintf("Image %s not found.", req.Image))
		} else {
			record.Image = req.Image
		}
	}

	return response_models.SelectionResponse{
		Selections: state.ToggleSelection(key, record, true),
		Warnings:   warnings,
	}, nil
}

func (s *SelectionService) ListSelections(ctx context.Context, state *memcache.SessionState) response_models.SelectionResponse {
	return response_models.SelectionResponse{Selections: state.Selections()}
}
