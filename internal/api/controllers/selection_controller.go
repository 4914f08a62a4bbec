package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type SelectionController struct {
	selectionService services.SelectionServiceInterface
}

func NewSelectionController(selectionService services.SelectionServiceInterface) *SelectionController {
	return &SelectionController{
		selectionService: selectionService,
	}
}

// ToggleSelection godoc
// @Summary Select or unselect a plan
// @Description Applying the same toggle twice leaves the selections unchanged
// @Tags Selections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.ToggleSelectionRequest true "Plan toggle"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /selections [put]
func (s *SelectionController) ToggleSelection(c *gin.Context) {
	state, ok := currentSession(c)
	if !ok {
		return
	}

	var req request_models.ToggleSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "day and section are required")
		return
	}

	selections, err := s.selectionService.ToggleSelection(c.Request.Context(), state, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, selections, "Selections updated")
}

// ListSelections godoc
// @Summary List the selected plans
// @Tags Selections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /selections [get]
func (s *SelectionController) ListSelections(c *gin.Context) {
	state, ok := currentSession(c)
	if !ok {
		return
	}

	utils.RespondSuccess(c, s.selectionService.ListSelections(c.Request.Context(), state), "")
}
