package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// SubmitTrip godoc
// @Summary Submit the trip details
// @Description Validates and stores the trip request; previous recommendations and selections are cleared
// @Tags Trip
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.TripRequest true "Trip details"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trip [put]
func (t *TripController) SubmitTrip(c *gin.Context) {
	state, ok := currentSession(c)
	if !ok {
		return
	}

	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.SubmitTrip(c.Request.Context(), state, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip details saved")
}

// GetTrip godoc
// @Summary Get the trip details
// @Tags Trip
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /trip [get]
func (t *TripController) GetTrip(c *gin.Context) {
	state, ok := currentSession(c)
	if !ok {
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), state)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "")
}

// PreviewPrompt godoc
// @Summary Preview the recommendation prompt
// @Description Returns the instruction that would be sent to the model for the current trip
// @Tags Trip
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /trip/prompt [get]
func (t *TripController) PreviewPrompt(c *gin.Context) {
	state, ok := currentSession(c)
	if !ok {
		return
	}

	prompt, err := t.tripService.PreviewPrompt(c.Request.Context(), state)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"prompt": prompt}, "")
}
