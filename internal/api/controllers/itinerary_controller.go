package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate recommendations
// @Description Builds the prompt from the trip details, calls the model and parses the reply
// @Tags Itinerary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /itinerary/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	state, ok := currentSession(c)
	if !ok {
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), state)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Recommendations generated successfully")
}

// GetItinerary godoc
// @Summary Get the current recommendations
// @Tags Itinerary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /itinerary [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	state, ok := currentSession(c)
	if !ok {
		return
	}

	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), state)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "")
}

// ParseItinerary godoc
// @Summary Parse a model reply
// @Description Parses itinerary text supplied by the client and stores it in the session
// @Tags Itinerary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.ParseItineraryRequest true "Raw itinerary text"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary/parse [post]
func (i *ItineraryController) ParseItinerary(c *gin.Context) {
	state, ok := currentSession(c)
	if !ok {
		return
	}

	var req request_models.ParseItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "text is required")
		return
	}

	itinerary, err := i.itineraryService.ParseRawItinerary(c.Request.Context(), state, req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary parsed")
}
