package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/services"
	"tripplanner/pkg/memcache"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// CreateSession godoc
// @Summary Start a planning session
// @Description Opens an empty session and returns its bearer token
// @Tags Sessions
// @Produce json
// @Success 201 {object} utils.APIResponse
// @Router /sessions [post]
func (s *SessionController) CreateSession(c *gin.Context) {
	session, err := s.sessionService.StartSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithCode(c, http.StatusCreated, session, "Session created successfully")
}

// EndSession godoc
// @Summary End the current session
// @Description Drops the trip, recommendations, selections and chat of the session
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /sessions/current [delete]
func (s *SessionController) EndSession(c *gin.Context) {
	state, ok := currentSession(c)
	if !ok {
		return
	}

	s.sessionService.EndSession(c.Request.Context(), state)
	utils.RespondSuccess(c, nil, "Session ended")
}

func currentSession(c *gin.Context) (*memcache.SessionState, bool) {
	state, ok := middleware.CurrentSession(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrInvalidSessionToken)
		return nil, false
	}
	return state, true
}
