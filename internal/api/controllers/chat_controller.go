package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// Ask godoc
// @Summary Ask the travel assistant
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.ChatRequest true "Question"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /chat [post]
func (ch *ChatController) Ask(c *gin.Context) {
	state, ok := currentSession(c)
	if !ok {
		return
	}

	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "message is required")
		return
	}

	resp, err := ch.chatService.Ask(c.Request.Context(), state, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// History godoc
// @Summary Chat transcript
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /chat [get]
func (ch *ChatController) History(c *gin.Context) {
	state, ok := currentSession(c)
	if !ok {
		return
	}

	utils.RespondSuccess(c, ch.chatService.History(c.Request.Context(), state), "")
}

// Reset godoc
// @Summary Clear the chat transcript
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /chat [delete]
func (ch *ChatController) Reset(c *gin.Context) {
	state, ok := currentSession(c)
	if !ok {
		return
	}

	ch.chatService.Reset(c.Request.Context(), state)
	utils.RespondSuccess(c, nil, "Chat history cleared")
}
