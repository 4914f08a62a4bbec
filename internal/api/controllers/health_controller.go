package controllers

import (
	"github.com/gin-gonic/gin"

	"tripplanner/pkg/utils"
)

type HealthController struct {
	provider string
}

func NewHealthController(completion utils.CompletionClientInterface) *HealthController {
	return &HealthController{provider: completion.Name()}
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /health [get]
func (h *HealthController) Health(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"status": "ok", "provider": h.provider}, "Service is healthy")
}
