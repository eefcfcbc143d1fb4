package controller

import (
	"gradtrak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	util.Success(ctx, gin.H{"status": "ok"})
}
