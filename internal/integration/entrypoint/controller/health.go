// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storeHealthChecker func() bool
}

// NewHealthController creates a new health controller instance.
func NewHealthController(storeHealthChecker func() bool) *HealthController {
	return &HealthController{
		storeHealthChecker: storeHealthChecker,
	}
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	storeStatus := "up"
	if !c.storeHealthChecker() {
		storeStatus = "down"
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"store":  storeStatus,
	})
}
