package jobs

import (
	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
)

// RegisterRoutes registers job routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/jobs/:id - Job status
	router.GET("/:id", GetByID(deps))
}
