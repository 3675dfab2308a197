package preferences

import (
	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
)

// RegisterRoutes registers preference routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/preferences/tracks - Stored mix state per audio track
	router.GET("/tracks", GetTracks(deps))

	// PUT /api/v1/preferences/tracks - Update stored mix states
	router.PUT("/tracks", UpdateTracks(deps))
}
