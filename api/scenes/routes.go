package scenes

import (
	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
)

// RegisterRoutes registers scene management routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/scenes - Create a scene
	router.POST("", Create(deps))

	// GET /api/v1/scenes - List scenes
	router.GET("", GetAll(deps))

	// GET /api/v1/scenes/:id - Get scene details
	router.GET("/:id", GetByID(deps))

	// DELETE /api/v1/scenes/:id - Delete a scene
	router.DELETE("/:id", Delete(deps))

	// PUT /api/v1/scenes/:id/language - Switch the scene's audio language
	router.PUT("/:id/language", UpdateLanguage(deps))

	// GET /api/v1/scenes/:id/tracks - Flattened timeline view
	router.GET("/:id/tracks", GetTracks(deps))

	// Segment editing
	router.POST("/:id/segments", AddSegment(deps))
	router.PATCH("/:id/segments/:segmentId", UpdateSegmentTiming(deps))
	router.DELETE("/:id/segments/:segmentId", DeleteSegment(deps))
	router.POST("/:id/segments/reorder", ReorderSegments(deps))

	// Audio clip editing and error reporting
	router.PATCH("/:id/audio/:track/:clipId", UpdateAudioClip(deps))
	router.POST("/:id/audio/errors", ReportAudioError(deps))

	// POST /api/v1/scenes/:id/render - Queue the scene for composition
	router.POST("/:id/render", Render(deps))
}

// notifySceneUpdated tells live sessions on the scene to re-derive their
// tracks after a mutation
func notifySceneUpdated(deps *types.Dependencies, sceneID uint) {
	if deps.SessionManager != nil {
		deps.SessionManager.SceneUpdated(sceneID)
	}
}
