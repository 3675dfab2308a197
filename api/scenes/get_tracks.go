package scenes

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
)

// GetTracks returns the flattened timeline view of a scene
// @Summary      Get scene tracks
// @Description  Derive the flat, positioned clip set for a scene: the visual track plus one clip list per audio category, with available languages and the audio fingerprint.
// @Tags         scenes
// @Produce      json
// @Param        id path int true "Scene ID"
// @Param        language query string false "Audio language (defaults to the scene's stored language)"
// @Success      200 {object} types.TracksResponse "Flattened track set"
// @Failure      400 {object} types.ErrorResponse "Invalid scene ID"
// @Failure      404 {object} types.ErrorResponse "Scene not found"
// @Router       /api/v1/scenes/{id}/tracks [get]
func GetTracks(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		language := c.Query("language")

		tracks, err := deps.SceneService.TrackSet(c.Request.Context(), sceneID, language)
		if err != nil {
			log.Printf("[DEBUG] Failed to derive tracks for scene %d (language %q): %v", sceneID, language, err)
			types.SendServiceError(c, err)
			return
		}

		types.SendSuccess(c, types.TracksResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Tracks:       tracks,
		})
	}
}
