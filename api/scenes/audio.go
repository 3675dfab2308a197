package scenes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
	"github.com/cutroom/timeline-api/internal/timeline"
)

// UpdateAudioClip adjusts the timing of one audio clip
// @Summary      Update audio clip timing
// @Description  Move or resize one clip on an audio track. The clip ID comes from the scene's tracks endpoint; omitted fields are left unchanged.
// @Tags         scenes
// @Accept       json
// @Produce      json
// @Param        id path int true "Scene ID"
// @Param        track path string true "Audio track" Enums(voiceover, description, dialogue, music, sfx)
// @Param        clipId path string true "Clip ID"
// @Param        timing body types.UpdateTimingRequest true "New placement"
// @Success      200 {object} types.BaseResponse "Clip updated"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Scene or clip not found"
// @Router       /api/v1/scenes/{id}/audio/{track}/{clipId} [patch]
func UpdateAudioClip(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		track := timeline.Track(c.Param("track"))
		if !track.IsAudio() {
			types.SendBadRequest(c, "Invalid audio track")
			return
		}
		clipID := c.Param("clipId")

		var req types.UpdateTimingRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := deps.SceneService.UpdateAudioClipTiming(c.Request.Context(), sceneID, clipID, req.StartTime, req.Duration); err != nil {
			log.Printf("[ERROR] Failed to retime audio clip %s in scene %d: %v", clipID, sceneID, err)
			types.SendServiceError(c, err)
			return
		}

		notifySceneUpdated(deps, sceneID)
		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Clip updated"})
	}
}

// ReportAudioError reports an audio URL that failed to load on a client.
// Live sessions exclude the URL from playback until the scene data replaces it.
func ReportAudioError(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.AudioErrorRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		// Verify the scene exists so bogus IDs don't silently succeed
		if _, err := deps.SceneService.GetScene(c.Request.Context(), sceneID); err != nil {
			types.SendServiceError(c, err)
			return
		}

		log.Printf("[INFO] Audio URL reported unreachable for scene %d: %s", sceneID, req.URL)
		if deps.SessionManager != nil {
			deps.SessionManager.AudioUnavailable(sceneID, req.URL)
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Audio error recorded"})
	}
}
