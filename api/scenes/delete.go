package scenes

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
)

// Delete removes a scene and closes any playback sessions attached to it
// @Summary      Delete scene
// @Description  Delete a scene along with its segments. Live playback sessions on the scene are closed.
// @Tags         scenes
// @Produce      json
// @Param        id path int true "Scene ID"
// @Success      200 {object} types.BaseResponse "Scene deleted"
// @Failure      400 {object} types.ErrorResponse "Invalid scene ID"
// @Failure      404 {object} types.ErrorResponse "Scene not found"
// @Router       /api/v1/scenes/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.SceneService.DeleteScene(c.Request.Context(), sceneID); err != nil {
			log.Printf("[ERROR] Failed to delete scene %d: %v", sceneID, err)
			types.SendServiceError(c, err)
			return
		}

		if deps.SessionManager != nil {
			deps.SessionManager.CloseScene(sceneID)
		}

		log.Printf("[INFO] Deleted scene %d", sceneID)
		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Scene deleted"})
	}
}
