package scenes

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
)

// GetByID returns a single scene with its segments
// @Summary      Get scene
// @Description  Retrieve a scene by ID, including its ordered segments and audio documents
// @Tags         scenes
// @Produce      json
// @Param        id path int true "Scene ID"
// @Success      200 {object} types.SceneResponse "Scene details"
// @Failure      400 {object} types.ErrorResponse "Invalid scene ID"
// @Failure      404 {object} types.ErrorResponse "Scene not found"
// @Router       /api/v1/scenes/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		scene, err := deps.SceneService.GetScene(c.Request.Context(), sceneID)
		if err != nil {
			log.Printf("[DEBUG] Failed to fetch scene %d: %v", sceneID, err)
			types.SendServiceError(c, err)
			return
		}

		types.SendSuccess(c, types.SceneResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Scene:        scene,
		})
	}
}
