package scenes

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
	"github.com/cutroom/timeline-api/internal/models"
)

// Create creates a new scene
// @Summary      Create scene
// @Description  Create a scene, optionally seeding its audio documents. The visual track starts empty; add segments separately.
// @Tags         scenes
// @Accept       json
// @Produce      json
// @Param        scene body types.CreateSceneRequest true "Scene data"
// @Success      201 {object} types.SceneResponse "Created scene"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/scenes [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateSceneRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		scene := &models.Scene{
			Title:    req.Title,
			Language: req.Language,
		}
		if req.Audio != nil {
			scene.Audio = *req.Audio
		}

		if err := deps.SceneService.CreateScene(c.Request.Context(), scene); err != nil {
			log.Printf("[ERROR] Failed to create scene %q: %v", req.Title, err)
			types.SendServiceError(c, err)
			return
		}

		log.Printf("[INFO] Created scene %d (%s)", scene.ID, scene.UUID)
		types.SendCreated(c, types.SceneResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Scene created"},
			Scene:        scene,
		})
	}
}
