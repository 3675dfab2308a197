package scenes

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
)

// UpdateLanguage switches the scene's stored audio language
// @Summary      Update scene language
// @Description  Set the audio language the scene plays by default. Sessions that attached without pinning a language pick the new one up on their next attach.
// @Tags         scenes
// @Accept       json
// @Produce      json
// @Param        id path int true "Scene ID"
// @Param        language body types.UpdateLanguageRequest true "Language code"
// @Success      200 {object} types.BaseResponse "Language updated"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Scene not found"
// @Router       /api/v1/scenes/{id}/language [put]
func UpdateLanguage(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.UpdateLanguageRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := deps.SceneService.UpdateSceneLanguage(c.Request.Context(), sceneID, req.Language); err != nil {
			log.Printf("[ERROR] Failed to update language for scene %d: %v", sceneID, err)
			types.SendServiceError(c, err)
			return
		}

		notifySceneUpdated(deps, sceneID)
		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Language updated"})
	}
}
