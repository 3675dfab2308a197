package scenes

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
)

// GetAll returns scenes ordered by most recently updated
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse pagination parameters
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if limit < 1 || limit > 100 {
			limit = 50
		}

		scenes, total, err := deps.SceneService.ListScenes(c.Request.Context(), page, limit)
		if err != nil {
			log.Printf("[ERROR] Failed to list scenes (page %d, limit %d): %v", page, limit, err)
			types.SendServiceError(c, err)
			return
		}

		types.SendSuccess(c, types.ScenesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Scenes:       scenes,
			Count:        len(scenes),
			Total:        total,
			Page:         page,
		})
	}
}
