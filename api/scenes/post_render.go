package scenes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
	"github.com/cutroom/timeline-api/internal/models"
	"github.com/cutroom/timeline-api/internal/services/jobs"
	apperrors "github.com/cutroom/timeline-api/pkg/errors"
)

// Render queues a scene for composition into a final video
// @Summary      Render scene
// @Description  Enqueue a render job for the scene. Rendering itself happens in an external composition system that claims the job; poll the returned job for status.
// @Tags         scenes
// @Produce      json
// @Param        id path int true "Scene ID"
// @Success      202 {object} types.JobResponse "Queued render job"
// @Failure      400 {object} types.ErrorResponse "Invalid scene ID"
// @Failure      404 {object} types.ErrorResponse "Scene not found"
// @Failure      422 {object} types.ErrorResponse "Scene has nothing to render"
// @Failure      500 {object} types.ErrorResponse "Failed to enqueue"
// @Router       /api/v1/scenes/{id}/render [post]
func Render(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		scene, err := deps.SceneService.GetScene(c.Request.Context(), sceneID)
		if err != nil {
			types.SendServiceError(c, err)
			return
		}

		// A render needs at least one segment with video or a still to
		// compose from
		renderable := 0
		for _, seg := range scene.Segments {
			if seg.VideoURL != "" || seg.ThumbnailURL != "" {
				renderable++
			}
		}
		if renderable == 0 {
			types.SendServiceError(c, apperrors.New(apperrors.ErrCodeMediaUnavailable, "scene has no renderable segments").
				WithDetail("scene_id", scene.ID).
				WithDetail("segments", len(scene.Segments)))
			return
		}

		payload := models.JobPayload{
			"scene_id":   scene.ID,
			"scene_uuid": scene.UUID,
			"language":   scene.Language,
		}
		job, err := deps.JobService.EnqueueUniqueJob(c.Request.Context(), models.JobTypeSceneRender, payload, "scene_id",
			jobs.WithPriority(5), jobs.WithCreatedBy("scenes-api"))
		if err != nil {
			log.Printf("[ERROR] Failed to enqueue render for scene %d: %v", sceneID, err)
			types.SendServiceError(c, err)
			return
		}

		log.Printf("[INFO] Queued render job %d for scene %d", job.ID, sceneID)
		c.JSON(http.StatusAccepted, types.JobResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusQueued, Message: "Render queued"},
			Job:          job,
		})
	}
}
