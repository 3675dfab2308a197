package jobs

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
)

// GetByID returns the status of a background job
// @Summary      Get job status
// @Description  Retrieve a background job by ID: status, progress, result and error details. Used to poll render, probe and scan jobs.
// @Tags         jobs
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200 {object} types.JobResponse "Job details"
// @Failure      400 {object} types.ErrorResponse "Invalid job ID"
// @Failure      404 {object} types.ErrorResponse "Job not found"
// @Router       /api/v1/jobs/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		job, err := deps.JobService.GetJob(c.Request.Context(), jobID)
		if err != nil {
			log.Printf("[DEBUG] Failed to fetch job %d: %v", jobID, err)
			types.SendServiceError(c, err)
			return
		}

		types.SendSuccess(c, types.JobResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Job:          job,
		})
	}
}
