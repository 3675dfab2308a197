package sessions

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
)

// Delete detaches and closes a playback session
// @Summary      Close session
// @Description  Stop playback and release the session's media elements. Pending drag commits are flushed before close.
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.BaseResponse "Session closed"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := deps.SessionManager.Close(id); err != nil {
			types.SendServiceError(c, err)
			return
		}
		log.Printf("[INFO] Closed session %s", id)
		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Session closed"})
	}
}
