package sessions

import (
	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
)

// Get returns the current state snapshot of a session
// @Summary      Get session snapshot
// @Description  Retrieve the session's current state: cursor, playing flag, active segment, per-track clip placements, stale audio URLs and mix states. Clients poll this while playing.
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.SessionResponse "Session state"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := lookup(c, deps)
		if !ok {
			return
		}

		snap := session.Snapshot()
		types.SendSuccess(c, types.SessionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Session:      &snap,
		})
	}
}
