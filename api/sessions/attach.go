package sessions

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
)

// Attach opens a playback session on a scene
// @Summary      Attach playback session
// @Description  Create a live playback session for a scene. The response carries the session ID used by all /sessions endpoints, plus the first state snapshot.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path int true "Scene ID"
// @Param        options body types.AttachSessionRequest false "Attach options"
// @Success      201 {object} types.SessionResponse "Attached session"
// @Failure      400 {object} types.ErrorResponse "Invalid scene ID"
// @Failure      404 {object} types.ErrorResponse "Scene not found"
// @Failure      409 {object} types.ErrorResponse "Server shutting down"
// @Router       /api/v1/scenes/{id}/session [post]
func Attach(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		// The body is optional; an empty one keeps the scene's language
		var req types.AttachSessionRequest
		if c.Request.ContentLength > 0 {
			if !types.BindJSONOrError(c, &req) {
				return
			}
		}

		session, err := deps.SessionManager.Attach(c.Request.Context(), sceneID, req.Language)
		if err != nil {
			log.Printf("[ERROR] Failed to attach session to scene %d: %v", sceneID, err)
			types.SendServiceError(c, err)
			return
		}

		log.Printf("[INFO] Attached session %s to scene %d", session.ID(), sceneID)
		snap := session.Snapshot()
		types.SendCreated(c, types.SessionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Session attached"},
			Session:      &snap,
		})
	}
}
