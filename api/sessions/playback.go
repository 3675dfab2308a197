package sessions

import (
	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
	"github.com/cutroom/timeline-api/internal/services/sessions"
)

// Play starts playback from the current cursor
// @Summary      Start playback
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.SessionResponse "Session state after the command"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Failure      409 {object} types.ErrorResponse "Session closed"
// @Router       /api/v1/sessions/{id}/play [post]
func Play(deps *types.Dependencies) gin.HandlerFunc {
	return command(deps, func(s *sessions.Session) error { return s.Play() })
}

// Pause freezes playback at the current cursor
// @Summary      Pause playback
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.SessionResponse "Session state after the command"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Failure      409 {object} types.ErrorResponse "Session closed"
// @Router       /api/v1/sessions/{id}/pause [post]
func Pause(deps *types.Dependencies) gin.HandlerFunc {
	return command(deps, func(s *sessions.Session) error { return s.Pause() })
}

// Toggle flips between playing and paused
// @Summary      Toggle playback
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.SessionResponse "Session state after the command"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Failure      409 {object} types.ErrorResponse "Session closed"
// @Router       /api/v1/sessions/{id}/toggle [post]
func Toggle(deps *types.Dependencies) gin.HandlerFunc {
	return command(deps, func(s *sessions.Session) error { return s.Toggle() })
}

// Seek moves the playback cursor
// @Summary      Seek
// @Description  Move the cursor to a position in seconds from scene start. Values outside the scene are clamped.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        seek body types.SeekRequest true "Target position"
// @Success      200 {object} types.SessionResponse "Session state after the seek"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/seek [post]
func Seek(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := lookup(c, deps)
		if !ok {
			return
		}

		var req types.SeekRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := session.Seek(req.Position); err != nil {
			types.SendServiceError(c, err)
			return
		}
		respondState(c, session)
	}
}

// command wraps the body-less playback controls
func command(deps *types.Dependencies, run func(*sessions.Session) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := lookup(c, deps)
		if !ok {
			return
		}
		if err := run(session); err != nil {
			types.SendServiceError(c, err)
			return
		}
		respondState(c, session)
	}
}
