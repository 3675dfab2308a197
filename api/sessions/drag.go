package sessions

import (
	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
	"github.com/cutroom/timeline-api/internal/timeline"
)

// DragBegin opens a direct-manipulation edit on a clip
// @Summary      Begin drag
// @Description  Start moving or resizing a clip. The session tracks pointer positions until the drag ends; clip placement in snapshots reflects the drag immediately, persistence is debounced.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        drag body types.DragBeginRequest true "Drag parameters"
// @Success      200 {object} types.SessionResponse "Session state"
// @Failure      400 {object} types.ErrorResponse "Invalid drag"
// @Failure      404 {object} types.ErrorResponse "Session or clip not found"
// @Router       /api/v1/sessions/{id}/drag [post]
func DragBegin(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := lookup(c, deps)
		if !ok {
			return
		}

		var req types.DragBeginRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		err := session.BeginDrag(timeline.DragKind(req.Kind), timeline.Track(req.Track), req.ClipID, req.PointerX)
		if err != nil {
			types.SendServiceError(c, err)
			return
		}
		respondState(c, session)
	}
}

// DragMove updates the active drag from a new pointer position
// @Summary      Move drag
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        move body types.DragMoveRequest true "Pointer position"
// @Success      200 {object} types.SessionResponse "Session state with updated placement"
// @Failure      400 {object} types.ErrorResponse "No active drag"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/drag/move [post]
func DragMove(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := lookup(c, deps)
		if !ok {
			return
		}

		var req types.DragMoveRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := session.MoveDrag(req.PointerX); err != nil {
			types.SendServiceError(c, err)
			return
		}
		respondState(c, session)
	}
}

// DragEnd finishes the active drag and schedules its commit
// @Summary      End drag
// @Description  Release the dragged clip. The final placement keeps rendering from the drag override while the debounced write to scene data happens in the background.
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.SessionResponse "Session state"
// @Failure      400 {object} types.ErrorResponse "No active drag"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/drag/end [post]
func DragEnd(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := lookup(c, deps)
		if !ok {
			return
		}

		if err := session.EndDrag(); err != nil {
			types.SendServiceError(c, err)
			return
		}
		respondState(c, session)
	}
}
