package sessions

import (
	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
	sessionsService "github.com/cutroom/timeline-api/internal/services/sessions"
)

// RegisterSceneRoutes registers the session attach route, which lives under
// the scene path
func RegisterSceneRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/scenes/:id/session - Open a playback session on a scene
	router.POST("/:id/session", Attach(deps))
}

// RegisterRoutes registers session control routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/sessions/:id - Current state snapshot
	router.GET("/:id", Get(deps))

	// DELETE /api/v1/sessions/:id - Close the session
	router.DELETE("/:id", Delete(deps))

	// Playback control
	router.POST("/:id/play", Play(deps))
	router.POST("/:id/pause", Pause(deps))
	router.POST("/:id/toggle", Toggle(deps))
	router.POST("/:id/seek", Seek(deps))

	// Session settings
	router.PUT("/:id/language", UpdateLanguage(deps))
	router.PUT("/:id/viewport", UpdateViewport(deps))
	router.PUT("/:id/tracks/:track", UpdateTrackState(deps))

	// Direct manipulation editing
	router.POST("/:id/drag", DragBegin(deps))
	router.POST("/:id/drag/move", DragMove(deps))
	router.POST("/:id/drag/end", DragEnd(deps))
}

// lookup resolves the session named by the :id path parameter, sending a 404
// when it does not exist
func lookup(c *gin.Context, deps *types.Dependencies) (*sessionsService.Session, bool) {
	session, ok := deps.SessionManager.Get(c.Param("id"))
	if !ok {
		types.SendNotFound(c, "Session not found")
		return nil, false
	}
	return session, true
}

// respondState answers a session command with the state it produced
func respondState(c *gin.Context, session *sessionsService.Session) {
	snap := session.Snapshot()
	types.SendSuccess(c, types.SessionResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK},
		Session:      &snap,
	})
}
