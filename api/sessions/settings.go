package sessions

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
	"github.com/cutroom/timeline-api/internal/timeline"
)

// UpdateLanguage switches the audio language the session plays
// @Summary      Switch session language
// @Description  Swap every audio track to the given language and persist it as the scene's preference. Playback position is kept.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        language body types.UpdateLanguageRequest true "Language code"
// @Success      200 {object} types.SessionResponse "Session state after the switch"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/language [put]
func UpdateLanguage(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := lookup(c, deps)
		if !ok {
			return
		}

		var req types.UpdateLanguageRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := session.SetLanguage(req.Language); err != nil {
			log.Printf("[ERROR] Session %s: language switch to %q failed: %v", session.ID(), req.Language, err)
			types.SendServiceError(c, err)
			return
		}
		respondState(c, session)
	}
}

// UpdateViewport reports the rendered timeline width for pixel mapping
// @Summary      Update viewport
// @Description  Report the client's timeline width in pixels so drag pointer positions map onto seconds.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        viewport body types.ViewportRequest true "Viewport size"
// @Success      200 {object} types.SessionResponse "Session state"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/viewport [put]
func UpdateViewport(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := lookup(c, deps)
		if !ok {
			return
		}

		var req types.ViewportRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := session.SetViewport(req.Width); err != nil {
			types.SendServiceError(c, err)
			return
		}
		respondState(c, session)
	}
}

// UpdateTrackState sets the volume or enabled flag for one audio track
// @Summary      Update track mix state
// @Description  Set the volume (0..1) or enabled flag for one audio track. Applies to playback immediately and persists as the default for future sessions.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        track path string true "Audio track" Enums(voiceover, description, dialogue, music, sfx)
// @Param        state body types.TrackStateRequest true "Mix state"
// @Success      200 {object} types.SessionResponse "Session state"
// @Failure      400 {object} types.ErrorResponse "Invalid track or request"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/tracks/{track} [put]
func UpdateTrackState(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := lookup(c, deps)
		if !ok {
			return
		}

		track := timeline.Track(c.Param("track"))

		var req types.TrackStateRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		// Start from the current state so a partial body only changes what
		// it names
		snap := session.Snapshot()
		state := timeline.TrackState{Volume: 1, Enabled: true}
		if cur, ok := snap.Tracks[string(track)]; ok {
			state = timeline.TrackState{Volume: cur.Volume, Enabled: cur.Enabled}
		}
		if req.Volume != nil {
			state.Volume = *req.Volume
		}
		if req.Enabled != nil {
			state.Enabled = *req.Enabled
		}

		if err := session.SetTrackState(track, state); err != nil {
			types.SendServiceError(c, err)
			return
		}
		respondState(c, session)
	}
}
