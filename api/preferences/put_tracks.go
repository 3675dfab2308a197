package preferences

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
	"github.com/cutroom/timeline-api/internal/timeline"
)

// UpdateTracks stores mix states for one or more audio tracks
// @Summary      Update track preferences
// @Description  Set the default volume or enabled flag per audio track, keyed by track name. Omitted fields keep their stored value. These defaults apply to sessions attached afterwards; use the session tracks endpoint to change a live mix.
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        tracks body map[string]types.TrackStateRequest true "Mix state per track"
// @Success      200 {object} types.PreferencesResponse "Updated track mix states"
// @Failure      400 {object} types.ErrorResponse "Unknown track"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/preferences/tracks [put]
func UpdateTracks(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req map[string]types.TrackStateRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		current, err := deps.PreferenceService.GetTrackStates(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to load track preferences: %v", err)
			types.SendServiceError(c, err)
			return
		}

		for name, change := range req {
			track := timeline.Track(name)
			if !track.IsAudio() {
				types.SendBadRequest(c, "Unknown audio track: "+name)
				return
			}

			state := current[track]
			if change.Volume != nil {
				state.Volume = *change.Volume
			}
			if change.Enabled != nil {
				state.Enabled = *change.Enabled
			}

			if err := deps.PreferenceService.SetTrackState(c.Request.Context(), track, state); err != nil {
				log.Printf("[ERROR] Failed to store preference for track %s: %v", track, err)
				types.SendServiceError(c, err)
				return
			}
			current[track] = state
		}

		types.SendSuccess(c, types.PreferencesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Preferences updated"},
			Tracks:       current,
		})
	}
}
