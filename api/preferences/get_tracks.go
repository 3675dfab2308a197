package preferences

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
)

// GetTracks returns the stored mix state for every audio track
// @Summary      Get track preferences
// @Description  Retrieve the persisted volume and enabled flag for each audio track. Tracks without a stored preference report full volume, enabled.
// @Tags         preferences
// @Produce      json
// @Success      200 {object} types.PreferencesResponse "Track mix states"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/preferences/tracks [get]
func GetTracks(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		states, err := deps.PreferenceService.GetTrackStates(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to load track preferences: %v", err)
			types.SendServiceError(c, err)
			return
		}

		types.SendSuccess(c, types.PreferencesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Tracks:       states,
		})
	}
}
