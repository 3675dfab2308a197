package preferences

import (
	"context"
	"fmt"
	"log"

	"github.com/cutroom/timeline-api/internal/models"
	"github.com/cutroom/timeline-api/internal/timeline"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new preference service
func NewService(repository Repository) Service {
	return &ServiceImpl{
		repository: repository,
	}
}

// GetTrackStates returns the mix state for every audio track. Tracks without
// a stored preference get the default of full volume, enabled. Rows written
// under a different schema version or naming a track that no longer exists
// are ignored.
func (s *ServiceImpl) GetTrackStates(ctx context.Context) (map[timeline.Track]timeline.TrackState, error) {
	states := defaultTrackStates()

	prefs, err := s.repository.GetTrackPreferences(ctx, models.PreferenceSchemaVersion)
	if err != nil {
		return nil, err
	}

	for _, pref := range prefs {
		track := timeline.Track(pref.Track)
		if !track.IsAudio() {
			continue
		}
		states[track] = timeline.TrackState{
			Volume:  clampVolume(pref.Volume),
			Enabled: pref.Enabled,
		}
	}
	return states, nil
}

// SetTrackState stores the mix state for one audio track
func (s *ServiceImpl) SetTrackState(ctx context.Context, track timeline.Track, state timeline.TrackState) error {
	if !track.IsAudio() {
		return fmt.Errorf("track %q has no mix state", track)
	}

	// Writes under the current version retire whatever older versions left
	// behind, completing the reset the read path started
	if removed, err := s.repository.DeleteOtherVersions(ctx, models.PreferenceSchemaVersion); err != nil {
		return err
	} else if removed > 0 {
		log.Printf("[INFO] Removed %d track preferences from older schema versions", removed)
	}

	pref := &models.TrackPreference{
		SchemaVersion: models.PreferenceSchemaVersion,
		Track:         string(track),
		Volume:        clampVolume(state.Volume),
		Enabled:       state.Enabled,
	}
	return s.repository.UpsertTrackPreference(ctx, pref)
}

func defaultTrackStates() map[timeline.Track]timeline.TrackState {
	states := make(map[timeline.Track]timeline.TrackState, len(timeline.AudioTrackOrder))
	for _, track := range timeline.AudioTrackOrder {
		states[track] = timeline.TrackState{Volume: 1.0, Enabled: true}
	}
	return states
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
