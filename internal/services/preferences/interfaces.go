package preferences

import (
	"context"

	"github.com/cutroom/timeline-api/internal/models"
	"github.com/cutroom/timeline-api/internal/timeline"
)

// Repository defines the interface for preference persistence
type Repository interface {
	// GetTrackPreferences returns the stored preferences written under the
	// given schema version
	GetTrackPreferences(ctx context.Context, schemaVersion int) ([]models.TrackPreference, error)

	// UpsertTrackPreference writes the preference for one track, replacing
	// any existing row with the same schema version and track
	UpsertTrackPreference(ctx context.Context, pref *models.TrackPreference) error

	// DeleteOtherVersions removes rows written under any schema version
	// except the one to keep
	DeleteOtherVersions(ctx context.Context, keepVersion int) (int64, error)
}

// Service defines the interface for playback preference operations
type Service interface {
	// GetTrackStates returns the mix state for every audio track, with
	// defaults filled in for tracks that have no stored preference
	GetTrackStates(ctx context.Context) (map[timeline.Track]timeline.TrackState, error)

	// SetTrackState stores the mix state for one audio track
	SetTrackState(ctx context.Context, track timeline.Track, state timeline.TrackState) error
}
