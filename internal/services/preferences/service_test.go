package preferences

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutroom/timeline-api/internal/database"
	"github.com/cutroom/timeline-api/internal/models"
	"github.com/cutroom/timeline-api/internal/timeline"
)

func setupPreferenceService(t *testing.T) (Service, Repository) {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.DB.AutoMigrate(&models.TrackPreference{}))

	t.Cleanup(func() {
		_ = db.Close()
	})

	repo := NewRepository(db.DB)
	return NewService(repo), repo
}

func TestGetTrackStatesDefaults(t *testing.T) {
	svc, _ := setupPreferenceService(t)
	ctx := context.Background()

	states, err := svc.GetTrackStates(ctx)
	require.NoError(t, err)

	require.Len(t, states, len(timeline.AudioTrackOrder))
	for _, track := range timeline.AudioTrackOrder {
		state, ok := states[track]
		require.True(t, ok, "missing state for track %s", track)
		assert.Equal(t, 1.0, state.Volume)
		assert.True(t, state.Enabled)
	}
}

func TestSetTrackStateRoundTrip(t *testing.T) {
	svc, _ := setupPreferenceService(t)
	ctx := context.Background()

	err := svc.SetTrackState(ctx, timeline.TrackMusic, timeline.TrackState{Volume: 0.3, Enabled: false})
	require.NoError(t, err)

	states, err := svc.GetTrackStates(ctx)
	require.NoError(t, err)

	assert.Equal(t, timeline.TrackState{Volume: 0.3, Enabled: false}, states[timeline.TrackMusic])
	// Untouched tracks keep their defaults
	assert.Equal(t, timeline.TrackState{Volume: 1.0, Enabled: true}, states[timeline.TrackVoiceover])
}

func TestSetTrackStateOverwrites(t *testing.T) {
	svc, _ := setupPreferenceService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetTrackState(ctx, timeline.TrackDialogue, timeline.TrackState{Volume: 0.5, Enabled: true}))
	require.NoError(t, svc.SetTrackState(ctx, timeline.TrackDialogue, timeline.TrackState{Volume: 0.8, Enabled: false}))

	states, err := svc.GetTrackStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, timeline.TrackState{Volume: 0.8, Enabled: false}, states[timeline.TrackDialogue])
}

func TestSetTrackStateClampsVolume(t *testing.T) {
	svc, _ := setupPreferenceService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetTrackState(ctx, timeline.TrackEffects, timeline.TrackState{Volume: 1.7, Enabled: true}))
	require.NoError(t, svc.SetTrackState(ctx, timeline.TrackMusic, timeline.TrackState{Volume: -0.4, Enabled: true}))

	states, err := svc.GetTrackStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, states[timeline.TrackEffects].Volume)
	assert.Equal(t, 0.0, states[timeline.TrackMusic].Volume)
}

func TestSetTrackStateRejectsVideo(t *testing.T) {
	svc, _ := setupPreferenceService(t)

	err := svc.SetTrackState(context.Background(), timeline.TrackVideo, timeline.TrackState{Volume: 1, Enabled: true})
	assert.Error(t, err)

	err = svc.SetTrackState(context.Background(), timeline.Track("narrator"), timeline.TrackState{Volume: 1, Enabled: true})
	assert.Error(t, err)
}

func TestOldSchemaVersionsIgnoredAndRetired(t *testing.T) {
	svc, repo := setupPreferenceService(t)
	ctx := context.Background()

	// A row from a previous schema version must not leak into reads
	old := &models.TrackPreference{
		SchemaVersion: models.PreferenceSchemaVersion - 1,
		Track:         string(timeline.TrackMusic),
		Volume:        0.1,
		Enabled:       false,
	}
	require.NoError(t, repo.UpsertTrackPreference(ctx, old))

	states, err := svc.GetTrackStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, timeline.TrackState{Volume: 1.0, Enabled: true}, states[timeline.TrackMusic])

	// The first write under the current version clears the stale rows
	require.NoError(t, svc.SetTrackState(ctx, timeline.TrackVoiceover, timeline.TrackState{Volume: 0.9, Enabled: true}))

	stale, err := repo.GetTrackPreferences(ctx, models.PreferenceSchemaVersion-1)
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestUnknownTrackRowsIgnoredOnRead(t *testing.T) {
	svc, repo := setupPreferenceService(t)
	ctx := context.Background()

	rogue := &models.TrackPreference{
		SchemaVersion: models.PreferenceSchemaVersion,
		Track:         "commentary",
		Volume:        0.2,
		Enabled:       false,
	}
	require.NoError(t, repo.UpsertTrackPreference(ctx, rogue))

	states, err := svc.GetTrackStates(ctx)
	require.NoError(t, err)
	require.Len(t, states, len(timeline.AudioTrackOrder))
	_, ok := states[timeline.Track("commentary")]
	assert.False(t, ok)
}
