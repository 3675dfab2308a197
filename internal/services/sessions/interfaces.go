package sessions

import (
	"context"
	"time"

	"github.com/cutroom/timeline-api/internal/models"
	"github.com/cutroom/timeline-api/internal/services/jobs"
	"github.com/cutroom/timeline-api/internal/services/scenes"
	"github.com/cutroom/timeline-api/internal/timeline"
	"github.com/cutroom/timeline-api/pkg/download"
)

// SceneService is the slice of the scene service a playback session drives:
// track derivation for rendering, and the three persistence paths a session
// writes through (drag commits for segments and audio clips, language
// switches).
type SceneService interface {
	TrackSet(ctx context.Context, sceneID uint, language string) (*scenes.SceneTracks, error)
	UpdateSegmentTiming(ctx context.Context, sceneID uint, segmentUUID string, start, duration *float64) (*models.Segment, error)
	UpdateAudioClipTiming(ctx context.Context, sceneID uint, clipID string, start, duration *float64) error
	UpdateSceneLanguage(ctx context.Context, sceneID uint, language string) error
}

// PreferenceStore loads and persists the per-track mix state
type PreferenceStore interface {
	GetTrackStates(ctx context.Context) (map[timeline.Track]timeline.TrackState, error)
	SetTrackState(ctx context.Context, track timeline.Track, state timeline.TrackState) error
}

// JobEnqueuer schedules background work discovered while a session is live,
// such as probing the duration of audio clips the documents carry no timing
// for.
type JobEnqueuer interface {
	EnqueueUniqueJob(ctx context.Context, jobType models.JobType, payload models.JobPayload, uniqueKey string, opts ...jobs.JobOption) (*models.Job, error)
}

// RemoteChecker verifies that a media URL still resolves. Sessions use it as
// a lightweight load check when mounting audio elements; URLs that fail are
// excluded from playback until the scene data replaces them.
type RemoteChecker interface {
	ProbeRemote(ctx context.Context, url string) (*download.RemoteInfo, error)
}

// Config carries the tunables shared by every session a manager creates
type Config struct {
	// FrameInterval is the playback tick cadence
	FrameInterval time.Duration
	// DragDebounce is how long after a drag ends before its commit persists
	DragDebounce time.Duration
	// DragGrace is how long a committed override keeps rendering before the
	// session re-derives placements from stored data
	DragGrace time.Duration
	// DriftThreshold is the media drift, seconds, beyond which playback
	// hard-seeks instead of letting elements free-run
	DriftThreshold float64
	// IdleTimeout is how long a session may go untouched before the manager
	// closes it
	IdleTimeout time.Duration
	// SweepInterval is how often the manager looks for idle sessions
	SweepInterval time.Duration
	// ViewportWidth is the initial container width, pixels, before the
	// client reports its own
	ViewportWidth int
	// LabelColumnWidth is the track label gutter subtracted from the
	// viewport when mapping pixels to seconds
	LabelColumnWidth int
	// DefaultLanguage is used when a scene has no language preference
	DefaultLanguage string
}

// DefaultConfig returns the session tunables used when the caller does not
// override them.
func DefaultConfig() Config {
	return Config{
		FrameInterval:    33 * time.Millisecond,
		DragDebounce:     300 * time.Millisecond,
		DragGrace:        250 * time.Millisecond,
		DriftThreshold:   timeline.DefaultDriftThreshold,
		IdleTimeout:      30 * time.Minute,
		SweepInterval:    5 * time.Minute,
		ViewportWidth:    960,
		LabelColumnWidth: 140,
		DefaultLanguage:  models.DefaultLanguage,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.FrameInterval <= 0 {
		c.FrameInterval = def.FrameInterval
	}
	if c.DragDebounce <= 0 {
		c.DragDebounce = def.DragDebounce
	}
	if c.DragGrace <= 0 {
		c.DragGrace = def.DragGrace
	}
	if c.DriftThreshold <= 0 {
		c.DriftThreshold = def.DriftThreshold
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = def.IdleTimeout
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = def.SweepInterval
	}
	if c.ViewportWidth <= 0 {
		c.ViewportWidth = def.ViewportWidth
	}
	if c.LabelColumnWidth <= 0 {
		c.LabelColumnWidth = def.LabelColumnWidth
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = def.DefaultLanguage
	}
	return c
}
