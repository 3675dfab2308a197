package sessions

import (
	"time"

	"github.com/cutroom/timeline-api/internal/timeline"
)

// ClipView is one audio clip as the session currently renders it: base
// placement from the scene data with any in-flight drag override applied.
type ClipView struct {
	ID        string         `json:"id"`
	Track     timeline.Track `json:"track"`
	URL       string         `json:"url,omitempty"`
	Label     string         `json:"label,omitempty"`
	Start     float64        `json:"start"`
	Duration  float64        `json:"duration"`
	TrimStart float64        `json:"trim_start,omitempty"`
	Dragging  bool           `json:"dragging,omitempty"`
}

// SegmentView is one video segment as the session currently renders it
type SegmentView struct {
	ID             uint    `json:"id"`
	UUID           string  `json:"uuid"`
	Position       int     `json:"position"`
	Start          float64 `json:"start"`
	Duration       float64 `json:"duration"`
	TrimStart      float64 `json:"trim_start,omitempty"`
	ThumbnailURL   string  `json:"thumbnail_url,omitempty"`
	Status         string  `json:"status"`
	HasVideo       bool    `json:"has_video"`
	IsEstablishing bool    `json:"is_establishing,omitempty"`
	ShotNumber     int     `json:"shot_number,omitempty"`
	Dragging       bool    `json:"dragging,omitempty"`
}

// TrackStateView is the mix state of one track
type TrackStateView struct {
	Volume  float64 `json:"volume"`
	Enabled bool    `json:"enabled"`
}

// Snapshot is the complete observable state of a session at one instant.
// Handlers return it directly; every field is derived inside the session
// loop, so a snapshot is always internally consistent.
type Snapshot struct {
	SessionID       string                    `json:"session_id"`
	SceneID         uint                      `json:"scene_id"`
	SceneUUID       string                    `json:"scene_uuid"`
	Language        string                    `json:"language"`
	Available       []string                  `json:"available_languages"`
	Playing         bool                      `json:"playing"`
	Cursor          float64                   `json:"cursor"`
	Duration        float64                   `json:"duration"`
	ActiveSegmentID uint                      `json:"active_segment_id,omitempty"`
	Fingerprint     string                    `json:"fingerprint"`
	StaleURLs       []string                  `json:"stale_urls,omitempty"`
	Dragging        bool                      `json:"dragging,omitempty"`
	Tracks          map[string]TrackStateView `json:"tracks"`
	Segments        []SegmentView             `json:"segments"`
	Audio           []ClipView                `json:"audio"`
	PixelsPerSecond float64                   `json:"pixels_per_second"`
	GridInterval    float64                   `json:"grid_interval"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}
