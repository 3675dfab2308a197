package types

import (
	"github.com/cutroom/timeline-api/internal/models"
	"github.com/cutroom/timeline-api/internal/services/scenes"
	"github.com/cutroom/timeline-api/internal/services/sessions"
	"github.com/cutroom/timeline-api/internal/timeline"
)

// Status constants for API responses
const (
	StatusOK         = "ok"
	StatusError      = "error"
	StatusProcessing = "processing"
	StatusFailed     = "failed"
	StatusQueued     = "queued"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// SceneResponse for a single scene with its segments
type SceneResponse struct {
	BaseResponse
	Scene *models.Scene `json:"scene"`
}

// ScenesResponse for scene lists
type ScenesResponse struct {
	BaseResponse
	Scenes []models.Scene `json:"scenes"`
	Count  int            `json:"count"`           // Number of results in this response
	Total  int64          `json:"total,omitempty"` // Total available results (if known)
	Page   int            `json:"page,omitempty"`
}

// TracksResponse for the flattened timeline view of a scene
type TracksResponse struct {
	BaseResponse
	Tracks *scenes.SceneTracks `json:"tracks"`
}

// SegmentResponse for a single segment
type SegmentResponse struct {
	BaseResponse
	Segment *models.Segment `json:"segment"`
}

// SegmentsResponse for segment lists, ordered by position
type SegmentsResponse struct {
	BaseResponse
	Segments []models.Segment `json:"segments"`
	Count    int              `json:"count"`
}

// SessionResponse for playback session state
type SessionResponse struct {
	BaseResponse
	Session *sessions.Snapshot `json:"session"`
}

// PreferencesResponse for the per-track mix states
type PreferencesResponse struct {
	BaseResponse
	Tracks map[timeline.Track]timeline.TrackState `json:"tracks"`
}

// JobResponse for async job status
type JobResponse struct {
	BaseResponse
	Job *models.Job `json:"job"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}
