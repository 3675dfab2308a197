package types

import "github.com/cutroom/timeline-api/internal/models"

// CreateSceneRequest creates a scene, optionally seeding its audio documents
type CreateSceneRequest struct {
	Title    string                `json:"title" binding:"required" example:"Opening scene"`
	Language string                `json:"language,omitempty" example:"en"`
	Audio    *models.SceneAudioDoc `json:"audio,omitempty"`
}

// UpdateLanguageRequest switches the audio language for a scene or session
type UpdateLanguageRequest struct {
	Language string `json:"language" binding:"required" example:"es"`
}

// AddSegmentRequest inserts a segment after an existing one; an empty
// after_segment_uuid appends at the end.
type AddSegmentRequest struct {
	AfterSegmentUUID string `json:"after_segment_uuid,omitempty"`
}

// UpdateTimingRequest adjusts a clip or segment placement. Omitted fields
// are left unchanged.
type UpdateTimingRequest struct {
	StartTime *float64 `json:"start_time,omitempty" example:"4.5"`
	Duration  *float64 `json:"duration,omitempty" example:"3.0"`
}

// ReorderSegmentsRequest moves the segment at one position to another
type ReorderSegmentsRequest struct {
	From int `json:"from" example:"2"`
	To   int `json:"to" example:"0"`
}

// AudioErrorRequest reports an audio URL that failed to load on a client
type AudioErrorRequest struct {
	URL string `json:"url" binding:"required" example:"https://cdn.example.com/audio/vo.mp3"`
}

// AttachSessionRequest opens a playback session on a scene. An empty
// language keeps the scene's stored preference.
type AttachSessionRequest struct {
	Language string `json:"language,omitempty" example:"en"`
}

// SeekRequest moves the playback cursor, seconds from scene start
type SeekRequest struct {
	Position float64 `json:"position" example:"12.5"`
}

// ViewportRequest reports the rendered timeline width so pointer positions
// map to seconds.
type ViewportRequest struct {
	Width int `json:"width" binding:"required" example:"1280"`
}

// TrackStateRequest sets the mix state for one audio track
type TrackStateRequest struct {
	Volume  *float64 `json:"volume,omitempty" example:"0.8"`
	Enabled *bool    `json:"enabled,omitempty" example:"true"`
}

// DragBeginRequest opens a direct-manipulation edit on a clip
type DragBeginRequest struct {
	Kind     string  `json:"kind" binding:"required" example:"move"` // move, resize-left, resize-right
	Track    string  `json:"track" binding:"required" example:"video"`
	ClipID   string  `json:"clip_id" binding:"required"`
	PointerX float64 `json:"pointer_x"`
}

// DragMoveRequest updates the active drag from a pointer position
type DragMoveRequest struct {
	PointerX float64 `json:"pointer_x"`
}
