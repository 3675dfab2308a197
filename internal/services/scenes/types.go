package scenes

import (
	"github.com/cutroom/timeline-api/internal/timeline"
)

// SceneTracks is the flattened timeline view of one scene for one language:
// the positioned audio clips, the derived visual clips, the languages the
// audio document can serve, and a fingerprint of the track/URL pairs so
// callers can detect material changes without diffing the whole set.
type SceneTracks struct {
	SceneID     uint                   `json:"scene_id"`
	SceneUUID   string                 `json:"scene_uuid"`
	Language    string                 `json:"language"`
	Available   []string               `json:"available_languages"`
	Fingerprint string                 `json:"fingerprint"`
	Duration    float64                `json:"duration"`
	Audio       timeline.AudioTrackSet `json:"audio"`
	Visual      []timeline.VisualClip  `json:"visual"`
}
