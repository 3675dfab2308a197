package timeline

import (
	"github.com/cutroom/timeline-api/internal/models"
)

// DeriveVisualClips maps segments onto positioned visual clips, preserving
// the given order. Segments without video fall back to their thumbnail as a
// still; segments with neither produce a clip with an empty media URL that
// the synchronizer skips.
func DeriveVisualClips(segments []models.Segment) []VisualClip {
	clips := make([]VisualClip, 0, len(segments))
	for _, seg := range segments {
		mediaURL := seg.VideoURL
		if mediaURL == "" {
			mediaURL = seg.ThumbnailURL
		}
		clips = append(clips, VisualClip{
			ID:             seg.ID,
			UUID:           seg.UUID,
			MediaURL:       mediaURL,
			ThumbnailURL:   seg.ThumbnailURL,
			HasVideo:       seg.HasMedia(),
			Start:          seg.StartTime,
			Duration:       seg.Duration(),
			TrimStart:      seg.TrimStart,
			Status:         seg.Status,
			Position:       seg.Position,
			IsEstablishing: seg.IsEstablishing,
			ShotNumber:     seg.ShotNumber,
		})
	}
	return clips
}

// SceneDuration returns the timeline end of the last segment in sequence
// order, or minimum when the scene has no segments. Callers pass segments
// already ordered by position.
func SceneDuration(segments []models.Segment, minimum float64) float64 {
	if len(segments) == 0 {
		return minimum
	}
	last := segments[len(segments)-1]
	return last.StartTime + last.Duration()
}
