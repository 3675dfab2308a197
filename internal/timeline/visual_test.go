package timeline

import (
	"testing"

	"github.com/cutroom/timeline-api/internal/models"
	"gorm.io/gorm"
)

func testSegments() []models.Segment {
	return []models.Segment{
		{
			Model:     gorm.Model{ID: 1},
			UUID:      "seg-1",
			Position:  0,
			StartTime: 0,
			EndTime:   4,
			VideoURL:  "https://cdn.test/seg-1.mp4",
			Status:    models.SegmentStatusComplete,
		},
		{
			Model:        gorm.Model{ID: 2},
			UUID:         "seg-2",
			Position:     1,
			StartTime:    4,
			EndTime:      8,
			ThumbnailURL: "https://cdn.test/seg-2.png",
			Status:       models.SegmentStatusGenerating,
		},
		{
			Model:          gorm.Model{ID: 3},
			UUID:           "seg-3",
			Position:       2,
			StartTime:      8,
			EndTime:        12,
			VideoURL:       "https://cdn.test/seg-3.mp4",
			TrimStart:      1.5,
			Status:         models.SegmentStatusComplete,
			IsEstablishing: true,
			ShotNumber:     3,
		},
	}
}

func TestDeriveVisualClips(t *testing.T) {
	clips := DeriveVisualClips(testSegments())

	if len(clips) != 3 {
		t.Fatalf("DeriveVisualClips() = %d clips, want 3", len(clips))
	}

	if clips[0].MediaURL != "https://cdn.test/seg-1.mp4" || !clips[0].HasVideo {
		t.Errorf("clips[0] media = (%q, %v), want video URL", clips[0].MediaURL, clips[0].HasVideo)
	}
	if clips[0].Duration != 4 {
		t.Errorf("clips[0] duration = %v, want 4", clips[0].Duration)
	}

	// No video yet: thumbnail stands in, flagged as a still
	if clips[1].MediaURL != "https://cdn.test/seg-2.png" || clips[1].HasVideo {
		t.Errorf("clips[1] media = (%q, %v), want thumbnail still", clips[1].MediaURL, clips[1].HasVideo)
	}

	if clips[2].TrimStart != 1.5 {
		t.Errorf("clips[2] trim = %v, want 1.5", clips[2].TrimStart)
	}
	if !clips[2].IsEstablishing || clips[2].ShotNumber != 3 {
		t.Errorf("clips[2] shot flags = (%v, %d), want establishing shot 3", clips[2].IsEstablishing, clips[2].ShotNumber)
	}

	// Order is preserved as given
	for i, want := range []uint{1, 2, 3} {
		if clips[i].ID != want {
			t.Errorf("clips[%d].ID = %d, want %d", i, clips[i].ID, want)
		}
	}
}

func TestSceneDuration(t *testing.T) {
	tests := []struct {
		name     string
		segments []models.Segment
		minimum  float64
		want     float64
	}{
		{
			name:     "last segment end wins",
			segments: testSegments(),
			minimum:  10,
			want:     12,
		},
		{
			name:     "empty scene falls back to minimum",
			segments: nil,
			minimum:  10,
			want:     10,
		},
		{
			name: "gap-tolerant: last in sequence order, not max end",
			segments: []models.Segment{
				{StartTime: 0, EndTime: 6},
				{StartTime: 4, EndTime: 5},
			},
			minimum: 10,
			want:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SceneDuration(tt.segments, tt.minimum); got != tt.want {
				t.Errorf("SceneDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}
