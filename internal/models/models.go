package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultLanguage is the language a legacy single-URL audio field stands in for
const DefaultLanguage = "en"

// Segment status constants
const (
	SegmentStatusDraft      = "draft"      // Created, no media yet
	SegmentStatusReady      = "ready"      // Prompt prepared, generation not started
	SegmentStatusGenerating = "generating" // External generation in flight
	SegmentStatusComplete   = "complete"   // Media generated
	SegmentStatusUploaded   = "uploaded"   // Media supplied by direct upload
	SegmentStatusError      = "error"      // Generation failed
)

// Scene represents a composed scene: an ordered segment sequence plus a
// layered audio document
type Scene struct {
	gorm.Model
	UUID     string        `json:"uuid" gorm:"uniqueIndex;not null"`
	Title    string        `json:"title" gorm:"not null"`
	Language string        `json:"language" gorm:"size:8;default:'en'"` // Currently selected audio language
	Audio    SceneAudioDoc `json:"audio" gorm:"type:json"`
	Segments []Segment     `json:"segments,omitempty" gorm:"foreignKey:SceneID"`
}

// BeforeCreate generates a UUID before creating a new scene
func (s *Scene) BeforeCreate(tx *gorm.DB) error {
	if s.UUID == "" {
		s.UUID = uuid.New().String()
	}
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	return nil
}

// TableName specifies the table name for GORM
func (Scene) TableName() string {
	return "scenes"
}

// Segment represents one shot on the scene's visual track
type Segment struct {
	gorm.Model
	UUID    string `json:"uuid" gorm:"uniqueIndex;not null"`
	SceneID uint   `json:"scene_id" gorm:"not null;index"`

	// Timeline placement in seconds from scene start
	Position  int     `json:"position" gorm:"not null;index"` // Sequence index within the scene
	StartTime float64 `json:"start_time" gorm:"not null"`
	EndTime   float64 `json:"end_time" gorm:"not null"`
	TrimStart float64 `json:"trim_start" gorm:"default:0"` // Seconds skipped from the source head

	// Media
	VideoURL     string `json:"video_url" gorm:"size:500"`
	ThumbnailURL string `json:"thumbnail_url" gorm:"size:500"`

	// Generation metadata
	Prompt         string `json:"prompt" gorm:"type:text"`
	Status         string `json:"status" gorm:"size:20;default:'draft'"`
	IsEstablishing bool   `json:"is_establishing" gorm:"default:false"`
	ShotNumber     int    `json:"shot_number" gorm:"default:0"`
}

// BeforeCreate generates a UUID before creating a new segment
func (s *Segment) BeforeCreate(tx *gorm.DB) error {
	if s.UUID == "" {
		s.UUID = uuid.New().String()
	}
	if s.Status == "" {
		s.Status = SegmentStatusDraft
	}
	return nil
}

// TableName specifies the table name for GORM
func (Segment) TableName() string {
	return "segments"
}

// Duration returns the segment's timeline duration in seconds
func (s *Segment) Duration() float64 {
	return s.EndTime - s.StartTime
}

// HasMedia returns true if the segment has playable video
func (s *Segment) HasMedia() bool {
	return s.VideoURL != ""
}
