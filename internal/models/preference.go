package models

import (
	"gorm.io/gorm"
)

// PreferenceSchemaVersion is bumped whenever the preference shape changes.
// Rows written under an older version are ignored on read and replaced with
// defaults on the next write.
const PreferenceSchemaVersion = 2

// TrackPreference stores the playback preference for one track category:
// volume level and the enabled/muted flag.
type TrackPreference struct {
	gorm.Model
	SchemaVersion int     `json:"schema_version" gorm:"not null;uniqueIndex:idx_track_prefs_version_track"`
	Track         string  `json:"track" gorm:"not null;size:20;uniqueIndex:idx_track_prefs_version_track"`
	Volume        float64 `json:"volume" gorm:"default:1"` // 0.0-1.0
	Enabled       bool    `json:"enabled" gorm:"default:true"`
}

// TableName specifies the table name for GORM
func (TrackPreference) TableName() string {
	return "track_preferences"
}
