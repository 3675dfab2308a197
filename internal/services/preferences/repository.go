package preferences

import (
	"context"
	"errors"
	"fmt"

	"github.com/cutroom/timeline-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new preference repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// GetTrackPreferences returns the stored preferences for one schema version
func (r *RepositoryImpl) GetTrackPreferences(ctx context.Context, schemaVersion int) ([]models.TrackPreference, error) {
	var prefs []models.TrackPreference
	if err := r.db.WithContext(ctx).
		Where("schema_version = ?", schemaVersion).
		Order("track ASC").
		Find(&prefs).Error; err != nil {
		return nil, fmt.Errorf("getting track preferences: %w", err)
	}
	return prefs, nil
}

// UpsertTrackPreference writes the preference for one track
func (r *RepositoryImpl) UpsertTrackPreference(ctx context.Context, pref *models.TrackPreference) error {
	var existing models.TrackPreference
	err := r.db.WithContext(ctx).
		Where("schema_version = ? AND track = ?", pref.SchemaVersion, pref.Track).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := r.db.WithContext(ctx).Create(pref).Error; err != nil {
				return fmt.Errorf("creating track preference: %w", err)
			}
			return nil
		}
		return fmt.Errorf("getting track preference: %w", err)
	}

	existing.Volume = pref.Volume
	existing.Enabled = pref.Enabled
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return fmt.Errorf("updating track preference: %w", err)
	}
	pref.ID = existing.ID
	return nil
}

// DeleteOtherVersions removes preferences written under other schema versions
func (r *RepositoryImpl) DeleteOtherVersions(ctx context.Context, keepVersion int) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("schema_version != ?", keepVersion).
		Delete(&models.TrackPreference{})
	if result.Error != nil {
		return 0, fmt.Errorf("deleting stale preferences: %w", result.Error)
	}
	return result.RowsAffected, nil
}
