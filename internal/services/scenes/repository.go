package scenes

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cutroom/timeline-api/internal/models"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements SceneRepository interface
var _ SceneRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateScene(ctx context.Context, scene *models.Scene) error {
	if err := r.db.WithContext(ctx).Create(scene).Error; err != nil {
		return fmt.Errorf("creating scene: %w", err)
	}
	return nil
}

func (r *Repository) GetSceneByID(ctx context.Context, id uint) (*models.Scene, error) {
	var scene models.Scene
	if err := r.db.WithContext(ctx).
		Preload("Segments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&scene, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("scene", id)
		}
		return nil, fmt.Errorf("getting scene: %w", err)
	}
	return &scene, nil
}

func (r *Repository) GetSceneByUUID(ctx context.Context, uuid string) (*models.Scene, error) {
	var scene models.Scene
	if err := r.db.WithContext(ctx).
		Preload("Segments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("uuid = ?", uuid).
		First(&scene).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("scene", uuid)
		}
		return nil, fmt.Errorf("getting scene by uuid: %w", err)
	}
	return &scene, nil
}

func (r *Repository) ListScenes(ctx context.Context, page, limit int) ([]models.Scene, int64, error) {
	var scenes []models.Scene
	var total int64

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&models.Scene{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting scenes: %w", err)
	}

	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&scenes).Error; err != nil {
		return nil, 0, fmt.Errorf("listing scenes: %w", err)
	}

	return scenes, total, nil
}

func (r *Repository) UpdateSceneAudio(ctx context.Context, sceneID uint, audio models.SceneAudioDoc) error {
	result := r.db.WithContext(ctx).Model(&models.Scene{}).
		Where("id = ?", sceneID).
		Update("audio", audio)
	if result.Error != nil {
		return fmt.Errorf("updating scene audio: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("scene", sceneID)
	}
	return nil
}

func (r *Repository) UpdateSceneLanguage(ctx context.Context, sceneID uint, language string) error {
	result := r.db.WithContext(ctx).Model(&models.Scene{}).
		Where("id = ?", sceneID).
		Update("language", language)
	if result.Error != nil {
		return fmt.Errorf("updating scene language: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("scene", sceneID)
	}
	return nil
}

func (r *Repository) DeleteScene(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("scene_id = ?", id).Delete(&models.Segment{}).Error; err != nil {
			return fmt.Errorf("deleting scene segments: %w", err)
		}

		result := tx.Delete(&models.Scene{}, id)
		if result.Error != nil {
			return fmt.Errorf("deleting scene: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return NewNotFoundError("scene", id)
		}
		return nil
	})
}

func (r *Repository) GetSegmentByUUID(ctx context.Context, sceneID uint, uuid string) (*models.Segment, error) {
	var segment models.Segment
	if err := r.db.WithContext(ctx).
		Where("scene_id = ? AND uuid = ?", sceneID, uuid).
		First(&segment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("segment", uuid)
		}
		return nil, fmt.Errorf("getting segment: %w", err)
	}
	return &segment, nil
}

func (r *Repository) InsertSegment(ctx context.Context, segment *models.Segment, shifted []*models.Segment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(segment).Error; err != nil {
			return fmt.Errorf("creating segment: %w", err)
		}
		for _, seg := range shifted {
			if err := tx.Save(seg).Error; err != nil {
				return fmt.Errorf("shifting segment %s: %w", seg.UUID, err)
			}
		}
		return nil
	})
}

func (r *Repository) SaveSegments(ctx context.Context, segments []*models.Segment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, seg := range segments {
			if err := tx.Save(seg).Error; err != nil {
				return fmt.Errorf("saving segment %s: %w", seg.UUID, err)
			}
		}
		return nil
	})
}

func (r *Repository) DeleteSegment(ctx context.Context, segmentID uint, shifted []*models.Segment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Segment{}, segmentID)
		if result.Error != nil {
			return fmt.Errorf("deleting segment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return NewNotFoundError("segment", segmentID)
		}
		for _, seg := range shifted {
			if err := tx.Save(seg).Error; err != nil {
				return fmt.Errorf("shifting segment %s: %w", seg.UUID, err)
			}
		}
		return nil
	})
}
