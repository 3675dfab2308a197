package scenes

import (
	"context"

	"github.com/cutroom/timeline-api/internal/models"
)

// SceneRepository defines the interface for scene data persistence
type SceneRepository interface {
	// Scene operations
	CreateScene(ctx context.Context, scene *models.Scene) error
	GetSceneByID(ctx context.Context, id uint) (*models.Scene, error)
	GetSceneByUUID(ctx context.Context, uuid string) (*models.Scene, error)
	ListScenes(ctx context.Context, page, limit int) ([]models.Scene, int64, error)
	UpdateSceneAudio(ctx context.Context, sceneID uint, audio models.SceneAudioDoc) error
	UpdateSceneLanguage(ctx context.Context, sceneID uint, language string) error
	DeleteScene(ctx context.Context, id uint) error

	// Segment operations. The multi-row mutations run in one transaction so
	// a structural edit never half-applies.
	GetSegmentByUUID(ctx context.Context, sceneID uint, uuid string) (*models.Segment, error)
	InsertSegment(ctx context.Context, segment *models.Segment, shifted []*models.Segment) error
	SaveSegments(ctx context.Context, segments []*models.Segment) error
	DeleteSegment(ctx context.Context, segmentID uint, shifted []*models.Segment) error
}

// SceneService defines the business logic interface for scene operations
type SceneService interface {
	// Scene CRUD
	CreateScene(ctx context.Context, scene *models.Scene) error
	GetScene(ctx context.Context, id uint) (*models.Scene, error)
	GetSceneByUUID(ctx context.Context, uuid string) (*models.Scene, error)
	ListScenes(ctx context.Context, page, limit int) ([]models.Scene, int64, error)
	DeleteScene(ctx context.Context, id uint) error
	UpdateSceneLanguage(ctx context.Context, sceneID uint, language string) error

	// TrackSet assembles the flattened timeline view for a language. An
	// empty language selects the scene's persisted language.
	TrackSet(ctx context.Context, sceneID uint, language string) (*SceneTracks, error)

	// Segment structural edits
	AddSegment(ctx context.Context, sceneID uint, afterSegmentUUID string) (*models.Segment, error)
	DeleteSegment(ctx context.Context, sceneID uint, segmentUUID string) error
	ReorderSegments(ctx context.Context, sceneID uint, from, to int) ([]models.Segment, error)

	// Timing persistence. Nil start or duration means "leave unchanged".
	UpdateSegmentTiming(ctx context.Context, sceneID uint, segmentUUID string, start, duration *float64) (*models.Segment, error)
	UpdateAudioClipTiming(ctx context.Context, sceneID uint, clipID string, start, duration *float64) error

	// CorrectAudioDuration fills in a clip's duration once the real media
	// duration has been observed. Entries that already carry a duration are
	// left alone.
	CorrectAudioDuration(ctx context.Context, sceneID uint, clipID string, observed float64) error
}
