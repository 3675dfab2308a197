package scenes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutroom/timeline-api/internal/database"
	"github.com/cutroom/timeline-api/internal/models"
)

func setupSceneRepository(t *testing.T) (*Repository, *database.DB) {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.DB.AutoMigrate(&models.Scene{}, &models.Segment{}))

	t.Cleanup(func() {
		_ = db.Close()
	})

	return NewRepository(db.DB), db
}

func TestSceneRepository_CreateAndGet(t *testing.T) {
	repo, _ := setupSceneRepository(t)
	ctx := context.Background()

	scene := &models.Scene{
		Title: "Opening",
		Audio: models.SceneAudioDoc{
			Narration: models.NarrationDoc{URL: "https://cdn.example.com/vo.mp3", Duration: 8},
		},
		Segments: []models.Segment{
			{Position: 1, StartTime: 4, EndTime: 8},
			{Position: 0, StartTime: 0, EndTime: 4},
		},
	}
	require.NoError(t, repo.CreateScene(ctx, scene))
	assert.NotEmpty(t, scene.UUID)

	got, err := repo.GetSceneByID(ctx, scene.ID)
	require.NoError(t, err)
	assert.Equal(t, "Opening", got.Title)
	assert.Equal(t, models.DefaultLanguage, got.Language)
	assert.Equal(t, "https://cdn.example.com/vo.mp3", got.Audio.Narration.URL)

	// Segments come back ordered by position regardless of insert order
	require.Len(t, got.Segments, 2)
	assert.Equal(t, 0, got.Segments[0].Position)
	assert.Equal(t, 1, got.Segments[1].Position)

	byUUID, err := repo.GetSceneByUUID(ctx, scene.UUID)
	require.NoError(t, err)
	assert.Equal(t, scene.ID, byUUID.ID)
}

func TestSceneRepository_NotFound(t *testing.T) {
	repo, _ := setupSceneRepository(t)
	ctx := context.Background()

	_, err := repo.GetSceneByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrSceneNotFound)
	assert.True(t, IsNotFound(err))

	_, err = repo.GetSceneByUUID(ctx, "missing")
	assert.ErrorIs(t, err, ErrSceneNotFound)

	_, err = repo.GetSegmentByUUID(ctx, 1, "missing")
	assert.ErrorIs(t, err, ErrSegmentNotFound)
}

func TestSceneRepository_ListScenes(t *testing.T) {
	repo, _ := setupSceneRepository(t)
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three"} {
		require.NoError(t, repo.CreateScene(ctx, &models.Scene{Title: title}))
	}

	scenes, total, err := repo.ListScenes(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, scenes, 2)

	scenes, total, err = repo.ListScenes(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, scenes, 1)
}

func TestSceneRepository_InsertSegmentWithShift(t *testing.T) {
	repo, _ := setupSceneRepository(t)
	ctx := context.Background()

	scene := &models.Scene{
		Title: "Shifting",
		Segments: []models.Segment{
			{Position: 0, StartTime: 0, EndTime: 4},
			{Position: 1, StartTime: 4, EndTime: 8},
		},
	}
	require.NoError(t, repo.CreateScene(ctx, scene))

	loaded, err := repo.GetSceneByID(ctx, scene.ID)
	require.NoError(t, err)

	second := loaded.Segments[1]
	second.Position = 2
	second.StartTime = 8
	second.EndTime = 12

	inserted := &models.Segment{SceneID: scene.ID, Position: 1, StartTime: 4, EndTime: 8}
	require.NoError(t, repo.InsertSegment(ctx, inserted, []*models.Segment{&second}))

	got, err := repo.GetSceneByID(ctx, scene.ID)
	require.NoError(t, err)
	require.Len(t, got.Segments, 3)
	assert.Equal(t, inserted.UUID, got.Segments[1].UUID)
	assert.Equal(t, 8.0, got.Segments[2].StartTime)
	assert.Equal(t, 12.0, got.Segments[2].EndTime)
}

func TestSceneRepository_DeleteSegmentWithShift(t *testing.T) {
	repo, _ := setupSceneRepository(t)
	ctx := context.Background()

	scene := &models.Scene{
		Title: "Gap close",
		Segments: []models.Segment{
			{Position: 0, StartTime: 0, EndTime: 2},
			{Position: 1, StartTime: 2, EndTime: 5},
			{Position: 2, StartTime: 5, EndTime: 9},
		},
	}
	require.NoError(t, repo.CreateScene(ctx, scene))

	loaded, err := repo.GetSceneByID(ctx, scene.ID)
	require.NoError(t, err)

	last := loaded.Segments[2]
	last.Position = 1
	last.StartTime = 2
	last.EndTime = 6

	require.NoError(t, repo.DeleteSegment(ctx, loaded.Segments[1].ID, []*models.Segment{&last}))

	got, err := repo.GetSceneByID(ctx, scene.ID)
	require.NoError(t, err)
	require.Len(t, got.Segments, 2)
	assert.Equal(t, 2.0, got.Segments[1].StartTime)
	assert.Equal(t, 6.0, got.Segments[1].EndTime)

	assert.ErrorIs(t, repo.DeleteSegment(ctx, 9999, nil), ErrSegmentNotFound)
}

func TestSceneRepository_UpdateSceneAudio(t *testing.T) {
	repo, _ := setupSceneRepository(t)
	ctx := context.Background()

	scene := &models.Scene{Title: "Audio doc"}
	require.NoError(t, repo.CreateScene(ctx, scene))

	doc := models.SceneAudioDoc{
		Music: models.AudioSource{URL: "https://cdn.example.com/music.mp3", Start: 0, Duration: 30},
		Dialogue: []models.DialogueLine{
			{ID: "d1", Character: "Mara", URL: "https://cdn.example.com/d1.mp3"},
		},
	}
	require.NoError(t, repo.UpdateSceneAudio(ctx, scene.ID, doc))

	got, err := repo.GetSceneByID(ctx, scene.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/music.mp3", got.Audio.Music.URL)
	require.Len(t, got.Audio.Dialogue, 1)
	assert.Equal(t, "Mara", got.Audio.Dialogue[0].Character)

	assert.ErrorIs(t, repo.UpdateSceneAudio(ctx, 9999, doc), ErrSceneNotFound)
}

func TestSceneRepository_UpdateSceneLanguage(t *testing.T) {
	repo, _ := setupSceneRepository(t)
	ctx := context.Background()

	scene := &models.Scene{Title: "Language"}
	require.NoError(t, repo.CreateScene(ctx, scene))

	require.NoError(t, repo.UpdateSceneLanguage(ctx, scene.ID, "es"))
	got, err := repo.GetSceneByID(ctx, scene.ID)
	require.NoError(t, err)
	assert.Equal(t, "es", got.Language)

	assert.ErrorIs(t, repo.UpdateSceneLanguage(ctx, 9999, "es"), ErrSceneNotFound)
}

func TestSceneRepository_DeleteScene(t *testing.T) {
	repo, db := setupSceneRepository(t)
	ctx := context.Background()

	scene := &models.Scene{
		Title: "Doomed",
		Segments: []models.Segment{
			{Position: 0, StartTime: 0, EndTime: 4},
		},
	}
	require.NoError(t, repo.CreateScene(ctx, scene))

	require.NoError(t, repo.DeleteScene(ctx, scene.ID))

	_, err := repo.GetSceneByID(ctx, scene.ID)
	assert.ErrorIs(t, err, ErrSceneNotFound)

	var count int64
	require.NoError(t, db.DB.Model(&models.Segment{}).Where("scene_id = ?", scene.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	assert.ErrorIs(t, repo.DeleteScene(ctx, 9999), ErrSceneNotFound)
}
