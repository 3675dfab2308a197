package database

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cutroom/timeline-api/internal/models"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name        string
		dbPath      string
		wantErr     bool
		checkResult func(*testing.T, *DB)
	}{
		{
			name:    "successful connection with in-memory database",
			dbPath:  ":memory:",
			wantErr: false,
			checkResult: func(t *testing.T, conn *DB) {
				assert.NotNil(t, conn)
				assert.NotNil(t, conn.DB)
			},
		},
		{
			name:    "successful connection with file database",
			dbPath:  filepath.Join(t.TempDir(), "test.db"),
			wantErr: false,
			checkResult: func(t *testing.T, conn *DB) {
				assert.NotNil(t, conn)
				assert.NotNil(t, conn.DB)
			},
		},
		{
			name:    "empty database path creates in-memory database",
			dbPath:  "",
			wantErr: false,
			checkResult: func(t *testing.T, conn *DB) {
				assert.NotNil(t, conn)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)

			if tt.checkResult != nil {
				tt.checkResult(t, conn)
			}

			// Cleanup
			if conn != nil {
				conn.Close()
			}
		})
	}
}

func TestDB_Close(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NotNil(t, conn)

	err = conn.Close()
	assert.NoError(t, err)

	// Verify connection is closed by checking if health check fails
	err = conn.HealthCheck()
	assert.Error(t, err, "HealthCheck should fail after database is closed")
}

func TestDB_HealthCheck(t *testing.T) {
	tests := []struct {
		name      string
		setupConn func() (*DB, func())
		wantErr   bool
	}{
		{
			name: "healthy connection",
			setupConn: func() (*DB, func()) {
				conn, _ := Initialize(":memory:", false)
				return conn, func() {
					if conn != nil {
						conn.Close()
					}
				}
			},
			wantErr: false,
		},
		{
			name: "closed connection",
			setupConn: func() (*DB, func()) {
				conn, _ := Initialize(":memory:", false)
				conn.Close()
				return conn, func() {}
			},
			wantErr: true,
		},
		{
			name: "nil connection",
			setupConn: func() (*DB, func()) {
				return nil, func() {}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, cleanup := tt.setupConn()
			defer cleanup()

			err := conn.HealthCheck()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDB_Migrate(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NotNil(t, conn)
	defer conn.Close()

	err = conn.Migrate()
	require.NoError(t, err)

	for _, table := range []string{"scenes", "segments", "track_preferences", "jobs"} {
		var count int64
		err := conn.DB.Raw(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&count).Error
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count, "table %s should exist", table)
	}
}

func TestDB_SceneRoundTrip(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.Migrate())

	scene := models.Scene{
		Title: "Rooftop chase",
		Audio: models.SceneAudioDoc{
			Narration: models.NarrationDoc{
				URL:      "https://cdn.example.com/audio/vo.mp3",
				Duration: 10,
			},
			Music: models.AudioSource{URL: "https://cdn.example.com/audio/theme.mp3"},
		},
		Segments: []models.Segment{
			{Position: 1, StartTime: 0, EndTime: 4, VideoURL: "https://cdn.example.com/video/shot-1.mp4"},
			{Position: 2, StartTime: 4, EndTime: 8},
		},
	}

	require.NoError(t, conn.DB.Create(&scene).Error)
	assert.NotZero(t, scene.ID)
	assert.NotEmpty(t, scene.UUID, "BeforeCreate hook should assign a UUID")
	assert.Equal(t, models.DefaultLanguage, scene.Language, "BeforeCreate hook should default the language")

	var loaded models.Scene
	require.NoError(t, conn.DB.Preload("Segments").First(&loaded, scene.ID).Error)

	assert.Equal(t, "Rooftop chase", loaded.Title)
	assert.Equal(t, "https://cdn.example.com/audio/vo.mp3", loaded.Audio.Narration.URL)
	assert.Equal(t, "https://cdn.example.com/audio/theme.mp3", loaded.Audio.Music.URL)
	require.Len(t, loaded.Segments, 2)
	assert.Equal(t, scene.ID, loaded.Segments[0].SceneID)
	assert.NotEmpty(t, loaded.Segments[0].UUID)
	assert.True(t, loaded.Segments[0].HasMedia())
	assert.False(t, loaded.Segments[1].HasMedia())

	// Update the JSON column and verify persistence
	loaded.Audio.Music.Duration = 32.5
	require.NoError(t, conn.DB.Save(&loaded).Error)

	var again models.Scene
	require.NoError(t, conn.DB.First(&again, scene.ID).Error)
	assert.Equal(t, 32.5, again.Audio.Music.Duration)

	// Delete
	require.NoError(t, conn.DB.Delete(&models.Scene{}, scene.ID).Error)
	var count int64
	conn.DB.Model(&models.Scene{}).Where("id = ?", scene.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDB_Transaction(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NotNil(t, conn)
	defer conn.Close()

	require.NoError(t, conn.Migrate())

	t.Run("successful transaction", func(t *testing.T) {
		err := conn.DB.Transaction(func(tx *gorm.DB) error {
			for i := 0; i < 3; i++ {
				scene := models.Scene{Title: "batch"}
				if err := tx.Create(&scene).Error; err != nil {
					return err
				}
			}
			return nil
		})

		assert.NoError(t, err)

		var count int64
		conn.DB.Model(&models.Scene{}).Where("title = ?", "batch").Count(&count)
		assert.Equal(t, int64(3), count)
	})

	t.Run("failed transaction rollback", func(t *testing.T) {
		var countBefore int64
		conn.DB.Model(&models.Scene{}).Count(&countBefore)

		err := conn.DB.Transaction(func(tx *gorm.DB) error {
			scene := models.Scene{Title: "rollback-test"}
			if err := tx.Create(&scene).Error; err != nil {
				return err
			}

			// Force an error to trigger rollback
			return gorm.ErrInvalidTransaction
		})

		assert.Error(t, err)

		var countAfter int64
		conn.DB.Model(&models.Scene{}).Count(&countAfter)
		assert.Equal(t, countBefore, countAfter)
	})
}

func TestInitializeWithMigrations(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func()
		wantErr   bool
		errMsg    string
	}{
		{
			name: "successful initialization with valid config",
			setupFunc: func() {
				viper.Reset()
				viper.Set("database.path", ":memory:")
			},
			wantErr: false,
		},
		{
			name: "error when database path not configured",
			setupFunc: func() {
				viper.Reset()
			},
			wantErr: true,
			errMsg:  "database path is not configured",
		},
		{
			name: "successful initialization with file database",
			setupFunc: func() {
				viper.Reset()
				viper.Set("database.path", filepath.Join(t.TempDir(), "test.db"))
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupFunc()
			defer viper.Reset()

			db, err := InitializeWithMigrations()

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				assert.Nil(t, db)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, db)

			var count int64
			err = db.DB.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='scenes'").Scan(&count).Error
			assert.NoError(t, err)
			assert.Greater(t, count, int64(0), "scenes table should exist")

			db.Close()
		})
	}
}
