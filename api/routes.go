package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cutroom/timeline-api/api/health"
	"github.com/cutroom/timeline-api/api/jobs"
	"github.com/cutroom/timeline-api/api/preferences"
	"github.com/cutroom/timeline-api/api/scenes"
	"github.com/cutroom/timeline-api/api/sessions"
	"github.com/cutroom/timeline-api/api/types"
	"github.com/cutroom/timeline-api/api/version"
	_ "github.com/cutroom/timeline-api/docs/swagger"
	jobsService "github.com/cutroom/timeline-api/internal/services/jobs"
	preferencesService "github.com/cutroom/timeline-api/internal/services/preferences"
	scenesService "github.com/cutroom/timeline-api/internal/services/scenes"
	sessionsService "github.com/cutroom/timeline-api/internal/services/sessions"
	"github.com/cutroom/timeline-api/pkg/config"
	"github.com/cutroom/timeline-api/pkg/download"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Initialize services if not already set
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Initialize services if database is available
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.SceneService == nil {
			initializeSceneService(deps, cfg)
		}

		if deps.PreferenceService == nil {
			initializePreferenceService(deps)
		}

		if deps.JobService == nil {
			initializeJobService(deps)
		}

		if deps.SessionManager == nil {
			initializeSessionManager(deps, cfg)
		}

		// Register scene routes with general rate limiting (10 req/s, burst of 20)
		sceneGroup := v1.Group("/scenes")
		sceneGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		scenes.RegisterRoutes(sceneGroup, deps)

		// Session attach lives under /scenes but carries the playback rate
		// limit, so opening a player is never throttled by scene edits
		attachGroup := v1.Group("/scenes")
		attachGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 20, 30))
		sessions.RegisterSceneRoutes(attachGroup, deps)

		// Register session routes with moderate rate limiting (20 req/s, burst of 30)
		// Higher limits for playback control to allow seeking/scrubbing
		sessionGroup := v1.Group("/sessions")
		sessionGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 20, 30))
		sessions.RegisterRoutes(sessionGroup, deps)

		// Register preference routes with general rate limiting (10 req/s, burst of 20)
		preferenceGroup := v1.Group("/preferences")
		preferenceGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		preferences.RegisterRoutes(preferenceGroup, deps)

		// Register job routes with general rate limiting (10 req/s, burst of 20)
		jobGroup := v1.Group("/jobs")
		jobGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		jobs.RegisterRoutes(jobGroup, deps)
	}

	return nil
}

// initializeSceneService creates and configures the scene service
func initializeSceneService(deps *types.Dependencies, cfg *config.Config) {
	sceneRepo := scenesService.NewRepository(deps.DB.DB)

	// Get configuration
	segmentDuration := cfg.Timeline.DefaultSegmentDuration
	if segmentDuration <= 0 {
		segmentDuration = 4.0
	}
	minDuration := cfg.Timeline.MinSceneDuration
	if minDuration <= 0 {
		minDuration = 10.0
	}

	// Create service
	deps.SceneService = scenesService.NewService(
		sceneRepo,
		scenesService.WithDefaultSegmentDuration(segmentDuration),
		scenesService.WithMinSceneDuration(minDuration),
	)
}

// initializePreferenceService creates and configures the preference service
func initializePreferenceService(deps *types.Dependencies) {
	preferenceRepo := preferencesService.NewRepository(deps.DB.DB)
	deps.PreferenceService = preferencesService.NewService(preferenceRepo)
}

// initializeJobService creates and configures the job service
func initializeJobService(deps *types.Dependencies) {
	jobRepo := jobsService.NewRepository(deps.DB.DB)
	deps.JobService = jobsService.NewService(jobRepo)
}

// initializeSessionManager creates and configures the playback session manager
func initializeSessionManager(deps *types.Dependencies, cfg *config.Config) {
	checker := download.NewDownloader(download.DownloadOptions{
		Timeout:   cfg.Processing.DownloadTimeout,
		UserAgent: cfg.Processing.UserAgent,
		TempDir:   cfg.Storage.TempDir,
	})

	deps.SessionManager = sessionsService.NewManager(
		deps.SceneService,
		deps.PreferenceService,
		deps.JobService,
		checker,
		sessionsService.Config{
			FrameInterval:    cfg.Timeline.FrameInterval,
			DragDebounce:     cfg.Timeline.DragDebounce,
			DragGrace:        cfg.Timeline.DragGrace,
			DriftThreshold:   cfg.Timeline.DriftThreshold,
			IdleTimeout:      cfg.Sessions.IdleTimeout,
			SweepInterval:    cfg.Sessions.SweepInterval,
			LabelColumnWidth: cfg.Timeline.LabelColumnWidth,
			DefaultLanguage:  cfg.Timeline.DefaultLanguage,
		},
	)
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
