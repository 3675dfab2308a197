package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cutroom/timeline-api/api"
	"github.com/cutroom/timeline-api/api/types"
	"github.com/cutroom/timeline-api/internal/database"
	"github.com/cutroom/timeline-api/internal/services/cleanup"
	"github.com/cutroom/timeline-api/internal/services/jobs"
	"github.com/cutroom/timeline-api/internal/services/preferences"
	"github.com/cutroom/timeline-api/internal/services/scenes"
	"github.com/cutroom/timeline-api/internal/services/sessions"
	"github.com/cutroom/timeline-api/internal/services/workers"
	"github.com/cutroom/timeline-api/pkg/config"
	"github.com/cutroom/timeline-api/pkg/download"
	"github.com/cutroom/timeline-api/pkg/ffmpeg"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Scene Timeline API server",
	Long: `Start the Scene Timeline API server with the configured settings.

The server exposes scene and segment management, live playback sessions
with drag editing, track preferences, and background media probing.

Example:
  timeline-api serve
  timeline-api serve --port 9090
  timeline-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	// Database, with schema migration
	db, err := database.InitializeWithMigrations()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Domain services
	sceneService := scenes.NewService(
		scenes.NewRepository(db.DB),
		scenes.WithDefaultSegmentDuration(cfg.Timeline.DefaultSegmentDuration),
		scenes.WithMinSceneDuration(cfg.Timeline.MinSceneDuration),
	)
	preferenceService := preferences.NewService(preferences.NewRepository(db.DB))
	jobService := jobs.NewService(jobs.NewRepository(db.DB))

	// Media plumbing shared by sessions and job processors
	downloader := download.NewDownloader(download.DownloadOptions{
		TempDir:   cfg.Storage.TempDir,
		Timeout:   cfg.Processing.DownloadTimeout,
		UserAgent: cfg.Processing.UserAgent,
	})
	prober := ffmpeg.New(cfg.Processing.FFprobePath, cfg.Processing.FFprobeTimeout)
	if err := prober.ValidateBinaries(); err != nil {
		log.Printf("[WARN] ffprobe not available, duration probing disabled: %v", err)
	}

	// Playback session manager
	sessionManager := sessions.NewManager(sceneService, preferenceService, jobService, downloader, sessions.Config{
		FrameInterval:    cfg.Timeline.FrameInterval,
		DragDebounce:     cfg.Timeline.DragDebounce,
		DragGrace:        cfg.Timeline.DragGrace,
		DriftThreshold:   cfg.Timeline.DriftThreshold,
		IdleTimeout:      cfg.Sessions.IdleTimeout,
		SweepInterval:    cfg.Sessions.SweepInterval,
		LabelColumnWidth: cfg.Timeline.LabelColumnWidth,
		DefaultLanguage:  cfg.Timeline.DefaultLanguage,
	})

	// Background job workers
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	pool := workers.NewWorkerPool(jobService, cfg.Processing.Workers, cfg.Processing.PollInterval)
	pool.RegisterProcessor(workers.NewMediaProbeProcessor(jobService, sceneService, downloader, prober, sessionManager))
	pool.RegisterProcessor(workers.NewAudioScanProcessor(jobService, sceneService, downloader, sessionManager))
	if err := pool.Start(workerCtx); err != nil {
		return fmt.Errorf("failed to start worker pool: %w", err)
	}

	// Scratch file and job retention sweeper
	cleaner := cleanup.NewService(cfg.Storage.TempDir, jobService,
		cfg.Storage.MaxTempAge, cfg.Processing.JobRetention, cfg.Storage.CleanupInterval)
	cleaner.Start(workerCtx)

	// HTTP server
	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDatabase(db)
	server.SetDependencies(&types.Dependencies{
		DB:                db,
		SceneService:      sceneService,
		SessionManager:    sessionManager,
		PreferenceService: preferenceService,
		JobService:        jobService,
		WorkerPool:        pool,
	})
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	fmt.Printf("Starting Scene Timeline API server on %s:%d\n", serverHost, serverPort)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s:%d\n", serverHost, serverPort)

	// Wait for interrupt signal or server error
	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	// Create a context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown of the HTTP server first so no new work
	// arrives while the rest of the stack winds down
	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
	}

	// Sessions flush pending drag commits on close, so they go before the
	// database
	sessionManager.CloseAll()
	pool.Stop()
	cleaner.Stop()

	if err := db.Close(); err != nil {
		log.Printf("[WARN] Failed to close database: %v", err)
	}

	fmt.Println("Server gracefully stopped")
	return nil
}
