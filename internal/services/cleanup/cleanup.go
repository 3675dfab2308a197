package cleanup

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/cutroom/timeline-api/internal/services/jobs"
	"github.com/cutroom/timeline-api/pkg/download"
)

// Service periodically removes stale scratch files and finished jobs.
type Service struct {
	tempDir         string
	jobService      jobs.Service
	maxFileAge      time.Duration
	jobRetention    time.Duration
	cleanupInterval time.Duration
	cancel          context.CancelFunc
}

// NewService creates a new cleanup service. jobService may be nil, in which
// case only temp files are swept.
func NewService(tempDir string, jobService jobs.Service, maxFileAge, jobRetention, cleanupInterval time.Duration) *Service {
	return &Service{
		tempDir:         tempDir,
		jobService:      jobService,
		maxFileAge:      maxFileAge,
		jobRetention:    jobRetention,
		cleanupInterval: cleanupInterval,
	}
}

// Start begins the cleanup service
func (s *Service) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	// Run initial cleanup
	s.cleanup(ctx)

	// Run periodic cleanup
	go func() {
		ticker := time.NewTicker(s.cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.cleanup(ctx)
			case <-ctx.Done():
				log.Println("[INFO] Cleanup service stopped")
				return
			}
		}
	}()

	log.Printf("[INFO] Cleanup service started (interval: %v, file max age: %v, job retention: %v)",
		s.cleanupInterval, s.maxFileAge, s.jobRetention)
}

// Stop stops the cleanup service
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// cleanup sweeps downloaded media leftovers and terminal jobs
func (s *Service) cleanup(ctx context.Context) {
	if _, err := os.Stat(s.tempDir); err == nil {
		if err := download.CleanupOldTempFiles(s.tempDir, s.maxFileAge); err != nil {
			log.Printf("[ERROR] Temp file cleanup failed: %v", err)
		}
	}

	if s.jobService != nil && s.jobRetention > 0 {
		removed, err := s.jobService.CleanupOldJobs(ctx, s.jobRetention)
		if err != nil {
			log.Printf("[ERROR] Job cleanup failed: %v", err)
		} else if removed > 0 {
			log.Printf("[INFO] Removed %d finished jobs older than %v", removed, s.jobRetention)
		}
	}
}
