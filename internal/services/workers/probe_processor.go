package workers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/cutroom/timeline-api/internal/models"
	"github.com/cutroom/timeline-api/internal/services/jobs"
	"github.com/cutroom/timeline-api/internal/services/scenes"
	"github.com/cutroom/timeline-api/pkg/download"
)

// DurationProber resolves the real duration of a media source in seconds
type DurationProber interface {
	ProbeDuration(ctx context.Context, input string) (float64, error)
}

// RemoteChecker verifies that a media URL is reachable
type RemoteChecker interface {
	ProbeRemote(ctx context.Context, url string) (*download.RemoteInfo, error)
}

// DurationCorrector persists observed durations onto scene audio clips
type DurationCorrector interface {
	CorrectAudioDuration(ctx context.Context, sceneID uint, clipID string, observed float64) error
}

// MediaProbeProcessor processes media_probe jobs: it checks that the audio
// URL is reachable, measures its real duration with ffprobe, and writes the
// correction back into the scene's audio document.
type MediaProbeProcessor struct {
	jobService jobs.Service
	corrector  DurationCorrector
	checker    RemoteChecker
	prober     DurationProber
	notifier   SessionNotifier
}

// NewMediaProbeProcessor creates a new media probe processor
func NewMediaProbeProcessor(
	jobService jobs.Service,
	corrector DurationCorrector,
	checker RemoteChecker,
	prober DurationProber,
	notifier SessionNotifier,
) *MediaProbeProcessor {
	return &MediaProbeProcessor{
		jobService: jobService,
		corrector:  corrector,
		checker:    checker,
		prober:     prober,
		notifier:   notifier,
	}
}

// CanProcess returns true if this processor can handle the job type
func (p *MediaProbeProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeMediaProbe
}

// ProcessJob processes a media probe job
func (p *MediaProbeProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	if !p.CanProcess(job.Type) {
		return fmt.Errorf("unsupported job type: %s", job.Type)
	}

	sceneID, ok := job.GetPayloadUint("scene_id")
	if !ok {
		return models.NewSystemError("BAD_PAYLOAD", "scene_id missing from payload", "", nil)
	}
	clipID, ok := job.GetPayloadString("clip_id")
	if !ok || clipID == "" {
		return models.NewSystemError("BAD_PAYLOAD", "clip_id missing from payload", "", nil)
	}
	url, ok := job.GetPayloadString("url")
	if !ok || url == "" {
		return models.NewSystemError("BAD_PAYLOAD", "url missing from payload", "", nil)
	}

	log.Printf("[INFO] Probing media for scene %d clip %s", sceneID, clipID)

	if err := p.jobService.UpdateProgress(ctx, job.ID, 10); err != nil {
		log.Printf("[ERROR] Failed to update job progress: %v", err)
	}

	// Reachability first: a dead URL should fail fast and tell the session,
	// not wait out a full download attempt
	if _, err := p.checker.ProbeRemote(ctx, url); err != nil {
		if p.notifier != nil {
			p.notifier.AudioUnavailable(sceneID, url)
		}
		if status, ok := download.StatusCode(err); ok {
			detail := fmt.Sprintf("scene %d clip %s: %s", sceneID, clipID, url)
			if status == http.StatusNotFound || status == http.StatusGone {
				return models.NewNotFoundError(fmt.Sprintf("HTTP_%d", status), err.Error(), detail, err)
			}
			return models.NewDownloadError(fmt.Sprintf("HTTP_%d", status), err.Error(), detail, err)
		}
		return models.NewDownloadError("UNREACHABLE", err.Error(), url, err)
	}

	if err := p.jobService.UpdateProgress(ctx, job.ID, 40); err != nil {
		log.Printf("[ERROR] Failed to update job progress: %v", err)
	}

	duration, err := p.prober.ProbeDuration(ctx, url)
	if err != nil {
		return models.NewProcessingError("PROBE_FAILED", "could not determine media duration", err.Error(), err)
	}

	if err := p.jobService.UpdateProgress(ctx, job.ID, 80); err != nil {
		log.Printf("[ERROR] Failed to update job progress: %v", err)
	}

	err = p.corrector.CorrectAudioDuration(ctx, sceneID, clipID, duration)
	switch {
	case err == nil:
		if p.notifier != nil {
			p.notifier.SceneUpdated(sceneID)
		}
	case scenes.IsNotFound(err):
		// The clip was removed or its URL regenerated while the probe ran;
		// the observation is simply stale
		log.Printf("[INFO] Discarding probe result for scene %d clip %s: %v", sceneID, clipID, err)
	default:
		return models.NewSystemError("PERSIST_FAILED", "could not store observed duration", err.Error(), err)
	}

	result := models.JobResult{
		"scene_id": sceneID,
		"clip_id":  clipID,
		"url":      url,
		"duration": duration,
	}
	if err := p.jobService.CompleteJob(ctx, job.ID, result); err != nil {
		return fmt.Errorf("completing job: %w", err)
	}

	log.Printf("[INFO] Probed %s: %.2fs", url, duration)
	return nil
}
