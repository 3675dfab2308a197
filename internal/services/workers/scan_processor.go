package workers

import (
	"context"
	"fmt"
	"log"

	"github.com/cutroom/timeline-api/internal/models"
	"github.com/cutroom/timeline-api/internal/services/jobs"
)

// SceneLoader loads a scene with its audio document
type SceneLoader interface {
	GetScene(ctx context.Context, id uint) (*models.Scene, error)
}

// AudioScanProcessor processes audio_scan jobs: it sweeps every audio URL in
// a scene's document and reports the ones that are no longer reachable, so
// sessions can mark them stale before playback trips over them.
type AudioScanProcessor struct {
	jobService jobs.Service
	scenes     SceneLoader
	checker    RemoteChecker
	notifier   SessionNotifier
}

// NewAudioScanProcessor creates a new audio scan processor
func NewAudioScanProcessor(
	jobService jobs.Service,
	scenes SceneLoader,
	checker RemoteChecker,
	notifier SessionNotifier,
) *AudioScanProcessor {
	return &AudioScanProcessor{
		jobService: jobService,
		scenes:     scenes,
		checker:    checker,
		notifier:   notifier,
	}
}

// CanProcess returns true if this processor can handle the job type
func (p *AudioScanProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeAudioScan
}

// ProcessJob processes an audio scan job
func (p *AudioScanProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	if !p.CanProcess(job.Type) {
		return fmt.Errorf("unsupported job type: %s", job.Type)
	}

	sceneID, ok := job.GetPayloadUint("scene_id")
	if !ok {
		return models.NewSystemError("BAD_PAYLOAD", "scene_id missing from payload", "", nil)
	}

	scene, err := p.scenes.GetScene(ctx, sceneID)
	if err != nil {
		return models.NewNotFoundError("SCENE_NOT_FOUND", fmt.Sprintf("scene %d not found", sceneID), "", err)
	}

	urls := scene.Audio.URLs()
	log.Printf("[INFO] Scanning %d audio URLs for scene %d", len(urls), sceneID)

	if err := p.jobService.UpdateProgress(ctx, job.ID, 10); err != nil {
		log.Printf("[ERROR] Failed to update job progress: %v", err)
	}

	var failures []string
	for i, url := range urls {
		if _, err := p.checker.ProbeRemote(ctx, url); err != nil {
			log.Printf("[ERROR] Audio URL unreachable for scene %d: %s (%v)", sceneID, url, err)
			failures = append(failures, url)
			if p.notifier != nil {
				p.notifier.AudioUnavailable(sceneID, url)
			}
		}
		progress := 10 + (80*(i+1))/len(urls)
		if err := p.jobService.UpdateProgress(ctx, job.ID, progress); err != nil {
			log.Printf("[ERROR] Failed to update job progress: %v", err)
		}
	}

	// Unreachable URLs are findings, not a processing failure: the scan
	// completes and records what it saw
	result := models.JobResult{
		"scene_id": sceneID,
		"scanned":  len(urls),
		"failed":   len(failures),
	}
	if len(failures) > 0 {
		result["failures"] = failures
	}
	if err := p.jobService.CompleteJob(ctx, job.ID, result); err != nil {
		return fmt.Errorf("completing job: %w", err)
	}

	log.Printf("[INFO] Audio scan for scene %d complete: %d/%d reachable", sceneID, len(urls)-len(failures), len(urls))
	return nil
}
