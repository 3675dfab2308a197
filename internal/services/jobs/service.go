package jobs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cutroom/timeline-api/internal/models"
)

// DefaultMaxRetries is the retry budget for jobs that don't override it
const DefaultMaxRetries = 3

// service implements Service
type service struct {
	repo Repository
}

// NewService creates a new job service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// EnqueueJob creates a new job in the queue
func (s *service) EnqueueJob(ctx context.Context, jobType models.JobType, payload models.JobPayload, opts ...JobOption) (*models.Job, error) {
	job := &models.Job{
		Type:       jobType,
		Status:     models.JobStatusPending,
		Payload:    payload,
		MaxRetries: DefaultMaxRetries,
	}

	for _, opt := range opts {
		opt(job)
	}

	if err := s.repo.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to enqueue %s job: %w", jobType, err)
	}

	log.Printf("[INFO] Enqueued %s job %d", jobType, job.ID)
	return job, nil
}

// EnqueueUniqueJob creates a job unless an equivalent non-terminal job
// already exists. Uniqueness is judged by the payload value under uniqueKey.
func (s *service) EnqueueUniqueJob(ctx context.Context, jobType models.JobType, payload models.JobPayload, uniqueKey string, opts ...JobOption) (*models.Job, error) {
	value, ok := payload[uniqueKey]
	if !ok {
		return nil, fmt.Errorf("payload missing unique key %q", uniqueKey)
	}

	existing, err := s.repo.GetJobByTypeAndPayload(ctx, jobType, uniqueKey, fmt.Sprintf("%v", value))
	if err != nil && !errors.Is(err, ErrJobNotFound) {
		return nil, err
	}
	if existing != nil && !existing.IsTerminal() {
		log.Printf("[DEBUG] Reusing existing %s job %d for %s=%v", jobType, existing.ID, uniqueKey, value)
		return existing, nil
	}

	return s.EnqueueJob(ctx, jobType, payload, opts...)
}

// GetJob retrieves a job by ID
func (s *service) GetJob(ctx context.Context, jobID uint) (*models.Job, error) {
	return s.repo.GetJob(ctx, jobID)
}

// ClaimNextJob claims the next available job for a worker
func (s *service) ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error) {
	return s.repo.ClaimNextJob(ctx, workerID, jobTypes)
}

// UpdateProgress updates the progress of a running job
func (s *service) UpdateProgress(ctx context.Context, jobID uint, progress int) error {
	return s.repo.UpdateJobProgress(ctx, jobID, progress)
}

// CompleteJob marks a job as completed
func (s *service) CompleteJob(ctx context.Context, jobID uint, result models.JobResult) error {
	if err := s.repo.CompleteJob(ctx, jobID, result); err != nil {
		return err
	}
	log.Printf("[INFO] Job %d completed", jobID)
	return nil
}

// FailJob marks a job as failed
func (s *service) FailJob(ctx context.Context, jobID uint, errorMessage string) error {
	return s.repo.FailJob(ctx, jobID, errorMessage)
}

// FailJobWithDetails marks a job as failed with structured error details
func (s *service) FailJobWithDetails(ctx context.Context, jobID uint, jobError *models.StructuredJobError) error {
	if jobError == nil {
		return s.repo.FailJob(ctx, jobID, "unknown error")
	}
	return s.repo.FailJobWithDetails(ctx, jobID, jobError.Message, jobError.Type, jobError)
}

// RetryFailedJob resets a failed job so workers can claim it again
func (s *service) RetryFailedJob(ctx context.Context, jobID uint) error {
	job, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	if job.Status != models.JobStatusFailed && job.Status != models.JobStatusPermanentlyFailed {
		return fmt.Errorf("job %d is not in a failed state (status: %s)", jobID, job.Status)
	}

	if err := s.repo.UpdateJobStatus(ctx, jobID, models.JobStatusPending); err != nil {
		return err
	}
	log.Printf("[INFO] Job %d reset for retry", jobID)
	return nil
}

// CleanupOldJobs removes terminal jobs older than the cutoff
func (s *service) CleanupOldJobs(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	removed, err := s.repo.DeleteOldJobs(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		log.Printf("[INFO] Cleaned up %d old jobs", removed)
	}
	return removed, nil
}
