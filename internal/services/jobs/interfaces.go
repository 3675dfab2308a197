package jobs

import (
	"context"
	"time"

	"github.com/cutroom/timeline-api/internal/models"
)

// Service defines the interface for job queue operations
type Service interface {
	// EnqueueJob creates a new job in the queue
	EnqueueJob(ctx context.Context, jobType models.JobType, payload models.JobPayload, opts ...JobOption) (*models.Job, error)

	// EnqueueUniqueJob creates a job unless a non-terminal job with the same
	// type and payload key already exists, in which case that job is returned
	EnqueueUniqueJob(ctx context.Context, jobType models.JobType, payload models.JobPayload, uniqueKey string, opts ...JobOption) (*models.Job, error)

	// GetJob retrieves a job by ID
	GetJob(ctx context.Context, jobID uint) (*models.Job, error)

	// ClaimNextJob atomically claims the next available job for a worker,
	// optionally restricted to the given job types
	ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error)

	// UpdateProgress updates the progress of a running job
	UpdateProgress(ctx context.Context, jobID uint, progress int) error

	// CompleteJob marks a job as completed, optionally recording its output
	CompleteJob(ctx context.Context, jobID uint, result models.JobResult) error

	// FailJob marks a job as failed, scheduling a retry when attempts remain
	FailJob(ctx context.Context, jobID uint, errorMessage string) error

	// FailJobWithDetails marks a job as failed with structured error details
	FailJobWithDetails(ctx context.Context, jobID uint, jobError *models.StructuredJobError) error

	// RetryFailedJob resets a failed job so workers can claim it again
	RetryFailedJob(ctx context.Context, jobID uint) error

	// CleanupOldJobs removes terminal jobs older than the cutoff
	CleanupOldJobs(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Repository defines the interface for job persistence
type Repository interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, jobID uint) (*models.Job, error)
	GetJobByTypeAndPayload(ctx context.Context, jobType models.JobType, payloadKey, payloadValue string) (*models.Job, error)
	GetPendingJobs(ctx context.Context, limit int) ([]*models.Job, error)
	GetJobsByStatus(ctx context.Context, status models.JobStatus, limit int) ([]*models.Job, error)
	ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error)
	UpdateJobProgress(ctx context.Context, jobID uint, progress int) error
	UpdateJobStatus(ctx context.Context, jobID uint, status models.JobStatus) error
	CompleteJob(ctx context.Context, jobID uint, result models.JobResult) error
	FailJob(ctx context.Context, jobID uint, errorMessage string) error
	FailJobWithDetails(ctx context.Context, jobID uint, errorMessage string, errorType models.JobErrorType, errorDetails *models.StructuredJobError) error
	ReleaseJob(ctx context.Context, jobID uint) error
	DeleteOldJobs(ctx context.Context, olderThan time.Time) (int64, error)
}

// JobOption configures a job at enqueue time
type JobOption func(*models.Job)

// WithPriority sets the job priority (higher runs first)
func WithPriority(priority int) JobOption {
	return func(j *models.Job) {
		j.Priority = priority
	}
}

// WithMaxRetries overrides the default retry budget
func WithMaxRetries(maxRetries int) JobOption {
	return func(j *models.Job) {
		j.MaxRetries = maxRetries
	}
}

// WithCreatedBy records which component enqueued the job
func WithCreatedBy(createdBy string) JobOption {
	return func(j *models.Job) {
		j.CreatedBy = createdBy
	}
}
