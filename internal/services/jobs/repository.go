package jobs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cutroom/timeline-api/internal/models"
)

// Sentinel errors
var (
	ErrJobNotFound      = errors.New("job not found")
	ErrNoJobsAvailable  = errors.New("no jobs available")
	ErrJobAlreadyExists = errors.New("job already exists")
)

// jobRepository implements Repository using GORM
type jobRepository struct {
	db *gorm.DB
}

// NewRepository creates a new job repository
func NewRepository(db *gorm.DB) Repository {
	return &jobRepository{db: db}
}

// CreateJob inserts a new job
func (r *jobRepository) CreateJob(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// GetJob retrieves a job by ID
func (r *jobRepository) GetJob(ctx context.Context, jobID uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// GetJobByTypeAndPayload finds the most recent job of a type whose payload
// contains the given key/value pair. Used for enqueue deduplication.
func (r *jobRepository) GetJobByTypeAndPayload(ctx context.Context, jobType models.JobType, payloadKey, payloadValue string) (*models.Job, error) {
	var job models.Job
	// CAST so numeric payload values compare equal to the string form
	err := r.db.WithContext(ctx).
		Where("type = ?", jobType).
		Where("CAST(json_extract(payload, ?) AS TEXT) = ?", "$."+payloadKey, payloadValue).
		Order("created_at DESC").
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to query job by payload: %w", err)
	}
	return &job, nil
}

// GetPendingJobs returns pending jobs ordered by priority then age
func (r *jobRepository) GetPendingJobs(ctx context.Context, limit int) ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.db.WithContext(ctx).
		Where("status = ?", models.JobStatusPending).
		Order("priority DESC, created_at ASC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pending jobs: %w", err)
	}
	return jobs, nil
}

// GetJobsByStatus returns jobs with the given status, newest first
func (r *jobRepository) GetJobsByStatus(ctx context.Context, status models.JobStatus, limit int) ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs by status: %w", err)
	}
	return jobs, nil
}

// ClaimNextJob atomically claims the highest priority pending job for a
// worker. The row is locked inside a transaction so two workers cannot
// claim the same job.
func (r *jobRepository) ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error) {
	var claimed *models.Job

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job models.Job
		query := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("status = ?", models.JobStatusPending)
		if len(jobTypes) > 0 {
			query = query.Where("type IN ?", jobTypes)
		}

		err := query.Order("priority DESC, created_at ASC").First(&job).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoJobsAvailable
			}
			return fmt.Errorf("failed to find claimable job: %w", err)
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":     models.JobStatusProcessing,
			"worker_id":  workerID,
			"started_at": &now,
			"progress":   0,
		}
		if err := tx.Model(&job).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to claim job: %w", err)
		}

		job.Status = models.JobStatusProcessing
		job.WorkerID = workerID
		job.StartedAt = &now
		claimed = &job
		return nil
	})

	if err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] Worker %s claimed job %d (%s)", workerID, claimed.ID, claimed.Type)
	return claimed, nil
}

// UpdateJobProgress updates the progress of a job (0-100)
func (r *jobRepository) UpdateJobProgress(ctx context.Context, jobID uint, progress int) error {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	result := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", jobID).
		Update("progress", progress)
	if result.Error != nil {
		return fmt.Errorf("failed to update job progress: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// UpdateJobStatus updates the status of a job
func (r *jobRepository) UpdateJobStatus(ctx context.Context, jobID uint, status models.JobStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", jobID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update job status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// CompleteJob marks a job as completed
func (r *jobRepository) CompleteJob(ctx context.Context, jobID uint, jobResult models.JobResult) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":       models.JobStatusCompleted,
		"completed_at": &now,
		"progress":     100,
	}
	if jobResult != nil {
		updates["result"] = jobResult
	}

	result := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", jobID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to complete job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// FailJob marks a job as failed. When the retry budget is exhausted the job
// becomes permanently failed.
func (r *jobRepository) FailJob(ctx context.Context, jobID uint, errorMessage string) error {
	return r.failJob(ctx, jobID, errorMessage, "", nil)
}

// FailJobWithDetails marks a job as failed with error classification
func (r *jobRepository) FailJobWithDetails(ctx context.Context, jobID uint, errorMessage string, errorType models.JobErrorType, errorDetails *models.StructuredJobError) error {
	return r.failJob(ctx, jobID, errorMessage, errorType, errorDetails)
}

func (r *jobRepository) failJob(ctx context.Context, jobID uint, errorMessage string, errorType models.JobErrorType, errorDetails *models.StructuredJobError) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.First(&job, jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrJobNotFound
			}
			return fmt.Errorf("failed to load job: %w", err)
		}

		now := time.Now()
		retryCount := job.RetryCount + 1
		status := models.JobStatusFailed

		// Not-found errors never succeed on retry; everything else retries
		// until the budget runs out
		if errorType == models.ErrorTypeNotFound || retryCount >= job.MaxRetries {
			status = models.JobStatusPermanentlyFailed
		}

		updates := map[string]interface{}{
			"status":         status,
			"error":          errorMessage,
			"retry_count":    retryCount,
			"last_failed_at": &now,
			"worker_id":      "",
		}
		if errorType != "" {
			updates["error_type"] = string(errorType)
		}
		if errorDetails != nil {
			updates["error_code"] = errorDetails.Code
			updates["error_details"] = errorDetails.Details
		}

		if err := tx.Model(&job).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to fail job: %w", err)
		}

		if status == models.JobStatusPermanentlyFailed {
			log.Printf("[ERROR] Job %d (%s) permanently failed after %d attempts: %s",
				job.ID, job.Type, retryCount, errorMessage)
		}
		return nil
	})
}

// ReleaseJob returns a processing job to the pending state, e.g. when a
// worker shuts down mid-job
func (r *jobRepository) ReleaseJob(ctx context.Context, jobID uint) error {
	result := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ? AND status = ?", jobID, models.JobStatusProcessing).
		Updates(map[string]interface{}{
			"status":     models.JobStatusPending,
			"worker_id":  "",
			"started_at": nil,
			"progress":   0,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to release job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// DeleteOldJobs removes terminal jobs created before the cutoff
func (r *jobRepository) DeleteOldJobs(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status IN ?", []models.JobStatus{
			models.JobStatusCompleted,
			models.JobStatusCancelled,
			models.JobStatusPermanentlyFailed,
		}).
		Where("created_at < ?", olderThan).
		Delete(&models.Job{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old jobs: %w", result.Error)
	}
	return result.RowsAffected, nil
}
