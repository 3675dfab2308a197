package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cutroom/timeline-api/internal/models"
)

// mockJobRepository implements Repository for testing
type mockJobRepository struct {
	jobs      map[uint]*models.Job
	nextID    uint
	shouldErr bool
}

func newMockJobRepository() *mockJobRepository {
	return &mockJobRepository{jobs: make(map[uint]*models.Job)}
}

func (m *mockJobRepository) CreateJob(ctx context.Context, job *models.Job) error {
	if m.shouldErr {
		return errors.New("mock error")
	}
	m.nextID++
	job.ID = m.nextID
	m.jobs[job.ID] = job
	return nil
}

func (m *mockJobRepository) GetJob(ctx context.Context, jobID uint) (*models.Job, error) {
	if m.shouldErr {
		return nil, errors.New("mock error")
	}
	job, ok := m.jobs[jobID]
	if !ok {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func (m *mockJobRepository) GetJobByTypeAndPayload(ctx context.Context, jobType models.JobType, payloadKey, payloadValue string) (*models.Job, error) {
	if m.shouldErr {
		return nil, errors.New("mock error")
	}
	var newest *models.Job
	for _, job := range m.jobs {
		if job.Type != jobType {
			continue
		}
		if val, ok := job.GetPayloadValue(payloadKey); !ok || toString(val) != payloadValue {
			continue
		}
		if newest == nil || job.ID > newest.ID {
			newest = job
		}
	}
	if newest == nil {
		return nil, ErrJobNotFound
	}
	return newest, nil
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	default:
		return ""
	}
}

func (m *mockJobRepository) GetPendingJobs(ctx context.Context, limit int) ([]*models.Job, error) {
	var out []*models.Job
	for _, job := range m.jobs {
		if job.Status == models.JobStatusPending {
			out = append(out, job)
		}
	}
	return out, nil
}

func (m *mockJobRepository) GetJobsByStatus(ctx context.Context, status models.JobStatus, limit int) ([]*models.Job, error) {
	var out []*models.Job
	for _, job := range m.jobs {
		if job.Status == status {
			out = append(out, job)
		}
	}
	return out, nil
}

func (m *mockJobRepository) ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error) {
	if m.shouldErr {
		return nil, errors.New("mock error")
	}
	var best *models.Job
	for _, job := range m.jobs {
		if job.Status != models.JobStatusPending {
			continue
		}
		if best == nil || job.Priority > best.Priority ||
			(job.Priority == best.Priority && job.ID < best.ID) {
			best = job
		}
	}
	if best == nil {
		return nil, ErrNoJobsAvailable
	}
	now := time.Now()
	best.Status = models.JobStatusProcessing
	best.WorkerID = workerID
	best.StartedAt = &now
	return best, nil
}

func (m *mockJobRepository) UpdateJobProgress(ctx context.Context, jobID uint, progress int) error {
	job, ok := m.jobs[jobID]
	if !ok {
		return ErrJobNotFound
	}
	job.Progress = progress
	return nil
}

func (m *mockJobRepository) UpdateJobStatus(ctx context.Context, jobID uint, status models.JobStatus) error {
	job, ok := m.jobs[jobID]
	if !ok {
		return ErrJobNotFound
	}
	job.Status = status
	return nil
}

func (m *mockJobRepository) CompleteJob(ctx context.Context, jobID uint, result models.JobResult) error {
	job, ok := m.jobs[jobID]
	if !ok {
		return ErrJobNotFound
	}
	now := time.Now()
	job.Status = models.JobStatusCompleted
	job.CompletedAt = &now
	job.Progress = 100
	job.Result = result
	return nil
}

func (m *mockJobRepository) FailJob(ctx context.Context, jobID uint, errorMessage string) error {
	job, ok := m.jobs[jobID]
	if !ok {
		return ErrJobNotFound
	}
	job.RetryCount++
	job.Error = errorMessage
	if job.RetryCount >= job.MaxRetries {
		job.Status = models.JobStatusPermanentlyFailed
	} else {
		job.Status = models.JobStatusFailed
	}
	return nil
}

func (m *mockJobRepository) FailJobWithDetails(ctx context.Context, jobID uint, errorMessage string, errorType models.JobErrorType, errorDetails *models.StructuredJobError) error {
	if err := m.FailJob(ctx, jobID, errorMessage); err != nil {
		return err
	}
	job := m.jobs[jobID]
	job.ErrorType = string(errorType)
	if errorType == models.ErrorTypeNotFound {
		job.Status = models.JobStatusPermanentlyFailed
	}
	if errorDetails != nil {
		job.ErrorCode = errorDetails.Code
		job.ErrorDetails = errorDetails.Details
	}
	return nil
}

func (m *mockJobRepository) ReleaseJob(ctx context.Context, jobID uint) error {
	job, ok := m.jobs[jobID]
	if !ok {
		return ErrJobNotFound
	}
	job.Status = models.JobStatusPending
	job.WorkerID = ""
	return nil
}

func (m *mockJobRepository) DeleteOldJobs(ctx context.Context, olderThan time.Time) (int64, error) {
	var removed int64
	for id, job := range m.jobs {
		if job.IsTerminal() && job.CreatedAt.Before(olderThan) {
			delete(m.jobs, id)
			removed++
		}
	}
	return removed, nil
}

func TestEnqueueJob(t *testing.T) {
	repo := newMockJobRepository()
	svc := NewService(repo)
	ctx := context.Background()

	job, err := svc.EnqueueJob(ctx, models.JobTypeMediaProbe,
		models.JobPayload{"scene_id": 7, "url": "https://cdn.example.com/audio/vo.mp3"},
		WithPriority(5), WithCreatedBy("scenes-service"))
	if err != nil {
		t.Fatalf("EnqueueJob() error = %v", err)
	}

	if job.Status != models.JobStatusPending {
		t.Errorf("Status = %v, want pending", job.Status)
	}
	if job.Priority != 5 {
		t.Errorf("Priority = %d, want 5", job.Priority)
	}
	if job.MaxRetries != DefaultMaxRetries {
		t.Errorf("MaxRetries = %d, want %d", job.MaxRetries, DefaultMaxRetries)
	}
	if job.CreatedBy != "scenes-service" {
		t.Errorf("CreatedBy = %q, want scenes-service", job.CreatedBy)
	}
}

func TestEnqueueUniqueJob(t *testing.T) {
	repo := newMockJobRepository()
	svc := NewService(repo)
	ctx := context.Background()

	payload := models.JobPayload{"url": "https://cdn.example.com/audio/vo.mp3"}

	first, err := svc.EnqueueUniqueJob(ctx, models.JobTypeMediaProbe, payload, "url")
	if err != nil {
		t.Fatalf("EnqueueUniqueJob() error = %v", err)
	}

	// Second enqueue with the same key returns the existing pending job
	second, err := svc.EnqueueUniqueJob(ctx, models.JobTypeMediaProbe, payload, "url")
	if err != nil {
		t.Fatalf("EnqueueUniqueJob() second call error = %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected existing job %d, got new job %d", first.ID, second.ID)
	}

	// After the first job completes, a new one is created
	if err := svc.CompleteJob(ctx, first.ID, models.JobResult{"scanned": 3}); err != nil {
		t.Fatalf("CompleteJob() error = %v", err)
	}
	third, err := svc.EnqueueUniqueJob(ctx, models.JobTypeMediaProbe, payload, "url")
	if err != nil {
		t.Fatalf("EnqueueUniqueJob() third call error = %v", err)
	}
	if third.ID == first.ID {
		t.Error("expected a fresh job after the previous one completed")
	}
}

func TestEnqueueUniqueJobMissingKey(t *testing.T) {
	svc := NewService(newMockJobRepository())

	_, err := svc.EnqueueUniqueJob(context.Background(), models.JobTypeMediaProbe,
		models.JobPayload{"scene_id": 7}, "url")
	if err == nil {
		t.Fatal("expected error for payload missing the unique key")
	}
}

func TestClaimNextJob(t *testing.T) {
	repo := newMockJobRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.ClaimNextJob(ctx, "worker-1", nil); !errors.Is(err, ErrNoJobsAvailable) {
		t.Errorf("ClaimNextJob() on empty queue error = %v, want ErrNoJobsAvailable", err)
	}

	low, _ := svc.EnqueueJob(ctx, models.JobTypeAudioScan, models.JobPayload{"scene_id": 1})
	high, _ := svc.EnqueueJob(ctx, models.JobTypeMediaProbe, models.JobPayload{"scene_id": 2}, WithPriority(10))

	claimed, err := svc.ClaimNextJob(ctx, "worker-1", nil)
	if err != nil {
		t.Fatalf("ClaimNextJob() error = %v", err)
	}
	if claimed.ID != high.ID {
		t.Errorf("claimed job %d, want high priority job %d", claimed.ID, high.ID)
	}
	if claimed.Status != models.JobStatusProcessing {
		t.Errorf("Status = %v, want processing", claimed.Status)
	}
	if claimed.WorkerID != "worker-1" {
		t.Errorf("WorkerID = %q, want worker-1", claimed.WorkerID)
	}

	next, err := svc.ClaimNextJob(ctx, "worker-2", nil)
	if err != nil {
		t.Fatalf("ClaimNextJob() error = %v", err)
	}
	if next.ID != low.ID {
		t.Errorf("claimed job %d, want remaining job %d", next.ID, low.ID)
	}
}

func TestRetryFailedJob(t *testing.T) {
	repo := newMockJobRepository()
	svc := NewService(repo)
	ctx := context.Background()

	job, _ := svc.EnqueueJob(ctx, models.JobTypeMediaProbe, models.JobPayload{"scene_id": 3})

	// Retrying a pending job is rejected
	if err := svc.RetryFailedJob(ctx, job.ID); err == nil {
		t.Error("expected error retrying a pending job")
	}

	if err := svc.FailJob(ctx, job.ID, "probe timeout"); err != nil {
		t.Fatalf("FailJob() error = %v", err)
	}
	if err := svc.RetryFailedJob(ctx, job.ID); err != nil {
		t.Fatalf("RetryFailedJob() error = %v", err)
	}

	got, _ := svc.GetJob(ctx, job.ID)
	if got.Status != models.JobStatusPending {
		t.Errorf("Status after retry = %v, want pending", got.Status)
	}
}

func TestFailJobWithDetailsNilError(t *testing.T) {
	repo := newMockJobRepository()
	svc := NewService(repo)
	ctx := context.Background()

	job, _ := svc.EnqueueJob(ctx, models.JobTypeMediaProbe, models.JobPayload{"scene_id": 4})

	if err := svc.FailJobWithDetails(ctx, job.ID, nil); err != nil {
		t.Fatalf("FailJobWithDetails(nil) error = %v", err)
	}

	got, _ := svc.GetJob(ctx, job.ID)
	if got.Status != models.JobStatusFailed {
		t.Errorf("Status = %v, want failed", got.Status)
	}
}
