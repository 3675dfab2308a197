package scenes

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/cutroom/timeline-api/internal/models"
	"github.com/cutroom/timeline-api/internal/timeline"
)

// Defaults for new segments and the rendered timeline floor
const (
	DefaultSegmentSeconds  = 4.0
	DefaultMinSceneSeconds = 10.0
)

// Service implements the SceneService interface with business logic
type Service struct {
	repository     SceneRepository
	segmentSeconds float64
	minSceneLength float64
}

// Ensure Service implements SceneService interface
var _ SceneService = (*Service)(nil)

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithDefaultSegmentDuration sets the duration given to newly added segments
func WithDefaultSegmentDuration(seconds float64) ServiceOption {
	return func(s *Service) {
		if seconds > 0 {
			s.segmentSeconds = seconds
		}
	}
}

// WithMinSceneDuration sets the floor applied to the computed scene duration
func WithMinSceneDuration(seconds float64) ServiceOption {
	return func(s *Service) {
		if seconds > 0 {
			s.minSceneLength = seconds
		}
	}
}

// NewService creates a new scene service with optional configuration
func NewService(repository SceneRepository, opts ...ServiceOption) *Service {
	s := &Service{
		repository:     repository,
		segmentSeconds: DefaultSegmentSeconds,
		minSceneLength: DefaultMinSceneSeconds,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CreateScene validates and persists a new scene. Supplied segments are
// renumbered into a contiguous sequence; segments without an end time get the
// default duration.
func (s *Service) CreateScene(ctx context.Context, scene *models.Scene) error {
	if scene.Title == "" {
		return NewValidationError("title", "must not be empty")
	}

	cursor := 0.0
	for i := range scene.Segments {
		seg := &scene.Segments[i]
		seg.Position = i
		if seg.EndTime <= seg.StartTime {
			seg.StartTime = cursor
			seg.EndTime = cursor + s.segmentSeconds
		}
		cursor = seg.EndTime
	}

	if err := s.repository.CreateScene(ctx, scene); err != nil {
		return err
	}

	log.Printf("[INFO] Created scene %s (%q) with %d segments", scene.UUID, scene.Title, len(scene.Segments))
	return nil
}

// GetScene retrieves a scene with its segments ordered by position
func (s *Service) GetScene(ctx context.Context, id uint) (*models.Scene, error) {
	return s.repository.GetSceneByID(ctx, id)
}

// GetSceneByUUID retrieves a scene by its public identifier
func (s *Service) GetSceneByUUID(ctx context.Context, uuid string) (*models.Scene, error) {
	return s.repository.GetSceneByUUID(ctx, uuid)
}

// ListScenes returns a page of scenes plus the total count
func (s *Service) ListScenes(ctx context.Context, page, limit int) ([]models.Scene, int64, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repository.ListScenes(ctx, page, limit)
}

// DeleteScene removes a scene and its segments
func (s *Service) DeleteScene(ctx context.Context, id uint) error {
	if err := s.repository.DeleteScene(ctx, id); err != nil {
		return err
	}
	log.Printf("[INFO] Deleted scene %d", id)
	return nil
}

// UpdateSceneLanguage persists the selected audio language
func (s *Service) UpdateSceneLanguage(ctx context.Context, sceneID uint, language string) error {
	if language == "" {
		return NewValidationError("language", "must not be empty")
	}
	return s.repository.UpdateSceneLanguage(ctx, sceneID, language)
}

// TrackSet assembles the flattened timeline view for a language
func (s *Service) TrackSet(ctx context.Context, sceneID uint, language string) (*SceneTracks, error) {
	scene, err := s.repository.GetSceneByID(ctx, sceneID)
	if err != nil {
		return nil, err
	}

	if language == "" {
		language = scene.Language
	}

	audio := timeline.BuildAudioTracks(scene.Audio, language)

	return &SceneTracks{
		SceneID:     scene.ID,
		SceneUUID:   scene.UUID,
		Language:    language,
		Available:   timeline.DetectAvailableLanguages(scene.Audio),
		Fingerprint: timeline.HashAudioURLs(audio),
		Duration:    timeline.SceneDuration(scene.Segments, s.minSceneLength),
		Audio:       audio,
		Visual:      timeline.DeriveVisualClips(scene.Segments),
	}, nil
}

// AddSegment inserts a draft segment after the named segment, or appends when
// afterSegmentUUID is empty. Later segments shift right by the new segment's
// duration so the sequence stays contiguous.
func (s *Service) AddSegment(ctx context.Context, sceneID uint, afterSegmentUUID string) (*models.Segment, error) {
	scene, err := s.repository.GetSceneByID(ctx, sceneID)
	if err != nil {
		return nil, err
	}

	insertAt := len(scene.Segments)
	if afterSegmentUUID != "" {
		insertAt = -1
		for i := range scene.Segments {
			if scene.Segments[i].UUID == afterSegmentUUID {
				insertAt = i + 1
				break
			}
		}
		if insertAt < 0 {
			return nil, NewNotFoundError("segment", afterSegmentUUID)
		}
	}

	start := 0.0
	if insertAt > 0 {
		start = scene.Segments[insertAt-1].EndTime
	}

	segment := &models.Segment{
		SceneID:   scene.ID,
		Position:  insertAt,
		StartTime: start,
		EndTime:   start + s.segmentSeconds,
		Status:    models.SegmentStatusDraft,
	}

	var shifted []*models.Segment
	for i := insertAt; i < len(scene.Segments); i++ {
		seg := &scene.Segments[i]
		seg.Position = i + 1
		seg.StartTime += s.segmentSeconds
		seg.EndTime += s.segmentSeconds
		shifted = append(shifted, seg)
	}

	if err := s.repository.InsertSegment(ctx, segment, shifted); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Added segment %s to scene %d at position %d", segment.UUID, sceneID, insertAt)
	return segment, nil
}

// DeleteSegment removes a segment and closes the gap: later segments shift
// left by the removed duration and positions renumber.
func (s *Service) DeleteSegment(ctx context.Context, sceneID uint, segmentUUID string) error {
	scene, err := s.repository.GetSceneByID(ctx, sceneID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range scene.Segments {
		if scene.Segments[i].UUID == segmentUUID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return NewNotFoundError("segment", segmentUUID)
	}

	removed := scene.Segments[idx]
	gap := removed.Duration()

	var shifted []*models.Segment
	for i := idx + 1; i < len(scene.Segments); i++ {
		seg := &scene.Segments[i]
		seg.Position = i - 1
		seg.StartTime -= gap
		seg.EndTime -= gap
		shifted = append(shifted, seg)
	}

	if err := s.repository.DeleteSegment(ctx, removed.ID, shifted); err != nil {
		return err
	}

	log.Printf("[INFO] Deleted segment %s from scene %d", segmentUUID, sceneID)
	return nil
}

// ReorderSegments moves the segment at index from to index to, renumbers
// positions, and lays start/end times back out contiguously from zero with
// every duration preserved.
func (s *Service) ReorderSegments(ctx context.Context, sceneID uint, from, to int) ([]models.Segment, error) {
	scene, err := s.repository.GetSceneByID(ctx, sceneID)
	if err != nil {
		return nil, err
	}

	n := len(scene.Segments)
	if from < 0 || from >= n {
		return nil, NewValidationError("from", fmt.Sprintf("index %d out of range [0,%d)", from, n))
	}
	if to < 0 || to >= n {
		return nil, NewValidationError("to", fmt.Sprintf("index %d out of range [0,%d)", to, n))
	}
	if from == to {
		return scene.Segments, nil
	}

	ordered := make([]models.Segment, 0, n)
	ordered = append(ordered, scene.Segments[:from]...)
	ordered = append(ordered, scene.Segments[from+1:]...)
	moved := scene.Segments[from]
	ordered = append(ordered[:to], append([]models.Segment{moved}, ordered[to:]...)...)

	cursor := 0.0
	updates := make([]*models.Segment, n)
	for i := range ordered {
		seg := &ordered[i]
		d := seg.Duration()
		seg.Position = i
		seg.StartTime = cursor
		seg.EndTime = cursor + d
		cursor += d
		updates[i] = seg
	}

	if err := s.repository.SaveSegments(ctx, updates); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Reordered scene %d segments: %d -> %d", sceneID, from, to)
	return ordered, nil
}

// UpdateSegmentTiming applies a start and/or duration to one segment exactly
// as given, clamped to a non-negative start and the minimum clip duration.
// Neighboring segments are not cascaded.
func (s *Service) UpdateSegmentTiming(ctx context.Context, sceneID uint, segmentUUID string, start, duration *float64) (*models.Segment, error) {
	if start == nil && duration == nil {
		return nil, NewValidationError("timing", "start or duration required")
	}

	segment, err := s.repository.GetSegmentByUUID(ctx, sceneID, segmentUUID)
	if err != nil {
		return nil, err
	}

	newStart := segment.StartTime
	newDuration := segment.Duration()
	if start != nil {
		newStart = math.Max(0, *start)
	}
	if duration != nil {
		newDuration = math.Max(timeline.MinClipDuration, *duration)
	}

	segment.StartTime = newStart
	segment.EndTime = newStart + newDuration

	if err := s.repository.SaveSegments(ctx, []*models.Segment{segment}); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] Segment %s retimed: start=%.3f duration=%.3f", segmentUUID, newStart, newDuration)
	return segment, nil
}
