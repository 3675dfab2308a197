package sessions

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cutroom/timeline-api/internal/media"
	"github.com/cutroom/timeline-api/internal/models"
	"github.com/cutroom/timeline-api/internal/services/scenes"
	"github.com/cutroom/timeline-api/internal/timeline"
)

// How long a session waits on the database for a single load or write
const persistTimeout = 10 * time.Second

type msgKind int

const (
	msgPlay msgKind = iota
	msgPause
	msgToggle
	msgSeek
	msgSetLanguage
	msgSetViewport
	msgSetTrackState
	msgDragBegin
	msgDragMove
	msgDragEnd
	msgReload
	msgAudioFailed
)

// message is one command crossing into the session loop. errc is buffered
// and receives exactly one reply; posts without errc expect none.
type message struct {
	kind     msgKind
	seek     float64
	language string
	width    int
	track    timeline.Track
	state    timeline.TrackState
	dragKind timeline.DragKind
	clipID   string
	pointerX float64
	url      string
	errc     chan error
}

// resolver bridges the synchronizer to the session's mounted elements
type resolver struct {
	registry *media.Registry
	video    *media.VideoSurface
}

func (r *resolver) Video() timeline.VideoElement { return r.video }

func (r *resolver) Lookup(clipID, url string) timeline.Element {
	el := r.registry.Lookup(clipID, url)
	if el == nil {
		return nil
	}
	return el
}

// reachabilityProber adapts a RemoteChecker to the element probe interface.
// It reports no duration, only whether the URL resolves; elements keep the
// duration they were seeded with.
type reachabilityProber struct {
	checker RemoteChecker
}

func (p reachabilityProber) ProbeDuration(ctx context.Context, url string) (float64, error) {
	if _, err := p.checker.ProbeRemote(ctx, url); err != nil {
		return 0, err
	}
	return 0, nil
}

// Session is one live playback of a scene: a synchronizer driven by a frame
// ticker, a drag engine with its commit timer, and the mounted media
// elements, all owned by a single goroutine. Public methods send commands
// into that goroutine and wait for the reply; Snapshot reads the state the
// loop last published.
type Session struct {
	id      string
	sceneID uint

	scenes SceneService
	prefs  PreferenceStore
	jobs   JobEnqueuer
	prober media.Prober
	cfg    Config

	engine   *timeline.Engine
	drag     *timeline.DragEngine
	guard    *timeline.Guard
	registry *media.Registry
	video    *media.VideoSurface
	geometry timeline.Geometry

	// Loop-owned scene state
	tracks      *scenes.SceneTracks
	filtered    timeline.AudioTrackSet
	language    string
	fingerprint string
	tracksDirty bool // A drag commit persisted; re-derive once overrides settle

	commands chan message
	stop     chan struct{}
	done     chan struct{}

	mu         sync.Mutex
	snapshot   Snapshot
	lastActive time.Time

	closeOnce sync.Once
}

type sessionDeps struct {
	scenes  SceneService
	prefs   PreferenceStore
	jobs    JobEnqueuer
	checker RemoteChecker
}

// newSession loads the scene's tracks, mounts its media, and starts the
// session loop. The scene service decides the effective language when the
// requested one is empty.
func newSession(ctx context.Context, deps sessionDeps, sceneID uint, language string, cfg Config) (*Session, error) {
	st, err := deps.scenes.TrackSet(ctx, sceneID, language)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:       uuid.NewString(),
		sceneID:  sceneID,
		scenes:   deps.scenes,
		prefs:    deps.prefs,
		jobs:     deps.jobs,
		cfg:      cfg,
		drag:     timeline.NewDragEngine(cfg.DragDebounce, cfg.DragGrace),
		guard:    timeline.NewGuard(),
		video:    media.NewVideoSurface(),
		commands: make(chan message, 16),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		geometry: timeline.Geometry{
			ContainerWidth:   cfg.ViewportWidth,
			LabelColumnWidth: cfg.LabelColumnWidth,
		},
		lastActive: time.Now(),
	}
	if deps.checker != nil {
		s.prober = reachabilityProber{checker: deps.checker}
	}
	s.registry = media.NewRegistry(s.newElement)
	s.engine = timeline.NewEngine(
		&resolver{registry: s.registry, video: s.video},
		timeline.Callbacks{OnPlayhead: s.onPlayhead, OnPlayingChange: s.onPlayingChange},
		timeline.WithDriftThreshold(cfg.DriftThreshold),
	)

	if s.prefs != nil {
		states, err := s.prefs.GetTrackStates(ctx)
		if err != nil {
			log.Printf("[ERROR] Session %s: loading track preferences: %v", s.id, err)
		} else {
			for track, state := range states {
				s.engine.SetTrackState(track, state)
			}
		}
	}

	s.applyTracks(st)
	s.publish()
	go s.loop()

	log.Printf("[INFO] Session %s attached to scene %d (language %s)", s.id, sceneID, s.language)
	return s, nil
}

// newElement is the registry factory. Elements are seeded with the clip's
// known duration and probed for reachability in the background; a failed
// probe marks the URL stale through the session loop.
func (s *Session) newElement(clipID, url string) media.Element {
	var opts []media.ClockOption
	if clip, ok := s.filtered.Find(clipID); ok && clip.Duration > 0 {
		opts = append(opts, media.WithKnownDuration(clip.Duration))
	}
	el := media.NewClockElement(url, opts...)
	if s.prober != nil {
		el.StartProbe(s.prober, media.LoadHooks{
			OnError: func(url string, err error) {
				log.Printf("[ERROR] Session %s: audio source %s failed to load: %v", s.id, url, err)
				s.post(message{kind: msgAudioFailed, url: url})
			},
		})
	}
	return el
}

// ID returns the session's identifier
func (s *Session) ID() string { return s.id }

// SceneID returns the scene this session plays
func (s *Session) SceneID() uint { return s.sceneID }

// Snapshot returns the state the session loop last published
func (s *Session) Snapshot() Snapshot {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// LastActive returns the time of the most recent command or snapshot read
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Play starts playback from the current cursor
func (s *Session) Play() error { return s.send(message{kind: msgPlay}) }

// Pause halts playback, keeping the cursor where it is
func (s *Session) Pause() error { return s.send(message{kind: msgPause}) }

// Toggle flips between playing and paused
func (s *Session) Toggle() error { return s.send(message{kind: msgToggle}) }

// Seek moves the cursor, clamped to the scene bounds. Media follows whether
// playing or paused.
func (s *Session) Seek(t float64) error {
	return s.send(message{kind: msgSeek, seek: t})
}

// SetLanguage persists the scene's language preference and rebuilds the
// audio tracks for it.
func (s *Session) SetLanguage(language string) error {
	return s.send(message{kind: msgSetLanguage, language: language})
}

// SetViewport reports the client's timeline width so pointer positions map
// to seconds correctly.
func (s *Session) SetViewport(width int) error {
	return s.send(message{kind: msgSetViewport, width: width})
}

// SetTrackState applies a track's mix state to live playback and persists it
func (s *Session) SetTrackState(track timeline.Track, state timeline.TrackState) error {
	return s.send(message{kind: msgSetTrackState, track: track, state: state})
}

// BeginDrag opens a direct-manipulation edit on one clip
func (s *Session) BeginDrag(kind timeline.DragKind, track timeline.Track, clipID string, pointerX float64) error {
	return s.send(message{kind: msgDragBegin, dragKind: kind, track: track, clipID: clipID, pointerX: pointerX})
}

// MoveDrag updates the active drag from a pointer position
func (s *Session) MoveDrag(pointerX float64) error {
	return s.send(message{kind: msgDragMove, pointerX: pointerX})
}

// EndDrag closes the active drag; a nonzero edit persists after the
// debounce window.
func (s *Session) EndDrag() error { return s.send(message{kind: msgDragEnd}) }

// Reload re-derives tracks from stored scene data, picking up edits made
// outside this session.
func (s *Session) Reload() error { return s.send(message{kind: msgReload}) }

// MarkAudioFailed excludes an audio URL from playback until the scene data
// stops referencing it.
func (s *Session) MarkAudioFailed(url string) error {
	return s.send(message{kind: msgAudioFailed, url: url})
}

// Close stops the loop, persists any outstanding drag commits, and releases
// every mounted element. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.stop)
		<-s.done
		log.Printf("[INFO] Session %s closed (scene %d)", s.id, s.sceneID)
	})
}

// send delivers a command to the loop and waits for its reply
func (s *Session) send(m message) error {
	s.touch()
	m.errc = make(chan error, 1)
	select {
	case s.commands <- m:
	case <-s.done:
		return ErrSessionClosed
	}
	select {
	case err := <-m.errc:
		return err
	case <-s.done:
		return ErrSessionClosed
	}
}

// post delivers a command without waiting for a reply. Used from probe
// goroutines, which must not block forever once the session is gone.
func (s *Session) post(m message) {
	select {
	case s.commands <- m:
	case <-s.done:
	}
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

func (s *Session) loop() {
	defer close(s.done)

	frames := time.NewTicker(s.cfg.FrameInterval)
	defer frames.Stop()

	dragTimer := time.NewTimer(time.Hour)
	if !dragTimer.Stop() {
		<-dragTimer.C
	}
	defer dragTimer.Stop()

	for {
		select {
		case <-s.stop:
			for _, c := range s.drag.Settle() {
				s.persistCommit(c)
			}
			s.registry.Close()
			return

		case m := <-s.commands:
			err := s.handle(m)
			s.rearmDragTimer(dragTimer)
			s.publish()
			if m.errc != nil {
				m.errc <- err
			}

		case now := <-frames.C:
			if s.engine.Playing() {
				s.engine.Tick(now)
				if !s.engine.Playing() {
					// Reached end of scene this frame
					s.publish()
				}
			}

		case now := <-dragTimer.C:
			s.flushDrag(now)
			s.rearmDragTimer(dragTimer)
			s.publish()
		}
	}
}

func (s *Session) handle(m message) error {
	now := time.Now()
	switch m.kind {
	case msgPlay:
		s.engine.Play(now)
	case msgPause:
		s.engine.Pause()
	case msgToggle:
		s.engine.Toggle(now)
	case msgSeek:
		s.engine.SkipTo(m.seek, now)
	case msgSetViewport:
		if m.width > 0 {
			s.geometry.ContainerWidth = m.width
		}
	case msgSetTrackState:
		return s.setTrackState(m.track, m.state)
	case msgSetLanguage:
		return s.switchLanguage(m.language)
	case msgReload:
		return s.reloadNow()
	case msgAudioFailed:
		s.markFailed(m.url)
	case msgDragBegin:
		return s.beginDrag(m)
	case msgDragMove:
		if !s.drag.Dragging() {
			return ErrNoActiveDrag
		}
		s.drag.Move(m.pointerX, s.geometry.PixelsPerSecond())
	case msgDragEnd:
		if !s.drag.Dragging() {
			return ErrNoActiveDrag
		}
		s.drag.End(now)
	default:
		return fmt.Errorf("unknown session command %d", m.kind)
	}
	return nil
}

func (s *Session) setTrackState(track timeline.Track, state timeline.TrackState) error {
	if !track.IsAudio() {
		return fmt.Errorf("%w: %s is not an audio track", ErrInvalidTrack, track)
	}
	s.engine.SetTrackState(track, state)
	if s.prefs != nil {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.prefs.SetTrackState(ctx, track, state); err != nil {
			// Live state is already applied; persistence is best-effort
			log.Printf("[ERROR] Session %s: persisting track state for %s: %v", s.id, track, err)
		}
	}
	return nil
}

func (s *Session) switchLanguage(language string) error {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.scenes.UpdateSceneLanguage(ctx, s.sceneID, language); err != nil {
		return err
	}
	st, err := s.scenes.TrackSet(ctx, s.sceneID, language)
	if err != nil {
		return err
	}
	s.applyTracks(st)
	return nil
}

// reloadNow re-derives tracks from stored data using the session's current
// language.
func (s *Session) reloadNow() error {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	st, err := s.scenes.TrackSet(ctx, s.sceneID, s.language)
	if err != nil {
		return err
	}
	s.applyTracks(st)
	s.tracksDirty = false
	return nil
}

// applyTracks installs a freshly derived track set. Audio mounting and the
// stale-URL intersection only run when the audio material actually changed;
// timing-only edits keep the mounted elements, and their playback positions,
// untouched.
func (s *Session) applyTracks(st *scenes.SceneTracks) {
	changed := st.Fingerprint != s.fingerprint
	s.tracks = st
	s.language = st.Language
	s.geometry.SceneDuration = st.Duration

	if changed {
		s.fingerprint = st.Fingerprint
		s.guard.Retain(st.Audio.URLs())
	}
	s.filtered = s.guard.Filter(st.Audio)
	s.engine.SetTracks(st.Visual, s.filtered, st.Duration)

	if changed {
		s.mountAudio()
		s.enqueueProbes()
	}
}

// mountAudio ensures an element exists for every playable clip and drops
// elements for clips that are gone.
func (s *Session) mountAudio() {
	live := make(map[media.Key]struct{})
	for _, clip := range s.filtered.All() {
		if clip.URL == "" {
			continue
		}
		live[media.Key{ClipID: clip.ID, URL: clip.URL}] = struct{}{}
		s.registry.Ensure(clip.ID, clip.URL)
	}
	if removed := s.registry.Sweep(live); removed > 0 {
		log.Printf("[DEBUG] Session %s: unmounted %d audio elements", s.id, removed)
	}
}

// enqueueProbes schedules a duration probe for every clip the documents
// carry no timing for. The queue deduplicates, so rebuilds are cheap.
func (s *Session) enqueueProbes() {
	if s.jobs == nil {
		return
	}
	for _, clip := range s.filtered.All() {
		if clip.URL == "" || clip.Duration > 0 {
			continue
		}
		// probe_key scopes the uniqueness check to this scene's clip
		payload := models.JobPayload{
			"scene_id":  s.sceneID,
			"clip_id":   clip.ID,
			"url":       clip.URL,
			"probe_key": fmt.Sprintf("%d:%s", s.sceneID, clip.ID),
		}
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		if _, err := s.jobs.EnqueueUniqueJob(ctx, models.JobTypeMediaProbe, payload, "probe_key"); err != nil {
			log.Printf("[ERROR] Session %s: enqueueing duration probe for %s: %v", s.id, clip.ID, err)
		}
		cancel()
	}
}

// markFailed records a dead URL and rebuilds playback without it
func (s *Session) markFailed(url string) {
	if url == "" || !s.guard.MarkFailed(url) {
		return
	}
	log.Printf("[INFO] Session %s: excluding unavailable audio %s", s.id, url)
	s.filtered = s.guard.Filter(s.tracks.Audio)
	s.engine.SetTracks(s.tracks.Visual, s.filtered, s.tracks.Duration)
	s.mountAudio()
}

// beginDrag opens a drag from the clip's authoritative placement. Any
// commits still waiting out debounce or grace are settled first so the new
// drag never stacks on a half-applied override.
func (s *Session) beginDrag(m message) error {
	if !m.dragKind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidDrag, string(m.dragKind))
	}
	if !m.track.Valid() {
		return fmt.Errorf("%w: unknown track %q", ErrInvalidDrag, string(m.track))
	}

	if _, ok := s.drag.NextDeadline(); ok || s.tracksDirty {
		for _, c := range s.drag.Settle() {
			s.persistCommit(c)
		}
		if s.tracksDirty {
			if err := s.reloadNow(); err != nil {
				log.Printf("[ERROR] Session %s: reloading before drag: %v", s.id, err)
			}
		}
	}

	start, duration, ok := s.clipPlacement(m.track, m.clipID)
	if !ok {
		return fmt.Errorf("%w: %s on track %s", ErrClipNotFound, m.clipID, m.track)
	}
	s.drag.Begin(m.dragKind, m.track, m.clipID, m.pointerX, start, duration)
	return nil
}

// clipPlacement finds the stored placement for a drag target. Video clips
// are keyed by segment UUID, audio clips by their track-derived clip id.
func (s *Session) clipPlacement(track timeline.Track, clipID string) (start, duration float64, ok bool) {
	if track == timeline.TrackVideo {
		for _, seg := range s.tracks.Visual {
			if seg.UUID == clipID {
				return seg.Start, seg.Duration, true
			}
		}
		return 0, 0, false
	}
	clip, found := s.filtered.Find(clipID)
	if !found || clip.Track != track {
		return 0, 0, false
	}
	return clip.Start, clip.Duration, true
}

// flushDrag releases commits whose debounce closed, persists them, and once
// every override has settled re-derives tracks so rendering returns to
// stored data.
func (s *Session) flushDrag(now time.Time) {
	for _, c := range s.drag.Advance(now) {
		s.persistCommit(c)
	}
	if !s.tracksDirty {
		return
	}
	if _, pending := s.drag.NextDeadline(); pending || s.drag.Dragging() {
		return
	}
	if err := s.reloadNow(); err != nil {
		log.Printf("[ERROR] Session %s: reloading after drag commit: %v", s.id, err)
	}
}

func (s *Session) persistCommit(c timeline.Commit) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	start, duration := c.Start, c.Duration
	var err error
	if c.Track == timeline.TrackVideo {
		_, err = s.scenes.UpdateSegmentTiming(ctx, s.sceneID, c.ClipID, &start, &duration)
	} else {
		err = s.scenes.UpdateAudioClipTiming(ctx, s.sceneID, c.ClipID, &start, &duration)
	}
	// Reload either way: on success to pick up the stored placement, on
	// failure to snap the optimistic override back to authoritative data.
	s.tracksDirty = true
	if err != nil {
		log.Printf("[ERROR] Session %s: persisting %s drag for clip %s: %v", s.id, c.Track, c.ClipID, err)
		return
	}
	log.Printf("[DEBUG] Session %s: committed %s drag for clip %s (start=%.2f duration=%.2f)",
		s.id, c.Track, c.ClipID, c.Start, c.Duration)
}

// rearmDragTimer points the timer at the drag engine's next deadline, if any
func (s *Session) rearmDragTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	deadline, ok := s.drag.NextDeadline()
	if !ok {
		return
	}
	d := time.Until(deadline)
	if d < 0 {
		d = 0
	}
	t.Reset(d)
}

// onPlayhead runs inside engine calls on the loop goroutine; it keeps the
// published cursor fresh between full publishes.
func (s *Session) onPlayhead(elapsed float64, activeSegmentID uint) {
	s.mu.Lock()
	s.snapshot.Cursor = elapsed
	s.snapshot.ActiveSegmentID = activeSegmentID
	s.snapshot.UpdatedAt = time.Now().UTC()
	s.mu.Unlock()
}

func (s *Session) onPlayingChange(playing bool) {
	s.mu.Lock()
	s.snapshot.Playing = playing
	s.mu.Unlock()
}

// publish rebuilds the full snapshot from loop state
func (s *Session) publish() {
	snap := Snapshot{
		SessionID:       s.id,
		SceneID:         s.sceneID,
		SceneUUID:       s.tracks.SceneUUID,
		Language:        s.language,
		Available:       s.tracks.Available,
		Playing:         s.engine.Playing(),
		Cursor:          s.engine.Cursor(),
		Duration:        s.engine.Duration(),
		Fingerprint:     s.fingerprint,
		StaleURLs:       s.guard.Stale(),
		Dragging:        s.drag.Dragging(),
		Tracks:          make(map[string]TrackStateView, len(timeline.AudioTrackOrder)),
		Segments:        s.segmentViews(),
		Audio:           s.audioViews(),
		PixelsPerSecond: s.geometry.PixelsPerSecond(),
		GridInterval:    timeline.GridInterval(s.tracks.Duration),
		UpdatedAt:       time.Now().UTC(),
	}
	if clip, ok := s.engine.ActiveClip(); ok {
		snap.ActiveSegmentID = clip.ID
	}
	for _, track := range timeline.AudioTrackOrder {
		st := s.engine.TrackState(track)
		snap.Tracks[string(track)] = TrackStateView{Volume: st.Volume, Enabled: st.Enabled}
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}

func (s *Session) segmentViews() []SegmentView {
	views := make([]SegmentView, 0, len(s.tracks.Visual))
	for _, seg := range s.tracks.Visual {
		_, dragging := s.drag.Delta(seg.UUID)
		views = append(views, SegmentView{
			ID:             seg.ID,
			UUID:           seg.UUID,
			Position:       seg.Position,
			Start:          s.drag.EffectiveStart(seg.UUID, seg.Start),
			Duration:       s.drag.EffectiveDuration(seg.UUID, seg.Duration),
			TrimStart:      seg.TrimStart,
			ThumbnailURL:   seg.ThumbnailURL,
			Status:         seg.Status,
			HasVideo:       seg.HasVideo,
			IsEstablishing: seg.IsEstablishing,
			ShotNumber:     seg.ShotNumber,
			Dragging:       dragging,
		})
	}
	return views
}

func (s *Session) audioViews() []ClipView {
	all := s.filtered.All()
	views := make([]ClipView, 0, len(all))
	for _, clip := range all {
		_, dragging := s.drag.Delta(clip.ID)
		views = append(views, ClipView{
			ID:        clip.ID,
			Track:     clip.Track,
			URL:       clip.URL,
			Label:     clip.Label,
			Start:     s.drag.EffectiveStart(clip.ID, clip.Start),
			Duration:  s.drag.EffectiveDuration(clip.ID, clip.Duration),
			TrimStart: clip.TrimStart,
			Dragging:  dragging,
		})
	}
	return views
}
