package sessions

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/cutroom/timeline-api/internal/models"
)

// Manager owns every live playback session. It creates them against stored
// scenes, routes scene-change notifications to the sessions watching that
// scene, and closes sessions that have gone idle.
type Manager struct {
	deps sessionDeps
	cfg  Config

	mu       sync.Mutex
	sessions map[string]*Session
	byScene  map[uint]map[string]*Session
	closed   bool

	sweepStop chan struct{}
	sweepDone chan struct{}
}

// NewManager returns a running manager. checker and jobs may be nil, which
// disables audio reachability probing and background scans respectively.
func NewManager(sceneService SceneService, prefs PreferenceStore, jobService JobEnqueuer, checker RemoteChecker, cfg Config) *Manager {
	m := &Manager{
		deps: sessionDeps{
			scenes:  sceneService,
			prefs:   prefs,
			jobs:    jobService,
			checker: checker,
		},
		cfg:       cfg.withDefaults(),
		sessions:  make(map[string]*Session),
		byScene:   make(map[uint]map[string]*Session),
		sweepStop: make(chan struct{}),
		sweepDone: make(chan struct{}),
	}
	go m.sweepLoop()
	return m
}

// Attach creates a session playing the given scene. An empty language keeps
// the scene's stored preference. Attaching also schedules a background scan
// of the scene's audio URLs so dead sources surface without waiting for
// playback to hit them.
func (m *Manager) Attach(ctx context.Context, sceneID uint, language string) (*Session, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrManagerClosed
	}
	m.mu.Unlock()

	s, err := newSession(ctx, m.deps, sceneID, language, m.cfg)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		s.Close()
		return nil, ErrManagerClosed
	}
	m.sessions[s.ID()] = s
	if m.byScene[sceneID] == nil {
		m.byScene[sceneID] = make(map[string]*Session)
	}
	m.byScene[sceneID][s.ID()] = s
	m.mu.Unlock()

	if m.deps.jobs != nil {
		payload := models.JobPayload{"scene_id": sceneID}
		if _, err := m.deps.jobs.EnqueueUniqueJob(ctx, models.JobTypeAudioScan, payload, "scene_id"); err != nil {
			log.Printf("[ERROR] Enqueueing audio scan for scene %d: %v", sceneID, err)
		}
	}
	return s, nil
}

// Get returns the session with the given id
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Close shuts down one session and forgets it
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		m.remove(s)
	}
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.Close()
	return nil
}

// remove drops a session from both indexes. Caller holds m.mu.
func (m *Manager) remove(s *Session) {
	delete(m.sessions, s.ID())
	if scene := m.byScene[s.SceneID()]; scene != nil {
		delete(scene, s.ID())
		if len(scene) == 0 {
			delete(m.byScene, s.SceneID())
		}
	}
}

// CloseScene shuts down every session attached to a scene. Called when the
// scene itself is deleted.
func (m *Manager) CloseScene(sceneID uint) {
	m.mu.Lock()
	var closing []*Session
	for _, s := range m.byScene[sceneID] {
		closing = append(closing, s)
	}
	for _, s := range closing {
		m.remove(s)
	}
	m.mu.Unlock()

	for _, s := range closing {
		s.Close()
	}
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// CloseAll stops the idle sweeper and closes every session. The manager
// accepts no new sessions afterwards.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.sessions = make(map[string]*Session)
	m.byScene = make(map[uint]map[string]*Session)
	m.mu.Unlock()

	close(m.sweepStop)
	<-m.sweepDone
	for _, s := range all {
		s.Close()
	}
	if len(all) > 0 {
		log.Printf("[INFO] Closed %d playback sessions", len(all))
	}
}

// sceneSessions snapshots the sessions attached to one scene
func (m *Manager) sceneSessions(sceneID uint) []*Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Session, 0, len(m.byScene[sceneID]))
	for _, s := range m.byScene[sceneID] {
		out = append(out, s)
	}
	return out
}

// SceneUpdated tells every session on a scene to re-derive its tracks.
// Called by background workers and by handlers after scene mutations.
func (m *Manager) SceneUpdated(sceneID uint) {
	for _, s := range m.sceneSessions(sceneID) {
		go func(s *Session) {
			if err := s.Reload(); err != nil && err != ErrSessionClosed {
				log.Printf("[ERROR] Session %s: reload after scene %d update: %v", s.ID(), sceneID, err)
			}
		}(s)
	}
}

// AudioUnavailable tells every session on a scene that an audio URL no
// longer resolves.
func (m *Manager) AudioUnavailable(sceneID uint, url string) {
	for _, s := range m.sceneSessions(sceneID) {
		go func(s *Session) {
			if err := s.MarkAudioFailed(url); err != nil && err != ErrSessionClosed {
				log.Printf("[ERROR] Session %s: marking audio %s failed: %v", s.ID(), url, err)
			}
		}(s)
	}
}

func (m *Manager) sweepLoop() {
	defer close(m.sweepDone)
	ticker := time.NewTicker(m.cfg.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.sweepStop:
			return
		case now := <-ticker.C:
			m.sweepIdle(now)
		}
	}
}

// sweepIdle closes sessions untouched for longer than the idle timeout
func (m *Manager) sweepIdle(now time.Time) {
	m.mu.Lock()
	var idle []*Session
	for _, s := range m.sessions {
		if now.Sub(s.LastActive()) > m.cfg.IdleTimeout {
			idle = append(idle, s)
		}
	}
	for _, s := range idle {
		m.remove(s)
	}
	m.mu.Unlock()

	for _, s := range idle {
		log.Printf("[INFO] Closing idle session %s (scene %d)", s.ID(), s.SceneID())
		s.Close()
	}
}
