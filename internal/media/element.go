// Package media provides the backing elements a playback session drives:
// clock-simulated audio/video surfaces and the registry that owns them.
// Elements are opaque capabilities: current time, seek, play, pause, volume,
// plus asynchronous duration/error notification on load. Decode and
// buffering concerns live behind this boundary.
package media

import (
	"context"
	"sync"
	"time"
)

// Element is one mounted, seekable media surface
type Element interface {
	URL() string
	CurrentTime() float64
	SeekTo(t float64)
	Play()
	Pause()
	Paused() bool
	Volume() float64
	SetVolume(v float64)
	Duration() float64
	Close()
}

// Prober resolves a source's real duration when an element mounts
type Prober interface {
	ProbeDuration(ctx context.Context, url string) (float64, error)
}

// LoadHooks receive load-time notifications for one mounted element.
// They are called from the probe goroutine, not the session loop.
type LoadHooks struct {
	OnDuration func(url string, seconds float64)
	OnError    func(url string, err error)
}

// ClockOption configures a ClockElement
type ClockOption func(*ClockElement)

// WithClock overrides the wall clock, for tests
func WithClock(now func() time.Time) ClockOption {
	return func(e *ClockElement) {
		e.now = now
	}
}

// WithKnownDuration seeds the duration when the caller already observed it,
// skipping the probe.
func WithKnownDuration(seconds float64) ClockOption {
	return func(e *ClockElement) {
		e.duration = seconds
	}
}

// ClockElement simulates a media element against the wall clock: while
// playing, its reported time advances in real time from the last play or
// seek point, capped at the known duration. Safe for concurrent use; the
// probe goroutine and the session loop both touch it.
type ClockElement struct {
	url string
	now func() time.Time

	mu       sync.Mutex
	base     float64   // Media time at the last pin point
	pinnedAt time.Time // Wall-clock moment base was fixed
	playing  bool
	volume   float64
	duration float64
	closed   bool
	cancel   context.CancelFunc
}

// NewClockElement returns a paused element at position zero, full volume
func NewClockElement(url string, opts ...ClockOption) *ClockElement {
	e := &ClockElement{
		url:    url,
		now:    time.Now,
		volume: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartProbe resolves the source's duration in the background and reports
// through the hooks. Close cancels an in-flight probe; a cancelled probe
// reports nothing.
func (e *ClockElement) StartProbe(prober Prober, hooks LoadHooks) {
	if prober == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		cancel()
		return
	}
	e.cancel = cancel
	e.mu.Unlock()

	go func() {
		duration, err := prober.ProbeDuration(ctx, e.url)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			if hooks.OnError != nil {
				hooks.OnError(e.url, err)
			}
			return
		}
		if duration <= 0 {
			// Reachability-only probers report no duration; keep whatever
			// the element was seeded with.
			return
		}

		e.mu.Lock()
		e.duration = duration
		e.mu.Unlock()

		if hooks.OnDuration != nil {
			hooks.OnDuration(e.url, duration)
		}
	}()
}

// URL returns the source this element was mounted for
func (e *ClockElement) URL() string {
	return e.url
}

// CurrentTime returns the simulated playback position
func (e *ClockElement) CurrentTime() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.position()
}

// position computes the simulated position; callers hold the lock
func (e *ClockElement) position() float64 {
	if !e.playing {
		return e.base
	}
	t := e.base + e.now().Sub(e.pinnedAt).Seconds()
	if e.duration > 0 && t > e.duration {
		return e.duration
	}
	return t
}

// SeekTo pins the position to t, floored at zero
func (e *ClockElement) SeekTo(t float64) {
	if t < 0 {
		t = 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.base = t
	e.pinnedAt = e.now()
}

// Play starts the simulated clock
func (e *ClockElement) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.playing || e.closed {
		return
	}
	e.playing = true
	e.pinnedAt = e.now()
}

// Pause freezes the position
func (e *ClockElement) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.playing {
		return
	}
	e.base = e.position()
	e.playing = false
}

// Paused reports whether the simulated clock is stopped
func (e *ClockElement) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.playing
}

// Volume returns the element volume
func (e *ClockElement) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

// SetVolume clamps v into [0, 1]
func (e *ClockElement) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volume = v
}

// Duration returns the known media duration, 0 until observed
func (e *ClockElement) Duration() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.duration
}

// Close stops playback and cancels any in-flight probe. A closed element
// ignores Play.
func (e *ClockElement) Close() {
	e.mu.Lock()
	if e.playing {
		e.base = e.position()
		e.playing = false
	}
	e.closed = true
	cancel := e.cancel
	e.cancel = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
