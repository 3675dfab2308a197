package timeline

import (
	"math"
	"time"
)

// DefaultDriftThreshold is the drift beyond which a media element is
// hard-seeked back onto the cursor, seconds.
const DefaultDriftThreshold = 0.2

// Element is the imperative surface the synchronizer commands on one backing
// media resource. All calls are fire-and-forget: buffering and loading happen
// asynchronously behind the implementation.
type Element interface {
	CurrentTime() float64
	SeekTo(t float64)
	Play()
	Pause()
	Paused() bool
	SetVolume(v float64)
}

// VideoElement is the single video surface, which additionally supports
// switching its source as the active segment changes.
type VideoElement interface {
	Element
	Source() string
	SetSource(url string)
}

// ElementResolver hands the synchronizer its backing elements. Lookup keys
// audio elements by clip id plus URL, so a clip whose URL was swapped
// resolves to a fresh element instead of one with stale buffered state.
// Lookup returns nil for clips that are not mounted; the synchronizer skips
// those. Element creation and removal belong to the mount path, never to the
// tick loop.
type ElementResolver interface {
	Video() VideoElement
	Lookup(clipID, url string) Element
}

// TrackState is the mix state applied to one audio category
type TrackState struct {
	Volume  float64 `json:"volume"` // 0.0-1.0
	Enabled bool    `json:"enabled"`
}

// Callbacks are the host notifications the engine emits. Nil entries are
// skipped. Callbacks fire synchronously from within engine calls.
type Callbacks struct {
	// OnPlayhead reports the cursor and active segment, at most once per
	// tick during playback and once per explicit seek.
	OnPlayhead func(elapsed float64, activeSegmentID uint)
	// OnPlayingChange fires on every transition between paused and playing
	OnPlayingChange func(playing bool)
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithDriftThreshold overrides the drift beyond which playing media is hard-seeked
func WithDriftThreshold(seconds float64) EngineOption {
	return func(e *Engine) {
		if seconds > 0 {
			e.drift = seconds
		}
	}
}

// WithTrackState seeds the mix state for one audio category
func WithTrackState(track Track, st TrackState) EngineOption {
	return func(e *Engine) {
		e.tracks[track] = st
	}
}

// Engine is the playback clock and multi-media synchronizer. It maintains a
// virtual elapsed-time cursor derived from the wall clock rather than from
// any media element's own playback position: tracks start and stop at
// different timeline offsets and some windows have no active element at all,
// so the wall clock is the only clock that is always defined. On every tick
// the engine drives the video element and each audio element to follow the
// cursor, hard-seeking only when drift exceeds the threshold.
type Engine struct {
	media ElementResolver
	cb    Callbacks
	drift float64

	visual   []VisualClip
	audio    AudioTrackSet
	duration float64

	tracks map[Track]TrackState

	playing     bool
	cursor      float64
	clockOrigin time.Time // Wall-clock moment the cursor would have been zero
}

// NewEngine returns a paused engine with an empty timeline
func NewEngine(media ElementResolver, cb Callbacks, opts ...EngineOption) *Engine {
	e := &Engine{
		media:  media,
		cb:     cb,
		drift:  DefaultDriftThreshold,
		tracks: make(map[Track]TrackState),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetTracks replaces the timeline the engine synchronizes against. The
// cursor is clamped into the new duration.
func (e *Engine) SetTracks(visual []VisualClip, audio AudioTrackSet, duration float64) {
	e.visual = visual
	e.audio = audio
	e.duration = duration
	if e.cursor > duration {
		e.cursor = duration
	}
}

// SetTrackState replaces the mix state for one audio category. The new
// volume and enabled flag are applied on the next tick.
func (e *Engine) SetTrackState(track Track, st TrackState) {
	e.tracks[track] = st
}

// TrackState returns the mix state for a category, defaulting to enabled at
// full volume.
func (e *Engine) TrackState(track Track) TrackState {
	if st, ok := e.tracks[track]; ok {
		return st
	}
	return TrackState{Volume: 1, Enabled: true}
}

// Playing reports whether a play cycle is running
func (e *Engine) Playing() bool {
	return e.playing
}

// Cursor returns the current virtual elapsed time
func (e *Engine) Cursor() float64 {
	return e.cursor
}

// Duration returns the scene duration the engine synchronizes against
func (e *Engine) Duration() float64 {
	return e.duration
}

// Audio returns the audio set currently synchronized
func (e *Engine) Audio() AudioTrackSet {
	return e.audio
}

// Visual returns the visual clips currently synchronized
func (e *Engine) Visual() []VisualClip {
	return e.visual
}

// Play starts a play cycle from the current cursor. The clock origin is
// pinned so that elapsed time is recomputed from the wall clock on every
// tick instead of accumulating per-tick deltas.
func (e *Engine) Play(now time.Time) {
	if e.playing {
		return
	}
	e.playing = true
	e.clockOrigin = now.Add(-secondsToDuration(e.cursor))
	e.notifyPlaying()
}

// Pause ends the play cycle and halts every mounted element
func (e *Engine) Pause() {
	if !e.playing {
		return
	}
	e.playing = false
	e.pauseAllMedia()
	e.notifyPlaying()
}

// Toggle flips between playing and paused
func (e *Engine) Toggle(now time.Time) {
	if e.playing {
		e.Pause()
	} else {
		e.Play(now)
	}
}

// SkipTo clamps t into [0, duration], moves the cursor, repins the clock
// origin so a running or subsequent play cycle continues from the right
// point, and reports the new position. Seeking never starts playback.
func (e *Engine) SkipTo(t float64, now time.Time) {
	if t < 0 {
		t = 0
	}
	if t > e.duration {
		t = e.duration
	}
	e.cursor = t
	if e.playing {
		e.clockOrigin = now.Add(-secondsToDuration(t))
	}

	active, ok := e.activeVisual(t)
	var activeID uint
	if ok {
		activeID = active.ID
	}
	e.reportPlayhead(t, activeID)
}

// Tick advances one frame of a running play cycle: recompute elapsed from
// the wall clock, detect end of scene, then synchronize video before audio.
// A tick while paused is a no-op.
func (e *Engine) Tick(now time.Time) {
	if !e.playing {
		return
	}

	elapsed := now.Sub(e.clockOrigin).Seconds()
	if elapsed >= e.duration {
		// End of the play cycle: rewind and stop everything. The next Play
		// starts over from zero.
		e.cursor = 0
		e.playing = false
		e.pauseAllMedia()
		e.notifyPlaying()
		return
	}

	e.cursor = elapsed

	active, ok := e.activeVisual(elapsed)
	var activeID uint
	if ok {
		activeID = active.ID
		e.syncVideo(active, elapsed)
	}
	e.syncAudio(elapsed)
	e.reportPlayhead(elapsed, activeID)
}

// ActiveClip returns the visual clip under the cursor, with the trailing
// last-segment fallback.
func (e *Engine) ActiveClip() (VisualClip, bool) {
	return e.activeVisual(e.cursor)
}

// activeVisual selects the clip whose window contains t. When no window
// matches (trailing-edge rounding, gaps during editing) the last segment
// stands in.
func (e *Engine) activeVisual(t float64) (VisualClip, bool) {
	for _, clip := range e.visual {
		if clip.Contains(t) {
			return clip, true
		}
	}
	if n := len(e.visual); n > 0 {
		return e.visual[n-1], true
	}
	return VisualClip{}, false
}

// syncVideo drives the single video element onto the active clip. Source
// swaps always hard-seek; otherwise native playback runs uncorrected until
// drift exceeds the threshold, avoiding constant micro-seeks.
func (e *Engine) syncVideo(clip VisualClip, elapsed float64) {
	video := e.media.Video()
	if video == nil {
		return
	}
	if !clip.HasVideo {
		// A still frame is showing; nothing to keep in sync.
		if !video.Paused() {
			video.Pause()
		}
		return
	}

	local := elapsed - clip.Start + clip.TrimStart
	if video.Source() != clip.MediaURL {
		video.SetSource(clip.MediaURL)
		video.SeekTo(local)
		video.Play()
		return
	}

	if math.Abs(video.CurrentTime()-local) > e.drift {
		video.SeekTo(local)
	}
	if video.Paused() {
		video.Play()
	}
}

// syncAudio drives every audio clip's element from the cursor. Inside a
// clip's window a paused element is seeked and started; a playing element is
// only hard-seeked past the drift threshold, with no pause/play toggle, so
// correction stays inaudible. Outside the window the element is paused.
func (e *Engine) syncAudio(elapsed float64) {
	for _, clip := range e.audio.All() {
		if clip.URL == "" {
			continue
		}
		el := e.media.Lookup(clip.ID, clip.URL)
		if el == nil {
			continue
		}

		st := e.TrackState(clip.Track)
		if st.Enabled {
			el.SetVolume(st.Volume)
		} else {
			el.SetVolume(0)
		}
		if !st.Enabled {
			if !el.Paused() {
				el.Pause()
			}
			continue
		}

		if clip.Contains(elapsed) {
			local := elapsed - clip.Start + clip.TrimStart
			if el.Paused() {
				el.SeekTo(local)
				el.Play()
			} else if math.Abs(el.CurrentTime()-local) > e.drift {
				el.SeekTo(local)
			}
		} else if !el.Paused() {
			el.Pause()
		}
	}
}

// pauseAllMedia halts the video element and every mounted audio element
func (e *Engine) pauseAllMedia() {
	if video := e.media.Video(); video != nil && !video.Paused() {
		video.Pause()
	}
	for _, clip := range e.audio.All() {
		if clip.URL == "" {
			continue
		}
		if el := e.media.Lookup(clip.ID, clip.URL); el != nil && !el.Paused() {
			el.Pause()
		}
	}
}

func (e *Engine) reportPlayhead(elapsed float64, activeID uint) {
	if e.cb.OnPlayhead != nil {
		e.cb.OnPlayhead(elapsed, activeID)
	}
}

func (e *Engine) notifyPlaying() {
	if e.cb.OnPlayingChange != nil {
		e.cb.OnPlayingChange(e.playing)
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
