package timeline

import (
	"math"
	"time"
)

// MinClipDuration is the floor any drag-produced duration is clamped to, seconds
const MinClipDuration = 0.5

// DragKind distinguishes the three direct-manipulation edits
type DragKind string

const (
	DragMove        DragKind = "move"
	DragResizeLeft  DragKind = "resize-left"  // Trim the start edge, end stays fixed
	DragResizeRight DragKind = "resize-right" // Trim the end edge, start stays fixed
)

// Valid reports whether the kind is one of the known edits
func (k DragKind) Valid() bool {
	return k == DragMove || k == DragResizeLeft || k == DragResizeRight
}

// Delta is the transient placement offset a drag produces for one clip
type Delta struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// IsZero reports whether the delta moves nothing
func (d Delta) IsZero() bool {
	return d.Start == 0 && d.Duration == 0
}

// Commit is a settled drag ready for persistence, carrying the final
// absolute placement.
type Commit struct {
	Track    Track
	ClipID   string
	Start    float64
	Duration float64
}

// dragSession captures the state of the single in-progress pointer drag
type dragSession struct {
	kind     DragKind
	track    Track
	clipID   string
	originX  float64
	start    float64 // Placement at drag start
	duration float64
}

// pendingCommit is a finished drag waiting out its debounce window, then its
// grace delay before the local override is dropped.
type pendingCommit struct {
	commit    Commit
	session   dragSession
	commitAt  time.Time // Debounce deadline
	clearAt   time.Time // Grace deadline, set once committed
	committed bool
}

// DragEngine tracks the active pointer drag and the per-clip placement
// overrides left behind while persistence round-trips. Base clip data is
// never mutated; callers render with EffectiveStart/EffectiveDuration.
//
// The engine is synchronous: callers pass the current time to End and
// Advance, and arm their own timer from NextDeadline. Only one drag is
// active at a time (single pointer), but several clips may carry settled
// deltas concurrently while their commits are in flight.
type DragEngine struct {
	debounce time.Duration
	grace    time.Duration

	active  *dragSession
	deltas  map[string]Delta
	pending []pendingCommit
}

// NewDragEngine returns a drag engine with the given commit debounce window
// and post-commit grace delay.
func NewDragEngine(debounce, grace time.Duration) *DragEngine {
	return &DragEngine{
		debounce: debounce,
		grace:    grace,
		deltas:   make(map[string]Delta),
	}
}

// Begin opens a drag session, replacing any session already active
func (e *DragEngine) Begin(kind DragKind, track Track, clipID string, pointerX, clipStart, clipDuration float64) {
	e.active = &dragSession{
		kind:     kind,
		track:    track,
		clipID:   clipID,
		originX:  pointerX,
		start:    clipStart,
		duration: clipDuration,
	}
}

// Dragging reports whether a drag session is open
func (e *DragEngine) Dragging() bool {
	return e.active != nil
}

// Move updates the active drag from a pointer position. The delta is clamped
// per edit kind: resize-left keeps the end edge fixed and never pushes the
// start below zero or the duration below the floor; resize-right floors the
// duration; move is unclamped (the effective start floors at zero on read).
func (e *DragEngine) Move(pointerX, pixelsPerSecond float64) {
	s := e.active
	if s == nil || pixelsPerSecond <= 0 {
		return
	}

	deltaTime := (pointerX - s.originX) / pixelsPerSecond

	var d Delta
	switch s.kind {
	case DragMove:
		d.Start = deltaTime
	case DragResizeLeft:
		d.Start = clampFloat(deltaTime, -s.start, s.duration-MinClipDuration)
		d.Duration = -d.Start
	case DragResizeRight:
		d.Duration = math.Max(MinClipDuration-s.duration, deltaTime)
	}
	e.deltas[s.clipID] = d
}

// End closes the active drag. A nonzero delta schedules exactly one commit
// after the debounce window; a zero delta just drops the override. Returns
// true when a commit was scheduled.
func (e *DragEngine) End(now time.Time) bool {
	s := e.active
	if s == nil {
		return false
	}
	e.active = nil

	d, ok := e.deltas[s.clipID]
	if !ok || d.IsZero() {
		delete(e.deltas, s.clipID)
		return false
	}

	commit := Commit{
		Track:    s.track,
		ClipID:   s.clipID,
		Start:    math.Max(0, s.start+d.Start),
		Duration: math.Max(MinClipDuration, s.duration+d.Duration),
	}

	// Coalesce with an uncommitted pending entry for the same clip
	for i := range e.pending {
		if e.pending[i].commit.ClipID == s.clipID && !e.pending[i].committed {
			e.pending[i].commit = commit
			e.pending[i].session = *s
			e.pending[i].commitAt = now.Add(e.debounce)
			return true
		}
	}

	e.pending = append(e.pending, pendingCommit{
		commit:   commit,
		session:  *s,
		commitAt: now.Add(e.debounce),
	})
	return true
}

// Advance releases commits whose debounce window has closed and drops deltas
// whose grace delay has expired. Callers invoke the persistence callback for
// each returned commit.
func (e *DragEngine) Advance(now time.Time) []Commit {
	var due []Commit
	remaining := e.pending[:0]
	for _, p := range e.pending {
		if !p.committed && !now.Before(p.commitAt) {
			due = append(due, p.commit)
			p.committed = true
			p.clearAt = now.Add(e.grace)
		}
		if p.committed && !now.Before(p.clearAt) {
			// Grace over: the authoritative update has had time to land,
			// drop the local override.
			delete(e.deltas, p.commit.ClipID)
			continue
		}
		remaining = append(remaining, p)
	}
	e.pending = remaining
	return due
}

// NextDeadline returns the earliest pending debounce or grace deadline
func (e *DragEngine) NextDeadline() (time.Time, bool) {
	var next time.Time
	for _, p := range e.pending {
		at := p.commitAt
		if p.committed {
			at = p.clearAt
		}
		if next.IsZero() || at.Before(next) {
			next = at
		}
	}
	return next, !next.IsZero()
}

// Settle releases every not-yet-committed commit immediately and drops every
// override, without waiting out debounce or grace windows. Callers persist
// the returned commits and then refresh their base data, typically before a
// new drag must start from authoritative placements.
func (e *DragEngine) Settle() []Commit {
	var due []Commit
	for _, p := range e.pending {
		if !p.committed {
			due = append(due, p.commit)
		}
	}
	e.pending = nil
	e.deltas = make(map[string]Delta)
	e.active = nil
	return due
}

// Delta returns the override recorded for a clip, if any
func (e *DragEngine) Delta(clipID string) (Delta, bool) {
	d, ok := e.deltas[clipID]
	return d, ok
}

// EffectiveStart returns the rendered start for a clip: base plus any
// override, floored at zero.
func (e *DragEngine) EffectiveStart(clipID string, base float64) float64 {
	d, ok := e.deltas[clipID]
	if !ok {
		return base
	}
	return math.Max(0, base+d.Start)
}

// EffectiveDuration returns the rendered duration for a clip: base plus any
// override, floored at the minimum clip duration.
func (e *DragEngine) EffectiveDuration(clipID string, base float64) float64 {
	d, ok := e.deltas[clipID]
	if !ok {
		return base
	}
	return math.Max(MinClipDuration, base+d.Duration)
}

// Cancel drops the active session, every override, and every pending commit.
// Used when the owning session closes.
func (e *DragEngine) Cancel() {
	e.active = nil
	e.pending = nil
	e.deltas = make(map[string]Delta)
}

func clampFloat(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(v, hi))
}
