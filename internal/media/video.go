package media

import "sync"

// VideoSurface is a session's single video element. Unlike audio elements,
// which mount one per clip, the surface is reused across segments: changing
// the source swaps the backing clock and the position restarts from zero.
type VideoSurface struct {
	mu     sync.Mutex
	source string
	clock  *ClockElement
	opts   []ClockOption
}

// NewVideoSurface returns a surface with no source loaded
func NewVideoSurface(opts ...ClockOption) *VideoSurface {
	return &VideoSurface{
		clock: NewClockElement("", opts...),
		opts:  opts,
	}
}

// Source returns the currently loaded source URL, empty if none
func (v *VideoSurface) Source() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.source
}

// SetSource loads url into the surface. The position resets to zero and the
// surface comes up paused; volume carries over. Setting the current source
// again is a no-op.
func (v *VideoSurface) SetSource(url string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if url == v.source {
		return
	}
	volume := v.clock.Volume()
	v.clock.Close()
	v.source = url
	v.clock = NewClockElement(url, v.opts...)
	v.clock.SetVolume(volume)
}

// URL returns the loaded source URL
func (v *VideoSurface) URL() string {
	return v.Source()
}

// CurrentTime returns the simulated position within the loaded source
func (v *VideoSurface) CurrentTime() float64 {
	return v.current().CurrentTime()
}

// SeekTo repositions within the loaded source
func (v *VideoSurface) SeekTo(t float64) {
	v.current().SeekTo(t)
}

// Play starts the surface
func (v *VideoSurface) Play() {
	v.current().Play()
}

// Pause freezes the surface
func (v *VideoSurface) Pause() {
	v.current().Pause()
}

// Paused reports whether the surface is stopped
func (v *VideoSurface) Paused() bool {
	return v.current().Paused()
}

// Volume returns the surface volume
func (v *VideoSurface) Volume() float64 {
	return v.current().Volume()
}

// SetVolume adjusts the surface volume
func (v *VideoSurface) SetVolume(vol float64) {
	v.current().SetVolume(vol)
}

// Duration returns the loaded source's duration, 0 until known
func (v *VideoSurface) Duration() float64 {
	return v.current().Duration()
}

// Close releases the backing clock
func (v *VideoSurface) Close() {
	v.current().Close()
}

func (v *VideoSurface) current() *ClockElement {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.clock
}
