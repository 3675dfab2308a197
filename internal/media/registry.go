package media

import "log"

// Key identifies one mounted element. Keying on clip AND source means a clip
// whose audio was regenerated under a new URL mounts fresh instead of
// reusing the stale element.
type Key struct {
	ClipID string
	URL    string
}

// Factory mounts a new element for a clip source
type Factory func(clipID, url string) Element

// Registry owns the mounted audio elements of one playback session. It is
// not safe for concurrent use: the owning session serializes access through
// its event loop, and only that loop mounts, sweeps, or closes.
type Registry struct {
	factory  Factory
	elements map[Key]Element
}

// NewRegistry returns an empty registry. A nil factory defaults to bare
// clock elements.
func NewRegistry(factory Factory) *Registry {
	if factory == nil {
		factory = func(clipID, url string) Element {
			return NewClockElement(url)
		}
	}
	return &Registry{
		factory:  factory,
		elements: make(map[Key]Element),
	}
}

// Ensure returns the element for the clip source, mounting one if needed
func (r *Registry) Ensure(clipID, url string) Element {
	key := Key{ClipID: clipID, URL: url}
	if el, ok := r.elements[key]; ok {
		return el
	}
	el := r.factory(clipID, url)
	r.elements[key] = el
	log.Printf("[DEBUG] Mounted media element for clip %s", clipID)
	return el
}

// Lookup returns the mounted element for the clip source, or nil. It never
// mounts; mounting happens when a session applies a new track set.
func (r *Registry) Lookup(clipID, url string) Element {
	return r.elements[Key{ClipID: clipID, URL: url}]
}

// Sweep closes and drops every element whose key is absent from live,
// returning the number released
func (r *Registry) Sweep(live map[Key]struct{}) int {
	released := 0
	for key, el := range r.elements {
		if _, ok := live[key]; ok {
			continue
		}
		el.Close()
		delete(r.elements, key)
		released++
	}
	if released > 0 {
		log.Printf("[DEBUG] Swept %d unreferenced media elements", released)
	}
	return released
}

// Close releases every mounted element
func (r *Registry) Close() {
	for key, el := range r.elements {
		el.Close()
		delete(r.elements, key)
	}
}

// Len returns the number of mounted elements
func (r *Registry) Len() int {
	return len(r.elements)
}
