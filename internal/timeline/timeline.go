// Package timeline derives flat, positioned clip sets from scene data and
// synchronizes playback of the backing media against a virtual cursor. All
// times are float64 seconds on the scene's timeline unless noted otherwise.
//
// Nothing in this package is safe for concurrent use. Every type here is
// owned by a single playback session which serializes access through its
// event loop.
package timeline

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Track identifies one audio track category or the single video track
type Track string

const (
	TrackVideo       Track = "video"
	TrackVoiceover   Track = "voiceover"
	TrackDescription Track = "description"
	TrackDialogue    Track = "dialogue"
	TrackMusic       Track = "music"
	TrackEffects     Track = "sfx"
)

// AudioTrackOrder lists the audio categories in their fixed sync order
var AudioTrackOrder = []Track{TrackVoiceover, TrackDescription, TrackDialogue, TrackMusic, TrackEffects}

// IsAudio reports whether the track is an audio category
func (t Track) IsAudio() bool {
	switch t {
	case TrackVoiceover, TrackDescription, TrackDialogue, TrackMusic, TrackEffects:
		return true
	}
	return false
}

// Valid reports whether the track is a known category
func (t Track) Valid() bool {
	return t == TrackVideo || t.IsAudio()
}

// Clip is a positioned unit of audio belonging to exactly one track category
type Clip struct {
	// ID encodes the logical slot and the source URL, so the same slot
	// pointing at a regenerated URL yields a different clip identity
	ID        string  `json:"id"`
	Track     Track   `json:"track"`
	URL       string  `json:"url"`
	Label     string  `json:"label,omitempty"` // Human-readable, e.g. character name
	Start     float64 `json:"start"`
	Duration  float64 `json:"duration"`
	TrimStart float64 `json:"trim_start,omitempty"` // Source offset applied when mapping timeline to media time
}

// End returns the clip's timeline end
func (c Clip) End() float64 {
	return c.Start + c.Duration
}

// Contains reports whether t falls inside the clip's half-open [start, end) window
func (c Clip) Contains(t float64) bool {
	return t >= c.Start && t < c.End()
}

// ClipID builds a flattened-set identifier from a logical slot and its source URL
func ClipID(slot, url string) string {
	h := fnv.New32a()
	h.Write([]byte(url))
	return fmt.Sprintf("%s@%08x", slot, h.Sum32())
}

// SplitClipID returns the logical slot encoded in a clip identifier
func SplitClipID(id string) (slot, urlHash string) {
	i := strings.LastIndex(id, "@")
	if i < 0 {
		return id, ""
	}
	return id[:i], id[i+1:]
}

// VisualClip is one positioned clip on the video track
type VisualClip struct {
	ID             uint    `json:"id"` // Segment database ID
	UUID           string  `json:"uuid"`
	MediaURL       string  `json:"media_url"` // Video URL, or the thumbnail when no video exists yet
	ThumbnailURL   string  `json:"thumbnail_url,omitempty"`
	HasVideo       bool    `json:"has_video"`
	Start          float64 `json:"start"`
	Duration       float64 `json:"duration"`
	TrimStart      float64 `json:"trim_start,omitempty"`
	Status         string  `json:"status"`
	Position       int     `json:"position"`
	IsEstablishing bool    `json:"is_establishing,omitempty"`
	ShotNumber     int     `json:"shot_number,omitempty"`
}

// End returns the clip's timeline end
func (v VisualClip) End() float64 {
	return v.Start + v.Duration
}

// Contains reports whether t falls inside the clip's half-open [start, end) window
func (v VisualClip) Contains(t float64) bool {
	return t >= v.Start && t < v.End()
}

// AudioTrackSet is the flattened audio description for one language
type AudioTrackSet struct {
	Voiceover   *Clip  `json:"voiceover,omitempty"`
	Description *Clip  `json:"description,omitempty"`
	Dialogue    []Clip `json:"dialogue,omitempty"`
	Music       *Clip  `json:"music,omitempty"`
	Effects     []Clip `json:"effects,omitempty"`
}

// All returns every clip in the set, copied, in the fixed sync order:
// voiceover, description, dialogue, music, effects.
func (s AudioTrackSet) All() []Clip {
	clips := make([]Clip, 0, 3+len(s.Dialogue)+len(s.Effects))
	if s.Voiceover != nil {
		clips = append(clips, *s.Voiceover)
	}
	if s.Description != nil {
		clips = append(clips, *s.Description)
	}
	clips = append(clips, s.Dialogue...)
	if s.Music != nil {
		clips = append(clips, *s.Music)
	}
	clips = append(clips, s.Effects...)
	return clips
}

// URLs returns the distinct source URLs referenced by the set, in sync order
func (s AudioTrackSet) URLs() []string {
	seen := make(map[string]struct{})
	var urls []string
	for _, clip := range s.All() {
		if clip.URL == "" {
			continue
		}
		if _, ok := seen[clip.URL]; ok {
			continue
		}
		seen[clip.URL] = struct{}{}
		urls = append(urls, clip.URL)
	}
	return urls
}

// Find returns the clip with the given id, if present
func (s AudioTrackSet) Find(id string) (Clip, bool) {
	for _, clip := range s.All() {
		if clip.ID == id {
			return clip, true
		}
	}
	return Clip{}, false
}
