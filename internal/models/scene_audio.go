package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"sort"
)

// SceneAudioDoc is the layered audio document stored on a scene. The source
// data arrives in two generations of shapes: a legacy one where narration and
// dialogue carry a single bare URL for the default language, and the current
// one with per-language variants. Decoding is tolerant: malformed entries
// collapse to their zero value instead of failing, so a bad entry reads as
// "no audio" rather than breaking the whole document.
type SceneAudioDoc struct {
	Narration   NarrationDoc   `json:"narration,omitempty"`
	Description NarrationDoc   `json:"description,omitempty"`
	Dialogue    []DialogueLine `json:"dialogue,omitempty"`
	Music       AudioSource    `json:"music,omitempty"`
	Effects     []EffectDoc    `json:"effects,omitempty"`
}

// Value implements driver.Valuer interface for SceneAudioDoc
func (d SceneAudioDoc) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner interface for SceneAudioDoc
func (d *SceneAudioDoc) Scan(value interface{}) error {
	if value == nil {
		*d = SceneAudioDoc{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, d)
}

// URLs returns every audio URL the document references across all languages,
// deduplicated. Variant URLs are visited in sorted language order so the
// result is stable for identical documents.
func (d SceneAudioDoc) URLs() []string {
	seen := make(map[string]struct{})
	var urls []string
	add := func(url string) {
		if url == "" {
			return
		}
		if _, dup := seen[url]; dup {
			return
		}
		seen[url] = struct{}{}
		urls = append(urls, url)
	}
	addVariants := func(variants map[string]AudioSource) {
		codes := make([]string, 0, len(variants))
		for code := range variants {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			add(variants[code].URL)
		}
	}

	add(d.Narration.URL)
	addVariants(d.Narration.Languages)
	add(d.Description.URL)
	addVariants(d.Description.Languages)
	for _, line := range d.Dialogue {
		add(line.URL)
		addVariants(line.Languages)
	}
	add(d.Music.URL)
	for _, fx := range d.Effects {
		add(fx.URL)
	}
	return urls
}

// AudioSource is a single audio reference with optional timing
type AudioSource struct {
	URL       string  `json:"url,omitempty"`
	Start     float64 `json:"start,omitempty"`    // Timeline start in seconds
	Duration  float64 `json:"duration,omitempty"` // Seconds; 0 until observed from the media
	TrimStart float64 `json:"trim_start,omitempty"`
}

// UnmarshalJSON accepts either the legacy bare URL string or the object form.
// Anything else decodes to the zero value.
func (s *AudioSource) UnmarshalJSON(data []byte) error {
	*s = AudioSource{}

	var url string
	if err := json.Unmarshal(data, &url); err == nil {
		s.URL = url
		return nil
	}

	type plain AudioSource
	var obj plain
	if err := json.Unmarshal(data, &obj); err == nil {
		*s = AudioSource(obj)
	}
	return nil
}

// Empty returns true if the source carries no URL
func (s AudioSource) Empty() bool {
	return s.URL == ""
}

// NarrationDoc carries narration-style audio (voiceover or the auxiliary
// description track): a legacy single default-language source, per-language
// variants, or both while a scene is mid-migration.
type NarrationDoc struct {
	URL       string                 `json:"url,omitempty"` // Legacy default-language source
	Start     float64                `json:"start,omitempty"`
	Duration  float64                `json:"duration,omitempty"`
	TrimStart float64                `json:"trim_start,omitempty"`
	Languages map[string]AudioSource `json:"languages,omitempty"`
}

// UnmarshalJSON accepts either the legacy bare URL string or the object form
func (n *NarrationDoc) UnmarshalJSON(data []byte) error {
	*n = NarrationDoc{}

	var url string
	if err := json.Unmarshal(data, &url); err == nil {
		n.URL = url
		return nil
	}

	type plain NarrationDoc
	var obj plain
	if err := json.Unmarshal(data, &obj); err == nil {
		*n = NarrationDoc(obj)
	}
	return nil
}

// Variant resolves the source for a language. The per-language variant wins;
// the legacy single URL stands in for the default language only. Timing falls
// back to the document-level fields when the variant leaves it unset.
func (n NarrationDoc) Variant(language string) AudioSource {
	src, ok := n.Languages[language]
	if !ok || src.Empty() {
		if n.URL == "" || language != DefaultLanguage {
			return AudioSource{}
		}
		src = AudioSource{URL: n.URL}
	}
	if src.Start == 0 {
		src.Start = n.Start
	}
	if src.Duration == 0 {
		src.Duration = n.Duration
	}
	if src.TrimStart == 0 {
		src.TrimStart = n.TrimStart
	}
	return src
}

// DialogueLine is one assigned character line with per-language audio takes
type DialogueLine struct {
	ID        string                 `json:"id,omitempty"`
	Character string                 `json:"character,omitempty"`
	Text      string                 `json:"text,omitempty"`
	Start     float64                `json:"start,omitempty"`
	Duration  float64                `json:"duration,omitempty"`
	TrimStart float64                `json:"trim_start,omitempty"`
	URL       string                 `json:"url,omitempty"` // Legacy default-language source
	Languages map[string]AudioSource `json:"languages,omitempty"`
}

// UnmarshalJSON tolerates malformed entries by decoding them to the zero value
func (l *DialogueLine) UnmarshalJSON(data []byte) error {
	*l = DialogueLine{}

	type plain DialogueLine
	var obj plain
	if err := json.Unmarshal(data, &obj); err == nil {
		*l = DialogueLine(obj)
	}
	return nil
}

// Variant resolves the line's audio for a language, same rules as narration:
// variant URL wins, legacy URL covers the default language, timing falls back
// to the line's own placement fields.
func (l DialogueLine) Variant(language string) AudioSource {
	src, ok := l.Languages[language]
	if !ok || src.Empty() {
		if l.URL == "" || language != DefaultLanguage {
			return AudioSource{}
		}
		src = AudioSource{URL: l.URL}
	}
	if src.Start == 0 {
		src.Start = l.Start
	}
	if src.Duration == 0 {
		src.Duration = l.Duration
	}
	if src.TrimStart == 0 {
		src.TrimStart = l.TrimStart
	}
	return src
}

// EffectDoc is one placed sound effect
type EffectDoc struct {
	ID        string  `json:"id,omitempty"`
	Label     string  `json:"label,omitempty"`
	URL       string  `json:"url,omitempty"`
	Start     float64 `json:"start,omitempty"`
	Duration  float64 `json:"duration,omitempty"`
	TrimStart float64 `json:"trim_start,omitempty"`
}

// UnmarshalJSON accepts a bare URL string (placed at scene start) or the
// object form; malformed entries decode to the zero value.
func (e *EffectDoc) UnmarshalJSON(data []byte) error {
	*e = EffectDoc{}

	var url string
	if err := json.Unmarshal(data, &url); err == nil {
		e.URL = url
		return nil
	}

	type plain EffectDoc
	var obj plain
	if err := json.Unmarshal(data, &obj); err == nil {
		*e = EffectDoc(obj)
	}
	return nil
}
