package timeline

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"

	"github.com/cutroom/timeline-api/internal/models"
)

// BuildAudioTracks projects the scene audio document onto flat, positioned
// clips for one language. The projection is best effort: entries without a
// resolvable URL for the requested language are dropped silently, never
// reported as errors. Only the per-language variants and, for the default
// language, the legacy single-URL fields participate; there is no cross
// language fallback.
func BuildAudioTracks(audio models.SceneAudioDoc, language string) AudioTrackSet {
	var set AudioTrackSet

	if src := audio.Narration.Variant(language); !src.Empty() {
		set.Voiceover = clipFromSource("voiceover", TrackVoiceover, "", src)
	}
	if src := audio.Description.Variant(language); !src.Empty() {
		set.Description = clipFromSource("description", TrackDescription, "", src)
	}

	for i, line := range audio.Dialogue {
		src := line.Variant(language)
		if src.Empty() {
			continue
		}
		slot := line.ID
		if slot == "" {
			slot = "line-" + strconv.Itoa(i)
		}
		set.Dialogue = append(set.Dialogue, *clipFromSource("dialogue/"+slot, TrackDialogue, line.Character, src))
	}

	if !audio.Music.Empty() {
		set.Music = clipFromSource("music", TrackMusic, "", audio.Music)
	}

	for i, fx := range audio.Effects {
		if fx.URL == "" {
			continue
		}
		slot := fx.ID
		if slot == "" {
			slot = "fx-" + strconv.Itoa(i)
		}
		src := models.AudioSource{URL: fx.URL, Start: fx.Start, Duration: fx.Duration, TrimStart: fx.TrimStart}
		set.Effects = append(set.Effects, *clipFromSource("sfx/"+slot, TrackEffects, fx.Label, src))
	}

	return set
}

func clipFromSource(slot string, track Track, label string, src models.AudioSource) *Clip {
	return &Clip{
		ID:        ClipID(slot, src.URL),
		Track:     track,
		URL:       src.URL,
		Label:     label,
		Start:     src.Start,
		Duration:  src.Duration,
		TrimStart: src.TrimStart,
	}
}

// DetectAvailableLanguages returns the sorted union of language codes for
// which any narration, description, or dialogue audio exists. Legacy
// single-URL fields count as the default language.
func DetectAvailableLanguages(audio models.SceneAudioDoc) []string {
	seen := make(map[string]struct{})

	collect := func(legacyURL string, variants map[string]models.AudioSource) {
		if legacyURL != "" {
			seen[models.DefaultLanguage] = struct{}{}
		}
		for code, src := range variants {
			if code != "" && !src.Empty() {
				seen[code] = struct{}{}
			}
		}
	}

	collect(audio.Narration.URL, audio.Narration.Languages)
	collect(audio.Description.URL, audio.Description.Languages)
	for _, line := range audio.Dialogue {
		collect(line.URL, line.Languages)
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// HashAudioURLs fingerprints the set's track and URL pairs. Identical source
// data produces an identical fingerprint; any URL change, addition, or
// removal changes it. Used to detect material track-set changes so dependent
// work (stale-URL housekeeping, element remounts) runs only when needed.
func HashAudioURLs(set AudioTrackSet) string {
	h := fnv.New64a()
	for _, clip := range set.All() {
		h.Write([]byte(clip.Track))
		h.Write([]byte{0})
		h.Write([]byte(clip.URL))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
