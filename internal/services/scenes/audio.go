package scenes

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/cutroom/timeline-api/internal/models"
	"github.com/cutroom/timeline-api/internal/timeline"
)

// UpdateAudioClipTiming rewrites the timeline placement of one audio clip
// inside the scene's audio document. Placement is slot-scoped and language
// independent: the document-level start/duration is written and per-language
// overrides of the changed fields are cleared, so every language take of the
// slot lands at the same spot.
func (s *Service) UpdateAudioClipTiming(ctx context.Context, sceneID uint, clipID string, start, duration *float64) error {
	if start == nil && duration == nil {
		return NewValidationError("timing", "start or duration required")
	}

	scene, err := s.repository.GetSceneByID(ctx, sceneID)
	if err != nil {
		return err
	}

	doc := scene.Audio
	slot, _ := timeline.SplitClipID(clipID)

	applied := false
	switch {
	case slot == "voiceover":
		applied = retimeNarration(&doc.Narration, start, duration)
	case slot == "description":
		applied = retimeNarration(&doc.Description, start, duration)
	case strings.HasPrefix(slot, "dialogue/"):
		if i := dialogueIndex(doc.Dialogue, strings.TrimPrefix(slot, "dialogue/")); i >= 0 {
			retimeDialogue(&doc.Dialogue[i], start, duration)
			applied = true
		}
	case slot == "music":
		if !doc.Music.Empty() {
			retimeSource(&doc.Music, start, duration)
			applied = true
		}
	case strings.HasPrefix(slot, "sfx/"):
		if i := effectIndex(doc.Effects, strings.TrimPrefix(slot, "sfx/")); i >= 0 {
			fx := &doc.Effects[i]
			if start != nil {
				fx.Start = clampStart(*start)
			}
			if duration != nil {
				fx.Duration = clampDuration(*duration)
			}
			applied = true
		}
	}

	if !applied {
		return NewNotFoundError("clip", clipID)
	}

	if err := s.repository.UpdateSceneAudio(ctx, scene.ID, doc); err != nil {
		return err
	}

	log.Printf("[DEBUG] Audio clip %s retimed on scene %d", clipID, sceneID)
	return nil
}

// CorrectAudioDuration fills in the duration of the clip the id points at,
// once the real media duration has been observed. Unlike timing updates this
// is URL-addressed: the id's URL hash must still match the document, so a
// probe result for a since-regenerated URL is rejected. Entries whose
// duration is already known are left alone.
func (s *Service) CorrectAudioDuration(ctx context.Context, sceneID uint, clipID string, observed float64) error {
	if observed <= 0 {
		return NewValidationError("duration", "must be positive")
	}

	scene, err := s.repository.GetSceneByID(ctx, sceneID)
	if err != nil {
		return err
	}

	doc := scene.Audio
	slot, _ := timeline.SplitClipID(clipID)

	matched, changed := false, false
	switch {
	case slot == "voiceover":
		matched, changed = correctNarration(&doc.Narration, slot, clipID, observed)
	case slot == "description":
		matched, changed = correctNarration(&doc.Description, slot, clipID, observed)
	case strings.HasPrefix(slot, "dialogue/"):
		if i := dialogueIndex(doc.Dialogue, strings.TrimPrefix(slot, "dialogue/")); i >= 0 {
			matched, changed = correctDialogue(&doc.Dialogue[i], slot, clipID, observed)
		}
	case slot == "music":
		if !doc.Music.Empty() && timeline.ClipID(slot, doc.Music.URL) == clipID {
			matched = true
			if doc.Music.Duration == 0 {
				doc.Music.Duration = observed
				changed = true
			}
		}
	case strings.HasPrefix(slot, "sfx/"):
		if i := effectIndex(doc.Effects, strings.TrimPrefix(slot, "sfx/")); i >= 0 {
			fx := &doc.Effects[i]
			if timeline.ClipID(slot, fx.URL) == clipID {
				matched = true
				if fx.Duration == 0 {
					fx.Duration = observed
					changed = true
				}
			}
		}
	}

	if !matched {
		return NewNotFoundError("clip", clipID)
	}
	if !changed {
		return nil
	}

	if err := s.repository.UpdateSceneAudio(ctx, scene.ID, doc); err != nil {
		return err
	}

	log.Printf("[INFO] Corrected duration of clip %s on scene %d to %.2fs", clipID, sceneID, observed)
	return nil
}

func clampStart(v float64) float64 {
	return math.Max(0, v)
}

func clampDuration(v float64) float64 {
	return math.Max(timeline.MinClipDuration, v)
}

func retimeNarration(n *models.NarrationDoc, start, duration *float64) bool {
	if n.URL == "" && len(n.Languages) == 0 {
		return false
	}
	if start != nil {
		n.Start = clampStart(*start)
	}
	if duration != nil {
		n.Duration = clampDuration(*duration)
	}
	for code, src := range n.Languages {
		if start != nil {
			src.Start = 0
		}
		if duration != nil {
			src.Duration = 0
		}
		n.Languages[code] = src
	}
	return true
}

func retimeDialogue(line *models.DialogueLine, start, duration *float64) {
	if start != nil {
		line.Start = clampStart(*start)
	}
	if duration != nil {
		line.Duration = clampDuration(*duration)
	}
	for code, src := range line.Languages {
		if start != nil {
			src.Start = 0
		}
		if duration != nil {
			src.Duration = 0
		}
		line.Languages[code] = src
	}
}

func retimeSource(src *models.AudioSource, start, duration *float64) {
	if start != nil {
		src.Start = clampStart(*start)
	}
	if duration != nil {
		src.Duration = clampDuration(*duration)
	}
}

func correctNarration(n *models.NarrationDoc, slot, clipID string, observed float64) (matched, changed bool) {
	if n.URL != "" && timeline.ClipID(slot, n.URL) == clipID {
		matched = true
		if n.Duration == 0 {
			n.Duration = observed
			changed = true
		}
	}
	for code, src := range n.Languages {
		if src.Empty() || timeline.ClipID(slot, src.URL) != clipID {
			continue
		}
		matched = true
		// A variant with a zero duration inherits the document level value,
		// so only fill it when that is zero too
		if src.Duration == 0 && n.Duration == 0 {
			src.Duration = observed
			n.Languages[code] = src
			changed = true
		}
	}
	return matched, changed
}

func correctDialogue(line *models.DialogueLine, slot, clipID string, observed float64) (matched, changed bool) {
	if line.URL != "" && timeline.ClipID(slot, line.URL) == clipID {
		matched = true
		if line.Duration == 0 {
			line.Duration = observed
			changed = true
		}
	}
	for code, src := range line.Languages {
		if src.Empty() || timeline.ClipID(slot, src.URL) != clipID {
			continue
		}
		matched = true
		if src.Duration == 0 && line.Duration == 0 {
			src.Duration = observed
			line.Languages[code] = src
			changed = true
		}
	}
	return matched, changed
}

// dialogueIndex resolves the slot id of a dialogue line: an explicit line id
// wins, the positional fallback only covers lines without one.
func dialogueIndex(lines []models.DialogueLine, slotID string) int {
	for i := range lines {
		if lines[i].ID != "" && lines[i].ID == slotID {
			return i
		}
	}
	if strings.HasPrefix(slotID, "line-") {
		if idx, err := strconv.Atoi(strings.TrimPrefix(slotID, "line-")); err == nil &&
			idx >= 0 && idx < len(lines) && lines[idx].ID == "" {
			return idx
		}
	}
	return -1
}

func effectIndex(effects []models.EffectDoc, slotID string) int {
	for i := range effects {
		if effects[i].ID != "" && effects[i].ID == slotID {
			return i
		}
	}
	if strings.HasPrefix(slotID, "fx-") {
		if idx, err := strconv.Atoi(strings.TrimPrefix(slotID, "fx-")); err == nil &&
			idx >= 0 && idx < len(effects) && effects[idx].ID == "" {
			return idx
		}
	}
	return -1
}
