package models

import (
	"encoding/json"
	"testing"
)

func TestAudioSourceDecodeShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want AudioSource
	}{
		{
			name: "bare url string",
			raw:  `"https://cdn.example.com/audio/vo.mp3"`,
			want: AudioSource{URL: "https://cdn.example.com/audio/vo.mp3"},
		},
		{
			name: "full object",
			raw:  `{"url":"https://cdn.example.com/audio/vo.mp3","start":2.5,"duration":8,"trim_start":0.5}`,
			want: AudioSource{URL: "https://cdn.example.com/audio/vo.mp3", Start: 2.5, Duration: 8, TrimStart: 0.5},
		},
		{
			name: "null",
			raw:  `null`,
			want: AudioSource{},
		},
		{
			name: "unexpected number collapses to zero",
			raw:  `42`,
			want: AudioSource{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got AudioSource
			if err := json.Unmarshal([]byte(tt.raw), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNarrationVariantResolution(t *testing.T) {
	raw := `{
		"url": "https://cdn.example.com/audio/vo-legacy.mp3",
		"start": 1,
		"duration": 10,
		"languages": {
			"es": {"url": "https://cdn.example.com/audio/vo-es.mp3", "duration": 11},
			"fr": "https://cdn.example.com/audio/vo-fr.mp3"
		}
	}`

	var doc NarrationDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	tests := []struct {
		name     string
		language string
		want     AudioSource
	}{
		{
			// No "en" variant, so the legacy URL serves the default language
			// with the document-level placement.
			name:     "default language falls back to legacy url",
			language: DefaultLanguage,
			want:     AudioSource{URL: "https://cdn.example.com/audio/vo-legacy.mp3", Start: 1, Duration: 10},
		},
		{
			name:     "variant overrides duration but inherits start",
			language: "es",
			want:     AudioSource{URL: "https://cdn.example.com/audio/vo-es.mp3", Start: 1, Duration: 11},
		},
		{
			name:     "string variant inherits all placement",
			language: "fr",
			want:     AudioSource{URL: "https://cdn.example.com/audio/vo-fr.mp3", Start: 1, Duration: 10},
		},
		{
			name:     "unknown language resolves to nothing",
			language: "de",
			want:     AudioSource{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.Variant(tt.language); got != tt.want {
				t.Errorf("Variant(%q) = %+v, want %+v", tt.language, got, tt.want)
			}
		})
	}
}

func TestNarrationLegacyOnlyForDefaultLanguage(t *testing.T) {
	var doc NarrationDoc
	raw := `{"url": "https://cdn.example.com/audio/vo.mp3", "duration": 6}`
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got := doc.Variant("es"); !got.Empty() {
		t.Errorf("Variant(es) = %+v, want empty for non-default language", got)
	}
	if got := doc.Variant(DefaultLanguage); got.URL != "https://cdn.example.com/audio/vo.mp3" {
		t.Errorf("Variant(en).URL = %q, want legacy url", got.URL)
	}
}

func TestSceneAudioDocDecode(t *testing.T) {
	raw := `{
		"narration": "https://cdn.example.com/audio/vo.mp3",
		"dialogue": [
			{"id": "line-1", "character": "Mara", "start": 2, "url": "https://cdn.example.com/audio/line-1.mp3"},
			{"id": "line-2", "character": "Felix", "languages": {"en": {"url": "https://cdn.example.com/audio/line-2.mp3", "start": 5}}}
		],
		"music": {"url": "https://cdn.example.com/audio/theme.mp3", "duration": 30},
		"effects": [
			"https://cdn.example.com/audio/door.mp3",
			{"id": "fx-glass", "label": "glass break", "url": "https://cdn.example.com/audio/glass.mp3", "start": 12}
		]
	}`

	var doc SceneAudioDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if doc.Narration.URL != "https://cdn.example.com/audio/vo.mp3" {
		t.Errorf("Narration.URL = %q, want bare-string promotion", doc.Narration.URL)
	}
	if len(doc.Dialogue) != 2 {
		t.Fatalf("len(Dialogue) = %d, want 2", len(doc.Dialogue))
	}
	if got := doc.Dialogue[0].Variant(DefaultLanguage); got.URL != "https://cdn.example.com/audio/line-1.mp3" || got.Start != 2 {
		t.Errorf("Dialogue[0].Variant(en) = %+v, want legacy url at start 2", got)
	}
	if got := doc.Dialogue[1].Variant(DefaultLanguage); got.Start != 5 {
		t.Errorf("Dialogue[1].Variant(en).Start = %v, want variant-level 5", got.Start)
	}
	if doc.Music.Duration != 30 {
		t.Errorf("Music.Duration = %v, want 30", doc.Music.Duration)
	}
	if len(doc.Effects) != 2 {
		t.Fatalf("len(Effects) = %d, want 2", len(doc.Effects))
	}
	if doc.Effects[0].URL != "https://cdn.example.com/audio/door.mp3" {
		t.Errorf("Effects[0].URL = %q, want bare-string promotion", doc.Effects[0].URL)
	}
	if doc.Effects[1].Start != 12 {
		t.Errorf("Effects[1].Start = %v, want 12", doc.Effects[1].Start)
	}
}

func TestSceneAudioDocScan(t *testing.T) {
	var doc SceneAudioDoc
	if err := doc.Scan([]byte(`{"music": "https://cdn.example.com/audio/theme.mp3"}`)); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if doc.Music.URL != "https://cdn.example.com/audio/theme.mp3" {
		t.Errorf("Music.URL after Scan = %q", doc.Music.URL)
	}

	if err := doc.Scan(12345); err == nil {
		t.Error("Scan() with non-bytes value should fail")
	}

	if err := doc.Scan(nil); err != nil {
		t.Errorf("Scan(nil) error = %v, want nil", err)
	}
}
