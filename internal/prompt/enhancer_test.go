package prompt

import (
	"strings"
	"testing"

	"muse/internal/profile"
)

func TestEnhanceGoldenScenario(t *testing.T) {
	p := profile.StyleProfile{
		Palettes: []string{"warm-sunset"},
		Styles:   []string{"abstract"},
		Mood:     "calm",
	}
	enhanced, summary := Enhance("a quiet lake", p, "3:4")

	ordered := []string{
		"a quiet lake",
		"abstract expressionist style with flowing forms",
		"warm golden, coral, and amber tones",
		"calm, serene, and meditative atmosphere",
		"portrait orientation composition",
		"Fine art quality",
	}
	last := -1
	for _, phrase := range ordered {
		idx := strings.Index(enhanced, phrase)
		if idx < 0 {
			t.Fatalf("enhanced prompt missing %q: %s", phrase, enhanced)
		}
		if idx < last {
			t.Fatalf("phrase %q out of order in: %s", phrase, enhanced)
		}
		last = idx
	}
	if !strings.Contains(enhanced, ". ") {
		t.Fatalf("segments not joined with '. ': %s", enhanced)
	}
	if want := "a quiet lake with abstract style"; summary != want {
		t.Fatalf("summary = %q, want %q", summary, want)
	}
}

func TestEnhanceIsIdempotent(t *testing.T) {
	p := profile.StyleProfile{
		Palettes: []string{"cool-ocean", "monochrome"},
		Styles:   []string{"minimal", "retro"},
		Mood:     "elegant",
	}
	a1, s1 := Enhance("city skyline", p, "16:9")
	a2, s2 := Enhance("city skyline", p, "16:9")
	if a1 != a2 || s1 != s2 {
		t.Fatalf("same inputs produced different outputs")
	}
	if !strings.Contains(a1, " blended with ") {
		t.Fatalf("multiple styles not joined with 'blended with': %s", a1)
	}
	if !strings.Contains(a1, " and ") {
		t.Fatalf("multiple palettes not joined with 'and': %s", a1)
	}
}

func TestEnhanceUnknownValuesFallBackToLiteral(t *testing.T) {
	p := profile.StyleProfile{
		Palettes: []string{"neon-future"},
		Styles:   []string{"cubist"},
		Mood:     "mysterious",
	}
	enhanced, summary := Enhance("a doorway", p, "2:1")
	for _, literal := range []string{"neon-future", "cubist", "mysterious"} {
		if !strings.Contains(enhanced, literal) {
			t.Fatalf("literal fallback %q missing: %s", literal, enhanced)
		}
	}
	// Unknown aspect ratio contributes no framing clause.
	if strings.Contains(enhanced, "composed for") {
		t.Fatalf("unexpected aspect clause for unknown ratio: %s", enhanced)
	}
	if want := "a doorway with cubist style"; summary != want {
		t.Fatalf("summary = %q, want %q", summary, want)
	}
}

func TestEnhanceEmptyProfile(t *testing.T) {
	enhanced, summary := Enhance("sunflowers", profile.StyleProfile{}, "1:1")
	if !strings.HasPrefix(enhanced, "sunflowers. ") {
		t.Fatalf("prompt should open with user text: %s", enhanced)
	}
	if !strings.Contains(enhanced, "square balanced composition") {
		t.Fatalf("aspect clause missing: %s", enhanced)
	}
	if want := "sunflowers with artistic style"; summary != want {
		t.Fatalf("summary = %q, want %q", summary, want)
	}
}

func TestApplyModifiers(t *testing.T) {
	got := ApplyModifiers("base prompt", []string{"warmer", "unknown", "darker"})
	want := "base prompt, with warmer golden tones, with deeper, moodier shadows"
	if got != want {
		t.Fatalf("ApplyModifiers = %q, want %q", got, want)
	}
	if got := ApplyModifiers("base", nil); got != "base" {
		t.Fatalf("no modifiers should leave base untouched, got %q", got)
	}
}
