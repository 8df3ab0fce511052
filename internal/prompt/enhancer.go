package prompt

import (
	"strings"

	"muse/internal/profile"
)

// qualityClause closes every enhanced prompt. Keeping it constant makes the
// enhancement idempotent and golden-testable.
const qualityClause = "Fine art quality, suitable for museum-quality wall art print. High detail, professional composition, beautiful lighting."

var paletteMap = map[string]string{
	"warm-sunset": "warm golden, coral, and amber tones",
	"cool-ocean":  "cool blues, teals, and aqua tones",
	"earth-stone": "earthy browns, tans, and warm neutrals",
	"botanical":   "rich greens, sage, and natural leaf tones",
	"monochrome":  "black, white, and grayscale tones",
	"vibrant-pop": "vivid, saturated, contrasting colors",
}

var styleMap = map[string]string{
	"abstract":    "abstract expressionist style with flowing forms",
	"realistic":   "photorealistic with fine detail and natural lighting",
	"illustrated": "watercolor illustration with soft edges",
	"surreal":     "surrealist dreamlike composition",
	"minimal":     "minimalist clean lines and negative space",
	"retro":       "vintage retro poster aesthetic with bold graphics",
}

var moodMap = map[string]string{
	"calm":    "calm, serene, and meditative atmosphere",
	"bold":    "bold, dramatic, and high-contrast atmosphere",
	"warm":    "warm, cozy, and inviting atmosphere",
	"fresh":   "fresh, energetic, and vibrant atmosphere",
	"elegant": "elegant, refined, and sophisticated atmosphere",
	"playful": "playful, whimsical, and joyful atmosphere",
}

var aspectMap = map[string]string{
	"3:4":  "portrait orientation composition",
	"1:1":  "square balanced composition",
	"4:3":  "landscape orientation composition",
	"16:9": "wide panoramic composition",
}

// Enhance enriches raw user input with the caller's style profile and the
// requested aspect ratio. It is deterministic, has no side effects, and never
// fails: unknown enum values fall back to their literal text.
func Enhance(userInput string, p profile.StyleProfile, aspectRatio string) (enhanced, summary string) {
	styles := joinMapped(p.Styles, styleMap, " blended with ")
	palettes := joinMapped(p.Palettes, paletteMap, " and ")
	mood := ""
	if p.Mood != "" {
		mood = lookupOrLiteral(moodMap, p.Mood)
	}
	aspect := aspectMap[aspectRatio]

	segments := make([]string, 0, 6)
	segments = append(segments, userInput)
	if styles != "" {
		segments = append(segments, "in "+styles)
	}
	if palettes != "" {
		segments = append(segments, "using "+palettes)
	}
	if mood != "" {
		segments = append(segments, "evoking a "+mood)
	}
	if aspect != "" {
		segments = append(segments, "composed for "+aspect)
	}
	segments = append(segments, qualityClause)

	nonEmpty := segments[:0]
	for _, s := range segments {
		if strings.TrimSpace(s) != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}

	firstStyle := "artistic"
	if len(p.Styles) > 0 && p.Styles[0] != "" {
		firstStyle = p.Styles[0]
	}
	return strings.Join(nonEmpty, ". "), userInput + " with " + firstStyle + " style"
}

func joinMapped(keys []string, table map[string]string, sep string) string {
	phrases := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		phrases = append(phrases, lookupOrLiteral(table, k))
	}
	return strings.Join(phrases, sep)
}

func lookupOrLiteral(table map[string]string, key string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return key
}
