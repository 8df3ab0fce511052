package prompt

import "strings"

// Modifier is a stackable direction tag used to steer refinement without
// discarding the base prompt.
type Modifier struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Suffix string `json:"suffix"`
}

var Modifiers = []Modifier{
	{ID: "warmer", Label: "Warmer", Suffix: "with warmer golden tones"},
	{ID: "cooler", Label: "Cooler", Suffix: "with cooler blue tones"},
	{ID: "more-dramatic", Label: "More Dramatic", Suffix: "with more dramatic contrast and lighting"},
	{ID: "more-subtle", Label: "More Subtle", Suffix: "with softer, more subtle tones"},
	{ID: "more-detailed", Label: "More Detailed", Suffix: "with more intricate detail and texture"},
	{ID: "more-abstract", Label: "More Abstract", Suffix: "in a more abstract, less literal style"},
	{ID: "brighter", Label: "Brighter", Suffix: "with brighter, more luminous lighting"},
	{ID: "darker", Label: "Darker", Suffix: "with deeper, moodier shadows"},
}

// ModifierByID returns the modifier for the id.
func ModifierByID(id string) (Modifier, bool) {
	for _, m := range Modifiers {
		if m.ID == id {
			return m, true
		}
	}
	return Modifier{}, false
}

// ApplyModifiers appends the suffixes of the active modifier ids to the base
// prompt. Unknown ids are skipped so a stale client cannot break generation.
func ApplyModifiers(base string, ids []string) string {
	parts := []string{base}
	for _, id := range ids {
		if m, ok := ModifierByID(id); ok {
			parts = append(parts, m.Suffix)
		}
	}
	return strings.Join(parts, ", ")
}
