package profile

// StyleProfile is the persisted record produced by the style-discovery quiz.
// It is created and overwritten wholesale; prompt enhancement and room
// mockups only ever read it.
type StyleProfile struct {
	Palettes []string `json:"palettes"`
	Styles   []string `json:"styles"`
	Subjects []string `json:"subjects"`
	Mood     string   `json:"mood,omitempty"`
	Room     string   `json:"room,omitempty"`
}

// Complete reports whether the quiz populated every field. Mood and room are
// single-valued; the list fields need at least one entry.
func (p StyleProfile) Complete() bool {
	return len(p.Palettes) > 0 &&
		len(p.Styles) > 0 &&
		len(p.Subjects) > 0 &&
		p.Mood != "" &&
		p.Room != ""
}
