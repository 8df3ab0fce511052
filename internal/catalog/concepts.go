package catalog

// StartingConcept is a curated prompt seed offered on the create page.
type StartingConcept struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Prompt   string   `json:"prompt"`
	Styles   []string `json:"styles"`
	Subjects []string `json:"subjects"`
	Moods    []string `json:"moods"`
}

var StartingConcepts = []StartingConcept{
	{
		ID:       "concept-1",
		Title:    "Misty mountain range at dawn",
		Prompt:   "A misty mountain range at dawn with soft golden light breaking through clouds",
		Styles:   []string{"realistic", "illustrated"},
		Subjects: []string{"landscapes"},
		Moods:    []string{"calm", "warm", "elegant"},
	},
	{
		ID:       "concept-2",
		Title:    "Bold geometric composition in warm tones",
		Prompt:   "A bold geometric composition with overlapping shapes in warm sunset tones",
		Styles:   []string{"abstract", "minimal"},
		Subjects: []string{"geometric"},
		Moods:    []string{"bold", "warm"},
	},
	{
		ID:       "concept-3",
		Title:    "Serene botanical garden path",
		Prompt:   "A serene botanical garden path with lush green foliage and dappled sunlight",
		Styles:   []string{"illustrated", "realistic"},
		Subjects: []string{"florals", "landscapes"},
		Moods:    []string{"calm", "fresh"},
	},
	{
		ID:       "concept-4",
		Title:    "Abstract ocean waves at sunset",
		Prompt:   "Abstract ocean waves with flowing colors of coral, gold, and deep blue at sunset",
		Styles:   []string{"abstract", "surreal"},
		Subjects: []string{"landscapes"},
		Moods:    []string{"calm", "elegant"},
	},
	{
		ID:       "concept-5",
		Title:    "Minimalist line art portrait",
		Prompt:   "A minimalist continuous line art portrait with elegant flowing curves on white",
		Styles:   []string{"minimal", "illustrated"},
		Subjects: []string{"portraits"},
		Moods:    []string{"elegant", "calm"},
	},
	{
		ID:       "concept-6",
		Title:    "Vintage travel poster cityscape",
		Prompt:   "A vintage travel poster style cityscape with bold flat colors and retro typography framing",
		Styles:   []string{"retro", "illustrated"},
		Subjects: []string{"architecture"},
		Moods:    []string{"playful", "bold"},
	},
}
