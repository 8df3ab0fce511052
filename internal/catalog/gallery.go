package catalog

// GalleryItem is a curated artwork shown on the gallery page. The gallery
// doubles as the deterministic fallback pool for image synthesis when the
// generation service is unavailable.
type GalleryItem struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Style   string `json:"style"`
	Subject string `json:"subject"`
	Palette string `json:"palette"`
	Prompt  string `json:"prompt"`
}

var GalleryItems = []GalleryItem{
	{
		ID:      "gallery-1",
		URL:     "/images/gallery/art-1.jpg",
		Title:   "Golden Hour Abstraction",
		Style:   "abstract",
		Subject: "landscapes",
		Palette: "warm-sunset",
		Prompt:  "Abstract painting with warm sunset tones, golden orange and coral",
	},
	{
		ID:      "gallery-2",
		URL:     "/images/gallery/art-2.jpg",
		Title:   "Calm Waters",
		Style:   "illustrated",
		Subject: "landscapes",
		Palette: "cool-ocean",
		Prompt:  "Serene ocean seascape, cool blue tones, calm waves",
	},
	{
		ID:      "gallery-3",
		URL:     "/images/gallery/art-3.jpg",
		Title:   "Earth Geometry",
		Style:   "minimal",
		Subject: "geometric",
		Palette: "earth-stone",
		Prompt:  "Minimalist geometric art, earth tones and neutral colors",
	},
	{
		ID:      "gallery-4",
		URL:     "/images/gallery/art-4.jpg",
		Title:   "Botanical Study",
		Style:   "illustrated",
		Subject: "florals",
		Palette: "botanical",
		Prompt:  "Lush botanical illustration, green leaves and flowers",
	},
	{
		ID:      "gallery-5",
		URL:     "/images/gallery/art-5.jpg",
		Title:   "Mountain Mist",
		Style:   "realistic",
		Subject: "landscapes",
		Palette: "warm-sunset",
		Prompt:  "Dramatic mountain landscape, misty peaks at golden hour",
	},
	{
		ID:      "gallery-6",
		URL:     "/images/gallery/art-6.jpg",
		Title:   "Dreamscape",
		Style:   "surreal",
		Subject: "still-life",
		Palette: "vibrant-pop",
		Prompt:  "Bold surrealist painting, dreamlike floating objects",
	},
	{
		ID:      "gallery-7",
		URL:     "/images/gallery/art-7.jpg",
		Title:   "Garden Roses",
		Style:   "realistic",
		Subject: "florals",
		Palette: "warm-sunset",
		Prompt:  "Elegant floral still life, roses and peonies in soft pastels",
	},
	{
		ID:      "gallery-8",
		URL:     "/images/gallery/art-8.jpg",
		Title:   "Cosmic Nebula",
		Style:   "abstract",
		Subject: "space",
		Palette: "cool-ocean",
		Prompt:  "Cosmic space nebula, deep blues and purples with star clusters",
	},
}
