package catalog

// SizeOption is a printable size with its base price in cents.
type SizeOption struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	BasePrice int    `json:"base_price"`
}

// MediumOption is a print medium with its upcharge in cents.
type MediumOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Upcharge    int    `json:"upcharge"`
}

// FrameOption is a frame choice. Color is the swatch hex used by clients.
type FrameOption struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Upcharge int    `json:"upcharge"`
	Color    string `json:"color"`
}

// MatOption is a mat choice.
type MatOption struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Upcharge int    `json:"upcharge"`
}

// AspectRatio describes the pixel dimensions generated for a ratio id.
type AspectRatio struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

const (
	// FrameNone is the frameless option. A frameless print cannot carry a mat.
	FrameNone = "none"
	// MatNone is the empty mat option.
	MatNone = "none"
	// DefaultAspectRatio is applied when a request omits the ratio.
	DefaultAspectRatio = "3:4"
)

var Sizes = []SizeOption{
	{ID: "8x10", Label: `8×10"`, BasePrice: 2900},
	{ID: "12x16", Label: `12×16"`, BasePrice: 4900},
	{ID: "16x20", Label: `16×20"`, BasePrice: 6900},
	{ID: "18x24", Label: `18×24"`, BasePrice: 8900},
	{ID: "24x36", Label: `24×36"`, BasePrice: 11900},
	{ID: "30x40", Label: `30×40"`, BasePrice: 15900},
}

var Mediums = []MediumOption{
	{ID: "paper", Label: "Fine Art Paper", Description: "Museum-quality archival matte", Upcharge: 0},
	{ID: "canvas", Label: "Canvas", Description: "Gallery-wrapped, ready to hang", Upcharge: 2000},
	{ID: "acrylic", Label: "Acrylic", Description: "High-gloss modern finish", Upcharge: 4000},
	{ID: "metal", Label: "Metal", Description: "Contemporary ultra-durable", Upcharge: 5000},
}

var Frames = []FrameOption{
	{ID: FrameNone, Label: "No Frame", Upcharge: 0, Color: "transparent"},
	{ID: "black", Label: "Black", Upcharge: 3000, Color: "#1a1a1a"},
	{ID: "white", Label: "White", Upcharge: 3000, Color: "#f5f5f0"},
	{ID: "natural", Label: "Natural Wood", Upcharge: 4000, Color: "#c4a882"},
	{ID: "walnut", Label: "Walnut", Upcharge: 4500, Color: "#5c3d2e"},
	{ID: "float", Label: "Gallery Float", Upcharge: 5500, Color: "#2a2a2a"},
}

var Mats = []MatOption{
	{ID: MatNone, Label: "No Mat", Upcharge: 0},
	{ID: "white", Label: "White Mat", Upcharge: 1000},
	{ID: "offwhite", Label: "Off-White Mat", Upcharge: 1000},
}

var AspectRatios = []AspectRatio{
	{ID: "3:4", Label: "Portrait", Width: 768, Height: 1024},
	{ID: "1:1", Label: "Square", Width: 1024, Height: 1024},
	{ID: "4:3", Label: "Landscape", Width: 1024, Height: 768},
	{ID: "16:9", Label: "Wide", Width: 1024, Height: 576},
}

// SizeByID returns the size option for the id.
func SizeByID(id string) (SizeOption, bool) {
	for _, s := range Sizes {
		if s.ID == id {
			return s, true
		}
	}
	return SizeOption{}, false
}

// MediumByID returns the medium option for the id.
func MediumByID(id string) (MediumOption, bool) {
	for _, m := range Mediums {
		if m.ID == id {
			return m, true
		}
	}
	return MediumOption{}, false
}

// FrameByID returns the frame option for the id.
func FrameByID(id string) (FrameOption, bool) {
	for _, f := range Frames {
		if f.ID == id {
			return f, true
		}
	}
	return FrameOption{}, false
}

// MatByID returns the mat option for the id.
func MatByID(id string) (MatOption, bool) {
	for _, m := range Mats {
		if m.ID == id {
			return m, true
		}
	}
	return MatOption{}, false
}

// AspectByID returns the aspect ratio for the id and whether it is known.
func AspectByID(id string) (AspectRatio, bool) {
	for _, a := range AspectRatios {
		if a.ID == id {
			return a, true
		}
	}
	return AspectRatio{}, false
}

// AspectOrDefault returns the aspect ratio for the id, falling back to the
// portrait default when the id is unknown.
func AspectOrDefault(id string) AspectRatio {
	if a, ok := AspectByID(id); ok {
		return a
	}
	a, _ := AspectByID(DefaultAspectRatio)
	return a
}

// NormalizeConfig clears the mat when the frame is frameless. A frameless
// print cannot be matted.
func NormalizeConfig(frame, mat string) (string, string) {
	if frame == FrameNone {
		return frame, MatNone
	}
	return frame, mat
}
