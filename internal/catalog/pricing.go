package catalog

import "fmt"

// Price returns the total price in cents for a product configuration.
// Unknown ids contribute zero so a partially configured request still prices.
func Price(size, medium, frame, mat string) int {
	total := 0
	if s, ok := SizeByID(size); ok {
		total += s.BasePrice
	}
	if m, ok := MediumByID(medium); ok {
		total += m.Upcharge
	}
	if f, ok := FrameByID(frame); ok {
		total += f.Upcharge
	}
	if mt, ok := MatByID(mat); ok {
		total += mt.Upcharge
	}
	return total
}

// FormatPrice renders cents as a dollar string.
func FormatPrice(cents int) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

// Resolution is the print-quality estimate for an image at a given size.
type Resolution struct {
	MaxDPI       int  `json:"max_dpi"`
	Valid        bool `json:"valid"`
	NeedsUpscale bool `json:"needs_upscale"`
}

const (
	minPrintDPI    = 100
	recommendedDPI = 150
)

// ValidateResolution estimates the effective DPI of an image printed at the
// given size. The result drives a user-facing warning only; it never blocks
// configuration or checkout.
func ValidateResolution(imageWidth, imageHeight int, sizeID string) Resolution {
	printW, printH := parsePrintSize(sizeID)
	if printW <= 0 || printH <= 0 || imageWidth <= 0 || imageHeight <= 0 {
		return Resolution{MaxDPI: 0, Valid: false, NeedsUpscale: true}
	}
	dpiW := float64(imageWidth) / float64(printW)
	dpiH := float64(imageHeight) / float64(printH)
	dpi := dpiW
	if dpiH < dpi {
		dpi = dpiH
	}
	return Resolution{
		MaxDPI:       int(dpi + 0.5),
		Valid:        dpi >= minPrintDPI,
		NeedsUpscale: dpi < recommendedDPI,
	}
}

// parsePrintSize splits a size id like "16x20" into print inches.
func parsePrintSize(sizeID string) (int, int) {
	var w, h int
	if _, err := fmt.Sscanf(sizeID, "%dx%d", &w, &h); err != nil {
		return 0, 0
	}
	return w, h
}
