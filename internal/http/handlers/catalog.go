package handlers

import (
	"encoding/json"
	"net/http"

	"muse/internal/catalog"
)

// Catalog returns every configuration table the product builder needs.
func (a *App) Catalog(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"sizes":         catalog.Sizes,
		"mediums":       catalog.Mediums,
		"frames":        catalog.Frames,
		"mats":          catalog.Mats,
		"aspect_ratios": catalog.AspectRatios,
	})
}

// CatalogPrice prices a configuration from query params. Unknown ids
// contribute zero rather than failing; frame "none" forces mat "none".
func (a *App) CatalogPrice(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	size := q.Get("size")
	medium := q.Get("medium")
	frame, mat := catalog.NormalizeConfig(q.Get("frame"), q.Get("mat"))

	cents := catalog.Price(size, medium, frame, mat)
	variantID, mapped := catalog.ResolveVariant(size, medium, frame)
	if !mapped {
		a.Logger.Warn().
			Str("size", size).Str("medium", medium).Str("frame", frame).
			Msg("catalog: unmapped variant combination, using synthetic id")
	}
	a.json(w, http.StatusOK, map[string]any{
		"price":           cents,
		"formatted_price": catalog.FormatPrice(cents),
		"variant_id":      variantID,
		"variant_mapped":  mapped,
		"frame":           frame,
		"mat":             mat,
	})
}

type resolutionRequest struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	SizeID string `json:"size_id"`
}

// CatalogResolution reports whether an image carries enough pixels for a
// print size. Advisory only; it never blocks configuration.
func (a *App) CatalogResolution(w http.ResponseWriter, r *http.Request) {
	var req resolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Width <= 0 || req.Height <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "width and height must be positive")
		return
	}
	a.json(w, http.StatusOK, catalog.ValidateResolution(req.Width, req.Height, req.SizeID))
}

// Gallery lists the curated artworks that double as the synthesis fallback
// pool.
func (a *App) Gallery(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": catalog.GalleryItems})
}

// Concepts lists the starting prompts offered to first-time visitors.
func (a *App) Concepts(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"concepts": catalog.StartingConcepts})
}
