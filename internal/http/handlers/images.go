package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"muse/internal/catalog"
	"muse/internal/profile"
	"muse/internal/prompt"
	"muse/internal/synth"
)

type imageGenerateRequest struct {
	Prompt       string                `json:"prompt"`
	StyleProfile *profile.StyleProfile `json:"style_profile"`
	AspectRatio  string                `json:"aspect_ratio"`
	Count        int                   `json:"count"`
	Quality      string                `json:"quality"`
	Refine       bool                  `json:"refine"`
}

type imageGenerateResponse struct {
	SessionID      string        `json:"session_id"`
	EnhancedPrompt string        `json:"enhanced_prompt"`
	ConceptSummary string        `json:"concept_summary"`
	Images         []synth.Image `json:"images"`
}

// ImagesGenerate runs enhancement and synthesis for the caller's session.
// With refine=true the session's active modifiers are appended to the
// enhanced prompt before synthesis. The batch is recorded into the session,
// which clears any prior selection.
func (a *App) ImagesGenerate(w http.ResponseWriter, r *http.Request) {
	var req imageGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "prompt required")
		return
	}
	aspect := catalog.AspectOrDefault(req.AspectRatio)

	var p profile.StyleProfile
	if req.StyleProfile != nil {
		p = *req.StyleProfile
	} else {
		clientID := a.clientID(w, r)
		p, _ = a.Profiles.Get(r.Context(), clientID)
	}

	sessionID := a.sessionID(w, r)
	enhanced, summary := prompt.Enhance(req.Prompt, p, aspect.ID)
	if req.Refine {
		if snap, ok := a.Sessions.Snapshot(sessionID); ok {
			enhanced = prompt.ApplyModifiers(enhanced, snap.ActiveModifiers)
		}
	}

	images := a.Synth.Generate(r.Context(), synth.Request{
		Prompt:      enhanced,
		AspectRatio: aspect.ID,
		Count:       req.Count,
		Quality:     req.Quality,
	})
	a.Sessions.RecordBatch(sessionID, req.Prompt, enhanced, aspect.ID, req.Quality, images)

	a.json(w, http.StatusOK, imageGenerateResponse{
		SessionID:      sessionID,
		EnhancedPrompt: enhanced,
		ConceptSummary: summary,
		Images:         images,
	})
}
