package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"muse/internal/profile"
	"muse/internal/prompt"
)

type enhanceRequest struct {
	UserInput    string                `json:"user_input"`
	StyleProfile *profile.StyleProfile `json:"style_profile"`
	AspectRatio  string                `json:"aspect_ratio"`
}

type enhanceResponse struct {
	EnhancedPrompt string `json:"enhanced_prompt"`
	ConceptSummary string `json:"concept_summary"`
}

// EnhancePrompt enriches raw user text. When no profile is supplied inline
// the caller's stored profile is used; an unset profile degrades to the
// literal input plus the quality clause.
func (a *App) EnhancePrompt(w http.ResponseWriter, r *http.Request) {
	var req enhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.UserInput) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "user_input required")
		return
	}

	var p profile.StyleProfile
	if req.StyleProfile != nil {
		p = *req.StyleProfile
	} else {
		clientID := a.clientID(w, r)
		p, _ = a.Profiles.Get(r.Context(), clientID)
	}

	enhanced, summary := prompt.Enhance(req.UserInput, p, req.AspectRatio)
	a.json(w, http.StatusOK, enhanceResponse{EnhancedPrompt: enhanced, ConceptSummary: summary})
}

// Modifiers lists the refinement directions a session can toggle.
func (a *App) Modifiers(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"modifiers": prompt.Modifiers})
}
