package handlers

import (
	"encoding/json"
	"net/http"

	"muse/internal/profile"
)

// ProfileGet returns the caller's style profile. An unset profile is an
// empty record with complete=false, not an error.
func (a *App) ProfileGet(w http.ResponseWriter, r *http.Request) {
	clientID := a.clientID(w, r)
	p, ok := a.Profiles.Get(r.Context(), clientID)
	a.json(w, http.StatusOK, map[string]any{
		"profile":  p,
		"set":      ok,
		"complete": p.Complete(),
	})
}

// ProfilePut overwrites the profile wholesale. Partial updates are not a
// thing; the quiz always submits the full record.
func (a *App) ProfilePut(w http.ResponseWriter, r *http.Request) {
	var p profile.StyleProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	clientID := a.clientID(w, r)
	a.Profiles.Set(r.Context(), clientID, p)
	a.json(w, http.StatusOK, map[string]any{
		"profile":  p,
		"set":      true,
		"complete": p.Complete(),
	})
}

// ProfileDelete removes the stored profile.
func (a *App) ProfileDelete(w http.ResponseWriter, r *http.Request) {
	clientID := a.clientID(w, r)
	a.Profiles.Clear(r.Context(), clientID)
	a.json(w, http.StatusOK, map[string]any{"deleted": true})
}
