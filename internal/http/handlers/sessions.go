package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"muse/pkg/zip"
)

// SessionCurrent returns a snapshot of the caller's session.
func (a *App) SessionCurrent(w http.ResponseWriter, r *http.Request) {
	sessionID := a.sessionID(w, r)
	snap, _ := a.Sessions.Snapshot(sessionID)
	a.json(w, http.StatusOK, snap)
}

type sessionSelectRequest struct {
	ImageID string `json:"image_id"`
}

// SessionSelect marks one image of the current batch as the working image.
func (a *App) SessionSelect(w http.ResponseWriter, r *http.Request) {
	var req sessionSelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.ImageID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "image_id required")
		return
	}
	sessionID := a.sessionID(w, r)
	if !a.Sessions.Select(sessionID, req.ImageID) {
		a.error(w, http.StatusNotFound, "not_found", "image not in current batch")
		return
	}
	snap, _ := a.Sessions.Snapshot(sessionID)
	a.json(w, http.StatusOK, snap)
}

type sessionModifiersRequest struct {
	Modifiers []string `json:"modifiers"`
}

// SessionModifiers accumulates refinement modifiers on the session.
func (a *App) SessionModifiers(w http.ResponseWriter, r *http.Request) {
	var req sessionModifiersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	sessionID := a.sessionID(w, r)
	active := a.Sessions.AddModifiers(sessionID, req.Modifiers)
	a.json(w, http.StatusOK, map[string]any{"active_modifiers": active})
}

// SessionModifiersReset clears the modifier stack without touching the rest
// of the session.
func (a *App) SessionModifiersReset(w http.ResponseWriter, r *http.Request) {
	sessionID := a.sessionID(w, r)
	a.Sessions.ResetModifiers(sessionID)
	a.json(w, http.StatusOK, map[string]any{"active_modifiers": []string{}})
}

// SessionClear resets the session to its initial state. The id stays valid.
func (a *App) SessionClear(w http.ResponseWriter, r *http.Request) {
	sessionID := a.sessionID(w, r)
	a.Sessions.Clear(sessionID)
	snap, _ := a.Sessions.Snapshot(sessionID)
	a.json(w, http.StatusOK, snap)
}

// SessionExport bundles the session's current batch into a zip download:
// inline image payloads as files plus a session.json manifest. Pool-backed
// images have no inline payload and appear in the manifest only.
func (a *App) SessionExport(w http.ResponseWriter, r *http.Request) {
	sessionID := a.sessionID(w, r)
	snap, _ := a.Sessions.Snapshot(sessionID)
	if len(snap.CurrentBatch) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "session has no images")
		return
	}

	manifest, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to encode session")
		return
	}
	entries := []zip.Entry{{Name: "session.json", Data: manifest}}
	for i, img := range snap.CurrentBatch {
		data, ext, ok := decodeDataURL(img.URL)
		if !ok {
			continue
		}
		entries = append(entries, zip.Entry{
			Name: fmt.Sprintf("%02d-%s%s", i+1, img.ID, ext),
			Data: data,
		})
	}

	archive, err := zip.Archive(entries)
	if err != nil {
		a.Logger.Error().Err(err).Str("session_id", sessionID).Msg("session export failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to build archive")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "muse-session-"+sessionID+".zip"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

func decodeDataURL(url string) (data []byte, ext string, ok bool) {
	if !strings.HasPrefix(url, "data:") {
		return nil, "", false
	}
	meta, payload, found := strings.Cut(strings.TrimPrefix(url, "data:"), ",")
	if !found {
		return nil, "", false
	}
	mimeType := strings.TrimSuffix(meta, ";base64")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", false
	}
	ext = ".bin"
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		ext = exts[len(exts)-1]
	}
	return decoded, ext, true
}
