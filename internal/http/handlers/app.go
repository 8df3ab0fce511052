package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"muse/internal/cart"
	"muse/internal/checkout"
	"muse/internal/fulfill"
	"muse/internal/infra"
	"muse/internal/profile"
	"muse/internal/session"
	"muse/internal/synth"
)

const (
	clientIDHeader  = "X-Client-ID"
	sessionIDHeader = "X-Session-ID"
)

// App carries the wired dependencies for every handler.
type App struct {
	Config   *infra.Config
	Logger   zerolog.Logger
	Synth    *synth.Client
	Sessions *session.Store
	Profiles *profile.Store
	Carts    *cart.Store
	Checkout *checkout.Client
	Fulfill  *fulfill.Client
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]errorBody{"error": {Code: code, Message: message}})
}

// clientID identifies the caller for profile and cart records. A caller
// without the header gets a fresh id, echoed back so it can be adopted.
func (a *App) clientID(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(clientIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(clientIDHeader, id)
	return id
}

// sessionID resolves the generation session. A missing header mints a new
// session; dropping the header on reload deliberately resets session state.
func (a *App) sessionID(w http.ResponseWriter, r *http.Request) string {
	id := a.Sessions.Ensure(r.Header.Get(sessionIDHeader))
	w.Header().Set(sessionIDHeader, id)
	return id
}
