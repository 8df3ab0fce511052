package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"muse/internal/cart"
	"muse/internal/checkout"
	"muse/internal/fulfill"
	"muse/internal/infra"
	"muse/internal/profile"
	"muse/internal/session"
	"muse/internal/synth"
)

func newTestApp() *App {
	logger := zerolog.Nop()
	return &App{
		Config:   &infra.Config{CORSOrigins: []string{"*"}, RateLimitPerMin: 1000},
		Logger:   logger,
		Sessions: session.NewStore(),
		Profiles: profile.NewStore(nil, logger),
		Carts:    cart.NewStore(nil, logger),
		Synth:    synth.NewClient(synth.Options{Logger: logger}),
		Checkout: checkout.NewClient(checkout.Options{Logger: logger}),
		Fulfill:  fulfill.NewClient(fulfill.Options{Logger: logger}),
	}
}

func profileFixture() profile.StyleProfile {
	return profile.StyleProfile{
		Palettes: []string{"warm-sunset"},
		Styles:   []string{"abstract"},
		Subjects: []string{"landscape"},
		Mood:     "calm",
		Room:     "living-room",
	}
}

func contextWithRoute(r *http.Request, rctx *chi.Context) context.Context {
	return context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
