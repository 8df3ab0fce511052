package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"muse/internal/cart"
	"muse/internal/checkout"
	"muse/internal/fulfill"
	"muse/internal/http/handlers"
	"muse/internal/infra"
	"muse/internal/profile"
	"muse/internal/session"
	"muse/internal/synth"
)

func newRouter() http.Handler {
	logger := zerolog.Nop()
	app := &handlers.App{
		Config:   &infra.Config{CORSOrigins: []string{"*"}, RateLimitPerMin: 1000},
		Logger:   logger,
		Sessions: session.NewStore(),
		Profiles: profile.NewStore(nil, logger),
		Carts:    cart.NewStore(nil, logger),
		Synth:    synth.NewClient(synth.Options{Logger: logger}),
		Checkout: checkout.NewClient(checkout.Options{Logger: logger}),
		Fulfill:  fulfill.NewClient(fulfill.Options{Logger: logger}),
	}
	return NewRouter(app, nil)
}

func TestHealthz(t *testing.T) {
	server := httptest.NewServer(newRouter())
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/healthz")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("status body = %v", body)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestCatalogRoute(t *testing.T) {
	server := httptest.NewServer(newRouter())
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/catalog/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var body struct {
		Sizes        []any `json:"sizes"`
		AspectRatios []any `json:"aspect_ratios"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Sizes) != 6 || len(body.AspectRatios) != 4 {
		t.Fatalf("sizes = %d aspect ratios = %d", len(body.Sizes), len(body.AspectRatios))
	}
}

func TestCORSPreflight(t *testing.T) {
	server := httptest.NewServer(newRouter())
	defer server.Close()

	req, _ := http.NewRequest(http.MethodOptions, server.URL+"/v1/images/generate", nil)
	req.Header.Set("Origin", "https://muse.example.com")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNoContent)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "https://muse.example.com" {
		t.Fatalf("allow origin = %q", resp.Header.Get("Access-Control-Allow-Origin"))
	}
}
