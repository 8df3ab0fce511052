package infra

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "8080")
	}
	if cfg.HasDatabase() {
		t.Fatal("HasDatabase should be false without DATABASE_URL")
	}
	if cfg.GeminiStandard != "gemini-2.5-flash-image" {
		t.Fatalf("GeminiStandard mismatch: got %q", cfg.GeminiStandard)
	}
	if cfg.ShopifyAPIVersion != "2024-01" {
		t.Fatalf("ShopifyAPIVersion mismatch: got %q", cfg.ShopifyAPIVersion)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("CORSOrigins mismatch: %#v", cfg.CORSOrigins)
	}
}

func TestLoadConfigStartsWithoutCredentials(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("SHOPIFY_ACCESS_TOKEN", "")
	t.Setenv("PRINTFUL_API_KEY", "")

	if _, err := LoadConfig(); err != nil {
		t.Fatalf("LoadConfig should not require credentials: %v", err)
	}
}

func TestLoadConfigSplitsCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://muse.example.com, http://localhost:3000 ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	expected := []string{"https://muse.example.com", "http://localhost:3000"}
	if len(cfg.CORSOrigins) != len(expected) {
		t.Fatalf("CORSOrigins mismatch: got %#v want %#v", cfg.CORSOrigins, expected)
	}
	for i, origin := range expected {
		if cfg.CORSOrigins[i] != origin {
			t.Fatalf("CORSOrigins[%d] = %q, want %q", i, cfg.CORSOrigins[i], origin)
		}
	}
}

func TestLoadConfigHonorsDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if !cfg.HasDatabase() {
		t.Fatal("HasDatabase should be true with DATABASE_URL set")
	}
}
