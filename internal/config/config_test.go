package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderMock {
		t.Errorf("expected default provider %q, got %q", ProviderMock, cfg.Provider)
	}
	if cfg.Retriever != RetrieverKeyword {
		t.Errorf("expected default retriever %q, got %q", RetrieverKeyword, cfg.Retriever)
	}
	if cfg.SiteURL != DefaultSiteURL {
		t.Errorf("expected default site_url %q, got %q", DefaultSiteURL, cfg.SiteURL)
	}
	if cfg.ChunkSize != 750 || cfg.ChunkOverlap != 100 {
		t.Errorf("expected default chunking 750/100, got %d/%d", cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Port)
	}
	if cfg.CrawlTimeout != 30 {
		t.Errorf("expected default crawl_timeout 30, got %d", cfg.CrawlTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.starbot.yml")

	original := DefaultConfig()
	original.Provider = ProviderOllama
	original.Model = "mistral"
	original.Retriever = RetrieverVector
	original.SiteURL = "https://example.edu/"
	original.MaxPages = 25
	original.TopK = 5

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Provider != original.Provider {
		t.Errorf("provider: got %q, want %q", loaded.Provider, original.Provider)
	}
	if loaded.Model != original.Model {
		t.Errorf("model: got %q, want %q", loaded.Model, original.Model)
	}
	if loaded.Retriever != original.Retriever {
		t.Errorf("retriever: got %q, want %q", loaded.Retriever, original.Retriever)
	}
	if loaded.SiteURL != original.SiteURL {
		t.Errorf("site_url: got %q, want %q", loaded.SiteURL, original.SiteURL)
	}
	if loaded.MaxPages != original.MaxPages {
		t.Errorf("max_pages: got %d, want %d", loaded.MaxPages, original.MaxPages)
	}
	if loaded.TopK != original.TopK {
		t.Errorf("top_k: got %d, want %d", loaded.TopK, original.TopK)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Provider != ProviderMock {
		t.Errorf("expected defaults for missing file, got provider %q", cfg.Provider)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("STARBOT_PROVIDER", "ollama")
	t.Setenv("STARBOT_SITE_URL", "https://override.example/")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Provider != ProviderOllama {
		t.Errorf("provider: got %q, want env override", cfg.Provider)
	}
	if cfg.SiteURL != "https://override.example/" {
		t.Errorf("site_url: got %q, want env override", cfg.SiteURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"unknown provider", func(c *Config) { c.Provider = "bard" }, true},
		{"unknown retriever", func(c *Config) { c.Retriever = "hybrid" }, true},
		{"missing site url", func(c *Config) { c.SiteURL = "" }, true},
		{"zero max pages", func(c *Config) { c.MaxPages = 0 }, true},
		{"zero crawl timeout", func(c *Config) { c.CrawlTimeout = 0 }, true},
		{"overlap too large", func(c *Config) { c.ChunkOverlap = c.ChunkSize }, true},
		{"negative overlap", func(c *Config) { c.ChunkOverlap = -1 }, true},
		{"zero top k", func(c *Config) { c.TopK = 0 }, true},
		{"port out of range", func(c *Config) { c.Port = 70000 }, true},
		{"vector without collection", func(c *Config) {
			c.Retriever = RetrieverVector
			c.Collection = ""
		}, true},
		{"vector with collection", func(c *Config) { c.Retriever = RetrieverVector }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	if got := APIKeyEnvVar(ProviderOpenAI); got != "OPENAI_API_KEY" {
		t.Errorf("openai: got %q", got)
	}
	if got := APIKeyEnvVar(ProviderDeepSeek); got != "DEEPSEEK_API_KEY" {
		t.Errorf("deepseek: got %q", got)
	}
	if got := APIKeyEnvVar(ProviderMock); got != "" {
		t.Errorf("mock: got %q, want empty", got)
	}
}
