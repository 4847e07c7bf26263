package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port default = %d, want 8080", cfg.Server.Port)
	}
	if cfg.OutputDir != "output" {
		t.Errorf("OutputDir default = %q, want %q", cfg.OutputDir, "output")
	}
	if cfg.Clients.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("Gemini.Model default = %q", cfg.Clients.Gemini.Model)
	}
}

func TestConfig_PortEnvOverride(t *testing.T) {
	t.Setenv("ADVISOR_PORT", "9090")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d after env override, want 9090", cfg.Server.Port)
	}
}

func TestConfig_ClientEnvOverrides(t *testing.T) {
	t.Setenv("PAASA_BEARER_TOKEN", "tok-123")
	t.Setenv("GOOGLE_API_KEY", "g-key")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Clients.Paasa.BearerToken != "tok-123" {
		t.Errorf("Paasa.BearerToken = %q", cfg.Clients.Paasa.BearerToken)
	}
	if cfg.Clients.Gemini.APIKey != "g-key" {
		t.Errorf("Gemini.APIKey = %q", cfg.Clients.Gemini.APIKey)
	}
}

func TestConfig_GeminiKeyPrecedence(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "primary")
	t.Setenv("GOOGLE_API_KEY", "fallback")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Clients.Gemini.APIKey != "primary" {
		t.Errorf("Gemini.APIKey = %q, want GEMINI_API_KEY to win", cfg.Clients.Gemini.APIKey)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "advisor.toml")
	content := `
environment = "production"
output_dir = "reports"

[server]
port = 9999

[clients.paasa]
base_url = "https://api.example.com"
timeout = "10s"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.OutputDir != "reports" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
	if got := cfg.Clients.Paasa.GetTimeout(); got != 10*time.Second {
		t.Errorf("Paasa.GetTimeout() = %v", got)
	}
}

func TestLoadConfig_MissingFileSkipped(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/advisor.toml")
	if err != nil {
		t.Fatalf("LoadConfig with missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default", cfg.Server.Port)
	}
}

func TestGetTimeout_InvalidFallsBack(t *testing.T) {
	c := PaasaConfig{Timeout: "bogus"}
	if got := c.GetTimeout(); got != 30*time.Second {
		t.Errorf("GetTimeout() = %v, want 30s fallback", got)
	}
	g := GeminiConfig{}
	if got := g.GetTimeout(); got != 60*time.Second {
		t.Errorf("Gemini GetTimeout() = %v, want 60s fallback", got)
	}
}
