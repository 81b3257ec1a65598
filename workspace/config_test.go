package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"daytona-workspace/models"
)

func writeProfileFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "daytona.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write profile file: %v", err)
	}
	return path
}

func TestLoadProfiles(t *testing.T) {
	path := writeProfileFile(t, `
profiles:
  default:
    language: python
    name: dev-box
    env:
      DEBUG: "1"
    resources:
      cpu: 2
      memory: 4
    auto_stop_interval: 30
  heavy:
    image: ghcr.io/acme/builder:latest
    target: eu
`)

	profiles, err := LoadProfiles(path)
	if err != nil {
		t.Fatalf("LoadProfiles failed: %v", err)
	}

	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}

	def := profiles["default"]
	if def.Language != models.CodeLanguagePython {
		t.Errorf("expected language python, got %s", def.Language)
	}
	if def.Name != "dev-box" {
		t.Errorf("expected name dev-box, got %s", def.Name)
	}
	if def.EnvVars["DEBUG"] != "1" {
		t.Errorf("expected env DEBUG=1, got %v", def.EnvVars)
	}
	if def.Resources == nil || def.Resources.CPU != 2 || def.Resources.Memory != 4 {
		t.Errorf("unexpected resources: %+v", def.Resources)
	}
	if def.AutoStopInterval == nil || *def.AutoStopInterval != 30 {
		t.Errorf("unexpected auto_stop_interval: %v", def.AutoStopInterval)
	}

	heavy := profiles["heavy"]
	if heavy.Image != "ghcr.io/acme/builder:latest" {
		t.Errorf("unexpected image: %s", heavy.Image)
	}
	if heavy.Target != models.TargetRegionEU {
		t.Errorf("unexpected target: %s", heavy.Target)
	}
}

func TestLoadProfiles_NoProfiles(t *testing.T) {
	path := writeProfileFile(t, "profiles: {}\n")

	if _, err := LoadProfiles(path); err == nil {
		t.Error("expected an error for an empty profile file")
	}
}

func TestLoadProfiles_MissingFile(t *testing.T) {
	if _, err := LoadProfiles(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestConfigWithEnv(t *testing.T) {
	t.Setenv("DAYTONA_API_KEY", "env-key")
	t.Setenv("DAYTONA_BASE_URL", "https://env.example.com/api")
	t.Setenv("DAYTONA_TARGET", "us")
	t.Setenv("WORKSPACE_WAIT_TIMEOUT", "2.5")

	config, err := Config{}.withEnv()
	if err != nil {
		t.Fatalf("withEnv failed: %v", err)
	}

	if config.APIKey != "env-key" {
		t.Errorf("expected APIKey from env, got %q", config.APIKey)
	}
	if config.BaseURL != "https://env.example.com/api" {
		t.Errorf("expected BaseURL from env, got %q", config.BaseURL)
	}
	if config.Target != models.TargetRegionUS {
		t.Errorf("expected target us, got %q", config.Target)
	}
	if config.WaitTimeout != 2500*time.Millisecond {
		t.Errorf("expected 2.5s wait timeout, got %v", config.WaitTimeout)
	}
}

func TestConfigWithEnv_ExplicitWins(t *testing.T) {
	t.Setenv("DAYTONA_API_KEY", "env-key")
	t.Setenv("DAYTONA_TARGET", "us")

	config, err := Config{
		APIKey: "explicit-key",
		Target: models.TargetRegionEU,
	}.withEnv()
	if err != nil {
		t.Fatalf("withEnv failed: %v", err)
	}

	if config.APIKey != "explicit-key" {
		t.Errorf("expected explicit APIKey to win, got %q", config.APIKey)
	}
	if config.Target != models.TargetRegionEU {
		t.Errorf("expected explicit target to win, got %q", config.Target)
	}
}

func TestCreateParams_Passthrough(t *testing.T) {
	public := false
	autoStop := 0
	config := Config{
		Language:         models.CodeLanguageTypeScript,
		ID:               "custom-id",
		Name:             "custom-name",
		Image:            "alpine:3",
		EnvVars:          map[string]string{"A": "b"},
		Labels:           map[string]string{"k": "v"},
		Public:           &public,
		Target:           models.TargetRegionAsia,
		Resources:        &models.Resources{Disk: 20},
		AutoStopInterval: &autoStop,
	}

	params := config.createParams()

	if params.Language != config.Language ||
		params.ID != config.ID ||
		params.Name != config.Name ||
		params.Image != config.Image ||
		params.Target != config.Target {
		t.Errorf("scalar fields not forwarded: %+v", params)
	}
	if params.EnvVars["A"] != "b" || params.Labels["k"] != "v" {
		t.Errorf("maps not forwarded: %+v", params)
	}
	if params.Public != &public || params.Resources != config.Resources || params.AutoStopInterval != &autoStop {
		t.Errorf("pointer fields not forwarded: %+v", params)
	}
}
