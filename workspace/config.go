package workspace

import (
	"fmt"
	"os"
	"time"

	"daytona-workspace/models"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config describes a Daytona workspace. Every field is optional; set
// fields are forwarded unchanged to the provider's create call.
type Config struct {
	// APIKey authenticates against the Daytona API. Falls back to the
	// DAYTONA_API_KEY environment variable.
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL overrides the hosted API endpoint. Falls back to
	// DAYTONA_BASE_URL, then to the fixed default.
	BaseURL string `yaml:"base_url,omitempty"`

	// Language toolchain for the sandbox
	Language models.CodeLanguage `yaml:"language,omitempty"`

	// ID is a custom identifier for the sandbox; random if absent
	ID string `yaml:"id,omitempty"`

	// Name is the display name; defaults to the sandbox ID
	Name string `yaml:"name,omitempty"`

	// Image is a custom Docker image for the sandbox
	Image string `yaml:"image,omitempty"`

	// EnvVars are set inside the sandbox
	EnvVars map[string]string `yaml:"env,omitempty"`

	// Labels attached to the sandbox
	Labels map[string]string `yaml:"labels,omitempty"`

	// Public controls whether preview links are publicly reachable
	Public *bool `yaml:"public,omitempty"`

	// Target region for the sandbox
	Target models.TargetRegion `yaml:"target,omitempty"`

	// Resources is the compute shape of the sandbox
	Resources *models.Resources `yaml:"resources,omitempty"`

	// AutoStopInterval is the idle-minutes auto-stop setting; 0 disables
	AutoStopInterval *int `yaml:"auto_stop_interval,omitempty"`

	// WaitTimeout bounds the readiness wait during Setup. When zero, the
	// WORKSPACE_WAIT_TIMEOUT environment variable (seconds) is consulted,
	// then the 60s default.
	WaitTimeout time.Duration `yaml:"-"`
}

// envConfig is the environment overlay applied on top of a Config.
type envConfig struct {
	APIKey      string  `env:"DAYTONA_API_KEY"`
	BaseURL     string  `env:"DAYTONA_BASE_URL"`
	Target      string  `env:"DAYTONA_TARGET"`
	WaitSeconds float64 `env:"WORKSPACE_WAIT_TIMEOUT"`
}

// withEnv fills unset fields from the environment. Explicit Config values
// win over environment values.
func (c Config) withEnv() (Config, error) {
	var overlay envConfig
	if err := env.Parse(&overlay); err != nil {
		return c, fmt.Errorf("failed to parse environment: %w", err)
	}

	if c.APIKey == "" {
		c.APIKey = overlay.APIKey
	}
	if c.BaseURL == "" {
		c.BaseURL = overlay.BaseURL
	}
	if c.Target == "" {
		c.Target = models.TargetRegion(overlay.Target)
	}
	if c.WaitTimeout == 0 && overlay.WaitSeconds > 0 {
		c.WaitTimeout = time.Duration(overlay.WaitSeconds * float64(time.Second))
	}

	return c, nil
}

// createParams builds the provider parameter bag. Fields pass through
// unmodified; absent fields stay absent.
func (c Config) createParams() *models.CreateSandboxParams {
	return &models.CreateSandboxParams{
		Language:         c.Language,
		ID:               c.ID,
		Name:             c.Name,
		Image:            c.Image,
		EnvVars:          c.EnvVars,
		Labels:           c.Labels,
		Public:           c.Public,
		Target:           c.Target,
		Resources:        c.Resources,
		AutoStopInterval: c.AutoStopInterval,
	}
}

// profileFile is the on-disk shape of a daytona.yml profile file.
type profileFile struct {
	Profiles map[string]Config `yaml:"profiles"`
}

// LoadProfiles reads named workspace configurations from a YAML file.
func LoadProfiles(path string) (map[string]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(file.Profiles) == 0 {
		return nil, fmt.Errorf("no profiles defined in %s", path)
	}

	return file.Profiles, nil
}
