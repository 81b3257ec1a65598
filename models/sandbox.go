// Package models provides data structures for the Daytona API.
package models

// SandboxState is the lifecycle state reported by the provider.
type SandboxState string

const (
	SandboxStateCreating   SandboxState = "creating"
	SandboxStateStarting   SandboxState = "starting"
	SandboxStateStarted    SandboxState = "started"
	SandboxStateStopping   SandboxState = "stopping"
	SandboxStateStopped    SandboxState = "stopped"
	SandboxStateError      SandboxState = "error"
	SandboxStateDestroying SandboxState = "destroying"
)

// CodeLanguage selects the language toolchain preinstalled in a sandbox.
type CodeLanguage string

const (
	CodeLanguagePython     CodeLanguage = "python"
	CodeLanguageJavaScript CodeLanguage = "javascript"
	CodeLanguageTypeScript CodeLanguage = "typescript"
)

// TargetRegion selects where the sandbox is scheduled.
type TargetRegion string

const (
	TargetRegionEU   TargetRegion = "eu"
	TargetRegionUS   TargetRegion = "us"
	TargetRegionAsia TargetRegion = "asia"
)

// Resources describes the compute shape of a sandbox.
type Resources struct {
	// CPU cores
	CPU int `json:"cpu,omitempty"`

	// GPU count
	GPU int `json:"gpu,omitempty"`

	// Memory in GiB
	Memory int `json:"memory,omitempty"`

	// Disk in GiB
	Disk int `json:"disk,omitempty"`
}

// CreateSandboxParams is the parameter bag for sandbox creation. Every
// field is optional; the server fills in defaults for absent ones.
type CreateSandboxParams struct {
	// Language toolchain for the sandbox
	Language CodeLanguage `json:"language,omitempty"`

	// Custom identifier; a random one is generated if absent
	ID string `json:"id,omitempty"`

	// Display name; defaults to the sandbox ID
	Name string `json:"name,omitempty"`

	// Custom Docker image
	Image string `json:"image,omitempty"`

	// Environment variables set inside the sandbox
	EnvVars map[string]string `json:"env,omitempty"`

	// Custom labels
	Labels map[string]string `json:"labels,omitempty"`

	// Whether preview links are publicly reachable
	Public *bool `json:"public,omitempty"`

	// Target region
	Target TargetRegion `json:"target,omitempty"`

	// Resource configuration
	Resources *Resources `json:"resources,omitempty"`

	// Minutes of inactivity before the sandbox stops automatically.
	// 0 disables auto-stop; the server default is 15.
	AutoStopInterval *int `json:"autoStopInterval,omitempty"`
}

// Sandbox is the provider's view of a remote sandbox.
type Sandbox struct {
	ID               string            `json:"id"`
	Name             string            `json:"name,omitempty"`
	State            SandboxState      `json:"state"`
	ErrorReason      string            `json:"errorReason,omitempty"`
	Image            string            `json:"image,omitempty"`
	Target           TargetRegion      `json:"target,omitempty"`
	Labels           map[string]string `json:"labels,omitempty"`
	Public           bool              `json:"public,omitempty"`
	AutoStopInterval int               `json:"autoStopInterval,omitempty"`
	CreatedAt        string            `json:"createdAt,omitempty"`
}

// PreviewLink is the externally reachable address for a port inside a
// sandbox. The token authorizes access when the sandbox is not public.
type PreviewLink struct {
	URL   string `json:"url"`
	Token string `json:"token,omitempty"`
}
