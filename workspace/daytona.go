package workspace

import (
	"context"
	"fmt"
	"time"

	daytona "daytona-workspace"
	"daytona-workspace/models"
)

// ToolserverPort is the fixed port the tool server listens on inside a
// sandbox. The workspace host address is the preview link for this port.
const ToolserverPort = 8000

// defaultWaitTimeout bounds the readiness wait when neither the config
// nor WORKSPACE_WAIT_TIMEOUT specify one.
const defaultWaitTimeout = 60 * time.Second

var _ Workspace = (*Daytona)(nil)

// Daytona is a remote workspace backed by a Daytona sandbox.
type Daytona struct {
	Remote

	config  Config
	client  *daytona.Client
	params  *models.CreateSandboxParams
	sandbox *models.Sandbox
}

// New creates a Daytona workspace from the given configuration. It fails
// fast when no API key is available from the config or DAYTONA_API_KEY,
// since every later call would be rejected by the provider.
func New(config Config) (*Daytona, error) {
	config, err := config.withEnv()
	if err != nil {
		return nil, err
	}

	if config.APIKey == "" {
		return nil, &daytona.ValidationError{
			Field:   "APIKey",
			Message: "a Daytona API key is required; set Config.APIKey or the DAYTONA_API_KEY environment variable",
		}
	}

	opts := []daytona.ClientOption{}
	if config.BaseURL != "" {
		opts = append(opts, daytona.WithBaseURL(config.BaseURL))
	}

	return &Daytona{
		config: config,
		client: daytona.NewClient(config.APIKey, opts...),
		params: config.createParams(),
	}, nil
}

// Client exposes the underlying API client.
func (w *Daytona) Client() *daytona.Client {
	return w.client
}

// Setup provisions the sandbox, derives the management URL and the tool
// server host address, and blocks until the sandbox reports started.
func (w *Daytona) Setup(ctx context.Context) error {
	sandbox, err := w.client.Sandbox.Create(ctx, w.params)
	if err != nil {
		return fmt.Errorf("failed to create sandbox: %w", err)
	}
	w.sandbox = sandbox

	url := fmt.Sprintf("%s/toolbox/%s/toolbox", w.client.GetBaseURL(), sandbox.ID)

	link, err := w.client.Sandbox.PreviewLink(ctx, sandbox.ID, ToolserverPort)
	if err != nil {
		return fmt.Errorf("failed to resolve preview link: %w", err)
	}

	w.setup(sandbox.ID, url, link.URL)

	return w.wait(ctx)
}

// wait blocks until the sandbox reports started, bounded by the
// configured timeout.
func (w *Daytona) wait(ctx context.Context) error {
	timeout := w.config.WaitTimeout
	if timeout == 0 {
		timeout = defaultWaitTimeout
	}
	return w.client.Sandbox.WaitForStart(ctx, w.sandbox.ID, timeout)
}

// Teardown runs the base cleanup and then deletes the sandbox, if one was
// ever created. It is safe to call on a workspace that was never set up.
func (w *Daytona) Teardown(ctx context.Context) error {
	w.Remote.teardown()

	if w.sandbox == nil {
		return nil
	}

	if err := w.client.Sandbox.Delete(ctx, w.sandbox.ID); err != nil {
		return fmt.Errorf("failed to remove sandbox %s: %w", w.sandbox.ID, err)
	}
	w.sandbox = nil

	return nil
}
