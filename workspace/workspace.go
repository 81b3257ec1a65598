// Package workspace provides remote workspace management on top of the
// Daytona client. A workspace wraps a provisioned sandbox and exposes the
// addresses the rest of the toolchain needs to reach it.
package workspace

import "context"

// Workspace is a remote execution environment with a managed lifecycle.
type Workspace interface {
	// Setup provisions the remote environment and blocks until it is
	// ready to accept connections.
	Setup(ctx context.Context) error

	// Teardown releases the remote environment. Calling Teardown on a
	// workspace that was never set up is a no-op.
	Teardown(ctx context.Context) error
}

// Remote holds the bookkeeping shared by remote workspace
// implementations: the provisioned sandbox's identity and addresses.
type Remote struct {
	// ID of the remote sandbox
	ID string

	// URL is the management endpoint for the sandbox
	URL string

	// Host is the externally reachable address of the tool server port
	Host string

	// Ports forwarded from the sandbox, if any
	Ports []int

	active bool
}

// Active reports whether the workspace has been set up and not torn down.
func (r *Remote) Active() bool {
	return r.active
}

func (r *Remote) setup(id, url, host string) {
	r.ID = id
	r.URL = url
	r.Host = host
	r.Ports = nil
	r.active = true
}

// teardown is the base cleanup shared by implementations. Providers run
// it before releasing their own resources.
func (r *Remote) teardown() {
	r.active = false
	r.Ports = nil
}
