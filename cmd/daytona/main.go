// Package main provides the daytona workspace CLI.
//
// The CLI manages remote Daytona workspaces from the terminal: launching
// a workspace from a named profile, inspecting and listing sandboxes, and
// tearing them down. Provisioning progress is rendered with a Bubble Tea
// spinner; destructive operations ask for confirmation.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
