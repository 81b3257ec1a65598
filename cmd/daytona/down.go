package main

import (
	"context"
	"fmt"

	daytona "daytona-workspace"
	"daytona-workspace/workspace"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var downForce bool

var downCmd = &cobra.Command{
	Use:   "down <sandbox-id>",
	Short: "Remove a sandbox",
	Args:  cobra.ExactArgs(1),
	RunE:  runDown,
}

func init() {
	downCmd.Flags().BoolVarP(&downForce, "force", "f", false, "skip the confirmation prompt")
	rootCmd.AddCommand(downCmd)
}

func runDown(cmd *cobra.Command, args []string) error {
	id := args[0]

	if !downForce {
		confirmed := false
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Remove sandbox %s?", id)).
			Description("The remote sandbox and everything in it will be deleted.").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			log.Info("aborted")
			return nil
		}
	}

	client, err := apiClient()
	if err != nil {
		return err
	}

	log.Debug("removing sandbox", "id", id)
	if err := client.Sandbox.Delete(context.Background(), id); err != nil {
		return err
	}

	log.Info("sandbox removed", "id", id)
	return nil
}

// apiClient builds a bare API client from environment credentials, for
// commands that operate on existing sandboxes rather than profiles.
func apiClient() (*daytona.Client, error) {
	ws, err := workspace.New(workspace.Config{})
	if err != nil {
		return nil, err
	}
	return ws.Client(), nil
}
