package main

import (
	"context"
	"fmt"

	"daytona-workspace/workspace"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <sandbox-id>",
	Short: "Show details for a sandbox",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	id := args[0]

	client, err := apiClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	sandbox, err := client.Sandbox.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Println(labelStyle.Render("id:     ") + sandbox.ID)
	fmt.Println(labelStyle.Render("name:   ") + sandbox.Name)
	fmt.Println(labelStyle.Render("state:  ") + string(sandbox.State))
	if sandbox.Image != "" {
		fmt.Println(labelStyle.Render("image:  ") + sandbox.Image)
	}
	if sandbox.Target != "" {
		fmt.Println(labelStyle.Render("target: ") + string(sandbox.Target))
	}

	link, err := client.Sandbox.PreviewLink(ctx, id, workspace.ToolserverPort)
	if err == nil {
		fmt.Println(labelStyle.Render("host:   ") + link.URL)
	}

	return nil
}
