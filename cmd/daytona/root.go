package main

import (
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "daytona-workspace",
	Short: "Manage remote Daytona workspaces",
	Long: "daytona-workspace provisions, inspects, and tears down remote " +
		"execution sandboxes on Daytona.\n\n" +
		"Credentials are read from DAYTONA_API_KEY (a .env file is honored); " +
		"workspace profiles live in daytona.yml.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; missing files are fine
		godotenv.Load()

		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
