package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "googledash",
	Short: "Google sign-in dashboard",
	Long: `googledash serves a small web app that signs users in with Google
and shows their Google profile on a dashboard.

Configuration is read from the environment and an optional .env file.
Running without a command starts the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
