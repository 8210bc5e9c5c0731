package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev" // set at build time with -ldflags "-X github.com/nfrund/googledash/cmd/server/cmd.version=..."

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "googledash %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
