package cmd

import (
	"context"

	"github.com/nfrund/googledash/internal/app"
	"github.com/nfrund/googledash/internal/config"
	"github.com/spf13/cobra"
)

var addr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	a, err := app.New(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Run(ctx, addr)
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().StringVar(&addr, "addr", "", "listen address (overrides SERVER_ADDRESS)")
	}
	rootCmd.AddCommand(serveCmd)
}
