package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/neumorph/internal/logging"
	"github.com/opencode-ai/neumorph/internal/preview"
)

var (
	serveHost string
	servePort int
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "bind address (default from config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port (default from config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live HTML preview",
	Long:  "Serve an HTML page that renders the element with real CSS shadows, plus a JSON API.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := currentConfig()

		opts := preview.Options{
			Host:     cfg.Preview.Host,
			Port:     cfg.Preview.Port,
			Defaults: cfg.Defaults,
			Version:  appVersion,
		}
		if serveHost != "" {
			opts.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			opts.Port = servePort
		}

		server, err := preview.New(logging.Component("preview"), opts)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Run(ctx)
	},
}
