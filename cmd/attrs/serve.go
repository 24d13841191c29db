package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/attrs/internal/config"
	"github.com/vango-dev/attrs/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		port       int
		host       string
		envUsage   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP preview service",
		Long: `Start the HTTP preview service.

Configuration is read from attrs.json when present. ATTRS_* environment
variables override the file and flags override both. Run with --env-usage
to list the variables.

Routes:
  POST /v1/normalize   flatten one attribute
  POST /v1/render      render one element
  GET  /healthz        liveness
  GET  /metrics        Prometheus metrics

Examples:
  attrs serve
  attrs serve --port=9000
  attrs serve --config=deploy/attrs.json --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envUsage {
				usage, err := config.EnvUsage()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), usage)
				return nil
			}

			cfg, err := loadServeConfig(configPath, host, port)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			printBanner(out)
			success(out, "Listening on %s", cfg.URL())
			info(out, "Press Ctrl+C to stop")

			logger := cfg.Logger(os.Stderr)
			return server.New(server.FromConfig(cfg, logger)).Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.ConfigFileName, "Path to the configuration file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from attrs.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from attrs.json)")
	cmd.Flags().BoolVar(&envUsage, "env-usage", false, "List supported environment variables and exit")

	return cmd
}

// loadServeConfig loads the configuration and applies environment and flag
// overrides.
func loadServeConfig(path, host string, port int) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
