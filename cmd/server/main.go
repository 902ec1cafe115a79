package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kumobot/botsite/internal/logging"
	"github.com/kumobot/botsite/internal/server"
	"github.com/kumobot/botsite/internal/status"
	"github.com/kumobot/botsite/internal/version"
	"github.com/spf13/cobra"
)

func newRootCmd(start *status.StartTime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "botsite",
		Short:   "Bot website and status API",
		Version: version.Detailed(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger, closer, err := logging.New(&cfg.Log, os.Stdout)
			if err != nil {
				return err
			}
			defer closer.Close()
			slog.SetDefault(logger)

			srv, err := server.New(&cfg.Config, start)
			if err != nil {
				return err
			}

			// config is good, errors from here on are not usage errors
			cmd.SilenceUsage = true

			slog.Info("botsite", "version", version.Short(), "started", start.At().Format(time.RFC3339))
			defer slog.Info("Bye!")
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().StringP("bind", "b", server.DefaultAddr, "Address to bind the server")
	cmd.Flags().StringP("cert", "", "", "Path to the TLS certificate file")
	cmd.Flags().StringP("key", "", "", "Path to the TLS key file")
	cmd.Flags().StringP("site-dir", "", "", "Directory with templates/ and static/ (default: embedded)")
	cmd.Flags().StringP("log-level", "", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringP("config", "c", "", "Config file")
	cmd.PersistentFlags().StringP("env-file", "", defaultEnvFile, "Dotenv file loaded at startup")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func main() {
	// uptime is measured from here
	start := status.NewStartTime(time.Now())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(start).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
