// Command internctl runs maintenance tasks against the intern store:
// migrations, status housekeeping, offline certificate rendering and
// password hashing for configuration.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Test-app01/sans-intern-verify/internal/app"
	"github.com/Test-app01/sans-intern-verify/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "internctl",
	Short:         "Maintenance commands for the intern certificate service",
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configPath string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $CONFIG_PATH or "+config.DefaultPath+")")
	rootCmd.AddCommand(migrateCmd, completeExpiredCmd, renderCmd, hashPasswordCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "internctl: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// withContainer loads configuration and wires the services for one command.
func withContainer(ctx context.Context, fn func(c *app.Container) error) error {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	// Commands never migrate implicitly; use the migrate command.
	cfg.Database.AutoMigrate = false

	c, err := app.NewContainer(ctx, *cfg, app.NewLogger(cfg.Log))
	if err != nil {
		return err
	}
	defer c.Close() //nolint:errcheck

	return fn(c)
}
