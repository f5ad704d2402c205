// Package commands wires the CLI entry points of the marina API.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/port-russell/marina-api/config"
	"github.com/port-russell/marina-api/data"
	"github.com/port-russell/marina-api/logging/logger"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "marina-api",
		Short: "Booking API for the catways of the Port de plaisance Russell",
	}

	rootCmd.AddCommand(
		NewServeCommand(),
		NewSeedCommand(),
		NewCreateUserCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}

// bootstrap loads the configuration, initializes the logger and opens the
// data layer. The returned cleanup closes both.
func bootstrap(configFile string) (*config.Config, *logger.Logger, *data.Data, func(), error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.StandardLogger()
	logCleanup, err := log.Init(cfg.Logger)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	dataLayer, err := data.New(cfg.Data.MongoDB, log)
	if err != nil {
		logCleanup()
		return nil, nil, nil, nil, fmt.Errorf("failed to create data layer: %w", err)
	}

	cleanup := func() {
		if err := dataLayer.Close(); err != nil {
			log.Errorf(context.Background(), "failed to close data layer: %v", err)
		}
		logCleanup()
	}

	return cfg, log, dataLayer, cleanup, nil
}
