// Package cmd implements the CLI commands for mdfixtures using Cobra.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gaurav-prasanna/mdfixtures/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Settings shared by every subcommand, populated in PersistentPreRunE.
var (
	flagConfig string
	cfg        *config.Config
	logger     = slog.New(slog.DiscardHandler)
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mdfixtures",
		Short: "mdfixtures: markdown test documents for renderer development",
		Long: `mdfixtures serves a fixed set of hand-authored markdown documents and a
procedural long-document builder, for exercising markdown renderers.

Usage:
  mdfixtures list
  mdfixtures show feature-showcase
  mdfixtures build --sections 200`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	root.PersistentFlags().String("log_level", "info", "Log level: debug, info, warn or error")

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newBuildCmd(),
		newTOCCmd(),
		newStreamCmd(),
		newExportCmd(),
		newCheckCmd(),
	)
	return root
}

// loadConfig merges the executing command's flags with env and file values.
func loadConfig(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	loaded, err := config.Load(v, flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded
	logger = config.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	logger.Debug("configuration loaded",
		"config_file", flagConfig,
		"sections", cfg.Sections,
		"style", cfg.Style,
		"width", cfg.Width)
	return nil
}

// Execute runs the root command.
// An interrupt cancels the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
