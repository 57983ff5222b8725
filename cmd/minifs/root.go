package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/joshuapare/minifs/internal/config"
	"github.com/joshuapare/minifs/internal/logger"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	noColor bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minifs",
		Short: "In-memory flat-file directory shell",
		Long: `minifs runs a small flat-file directory on top of a page allocator.
Files are named regions of page-granular memory, managed with a line protocol:

  LIST | CREATE <name> <size> | RENAME <old> <new> | DEL <name> | PAGE | END

Nothing is persisted; the directory lives until END or end of input.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./minifs.{yaml,toml,json})")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newShellCmd(), newRunCmd(), newInfoCmd(), newVersionCmd())
	return cmd
}

func execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	_ = logger.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the effective configuration and initializes logging from it.
func loadConfig() (*config.Config, error) {
	cfg, used, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	if err := logger.Init(logger.Options{Enabled: true, Level: level, File: cfg.Log.File}); err != nil {
		return nil, err
	}
	if used != "" {
		logger.L.Debug("config loaded", "file", used)
	}
	return cfg, nil
}
