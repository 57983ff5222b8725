package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/joshuapare/minifs/fs/shell"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session on stdin/stdout",
		Long: `The shell command boots a fresh directory and reads protocol lines from
standard input until END or end of input. This is also what minifs does when
run without a subcommand.

Example:
  minifs shell
  echo "CREATE foo 10" | minifs shell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd)
		},
	}
}

func runShell(cmd *cobra.Command) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := boot(cfg, cmd.OutOrStdout(), shell.Options{Banner: cfg.Shell.Banner})
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, m.Close()) }()

	// An interrupt ends the session like end of input does.
	if err = m.shell.Run(cmd.Context(), cmd.InOrStdin()); errors.Is(err, context.Canceled) {
		err = nil
	}
	return err
}
