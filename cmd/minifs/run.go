package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/minifs/fs/shell"
)

func newRunCmd() *cobra.Command {
	var (
		echo   bool
		banner bool
	)
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a file of protocol lines",
		Long: `The run command boots a fresh directory and executes each line of the
script as if it were typed at the prompt. Execution stops at END or at the
end of the file.

Example:
  minifs run session.txt
  minifs run session.txt --echo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, args[0], shell.Options{Echo: echo, Banner: banner})
		},
	}
	cmd.Flags().BoolVar(&echo, "echo", false, "Echo each script line after the prompt")
	cmd.Flags().BoolVar(&banner, "banner", false, "Print the startup banner")
	return cmd
}

func runScript(cmd *cobra.Command, path string, opts shell.Options) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := boot(cfg, cmd.OutOrStdout(), opts)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, m.Close()) }()

	return m.shell.Run(cmd.Context(), f)
}
