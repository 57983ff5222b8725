package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/joshuapare/minifs/internal/config"
	"github.com/joshuapare/minifs/internal/format"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show directory limits and the effective configuration",
		Long: `The info command prints the fixed directory geometry (page size, slot
count, record size, name limit) and the arena settings that a shell session
would boot with.

Example:
  minifs info
  minifs info --config minifs.yaml --no-color`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderInfo(cfg, noColor))
			return err
		},
	}
}

type infoRow struct {
	key, value string
}

func infoRows(cfg *config.Config) []infoRow {
	return []infoRow{
		{"page size", format.Dec(format.PageSize) + " B"},
		{"slots", format.Dec(format.MaxFiles)},
		{"record size", format.Dec(format.RecordSize) + " B"},
		{"table size", format.Dec(format.TableSize) + " B"},
		{"max name", format.Dec(format.MaxName-1) + " chars"},
		{"arena size", fmt.Sprintf("%s B (%s pages)", format.Dec(cfg.ArenaBytes()), format.Dec(format.PagesFor(cfg.ArenaBytes())))},
		{"logical base", format.Hex(cfg.Arena.LogicalBase)},
		{"physical base", format.Hex(cfg.Arena.PhysicalBase)},
		{"banner", fmt.Sprintf("%t", cfg.Shell.Banner)},
		{"log level", cfg.Log.Level},
	}
}

// renderInfo lays the rows out as an aligned key/value block. Unless plain
// is set, keys are highlighted and the block is framed.
func renderInfo(cfg *config.Config, plain bool) string {
	rows := infoRows(cfg)
	width := 0
	for _, r := range rows {
		width = max(width, len(r.key))
	}

	title := lipgloss.NewStyle().Bold(true)
	key := lipgloss.NewStyle().Width(width + 2).Foreground(lipgloss.Color("12"))
	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if plain {
		title = lipgloss.NewStyle()
		key = lipgloss.NewStyle().Width(width + 2)
		frame = lipgloss.NewStyle()
	}

	lines := []string{title.Render("minifs directory"), ""}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, key.Render(r.key), r.value))
	}
	return frame.Render(strings.Join(lines, "\n"))
}
