package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/platform/tui"
	"github.com/vovakirdan/shooter-arcade/internal/registry"
)

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)

var listCellStyle = lipgloss.NewStyle().Padding(0, 1)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows the games registered in the arcade, where each one loads its
configuration from, and the default controls.`,
	Run: func(cmd *cobra.Command, args []string) {
		writeGameList(cmd.OutOrStdout())
	},
}

func writeGameList(w io.Writer) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Title", "Config").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			return listCellStyle
		})
	for _, g := range games {
		t.Row(g.ID, g.Title, config.Source(g.ID))
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Controls: "+controlsLine())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arcade play <id>' to play a game, or add --window for a desktop window.")
}

// controlsLine lists the in-game key bindings as "key action" pairs.
func controlsLine() string {
	bindings := tui.DefaultGameKeyMap().ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, ", ")
}
