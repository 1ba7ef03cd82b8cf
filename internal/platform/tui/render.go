package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shooter-arcade/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
// Surface colors (water, space, panels) paint the cell background.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPink:          lipgloss.NewStyle().Foreground(lipgloss.Color("225")),
	core.ColorViolet:        lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
	core.ColorRiver:         lipgloss.NewStyle().Background(lipgloss.Color("23")),
	core.ColorStripe:        lipgloss.NewStyle().Foreground(lipgloss.Color("31")).Background(lipgloss.Color("23")),
	core.ColorSpace:         lipgloss.NewStyle().Background(lipgloss.Color("233")),
	core.ColorPanel:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawHUD writes the status line into row 0 of the screen: title, score,
// lives and the game's own meters.
func DrawHUD(s *core.Screen, title string, st core.GameState) {
	for x := range s.Width() {
		s.SetCell(x, 0, ' ', core.ColorDefault)
	}

	x := 1
	put := func(text string, c core.Color) {
		s.DrawText(x, 0, text, c)
		x += len([]rune(text)) + 2
	}

	put(title, core.ColorBrightWhite)
	put(fmt.Sprintf("Score: %d", st.Score), core.ColorBrightYellow)
	put(fmt.Sprintf("Lives: %d", st.Lives), core.ColorBrightRed)
	for _, m := range st.Meters {
		put(fmt.Sprintf("%s: %s", m.Label, m.Value), core.ColorBrightCyan)
	}
	if st.Paused {
		put("PAUSED", core.ColorGray)
	}
}
