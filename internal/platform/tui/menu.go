package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// menuView renders the start screen: title, run statistics and the
// board of finished runs.
func menuView(width int, stats storage.Stats, runs RunTable, helpLine string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("S P A C E   I N V A D E R S", width)))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("Best: %d   Runs: %d   Wins: %d", stats.Best, stats.Runs, stats.Wins)
	b.WriteString(centerText(summary, width))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, runs.View()))
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render(centerText("press enter to start", width)))
	b.WriteString("\n")
	b.WriteString(centerText(helpLine, width))
	return b.String()
}

// optionsView lists the active tuning and every key binding.
func optionsView(width int, cfg config.InvadersConfig, helpText string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("OPTIONS", width)))
	b.WriteString("\n\n")

	lines := []string{
		fmt.Sprintf("Field         %.0f x %.0f", cfg.Field.Width, cfg.Field.Height),
		fmt.Sprintf("Lives         %d", cfg.Player.Lives),
		fmt.Sprintf("Formation     %d x %d", cfg.Enemies.Rows, config.Columns(cfg)),
		fmt.Sprintf("Fire cooldown %d ticks", cfg.Player.FireCooldown),
		fmt.Sprintf("Enemy fire    %d-%d ticks", cfg.Enemies.CooldownMin, cfg.Enemies.CooldownMax),
		fmt.Sprintf("Tick rate     %d/s", cfg.Timing.TickRate),
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, helpText))
	return b.String()
}

// drawPanel draws a boxed message centered on screen, over whatever is
// already there.
func drawPanel(screen *core.Screen, title string, color core.Color, lines ...string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 6
	h := len(lines) + 4
	if len(lines) > 0 {
		h++
	}

	r := core.NewRect((screen.Width()-w)/2, (screen.Height()-h)/2, w, h)
	screen.DrawRect(r, ' ')
	screen.DrawBox(r)

	x := r.X + (r.W-len([]rune(title)))/2
	screen.DrawTextColored(x, r.Y+1, title, color)
	screen.DrawHLine(r.X+1, r.Y+2, r.W-2, '─')

	// The panel is centered on screen, so its lines are too.
	for i, l := range lines {
		screen.DrawTextCentered(r.Y+3+i, l)
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}
