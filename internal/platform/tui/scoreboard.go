package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// maxRuns is how many finished runs the menu lists.
const maxRuns = 8

// RunTable lists the best finished runs of this process.
type RunTable struct {
	table table.Model
	runs  []storage.RunEntry
}

// NewRunTable creates an empty run table.
func NewRunTable() RunTable {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Points", Width: 8},
		{Title: "Result", Width: 8},
		{Title: "Kills", Width: 6},
		{Title: "Time", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(maxRuns+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return RunTable{table: t}
}

// Load replaces the rows with the board's best runs.
func (r *RunTable) Load(board *storage.Board) error {
	if board == nil {
		r.SetRuns(nil)
		return nil
	}
	runs, err := board.TopRuns(maxRuns)
	if err != nil {
		return err
	}
	r.SetRuns(runs)
	return nil
}

// SetRuns replaces the rows.
func (r *RunTable) SetRuns(runs []storage.RunEntry) {
	r.runs = runs
	rows := make([]table.Row, len(runs))
	for i, e := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.Outcome,
			fmt.Sprintf("%d", e.Kills),
			formatElapsed(time.Duration(e.ElapsedMS) * time.Millisecond),
		}
	}
	r.table.SetRows(rows)
	r.table.GotoTop()
}

// Len returns the number of listed runs.
func (r RunTable) Len() int { return len(r.runs) }

// View renders the table or an empty message.
func (r RunTable) View() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(r.runs) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return box.Render(empty.Render("No runs finished yet."))
	}
	return box.Render(r.table.View())
}
