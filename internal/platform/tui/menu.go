package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flippy/internal/config"
	"github.com/vovakirdan/flippy/internal/games/flippy"
)

// LevelRows returns one table row per level preset.
func LevelRows(levels []flippy.LevelPreset) []table.Row {
	rows := make([]table.Row, len(levels))
	for i, l := range levels {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			l.Name,
			fmt.Sprintf("%.0f", -l.Speed),
			fmt.Sprintf("%.0f", l.Gap),
			fmt.Sprintf("%.2fs", l.SpawnInterval),
		}
	}
	return rows
}

// LevelColumns returns the level table's columns.
func LevelColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Level", Width: 10},
		{Title: "Speed", Width: 7},
		{Title: "Gap", Width: 5},
		{Title: "Every", Width: 7},
	}
}

// newLevelTable creates the menu table with the cursor on level index cursor.
func newLevelTable(cursor int) table.Model {
	levels := flippy.Levels()
	t := table.New(
		table.WithColumns(LevelColumns()),
		table.WithRows(LevelRows(levels)),
		table.WithFocused(true),
		table.WithHeight(len(levels)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	t.SetCursor(flippy.ClampLevel(cursor))
	return t
}

// menuView renders the level select screen.
func (m Model) menuView() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 2)
	subtitleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	policy := fmt.Sprintf("levels advance every %d points", m.cfg.Progression.PointsPerLevel)
	if m.cfg.Progression.Policy != config.PolicyAuto {
		policy = "level stays fixed"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("F L I P P Y"))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Select a level (" + policy + ")"))
	b.WriteString("\n\n")
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys.ForPhase(flippy.PhaseMenu))))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
