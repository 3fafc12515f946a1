package tui

import "github.com/charmbracelet/lipgloss"

// renderListPanel draws the column titles above the bordered report list.
func (m MainModel) renderListPanel(width, height int) string {
	inner := width - 2

	titles := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.styles.PrimaryBlue).
		Padding(0, 1).
		Width(inner).
		Render(Truncate(m.listView.Delegate().ColumnHeader(), inner-2, true))

	rows := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.BorderColor).
		Width(inner).
		Height(height).
		Render(m.listView.Render())

	return lipgloss.JoinVertical(lipgloss.Left, titles, rows)
}
