package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered panel style used for dropdowns and panes,
// highlighted when focused.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
