// Package helpbindings provides a scrollable popup listing the key bindings
// of the period picker, grouped by context.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/periodpicker/internal/keymap"
	"github.com/llehouerou/periodpicker/internal/ui"
	"github.com/llehouerou/periodpicker/internal/ui/popup"
	"github.com/llehouerou/periodpicker/internal/ui/render"
	"github.com/llehouerou/periodpicker/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// contexts lists the binding contexts in display order with their titles.
var contexts = []struct{ name, title string }{
	{"global", "Global"},
	{"selector", "Period selector"},
	{"dropdown", "Period grid"},
}

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	lines  []string
	offset int
}

// New creates a help popup listing every binding in keymap.All.
func New() *Model {
	m := &Model{}
	m.lines = buildLines()
	return m
}

func buildLines() []string {
	s := styles.T().S()

	keyWidth := 0
	for _, b := range keymap.All {
		keyWidth = max(keyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	for _, ctx := range contexts {
		bindings := keymap.ByContext(ctx.name)
		if len(bindings) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			s.Warning.Bold(true).Render(ctx.title),
			s.Subtle.Render(render.Separator(keyWidth+20)),
		)
		for _, b := range bindings {
			keys := render.Fit(strings.Join(b.Keys, ", "), keyWidth)
			lines = append(lines, s.ActiveTab.Render(keys)+"  "+s.Base.Render(b.Description))
		}
	}
	return lines
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, closeCmd()
	case "j", "down":
		m.offset = min(m.offset+1, m.maxScroll())
	case "k", "up":
		m.offset = max(m.offset-1, 0)
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	end := min(m.offset+m.visibleHeight(), len(m.lines))
	body := strings.Join(m.lines[m.offset:end], "\n")

	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}

	content := s.Title.Render("Help") + "\n\n" + body + "\n\n" + s.Subtle.Render(footer)
	return styles.PanelStyle(true).Render(content)
}

func (m *Model) visibleHeight() int {
	// title, footer, blank lines and border
	return max(m.Height()-6, 3)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
