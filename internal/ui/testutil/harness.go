package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/periodpicker/internal/ui/popup"
)

// ComponentHarness drives a popup.Popup through Update the way a host would,
// collecting the commands it returns.
type ComponentHarness struct {
	comp popup.Popup
	cmds []tea.Cmd
}

// NewComponentHarness initializes c and captures its init command.
func NewComponentHarness(c popup.Popup) *ComponentHarness {
	h := &ComponentHarness{comp: c}
	if cmd := c.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Component returns the component for type assertion.
func (h *ComponentHarness) Component() popup.Popup {
	return h.comp
}

// SetSize sets the component dimensions.
func (h *ComponentHarness) SetSize(width, height int) {
	h.comp.SetSize(width, height)
}

// View returns the component's rendered content.
func (h *ComponentHarness) View() string {
	return h.comp.View()
}

// SendMsg sends any message and returns the resulting command.
func (h *ComponentHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.comp, cmd = h.comp.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey sends a printable key such as "s" or "1".
func (h *ComponentHarness) SendKey(key string) tea.Cmd {
	if key == " " {
		return h.SendMsg(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	}
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, tab, arrows).
func (h *ComponentHarness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// SendEnter sends the enter key.
func (h *ComponentHarness) SendEnter() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEnter)
}

// SendEscape sends the escape key.
func (h *ComponentHarness) SendEscape() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEscape)
}

// SendTab sends the tab key.
func (h *ComponentHarness) SendTab() tea.Cmd {
	return h.SendSpecialKey(tea.KeyTab)
}

// SendClick sends a left-button press at screen cell (x, y).
func (h *ComponentHarness) SendClick(x, y int) tea.Cmd {
	return h.SendMsg(Click(x, y))
}

// Click builds a left-button press at screen cell (x, y).
func Click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *ComponentHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil if none.
func (h *ComponentHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands clears the collected commands.
func (h *ComponentHarness) ClearCommands() {
	h.cmds = nil
}

// Messages runs every collected command, expanding batches, and returns the
// messages they produced in order.
func (h *ComponentHarness) Messages() []tea.Msg {
	var msgs []tea.Msg
	for _, cmd := range h.cmds {
		msgs = append(msgs, Run(cmd)...)
	}
	return msgs
}

// Run executes cmd, expanding tea.BatchMsg results recursively.
func Run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, Run(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// ViewContains checks if the rendered view contains substr.
func (h *ComponentHarness) ViewContains(substr string) bool {
	return AssertContains(h.View(), substr) == ""
}

// ClickText clicks the first cell of substr in the current view. The view is
// assumed to be drawn at (originX, originY) on screen.
func (h *ComponentHarness) ClickText(substr string, originX, originY int) (tea.Cmd, bool) {
	x, y, ok := Locate(h.View(), substr)
	if !ok {
		return nil, false
	}
	return h.SendClick(originX+x, originY+y), true
}
