// Package action defines the messages UI components send to their host.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a component did that its host may react to.
// ActionType returns a short identifier used in host status lines.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that produced it.
type Msg struct {
	Source string // component name, e.g. "periodselector"
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command that emits Msg{Source: source, Action: a}.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
