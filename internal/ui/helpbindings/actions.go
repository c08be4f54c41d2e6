package helpbindings

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/periodpicker/internal/ui/action"
)

// Source names the help popup in action messages.
const Source = "helpbindings"

// Close signals the help popup should close.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "helpbindings.close" }

func closeCmd() tea.Cmd {
	return action.Cmd(Source, Close{})
}
