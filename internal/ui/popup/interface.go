package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup defines the contract for overlay components driven by the host's
// update loop. Implementations use pointer receivers so that scoped
// subscriptions can observe their live state.
type Popup interface {
	// Init returns any initial command.
	Init() tea.Cmd

	// Update handles messages and returns updated popup + command.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the component, anchored at its own top-left corner.
	View() string

	// SetSize sets the space available to the component.
	SetSize(width, height int)
}
