// Package keymap defines key bindings for the period picker.
package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding for documentation.
type Binding struct {
	Keys        []string
	Description string
	Context     string // "global", "selector", "dropdown"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, "Quit application", "global"},
	{[]string{"c"}, "Clear history", "global"},
	{[]string{"?"}, "Show key bindings", "global"},

	// Selector (dropdown closed)
	{[]string{"enter", "space"}, "Open period grid", "selector"},
	{[]string{"s"}, "Choose start", "selector"},
	{[]string{"e"}, "Choose end", "selector"},

	// Dropdown
	{[]string{"h", "left"}, "Previous period", "dropdown"},
	{[]string{"l", "right"}, "Next period", "dropdown"},
	{[]string{"k", "up"}, "Previous year", "dropdown"},
	{[]string{"j", "down"}, "Next year", "dropdown"},
	{[]string{"enter", "space"}, "Select period", "dropdown"},
	{[]string{"tab"}, "Switch month/quarter", "dropdown"},
	{[]string{"s"}, "Choose start", "dropdown"},
	{[]string{"e"}, "Choose end", "dropdown"},
	{[]string{"1-9"}, "Apply preset", "dropdown"},
	{[]string{"esc"}, "Close", "dropdown"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// SelectorKeyMap holds the bindings the period selector reacts to.
// It implements help.KeyMap.
type SelectorKeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	Select      key.Binding
	TogglePType key.Binding
	ChooseStart key.Binding
	ChooseEnd   key.Binding
	Preset      key.Binding
	Close       key.Binding
}

// DefaultSelectorKeyMap returns the default selector bindings.
func DefaultSelectorKeyMap() SelectorKeyMap {
	return SelectorKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev year"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next year"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		TogglePType: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "month/quarter"),
		),
		ChooseStart: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		ChooseEnd: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "end"),
		),
		Preset: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "preset"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k SelectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.TogglePType, k.ChooseStart, k.ChooseEnd, k.Preset, k.Close}
}

// FullHelp implements help.KeyMap.
func (k SelectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Select, k.TogglePType, k.Preset},
		{k.ChooseStart, k.ChooseEnd, k.Close},
	}
}
