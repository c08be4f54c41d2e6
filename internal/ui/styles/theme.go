package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - range start, active states
	Secondary lipgloss.Color // Gold/orange - range end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase   lipgloss.Color // Panel backgrounds
	BgCursor lipgloss.Color // Keyboard cursor highlight
	BgRange  lipgloss.Color // Cells inside the selected range

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base   lipgloss.Style // Default text
	Muted  lipgloss.Style // Dimmed text
	Subtle lipgloss.Style // Very dim text
	Title  lipgloss.Style // Bold, bright

	EdgeStart   lipgloss.Style // Grid cell holding the range start
	EdgeEnd     lipgloss.Style // Grid cell holding the range end
	InRange     lipgloss.Style // Grid cell strictly inside the range
	Cursor      lipgloss.Style // Grid cell under the keyboard cursor
	ActiveEdge  lipgloss.Style // Header label of the edge being chosen
	ActiveTab   lipgloss.Style // Current period type in the type header
	InactiveTab lipgloss.Style
	Chosen      lipgloss.Style // Preset that produced the current range

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:   lipgloss.Color("#1a1a1a"),
	BgCursor: lipgloss.Color("#303030"),
	BgRange:  lipgloss.Color("#3b3355"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),

		EdgeStart: lipgloss.NewStyle().
			Background(t.Primary).
			Foreground(t.BgBase).
			Bold(true),
		EdgeEnd: lipgloss.NewStyle().
			Background(t.Secondary).
			Foreground(t.BgBase).
			Bold(true),
		InRange: lipgloss.NewStyle().
			Background(t.BgRange).
			Foreground(t.FgBase),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase).
			Underline(true),
		ActiveEdge: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Underline(true),
		ActiveTab: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().Foreground(t.FgMuted),
		Chosen: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),

		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
