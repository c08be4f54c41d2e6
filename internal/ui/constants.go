// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of rows to keep visible above/below the cursor.
	ScrollMargin = 1

	// BorderWidth is the horizontal space consumed by one side of a panel border.
	BorderWidth = 1

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// PaddingX is the horizontal padding inside bordered panels.
	PaddingX = 1

	// MinGridRows is the fewest year rows a period grid shows.
	MinGridRows = 3

	// DefaultGridRows is the number of year rows shown when no height is known.
	DefaultGridRows = 8
)
