package ui

// Base provides common UI component functionality for focus, size and
// screen placement. Embed this in component models to get standard methods
// automatically.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    state State
//	}
type Base struct {
	width, height int
	x, y          int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the space available to the component.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// SetOrigin records the screen cell of the component's top-left corner.
// Mouse coordinates are screen-relative; components translate them with Local.
func (b *Base) SetOrigin(x, y int) {
	b.x = x
	b.y = y
}

// Origin returns the screen cell of the component's top-left corner.
func (b Base) Origin() (x, y int) {
	return b.x, b.y
}

// Local converts screen coordinates to component coordinates.
func (b Base) Local(x, y int) (lx, ly int) {
	return x - b.x, y - b.y
}
