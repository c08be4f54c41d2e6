// Package periodselector implements a date-range selector over calendar
// period grids. The header shows the chosen start and end periods; the
// dropdown offers a month/quarter switch, presets and one row of periods per
// year.
package periodselector

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/periodpicker/internal/errmsg"
	"github.com/llehouerou/periodpicker/internal/keymap"
	"github.com/llehouerou/periodpicker/internal/period"
	"github.com/llehouerou/periodpicker/internal/ui"
	"github.com/llehouerou/periodpicker/internal/ui/cursor"
	"github.com/llehouerou/periodpicker/internal/ui/pointer"
	"github.com/llehouerou/periodpicker/internal/ui/popup"
)

// Source names the selector in action messages.
const Source = "periodselector"

// ErrNoCallback is returned by New when Config.OnUpdateDateRange is nil.
var ErrNoCallback = errors.New("periodselector: OnUpdateDateRange is required")

// Config holds the selector props.
type Config struct {
	// OnUpdateDateRange is called with every finalized range.
	OnUpdateDateRange func(pt period.Type, r period.DateRange)

	// PeriodRestriction fixes the period type and hides the type switch.
	PeriodRestriction period.Type

	// Bounds limits the periods offered by the grid. Defaults to
	// period.DefaultStartDate through the end of the current month.
	Bounds *period.DateRange

	DefaultSelectedRange *period.DateRange
	Presets              []period.Preset
	DefaultPeriodType    period.Type

	// Now is the clock used for default bounds. Defaults to time.Now.
	Now func() time.Time
}

// Model is the selector component. Use New to create one.
type Model struct {
	ui.Base

	cfg     Config
	state   State
	presets []period.Preset
	open    bool

	keys keymap.SelectorKeyMap
	help help.Model
	grid cursor.Cursor

	sub   *pointer.Subscription
	err   error
	errOp errmsg.Op
}

var _ popup.Popup = (*Model)(nil)

// New validates cfg and builds the mount-time state.
func New(cfg Config) (*Model, error) {
	if cfg.OnUpdateDateRange == nil {
		return nil, ErrNoCallback
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	for _, t := range []period.Type{cfg.PeriodRestriction, cfg.DefaultPeriodType} {
		if t != "" && !selectable(t) {
			return nil, fmt.Errorf("periodselector: period type %q cannot be selected", t)
		}
	}

	bounds, err := defaultBounds(cfg.Now())
	if err != nil {
		return nil, err
	}
	if cfg.Bounds != nil {
		bounds = *cfg.Bounds
	}
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("periodselector: bounds: %w", err)
	}

	var selected period.DateRange
	if cfg.DefaultSelectedRange != nil {
		selected = *cfg.DefaultSelectedRange
		if err := validatePartial(selected); err != nil {
			return nil, fmt.Errorf("periodselector: default selected range: %w", err)
		}
	}

	state, err := InitialState(selected, bounds, cfg.PeriodRestriction, cfg.DefaultPeriodType)
	if err != nil {
		return nil, fmt.Errorf("periodselector: %w", err)
	}

	m := &Model{
		cfg:     cfg,
		state:   state,
		presets: append([]period.Preset(nil), cfg.Presets...),
		keys:    keymap.DefaultSelectorKeyMap(),
		help:    help.New(),
		grid:    cursor.New(ui.ScrollMargin),
	}
	m.keys.TogglePType.SetEnabled(!state.Restricted())
	m.keys.Preset.SetEnabled(len(m.presets) > 0)
	m.focusEdge()
	return m, nil
}

func selectable(t period.Type) bool {
	for _, s := range period.Selectable {
		if s == t {
			return true
		}
	}
	return false
}

func defaultBounds(now time.Time) (period.DateRange, error) {
	end, err := period.EndOfMonth(period.Today(now))
	if err != nil {
		return period.DateRange{}, err
	}
	return period.DateRange{Start: period.DefaultStartDate, End: end}, nil
}

// validatePartial accepts ranges with unset edges; set edges must parse and
// a complete range must not be inverted.
func validatePartial(r period.DateRange) error {
	if r.Complete() {
		return r.Validate()
	}
	for _, d := range []string{r.Start, r.End} {
		if d == "" {
			continue
		}
		if _, err := period.Parse(d); err != nil {
			return err
		}
	}
	return nil
}

// Activate subscribes the selector to screen-level presses on hub so that a
// press outside it closes the dropdown. Activating again replaces the
// previous subscription.
func (m *Model) Activate(hub *pointer.Hub) {
	m.Deactivate()
	m.sub = hub.Subscribe(m.handleOutsidePress)
}

// Deactivate releases the pointer subscription. It is safe to call more
// than once.
func (m *Model) Deactivate() {
	m.sub.Close()
	m.sub = nil
}

// Active reports whether the selector holds a pointer subscription.
func (m *Model) Active() bool {
	return !m.sub.Closed()
}

func (m *Model) handleOutsidePress(msg tea.MouseMsg) tea.Cmd {
	if m.open && !m.Contains(msg.X, msg.Y) {
		m.open = false
	}
	return nil
}

// Contains reports whether the screen cell (x, y) lies inside the rendered
// selector, dropdown included when open.
func (m *Model) Contains(x, y int) bool {
	lx, ly := m.Local(x, y)
	if lx < 0 || ly < 0 {
		return false
	}
	view := m.View()
	return lx < lipgloss.Width(view) && ly < lipgloss.Height(view)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSize sets the space available to the selector and keeps the focused
// grid row visible.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.grid.EnsureVisible(len(m.state.Options.Years), m.gridRows())
}

// State returns the current domain state.
func (m *Model) State() State {
	return m.state
}

// Range returns the current, possibly partial, range.
func (m *Model) Range() period.DateRange {
	return m.state.Range
}

// PeriodType returns the current period type.
func (m *Model) PeriodType() period.Type {
	return m.state.PeriodType
}

// IsOpen reports whether the dropdown is shown.
func (m *Model) IsOpen() bool {
	return m.open
}

// Err returns the last recoverable error, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) setErr(op errmsg.Op, err error) {
	m.err = err
	m.errOp = op
}
