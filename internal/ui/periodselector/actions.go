package periodselector

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/periodpicker/internal/period"
	"github.com/llehouerou/periodpicker/internal/ui/action"
)

// RangeSelected is emitted whenever the selector finalizes a range.
type RangeSelected struct {
	PeriodType period.Type
	Range      period.DateRange
	Preset     string // label of the preset that produced the range, if any
}

// ActionType implements action.Action.
func (RangeSelected) ActionType() string { return "range_selected" }

// fire notifies the caller of the current range and returns the matching
// action message.
func (m *Model) fire() tea.Cmd {
	pt, r := m.state.PeriodType, m.state.Range
	m.cfg.OnUpdateDateRange(pt, r)

	a := RangeSelected{PeriodType: pt, Range: r}
	if m.state.ChosenPreset != nil {
		a.Preset = m.state.ChosenPreset.Label
	}
	return action.Cmd(Source, a)
}
