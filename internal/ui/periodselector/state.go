package periodselector

import (
	"fmt"

	"github.com/llehouerou/periodpicker/internal/period"
)

// Phase is the edge the next grid selection applies to.
//
// Transitions:
//
//	SelectingStart --select cell--> SelectingEnd
//	SelectingEnd --select cell >= start--> SelectingStart (range complete, dropdown closes)
//	SelectingEnd --select cell < start--> SelectingStart (start re-based, end cleared)
//	any --preset--> SelectingStart
//	any --edge label--> that edge
type Phase int

const (
	SelectingStart Phase = iota
	SelectingEnd
)

func (p Phase) String() string {
	if p == SelectingEnd {
		return "selecting end"
	}
	return "selecting start"
}

// Edge returns the range edge this phase writes to.
func (p Phase) Edge() period.Edge {
	if p == SelectingEnd {
		return period.End
	}
	return period.Start
}

// phaseFor returns the phase that writes to edge.
func phaseFor(edge period.Edge) Phase {
	if edge == period.End {
		return SelectingEnd
	}
	return SelectingStart
}

// State is the selector's domain state. All transitions on it are pure:
// they return a new State and never touch the UI.
type State struct {
	Range             period.DateRange
	Phase             Phase
	ChosenPreset      *period.Preset
	PeriodType        period.Type
	PeriodRestriction period.Type      // empty means switching is allowed
	Bounds            period.DateRange // span offered by the grid
	Options           period.Options
}

// Restricted reports whether the period type is fixed.
func (s State) Restricted() bool {
	return s.PeriodRestriction != ""
}

// Outcome describes what a transition asks of the component beyond the new
// state.
type Outcome struct {
	// Fire is set when the range is complete and the caller must be notified.
	Fire bool
	// CloseDropdown is set when the selection is finished.
	CloseDropdown bool
}

// initialType applies restriction > explicit default > month.
func initialType(restriction, def period.Type) period.Type {
	switch {
	case restriction != "":
		return restriction
	case def != "":
		return def
	default:
		return period.Month
	}
}

// InitialState builds the mount-time state. The selected range is taken as
// given; options are derived from bounds.
func InitialState(selected period.DateRange, bounds period.DateRange, restriction, def period.Type) (State, error) {
	pt := initialType(restriction, def)
	opts, err := period.OptionsByType(bounds, pt)
	if err != nil {
		return State{}, fmt.Errorf("build period grid: %w", err)
	}
	return State{
		Range:             selected,
		Phase:             SelectingStart,
		PeriodType:        pt,
		PeriodRestriction: restriction,
		Bounds:            bounds,
		Options:           opts,
	}, nil
}

// WithPeriodType is the recompute transition run whenever the period type
// changes after mount: the restriction wins over the requested type, set
// edges are snapped to the boundaries of the resulting type and the option
// grid is rebuilt.
func WithPeriodType(s State, requested period.Type) (State, error) {
	pt := requested
	if s.Restricted() {
		pt = s.PeriodRestriction
	}

	r, err := period.SnapEdges(s.Range, pt)
	if err != nil {
		return s, fmt.Errorf("snap range to %s: %w", pt, err)
	}
	opts, err := period.OptionsByType(s.Bounds, pt)
	if err != nil {
		return s, fmt.Errorf("build period grid: %w", err)
	}

	s.PeriodType = pt
	s.Range = r
	s.Options = opts
	return s, nil
}

// SelectPreset applies a preset. Presets are trusted to be consistent and
// always notify.
func SelectPreset(s State, p period.Preset) (State, Outcome) {
	chosen := p
	s.Range = p.Range
	s.ChosenPreset = &chosen
	s.Phase = SelectingStart
	return s, Outcome{Fire: true}
}

// SelectDate applies a click on the grid cell spanning cell.
func SelectDate(s State, cell period.DateRange) (State, Outcome) {
	var out Outcome
	s.ChosenPreset = nil

	switch s.Phase {
	case SelectingStart:
		end := s.Range.End
		if period.After(cell.Start, end) {
			end = ""
		}
		s.Range = period.DateRange{Start: cell.Start, End: end}
		s.Phase = SelectingEnd

	case SelectingEnd:
		if period.Before(cell.End, s.Range.Start) {
			// Re-base: the clicked period becomes the new start and the user
			// picks again from the start edge.
			start, err := period.EdgeOf(cell.End, s.PeriodType, period.Start)
			if err != nil {
				start = cell.Start
			}
			s.Range = period.DateRange{Start: start}
			s.Phase = SelectingStart
			return s, out
		}
		s.Range.End = cell.End
		s.Phase = SelectingStart
		out.CloseDropdown = true
	}

	out.Fire = s.Range.Complete()
	return s, out
}

// ChooseEdge switches the phase to the given edge.
func ChooseEdge(s State, edge period.Edge) State {
	s.Phase = phaseFor(edge)
	return s
}

// CellKind classifies a grid cell relative to the selected range.
type CellKind int

const (
	CellPlain CellKind = iota
	CellStart
	CellEnd
	CellInRange
)

func (k CellKind) String() string {
	switch k {
	case CellStart:
		return "start"
	case CellEnd:
		return "end"
	case CellInRange:
		return "in range"
	default:
		return "plain"
	}
}

// Classify returns the kind of the cell spanning cell.
func (s State) Classify(cell period.DateRange) CellKind {
	switch {
	case period.SamePeriod(cell.Start, s.Range.Start, s.PeriodType):
		return CellStart
	case period.SamePeriod(cell.End, s.Range.End, s.PeriodType):
		return CellEnd
	case period.Between(cell.Start, s.Range):
		return CellInRange
	default:
		return CellPlain
	}
}
