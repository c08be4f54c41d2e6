package periodselector

import (
	"github.com/llehouerou/periodpicker/internal/period"
	"github.com/llehouerou/periodpicker/internal/ui"
)

// rowCells returns the options of the given year row.
func (m *Model) rowCells(row int) []period.Option {
	years := m.state.Options.Years
	if row < 0 || row >= len(years) {
		return nil
	}
	return m.state.Options.ByYear[years[row]]
}

// nearest returns the index of the cell in cells whose column is closest to
// col. Rows of the first and last year may be partial.
func nearest(cells []period.Option, col int, pt period.Type) int {
	best, bestDist := -1, 0
	for i, c := range cells {
		d := c.Column(pt) - col
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// focused returns the option under the keyboard cursor.
func (m *Model) focused() (period.Option, bool) {
	i, ok := m.focusedIndex()
	if !ok {
		return period.Option{}, false
	}
	return m.rowCells(m.grid.Row())[i], true
}

func (m *Model) focusedIndex() (int, bool) {
	cells := m.rowCells(m.grid.Row())
	i := nearest(cells, m.grid.Col(), m.state.PeriodType)
	return i, i >= 0
}

// step moves the keyboard cursor by delta periods, crossing year rows.
func (m *Model) step(delta int) {
	i, ok := m.focusedIndex()
	if !ok {
		return
	}
	row := m.grid.Row()
	years := len(m.state.Options.Years)
	i += delta
	for i < 0 && row > 0 {
		row--
		i += len(m.rowCells(row))
	}
	for i >= len(m.rowCells(row)) && row < years-1 {
		i -= len(m.rowCells(row))
		row++
	}
	cells := m.rowCells(row)
	i = max(min(i, len(cells)-1), 0)
	m.focusCell(row, cells[i])
}

func (m *Model) focusCell(row int, opt period.Option) {
	pt := m.state.PeriodType
	m.grid.Jump(row, opt.Column(pt), len(m.state.Options.Years), period.Columns(pt), m.gridRows())
}

// focusEdge moves the keyboard cursor to the period of the edge being
// chosen, falling back to the other edge and then to the latest period.
func (m *Model) focusEdge() {
	years := m.state.Options.Years
	if len(years) == 0 {
		return
	}
	r := m.state.Range
	dates := []string{r.Start, r.End}
	if m.state.Phase == SelectingEnd {
		dates = []string{r.End, r.Start}
	}
	for _, d := range dates {
		if m.focusDate(d) {
			return
		}
	}
	last := len(years) - 1
	cells := m.rowCells(last)
	m.focusCell(last, cells[len(cells)-1])
}

// focusDate focuses the cell whose period contains date, if it is offered.
func (m *Model) focusDate(date string) bool {
	if date == "" {
		return false
	}
	pt := m.state.PeriodType
	for row := range m.state.Options.Years {
		for _, c := range m.rowCells(row) {
			if period.SamePeriod(c.Range.Start, date, pt) {
				m.focusCell(row, c)
				return true
			}
		}
	}
	return false
}

// gridRows is the number of year rows the dropdown shows.
func (m *Model) gridRows() int {
	h := m.Height()
	if h <= 0 {
		return ui.DefaultGridRows
	}
	chrome := 1 + ui.BorderHeight + 1 // header, border, help
	if !m.state.Restricted() {
		chrome += 2
	}
	if m.err != nil {
		chrome++
	}
	return max(h-chrome, ui.MinGridRows)
}
