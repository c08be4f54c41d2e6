package periodselector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/periodpicker/internal/errmsg"
	"github.com/llehouerou/periodpicker/internal/period"
	"github.com/llehouerou/periodpicker/internal/ui"
	"github.com/llehouerou/periodpicker/internal/ui/render"
	"github.com/llehouerou/periodpicker/internal/ui/styles"
)

// Placeholder is shown in place of an unset edge.
const Placeholder = "_ _ _ _"

const (
	chevronClosed = "▾"
	chevronOpen   = "▴"

	yearWidth      = 4
	yearGap        = 2
	columnGap      = 2
	maxPresetWidth = 20

	// dropdown content starts below the header line and inside the border
	// and padding of the panel
	innerX = ui.BorderWidth + ui.PaddingX
	innerY = 1 + ui.BorderHeight/2
)

type regionKind int

const (
	regionStart regionKind = iota
	regionEnd
	regionChevron
	regionType
	regionPreset
	regionCell
)

// region is a clickable single-line span in component coordinates.
type region struct {
	kind  regionKind
	x, y  int
	w     int
	index int // type, preset or cell index within its row
	row   int // grid row for cells
	col   int // grid column for cells
}

func hit(regions []region, x, y int) (region, bool) {
	for _, r := range regions {
		if y == r.y && x >= r.x && x < r.x+r.w {
			return r, true
		}
	}
	return region{}, false
}

// View implements popup.Popup.
func (m *Model) View() string {
	lines, _ := m.render()
	return strings.Join(lines, "\n")
}

// render lays out the selector. The returned regions share the coordinates
// of the returned lines, so hit testing always matches what is drawn.
func (m *Model) render() ([]string, []region) {
	header, regions := m.renderHeader()
	lines := []string{header}
	if !m.open {
		return lines, regions
	}

	var inner []string
	if !m.state.Restricted() {
		types, typeRegions := m.renderTypes(innerY)
		inner = append(inner, types, "")
		regions = append(regions, typeRegions...)
	}

	body, bodyRegions := m.renderBody(innerY + len(inner))
	inner = append(inner, body...)
	regions = append(regions, bodyRegions...)

	inner = append(inner, m.help.View(m.keys))
	if m.err != nil {
		inner = append(inner, styles.T().S().Error.Render(errmsg.Format(m.errOp, m.err)))
	}

	box := styles.PanelStyle(true).Render(strings.Join(inner, "\n"))
	lines = append(lines, strings.Split(box, "\n")...)
	return lines, regions
}

func (m *Model) renderHeader() (string, []region) {
	s := styles.T().S()
	pt := m.state.PeriodType

	var b strings.Builder
	var regions []region
	x := 0
	for _, edge := range []period.Edge{period.Start, period.End} {
		if edge == period.End {
			b.WriteString(s.Muted.Render(" - "))
			x += 3
		}
		date := m.state.Range.Start
		kind := regionStart
		if edge == period.End {
			date = m.state.Range.End
			kind = regionEnd
		}

		label := period.EdgeLabel(date, pt)
		style := s.Base
		if label == "" {
			label = Placeholder
			style = s.Subtle
		} else {
			regions = append(regions, region{kind: kind, x: x, y: 0, w: lipgloss.Width(label)})
		}
		if m.open && m.state.Phase.Edge() == edge {
			style = s.ActiveEdge
		}
		b.WriteString(style.Render(label))
		x += lipgloss.Width(label)
	}

	chevron := chevronClosed
	if m.open {
		chevron = chevronOpen
	}
	b.WriteString(" " + s.Muted.Render(chevron))
	regions = append(regions, region{kind: regionChevron, x: x + 1, y: 0, w: 1})
	return b.String(), regions
}

func typeTitle(t period.Type) string {
	switch t {
	case period.Quarter:
		return "Quarter"
	default:
		return "Month"
	}
}

func (m *Model) renderTypes(y int) (string, []region) {
	s := styles.T().S()
	var b strings.Builder
	var regions []region
	x := 0
	for i, t := range period.Selectable {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", columnGap))
			x += columnGap
		}
		label := typeTitle(t)
		style := s.InactiveTab
		if t == m.state.PeriodType {
			style = s.ActiveTab
		}
		b.WriteString(style.Render(label))
		regions = append(regions, region{kind: regionType, x: innerX + x, y: y, w: len(label), index: i})
		x += len(label)
	}
	return b.String(), regions
}

func (m *Model) presetWidth() int {
	w := 0
	for i, p := range m.presets {
		w = max(w, lipgloss.Width(presetText(i, p)))
	}
	return min(w, maxPresetWidth)
}

func presetText(i int, p period.Preset) string {
	label := render.Sanitize(p.Label)
	if i < 9 {
		return fmt.Sprintf("%d %s", i+1, label)
	}
	return "  " + label
}

func (m *Model) presetChosen(p period.Preset) bool {
	c := m.state.ChosenPreset
	return c != nil && c.Label == p.Label && c.Range == p.Range
}

func cellWidth(pt period.Type) int {
	if pt == period.Quarter {
		return 2
	}
	return 3
}

// renderBody draws the presets column next to the year rows of the grid.
// top is the component line of the first body line.
func (m *Model) renderBody(top int) ([]string, []region) {
	s := styles.T().S()
	var regions []region

	var left []string
	gridX := innerX
	if len(m.presets) > 0 {
		pw := m.presetWidth()
		for i, p := range m.presets {
			style := s.Muted
			if m.presetChosen(p) {
				style = s.Chosen
			}
			left = append(left, style.Render(render.Fit(presetText(i, p), pw)))
			regions = append(regions, region{kind: regionPreset, x: innerX, y: top + i, w: pw, index: i})
		}
		for i := range left {
			left[i] += strings.Repeat(" ", columnGap)
		}
		gridX += pw + columnGap
	}

	grid, gridRegions := m.renderGrid(gridX, top)
	regions = append(regions, gridRegions...)

	n := max(len(left), len(grid))
	lines := make([]string, n)
	blank := ""
	if len(left) > 0 {
		blank = strings.Repeat(" ", gridX-innerX)
	}
	for i := range n {
		l := blank
		if i < len(left) {
			l = left[i]
		}
		if i < len(grid) {
			l += grid[i]
		}
		lines[i] = l
	}
	return lines, regions
}

// renderGrid draws the visible year rows. Cells are aligned by their
// position within the year so partial first and last years line up.
func (m *Model) renderGrid(x0, top int) ([]string, []region) {
	s := styles.T().S()
	t := styles.T()
	pt := m.state.PeriodType
	years := m.state.Options.Years
	if len(years) == 0 {
		return []string{s.Muted.Render("No periods")}, nil
	}

	shade := m.rangeShades(t)
	cw := cellWidth(pt)
	cols := period.Columns(pt)
	focusRow := m.grid.Row()
	focusIdx, _ := m.focusedIndex()

	start, end := m.grid.VisibleRange(len(years), m.gridRows())
	var lines []string
	var regions []region
	for row := start; row < end; row++ {
		y := top + len(lines)
		cells := m.rowCells(row)
		byCol := make(map[int]int, len(cells))
		for i, c := range cells {
			byCol[c.Column(pt)] = i
		}

		yearStyle := s.Subtle
		if row == focusRow {
			yearStyle = s.Title
		}
		var b strings.Builder
		b.WriteString(yearStyle.Render(years[row]))
		b.WriteString(strings.Repeat(" ", yearGap))

		x := x0 + yearWidth + yearGap
		for col := range cols {
			if col > 0 {
				b.WriteString(" ")
				x++
			}
			i, ok := byCol[col]
			if !ok {
				b.WriteString(strings.Repeat(" ", cw))
				x += cw
				continue
			}
			c := cells[i]
			style := m.cellStyle(c, shade)
			if row == focusRow && i == focusIdx {
				style = style.Inherit(s.Cursor).Underline(true)
			}
			b.WriteString(style.Render(render.Fit(c.Label, cw)))
			regions = append(regions, region{kind: regionCell, x: x, y: y, w: cw, index: i, row: row, col: col})
			x += cw
		}
		lines = append(lines, b.String())
	}
	return lines, regions
}

func (m *Model) cellStyle(c period.Option, shade map[string]lipgloss.Color) lipgloss.Style {
	s := styles.T().S()
	switch m.state.Classify(c.Range) {
	case CellStart:
		return s.EdgeStart
	case CellEnd:
		return s.EdgeEnd
	case CellInRange:
		if col, ok := shade[c.Range.Start]; ok {
			return s.InRange.Foreground(col)
		}
		return s.InRange
	default:
		return s.Base
	}
}

// rangeShades blends the foreground of in-range cells from the start color
// to the end color, keyed by cell start date.
func (m *Model) rangeShades(t *styles.Theme) map[string]lipgloss.Color {
	var inRange []string
	for _, c := range m.state.Options.Flatten() {
		if m.state.Classify(c.Range) == CellInRange {
			inRange = append(inRange, c.Range.Start)
		}
	}
	shades := styles.Shades(len(inRange), t.Primary, t.Secondary)
	out := make(map[string]lipgloss.Color, len(inRange))
	for i, d := range inRange {
		out[d] = shades[i]
	}
	return out
}
