package periodselector

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/periodpicker/internal/errmsg"
	"github.com/llehouerou/periodpicker/internal/period"
	"github.com/llehouerou/periodpicker/internal/ui/popup"
)

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.open {
		switch {
		case key.Matches(msg, m.keys.Select):
			m.openDropdown()
		case key.Matches(msg, m.keys.ChooseStart):
			m.chooseEdge(period.Start)
		case key.Matches(msg, m.keys.ChooseEnd):
			m.chooseEdge(period.End)
		}
		return nil
	}

	rows := len(m.state.Options.Years)
	switch {
	case key.Matches(msg, m.keys.Close):
		m.open = false
	case key.Matches(msg, m.keys.Left):
		m.step(-1)
	case key.Matches(msg, m.keys.Right):
		m.step(1)
	case key.Matches(msg, m.keys.Up):
		m.grid.MoveRow(-1, rows, m.gridRows())
	case key.Matches(msg, m.keys.Down):
		m.grid.MoveRow(1, rows, m.gridRows())
	case key.Matches(msg, m.keys.Select):
		if opt, ok := m.focused(); ok {
			return m.selectOption(opt)
		}
	case key.Matches(msg, m.keys.TogglePType):
		return m.togglePeriodType()
	case key.Matches(msg, m.keys.ChooseStart):
		m.chooseEdge(period.Start)
	case key.Matches(msg, m.keys.ChooseEnd):
		m.chooseEdge(period.End)
	case key.Matches(msg, m.keys.Preset):
		if len(msg.Runes) == 1 {
			return m.selectPreset(int(msg.Runes[0] - '1'))
		}
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	if m.open && tea.MouseEvent(msg).IsWheel() {
		rows := len(m.state.Options.Years)
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.grid.MoveRow(-1, rows, m.gridRows())
		case tea.MouseButtonWheelDown:
			m.grid.MoveRow(1, rows, m.gridRows())
		}
		return nil
	}
	if msg.Button != tea.MouseButtonLeft {
		return nil
	}

	x, y := m.Local(msg.X, msg.Y)
	_, regions := m.render()
	r, ok := hit(regions, x, y)
	if !ok {
		return nil
	}

	switch r.kind {
	case regionStart:
		m.chooseEdge(period.Start)
	case regionEnd:
		m.chooseEdge(period.End)
	case regionChevron:
		if m.open {
			m.open = false
		} else {
			m.openDropdown()
		}
	case regionType:
		return m.setPeriodType(period.Selectable[r.index])
	case regionPreset:
		return m.selectPreset(r.index)
	case regionCell:
		cells := m.rowCells(r.row)
		m.grid.Jump(r.row, r.col, len(m.state.Options.Years), period.Columns(m.state.PeriodType), m.gridRows())
		return m.selectOption(cells[r.index])
	}
	return nil
}

func (m *Model) openDropdown() {
	m.open = true
	m.focusEdge()
}

// chooseEdge opens the dropdown for choosing edge.
func (m *Model) chooseEdge(edge period.Edge) {
	m.state = ChooseEdge(m.state, edge)
	m.openDropdown()
}

func (m *Model) togglePeriodType() tea.Cmd {
	if m.state.Restricted() {
		return nil
	}
	next := period.Quarter
	if m.state.PeriodType == period.Quarter {
		next = period.Month
	}
	return m.setPeriodType(next)
}

func (m *Model) setPeriodType(pt period.Type) tea.Cmd {
	if pt == m.state.PeriodType {
		return nil
	}
	s, err := WithPeriodType(m.state, pt)
	if err != nil {
		m.setErr(errmsg.OpPeriodSwitch, err)
		return nil
	}
	m.state = s
	m.err = nil
	m.focusEdge()
	return nil
}

func (m *Model) selectPreset(i int) tea.Cmd {
	if i < 0 || i >= len(m.presets) {
		return nil
	}
	s, out := SelectPreset(m.state, m.presets[i])
	cmd := m.apply(s, out)
	m.focusEdge()
	return cmd
}

func (m *Model) selectOption(opt period.Option) tea.Cmd {
	s, out := SelectDate(m.state, opt.Range)
	return m.apply(s, out)
}

func (m *Model) apply(s State, out Outcome) tea.Cmd {
	m.state = s
	if out.CloseDropdown {
		m.open = false
	}
	if out.Fire {
		return m.fire()
	}
	return nil
}
