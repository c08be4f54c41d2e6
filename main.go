package main

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/periodpicker/internal/config"
	"github.com/llehouerou/periodpicker/internal/errmsg"
	"github.com/llehouerou/periodpicker/internal/period"
	"github.com/llehouerou/periodpicker/internal/ui/action"
	"github.com/llehouerou/periodpicker/internal/ui/helpbindings"
	"github.com/llehouerou/periodpicker/internal/ui/periodselector"
	"github.com/llehouerou/periodpicker/internal/ui/pointer"
	"github.com/llehouerou/periodpicker/internal/ui/popup"
	"github.com/llehouerou/periodpicker/internal/ui/render"
	"github.com/llehouerou/periodpicker/internal/ui/styles"
)

const (
	selectorX  = 2
	selectorY  = 2
	maxHistory = 50
)

type entry struct {
	sel periodselector.RangeSelected
	at  time.Time
}

type model struct {
	selector *periodselector.Model
	hub      *pointer.Hub
	help     *helpbindings.Model // nil when hidden

	current *period.DateRange // last range reported through the callback
	history []entry
	status  string

	width  int
	height int
}

func initialModel(cfg *config.Config, hub *pointer.Hub) (*model, error) {
	m := &model{hub: hub}
	now := time.Now()

	pt, err := cfg.GetPeriodType()
	if err != nil {
		return nil, err
	}
	restriction, err := cfg.GetRestriction()
	if err != nil {
		return nil, err
	}
	bounds, err := cfg.GetBounds()
	if err != nil {
		return nil, err
	}
	// Preset errors are recoverable: the valid presets are still offered.
	presets, err := cfg.GetPresets(now)
	if err != nil {
		m.status = errmsg.Format(errmsg.OpPresetResolve, err)
	}

	sel, err := periodselector.New(periodselector.Config{
		OnUpdateDateRange: func(_ period.Type, r period.DateRange) {
			m.current = &r
		},
		PeriodRestriction:    restriction,
		Bounds:               bounds,
		DefaultSelectedRange: cfg.GetSelected(),
		Presets:              presets,
		DefaultPeriodType:    pt,
	})
	if err != nil {
		return nil, err
	}
	sel.SetOrigin(selectorX, selectorY)
	sel.SetFocused(true)
	sel.Activate(hub)
	m.selector = sel
	return m, nil
}

func (m *model) Init() tea.Cmd {
	return m.selector.Init()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.selector.SetSize(msg.Width-selectorX, msg.Height-selectorY-1)
		if m.help != nil {
			m.help.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.help != nil {
			_, cmd := m.help.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			if !m.selector.IsOpen() {
				m.help = helpbindings.New()
				m.help.SetSize(m.width, m.height)
				return m, nil
			}
		case "c":
			if !m.selector.IsOpen() {
				m.history = nil
				return m, nil
			}
		}
		_, cmd := m.selector.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		hubCmd := m.hub.Dispatch(msg)
		_, cmd := m.selector.Update(msg)
		return m, tea.Batch(hubCmd, cmd)

	case action.Msg:
		if _, ok := msg.Action.(helpbindings.Close); ok {
			m.help = nil
			return m, nil
		}
		if sel, ok := msg.Action.(periodselector.RangeSelected); ok {
			m.history = append([]entry{{sel: sel, at: time.Now()}}, m.history...)
			if len(m.history) > maxHistory {
				m.history = m.history[:maxHistory]
			}
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m *model) View() string {
	t := styles.T()
	s := t.S()

	title := styles.ApplyGradient("periodpicker", t.Primary, t.Secondary)
	hint := s.Subtle.Render("enter open • s/e choose edge • ? help • q quit")
	lines := []string{
		render.Row(" "+title, hint+" ", m.width),
		"",
		"", // selector header
		"",
		" " + s.Title.Render("History") + s.Muted.Render(" "+render.Separator(max(m.width-10, 0))),
	}

	for _, e := range m.history {
		lines = append(lines, " "+m.historyLine(e))
	}
	if len(m.history) == 0 {
		lines = append(lines, " "+s.Muted.Render("No range selected yet."))
	}

	for len(lines) < m.height-1 {
		lines = append(lines, "")
	}
	if m.height > 0 && len(lines) > m.height-1 {
		lines = lines[:m.height-1]
	}
	lines = append(lines, m.statusLine())

	base := strings.Join(lines, "\n")
	view := popup.Overlay(base, m.selector.View(), selectorX, selectorY, m.width)
	if m.help != nil {
		help := m.help.View()
		x := max((m.width-lipgloss.Width(help))/2, 0)
		y := max((m.height-lipgloss.Height(help))/2, 0)
		view = popup.Overlay(view, help, x, y, m.width)
	}
	return view
}

func (m *model) historyLine(e entry) string {
	s := styles.T().S()
	r := e.sel.Range
	days := ""
	if start, err := period.Parse(r.Start); err == nil {
		if end, err := period.Parse(r.End); err == nil {
			n := int64(end.Sub(start).Hours()/24) + 1
			days = humanize.Comma(n) + " days"
		}
	}

	line := fmt.Sprintf("%s  %-7s  %11s", r, e.sel.PeriodType, days)
	if e.sel.Preset != "" {
		line += "  " + s.Chosen.Render(render.Truncate(e.sel.Preset, 24))
	}
	return line + "  " + s.Subtle.Render(humanize.Time(e.at))
}

func (m *model) statusLine() string {
	s := styles.T().S()
	if m.status != "" {
		return " " + s.Error.Render(render.Truncate(m.status, max(m.width-2, 1)))
	}
	if m.current != nil {
		return " " + s.Success.Render("Selected "+m.current.String())
	}
	return " " + s.Muted.Render("Nothing selected")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	hub := pointer.NewHub()
	m, err := initialModel(cfg, hub)
	if errors.Is(err, period.ErrInvalidRange) {
		return errors.New(errmsg.Format(errmsg.OpGridBuild, err))
	}
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer m.selector.Deactivate()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
