package periodselector

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/periodpicker/internal/period"
	"github.com/llehouerou/periodpicker/internal/ui/action"
	"github.com/llehouerou/periodpicker/internal/ui/pointer"
	"github.com/llehouerou/periodpicker/internal/ui/testutil"
)

var fixedNow = time.Date(2026, time.October, 19, 15, 4, 5, 0, time.UTC)

type call struct {
	pt period.Type
	r  period.DateRange
}

type fixture struct {
	m     *Model
	h     *testutil.ComponentHarness
	calls *[]call
}

func newFixture(t *testing.T, cfg Config) fixture {
	t.Helper()
	var calls []call
	cfg.OnUpdateDateRange = func(pt period.Type, r period.DateRange) {
		calls = append(calls, call{pt, r})
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return fixedNow }
	}
	if cfg.Bounds == nil {
		b := bounds2324
		cfg.Bounds = &b
	}
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return fixture{m: m, h: testutil.NewComponentHarness(m), calls: &calls}
}

// clickText clicks the first occurrence of text in the rendered selector.
func (f fixture) clickText(t *testing.T, text string) tea.Cmd {
	t.Helper()
	cmd, ok := f.h.ClickText(text, 0, 0)
	if !ok {
		t.Fatalf("%q not found in view:\n%s", text, testutil.StripANSI(f.h.View()))
	}
	return cmd
}

// clickCell clicks the cell labeled label in the row of year.
func (f fixture) clickCell(t *testing.T, year, label string) tea.Cmd {
	t.Helper()
	for y, line := range strings.Split(testutil.StripANSI(f.h.View()), "\n") {
		i := strings.Index(line, year+"  ")
		if i < 0 {
			continue
		}
		j := strings.Index(line[i:], label)
		if j < 0 {
			continue
		}
		return f.h.SendClick(ansi.StringWidth(line[:i+j]), y)
	}
	t.Fatalf("cell %s %s not found in view:\n%s", year, label, testutil.StripANSI(f.h.View()))
	return nil
}

func TestNew_RequiresCallback(t *testing.T) {
	_, err := New(Config{})
	if !errors.Is(err, ErrNoCallback) {
		t.Errorf("New() error = %v, want ErrNoCallback", err)
	}
}

func TestNew_InvalidRanges(t *testing.T) {
	noop := func(period.Type, period.DateRange) {}
	inverted := period.DateRange{Start: "2024-05-01", End: "2024-01-01"}

	if _, err := New(Config{OnUpdateDateRange: noop, Bounds: &inverted}); !errors.Is(err, period.ErrInvalidRange) {
		t.Errorf("inverted bounds: error = %v, want ErrInvalidRange", err)
	}
	if _, err := New(Config{OnUpdateDateRange: noop, DefaultSelectedRange: &inverted}); !errors.Is(err, period.ErrInvalidRange) {
		t.Errorf("inverted selection: error = %v, want ErrInvalidRange", err)
	}
	if _, err := New(Config{OnUpdateDateRange: noop, PeriodRestriction: period.Week}); err == nil {
		t.Error("week restriction should be rejected")
	}
}

func TestNew_DefaultMount(t *testing.T) {
	m, err := New(Config{
		OnUpdateDateRange: func(period.Type, period.DateRange) {},
		Now:               func() time.Time { return fixedNow },
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	s := m.State()
	if s.PeriodType != period.Month {
		t.Errorf("PeriodType = %s, want month", s.PeriodType)
	}
	if s.Range != (period.DateRange{}) {
		t.Errorf("Range = %v, want empty", s.Range)
	}

	years := s.Options.Years
	first := s.Options.ByYear[years[0]]
	last := s.Options.ByYear[years[len(years)-1]]
	if years[0] != "1963" || first[0].Label != "May" {
		t.Errorf("earliest = %s %s, want 1963 May", years[0], first[0].Label)
	}
	if years[len(years)-1] != "2026" || last[len(last)-1].Label != "Oct" {
		t.Errorf("latest = %s %s, want 2026 Oct", years[len(years)-1], last[len(last)-1].Label)
	}
}

func TestView_Header(t *testing.T) {
	f := newFixture(t, Config{})
	if msg := testutil.AssertContains(f.h.View(), Placeholder+" - "+Placeholder); msg != "" {
		t.Error(msg)
	}
	if f.m.IsOpen() {
		t.Error("dropdown should start closed")
	}

	sel := period.DateRange{Start: "2024-01-01", End: "2024-03-31"}
	f = newFixture(t, Config{DefaultSelectedRange: &sel})
	if msg := testutil.AssertContains(f.h.View(), "Jan, 2024 - Mar, 2024"); msg != "" {
		t.Error(msg)
	}

	f = newFixture(t, Config{DefaultSelectedRange: &sel, DefaultPeriodType: period.Quarter})
	if msg := testutil.AssertContains(f.h.View(), "Q1, 2024 - Q1, 2024"); msg != "" {
		t.Error(msg)
	}
}

func TestEdgeLabelClickOpensAndSetsPhase(t *testing.T) {
	sel := period.DateRange{Start: "2024-01-01", End: "2024-03-31"}
	f := newFixture(t, Config{DefaultSelectedRange: &sel})

	f.clickText(t, "Mar, 2024")
	if !f.m.IsOpen() {
		t.Fatal("clicking the end label should open the dropdown")
	}
	if f.m.State().Phase != SelectingEnd {
		t.Errorf("Phase = %s, want selecting end", f.m.State().Phase)
	}

	f.clickText(t, "Jan, 2024")
	if f.m.State().Phase != SelectingStart {
		t.Errorf("Phase = %s, want selecting start", f.m.State().Phase)
	}
	if len(*f.calls) != 0 {
		t.Errorf("label clicks should not notify, got %d calls", len(*f.calls))
	}
}

func TestPlaceholderIsNotClickable(t *testing.T) {
	f := newFixture(t, Config{})
	f.clickText(t, Placeholder)
	if f.m.IsOpen() {
		t.Error("placeholder click should not open the dropdown")
	}
}

func TestChevronTogglesDropdown(t *testing.T) {
	f := newFixture(t, Config{})
	f.clickText(t, chevronClosed)
	if !f.m.IsOpen() {
		t.Fatal("chevron should open the dropdown")
	}
	f.clickText(t, chevronOpen)
	if f.m.IsOpen() {
		t.Error("chevron should close the dropdown")
	}
}

func TestSelectRangeByClicks(t *testing.T) {
	f := newFixture(t, Config{})
	f.h.SendEnter()
	f.h.ClearCommands()

	f.clickCell(t, "2024", "Feb")
	if got := f.m.Range(); got != (period.DateRange{Start: "2024-02-01"}) {
		t.Fatalf("after start click Range = %v", got)
	}
	if !f.m.IsOpen() || f.m.State().Phase != SelectingEnd {
		t.Fatal("dropdown should stay open and ask for the end")
	}
	if len(*f.calls) != 0 {
		t.Fatal("partial range must not notify")
	}

	f.clickCell(t, "2024", "Apr")
	want := period.DateRange{Start: "2024-02-01", End: "2024-04-30"}
	if f.m.Range() != want {
		t.Errorf("Range = %v, want %v", f.m.Range(), want)
	}
	if f.m.IsOpen() {
		t.Error("completing the range should close the dropdown")
	}
	if len(*f.calls) != 1 || (*f.calls)[0] != (call{period.Month, want}) {
		t.Errorf("calls = %v, want one call with %v", *f.calls, want)
	}

	msgs := f.h.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected one action message, got %v", msgs)
	}
	am, ok := msgs[0].(action.Msg)
	if !ok || am.Source != Source {
		t.Fatalf("message = %#v, want action.Msg from %s", msgs[0], Source)
	}
	rs, ok := am.Action.(RangeSelected)
	if !ok || rs.Range != want || rs.PeriodType != period.Month || rs.Preset != "" {
		t.Errorf("action = %#v", am.Action)
	}
}

func TestStartAfterEndClearsEnd(t *testing.T) {
	sel := period.DateRange{Start: "2024-01-01", End: "2024-03-31"}
	f := newFixture(t, Config{DefaultSelectedRange: &sel})

	f.clickText(t, "Jan, 2024")
	f.clickCell(t, "2024", "May")

	if got := f.m.Range(); got != (period.DateRange{Start: "2024-05-01"}) {
		t.Errorf("Range = %v, want start 2024-05-01 and no end", got)
	}
	if len(*f.calls) != 0 {
		t.Error("callback must not fire for a partial range")
	}
	if msg := testutil.AssertContains(f.h.View(), "May, 2024 - "+Placeholder); msg != "" {
		t.Error(msg)
	}
}

func TestEndBeforeStartRebases(t *testing.T) {
	sel := period.DateRange{Start: "2024-05-01"}
	f := newFixture(t, Config{DefaultSelectedRange: &sel})

	f.h.SendKey("e")
	f.clickCell(t, "2024", "Jan")

	if got := f.m.Range(); got != (period.DateRange{Start: "2024-01-01"}) {
		t.Errorf("Range = %v, want re-based start 2024-01-01", got)
	}
	if f.m.State().Phase != SelectingStart {
		t.Errorf("Phase = %s, want selecting start", f.m.State().Phase)
	}
	if !f.m.IsOpen() {
		t.Error("dropdown should stay open after re-basing")
	}
	if len(*f.calls) != 0 {
		t.Error("callback must not fire after re-basing")
	}
}

func TestPresetFiresImmediately(t *testing.T) {
	q1 := period.Preset{Label: "First quarter", Range: period.DateRange{Start: "2024-01-01", End: "2024-03-31"}}
	h2 := period.Preset{Label: "Second half", Range: period.DateRange{Start: "2024-07-01", End: "2024-12-31"}}
	f := newFixture(t, Config{Presets: []period.Preset{q1, h2}})

	f.h.SendEnter()
	f.clickCell(t, "2023", "Jun") // partial range in progress
	f.h.ClearCommands()

	f.clickText(t, "Second half")
	if f.m.Range() != h2.Range {
		t.Errorf("Range = %v, want %v", f.m.Range(), h2.Range)
	}
	if len(*f.calls) != 1 || (*f.calls)[0].r != h2.Range {
		t.Errorf("calls = %v, want one call with preset range", *f.calls)
	}
	if f.m.State().Phase != SelectingStart {
		t.Error("preset should reset the phase to selecting start")
	}

	msgs := f.h.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected one action message, got %v", msgs)
	}
	if rs := msgs[0].(action.Msg).Action.(RangeSelected); rs.Preset != "Second half" {
		t.Errorf("Preset = %q, want Second half", rs.Preset)
	}

	// keyboard shortcut
	f.h.SendKey("1")
	if f.m.Range() != q1.Range || len(*f.calls) != 2 {
		t.Errorf("key 1 should apply the first preset, Range = %v", f.m.Range())
	}
}

func TestPresetsHiddenWithoutPresets(t *testing.T) {
	f := newFixture(t, Config{})
	f.h.SendEnter()
	if msg := testutil.AssertNotContains(f.h.View(), "1 "); msg != "" {
		t.Error(msg)
	}
	f.h.SendKey("1")
	if len(*f.calls) != 0 {
		t.Error("preset key without presets should do nothing")
	}
}

func TestOutsideClickClosesDropdown(t *testing.T) {
	hub := pointer.NewHub()
	sel := period.DateRange{Start: "2024-01-01", End: "2024-03-31"}
	f := newFixture(t, Config{DefaultSelectedRange: &sel})
	f.m.Activate(hub)
	defer f.m.Deactivate()
	f.m.SetOrigin(10, 5)

	f.h.SendKey("s")
	before := f.m.State()

	// inside: the header line
	hub.Dispatch(testutil.Click(11, 5))
	if !f.m.IsOpen() {
		t.Fatal("press inside should not close the dropdown")
	}

	hub.Dispatch(testutil.Click(0, 0))
	if f.m.IsOpen() {
		t.Error("press outside should close the dropdown")
	}
	after := f.m.State()
	if after.Range != before.Range || after.Options.Len() != before.Options.Len() {
		t.Error("outside press must not change range or options")
	}
	if len(*f.calls) != 0 {
		t.Error("outside press must not notify")
	}
}

func TestActivateDeactivate(t *testing.T) {
	hub := pointer.NewHub()
	f := newFixture(t, Config{})

	f.m.Activate(hub)
	f.m.Activate(hub)
	if hub.Len() != 1 || !f.m.Active() {
		t.Fatalf("Len() = %d, want a single live subscription", hub.Len())
	}

	f.m.Deactivate()
	f.m.Deactivate()
	if hub.Len() != 0 || f.m.Active() {
		t.Error("Deactivate should release the subscription")
	}
}

func TestTogglePeriodType(t *testing.T) {
	sel := period.DateRange{Start: "2024-02-10", End: "2024-05-20"}
	f := newFixture(t, Config{DefaultSelectedRange: &sel})
	f.h.SendEnter()

	f.h.SendTab()
	if f.m.PeriodType() != period.Quarter {
		t.Fatalf("PeriodType = %s, want quarter", f.m.PeriodType())
	}
	if got := f.m.Range(); got != (period.DateRange{Start: "2024-01-01", End: "2024-06-30"}) {
		t.Errorf("Range = %v, want snapped to quarters", got)
	}
	if msg := testutil.AssertContains(f.h.View(), "Q4"); msg != "" {
		t.Error(msg)
	}

	f.clickText(t, "Month")
	if f.m.PeriodType() != period.Month {
		t.Errorf("PeriodType = %s, want month", f.m.PeriodType())
	}
	if len(*f.calls) != 0 {
		t.Error("switching type should not notify")
	}
}

func TestRestrictionHidesTypeHeader(t *testing.T) {
	f := newFixture(t, Config{PeriodRestriction: period.Quarter, DefaultPeriodType: period.Month})
	f.h.SendEnter()

	if f.m.PeriodType() != period.Quarter {
		t.Errorf("PeriodType = %s, want quarter", f.m.PeriodType())
	}
	view := f.h.View()
	if msg := testutil.AssertNotContains(view, "Month"); msg != "" {
		t.Error(msg)
	}
	if msg := testutil.AssertNotContains(view, "Quarter"); msg != "" {
		t.Error(msg)
	}

	f.h.SendTab()
	if f.m.PeriodType() != period.Quarter {
		t.Error("toggle must be ignored under a restriction")
	}
}

func TestKeyboardSelection(t *testing.T) {
	f := newFixture(t, Config{})

	f.h.SendEnter() // open, cursor on the latest period (Dec 2024)
	f.h.SendSpecialKey(tea.KeyLeft)
	f.h.SendEnter() // start = Nov 2024
	f.h.SendSpecialKey(tea.KeyUp)
	f.h.SendEnter() // Nov 2023 is before the start: re-base

	if got := f.m.Range(); got != (period.DateRange{Start: "2023-11-01"}) {
		t.Fatalf("Range = %v, want re-based start 2023-11-01", got)
	}

	f.h.SendSpecialKey(tea.KeyRight)
	f.h.SendSpecialKey(tea.KeyRight)
	f.h.SendEnter() // start = Jan 2024, crossing the year row
	f.h.SendSpecialKey(tea.KeyRight)
	f.h.SendEnter() // end = Feb 2024

	want := period.DateRange{Start: "2024-01-01", End: "2024-02-29"}
	if f.m.Range() != want {
		t.Errorf("Range = %v, want %v", f.m.Range(), want)
	}
	if len(*f.calls) != 1 || f.m.IsOpen() {
		t.Errorf("calls = %v, open = %v", *f.calls, f.m.IsOpen())
	}
}

func TestEscapeCloses(t *testing.T) {
	f := newFixture(t, Config{})
	f.h.SendEnter()
	f.h.SendEscape()
	if f.m.IsOpen() {
		t.Error("esc should close the dropdown")
	}
}

func TestGridScrollsToFocusedYear(t *testing.T) {
	f := newFixture(t, Config{Bounds: &period.DateRange{Start: period.DefaultStartDate, End: "2026-10-31"}})
	f.h.SetSize(80, 12)
	f.h.SendEnter()

	view := f.h.View()
	if msg := testutil.AssertContains(view, "2026  "); msg != "" {
		t.Error(msg)
	}
	if msg := testutil.AssertNotContains(view, "1963  "); msg != "" {
		t.Error(msg)
	}
	if !f.m.Contains(0, 0) || f.m.Contains(200, 0) {
		t.Error("Contains should cover the rendered selector only")
	}
}
