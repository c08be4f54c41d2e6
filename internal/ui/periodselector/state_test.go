package periodselector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/periodpicker/internal/period"
)

var bounds2324 = period.DateRange{Start: "2023-01-01", End: "2024-12-31"}

func mustState(t *testing.T, r period.DateRange, phase Phase) State {
	t.Helper()
	s, err := InitialState(r, bounds2324, "", period.Month)
	require.NoError(t, err)
	s.Phase = phase
	return s
}

func month(start, end string) period.DateRange {
	return period.DateRange{Start: start, End: end}
}

func TestInitialState_TypePrecedence(t *testing.T) {
	tests := []struct {
		name        string
		restriction period.Type
		def         period.Type
		want        period.Type
	}{
		{"restriction wins", period.Quarter, period.Month, period.Quarter},
		{"default", "", period.Quarter, period.Quarter},
		{"fallback month", "", "", period.Month},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := InitialState(period.DateRange{}, bounds2324, tt.restriction, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.PeriodType)
			assert.Equal(t, SelectingStart, s.Phase)
		})
	}
}

func TestInitialState_KeepsSelectedRange(t *testing.T) {
	r := month("2024-01-15", "2024-03-10")
	s, err := InitialState(r, bounds2324, "", "")
	require.NoError(t, err)
	assert.Equal(t, r, s.Range)
	assert.Equal(t, []string{"2023", "2024"}, s.Options.Years)
}

func TestInitialState_InvalidBounds(t *testing.T) {
	_, err := InitialState(period.DateRange{}, month("2024-05-01", "2024-01-01"), "", "")
	require.ErrorIs(t, err, period.ErrInvalidRange)
}

func TestWithPeriodType_SnapsEdgesAndRebuildsGrid(t *testing.T) {
	s := mustState(t, month("2024-02-10", "2024-05-20"), SelectingStart)

	got, err := WithPeriodType(s, period.Quarter)
	require.NoError(t, err)
	assert.Equal(t, period.Quarter, got.PeriodType)
	assert.Equal(t, month("2024-01-01", "2024-06-30"), got.Range)
	assert.Equal(t, 8, got.Options.Len())
	assert.Equal(t, "Q1", got.Options.ByYear["2024"][0].Label)

	// the input state is untouched
	assert.Equal(t, period.Month, s.PeriodType)
}

func TestWithPeriodType_KeepsUnsetEdges(t *testing.T) {
	s := mustState(t, month("2024-02-10", ""), SelectingEnd)
	got, err := WithPeriodType(s, period.Quarter)
	require.NoError(t, err)
	assert.Equal(t, month("2024-01-01", ""), got.Range)
}

func TestWithPeriodType_RestrictionWins(t *testing.T) {
	s, err := InitialState(month("2024-02-10", "2024-05-20"), bounds2324, period.Month, "")
	require.NoError(t, err)

	got, err := WithPeriodType(s, period.Quarter)
	require.NoError(t, err)
	assert.Equal(t, period.Month, got.PeriodType)
	assert.Equal(t, month("2024-02-01", "2024-05-31"), got.Range)
}

func TestSelectDate_StartAfterEndClearsEnd(t *testing.T) {
	s := mustState(t, month("2024-01-01", "2024-03-31"), SelectingStart)

	got, out := SelectDate(s, month("2024-05-01", "2024-05-31"))
	assert.Equal(t, month("2024-05-01", ""), got.Range)
	assert.Equal(t, SelectingEnd, got.Phase)
	assert.False(t, out.Fire)
	assert.False(t, out.CloseDropdown)
}

func TestSelectDate_StartBeforeEndKeepsEnd(t *testing.T) {
	s := mustState(t, month("2024-01-01", "2024-06-30"), SelectingStart)

	got, out := SelectDate(s, month("2024-03-01", "2024-03-31"))
	assert.Equal(t, month("2024-03-01", "2024-06-30"), got.Range)
	assert.Equal(t, SelectingEnd, got.Phase)
	assert.True(t, out.Fire)
	assert.False(t, out.CloseDropdown)
}

func TestSelectDate_EndCompletesRange(t *testing.T) {
	s := mustState(t, month("2024-01-01", ""), SelectingEnd)

	got, out := SelectDate(s, month("2024-03-01", "2024-03-31"))
	assert.Equal(t, month("2024-01-01", "2024-03-31"), got.Range)
	assert.Equal(t, SelectingStart, got.Phase)
	assert.True(t, out.Fire)
	assert.True(t, out.CloseDropdown)
}

func TestSelectDate_EndInSameMonthAsStart(t *testing.T) {
	s := mustState(t, month("2024-03-01", ""), SelectingEnd)

	got, out := SelectDate(s, month("2024-03-01", "2024-03-31"))
	assert.Equal(t, month("2024-03-01", "2024-03-31"), got.Range)
	assert.True(t, out.Fire)
}

func TestSelectDate_EndBeforeStartRebases(t *testing.T) {
	s := mustState(t, month("2024-05-01", ""), SelectingEnd)

	got, out := SelectDate(s, month("2024-01-01", "2024-01-31"))
	assert.Equal(t, month("2024-01-01", ""), got.Range)
	assert.Equal(t, SelectingStart, got.Phase)
	assert.False(t, out.Fire)
	assert.False(t, out.CloseDropdown)
}

func TestSelectDate_ClearsChosenPreset(t *testing.T) {
	s := mustState(t, period.DateRange{}, SelectingStart)
	s, _ = SelectPreset(s, period.Preset{Label: "Q1", Range: month("2024-01-01", "2024-03-31")})
	require.NotNil(t, s.ChosenPreset)

	got, _ := SelectDate(s, month("2024-02-01", "2024-02-29"))
	assert.Nil(t, got.ChosenPreset)
}

func TestSelectPreset_AlwaysFires(t *testing.T) {
	p := period.Preset{Label: "H1", Range: month("2024-01-01", "2024-06-30")}

	for _, phase := range []Phase{SelectingStart, SelectingEnd} {
		s := mustState(t, month("2023-05-01", ""), phase)
		got, out := SelectPreset(s, p)
		assert.Equal(t, p.Range, got.Range)
		assert.Equal(t, SelectingStart, got.Phase)
		require.NotNil(t, got.ChosenPreset)
		assert.Equal(t, "H1", got.ChosenPreset.Label)
		assert.True(t, out.Fire)
		assert.False(t, out.CloseDropdown)
	}
}

func TestChooseEdge(t *testing.T) {
	s := mustState(t, period.DateRange{}, SelectingStart)
	assert.Equal(t, SelectingEnd, ChooseEdge(s, period.End).Phase)
	assert.Equal(t, SelectingStart, ChooseEdge(s, period.Start).Phase)
	assert.Equal(t, period.End, SelectingEnd.Edge())
}

func TestClassify(t *testing.T) {
	s := mustState(t, month("2024-02-01", "2024-05-31"), SelectingStart)

	tests := []struct {
		cell period.DateRange
		want CellKind
	}{
		{month("2024-01-01", "2024-01-31"), CellPlain},
		{month("2024-02-01", "2024-02-29"), CellStart},
		{month("2024-03-01", "2024-03-31"), CellInRange},
		{month("2024-04-01", "2024-04-30"), CellInRange},
		{month("2024-05-01", "2024-05-31"), CellEnd},
		{month("2024-06-01", "2024-06-30"), CellPlain},
	}
	for _, tt := range tests {
		t.Run(tt.cell.Start, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Classify(tt.cell))
		})
	}
}

func TestClassify_PartialRange(t *testing.T) {
	s := mustState(t, month("2024-02-01", ""), SelectingEnd)
	assert.Equal(t, CellStart, s.Classify(month("2024-02-01", "2024-02-29")))
	assert.Equal(t, CellPlain, s.Classify(month("2024-03-01", "2024-03-31")))
}
