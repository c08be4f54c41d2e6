package period

import (
	"fmt"
	"time"
)

// Preset is a named shortcut range.
type Preset struct {
	Label string
	Range DateRange
}

// Relative preset kinds, resolved against a clock by RelativePreset.
const (
	LastMonth     = "last_month"
	LastQuarter   = "last_quarter"
	LastYear      = "last_year"
	MonthToDate   = "month_to_date"
	QuarterToDate = "quarter_to_date"
	YearToDate    = "year_to_date"
	Last12Months  = "last_12_months"
)

// RelativeKinds lists the supported relative preset kinds.
var RelativeKinds = []string{
	LastMonth, LastQuarter, LastYear,
	MonthToDate, QuarterToDate, YearToDate,
	Last12Months,
}

// RelativeRange resolves a relative preset kind to a concrete range as of now.
func RelativeRange(kind string, now time.Time) (DateRange, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	full := func(t time.Time, pt Type) DateRange {
		return DateRange{Start: Format(startOf(t, pt)), End: Format(endOf(t, pt))}
	}
	toDate := func(pt Type) DateRange {
		return DateRange{Start: Format(startOf(today, pt)), End: Format(today)}
	}

	switch kind {
	case LastMonth:
		return full(add(startOf(today, Month), Month, -1), Month), nil
	case LastQuarter:
		return full(add(startOf(today, Quarter), Quarter, -1), Quarter), nil
	case LastYear:
		return full(add(startOf(today, Year), Year, -1), Year), nil
	case MonthToDate:
		return toDate(Month), nil
	case QuarterToDate:
		return toDate(Quarter), nil
	case YearToDate:
		return toDate(Year), nil
	case Last12Months:
		first := add(startOf(today, Month), Month, -11)
		return DateRange{Start: Format(first), End: Format(endOf(today, Month))}, nil
	}
	return DateRange{}, fmt.Errorf("unknown relative preset %q", kind)
}

// RelativePreset builds a labeled preset for kind as of now.
func RelativePreset(label, kind string, now time.Time) (Preset, error) {
	r, err := RelativeRange(kind, now)
	if err != nil {
		return Preset{}, err
	}
	return Preset{Label: label, Range: r}, nil
}

// DefaultPresets returns a sensible preset list as of now.
func DefaultPresets(now time.Time) []Preset {
	labels := []struct{ label, kind string }{
		{"Last month", LastMonth},
		{"Last quarter", LastQuarter},
		{"Year to date", YearToDate},
		{"Last 12 months", Last12Months},
	}
	presets := make([]Preset, 0, len(labels))
	for _, l := range labels {
		// kinds are constants known to RelativeRange
		p, _ := RelativePreset(l.label, l.kind, now)
		presets = append(presets, p)
	}
	return presets
}
