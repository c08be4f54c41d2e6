package period

import (
	"fmt"
	"time"
)

// startOf truncates t to the first day of its period.
func startOf(t time.Time, pt Type) time.Time {
	switch pt {
	case Year:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	case Quarter:
		m := time.Month((int(t.Month())-1)/3*3 + 1)
		return time.Date(t.Year(), m, 1, 0, 0, 0, 0, time.UTC)
	case Week:
		// ISO weeks start on Monday.
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}

// add moves t forward by n periods.
func add(t time.Time, pt Type, n int) time.Time {
	switch pt {
	case Year:
		return t.AddDate(n, 0, 0)
	case Quarter:
		return t.AddDate(0, 3*n, 0)
	case Week:
		return t.AddDate(0, 0, 7*n)
	default:
		return t.AddDate(0, n, 0)
	}
}

// endOf returns the last day of t's period.
func endOf(t time.Time, pt Type) time.Time {
	return add(startOf(t, pt), pt, 1).AddDate(0, 0, -1)
}

// quarter returns the 1-based quarter of t.
func quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// EdgeOf returns the first or last day of the period containing date.
func EdgeOf(date string, pt Type, edge Edge) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	if edge == Start {
		return Format(startOf(t, pt)), nil
	}
	return Format(endOf(t, pt)), nil
}

func StartOfMonth(date string) (string, error)   { return EdgeOf(date, Month, Start) }
func EndOfMonth(date string) (string, error)     { return EdgeOf(date, Month, End) }
func StartOfQuarter(date string) (string, error) { return EdgeOf(date, Quarter, Start) }
func EndOfQuarter(date string) (string, error)   { return EdgeOf(date, Quarter, End) }
func StartOfYear(date string) (string, error)    { return EdgeOf(date, Year, Start) }
func EndOfYear(date string) (string, error)      { return EdgeOf(date, Year, End) }

// FullRange widens r so that it starts on the first day of its first period
// and ends on the last day of its last period.
func FullRange(r DateRange, pt Type) (DateRange, error) {
	start, err := EdgeOf(r.Start, pt, Start)
	if err != nil {
		return DateRange{}, err
	}
	end, err := EdgeOf(r.End, pt, End)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: start, End: end}, nil
}

func FullMonthRange(r DateRange) (DateRange, error)   { return FullRange(r, Month) }
func FullQuarterRange(r DateRange) (DateRange, error) { return FullRange(r, Quarter) }
func FullYearRange(r DateRange) (DateRange, error)    { return FullRange(r, Year) }

// SnapEdges re-derives the set edges of r to pt boundaries and leaves unset
// edges empty.
func SnapEdges(r DateRange, pt Type) (DateRange, error) {
	var out DateRange
	var err error
	if r.Start != "" {
		if out.Start, err = EdgeOf(r.Start, pt, Start); err != nil {
			return DateRange{}, err
		}
	}
	if r.End != "" {
		if out.End, err = EdgeOf(r.End, pt, End); err != nil {
			return DateRange{}, err
		}
	}
	return out, nil
}

// periodKey identifies the period containing t, e.g. "M4 2024" or "Q2 2024".
// Two dates with the same key lie in the same period.
func periodKey(t time.Time, pt Type) string {
	switch pt {
	case Year:
		return fmt.Sprintf("Y %d", t.Year())
	case Quarter:
		return fmt.Sprintf("Q%d %d", quarter(t), t.Year())
	case Week:
		y, w := t.ISOWeek()
		return fmt.Sprintf("W%d %d", w, y)
	default:
		return fmt.Sprintf("M%d %d", int(t.Month()), t.Year())
	}
}

// SamePeriod reports whether a and b fall in the same period. Unparseable
// dates, including empty ones, never match.
func SamePeriod(a, b string, pt Type) bool {
	ta, err := Parse(a)
	if err != nil {
		return false
	}
	tb, err := Parse(b)
	if err != nil {
		return false
	}
	return periodKey(ta, pt) == periodKey(tb, pt)
}

// Between reports whether date lies strictly between r.Start and r.End.
// An incomplete range contains nothing.
func Between(date string, r DateRange) bool {
	t, err := Parse(date)
	if err != nil {
		return false
	}
	start, err := Parse(r.Start)
	if err != nil {
		return false
	}
	end, err := Parse(r.End)
	if err != nil {
		return false
	}
	return t.After(start) && t.Before(end)
}

// Before reports whether a is strictly before b. Unparseable dates compare
// as not before, so an unset edge never forces a re-selection.
func Before(a, b string) bool {
	ta, err := Parse(a)
	if err != nil {
		return false
	}
	tb, err := Parse(b)
	if err != nil {
		return false
	}
	return ta.Before(tb)
}

// After reports whether a is strictly after b, with the same rules as Before.
func After(a, b string) bool {
	return Before(b, a)
}

// EdgeLabel renders the period containing date as "Jan, 2024" for months or
// "Q1, 2024" for quarters. It returns the empty string for an unset date.
func EdgeLabel(date string, pt Type) string {
	t, err := Parse(date)
	if err != nil {
		return ""
	}
	switch pt {
	case Quarter:
		return fmt.Sprintf("Q%d, %d", quarter(t), t.Year())
	case Year:
		return fmt.Sprintf("%d", t.Year())
	default:
		return t.Format("Jan, 2006")
	}
}
