package period

import (
	"fmt"
	"time"
)

// Option is one selectable cell of the selector grid: a single month or
// quarter spanning its full period.
type Option struct {
	Label string
	Range DateRange
}

// Options groups options by the 4-digit year of their period start.
// Years keeps the chronological insertion order of the buckets.
type Options struct {
	Years  []string
	ByYear map[string][]Option
}

// Len returns the total number of options across all years.
func (o Options) Len() int {
	n := 0
	for _, y := range o.Years {
		n += len(o.ByYear[y])
	}
	return n
}

// Flatten returns every option in chronological order.
func (o Options) Flatten() []Option {
	out := make([]Option, 0, o.Len())
	for _, y := range o.Years {
		out = append(out, o.ByYear[y]...)
	}
	return out
}

func (o *Options) add(year string, opt Option) {
	if o.ByYear == nil {
		o.ByYear = make(map[string][]Option)
	}
	if _, ok := o.ByYear[year]; !ok {
		o.Years = append(o.Years, year)
	}
	o.ByYear[year] = append(o.ByYear[year], opt)
}

// PeriodsInRange returns the first day of every period from the period of
// r.Start through the period of r.End, inclusive. A range whose edges fall in
// the same period yields exactly one element.
func PeriodsInRange(r DateRange, pt Type) ([]string, error) {
	start, err := Parse(r.Start)
	if err != nil {
		return nil, err
	}
	end, err := Parse(r.End)
	if err != nil {
		return nil, err
	}

	var periods []string
	endKey := periodKey(end, pt)
	for cur := startOf(start, pt); end.After(cur) || periodKey(cur, pt) == endKey; cur = add(cur, pt, 1) {
		periods = append(periods, Format(cur))
	}
	return periods, nil
}

func MonthsInRange(r DateRange) ([]string, error)   { return PeriodsInRange(r, Month) }
func QuartersInRange(r DateRange) ([]string, error) { return PeriodsInRange(r, Quarter) }
func YearsInRange(r DateRange) ([]string, error)    { return PeriodsInRange(r, Year) }

// OptionLabel is the short cell label of the period starting at t:
// "Jan".."Dec" for months, "Q1".."Q4" for quarters.
func OptionLabel(t time.Time, pt Type) string {
	if pt == Quarter {
		return fmt.Sprintf("Q%d", quarter(t))
	}
	return t.Format("Jan")
}

// OptionsByType partitions r into one option per period, grouped by year.
// Periods are emitted while their cursor is strictly before r.End, so a
// period starting exactly on r.End is not offered.
func OptionsByType(r DateRange, pt Type) (Options, error) {
	start, err := Parse(r.Start)
	if err != nil {
		return Options{}, err
	}
	end, err := Parse(r.End)
	if err != nil {
		return Options{}, err
	}
	if end.Before(start) {
		return Options{}, fmt.Errorf("options for %s: %w", r, ErrInvalidRange)
	}

	var opts Options
	for cur := start; cur.Before(end); cur = add(startOf(cur, pt), pt, 1) {
		first := startOf(cur, pt)
		opts.add(first.Format("2006"), Option{
			Label: OptionLabel(first, pt),
			Range: DateRange{Start: Format(first), End: Format(endOf(first, pt))},
		})
	}
	return opts, nil
}

// Columns is the number of grid columns of a year row for pt.
func Columns(pt Type) int {
	if pt == Quarter {
		return 4
	}
	return 12
}

// Column returns the position of the option's period within its year:
// 0-11 for months, 0-3 for quarters.
func (o Option) Column(pt Type) int {
	t, err := Parse(o.Range.Start)
	if err != nil {
		return 0
	}
	if pt == Quarter {
		return quarter(t) - 1
	}
	return int(t.Month()) - 1
}
