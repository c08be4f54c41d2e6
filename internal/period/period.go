// Package period provides calendar period arithmetic for date-range selection:
// period boundaries, period enumeration and option grids grouped by year.
//
// Dates are calendar days serialized as "YYYY-MM-DD". An empty string means
// the date has not been chosen yet.
package period

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the serialization format of every date handled by this package.
const Layout = "2006-01-02"

// DefaultStartDate is the earliest date offered when no bounds are given.
const DefaultStartDate = "1963-05-12"

// ErrInvalidRange is returned when a range ends before it starts.
var ErrInvalidRange = errors.New("end date must not be before start date")

// Type is a calendar period granularity.
type Type string

const (
	Month   Type = "month"
	Quarter Type = "quarter"
	Week    Type = "week" // reserved, never produced by the selector
	Year    Type = "year"
)

// Selectable lists the period types offered in the selector header, in display order.
var Selectable = []Type{Month, Quarter}

// Valid reports whether t is a known period type.
func (t Type) Valid() bool {
	switch t {
	case Month, Quarter, Week, Year:
		return true
	}
	return false
}

// ParseType converts a config string to a Type. The empty string is accepted
// and returns the empty Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if s == "" || t.Valid() {
		return t, nil
	}
	return "", fmt.Errorf("unknown period type %q", s)
}

// Edge selects one end of a period or range.
type Edge int

const (
	Start Edge = iota
	End
)

func (e Edge) String() string {
	if e == End {
		return "end"
	}
	return "start"
}

// DateRange is a pair of calendar days.
type DateRange struct {
	Start string `koanf:"start"`
	End   string `koanf:"end"`
}

// Complete reports whether both edges are set.
func (r DateRange) Complete() bool {
	return r.Start != "" && r.End != ""
}

// Validate checks that both edges parse and that End is not before Start.
func (r DateRange) Validate() error {
	start, err := Parse(r.Start)
	if err != nil {
		return err
	}
	end, err := Parse(r.End)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("%s..%s: %w", r.Start, r.End, ErrInvalidRange)
	}
	return nil
}

func (r DateRange) String() string {
	return r.Start + ".." + r.End
}

// Parse parses a calendar day in Layout. Times are in UTC so that day
// arithmetic never crosses a DST boundary.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// Format renders t as a calendar day.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Today returns the calendar day of now.
func Today(now time.Time) string {
	return Format(now)
}
