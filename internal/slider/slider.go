// Package slider maps between a dual-range slider's track positions and
// the values it selects.
//
// A Range covers [Start, End] on a step grid with two handles, Low and
// High. Date ranges are measured in whole days since 2001-01-01 UTC.
package slider

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Type is the value domain of a Range.
type Type int

const (
	// Dec is a plain numeric range.
	Dec Type = iota
	// Date is a calendar range in days since Epoch.
	Date
)

func (t Type) String() string {
	if t == Date {
		return "date"
	}
	return "dec"
}

// Epoch is day zero of date ranges.
var Epoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// ErrInvalidDate is returned when a date bound cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// Range is the state of a dual-range slider.
type Range struct {
	Type  Type
	Start float64
	End   float64
	Step  float64
	Low   float64
	High  float64
}

// New creates a numeric Range.
//
// Reversed start and end are swapped. A handle outside [start, end] is
// moved to the rounded centre; both handles then snap down to the step grid.
func New(start, end, step, low, high float64) Range {
	if start > end {
		start, end = end, start
	}
	if step <= 0 {
		step = 1
	}
	r := Range{Type: Dec, Start: start, End: end, Step: step}
	r.Low = r.snap(r.clamp(low))
	r.High = r.snap(r.clamp(high))
	return r
}

// NewDate creates a date Range from YYYY-MM-DD bounds. Reversed bounds and
// reversed handles are swapped. Empty handles default to the full range.
func NewDate(start, end, low, high string) (Range, error) {
	s, err := parseDay(start)
	if err != nil {
		return Range{}, err
	}
	e, err := parseDay(end)
	if err != nil {
		return Range{}, err
	}
	if s > e {
		s, e = e, s
	}

	lo, hi := s, e
	if low != "" || high != "" {
		if lo, err = parseDay(low); err != nil {
			return Range{}, err
		}
		if hi, err = parseDay(high); err != nil {
			return Range{}, err
		}
		if lo > hi {
			lo, hi = hi, lo
		}
	}

	r := New(s, e, 1, lo, hi)
	r.Type = Date
	return r, nil
}

// Day converts a time to its day number.
func Day(t time.Time) float64 {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return math.Floor(t.Sub(Epoch).Hours() / 24)
}

// DateOf converts a day number back to a date.
func DateOf(day float64) time.Time {
	return Epoch.AddDate(0, 0, int(day))
}

func parseDay(s string) (float64, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Day(t), nil
}

func (r Range) centre() float64 {
	return math.Round((r.End-r.Start)/2 + r.Start)
}

func (r Range) clamp(v float64) float64 {
	if v < r.Start || v > r.End {
		return r.centre()
	}
	return v
}

// snap moves v down onto the grid Start + k*Step.
func (r Range) snap(v float64) float64 {
	return r.Start + math.Floor((v-r.Start)/r.Step)*r.Step
}

// SetLow moves the low handle. It is refused unless Start <= v <= High.
func (r *Range) SetLow(v float64) bool {
	if v < r.Start || v > r.High {
		return false
	}
	r.Low = v
	return true
}

// SetHigh moves the high handle. It is refused unless Low <= v <= End.
func (r *Range) SetHigh(v float64) bool {
	if v < r.Low || v > r.End {
		return false
	}
	r.High = v
	return true
}

// Set moves handle 0 (low) or 1 (high) to a value given as text: a number
// for Dec ranges, a YYYY-MM-DD date for Date ranges.
func (r *Range) Set(handle int, value string) bool {
	var v float64
	if r.Type == Date {
		d, err := parseDay(value)
		if err != nil {
			return false
		}
		v = d
	} else {
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return false
		}
		v = n
	}
	switch handle {
	case 0:
		return r.SetLow(v)
	case 1:
		return r.SetHigh(v)
	}
	return false
}

// ValueAt maps a track position in [0, width) to a value on the step grid.
func (r Range) ValueAt(pos, width int) float64 {
	if width <= 1 || r.End == r.Start {
		return r.Start
	}
	pos = min(max(pos, 0), width-1)
	v := r.Start + float64(pos)/float64(width-1)*(r.End-r.Start)
	return math.Min(r.snap(v), r.End)
}

// PositionOf maps a value to a track position in [0, width).
func (r Range) PositionOf(v float64, width int) int {
	if width <= 1 || r.End == r.Start {
		return 0
	}
	pos := int(math.Round((v - r.Start) / (r.End - r.Start) * float64(width-1)))
	return min(max(pos, 0), width-1)
}

// BarLeft is the offset of the selected span, in percent of the track.
func (r Range) BarLeft() float64 {
	if r.End == r.Start {
		return 0
	}
	return (r.Low - r.Start) / (r.End - r.Start) * 100
}

// BarWidth is the length of the selected span, in percent of the track.
func (r Range) BarWidth() float64 {
	if r.End == r.Start {
		return 100
	}
	return (r.High - r.Low) / (r.End - r.Start) * 100
}

// Format renders a value: dates as MM/DD, numbers in shortest form.
func (r Range) Format(v float64) string {
	if r.Type == Date {
		return DateOf(v).Format("01/02")
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Labels returns the start, centre and end labels of the track.
func (r Range) Labels() (start, centre, end string) {
	mid := (r.End-r.Start)/2 + r.Start
	if r.Type == Date {
		mid = math.Floor(mid)
	}
	return r.Format(r.Start), r.Format(mid), r.Format(r.End)
}

// Current describes the selected span, e.g. "Price, current: 10 - 20".
func (r Range) Current(label string) string {
	if label == "" {
		return ""
	}
	return fmt.Sprintf("%s, current: %s - %s", label, r.Format(r.Low), r.Format(r.High))
}

// Bar draws the track in width cells with the selected span highlighted.
func (r Range) Bar(width int) string {
	if width <= 0 {
		return ""
	}
	lo := r.PositionOf(r.Low, width)
	hi := r.PositionOf(r.High, width)
	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == lo || i == hi:
			b.WriteRune('●')
		case i > lo && i < hi:
			b.WriteRune('━')
		default:
			b.WriteRune('─')
		}
	}
	return b.String()
}
