package browse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/raphi011/tbl/internal/dataset"
	"github.com/raphi011/tbl/internal/filter"
	"github.com/raphi011/tbl/internal/slider"
	"github.com/raphi011/tbl/internal/ui/styles"
	"github.com/raphi011/tbl/internal/validate"
)

// barWidth is the number of cells of the range bar track.
const barWidth = 30

// statusLine shows the visible row count and the active filters.
func (m *Model) statusLine() string {
	ds := m.view.Engine.Dataset()
	count := fmt.Sprintf("%d/%d rows", len(m.lines), ds.Len())

	criteria := m.view.Engine.Filters().Criteria()
	if len(criteria) == 0 {
		return styles.AccentStyle.Render(count)
	}
	descs := make([]string, len(criteria))
	for i, c := range criteria {
		descs[i] = c.Description()
	}
	return styles.AccentStyle.Render(count) + "  " +
		styles.MutedStyle.Render(strings.Join(descs, " · "))
}

// rangeBar draws the slider of the focused range column, or nothing for
// other columns.
func (m *Model) rangeBar() string {
	label := m.Column()
	r, ok := m.rangeOf(label)
	if !ok {
		return ""
	}
	start, centre, end := r.Labels()
	return styles.MutedStyle.Render(start) + " " +
		styles.SuccessStyle.Render(r.Bar(barWidth)) + " " +
		styles.MutedStyle.Render(end) + "  " +
		r.Current(label) + styles.MutedStyle.Render(" (mid "+centre+")")
}

// rangeOf builds the slider state of a range column from the column's
// extent and its current criterion.
func (m *Model) rangeOf(label string) (slider.Range, bool) {
	engine := m.view.Engine
	kind, ok := engine.Kind(label)
	if !ok || !kind.IsRange() {
		return slider.Range{}, false
	}
	var from, to string
	if cur, ok := engine.Criterion(label); ok && cur.Kind() == kind {
		from, to = cur.Bounds()
	}

	if kind == filter.KindDate {
		return dateRange(engine.Dataset(), label, from, to)
	}

	lo, hi, ok := engine.Dataset().Bounds(label, filter.ParseNumber)
	if !ok {
		return slider.Range{}, false
	}
	low, high := lo, hi
	if n, ok := filter.ParseNumber(from); ok {
		low = n
	}
	if n, ok := filter.ParseNumber(to); ok {
		high = n
	}
	return slider.New(lo, hi, 1, low, high), true
}

const dayLayout = "2006-01-02"

func dateRange(ds *dataset.Dataset, label, from, to string) (slider.Range, bool) {
	var first, last time.Time
	found := false
	for _, row := range ds.Rows {
		s, ok := row[label].AsString()
		if !ok {
			continue
		}
		t, ok := filter.ParseDate(s)
		if !ok {
			continue
		}
		if !found || t.Before(first) {
			first = t
		}
		if !found || t.After(last) {
			last = t
		}
		found = true
	}
	if !found {
		return slider.Range{}, false
	}

	low, high := first, last
	if t, ok := filter.ParseDate(from); ok {
		low = t
	}
	if t, ok := filter.ParseDate(to); ok {
		high = t
	}
	r, err := slider.NewDate(first.Format(dayLayout), last.Format(dayLayout),
		low.Format(dayLayout), high.Format(dayLayout))
	if err != nil {
		return slider.Range{}, false
	}
	return r, true
}

var handleNames = [2]string{"low", "high"}

// nudge moves handle 0 (low) or 1 (high) of the focused range column by
// delta cells of the bar track and applies the new bound as a filter change.
// Where one cell is finer than the step grid the handle moves one step.
func (m *Model) nudge(handle, delta int) {
	label := m.Column()
	r, ok := m.rangeOf(label)
	if !ok {
		if label != "" {
			m.say("%s has no range", label)
		}
		return
	}

	cur := r.Low
	if handle == 1 {
		cur = r.High
	}
	next := r.ValueAt(r.PositionOf(cur, barWidth)+delta, barWidth)
	if next == cur {
		next = cur + float64(delta)*r.Step
	}
	value := boundText(r, next)
	if !r.Set(handle, value) {
		m.say("%s %s handle is at its limit", label, handleNames[handle])
		return
	}

	engine := m.view.Engine
	kind, _ := engine.Kind(label)
	bounds := [2]string{}
	if c, ok := engine.Criterion(label); ok && c.Kind() == kind {
		bounds[0], bounds[1] = c.Bounds()
	}
	bounds[handle] = value
	valid := validate.RangeValid(kind, bounds[0], bounds[1])

	if err := engine.HandleChange(value, valid, label, strconv.Itoa(handle)); err != nil {
		m.fail(err)
		return
	}
	if c, ok := engine.Criterion(label); ok {
		m.say("%s", c.Description())
	}
	m.refresh()
}

// boundText renders a slider value the way a filter input holds it.
func boundText(r slider.Range, v float64) string {
	if r.Type == slider.Date {
		return slider.DateOf(math.Round(v)).Format(dayLayout)
	}
	return r.Format(v)
}
