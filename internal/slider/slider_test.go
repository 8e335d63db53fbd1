package slider

import (
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                     string
		start, end, step, lo, hi float64
		wantStart, wantEnd       float64
		wantLow, wantHigh        float64
	}{
		{name: "plain", start: 0, end: 100, step: 1, lo: 33, hi: 66, wantStart: 0, wantEnd: 100, wantLow: 33, wantHigh: 66},
		{name: "reversed bounds swap", start: 100, end: 0, step: 1, lo: 10, hi: 20, wantStart: 0, wantEnd: 100, wantLow: 10, wantHigh: 20},
		{name: "out of range goes to centre", start: 0, end: 100, step: 1, lo: -5, hi: 250, wantStart: 0, wantEnd: 100, wantLow: 50, wantHigh: 50},
		{name: "snaps to step", start: 0, end: 100, step: 10, lo: 33, hi: 67, wantStart: 0, wantEnd: 100, wantLow: 30, wantHigh: 60},
		{name: "centre snaps from start", start: 5, end: 15, step: 4, lo: 4, hi: 14, wantStart: 5, wantEnd: 15, wantLow: 9, wantHigh: 13},
		{name: "non-positive step is one", start: 0, end: 10, step: 0, lo: 3, hi: 7, wantStart: 0, wantEnd: 10, wantLow: 3, wantHigh: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := New(tt.start, tt.end, tt.step, tt.lo, tt.hi)
			if r.Start != tt.wantStart || r.End != tt.wantEnd || r.Low != tt.wantLow || r.High != tt.wantHigh {
				t.Errorf("New() = %+v, want start=%v end=%v low=%v high=%v",
					r, tt.wantStart, tt.wantEnd, tt.wantLow, tt.wantHigh)
			}
			if r.Type != Dec {
				t.Errorf("Type = %v, want dec", r.Type)
			}
		})
	}
}

func TestNewDate(t *testing.T) {
	t.Parallel()

	r, err := NewDate("2001-01-31", "2001-01-01", "", "")
	if err != nil {
		t.Fatalf("NewDate() error = %v", err)
	}
	if r.Type != Date || r.Start != 0 || r.End != 30 || r.Low != 0 || r.High != 30 {
		t.Errorf("NewDate() = %+v", r)
	}
	start, centre, end := r.Labels()
	if start != "01/01" || centre != "01/16" || end != "01/31" {
		t.Errorf("Labels() = %q, %q, %q, want 01/01, 01/16, 01/31", start, centre, end)
	}

	r, err = NewDate("2020-01-01", "2020-12-31", "2020-09-01", "2020-03-01")
	if err != nil {
		t.Fatalf("NewDate() error = %v", err)
	}
	if got := r.Current("Date"); got != "Date, current: 03/01 - 09/01" {
		t.Errorf("Current() = %q", got)
	}

	if _, err := NewDate("2020-01-01", "soon", "", ""); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("NewDate(invalid) error = %v, want ErrInvalidDate", err)
	}
}

func TestDay(t *testing.T) {
	t.Parallel()

	if got := Day(Epoch); got != 0 {
		t.Errorf("Day(Epoch) = %v, want 0", got)
	}
	jan2002 := time.Date(2002, time.January, 1, 15, 30, 0, 0, time.UTC)
	if got := Day(jan2002); got != 365 {
		t.Errorf("Day(2002-01-01) = %v, want 365", got)
	}
	if got := DateOf(365).Format("2006-01-02"); got != "2002-01-01" {
		t.Errorf("DateOf(365) = %s, want 2002-01-01", got)
	}
}

func TestSetHandles(t *testing.T) {
	t.Parallel()

	r := New(0, 100, 1, 30, 60)

	if r.SetLow(-1) {
		t.Error("SetLow below Start accepted")
	}
	if r.SetLow(70) {
		t.Error("SetLow above High accepted")
	}
	if !r.SetLow(60) || r.Low != 60 {
		t.Errorf("SetLow(60) refused, Low = %v", r.Low)
	}
	if r.SetHigh(59) {
		t.Error("SetHigh below Low accepted")
	}
	if r.SetHigh(101) {
		t.Error("SetHigh above End accepted")
	}
	if !r.SetHigh(100) || r.High != 100 {
		t.Errorf("SetHigh(100) refused, High = %v", r.High)
	}

	if !r.Set(0, "10") || r.Low != 10 {
		t.Errorf("Set(0, 10) refused, Low = %v", r.Low)
	}
	if r.Set(1, "abc") || r.Set(2, "50") {
		t.Error("Set accepted an invalid value or handle")
	}

	d, err := NewDate("2001-01-01", "2001-01-31", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if !d.Set(1, "2001-01-10") || d.High != 9 {
		t.Errorf("Set(1, 2001-01-10) on date range: High = %v, want 9", d.High)
	}
}

func TestPositions(t *testing.T) {
	t.Parallel()

	r := New(0, 100, 1, 30, 60)
	if got := r.ValueAt(0, 11); got != 0 {
		t.Errorf("ValueAt(0) = %v, want 0", got)
	}
	if got := r.ValueAt(5, 11); got != 50 {
		t.Errorf("ValueAt(5) = %v, want 50", got)
	}
	if got := r.ValueAt(99, 11); got != 100 {
		t.Errorf("ValueAt(past end) = %v, want 100", got)
	}
	if got := r.PositionOf(50, 11); got != 5 {
		t.Errorf("PositionOf(50) = %d, want 5", got)
	}

	stepped := New(0, 100, 10, 0, 100)
	if got := stepped.ValueAt(3, 8); got != 40 {
		t.Errorf("ValueAt on step grid = %v, want 40", got)
	}

	if got := r.BarLeft(); got != 30 {
		t.Errorf("BarLeft() = %v, want 30", got)
	}
	if got := r.BarWidth(); got != 30 {
		t.Errorf("BarWidth() = %v, want 30", got)
	}
	if got := r.Bar(11); got != "───●━━●────" {
		t.Errorf("Bar(11) = %q", got)
	}

	prices := New(120, 250, 1, 120, 250)
	for pos, want := range map[int]float64{1: 124, 2: 128, 28: 245, 29: 250} {
		if got := prices.ValueAt(pos, 30); got != want {
			t.Errorf("ValueAt(%d, 30) on 120..250 = %v, want %v", pos, got, want)
		}
	}

		flat := New(5, 5, 1, 5, 5)
	if flat.BarLeft() != 0 || flat.BarWidth() != 100 || flat.ValueAt(3, 10) != 5 || flat.PositionOf(5, 10) != 0 {
		t.Errorf("degenerate range: %+v", flat)
	}
}

func TestLabels(t *testing.T) {
	t.Parallel()

	start, centre, end := New(0, 5, 1, 0, 5).Labels()
	if start != "0" || centre != "2.5" || end != "5" {
		t.Errorf("Labels() = %q, %q, %q, want 0, 2.5, 5", start, centre, end)
	}
	if got := New(0, 5, 1, 0, 5).Current(""); got != "" {
		t.Errorf("Current(\"\") = %q, want empty", got)
	}
}
