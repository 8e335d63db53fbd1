package validate

import (
	"testing"

	"github.com/raphi011/tbl/internal/filter"
)

func TestAccept(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		kind  filter.Kind
		value string
		want  string
		ok    bool
	}{
		{"dec digits", filter.KindDecimal, "120", "120", true},
		{"dec rejects dot", filter.KindDecimal, "1.5", "1.5", false},
		{"dec empty", filter.KindDecimal, "", "", true},
		{"yen backslash", filter.KindJPY, `\`, "¥", true},
		{"yen grouped", filter.KindJPY, "¥1,500", "¥1,500", true},
		{"yen partial group", filter.KindJPY, "¥1,5", "¥1,5", true},
		{"yen rejects letters", filter.KindJPY, "¥1a", "¥1a", false},
		{"usd cents", filter.KindUSD, "$3.0", "$3.0", true},
		{"usd grouped cents", filter.KindUSD, "$1,234.56", "$1,234.56", true},
		{"usd rejects three decimals", filter.KindUSD, "3.000", "3.000", false},
		{"usd bare dot", filter.KindUSD, ".", ".", true},
		{"date year prefix", filter.KindDate, "202", "202", true},
		{"date month prefix", filter.KindDate, "2020-0", "2020-0", true},
		{"date full", filter.KindDate, "2020-06-15", "2020-06-15", true},
		{"date rejects slash", filter.KindDate, "2020/06", "2020/06", false},
		{"date rejects overlong", filter.KindDate, "2020-06-155", "2020-06-155", false},
		{"text anything", filter.KindText, "any 'thing' ¥$", "any 'thing' ¥$", true},
		{"select anything", filter.KindSelect, "x", "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Accept(tt.kind, tt.value)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Accept(%v, %q) = %q, %v, want %q, %v", tt.kind, tt.value, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind  filter.Kind
		value string
		want  bool
	}{
		{filter.KindText, "anything", true},
		{filter.KindDecimal, "42", true},
		{filter.KindDecimal, "4.2", false},
		{filter.KindJPY, "¥1,500", true},
		{filter.KindJPY, "1500", true},
		{filter.KindJPY, "¥1,5", false},
		{filter.KindUSD, "$1,500.00", true},
		{filter.KindUSD, "2.5", true},
		{filter.KindUSD, "$1,50", false},
		{filter.KindDate, "", true},
		{filter.KindDate, "2020-06-15", true},
		{filter.KindDate, "2020-13-40", false},
		{filter.KindDate, "2020-6-15", false},
		{filter.Kind(99), "x", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.kind, tt.value); got != tt.want {
			t.Errorf("Valid(%v, %q) = %v, want %v", tt.kind, tt.value, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind  filter.Kind
		value string
		want  string
	}{
		{filter.KindJPY, "¥1,500", "1500"},
		{filter.KindUSD, "$1,234.56", "1234.56"},
		{filter.KindDecimal, "12", "12"},
		{filter.KindText, "$1,000", "$1,000"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.kind, tt.value); got != tt.want {
			t.Errorf("Normalize(%v, %q) = %q, want %q", tt.kind, tt.value, got, tt.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind  filter.Kind
		value string
		want  string
	}{
		{filter.KindJPY, "1500", "¥1,500"},
		{filter.KindJPY, "¥1,500", "¥1,500"},
		{filter.KindJPY, "", ""},
		{filter.KindUSD, "1500", "$1,500.00"},
		{filter.KindUSD, "$3.5", "$3.50"},
		{filter.KindUSD, ".", "0"},
		{filter.KindUSD, "abc", "abc"},
		{filter.KindDecimal, "1500", "1500"},
		{filter.KindDate, "2020-06-15", "2020-06-15"},
	}

	for _, tt := range tests {
		if got := Display(tt.kind, tt.value); got != tt.want {
			t.Errorf("Display(%v, %q) = %q, want %q", tt.kind, tt.value, got, tt.want)
		}
	}
}

func TestRangeValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     filter.Kind
		from, to string
		want     bool
	}{
		{"ascending numbers", filter.KindDecimal, "1", "2", true},
		{"equal numbers", filter.KindDecimal, "2", "2", false},
		{"descending currency", filter.KindUSD, "$3.00", "$1.50", false},
		{"open side", filter.KindJPY, "100", "", true},
		{"unparsable side", filter.KindDecimal, "x", "1", true},
		{"ascending dates", filter.KindDate, "2020-01-01", "2020-12-31", true},
		{"equal dates", filter.KindDate, "2020-01-01", "2020-01-01", false},
		{"text is never a range", filter.KindText, "b", "a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RangeValid(tt.kind, tt.from, tt.to); got != tt.want {
				t.Errorf("RangeValid(%v, %q, %q) = %v, want %v", tt.kind, tt.from, tt.to, got, tt.want)
			}
		})
	}
}
