// Package validate implements the filter-input widgets' own validation:
// which keystrokes an input accepts, whether a value is well formed, and
// how currency values are displayed once editing ends.
//
// Validity is a display concern only. The filter engine filters with
// whatever the input holds.
package validate

import (
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/raphi011/tbl/internal/filter"
)

// Keystroke patterns: what an input may hold while it is being edited.
var acceptPatterns = map[filter.Kind]*regexp.Regexp{
	filter.KindDecimal: regexp.MustCompile(`^[0-9]*$`),
	filter.KindJPY:     regexp.MustCompile(`^[¥]?(([0-9]*)|([0-9]{1,3}(,[0-9]{3})*(,[0-9]{0,2})?))$`),
	filter.KindUSD:     regexp.MustCompile(`^[$]?(([0-9]*(\.[0-9]{0,2})?)|([0-9]{1,3}(,[0-9]{3})*(,[0-9]{0,2})?)|([0-9]{1,3}(,[0-9]{3})*(\.[0-9]{0,2})?))$`),
	filter.KindDate:    regexp.MustCompile(`^([0-9]{0,4}|[0-9]{4}-[0-9]{0,2}|[0-9]{4}-[0-9]{2}-[0-9]{0,2})$`),
}

// Completed-value patterns. Empty values are valid: a cleared input is
// not an error.
var validPatterns = map[filter.Kind]*regexp.Regexp{
	filter.KindText:    regexp.MustCompile(`^.*$`),
	filter.KindSelect:  regexp.MustCompile(`^.*$`),
	filter.KindDecimal: regexp.MustCompile(`^[0-9]*$`),
	filter.KindJPY:     regexp.MustCompile(`^[¥]?(([0-9]{1,3}(,[0-9]{3})*)|([0-9]*))$`),
	filter.KindUSD:     regexp.MustCompile(`^[$]?(([0-9]{1,3}(,[0-9]{3})*(\.[0-9]{0,2})?)|([0-9]*)(\.[0-9]{0,2})?)$`),
	filter.KindDate:    regexp.MustCompile(`^([0-9]{4}-[0-9]{2}-[0-9]{2})?$`),
}

var currencyStripper = strings.NewReplacer("¥", "", "$", "", ",", "")

var printer = message.NewPrinter(language.English)

// Accept reports whether an input of kind may hold value after a keystroke.
// It returns the value to store, which differs from value only when a yen
// input receives a backslash (the yen key on JIS keyboards).
func Accept(kind filter.Kind, value string) (string, bool) {
	if kind == filter.KindJPY && value == `\` {
		return "¥", true
	}
	re, ok := acceptPatterns[kind]
	if !ok {
		return value, true
	}
	if !re.MatchString(value) {
		return value, false
	}
	return value, true
}

// Valid reports whether value is a well-formed input of kind.
func Valid(kind filter.Kind, value string) bool {
	re, ok := validPatterns[kind]
	if !ok || !re.MatchString(value) {
		return false
	}
	if kind == filter.KindDate && value != "" {
		_, ok := filter.ParseDate(value)
		return ok
	}
	return true
}

// Normalize strips currency symbols and grouping separators from numeric
// inputs. Other kinds are returned unchanged.
func Normalize(kind filter.Kind, value string) string {
	if !kind.IsNumeric() {
		return value
	}
	return currencyStripper.Replace(value)
}

// Display renders a finished currency input the way the widget shows it
// after editing: ¥1,500 for yen, $1,500.00 for dollars. Empty and
// unparsable values are returned unchanged, as are other kinds.
func Display(kind filter.Kind, value string) string {
	if value == "" {
		return value
	}
	switch kind {
	case filter.KindJPY:
		n, ok := filter.ParseNumber(value)
		if !ok {
			return value
		}
		return printer.Sprintf("¥%d", int64(math.Round(n)))
	case filter.KindUSD:
		if value == "." {
			return "0"
		}
		n, ok := filter.ParseNumber(value)
		if !ok {
			return value
		}
		return printer.Sprintf("$%.2f", n)
	}
	return value
}

// RangeValid reports whether a from/to pair is a valid range for the dual
// input. A pair with either side empty or unparsable is valid; otherwise
// from must be strictly below to.
func RangeValid(kind filter.Kind, from, to string) bool {
	if from == "" || to == "" {
		return true
	}
	switch {
	case kind.IsNumeric():
		lo, okLo := filter.ParseNumber(from)
		hi, okHi := filter.ParseNumber(to)
		return !okLo || !okHi || lo < hi
	case kind == filter.KindDate:
		lo, okLo := filter.ParseDate(from)
		hi, okHi := filter.ParseDate(to)
		return !okLo || !okHi || lo.Before(hi)
	}
	return true
}
