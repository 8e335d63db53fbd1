package browse

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/tbl/internal/ui/styles"
)

// maxPickerRows limits the visible options of the picker.
const maxPickerRows = 8

// optionSource implements fuzzy.Source for picker options.
type optionSource []string

func (s optionSource) String(i int) string { return s[i] }
func (s optionSource) Len() int            { return len(s) }

// picker is the fuzzy-filtered option list of a categorical column.
type picker struct {
	label   string
	options []string
	filter  string
	matches []fuzzy.Match
	cursor  int
}

func newPicker(label string, options []string) *picker {
	p := &picker{label: label, options: options}
	p.applyFilter()
	return p
}

func (p *picker) applyFilter() {
	if p.filter == "" {
		p.matches = make([]fuzzy.Match, len(p.options))
		for i, o := range p.options {
			p.matches[i] = fuzzy.Match{Str: o, Index: i}
		}
	} else {
		p.matches = fuzzy.FindFrom(p.filter, optionSource(p.options))
	}
	if p.cursor >= len(p.matches) {
		p.cursor = max(len(p.matches)-1, 0)
	}
}

func (p *picker) move(delta int) {
	if len(p.matches) == 0 {
		return
	}
	p.cursor = (p.cursor + delta + len(p.matches)) % len(p.matches)
}

func (p *picker) typed(text string) {
	p.filter += text
	p.applyFilter()
}

func (p *picker) backspace() {
	if p.filter == "" {
		return
	}
	r := []rune(p.filter)
	p.filter = string(r[:len(r)-1])
	p.applyFilter()
}

// selected returns the option under the cursor and its index in options.
func (p *picker) selected() (string, int, bool) {
	if len(p.matches) == 0 {
		return "", -1, false
	}
	m := p.matches[p.cursor]
	return p.options[m.Index], m.Index, true
}

func (p *picker) view() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is: %s\n", p.label, styles.AccentStyle.Render(p.filter))
	if len(p.matches) == 0 {
		b.WriteString(styles.MutedStyle.Render("  no matches"))
		return b.String()
	}

	start := 0
	if p.cursor >= maxPickerRows {
		start = p.cursor - maxPickerRows + 1
	}
	end := min(start+maxPickerRows, len(p.matches))
	for i := start; i < end; i++ {
		m := p.matches[i]
		line := highlightMatch(m.Str, m.MatchedIndexes)
		if i == p.cursor {
			b.WriteString(styles.AccentStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (p *picker) help() string {
	return "type to search • ↑/↓ move • enter pick • ctrl+x clear • esc cancel"
}

// highlightMatch styles the matched characters of a fuzzy match.
func highlightMatch(s string, matched []int) string {
	if len(matched) == 0 {
		return s
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range s {
		if hit[i] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
