package browse

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/tbl/internal/filter"
	"github.com/raphi011/tbl/internal/validate"
)

// editor is the filter widget of one column: a single input for text kinds,
// a from/to pair for range kinds.
type editor struct {
	label  string
	kind   filter.Kind
	inputs []textinput.Model
	focus  int
	valid  bool
}

func newEditor(label string, kind filter.Kind, from, to string) *editor {
	n := 1
	if kind.IsRange() {
		n = 2
	}
	e := &editor{label: label, kind: kind, valid: true}
	values := []string{from, to}
	for i := 0; i < n; i++ {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.SetWidth(20)
		ti.Placeholder = placeholder(kind, i)
		ti.SetValue(values[i])
		e.inputs = append(e.inputs, ti)
	}
	e.inputs[0].Focus()
	e.valid = e.check()
	return e
}

func placeholder(kind filter.Kind, i int) string {
	switch {
	case kind == filter.KindDate:
		return "YYYY-MM-DD"
	case kind.IsRange() && i == 0:
		return "from"
	case kind.IsRange():
		return "to"
	default:
		return "contains"
	}
}

// switchFocus moves between the from and to inputs.
func (e *editor) switchFocus() tea.Cmd {
	if len(e.inputs) < 2 {
		return nil
	}
	e.inputs[e.focus].Blur()
	e.focus = (e.focus + 1) % len(e.inputs)
	return e.inputs[e.focus].Focus()
}

// update feeds a key to the focused input. It reports the new value when the
// keystroke changed the input; rejected keystrokes leave the input as it was.
func (e *editor) update(msg tea.KeyPressMsg) (value string, changed bool, cmd tea.Cmd) {
	in := &e.inputs[e.focus]
	prev := in.Value()
	*in, cmd = in.Update(msg)
	next := in.Value()
	if next == prev {
		return "", false, cmd
	}
	accepted, ok := validate.Accept(e.kind, next)
	if !ok {
		in.SetValue(prev)
		return "", false, cmd
	}
	if accepted != next {
		in.SetValue(accepted)
	}
	e.valid = e.check()
	return accepted, true, cmd
}

// check validates every input and, for ranges, their order.
func (e *editor) check() bool {
	for _, in := range e.inputs {
		if !validate.Valid(e.kind, in.Value()) {
			return false
		}
	}
	if len(e.inputs) == 2 {
		return validate.RangeValid(e.kind, e.inputs[0].Value(), e.inputs[1].Value())
	}
	return true
}

// subIndex is the change-event sub index of the focused input.
func (e *editor) subIndex() string {
	return strconv.Itoa(e.focus)
}

func (e *editor) view() string {
	var b strings.Builder
	b.WriteString(e.label + " (" + e.kind.String() + "): ")
	for i, in := range e.inputs {
		if i > 0 {
			b.WriteString(" – ")
		}
		b.WriteString(in.View())
	}
	return b.String()
}

func (e *editor) help() string {
	if len(e.inputs) == 2 {
		return "type to filter • tab switch from/to • enter/esc done"
	}
	return "type to filter • enter/esc done"
}
