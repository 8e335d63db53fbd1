package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/tbl/internal/config"
	"github.com/raphi011/tbl/internal/dataset"
	"github.com/raphi011/tbl/internal/filter"
	"github.com/raphi011/tbl/internal/log"
	"github.com/raphi011/tbl/internal/table"
	"github.com/raphi011/tbl/internal/ui/progress"
	"github.com/raphi011/tbl/internal/validate"
)

// viewFlags are the view options shared by show and browse.
type viewFlags struct {
	filters []string
	sort    string
	columns []string
}

// session is a loaded dataset with its effective config and view.
type session struct {
	cfg  *config.Config
	view *table.View
	// rendered is the last "_"-joined index list reported by the engine.
	rendered string
}

// openSession loads the dataset at path and builds its view: config view
// settings first, then the command-line flags on top.
func openSession(ctx context.Context, path string, flags viewFlags) (*session, error) {
	l := log.FromContext(ctx)

	cfg, err := config.ResolverFromContext(ctx).ConfigFor(path)
	if err != nil {
		return nil, err
	}

	done := l.Timed("load dataset", "path", path)
	stop := startSpinner(ctx, "Loading "+filepath.Base(path))
	ds, err := dataset.Load(ctx, path)
	stop()
	done()
	if err != nil {
		return nil, err
	}
	l.Debug("loaded dataset", "rows", ds.Len(), "columns", len(ds.Labels))

	s := &session{cfg: cfg}
	kinds := cfg.Kinds()
	engine := filter.NewEngine(ds,
		filter.WithKinds(kinds),
		filter.WithOnRendered(func(joined string) { s.rendered = joined }),
	)

	for _, expr := range slices.Concat(cfg.View.Filters, flags.filters) {
		if err := applySpec(engine, expr); err != nil {
			return nil, err
		}
		l.Debug("applied filter", "expr", expr)
	}

	view := table.NewView(engine)
	sortExpr := cfg.View.Sort
	if flags.sort != "" {
		sortExpr = flags.sort
	}
	if sortExpr != "" {
		state, err := table.ParseSort(sortExpr)
		if err != nil {
			return nil, err
		}
		if state.Column, err = ds.Resolve(state.Column); err != nil {
			return nil, err
		}
		view.Sort = state
	}

	if view.Columns, err = columnSelector(ds, flags.columns, cfg.View.Hidden); err != nil {
		return nil, err
	}
	if len(cfg.Labels) > 0 {
		view.ReplaceLabel = func(label string) string {
			if text, ok := cfg.Labels[label]; ok {
				return text
			}
			return label
		}
	}
	view.Highlight = cfg.Rules().Func()
	view.ReplaceValue = cellFormatter(kinds, cfg.Display.Null)

	s.view = view
	return s, nil
}

// applySpec applies a COLUMN:KIND:VALUE expression to the engine.
func applySpec(e *filter.Engine, expr string) error {
	column, kind, from, to, err := filter.ParseSpec(expr)
	if err != nil {
		return err
	}
	return e.SetFilter(column, kind, from, to)
}

// columnSelector returns the shown-column predicate: the listed columns
// when given, otherwise every column not hidden by config.
func columnSelector(ds *dataset.Dataset, columns, hidden []string) (func(string) bool, error) {
	if len(columns) > 0 {
		shown := make(map[string]bool, len(columns))
		for _, ref := range columns {
			label, err := ds.Resolve(ref)
			if err != nil {
				return nil, err
			}
			shown[label] = true
		}
		return func(label string) bool { return shown[label] }, nil
	}
	if len(hidden) == 0 {
		return nil, nil
	}
	return func(label string) bool { return !slices.Contains(hidden, label) }, nil
}

// cellFormatter renders currency columns in display form and absent
// cells as the configured null text.
func cellFormatter(kinds map[string]filter.Kind, null string) func(string, dataset.Value, int) string {
	return func(label string, v dataset.Value, _ int) string {
		if v.IsNull() {
			return null
		}
		if k, ok := kinds[label]; ok && (k == filter.KindJPY || k == filter.KindUSD) {
			return validate.Display(k, v.String())
		}
		return v.String()
	}
}

// rowRecord keeps the visible columns of row, keyed by label.
func rowRecord(view *table.View, row dataset.Row) map[string]dataset.Value {
	labels := view.Labels()
	rec := make(map[string]dataset.Value, len(labels))
	for _, label := range labels {
		rec[label] = row[label]
	}
	return rec
}

// startSpinner shows a spinner on stderr until the returned func is called.
// Nothing is shown when stderr is not a terminal or debug output is on.
func startSpinner(ctx context.Context, message string) func() {
	if !isTerminal(os.Stderr) || log.FromContext(ctx).IsVerbose() {
		return func() {}
	}
	sp := progress.NewSpinner(message)
	sp.Start()
	return sp.Stop
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// describeFilters lists the active filters, one per line.
func describeFilters(e *filter.Engine) []string {
	criteria := e.Filters().Criteria()
	out := make([]string, len(criteria))
	for i, c := range criteria {
		out[i] = fmt.Sprintf("%s  (%s)", c.Description(), filter.FormatSpec(c))
	}
	return out
}
