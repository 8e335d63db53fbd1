package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/tbl/internal/config"
	"github.com/raphi011/tbl/internal/dataset"
	"github.com/raphi011/tbl/internal/history"
	"github.com/raphi011/tbl/internal/log"
	"github.com/raphi011/tbl/internal/output"
	"github.com/raphi011/tbl/internal/table"
	"github.com/raphi011/tbl/internal/ui/browse"
)

func newBrowseCmd() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:     "browse [FILE]",
		Short:   "Browse and filter a table interactively",
		Aliases: []string{"b"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Open a table in the interactive browser.

Move between columns with ←/→ and rows with ↑/↓. Press f to edit the
focused column's filter: the table updates on every keystroke. Range
columns show a bar of the selected span. Select columns open a fuzzy
picker over the column's values. [ and ] move the low handle of the
focused range column, { and } the high handle.

Press o to open the row under the cursor: the browser closes and the row
is printed to stdout as JSON, so 'tbl browse' can feed a pipeline.

The browser draws on stderr. When stderr is not a terminal the filtered
table is printed instead, as with 'tbl show'.

Without FILE the most recently browsed dataset is reopened.`,
		Example: `  tbl browse orders.csv
  tbl browse                  # reopen the last dataset
  tbl browse orders.parquet -f 'Status:select:late'
  tbl browse orders.csv -s Total:desc --columns Product,Total`,
		ValidArgsFunction: completeDatasetFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			historyPath := config.ResolverFromContext(ctx).Global().GetHistoryPath()

			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				recent, err := mostRecentDataset(ctx, historyPath)
				if err != nil {
					return err
				}
				l.Debug("reopening recent dataset", "path", recent)
				path = recent
			}

			s, err := openSession(ctx, path, flags)
			if err != nil {
				return err
			}

			if !isTerminal(os.Stderr) {
				l.Debug("stderr is not a terminal, printing table")
				return runShow(cmd, s, showOptions{})
			}

			if err := history.RecordAccess(absPath(path), s.view.Engine.Dataset().Title, historyPath); err != nil {
				l.Printf("Warning: failed to record history: %v\n", err)
			}

			return browse.Run(ctx, s.view,
				browse.WithMaxWidth(s.cfg.Display.MaxColWidth),
				browse.WithOnCommand(printRow(output.FromContext(ctx), s.view)),
			)
		},
	}

	addViewFlags(cmd, &flags)

	return cmd
}

// openedRow is the JSON form of a row opened in the browser.
type openedRow struct {
	Index int                      `json:"index"`
	Row   map[string]dataset.Value `json:"row"`
}

// printRow returns the browser's row command: it prints the opened row as
// JSON on stdout.
func printRow(out *output.Printer, view *table.View) func(dataset.Row, int) error {
	return func(row dataset.Row, index int) error {
		return out.JSON(openedRow{Index: index, Row: rowRecord(view, row)})
	}
}

// mostRecentDataset returns the last browsed dataset that still exists,
// pruning stale history entries on the way.
func mostRecentDataset(ctx context.Context, historyPath string) (string, error) {
	hist, err := history.Load(historyPath)
	if err != nil {
		return "", fmt.Errorf("load history: %w", err)
	}
	if len(hist.Entries) == 0 {
		return "", errors.New("no dataset history (use tbl browse FILE first)")
	}

	if removed := hist.RemoveStale(); removed > 0 {
		err := history.Update(historyPath, func(h *history.History) error {
			h.RemoveStale()
			return nil
		})
		if err != nil {
			log.FromContext(ctx).Printf("Warning: failed to save history after cleanup: %v\n", err)
		}
	}

	recent := hist.Recent()
	if len(recent) == 0 {
		return "", errors.New("no dataset history (all entries stale)")
	}
	return recent[0].Path, nil
}

// absPath returns path made absolute, or path itself when that fails.
func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
