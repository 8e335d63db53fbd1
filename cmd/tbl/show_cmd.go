package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/tbl/internal/dataset"
	"github.com/raphi011/tbl/internal/log"
	"github.com/raphi011/tbl/internal/output"
	"github.com/raphi011/tbl/internal/table"
	"github.com/raphi011/tbl/internal/ui/static"
)

// showOptions selects the output of show.
type showOptions struct {
	json    bool
	tsv     bool
	indices bool
	copy    bool
}

func newShowCmd() *cobra.Command {
	var (
		flags viewFlags
		opts  showOptions
	)

	cmd := &cobra.Command{
		Use:     "show FILE",
		Short:   "Print the filtered table",
		Aliases: []string{"s"},
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Print the rows of a table that pass every filter.

Filters are COLUMN:KIND:VALUE expressions. Range kinds (dec, JPY, USD,
date) take FROM..TO with either side optional; text and select take the
value to look for. Columns are referenced by label or by position.

Filters from the config view are applied first, then -f flags.`,
		Example: `  tbl show orders.csv                              # Whole table
  tbl show orders.csv -f 'Price:USD:2.00..'         # Price at least $2.00
  tbl show orders.csv -f 'Date:date:2020-01-01..2020-12-31' -s Date:desc
  tbl show orders.csv -f 'Status:select:late' --json
  tbl show orders.csv -f 'Name:text:Pro' --indices  # Prints e.g. 0_2`,
		ValidArgsFunction: completeDatasetFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), args[0], flags)
			if err != nil {
				return err
			}
			return runShow(cmd, s, opts)
		},
	}

	addViewFlags(cmd, &flags)
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output visible rows as JSON")
	cmd.Flags().BoolVar(&opts.tsv, "tsv", false, "Output tab-separated values without styling")
	cmd.Flags().BoolVar(&opts.indices, "indices", false, "Print the visible row indices joined by _")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the visible row indices to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("json", "tsv", "indices")

	return cmd
}

// addViewFlags registers the filter, sort and column flags.
func addViewFlags(cmd *cobra.Command, flags *viewFlags) {
	cmd.Flags().StringArrayVarP(&flags.filters, "filter", "f", nil, "Filter COLUMN:KIND:VALUE (repeatable)")
	cmd.Flags().StringVarP(&flags.sort, "sort", "s", "", "Sort by COLUMN[:asc|:desc]")
	cmd.Flags().StringSliceVar(&flags.columns, "columns", nil, "Columns to show (labels or positions)")

	cmd.RegisterFlagCompletionFunc("filter", completeFilterColumns)
	cmd.RegisterFlagCompletionFunc("sort", completeSortColumns)
	cmd.RegisterFlagCompletionFunc("columns", completeColumnList)
}

func runShow(cmd *cobra.Command, s *session, opts showOptions) error {
	l := log.FromContext(cmd.Context())
	out := output.FromContext(cmd.Context())
	view := s.view

	lines := view.Rows()
	for _, d := range describeFilters(view.Engine) {
		l.Debug("filter", "active", d)
	}

	if opts.copy {
		if err := clipboard.WriteAll(s.rendered); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		l.Printf("Copied %d row indices to clipboard\n", len(lines))
	}

	switch {
	case opts.indices:
		out.Println(s.rendered)
		return nil
	case opts.json:
		records := make([]map[string]dataset.Value, len(lines))
		for i, line := range lines {
			records[i] = rowRecord(view, view.Engine.Dataset().Rows[line.Index])
		}
		return out.JSON(records)
	case opts.tsv:
		out.Print(static.RenderTSV(view.Headers(), lines))
		return nil
	}

	if len(lines) == 0 {
		l.Println("No rows match")
		return nil
	}

	return printTable(out, view.Headers(), lines, s.cfg.Display.MaxColWidth)
}

// printTable renders a styled table, downsampling colors for the actual
// output (they are stripped when it is not a terminal).
func printTable(out *output.Printer, headers []string, lines []table.Line, maxWidth int) error {
	w := colorprofile.NewWriter(out.Writer(), os.Environ())
	_, err := fmt.Fprint(w, static.RenderTable(headers, lines, maxWidth))
	return err
}
