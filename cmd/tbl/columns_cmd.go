package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/raphi011/tbl/internal/config"
	"github.com/raphi011/tbl/internal/dataset"
	"github.com/raphi011/tbl/internal/log"
	"github.com/raphi011/tbl/internal/output"
	"github.com/raphi011/tbl/internal/table"
)

// ColumnInfo describes one dataset column
type ColumnInfo struct {
	Index    int    `json:"index"`
	Label    string `json:"label"`
	Header   string `json:"header,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Distinct int    `json:"distinct"`
	Empty    int    `json:"empty"`
}

func newColumnsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "columns FILE",
		Short:   "List the columns of a table",
		Aliases: []string{"cols"},
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `List the columns of a table with their configured filter kind,
header label, number of distinct values and number of empty cells.`,
		Example: `  tbl columns orders.csv
  tbl columns orders.parquet --json`,
		ValidArgsFunction: completeDatasetFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			cfg, err := config.ResolverFromContext(ctx).ConfigFor(args[0])
			if err != nil {
				return err
			}
			done := log.FromContext(ctx).Timed("load dataset", "path", args[0])
			ds, err := dataset.Load(ctx, args[0])
			done()
			if err != nil {
				return err
			}

			infos := describeColumns(ds, cfg)
			if jsonOutput {
				return out.JSON(infos)
			}

			headers := []string{"#", "COLUMN", "HEADER", "KIND", "DISTINCT", "EMPTY"}
			lines := make([]table.Line, len(infos))
			for i, c := range infos {
				lines[i] = table.Line{Index: i, Cells: []string{
					strconv.Itoa(c.Index), c.Label, c.Header, c.Kind,
					strconv.Itoa(c.Distinct), strconv.Itoa(c.Empty),
				}}
			}
			if len(lines) == 0 {
				return fmt.Errorf("%s has no columns", args[0])
			}
			return printTable(out, headers, lines, 0)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// describeColumns summarizes every column of ds under cfg.
func describeColumns(ds *dataset.Dataset, cfg *config.Config) []ColumnInfo {
	infos := make([]ColumnInfo, len(ds.Labels))
	for i, label := range ds.Labels {
		empty := 0
		distinct := make(map[string]struct{})
		for _, row := range ds.Rows {
			v := row[label]
			if v.IsNull() || v.String() == "" {
				empty++
				continue
			}
			distinct[v.String()] = struct{}{}
		}
		infos[i] = ColumnInfo{
			Index:    i,
			Label:    label,
			Header:   cfg.Labels[label],
			Kind:     cfg.Columns[label],
			Distinct: len(distinct),
			Empty:    empty,
		}
	}
	return infos
}
