package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/raphi011/tbl/internal/config"
	"github.com/raphi011/tbl/internal/history"
	"github.com/raphi011/tbl/internal/log"
	"github.com/raphi011/tbl/internal/output"
	"github.com/raphi011/tbl/internal/table"
)

func newRecentCmd() *cobra.Command {
	var (
		jsonOutput bool
		prune      bool
		forget     string
	)

	cmd := &cobra.Command{
		Use:     "recent",
		Short:   "List recently browsed datasets",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List the datasets opened with 'tbl browse', most recent first.

The list is stored at history_path (default ~/.config/tbl/history.json).`,
		Example: `  tbl recent
  tbl recent --json
  tbl recent --prune             # drop datasets that no longer exist
  tbl recent --forget orders.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)
			historyPath := config.ResolverFromContext(ctx).Global().GetHistoryPath()

			if prune || forget != "" {
				err := history.Update(historyPath, func(h *history.History) error {
					if prune {
						if n := h.RemoveStale(); n > 0 {
							l.Printf("Removed %d stale entries\n", n)
						}
					}
					if forget != "" && !h.RemoveByPath(absPath(forget)) {
						l.Printf("Not in history: %s\n", forget)
					}
					return nil
				})
				if err != nil {
					return err
				}
			}

			hist, err := history.Load(historyPath)
			if err != nil {
				return err
			}
			recent := hist.Recent()
			if jsonOutput {
				if recent == nil {
					recent = []history.Entry{}
				}
				return out.JSON(recent)
			}
			if len(recent) == 0 {
				l.Println("No recent datasets")
				return nil
			}

			headers := []string{"TITLE", "PATH", "OPENED", "LAST"}
			lines := make([]table.Line, len(recent))
			for i, e := range recent {
				lines[i] = table.Line{Index: i, Cells: []string{
					e.Title, e.Path, strconv.Itoa(e.AccessCount), e.LastAccess.Format("2006-01-02 15:04"),
				}}
			}
			return printTable(out, headers, lines, 0)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&prune, "prune", false, "Remove datasets that no longer exist")
	cmd.Flags().StringVar(&forget, "forget", "", "Remove a dataset from the history")
	cmd.RegisterFlagCompletionFunc("forget", completeDatasetFiles)

	return cmd
}
