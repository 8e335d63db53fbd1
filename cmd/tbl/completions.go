package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/tbl/internal/dataset"
	"github.com/raphi011/tbl/internal/filter"
)

// datasetExtensions are the file types dataset.Load reads.
var datasetExtensions = []string{"csv", "json", "toml", "parquet"}

// completeDatasetFiles completes the FILE argument with dataset files.
func completeDatasetFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return datasetExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// datasetLabels loads the dataset named by the first argument and returns
// its column labels. Completion never fails loudly: errors yield nothing.
func datasetLabels(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	ds, err := dataset.Load(context.Background(), args[0])
	if err != nil {
		return nil
	}
	return ds.Labels
}

// matchPrefix returns the candidates starting with prefix, each prepended
// with head and followed by tail.
func matchPrefix(candidates []string, prefix, head, tail string) []string {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			matches = append(matches, head+c+tail)
		}
	}
	return matches
}

// completeSortColumns completes --sort with column labels and directions.
func completeSortColumns(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	labels := datasetLabels(args)
	if col, dir, ok := strings.Cut(toComplete, ":"); ok {
		return matchPrefix([]string{"asc", "desc"}, dir, col+":", ""), cobra.ShellCompDirectiveNoFileComp
	}
	return matchPrefix(labels, toComplete, "", ""), cobra.ShellCompDirectiveNoFileComp
}

// completeColumnList completes the last entry of a comma-separated --columns.
func completeColumnList(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	labels := datasetLabels(args)
	head, last := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		head, last = toComplete[:i+1], toComplete[i+1:]
	}
	return matchPrefix(labels, last, head, ""), cobra.ShellCompDirectiveNoFileComp
}

// completeFilterColumns completes the COLUMN and KIND parts of --filter.
func completeFilterColumns(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	parts := strings.Split(toComplete, ":")
	switch len(parts) {
	case 1:
		return matchPrefix(datasetLabels(args), toComplete, "", ":"), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	case 2:
		kinds := make([]string, len(filter.Kinds))
		for i, k := range filter.Kinds {
			kinds[i] = k.String()
		}
		return matchPrefix(kinds, parts[1], parts[0]+":", ":"), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
