package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/tbl/internal/output"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "completion <shell>",
		Short:   "Generate completion script",
		GroupID: GroupConfig,
		Long: `Generate shell completion script.

Completions cover dataset files, column labels for --sort, --columns and
--filter, and the filter kinds configured for each column.`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Example: `  tbl completion fish > ~/.config/fish/completions/tbl.fish
  tbl completion bash > ~/.local/share/bash-completion/completions/tbl
  tbl completion zsh > ~/.zfunc/_tbl   # add ~/.zfunc to fpath in .zshrc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := output.FromContext(cmd.Context()).Writer()
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(w, true)
			case "zsh":
				return root.GenZshCompletion(w)
			case "fish":
				return root.GenFishCompletion(w, true)
			default:
				return root.GenPowerShellCompletionWithDesc(w)
			}
		},
	}

	return cmd
}
