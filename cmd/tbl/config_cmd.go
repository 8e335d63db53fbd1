package main

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/raphi011/tbl/internal/config"
	"github.com/raphi011/tbl/internal/dataset"
	"github.com/raphi011/tbl/internal/filter"
	"github.com/raphi011/tbl/internal/log"
	"github.com/raphi011/tbl/internal/output"
	"github.com/raphi011/tbl/internal/ui/prompt"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage tbl configuration.

Global config:  ~/.config/tbl/config.toml (or $TBL_CONFIG)
Dataset config: <dataset>.tbl.toml next to the data file`,
		Example: `  tbl config init              # Create default global config
  tbl config show              # Show global config
  tbl config show orders.csv   # Show effective config for a dataset`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force       bool
		stdout      bool
		datasetPath string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Writes a commented template to the config path (--config, $TBL_CONFIG or
~/.config/tbl/config.toml).

With --dataset, writes a sidecar next to the data file instead, with a
filter kind guessed for every column.`,
		Example: `  tbl config init                       # Create global config
  tbl config init -f                    # Overwrite existing config
  tbl config init -s                    # Print config to stdout
  tbl config init --dataset orders.csv  # Create orders.tbl.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if datasetPath != "" {
				return initSidecar(cmd, datasetPath, force, stdout)
			}

			if stdout {
				out.Print(config.DefaultContent())
				return nil
			}

			path := configPath
			if path == "" {
				var err error
				if path, err = config.Path(); err != nil {
					return err
				}
			}
			if !force && fileExists(path) {
				ok, err := confirmOverwrite(ctx, "Config", path)
				if err != nil {
					return err
				}
				force = ok
			}
			created, err := config.Init(path, force)
			if err != nil {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}
			out.Printf("Created config file: %s\n", created)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().StringVar(&datasetPath, "dataset", "", "Create the sidecar config of a dataset file")
	cmd.RegisterFlagCompletionFunc("dataset", completeDatasetFiles)

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show [FILE]",
		Short: "Show effective configuration",
		Args:  cobra.MaximumNArgs(1),
		Long: `Show the effective configuration.

With FILE, shows the global config merged with the dataset's sidecar.`,
		Example: `  tbl config show
  tbl config show orders.csv --json`,
		ValidArgsFunction: completeDatasetFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			resolver := config.ResolverFromContext(ctx)

			cfg := resolver.Global()
			if len(args) == 1 {
				var err error
				if cfg, err = resolver.ConfigFor(args[0]); err != nil {
					return err
				}
			}

			if jsonOutput {
				return out.JSON(cfg)
			}
			if len(args) == 1 {
				if local := config.LocalPath(args[0]); fileExists(local) {
					out.Printf("# merged with %s\n", local)
				}
			}
			return printConfig(out, cfg)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func printConfig(out *output.Printer, cfg any) error {
	enc := toml.NewEncoder(out.Writer())
	enc.Indent = ""
	return enc.Encode(cfg)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// initSidecar writes or prints the sidecar config of a dataset with a
// guessed filter kind per column.
func initSidecar(cmd *cobra.Command, path string, force, stdout bool) error {
	ctx := cmd.Context()
	out := output.FromContext(ctx)

	ds, err := dataset.Load(ctx, path)
	if err != nil {
		return err
	}
	local := &config.LocalConfig{Columns: make(map[string]string, len(ds.Labels))}
	for _, label := range ds.Labels {
		kind := filter.GuessKind(ds, label)
		local.Columns[label] = kind.String()
		log.FromContext(ctx).Debug("guessed column kind", "column", label, "kind", kind)
	}

	if stdout {
		return printConfig(out, local)
	}

	sidecar := config.LocalPath(path)
	if !force && fileExists(sidecar) {
		if force, err = confirmOverwrite(ctx, "Sidecar config", sidecar); err != nil {
			return err
		}
	}
	created, err := config.SaveLocal(path, local, force)
	if err != nil {
		return fmt.Errorf("%w (use -f to overwrite)", err)
	}
	out.Printf("Created config file: %s\n", created)
	return nil
}

// confirmOverwrite asks whether to replace an existing file and reports
// whether the caller may write it. Without a terminal the answer is no.
func confirmOverwrite(ctx context.Context, what, path string) (bool, error) {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stderr) {
		return false, nil
	}
	answer, err := prompt.Overwrite(ctx, what, path)
	if err != nil {
		return false, err
	}
	return applyAnswer(ctx, answer, path)
}

// applyAnswer carries out an overwrite answer. Backup moves the existing
// file aside first.
func applyAnswer(ctx context.Context, answer prompt.Answer, path string) (bool, error) {
	switch answer {
	case prompt.Replace:
		return true, nil
	case prompt.Backup:
		backup := prompt.BackupPath(path)
		if err := os.Rename(path, backup); err != nil {
			return false, fmt.Errorf("back up %s: %w", path, err)
		}
		log.FromContext(ctx).Printf("Saved backup: %s\n", backup)
		return true, nil
	}
	log.FromContext(ctx).Debug("keeping existing file", "path", path)
	return false, nil
}
