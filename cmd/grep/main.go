package main

import (
	"fmt"
	"os"

	"github.com/localrivet/litegrep"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "grep [OPTIONS] <pattern> <files...>",
	Short: "Search files for lines containing a literal pattern",
	Long: `grep prints the lines of the given files that contain a literal pattern.

Flags are single characters and combine into one cluster, e.g. -inv. With
-r, directory targets are searched recursively. With -c, matched substrings
are highlighted in the output.`,
	Args: cobra.ArbitraryArgs,
	// The tool defines its own flag grammar (clusters of single-character
	// switches, unknown characters ignored), so cobra must hand the raw
	// tokens through.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := litegrep.ParseArgs(args)
		if err != nil {
			fmt.Fprint(cmd.OutOrStdout(), litegrep.Usage)
			return err
		}

		if cfg.HelpRequested || cfg.Pattern == "" || len(cfg.Targets) == 0 {
			fmt.Fprint(cmd.OutOrStdout(), litegrep.Usage)
			return nil
		}

		files := litegrep.ExpandTargets(cfg.Targets, cfg.Recursive)
		scanner := litegrep.NewScanner(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		scanner.Run(files)
		return nil
	},
}
