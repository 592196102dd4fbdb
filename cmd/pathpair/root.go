package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathpair/internal/version"
	"github.com/arthur-debert/pathpair/pkg/config"
	"github.com/arthur-debert/pathpair/pkg/logging"
)

// NewRootCmd builds the pathpair command tree.
func NewRootCmd() *cobra.Command {
	var verbosity int

	fileCfg, cfgErr := config.Load()

	rootCmd := &cobra.Command{
		Use:   "pathpair",
		Short: "Resolve SRC/DST specifiers into input/output pairs",
		Long: `pathpair resolves a source path specifier and an optional destination
path specifier into a deterministic sequence of (input, output) pairs,
for tools that batch-process files. Use "-" for stdin/stdout.

pathpair only plans the pairing; it never touches file contents.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !cmd.Flags().Changed("verbose") {
				verbosity = fileCfg.Verbosity
			}
			logging.SetupLogger(verbosity)
			if cfgErr != nil {
				log.Warn().Err(cfgErr).Msg("ignoring unreadable config file")
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newPlanCmd(fileCfg))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pathpair version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
