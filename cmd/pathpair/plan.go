package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathpair/pkg/config"
	"github.com/arthur-debert/pathpair/pkg/pattern"
	"github.com/arthur-debert/pathpair/pkg/resolve"
)

// newPlanCmd builds the plan command: resolve SRC (and optionally DST)
// and print each resulting pair.
func newPlanCmd(fileCfg config.Config) *cobra.Command {
	var (
		ext          string
		match        string
		container    string
		allowInplace bool
		noStdin      bool
		noStdout     bool
	)

	cmd := &cobra.Command{
		Use:   "plan SRC [DST]",
		Short: "Resolve SRC and DST into input/output pairs and print them",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("ext") {
				ext = fileCfg.DefaultExtension
			}
			if !cmd.Flags().Changed("match") && fileCfg.Match != "" {
				match = fileCfg.Match
			}
			if !cmd.Flags().Changed("allow-inplace") {
				allowInplace = fileCfg.AllowInplace
			}

			cfg := resolve.New(ext)
			cfg.Container = container
			cfg.AllowInplace = allowInplace
			cfg.AllowStdin = !noStdin
			cfg.AllowStdout = !noStdout
			if match != "" {
				expr, err := pattern.Parse(match)
				if err != nil {
					return err
				}
				cfg.Match = expr
			}

			src := args[0]
			dst := ""
			if len(args) == 2 {
				dst = args[1]
			}

			it, err := cfg.Parse(src, dst)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dir := it.ContainerDir(); dir != "" {
				fmt.Fprintln(out, renderContainer(dir))
			}
			count := 0
			for it.Next() {
				pair := it.Pair()
				fmt.Fprintln(out, renderPair(pair))
				count++
			}
			if err := it.Err(); err != nil {
				return err
			}
			fmt.Fprintln(out, renderSummary(count))
			return nil
		},
	}

	cmd.Flags().StringVarP(&ext, "ext", "e", "", "Default output extension for synthesized names")
	cmd.Flags().StringVarP(&match, "match", "m", "", "Selector pattern for directory sources (globs and {a..=b:0Nd} ranges)")
	cmd.Flags().StringVar(&container, "container", "", "Explicit fan-out container name")
	cmd.Flags().BoolVar(&allowInplace, "allow-inplace", false, "Allow SRC and DST to resolve to the same location")
	cmd.Flags().BoolVar(&noStdin, "no-stdin", false, "Refuse '-' as SRC")
	cmd.Flags().BoolVar(&noStdout, "no-stdout", false, "Refuse '-' as DST")

	return cmd
}
