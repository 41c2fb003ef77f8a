package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gaurav-prasanna/mdfixtures/core/synth"
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	var flagStats bool

	c := &cobra.Command{
		Use:   "build",
		Short: "Print a synthetic long document",
		Long: `Build prints a document of N identical-template sections, each with a heading,
a paragraph, a list item, a code block and a rule. N defaults to 18.

Examples:
  mdfixtures build
  mdfixtures build --sections 500 --stats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			md, err := synth.BuildInt(cfg.Sections)
			if err != nil {
				return fmt.Errorf("--sections %d: %w", cfg.Sections, err)
			}
			if flagStats {
				logger.Info("built synthetic document",
					"sections", synth.Count(md),
					"size", humanize.Bytes(uint64(len(md))))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), md)
			return err
		},
	}

	c.Flags().Int("sections", int(synth.DefaultSections), "Number of sections")
	c.Flags().BoolVar(&flagStats, "stats", false, "Log the section count and size to stderr")
	return c
}
