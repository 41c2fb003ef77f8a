package cmd

import (
	"fmt"

	"github.com/gaurav-prasanna/mdfixtures/core/toc"
	"github.com/spf13/cobra"
)

func newTOCCmd() *cobra.Command {
	c := &cobra.Command{
		Use:       "toc <name>",
		Short:     "Print the table of contents of a fixture",
		Args:      cobra.ExactArgs(1),
		ValidArgs: docNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := resolveDoc(args[0], cfg.Sections)
			if err != nil {
				return err
			}
			root := toc.FromMarkdown(doc.Markdown)
			logger.Debug("built table of contents",
				"name", doc.Meta.Name,
				"headings", root.Len(),
				"depth", root.Depth())
			_, err = fmt.Fprint(cmd.OutOrStdout(), root.Markdown())
			return err
		},
	}
	c.Flags().Int("sections", 18, "Section count when reading the synthetic document")
	return c
}
