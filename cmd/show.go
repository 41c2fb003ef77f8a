package cmd

import (
	"fmt"

	"github.com/gaurav-prasanna/mdfixtures/core/render"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var flagRender bool

	c := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a fixture's markdown source",
		Long: `Show prints the raw markdown of a fixture, or of the synthetic document.
With --render the markdown is rendered for the terminal instead.

Examples:
  mdfixtures show feature-showcase
  mdfixtures show navigation --render --width 100 --style dark
  mdfixtures show synthetic --sections 3`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: docNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := resolveDoc(args[0], cfg.Sections)
			if err != nil {
				return err
			}
			if !flagRender {
				_, err := fmt.Fprint(cmd.OutOrStdout(), doc.Markdown)
				return err
			}

			out, err := render.NewTerminalRenderer(cfg.Style, cfg.Width).Render(doc.Markdown, doc.Meta)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	c.Flags().BoolVar(&flagRender, "render", false, "Render for the terminal instead of printing the source")
	c.Flags().Int("width", 80, "Word-wrap width for --render")
	c.Flags().String("style", "notty", "Glamour style for --render")
	c.Flags().Int("sections", 18, "Section count when showing the synthetic document")
	return c
}
