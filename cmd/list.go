package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gaurav-prasanna/mdfixtures/core/fixture"
	"github.com/spf13/cobra"
)

var (
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A49FA5"))
	sizeStyle    = lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
	featureStyle = lipgloss.NewStyle().PaddingLeft(11).Faint(true)
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the fixtures and the features each one covers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, f := range fixture.All() {
				doc := fixtureDoc(f)
				fmt.Fprintln(out, listLine(doc.Meta.Bytes, doc.Meta.Name, doc.Meta.Title))

				feats := make([]string, len(f.Features))
				for i, feat := range f.Features {
					feats[i] = string(feat)
				}
				fmt.Fprintln(out, featureStyle.Render(strings.Join(feats, ", ")))
			}

			synthetic, err := syntheticDoc(cfg.Sections)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, listLine(synthetic.Meta.Bytes, synthetic.Meta.Name, synthetic.Meta.Title))
			return nil
		},
	}
}

func listLine(size int, name, title string) string {
	return fmt.Sprintf("%s %s %s",
		sizeStyle.Render(humanize.Bytes(uint64(size))),
		nameStyle.Render(name),
		titleStyle.Render(title))
}
