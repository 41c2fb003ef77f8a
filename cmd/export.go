package cmd

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/mdfixtures/core/output"
	"github.com/gaurav-prasanna/mdfixtures/core/render"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var flagFormat string

	c := &cobra.Command{
		Use:   "export",
		Short: "Write every fixture and the synthetic document to files",
		Long: `Export renders all fixtures plus the synthetic document in one format and
writes one file per document, named after the document.

Formats: ` + strings.Join(render.Formats, ", ") + `

Examples:
  mdfixtures export --format md --output_dir ./fixtures
  mdfixtures export --format pdf --sections 50
  mdfixtures export --format txt --style dark --width 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := render.ForFormat(flagFormat, render.Options{Style: cfg.Style, Width: cfg.Width})
			if err != nil {
				return err
			}
			docs, err := allDocs(cfg.Sections)
			if err != nil {
				return err
			}
			w, err := output.New(cfg.OutputDir)
			if err != nil {
				return fmt.Errorf("initializing output writer: %w", err)
			}

			logger.Info("exporting documents",
				"format", flagFormat,
				"count", len(docs),
				"output_dir", w.OutputDir)

			paths, err := output.ExportAll(cmd.Context(), w, docs, r)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", p)
			}
			return nil
		},
	}

	c.Flags().StringVar(&flagFormat, "format", "md", "Output format: "+strings.Join(render.Formats, ", "))
	c.Flags().String("output_dir", "", "Output directory (default: current directory)")
	c.Flags().Int("sections", 18, "Section count of the synthetic document")
	c.Flags().Int("width", 80, "Word-wrap width for txt output")
	c.Flags().String("style", "notty", "Glamour style for txt output")
	return c
}
