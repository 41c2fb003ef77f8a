package cmd

import (
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/mdfixtures/core/coverage"
	"github.com/gaurav-prasanna/mdfixtures/core/fixture"
	"github.com/spf13/cobra"
)

// errCoverage is returned when the fixtures do not cover every feature.
var errCoverage = errors.New("fixture coverage incomplete")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the fixtures cover every supported markdown feature",
		Long: `Check renders each fixture and detects which markdown features it actually
contains. It fails when a supported feature appears in no fixture, or when a
fixture declares a feature its content lacks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := coverage.New().Check(fixture.All())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range report.Results {
				status := "ok"
				if missing := res.Undetected(); len(missing) > 0 {
					status = fmt.Sprintf("undetected %v", missing)
				}
				fmt.Fprintf(out, "%-20s %2d features  %s\n", res.Name, len(res.Detected), status)
			}

			if missing := report.Missing(); len(missing) > 0 {
				fmt.Fprintf(out, "missing from every fixture: %v\n", missing)
			}
			if !report.OK() {
				return errCoverage
			}
			logger.Info("coverage complete", "features", len(report.Union))
			return nil
		},
	}
}
