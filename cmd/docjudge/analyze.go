package main

import (
	"fmt"

	"github.com/fwojciec/docjudge"
	"github.com/fwojciec/docjudge/analyze"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	result, err := deps.Analyzer.Run(deps.Ctx, c.URL, analyze.Options{
		Static: c.Static,
		Revise: c.Revise,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docjudge.ErrorMessage(err))
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", w)
	}

	printReport(deps.Stdout, result.Report)

	if c.Revise && result.Revised != "" {
		fmt.Fprintln(deps.Stdout, "\n=== Revised Content ===")
		fmt.Fprintln(deps.Stdout, result.Revised)
	}

	if c.Save {
		if err := deps.Reports.CreateReport(deps.Ctx, result.Report); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docjudge.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "\nSaved report %s\n", result.Report.ID)

		path, err := deps.Writer.SaveReport(result.Report)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docjudge.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)

		if result.Revised != "" {
			path, err := deps.Writer.SaveRevision(result.Report, result.Revised)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", docjudge.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
		}
	}

	return nil
}
