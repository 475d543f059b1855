package main

import (
	"fmt"

	"github.com/fwojciec/docjudge"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	report, err := deps.Reports.FindReportByID(deps.Ctx, c.ID)
	if err != nil {
		if docjudge.ErrorCode(err) == docjudge.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: report %q not found. Use 'docjudge history' to see saved reports.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docjudge.ErrorMessage(err))
		}
		return err
	}

	printReport(deps.Stdout, report)
	return nil
}
