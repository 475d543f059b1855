package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/docjudge"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := docjudge.ReportFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	reports, err := deps.Reports.FindReports(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docjudge.ErrorMessage(err))
		return err
	}

	if len(reports) == 0 {
		fmt.Fprintln(deps.Stdout, "No reports found. Use 'docjudge analyze --save' to create one.")
		return nil
	}

	for _, r := range reports {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-9s  %s\n",
			r.ID, r.Timestamp.Format(time.RFC3339), r.OverallScore, r.URL)
	}

	return nil
}
