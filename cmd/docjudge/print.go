package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/docjudge"
)

// printReport writes a human-readable rendition of the report.
func printReport(w io.Writer, report *docjudge.Report) {
	fmt.Fprintln(w, "=== Documentation Analysis Results ===")
	fmt.Fprintf(w, "URL: %s\n", report.URL)
	fmt.Fprintf(w, "Overall Score: %s\n", report.OverallScore)

	for _, c := range report.Analysis.Categories() {
		fmt.Fprintf(w, "\n%s:\n", strings.ToUpper(strings.ReplaceAll(c.Name, "_", " ")))
		fmt.Fprintf(w, "Score: %s\n", c.Judgment.Score)
		if len(c.Judgment.Issues) > 0 {
			fmt.Fprintln(w, "Issues:")
			for _, issue := range c.Judgment.Issues {
				fmt.Fprintf(w, "- %s\n", issue)
			}
		}
		if len(c.Judgment.Suggestions) > 0 {
			fmt.Fprintln(w, "Suggestions:")
			for _, s := range c.Judgment.Suggestions {
				fmt.Fprintf(w, "- %s\n", s)
			}
		}
	}
}
