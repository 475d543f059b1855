package main

import (
	"context"
	"io"

	"github.com/fwojciec/docjudge"
	"github.com/fwojciec/docjudge/analyze"
	"github.com/fwojciec/docjudge/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Reports  docjudge.ReportService
	Analyzer *analyze.Analyzer
	Writer   docjudge.ReportWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Analyze the quality of a documentation page"`
	History HistoryCmd `cmd:"" help:"List saved analysis reports"`
	Show    ShowCmd    `cmd:"" help:"Show a saved analysis report"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved analysis report"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL    string `arg:"" help:"Documentation page URL"`
	Revise bool   `short:"r" help:"Generate revised content based on the analysis"`
	Save   bool   `short:"s" help:"Save the report to history and write artifact files"`
	Static bool   `help:"Fetch raw HTML without a browser (static sites only)"`
	Out    string `short:"o" default:"." help:"Directory for artifact files"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int    `short:"n" default:"20" help:"Maximum number of reports to list"`
	URL   string `help:"Only list reports for this URL"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Report ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Report ID"`
	Force bool   `help:"Confirm deletion"`
}
