package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docjudge"
	"github.com/fwojciec/docjudge/analyze"
	"github.com/fwojciec/docjudge/fs"
	"github.com/fwojciec/docjudge/gemini"
	"github.com/fwojciec/docjudge/goquery"
	"github.com/fwojciec/docjudge/htmltomarkdown"
	dochttp "github.com/fwojciec/docjudge/http"
	"github.com/fwojciec/docjudge/readability"
	"github.com/fwojciec/docjudge/rod"
	docslog "github.com/fwojciec/docjudge/slog"
	"github.com/fwojciec/docjudge/sqlite"
	"github.com/fwojciec/docjudge/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ReportService docjudge.ReportService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	// Local overrides for GEMINI_API_KEY and friends. Missing file is fine.
	_ = godotenv.Load()

	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docjudge"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docjudge --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCJUDGE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ReportService = sqlite.NewReportService(m.DB)
	deps.DB = m.DB
	deps.Reports = m.ReportService

	// Wire command-specific dependencies based on command
	if cmd == "analyze" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		analyzer := &analyze.Analyzer{
			Judge:  docslog.NewLoggingJudge(gemini.NewJudge(client, ""), logger),
			Logger: logger,
		}

		if cli.Analyze.Static {
			fetcher := dochttp.NewFetcher()
			defer fetcher.Close()

			analyzer.Fetcher = fetcher
			analyzer.Static = &docjudge.StaticPipeline{
				Strategies: []docjudge.StaticStrategy{
					goquery.NewMainContentStrategy(),
					trafilatura.NewDocumentStrategy(htmltomarkdown.NewConverter()),
					readability.NewTextStrategy(),
				},
				Logger: logger,
			}
		} else {
			renderer, err := rod.NewRenderer()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer renderer.Close()

			analyzer.Renderer = rod.NewLoggingRenderer(renderer, logger)
			analyzer.Pipeline = &docjudge.Pipeline{
				Strategies: docjudge.DefaultStrategies(),
				Logger:     logger,
			}
		}

		deps.Analyzer = analyzer
		deps.Writer = fs.NewWriter(cli.Analyze.Out)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DOCJUDGE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docjudge.db"
	}
	dir := filepath.Join(home, ".docjudge")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docjudge.db")
}
