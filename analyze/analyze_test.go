package analyze_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/docjudge"
	"github.com/fwojciec/docjudge/analyze"
	"github.com/fwojciec/docjudge/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var viableText = strings.Repeat("plenty of substantial documentation content here ", 4)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// viableStrategy always yields enough content to pass the viability floor.
func viableStrategy() *mock.Strategy {
	return &mock.Strategy{
		NameFn: func() string { return "test" },
		ExtractFn: func(docjudge.Page) ([]docjudge.ContentBlock, error) {
			return []docjudge.ContentBlock{docjudge.TextBlock(docjudge.BlockGeneric, viableText)}, nil
		},
	}
}

func viableStaticStrategy() *mock.StaticStrategy {
	return &mock.StaticStrategy{
		NameFn: func() string { return "test" },
		ExtractFn: func(string) ([]docjudge.ContentBlock, error) {
			return []docjudge.ContentBlock{docjudge.TextBlock(docjudge.BlockGeneric, viableText)}, nil
		},
	}
}

func goodAssessment() map[string]any {
	category := map[string]any{
		"score":       "Good",
		"issues":      []any{"some issue"},
		"suggestions": []any{"some suggestion"},
	}
	return map[string]any{
		"readability":      category,
		"structure":        category,
		"completeness":     category,
		"style_guidelines": category,
	}
}

func TestAnalyzer_Run_Static(t *testing.T) {
	t.Parallel()

	var fetchedURL string
	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			fetchedURL = url
			return "<html></html>", nil
		},
	}
	judge := &mock.Judge{
		AssessFn: func(ctx context.Context, content, url string) (map[string]any, error) {
			return goodAssessment(), nil
		},
	}

	a := &analyze.Analyzer{
		Fetcher: fetcher,
		Static:  &docjudge.StaticPipeline{Strategies: []docjudge.StaticStrategy{viableStaticStrategy()}, Logger: discardLogger()},
		Judge:   judge,
		Logger:  discardLogger(),
	}

	result, err := a.Run(context.Background(), "https://docs.example.com/guide", analyze.Options{Static: true})

	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/guide", fetchedURL)
	assert.Contains(t, result.Content, "substantial documentation content")
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Events)

	require.NotNil(t, result.Report)
	assert.Equal(t, "https://docs.example.com/guide", result.Report.URL)
	assert.Equal(t, docjudge.ScoreGood, result.Report.OverallScore)
	assert.False(t, result.Report.Timestamp.IsZero())
	require.NoError(t, result.Report.Validate())
}

func TestAnalyzer_Run_Live_ClosesPageOnce(t *testing.T) {
	t.Parallel()

	var closes int
	page := &mock.Page{
		CloseFn: func() error {
			closes++
			return nil
		},
	}
	renderer := &mock.Renderer{
		LoadFn: func(ctx context.Context, url string) (docjudge.Page, error) {
			return page, nil
		},
	}
	judge := &mock.Judge{
		AssessFn: func(ctx context.Context, content, url string) (map[string]any, error) {
			return goodAssessment(), nil
		},
	}

	a := &analyze.Analyzer{
		Renderer: renderer,
		Pipeline: &docjudge.Pipeline{Strategies: []docjudge.Strategy{viableStrategy()}, Logger: discardLogger()},
		Judge:    judge,
		Logger:   discardLogger(),
	}

	_, err := a.Run(context.Background(), "https://docs.example.com/guide", analyze.Options{})

	require.NoError(t, err)
	assert.Equal(t, 1, closes)
}

func TestAnalyzer_Run_InvalidURL(t *testing.T) {
	t.Parallel()

	// No dependencies wired: validation must fail before any are used.
	a := &analyze.Analyzer{Logger: discardLogger()}

	_, err := a.Run(context.Background(), "ftp://example.com", analyze.Options{})

	require.Error(t, err)
	assert.Equal(t, docjudge.EINVALID, docjudge.ErrorCode(err))
}

func TestAnalyzer_Run_AssessFailureDegradesToDefaults(t *testing.T) {
	t.Parallel()

	judge := &mock.Judge{
		AssessFn: func(context.Context, string, string) (map[string]any, error) {
			return nil, docjudge.Errorf(docjudge.EMODEL, "model unavailable")
		},
	}

	a := &analyze.Analyzer{
		Fetcher: &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil }},
		Static:  &docjudge.StaticPipeline{Strategies: []docjudge.StaticStrategy{viableStaticStrategy()}, Logger: discardLogger()},
		Judge:   judge,
		Logger:  discardLogger(),
	}

	result, err := a.Run(context.Background(), "https://docs.example.com/guide", analyze.Options{Static: true})

	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "assessment failed")

	// Every category defaults to Poor with placeholder feedback.
	require.NotNil(t, result.Report)
	assert.Equal(t, docjudge.ScorePoor, result.Report.OverallScore)
	assert.Equal(t, docjudge.ScorePoor, result.Report.Analysis.Readability.Score)
	assert.Equal(t, []string{docjudge.PlaceholderIssue}, result.Report.Analysis.Readability.Issues)
	require.NoError(t, result.Report.Validate())
}

func TestAnalyzer_Run_ExtractionFailureAborts(t *testing.T) {
	t.Parallel()

	abstaining := &mock.StaticStrategy{
		NameFn:    func() string { return "abstains" },
		ExtractFn: func(string) ([]docjudge.ContentBlock, error) { return nil, nil },
	}

	a := &analyze.Analyzer{
		Fetcher: &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil }},
		Static:  &docjudge.StaticPipeline{Strategies: []docjudge.StaticStrategy{abstaining}, Logger: discardLogger()},
		Judge:   &mock.Judge{},
		Logger:  discardLogger(),
	}

	_, err := a.Run(context.Background(), "https://docs.example.com/guide", analyze.Options{Static: true})

	require.Error(t, err)
	assert.Equal(t, docjudge.EEXTRACT, docjudge.ErrorCode(err))
}

func TestAnalyzer_Run_RecordsDataQualityEvents(t *testing.T) {
	t.Parallel()

	judge := &mock.Judge{
		AssessFn: func(context.Context, string, string) (map[string]any, error) {
			return map[string]any{
				"readability": map[string]any{"score": "Amazing"},
			}, nil
		},
	}

	a := &analyze.Analyzer{
		Fetcher: &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil }},
		Static:  &docjudge.StaticPipeline{Strategies: []docjudge.StaticStrategy{viableStaticStrategy()}, Logger: discardLogger()},
		Judge:   judge,
		Logger:  discardLogger(),
	}

	result, err := a.Run(context.Background(), "https://docs.example.com/guide", analyze.Options{Static: true})

	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	assert.Equal(t, "readability", result.Events[0].Category)
	assert.Equal(t, "score", result.Events[0].Field)
	assert.Equal(t, "Amazing", result.Events[0].Value)
	assert.Equal(t, docjudge.ScorePoor, result.Report.Analysis.Readability.Score)
}

func TestAnalyzer_Run_Revision(t *testing.T) {
	t.Parallel()

	t.Run("revised content returned when rewrite succeeds", func(t *testing.T) {
		t.Parallel()

		var gotFeedback string
		judge := &mock.Judge{
			AssessFn: func(context.Context, string, string) (map[string]any, error) {
				return goodAssessment(), nil
			},
			RewriteFn: func(ctx context.Context, content, feedback string) (string, error) {
				gotFeedback = feedback
				return "# Revised\n\nBetter content.", nil
			},
		}

		a := &analyze.Analyzer{
			Fetcher: &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil }},
			Static:  &docjudge.StaticPipeline{Strategies: []docjudge.StaticStrategy{viableStaticStrategy()}, Logger: discardLogger()},
			Judge:   judge,
			Logger:  discardLogger(),
		}

		result, err := a.Run(context.Background(), "https://docs.example.com/guide", analyze.Options{Static: true, Revise: true})

		require.NoError(t, err)
		assert.Equal(t, "# Revised\n\nBetter content.", result.Revised)
		assert.Contains(t, gotFeedback, "Readability Analysis:")
		assert.Empty(t, result.Warnings)
	})

	t.Run("rewrite failure leaves the report valid", func(t *testing.T) {
		t.Parallel()

		judge := &mock.Judge{
			AssessFn: func(context.Context, string, string) (map[string]any, error) {
				return goodAssessment(), nil
			},
			RewriteFn: func(context.Context, string, string) (string, error) {
				return "", docjudge.Errorf(docjudge.EMODEL, "model unavailable")
			},
		}

		a := &analyze.Analyzer{
			Fetcher: &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil }},
			Static:  &docjudge.StaticPipeline{Strategies: []docjudge.StaticStrategy{viableStaticStrategy()}, Logger: discardLogger()},
			Judge:   judge,
			Logger:  discardLogger(),
		}

		result, err := a.Run(context.Background(), "https://docs.example.com/guide", analyze.Options{Static: true, Revise: true})

		require.NoError(t, err)
		assert.Empty(t, result.Revised)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "no revised content available")
		require.NoError(t, result.Report.Validate())
	})
}
