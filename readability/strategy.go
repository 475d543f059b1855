package readability

import (
	"strings"

	"github.com/fwojciec/docjudge"
	"github.com/go-shiori/go-readability"
)

// Ensure TextStrategy implements docjudge.StaticStrategy at compile time.
var _ docjudge.StaticStrategy = (*TextStrategy)(nil)

// TextStrategy is the static last resort: go-readability's plain-text
// rendition of the page, accepted only above the whole-page viability
// floor.
type TextStrategy struct{}

// NewTextStrategy creates a new TextStrategy.
func NewTextStrategy() *TextStrategy {
	return &TextStrategy{}
}

// Name returns the strategy's identifier.
func (s *TextStrategy) Name() string { return "raw-text" }

// Extract runs readability over the HTML and returns its text content as
// one generic block, abstaining when the trimmed text is below the
// viability floor.
func (s *TextStrategy) Extract(rawHTML string) ([]docjudge.ContentBlock, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docjudge.Errorf(docjudge.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(article.TextContent)
	if len(text) < docjudge.MinViableChars {
		return nil, nil
	}

	return []docjudge.ContentBlock{docjudge.TextBlock(docjudge.BlockGeneric, text)}, nil
}
