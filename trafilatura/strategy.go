package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docjudge"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure DocumentStrategy implements docjudge.StaticStrategy at compile time.
var _ docjudge.StaticStrategy = (*DocumentStrategy)(nil)

// DocumentStrategy extracts the main article content from fetched HTML
// using trafilatura's boilerplate removal, then converts it to Markdown.
// It is the static counterpart of the whole-document script strategy.
type DocumentStrategy struct {
	converter docjudge.Converter
}

// NewDocumentStrategy creates a new DocumentStrategy.
func NewDocumentStrategy(converter docjudge.Converter) *DocumentStrategy {
	return &DocumentStrategy{converter: converter}
}

// Name returns the strategy's identifier.
func (s *DocumentStrategy) Name() string { return "document" }

// Extract runs trafilatura over the HTML and returns the extracted
// content as one generic Markdown block. Abstains when trafilatura finds
// no content node.
func (s *DocumentStrategy) Extract(rawHTML string) ([]docjudge.ContentBlock, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docjudge.Errorf(docjudge.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}
	if result.ContentNode == nil {
		return nil, nil
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	markdown, err := s.converter.Convert(contentHTML)
	if err != nil {
		return nil, err
	}
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return nil, nil
	}

	return []docjudge.ContentBlock{docjudge.TextBlock(docjudge.BlockGeneric, markdown)}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
