package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docjudge"
)

// Ensure MainContentStrategy implements docjudge.StaticStrategy at compile time.
var _ docjudge.StaticStrategy = (*MainContentStrategy)(nil)

// MainContentStrategy extracts tagged blocks from fetched HTML using the
// shared content-container selector list. It is the static counterpart of
// the live structured strategy and follows the same rules: first matching
// container wins, blocks below the minimum length are discarded.
type MainContentStrategy struct{}

// NewMainContentStrategy creates a new MainContentStrategy.
func NewMainContentStrategy() *MainContentStrategy {
	return &MainContentStrategy{}
}

// Name returns the strategy's identifier.
func (s *MainContentStrategy) Name() string { return "main-content" }

// Extract parses the HTML and collects allow-listed blocks from the first
// content container with visible text. Abstains when no container matches.
func (s *MainContentStrategy) Extract(html string) ([]docjudge.ContentBlock, error) {
	if strings.TrimSpace(html) == "" {
		return nil, docjudge.Errorf(docjudge.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	for _, selector := range docjudge.MainSelectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 || strings.TrimSpace(container.Text()) == "" {
			continue
		}

		var blocks []docjudge.ContentBlock
		container.Find(docjudge.BlockSelector).Each(func(_ int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if len(text) <= docjudge.MinBlockChars {
				return
			}
			blocks = append(blocks, docjudge.BlockForTag(goquery.NodeName(sel), text))
		})

		// First successful selector wins; never merge across selectors.
		return blocks, nil
	}

	return nil, nil
}
