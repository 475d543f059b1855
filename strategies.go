package docjudge

import "strings"

// MainSelectors is the content-container selector priority list shared by
// the live and static structured strategies. The first selector with a
// non-empty match wins; results are never merged across selectors.
var MainSelectors = []string{
	"main",
	".main-content",
	"#main-content",
	".article-content",
	".content",
	".post-content",
	".entry-content",
	"[role='main']",
}

// BlockSelector matches the element kinds collected from a content
// container.
const BlockSelector = "h1, h2, h3, h4, h5, h6, p, ul, ol, li, pre, code, div"

// stripScript removes scripts, styles, and page chrome from a copy of the
// rendered DOM and returns the text of the best available content
// container, falling back to the document body.
const stripScript = `(() => {
	const doc = document.cloneNode(true);
	const chrome = doc.querySelectorAll('script, style, nav, footer, header, .nav, .footer, .header');
	chrome.forEach((el) => el.remove());
	const main = doc.querySelector('main, .main-content, #main-content, .article-content, .content') || doc.body;
	if (!main) return '';
	return main.innerText || main.textContent || '';
})()`

// bodyTextScript returns the document body's visible text verbatim.
const bodyTextScript = `(() => {
	if (!document.body) return '';
	return document.body.innerText || document.body.textContent || '';
})()`

// DefaultStrategies returns the canonical three-strategy extraction
// cascade, in priority order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		&MainContentStrategy{},
		&ScriptStrategy{},
		&RawTextStrategy{},
	}
}

// Ensure strategies implement Strategy at compile time.
var (
	_ Strategy = (*MainContentStrategy)(nil)
	_ Strategy = (*ScriptStrategy)(nil)
	_ Strategy = (*RawTextStrategy)(nil)
)

// MainContentStrategy extracts tagged blocks from the first semantic
// content container that matches one of MainSelectors.
type MainContentStrategy struct{}

// Name returns the strategy's identifier.
func (s *MainContentStrategy) Name() string { return "main-content" }

// Extract walks MainSelectors in priority order, collects allow-listed
// child elements from the first container with visible text, and emits
// one block per element. Elements with trimmed text of MinBlockChars or
// fewer are discarded. Abstains when no container matches or nothing
// substantial is collected.
func (s *MainContentStrategy) Extract(page Page) ([]ContentBlock, error) {
	for _, selector := range MainSelectors {
		containers, err := page.Elements(selector)
		if err != nil || len(containers) == 0 {
			continue
		}
		container := containers[0]

		text, err := container.Text()
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}

		elements, err := container.Elements(BlockSelector)
		if err != nil {
			continue
		}

		var blocks []ContentBlock
		for _, el := range elements {
			text, err := el.Text()
			if err != nil {
				continue
			}
			text = strings.TrimSpace(text)
			if len(text) <= MinBlockChars {
				continue
			}
			tag, err := el.Tag()
			if err != nil {
				continue
			}
			blocks = append(blocks, BlockForTag(tag, text))
		}

		// First successful selector wins; never merge across selectors.
		return blocks, nil
	}

	return nil, nil
}

// ScriptStrategy extracts the whole document's visible text after
// stripping scripts, styles, and page chrome from a copy of the DOM.
// Runs only when the structured strategy abstains.
type ScriptStrategy struct{}

// Name returns the strategy's identifier.
func (s *ScriptStrategy) Name() string { return "document-script" }

// Extract runs the strip script and returns its result as one generic
// block. Abstains when the script yields no text.
func (s *ScriptStrategy) Extract(page Page) ([]ContentBlock, error) {
	text, err := page.Eval(stripScript)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	return []ContentBlock{TextBlock(BlockGeneric, text)}, nil
}

// RawTextStrategy is the last resort: the document body's visible text
// verbatim, accepted only above the whole-page viability floor.
type RawTextStrategy struct{}

// Name returns the strategy's identifier.
func (s *RawTextStrategy) Name() string { return "raw-text" }

// Extract returns the body text as one generic block, abstaining (and so
// escalating to pipeline failure) when the trimmed text is below
// MinViableChars.
func (s *RawTextStrategy) Extract(page Page) ([]ContentBlock, error) {
	text, err := page.Eval(bodyTextScript)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if len(text) < MinViableChars {
		return nil, nil
	}
	return []ContentBlock{TextBlock(BlockGeneric, text)}, nil
}
