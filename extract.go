package docjudge

import "log/slog"

// Strategy attempts one way of extracting content from a rendered page.
// A strategy that finds nothing returns no blocks and no error, letting
// the next strategy in the cascade run.
type Strategy interface {
	// Name returns the strategy's identifier, used in logs.
	Name() string

	// Extract collects content blocks from the page.
	Extract(page Page) ([]ContentBlock, error)
}

// Pipeline runs extraction strategies in strict priority order until one
// yields content, then assembles and validates the document.
type Pipeline struct {
	Strategies []Strategy
	Logger     *slog.Logger
}

// Run extracts a document from the page. Each strategy is attempted
// exactly once; a strategy error counts as an abstention. The page is
// closed exactly once on every exit path.
func (p *Pipeline) Run(page Page) (*ExtractedDocument, error) {
	defer func() { _ = page.Close() }()

	for _, s := range p.Strategies {
		blocks, err := s.Extract(page)
		if err != nil {
			p.logger().Warn("extraction strategy failed", "strategy", s.Name(), "err", err)
			continue
		}
		if len(blocks) == 0 {
			continue
		}
		return AssembleDocument(blocks)
	}

	return nil, Errorf(EEXTRACT, "no substantial content")
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// StaticStrategy attempts extraction from already-fetched HTML.
type StaticStrategy interface {
	Name() string
	Extract(html string) ([]ContentBlock, error)
}

// StaticPipeline is the Pipeline equivalent for static HTML, with the
// same cascade and viability semantics.
type StaticPipeline struct {
	Strategies []StaticStrategy
	Logger     *slog.Logger
}

// Run extracts a document from raw HTML.
func (p *StaticPipeline) Run(html string) (*ExtractedDocument, error) {
	for _, s := range p.Strategies {
		blocks, err := s.Extract(html)
		if err != nil {
			p.logger().Warn("extraction strategy failed", "strategy", s.Name(), "err", err)
			continue
		}
		if len(blocks) == 0 {
			continue
		}
		return AssembleDocument(blocks)
	}

	return nil, Errorf(EEXTRACT, "no substantial content")
}

func (p *StaticPipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// AssembleDocument builds the final document from collected blocks and
// enforces the viability floor on the cleaned text.
func AssembleDocument(blocks []ContentBlock) (*ExtractedDocument, error) {
	doc := &ExtractedDocument{Blocks: blocks}
	if len(doc.Text()) < MinViableChars {
		return nil, Errorf(EEXTRACT, "no substantial content")
	}
	return doc, nil
}
