package docjudge

import "context"

// Judge produces structured quality judgments and rewrites for extracted
// content.
//
// The assessment payload is loosely typed on purpose: implementations
// cannot be trusted to return a well-formed shape, so callers must pass
// the result through NormalizeJudgment before using it. The loosely-typed
// form must never leak past that boundary.
type Judge interface {
	// Assess asks for a structured judgment of the content. The returned
	// mapping follows the four-category wire contract on a good day and
	// anything at all on a bad one.
	Assess(ctx context.Context, content, url string) (map[string]any, error)

	// Rewrite asks for a revised version of the content based on
	// formatted feedback, returned verbatim.
	Rewrite(ctx context.Context, content, feedback string) (string, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean content HTML into its Markdown
	// representation.
	Convert(html string) (string, error)
}
