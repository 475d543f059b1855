package docjudge

import "context"

// Page is a loaded, script-rendered document. A Page is owned by exactly
// one extraction run and must be closed on every exit path, including
// failure.
type Page interface {
	// Elements returns the elements matching the CSS selector, in
	// document order. A selector that matches nothing yields an empty
	// slice, not an error.
	Elements(selector string) ([]Element, error)

	// Eval executes a script in the page context and returns its string
	// result, or "" when the result is not text-like.
	Eval(script string) (string, error)

	// Close releases the underlying browser resources. Safe to call even
	// after a partial load.
	Close() error
}

// Element is a handle to a rendered DOM element.
type Element interface {
	// Tag returns the lowercase tag name of the element.
	Tag() (string, error)

	// Text returns the element's visible text.
	Text() (string, error)

	// Elements returns descendant elements matching the CSS selector.
	Elements(selector string) ([]Element, error)
}

// Renderer loads URLs in a rendering environment that executes page
// scripts. Implementations are expected to present themselves as a
// regular desktop browser and to wait out client-side rendering before
// returning the page.
type Renderer interface {
	// Load navigates to the URL and returns the rendered page.
	// The caller owns the returned Page and must close it.
	Load(ctx context.Context, url string) (Page, error)

	// Close releases browser resources.
	// Must be called when the Renderer is no longer needed.
	Close() error
}

// Fetcher retrieves raw HTML from URLs without executing scripts.
// Suitable for static sites only; JavaScript-rendered pages need the
// Renderer.
type Fetcher interface {
	// Fetch retrieves the HTML content from the given URL.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases resources.
	Close() error
}
