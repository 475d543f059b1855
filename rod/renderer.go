package rod

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/docjudge"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultSettleWait is how long a loaded page is given to finish
// client-side rendering before it is handed to extraction.
const DefaultSettleWait = 15 * time.Second

// userAgent presents the browser as a regular desktop Chrome. Headless
// user agents get blocked or served degraded pages by some documentation
// hosts.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// stealthScript hides the automation marker before any page script runs.
const stealthScript = `Object.defineProperty(navigator, 'webdriver', {get: () => undefined})`

// Ensure Renderer implements docjudge.Renderer at compile time.
var _ docjudge.Renderer = (*Renderer)(nil)

// Renderer loads URLs using Chrome browser automation.
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	browser    *rod.Browser
	launcher   *launcher.Launcher
	settleWait time.Duration
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSettleWait sets how long a loaded page is given to settle.
// Defaults to DefaultSettleWait if not specified.
func WithSettleWait(d time.Duration) Option {
	return func(r *Renderer) {
		r.settleWait = d
	}
}

// NewRenderer creates a new Renderer that launches a headless Chrome
// browser. Close must be called when the Renderer is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{settleWait: DefaultSettleWait}
	for _, opt := range opts {
		opt(r)
	}

	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("window-size", "1920,1080").
		Set("disable-blink-features", "AutomationControlled")
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	r.browser = browser
	r.launcher = l
	return r, nil
}

// Load navigates to the URL and returns the rendered page. The page is
// handed over only after the load event plus the settle wait, so
// client-side rendered documentation has a chance to appear.
func (r *Renderer) Load(ctx context.Context, url string) (docjudge.Page, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, docjudge.Errorf(docjudge.ERENDER, "opening page: %v", err)
	}

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: userAgent}); err != nil {
		_ = page.Close()
		return nil, docjudge.Errorf(docjudge.ERENDER, "setting user agent: %v", err)
	}
	if _, err := page.EvalOnNewDocument(stealthScript); err != nil {
		_ = page.Close()
		return nil, docjudge.Errorf(docjudge.ERENDER, "installing stealth script: %v", err)
	}

	if err := page.Navigate(url); err != nil {
		_ = page.Close()
		return nil, docjudge.Errorf(docjudge.ERENDER, "navigating to %s: %v", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, docjudge.Errorf(docjudge.ERENDER, "waiting for load: %v", err)
	}

	// Load fires before client-side frameworks finish painting.
	select {
	case <-time.After(r.settleWait):
	case <-ctx.Done():
		_ = page.Close()
		return nil, ctx.Err()
	}

	return &Page{page: page}, nil
}

// Close releases browser resources.
func (r *Renderer) Close() error {
	err := r.browser.Close()
	if r.launcher != nil {
		r.launcher.Kill()
	}
	return err
}

// Ensure Page implements docjudge.Page at compile time.
var _ docjudge.Page = (*Page)(nil)

// Page wraps a rod page as a docjudge.Page.
type Page struct {
	page *rod.Page
}

// Elements returns the elements matching the CSS selector.
func (p *Page) Elements(selector string) ([]docjudge.Element, error) {
	els, err := p.page.Elements(selector)
	if err != nil {
		return nil, err
	}
	out := make([]docjudge.Element, 0, len(els))
	for _, el := range els {
		out = append(out, &Element{el: el})
	}
	return out, nil
}

// Eval executes a script in the page context and returns its string
// result. Non-string results yield "".
func (p *Page) Eval(script string) (string, error) {
	result, err := p.page.Eval(script)
	if err != nil {
		return "", err
	}
	s, _ := result.Value.Val().(string)
	return s, nil
}

// Close releases the underlying browser page.
func (p *Page) Close() error {
	return p.page.Close()
}

// Ensure Element implements docjudge.Element at compile time.
var _ docjudge.Element = (*Element)(nil)

// Element wraps a rod element as a docjudge.Element.
type Element struct {
	el *rod.Element
}

// Tag returns the lowercase tag name of the element.
func (e *Element) Tag() (string, error) {
	node, err := e.el.Describe(0, false)
	if err != nil {
		return "", err
	}
	return strings.ToLower(node.NodeName), nil
}

// Text returns the element's visible text.
func (e *Element) Text() (string, error) {
	return e.el.Text()
}

// Elements returns descendant elements matching the CSS selector.
func (e *Element) Elements(selector string) ([]docjudge.Element, error) {
	els, err := e.el.Elements(selector)
	if err != nil {
		return nil, err
	}
	out := make([]docjudge.Element, 0, len(els))
	for _, el := range els {
		out = append(out, &Element{el: el})
	}
	return out, nil
}
