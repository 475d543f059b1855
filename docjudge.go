// Package docjudge analyzes documentation web pages for quality. It loads
// a page in a headless browser (or over plain HTTP for static sites),
// extracts readable content through a cascade of strategies, obtains a
// structured quality judgment from a language model, repairs that judgment
// into a guaranteed-valid shape, and reduces it to a single overall score.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, gemini/, sqlite/).
package docjudge
