package docjudge_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docjudge"
	"github.com/fwojciec/docjudge/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticElement(tag, text string) *mock.Element {
	return &mock.Element{
		TagFn:  func() (string, error) { return tag, nil },
		TextFn: func() (string, error) { return text, nil },
		ElementsFn: func(string) ([]docjudge.Element, error) {
			return nil, nil
		},
	}
}

func containerElement(text string, children []docjudge.Element) *mock.Element {
	return &mock.Element{
		TagFn:  func() (string, error) { return "main", nil },
		TextFn: func() (string, error) { return text, nil },
		ElementsFn: func(string) ([]docjudge.Element, error) {
			return children, nil
		},
	}
}

func TestMainContentStrategy_Extract(t *testing.T) {
	t.Parallel()

	t.Run("collects heading and paragraph blocks", func(t *testing.T) {
		t.Parallel()

		paragraph := "This paragraph is forty characters long."
		container := containerElement("Getting Started "+paragraph, []docjudge.Element{
			staticElement("h1", "Getting Started"),
			staticElement("p", paragraph),
		})

		page := &mock.Page{
			ElementsFn: func(selector string) ([]docjudge.Element, error) {
				if selector == "main" {
					return []docjudge.Element{container}, nil
				}
				return nil, nil
			},
		}

		s := &docjudge.MainContentStrategy{}
		blocks, err := s.Extract(page)

		require.NoError(t, err)
		require.Len(t, blocks, 2)
		assert.Equal(t, docjudge.BlockHeading, blocks[0].Tag)
		assert.Equal(t, 1, blocks[0].Level)
		assert.Equal(t, docjudge.BlockParagraph, blocks[1].Tag)

		doc := &docjudge.ExtractedDocument{Blocks: blocks}
		assert.True(t, strings.HasPrefix(doc.Markdown(), "\n# Getting Started\n"), "got %q", doc.Markdown())
		assert.Contains(t, doc.Markdown(), "\n"+paragraph)
	})

	t.Run("discards blocks at or below the minimum length", func(t *testing.T) {
		t.Parallel()

		container := containerElement("container text", []docjudge.Element{
			staticElement("p", "tiny"),
			staticElement("p", "0123456789"), // exactly 10, discarded
			staticElement("p", "a paragraph that is long enough to keep"),
		})

		page := &mock.Page{
			ElementsFn: func(selector string) ([]docjudge.Element, error) {
				if selector == "main" {
					return []docjudge.Element{container}, nil
				}
				return nil, nil
			},
		}

		s := &docjudge.MainContentStrategy{}
		blocks, err := s.Extract(page)

		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, "a paragraph that is long enough to keep", blocks[0].Text)
	})

	t.Run("falls through to lower priority selectors", func(t *testing.T) {
		t.Parallel()

		container := containerElement("some container text", []docjudge.Element{
			staticElement("p", "content found under a class selector"),
		})

		page := &mock.Page{
			ElementsFn: func(selector string) ([]docjudge.Element, error) {
				if selector == ".content" {
					return []docjudge.Element{container}, nil
				}
				return nil, nil
			},
		}

		s := &docjudge.MainContentStrategy{}
		blocks, err := s.Extract(page)

		require.NoError(t, err)
		require.Len(t, blocks, 1)
	})

	t.Run("stops at the first matching selector without merging", func(t *testing.T) {
		t.Parallel()

		mainContainer := containerElement("main text", []docjudge.Element{
			staticElement("p", "blocks from the main container"),
		})
		classContainer := containerElement("class text", []docjudge.Element{
			staticElement("p", "blocks from the class container"),
		})

		page := &mock.Page{
			ElementsFn: func(selector string) ([]docjudge.Element, error) {
				switch selector {
				case "main":
					return []docjudge.Element{mainContainer}, nil
				case ".content":
					return []docjudge.Element{classContainer}, nil
				}
				return nil, nil
			},
		}

		s := &docjudge.MainContentStrategy{}
		blocks, err := s.Extract(page)

		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, "blocks from the main container", blocks[0].Text)
	})

	t.Run("abstains when nothing matches", func(t *testing.T) {
		t.Parallel()

		page := &mock.Page{
			ElementsFn: func(string) ([]docjudge.Element, error) {
				return nil, nil
			},
		}

		s := &docjudge.MainContentStrategy{}
		blocks, err := s.Extract(page)

		require.NoError(t, err)
		assert.Empty(t, blocks)
	})
}

func TestScriptStrategy_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns stripped document text as one block", func(t *testing.T) {
		t.Parallel()

		page := &mock.Page{
			EvalFn: func(string) (string, error) {
				return "  the visible page text  ", nil
			},
		}

		s := &docjudge.ScriptStrategy{}
		blocks, err := s.Extract(page)

		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, docjudge.BlockGeneric, blocks[0].Tag)
		assert.Equal(t, "the visible page text", blocks[0].Text)
	})

	t.Run("abstains on empty result", func(t *testing.T) {
		t.Parallel()

		page := &mock.Page{
			EvalFn: func(string) (string, error) { return "   ", nil },
		}

		s := &docjudge.ScriptStrategy{}
		blocks, err := s.Extract(page)

		require.NoError(t, err)
		assert.Empty(t, blocks)
	})
}

func TestRawTextStrategy_Extract(t *testing.T) {
	t.Parallel()

	t.Run("accepts body text above the viability floor", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("body text ", 20)
		page := &mock.Page{
			EvalFn: func(string) (string, error) { return long, nil },
		}

		s := &docjudge.RawTextStrategy{}
		blocks, err := s.Extract(page)

		require.NoError(t, err)
		require.Len(t, blocks, 1)
	})

	t.Run("abstains below the viability floor", func(t *testing.T) {
		t.Parallel()

		page := &mock.Page{
			EvalFn: func(string) (string, error) { return "under a hundred characters", nil },
		}

		s := &docjudge.RawTextStrategy{}
		blocks, err := s.Extract(page)

		require.NoError(t, err)
		assert.Empty(t, blocks)
	})
}
