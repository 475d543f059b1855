package readability_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/docjudge"
	"github.com/fwojciec/docjudge/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure TextStrategy implements docjudge.StaticStrategy at compile time.
var _ docjudge.StaticStrategy = (*readability.TextStrategy)(nil)

func TestTextStrategy_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns page text as one block", func(t *testing.T) {
		t.Parallel()

		body := strings.Repeat("This sentence is part of the page body text. ", 10)
		html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Docs</title></head>
<body>
<article>
<h1>Documentation</h1>
<p>%s</p>
</article>
</body>
</html>`, body)

		s := readability.NewTextStrategy()
		blocks, err := s.Extract(html)

		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, docjudge.BlockGeneric, blocks[0].Tag)
		assert.Contains(t, blocks[0].Text, "part of the page body text")
	})

	t.Run("abstains below the viability floor", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>short page</p></body></html>`

		s := readability.NewTextStrategy()
		blocks, err := s.Extract(html)

		require.NoError(t, err)
		assert.Empty(t, blocks)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		s := readability.NewTextStrategy()
		_, err := s.Extract("")

		require.Error(t, err)
		assert.Equal(t, docjudge.EINVALID, docjudge.ErrorCode(err))
	})
}
