package docjudge_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/docjudge"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docjudge.Errorf(docjudge.ENOTFOUND, "report %q not found", "test")

	assert.Equal(t, docjudge.ENOTFOUND, docjudge.ErrorCode(err))
	assert.Equal(t, "report \"test\" not found", docjudge.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docjudge.ErrorCode(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading page: %w", docjudge.Errorf(docjudge.ERENDER, "navigation failed"))

	assert.Equal(t, docjudge.ERENDER, docjudge.ErrorCode(err))
	assert.Equal(t, "navigation failed", docjudge.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docjudge.EINTERNAL, docjudge.ErrorCode(fmt.Errorf("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docjudge.ErrorMessage(nil))
}
