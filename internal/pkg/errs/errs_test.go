//go:build unit

package errs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("meal recording failed")

func TestMark(t *testing.T) {
	cause := fmt.Errorf("insert: %w", context.DeadlineExceeded)
	err := Mark(cause, errSentinel)

	t.Run("両方のIsで一致する", func(t *testing.T) {
		assert.True(t, Is(err, errSentinel))
		assert.True(t, errors.Is(err, errSentinel))
	})

	t.Run("原因も辿れる", func(t *testing.T) {
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("nilは目印そのもの", func(t *testing.T) {
		assert.Same(t, errSentinel, Mark(nil, errSentinel))
	})
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "noop"))
	assert.NoError(t, Wrapf(nil, "noop %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	lines := ExtractStackLines(Wrap(errSentinel, "record meal"), 3)

	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "record meal")
	assert.Nil(t, ExtractStackLines(nil, 3))
}
