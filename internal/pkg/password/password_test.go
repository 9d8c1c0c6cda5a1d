//go:build unit

package password

import (
	"testing"

	"canteen-backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := HashWithCost("collector-pass", bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("正しいパスワード", func(t *testing.T) {
		assert.NoError(t, Verify(hashed, "collector-pass"))
	})

	t.Run("誤ったパスワード", func(t *testing.T) {
		assert.ErrorIs(t, Verify(hashed, "wrong-pass"), ErrMismatch)
	})

	t.Run("空の入力", func(t *testing.T) {
		assert.ErrorIs(t, Verify("", "collector-pass"), ErrEmpty)
		_, err := Hash("")
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("壊れたハッシュ", func(t *testing.T) {
		err := Verify("not-a-hash", "collector-pass")
		require.Error(t, err)
		assert.False(t, errs.Is(err, ErrMismatch))
	})
}

func TestHashWithCost_OutOfRange(t *testing.T) {
	_, err := HashWithCost("collector-pass", bcrypt.MaxCost+1)
	assert.ErrorIs(t, err, ErrHashing)
}

func TestNeedsRehash(t *testing.T) {
	weak, err := HashWithCost("collector-pass", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, NeedsRehash(weak))
	assert.True(t, NeedsRehash("garbage"))
	assert.False(t, NeedsRehash("$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."))
}
