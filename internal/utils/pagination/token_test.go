package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	for _, offset := range []int{0, 1, 50, 12345} {
		token := EncodeToken(offset)
		assert.NotEmpty(t, token, "Token should not be empty")

		decoded, err := DecodeToken(token)
		assert.NoError(t, err)
		assert.Equal(t, offset, decoded)
	}

	decoded, err := DecodeToken("")
	assert.NoError(t, err)
	assert.Equal(t, 0, decoded, "empty token starts at the beginning")
}

func TestDecodeToken_Invalid(t *testing.T) {
	invalidTokens := []string{
		"!!!not-base64!!!",
		EncodeToken(3)[:2],
		"b2Zmc2V0Oi0x", // "offset:-1"
		"aGVsbG8",      // "hello"
	}
	for _, token := range invalidTokens {
		_, err := DecodeToken(token)
		assert.Error(t, err, "token %q should not decode", token)
	}
}

func TestPage(t *testing.T) {
	items := []string{"c1", "c2", "c3", "c4", "c5"}

	page, next, err := Page(items, 2, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, page)
	require.NotEmpty(t, next)

	page, next, err = Page(items, 2, next)
	require.NoError(t, err)
	assert.Equal(t, []string{"c3", "c4"}, page)

	page, next, err = Page(items, 2, next)
	require.NoError(t, err)
	assert.Equal(t, []string{"c5"}, page)
	assert.Empty(t, next)

	page, next, err = Page(items, 0, "")
	require.NoError(t, err)
	assert.Len(t, page, 5, "non-positive limit falls back to the default")
	assert.Empty(t, next)

	page, _, err = Page(items, 2, EncodeToken(10))
	require.NoError(t, err)
	assert.Empty(t, page)
}
