package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulate(t *testing.T) {
	cfg := HashSetConfig{Buckets: 5, Strings: 2000, StringLen: 6}

	set, first := populate(cfg, 8)
	require.NoError(t, set.Check())

	assert.Len(t, first, cfg.StringLen)
	assert.True(t, set.Has(first))
	assert.LessOrEqual(t, set.Size(), uint(cfg.Strings))

	var total uint
	for _, n := range set.Bins() {
		total += n
	}

	assert.Equal(t, set.Size(), total)

	i := bucketOf(set, first)
	require.GreaterOrEqual(t, i, 0)
	assert.True(t, set.Bucket(i).Has(first))
	assert.Equal(t, -1, bucketOf(set, "not a generated string"))
}

func TestRandomString(t *testing.T) {
	set, _ := populate(HashSetConfig{Buckets: 1, Strings: 50, StringLen: 12}, 2)

	set.Range(func(s string) bool {
		assert.Len(t, s, 12)

		for _, c := range s {
			assert.True(t, strings.ContainsRune(charset, c), "unexpected rune %q", c)
		}

		return true
	})
}

func TestHashSetCommand(t *testing.T) {
	out, err := runRoot(t, "hashset", "--buckets", "40", "--strings", "10", "--string-len", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "[UNUSED]")
	assert.Contains(t, out, "PASS")
}

func TestHashSetCommand_ZeroBuckets(t *testing.T) {
	_, err := runRoot(t, "hashset", "--buckets", "0")
	require.ErrorIs(t, err, ErrZeroBuckets)
}
