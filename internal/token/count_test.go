package token

import (
	"context"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/abhinav/huffcode/internal/symtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func toMap(tbl *symtab.Table[int]) map[string]int {
	m := make(map[string]int, tbl.Len())
	for k, v := range tbl.All() {
		m[k] = v
	}
	return m
}

func TestCount(t *testing.T) {
	t.Parallel()

	freqs := symtab.New[int](64)
	n, err := Count(strings.NewReader("a b a, b a!"), freqs)
	require.NoError(t, err)

	assert.Equal(t, 11, n)
	assert.Equal(t, map[string]int{
		"a": 3,
		"b": 2,
		" ": 4,
		",": 1,
		"!": 1,
	}, toMap(freqs))
}

func TestCountAccumulates(t *testing.T) {
	t.Parallel()

	freqs := symtab.New[int](64)
	_, err := Count(strings.NewReader("x y"), freqs)
	require.NoError(t, err)
	_, err = Count(strings.NewReader("x"), freqs)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"x": 2, "y": 1, " ": 1}, toMap(freqs))
}

func TestCountString(t *testing.T) {
	t.Parallel()

	freqs := CountString("to be or not to be", 16)
	assert.Equal(t, 16, freqs.Capacity())
	assert.Equal(t, map[string]int{
		"to":  2,
		"be":  2,
		"or":  1,
		"not": 1,
		" ":   5,
	}, toMap(freqs))
}

func TestMerge(t *testing.T) {
	t.Parallel()

	dst := CountString("a a b", 8)
	src := CountString("b c", 8)
	Merge(dst, src)

	assert.Equal(t, map[string]int{"a": 2, "b": 2, "c": 1, " ": 3}, toMap(dst))
	assert.Equal(t, map[string]int{"b": 1, "c": 1, " ": 1}, toMap(src), "src must not change")
}

func TestCountShards(t *testing.T) {
	t.Parallel()

	shards := []io.Reader{
		strings.NewReader("the quick brown fox"),
		strings.NewReader("jumps over the lazy dog"),
		strings.NewReader(""),
	}
	freqs, n, err := CountShards(context.Background(), shards, 32)
	require.NoError(t, err)

	whole := CountString("the quick brown fox jumps over the lazy dog", 32)
	// Joining the shards adds one separator.
	whole.Update(" ", func(old int, _ bool) int { return old - 1 })

	assert.Equal(t, toMap(whole), toMap(freqs))
	assert.Equal(t, 16, n)
}

func TestCountShardsErrors(t *testing.T) {
	t.Parallel()

	shards := []io.Reader{
		iotest.ErrReader(assert.AnError),
		strings.NewReader("fine"),
		iotest.ErrReader(io.ErrUnexpectedEOF),
	}
	freqs, _, err := CountShards(context.Background(), shards, 8)
	require.Error(t, err)
	assert.Nil(t, freqs)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], assert.AnError)
	assert.Contains(t, errs[0].Error(), "shard 0")
	assert.ErrorIs(t, errs[1], io.ErrUnexpectedEOF)
	assert.Contains(t, errs[1].Error(), "shard 2")
}

func TestCountShardsCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	long := strings.Repeat("a ", _cancelCheckInterval)
	_, _, err := CountShards(ctx, []io.Reader{strings.NewReader(long)}, 8)
	assert.ErrorIs(t, err, context.Canceled)
}
