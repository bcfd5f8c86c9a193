package token

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/abhinav/huffcode/internal/symtab"
	"go.uber.org/multierr"
)

// How many symbols CountShards reads between checks for cancellation.
const _cancelCheckInterval = 1024

func increment(old int, ok bool) int {
	if !ok {
		return 1
	}
	return old + 1
}

// Count reads all symbols from r, adding one to the count of each in freqs.
// It returns the number of symbols read.
func Count(r io.Reader, freqs *symtab.Table[int]) (int, error) {
	return count(context.Background(), r, freqs)
}

func count(ctx context.Context, r io.Reader, freqs *symtab.Table[int]) (n int, err error) {
	scan := NewScanner(r)
	for scan.Scan() {
		freqs.Update(scan.Symbol(), increment)
		n++

		if n%_cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return n, err
			}
		}
	}
	return n, scan.Err()
}

// CountString counts the symbols in s into a new table with the given
// number of buckets.
func CountString(s string, capacity int) *symtab.Table[int] {
	freqs := symtab.New[int](capacity)
	// Reading from a strings.Reader cannot fail
	// and no symbol in s can be longer than s.
	_, _ = Count(strings.NewReader(s), freqs)
	return freqs
}

// Merge adds the counts in src to the counts in dst.
func Merge(dst, src *symtab.Table[int]) {
	for sym, n := range src.All() {
		dst.Update(sym, func(old int, _ bool) int {
			return old + n
		})
	}
}

// CountShards counts the symbols of each shard concurrently,
// and merges the results into a single table with the given capacity.
//
// Symbols never span shards:
// a word split across two shards is counted as two symbols.
//
// Errors from all shards are combined.
// No table is returned if any shard fails.
func CountShards(ctx context.Context, shards []io.Reader, capacity int) (*symtab.Table[int], int, error) {
	var (
		wg     sync.WaitGroup
		tables = make([]*symtab.Table[int], len(shards))
		counts = make([]int, len(shards))
		errs   = make([]error, len(shards))
	)
	for i, r := range shards {
		wg.Add(1)
		go func() {
			defer wg.Done()

			tables[i] = symtab.New[int](capacity)
			n, err := count(ctx, r, tables[i])
			counts[i] = n
			if err != nil {
				errs[i] = fmt.Errorf("shard %d: %w", i, err)
			}
		}()
	}
	wg.Wait()

	if err := multierr.Combine(errs...); err != nil {
		return nil, 0, err
	}

	freqs := symtab.New[int](capacity)
	var total int
	for i, tbl := range tables {
		Merge(freqs, tbl)
		total += counts[i]
	}
	return freqs, total, nil
}
