package symtab

import (
	"bytes"
	"fmt"
	"io"
)

// Stats describes how entries are spread across a table's buckets.
type Stats struct {
	Entries int // number of distinct keys
	Buckets int // number of buckets

	// Histogram[i] is the number of buckets whose chain has length i.
	// Histogram[0] counts the empty buckets.
	Histogram []int
}

// Stats computes bucket statistics for the table.
func (t *Table[V]) Stats() Stats {
	hist := []int{0}
	for _, e := range t.buckets {
		n := 0
		for ; e != nil; e = e.next {
			n++
		}
		for n >= len(hist) {
			hist = append(hist, 0)
		}
		hist[n]++
	}

	return Stats{
		Entries:   t.len,
		Buckets:   len(t.buckets),
		Histogram: hist,
	}
}

// Filled reports the number of non-empty buckets.
func (s Stats) Filled() int {
	if len(s.Histogram) == 0 {
		return 0
	}
	return s.Buckets - s.Histogram[0]
}

// FillPercent reports the percentage of buckets that are non-empty.
func (s Stats) FillPercent() float64 {
	if s.Buckets == 0 {
		return 0
	}
	return 100 * float64(s.Filled()) / float64(s.Buckets)
}

// AverageChain reports the average chain length of non-empty buckets.
func (s Stats) AverageChain() float64 {
	filled := s.Filled()
	if filled == 0 {
		return 0
	}
	return float64(s.Entries) / float64(filled)
}

// WriteTo writes a human-readable report of the statistics.
// The format is meant for people and may change.
func (s Stats) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Hash Table Stats\n")
	buf.WriteString("================\n")
	fmt.Fprintf(&buf, "Number of Entries: %d\n", s.Entries)
	fmt.Fprintf(&buf, "Number of Buckets: %d\n", s.Buckets)
	fmt.Fprintf(&buf, "Histogram of Bucket Sizes: %v\n", s.Histogram)
	fmt.Fprintf(&buf, "Fill Percentage: %.4f%%\n", s.FillPercent())
	fmt.Fprintf(&buf, "Average Non-Empty Bucket Size: %.4f\n", s.AverageChain())
	return buf.WriteTo(w)
}

func (s Stats) String() string {
	var buf bytes.Buffer
	_, _ = s.WriteTo(&buf)
	return buf.String()
}
