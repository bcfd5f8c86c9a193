// Package token splits text into symbols and counts how often each occurs.
//
// A symbol is either a maximal run of word characters
// (ASCII letters, digits, apostrophes and hyphens),
// or a single character that is not a word character.
// An ASCII character is always a symbol of its own, so "\r\n" is two symbols.
// Any other character is one user-perceived character (grapheme cluster),
// so an emoji with a skin tone modifier is one symbol, not two.
// A cluster never extends into a following ASCII byte.
package token

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// MaxSymbolSize is the longest symbol a Scanner accepts.
// Longer runs of word characters fail with bufio.ErrTooLong.
const MaxSymbolSize = 1 << 20 // 1MB

// IsWordByte reports whether b may be part of a multi-character symbol.
func IsWordByte(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	case b == '\'' || b == '-':
		return true
	default:
		return false
	}
}

// ScanSymbols is a bufio.SplitFunc that yields one symbol per token.
func ScanSymbols(data []byte, atEOF bool) (advance int, tok []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}

	if IsWordByte(data[0]) {
		i := 1
		for i < len(data) && IsWordByte(data[i]) {
			i++
		}
		if i == len(data) && !atEOF {
			// The run may continue past the buffer.
			return 0, nil, nil
		}
		return i, data[:i], nil
	}

	if data[0] < utf8.RuneSelf {
		return 1, data[:1], nil
	}

	if !atEOF && !utf8.FullRune(data) {
		return 0, nil, nil
	}

	cluster, rest, _, _ := uniseg.FirstGraphemeCluster(data, -1)
	// ASCII bytes never occur inside a multi-byte rune,
	// so this cuts on a rune boundary.
	if i := asciiIndex(cluster[1:]); i >= 0 {
		return i + 1, cluster[:i+1], nil
	}
	if !atEOF && !utf8.FullRune(rest) {
		// The boundary after the cluster depends on the next rune.
		return 0, nil, nil
	}
	return len(cluster), cluster, nil
}

func asciiIndex(b []byte) int {
	for i, c := range b {
		if c < utf8.RuneSelf {
			return i
		}
	}
	return -1
}

// Scanner reads symbols from an io.Reader.
type Scanner struct {
	s *bufio.Scanner
}

// NewScanner builds a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), MaxSymbolSize)
	s.Split(ScanSymbols)
	return &Scanner{s: s}
}

// Scan advances to the next symbol, returning false at the end of input or
// on error.
func (s *Scanner) Scan() bool { return s.s.Scan() }

// Symbol returns the most recent symbol read by Scan.
func (s *Scanner) Symbol() string { return s.s.Text() }

// Err returns the first non-EOF error encountered by the Scanner.
func (s *Scanner) Err() error { return s.s.Err() }

// Split returns the symbols of s in order.
func Split(s string) []string {
	var syms []string
	scan := NewScanner(strings.NewReader(s))
	for scan.Scan() {
		syms = append(syms, scan.Symbol())
	}
	return syms
}
