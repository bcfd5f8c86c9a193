// Package report renders code tables for people and programs.
package report

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/abhinav/huffcode/internal/huffman"
	"github.com/abhinav/huffcode/internal/symtab"
	"github.com/mattn/go-runewidth"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Entry is a single symbol in a code table.
type Entry struct {
	Symbol    string `json:"symbol" yaml:"symbol"`
	Frequency int    `json:"frequency" yaml:"frequency"`
	Code      string `json:"code" yaml:"code"`
}

// Report is a code table along with a summary of it.
type Report struct {
	// Number of distinct symbols.
	Symbols int `json:"symbols" yaml:"symbols"`

	// Number of symbol occurrences.
	Total int `json:"total" yaml:"total"`

	// Number of bits needed to encode every occurrence.
	Bits int `json:"bits" yaml:"bits"`

	Codes []Entry `json:"codes" yaml:"codes"`
}

// New builds a report from symbol frequencies and their codewords.
//
// Entries are ordered by codeword length, and then by codeword,
// so the most frequent symbols come first.
func New(freqs *symtab.Table[int], codes *symtab.Table[string]) *Report {
	r := Report{
		Symbols: freqs.Len(),
		Bits:    huffman.WeightedLength(freqs, codes),
		Codes:   make([]Entry, 0, freqs.Len()),
	}
	for sym, freq := range freqs.All() {
		code, _ := codes.Get(sym)
		r.Total += freq
		r.Codes = append(r.Codes, Entry{
			Symbol:    sym,
			Frequency: freq,
			Code:      code,
		})
	}
	slices.SortFunc(r.Codes, func(a, b Entry) int {
		if c := cmp.Compare(len(a.Code), len(b.Code)); c != 0 {
			return c
		}
		return strings.Compare(a.Code, b.Code)
	})
	return &r
}

// Format is an output format for reports.
type Format string

// Supported formats.
const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

// String returns the name of the format.
func (f *Format) String() string { return string(*f) }

// Set parses a format name. Use with flag.Var.
func (f *Format) Set(s string) error {
	switch ff := Format(strings.ToLower(s)); ff {
	case Text, YAML, JSON:
		*f = ff
		return nil
	default:
		return fmt.Errorf("unknown format %q: use text, yaml, or json", s)
	}
}

// UnmarshalYAML parses a format from a YAML scalar.
func (f *Format) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return f.Set(s)
}

// Write writes the report in the given format.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case "", Text:
		return r.WriteText(w)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return multierr.Append(enc.Encode(r), enc.Close())
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// WriteText writes the report as aligned columns of
// symbol, frequency, and codeword,
// followed by a summary line.
func (r *Report) WriteText(w io.Writer) error {
	syms := make([]string, len(r.Codes))
	freqs := make([]string, len(r.Codes))
	var symWidth, freqWidth int
	for i, e := range r.Codes {
		syms[i] = Quote(e.Symbol)
		freqs[i] = strconv.Itoa(e.Frequency)
		symWidth = max(symWidth, runewidth.StringWidth(syms[i]))
		freqWidth = max(freqWidth, len(freqs[i]))
	}

	var sb strings.Builder
	for i, e := range r.Codes {
		sb.WriteString(runewidth.FillRight(syms[i], symWidth))
		sb.WriteString("  ")
		sb.WriteString(strings.Repeat(" ", freqWidth-len(freqs[i])))
		sb.WriteString(freqs[i])
		sb.WriteString("  ")
		sb.WriteString(e.Code)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%d symbols, %d distinct, %d bits\n", r.Total, r.Symbols, r.Bits)

	_, err := io.WriteString(w, sb.String())
	return err
}

// Quote returns the symbol as-is if it's printable and unambiguous,
// or as a quoted Go string otherwise.
func Quote(sym string) string {
	if len(sym) > 0 && !strings.ContainsFunc(sym, needsQuote) {
		return sym
	}
	return strconv.Quote(sym)
}

func needsQuote(r rune) bool {
	return unicode.IsSpace(r) || !unicode.IsPrint(r) || r == '"'
}
