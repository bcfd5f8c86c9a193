// Package stringobj aids in writing String methods for objects
// with a JSON-like output.
package stringobj

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Builder helps build String functions for objects that skip zero-value
// attributes.
type Builder struct {
	attrs []string
}

// Put adds the given attribute-value pair to the builder, skipping it if the
// value is a zero value.
//
// String values that would be hard to read as-is
// (empty after trimming, or containing spaces or control characters)
// are quoted.
func (b *Builder) Put(name string, value any) {
	if value == nil {
		return
	}
	if v := reflect.ValueOf(value); v.IsZero() {
		return
	}

	var s string
	if str, ok := value.(string); ok && needsQuote(str) {
		s = strconv.Quote(str)
	} else {
		s = fmt.Sprint(value)
	}
	b.attrs = append(b.attrs, name+": "+s)
}

func needsQuote(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || !unicode.IsPrint(r) || r == '"'
	})
}

// String returns the final string representation.
func (b *Builder) String() string {
	slices.Sort(b.attrs)

	var out strings.Builder
	out.WriteRune('{')
	for i, attr := range b.attrs {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(attr)
	}
	out.WriteRune('}')
	return out.String()
}
