// Package stub replaces global values in tests.
//
// Tests that use it must not run in parallel
// with other tests that read the same value.
package stub

import "testing"

// Replace replaces the given value and returns a function to restore it.
func Replace[V any](dst *V, val V) (restore func()) {
	old := *dst
	*dst = val
	return func() {
		*dst = old
	}
}

// Set replaces the given value until the end of the test.
func Set[V any](t testing.TB, dst *V, val V) {
	t.Cleanup(Replace(dst, val))
}
