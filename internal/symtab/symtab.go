// Package symtab implements a fixed-capacity hash table
// keyed by strings, resolving collisions by chaining.
//
// The table never grows.
// Callers must size it for the number of distinct keys they expect:
// once the key count approaches the capacity,
// chains grow long and lookups degrade towards linear time.
// Lookups stay correct regardless.
package symtab

import (
	"fmt"
	"hash/fnv"
	"iter"
	"strings"
)

// DefaultCapacity is a bucket count suitable for the vocabulary of a
// typical text document.
const DefaultCapacity = 16384

// HashFunc hashes a key. The table reduces the result modulo its capacity.
type HashFunc func(string) uint64

// Option customizes a Table.
type Option func(*options)

type options struct {
	hash HashFunc
}

// WithHash changes the hash function used by the table.
// Defaults to 64-bit FNV-1a.
func WithHash(fn HashFunc) Option {
	return func(o *options) {
		o.hash = fn
	}
}

func fnvHash(key string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return h.Sum64()
}

// Table maps string keys to values of type V.
//
// The zero value is not usable; build one with New.
// A Table is not safe for concurrent use.
type Table[V any] struct {
	buckets []*entry[V]
	hash    HashFunc
	len     int
}

type entry[V any] struct {
	key   string
	value V
	next  *entry[V]
}

// New builds a table with the given number of buckets.
// It panics if capacity is less than one.
func New[V any](capacity int, opts ...Option) *Table[V] {
	if capacity < 1 {
		panic(fmt.Sprintf("symtab: capacity must be positive, got %d", capacity))
	}

	o := options{hash: fnvHash}
	for _, opt := range opts {
		opt(&o)
	}

	return &Table[V]{
		buckets: make([]*entry[V], capacity),
		hash:    o.hash,
	}
}

func (t *Table[V]) index(key string) int {
	return int(t.hash(key) % uint64(len(t.buckets)))
}

// find returns the entry for key, or the last entry in its chain if key is
// absent. Both are nil if the bucket is empty.
func (t *Table[V]) find(key string) (found, tail *entry[V]) {
	for e := t.buckets[t.index(key)]; e != nil; e = e.next {
		if e.key == key {
			return e, nil
		}
		tail = e
	}
	return nil, tail
}

// Put associates value with key, replacing any previous value.
func (t *Table[V]) Put(key string, value V) {
	t.Update(key, func(V, bool) V { return value })
}

// Update replaces the value for key with the result of fn.
// fn receives the current value and whether key was present.
func (t *Table[V]) Update(key string, fn func(old V, ok bool) V) {
	found, tail := t.find(key)
	if found != nil {
		found.value = fn(found.value, true)
		return
	}

	var zero V
	e := &entry[V]{key: key, value: fn(zero, false)}
	if tail == nil {
		t.buckets[t.index(key)] = e
	} else {
		tail.next = e
	}
	t.len++
}

// Get returns the value for key, and false if key is absent.
func (t *Table[V]) Get(key string) (V, bool) {
	if e, _ := t.find(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key is present in the table.
func (t *Table[V]) ContainsKey(key string) bool {
	e, _ := t.find(key)
	return e != nil
}

// Len reports the number of distinct keys in the table.
func (t *Table[V]) Len() int { return t.len }

// Capacity reports the number of buckets in the table.
func (t *Table[V]) Capacity() int { return len(t.buckets) }

// Keys returns all keys in the table in no particular order.
func (t *Table[V]) Keys() []string {
	keys := make([]string, 0, t.len)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates over all entries in the table in bucket order.
// The table must not be modified during iteration.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, e := range t.buckets {
			for ; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// String lists the contents of the table, one "key = value" per line.
func (t *Table[V]) String() string {
	var sb strings.Builder
	for k, v := range t.All() {
		fmt.Fprintf(&sb, "%v = %v\n", k, v)
	}
	return sb.String()
}
