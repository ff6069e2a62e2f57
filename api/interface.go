// Package api define types and interfaces common to all ordered
// symbol tables implemented by this repository.
package api

import "iter"

// Comparator return a negative number when a < b, zero when a == b and a
// positive number when a > b. It must describe a total order.
type Comparator[K any] func(a, b K) int

// RangeCallb callback from Range API, return false to stop the range.
type RangeCallb[K, V any] func(key K, value V) bool

// IndexMeta interface for book-keeping and diagnostics.
type IndexMeta interface {
	// ID return index id. Typically, it is human readable and unique.
	ID() string

	// Count return the number of entries indexed.
	Count() int64

	// Isempty return true if index holds no entries.
	Isempty() bool
}

// IndexReader interface for read operations. None of these methods
// mutate the index.
type IndexReader[K, V any] interface {
	// Get value for key, ok is false if key is not present.
	Get(key K) (value V, ok bool)

	// Has return true if key is present.
	Has(key K) bool

	// Min return the smallest entry, ErrorEmptyCollection if empty.
	Min() (key K, value V, err error)

	// Max return the largest entry, ErrorEmptyCollection if empty.
	Max() (key K, value V, err error)

	// Floor return the largest key less than or equal to key.
	Floor(key K) (floor K, ok bool, err error)

	// Ceiling return the smallest key greater than or equal to key.
	Ceiling(key K) (ceil K, ok bool, err error)

	// Rank return the number of keys strictly less than key.
	Rank(key K) int64

	// Select return the key of rank k, 0 <= k < Count().
	Select(k int64) (key K, err error)

	// RangeCount return the number of keys within [lo, hi].
	RangeCount(lo, hi K) (int64, error)

	// Keys return an ascending sequence of keys within [lo, hi].
	Keys(lo, hi K) (iter.Seq[K], error)

	// All return an ascending sequence of every entry.
	All() iter.Seq2[K, V]
}

// IndexWriter interface for mutations.
type IndexWriter[K, V any] interface {
	// Upsert a new entry or overwrite the value of an existing entry.
	Upsert(key K, value V) error

	// Set is same as Upsert, except an unset value deletes the key.
	Set(key K, value V) error

	// Delete key, ok is false if key was not present.
	Delete(key K) (value V, ok bool, err error)

	// DeleteMin remove the smallest entry.
	DeleteMin() (key K, value V, err error)

	// DeleteMax remove the largest entry.
	DeleteMax() (key K, value V, err error)
}

// Index interface for an ordered symbol table.
type Index[K, V any] interface {
	IndexMeta
	IndexReader[K, V]
	IndexWriter[K, V]
}
