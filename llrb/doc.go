// Package llrb implement a self-balancing version of binary-tree, called,
// LLRB (Left Leaning Red Black), as an ordered symbol table.
//
//   * Index key, value. Keys and values are generic, key ordering is
//     supplied by an api.Comparator.
//   * Each key shall be unique within the index sample-set.
//   * Every node book-keeps the size of its sub-tree, making rank and
//     select operations logarithmic.
//   * Reads and writes are serialized, callers are expected to
//     synchronise access to the same instance.
//
// The tree is a binary encoding of a 2-3 tree, red links glue a 2-node
// with its left-leaning sibling to form a 3-node. Path from root to any
// nil link contain the same number of black links, hence height of the
// tree never exceeds 2*log2(n+1).
package llrb
