// Package rangetree implements the plain-key half of the bulk-delete
// engine: an in-memory, array-indexed binary search tree specialized for
// the build-once / tear-down-fast workload. A Tree is built once from a
// batch of keys, then torn down through repeated DeleteRange calls that run
// in O(k+h) time (k entries removed, h current tree height) rather than the
// O(k*h) of k individual deletions, and is cheaply restored to its original
// shape via Refill from an immutable master copy.
//
// The tree never rotates or rebalances incrementally; DeleteRange instead
// tracks "open slots" left behind by removed entries and fills them by
// promoting in-order neighbors during the same traversal that already
// visits them. See pkg/treecore for the shared index arithmetic and slot
// stack machinery, and DESIGN.md for the mapping back to the original
// Rust implementation this package is ported from.
package rangetree
