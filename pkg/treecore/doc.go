// Package treecore holds the primitives shared by the implicit-array bulk
// delete trees in pkg/rangetree and pkg/intervaltree: index arithmetic for
// the parent/left/right relationship of a flat-array binary tree, the
// fixed-capacity slot stacks used to defer hole-filling during a bulk
// delete, and the small generic Driver/Sink contracts that let a single
// delete_range/delete_overlap implementation be reused against arbitrary
// key and payload types.
//
// Nothing in this package allocates on the hot path beyond what callers
// pre-size; it has no notion of a tree shape or of keys at all, only of
// array positions.
package treecore
