// Package intervaltree extends the array-indexed implicit tree of
// pkg/rangetree with interval keys and a maxb augmentation, supporting
// overlap queries and bulk overlap-range deletion.
package intervaltree
