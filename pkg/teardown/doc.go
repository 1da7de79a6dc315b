// Package teardown provides thin, friendlier facades over pkg/rangetree and
// pkg/intervaltree, mirroring external_api.rs's TeardownTreeMap /
// TeardownTreeSet / IntervalTeardownTreeMap / IntervalTeardownTreeSet.
package teardown
