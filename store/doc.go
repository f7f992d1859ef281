// Package store reads the tabulated optical-constant datasets consumed by
// package dispersion.
//
// A dataset container is one of:
//
//   - a directory of loose CSV files,
//   - a zip archive with the same layout,
//   - the copy embedded in the binary (Embedded).
//
// Each dataset is a single CSV blob named <key>.csv whose header row names
// the numeric columns ("lambda", "n", "k", ...). The container layout stays
// opaque to callers: they hold a Reader, list Keys and Read tables by key.
//
// All access is read-only. A Store is safe for concurrent use; the only
// shared state is the open archive handle, which is never written after
// Open.
//
// Errors: every failure path (missing container, missing key, malformed
// CSV, absent column) wraps ErrUnavailable, so callers match one sentinel
// with errors.Is.
package store
