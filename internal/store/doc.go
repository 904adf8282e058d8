// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying document database from the
// handlers, allowing request handling to remain independent of the
// specific database driver and letting tests substitute in-memory doubles.
package store
