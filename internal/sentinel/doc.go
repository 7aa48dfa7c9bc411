// Package sentinel provides a const-declarable error type for sentinel errors.
//
// Sentinel errors created with errors.New live in package-level vars that
// consumers can reassign. Error is a string-based alternative that can be
// declared const, keeping the sentinel immutable while still comparing
// correctly under errors.Is across wrapped chains.
package sentinel
