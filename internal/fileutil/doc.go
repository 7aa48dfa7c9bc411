// Package fileutil provides file operation utilities for directory and file
// management.
//
// EnsureDir creates directories recursively, WriteFile writes a file after
// creating its parent directories, AppendFile appends to an existing file
// without touching prior content, and Recreate wipes and recreates a
// directory. These are used throughout fuzzenv for preparing project roots
// and materializing generated manifests and source files.
package fileutil
