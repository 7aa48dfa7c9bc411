package fuzzenv

import (
	"testing"

	"github.com/fuzzbed/fuzzenv/internal/core"
)

// Builder stages files into this test's project root. Methods chain and
// abort the calling test on any failure, so test code reads as a straight
// declaration of the project's contents. Not safe for concurrent use; each
// test drives its own builder.
//
// The core.Builder is stored as a named (unexported) field rather than
// embedded so callers cannot reach the error-returning internal methods
// through type assertions.
type Builder struct {
	tb   testing.TB
	core *core.Builder
}

// Root returns the project root directory.
func (b *Builder) Root() string {
	return b.core.Root()
}

// File writes content verbatim to the project-relative path rel, creating
// missing parent directories and overwriting any existing file. Content is
// never validated. Staging a file at the canonical manifest path
// (Cargo.toml) or either canonical entry-module path (src/lib.rs,
// src/main.rs) suppresses the corresponding default at Build time.
func (b *Builder) File(rel, content string) *Builder {
	b.tb.Helper()
	if err := b.core.File(rel, []byte(content)); err != nil {
		b.tb.Fatalf("fuzzenv: %v", err)
	}
	return b
}

// WithFuzz stages the fuzz sub-project's manifest at fuzz/Cargo.toml. Must
// be called exactly once, before any FuzzTarget call. The sub-project is a
// single-member workspace isolated from the parent's dependency graph, with
// dependencies on the parent (by relative path) and on the external
// fuzzing-support library.
func (b *Builder) WithFuzz() *Builder {
	b.tb.Helper()
	if err := b.core.EnableFuzz(); err != nil {
		b.tb.Fatalf("fuzzenv: %v", err)
	}
	return b
}

// FuzzTarget appends a binary-target declaration for name to the existing
// fuzz manifest and writes body verbatim to the target's source file.
// Declarations accumulate in call order. Calling FuzzTarget before WithFuzz
// is a precondition violation and aborts the test.
func (b *Builder) FuzzTarget(name, body string) *Builder {
	b.tb.Helper()
	if err := b.core.AddFuzzTarget(name, []byte(body)); err != nil {
		b.tb.Fatalf("fuzzenv: %v", err)
	}
	return b
}

// Build synthesizes the default manifest and/or default entry module for
// anything not explicitly staged and returns the finished project handle.
// The handle is independent of the builder: later builder calls do not
// affect it.
func (b *Builder) Build() *Project {
	b.tb.Helper()
	p, err := b.core.Build()
	if err != nil {
		b.tb.Fatalf("fuzzenv: %v", err)
	}
	return &Project{tb: b.tb, p: p}
}
