package fuzzenv

import (
	"context"
	"testing"

	"github.com/fuzzbed/fuzzenv/internal/core"
	"github.com/fuzzbed/fuzzenv/internal/scratch"
)

// New allocates this test's unique root directory under the shared scratch
// area, wipes and recreates it, and returns a builder for a project named
// name rooted there.
//
// The root identity is memoized per tb: calling New again from the same test
// reuses the same directory (wiping it again), while any other test in the
// process gets a distinct one. Identities come from a process-scoped counter
// that is never reset, so they cannot repeat within one test binary run.
//
// Any failure aborts the calling test via tb.Fatalf.
func New(tb testing.TB, name string, opts ...Option) *Builder {
	tb.Helper()

	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	area := cfg.scratchArea
	if area == "" {
		a, err := scratch.Area()
		if err != nil {
			tb.Fatalf("fuzzenv: locate scratch area: %v", err)
		}
		area = a
	}

	cb, err := core.NewBuilder(context.Background(), core.Config{
		Name:        name,
		Root:        scratch.Root(tb, area),
		ScratchArea: area,
		CargoBinary: cfg.cargoBinary,
	})
	if err != nil {
		tb.Fatalf("fuzzenv: prepare project %q: %v", name, err)
	}

	return &Builder{tb: tb, core: cb}
}

// PurgeScratch removes every generated project root from the scratch area,
// leaving the shared caches in place. Intended for TestMain, before any
// builder is created, to discard a previous run's leftovers wholesale.
// Individual roots are wiped on reuse regardless, so calling this is
// optional housekeeping.
//
// It accepts the same options as New; only WithScratchArea is relevant.
func PurgeScratch(opts ...Option) error {
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	area := cfg.scratchArea
	if area == "" {
		a, err := scratch.Area()
		if err != nil {
			return err
		}
		area = a
	}
	return scratch.Purge(area, core.Logger())
}
