package fuzzenv

import (
	"log/slog"

	"github.com/fuzzbed/fuzzenv/internal/core"
)

// SetLogger replaces the package-level logger used by fuzzenv, allowing test
// suites to integrate fuzzenv logging with their own setup (typically from
// TestMain, before any builder is created). The provided logger should
// already carry any desired attributes; fuzzenv adds per-project attributes
// on top.
//
// If l is nil, the logger resets to the default: slog.Default() with a
// component attribute, re-derived on the next use and then cached.
//
// SetLogger is safe to call concurrently with other fuzzenv operations.
func SetLogger(l *slog.Logger) {
	core.SetLogger(l)
}
