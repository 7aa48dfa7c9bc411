package fuzzenv

import "github.com/fuzzbed/fuzzenv/internal/core"

// Sentinel errors for error inspection with errors.Is. Builder failures
// abort the calling test, so these mostly surface inside the abort message;
// they are exported for callers that assert on failure modes with a
// recording testing.TB.
const (
	// ErrFuzzNotEnabled is reported when FuzzTarget is called before
	// WithFuzz. This is a programming error in the calling test.
	ErrFuzzNotEnabled = core.ErrFuzzNotEnabled

	// ErrFuzzAlreadyEnabled is reported when WithFuzz is called more than
	// once; the fuzz sub-project is staged exactly once.
	ErrFuzzAlreadyEnabled = core.ErrFuzzAlreadyEnabled
)
