// Package fuzzenv builds isolated, disposable cargo projects for integration
// tests of a cargo-fuzz style command-line tool.
//
// Each logical test gets its own project root under a shared scratch area
// derived from the test binary's location, so concurrently running tests
// never collide. A builder layers explicit file writes over synthesized
// defaults (a minimal manifest and an entry module with two fuzzing
// fixtures), optionally stages a fuzz sub-project with any number of fuzz
// targets, and produces an immutable handle exposing the project's canonical
// paths and a prepared (never executed) invocation of the external
// fuzz subcommand.
//
// # Basic Usage
//
//	func TestFuzzRun(t *testing.T) {
//	    p := fuzzenv.New(t, "foo").
//	        WithFuzz().
//	        FuzzTarget("t1", `fuzz_target!(|data: &[u8]| { foo::pass_fuzzing(data); });`).
//	        Build()
//
//	    cmd := p.FuzzCommand("run", "t1")
//	    // Run cmd and assert on its result.
//	}
//
// Any builder failure aborts the calling test via tb.Fatalf; there is no
// recoverable-error surface. Partial writes left behind by an abort are
// harmless: the next run under the same test identity wipes the root before
// reuse.
//
// # Shared caches
//
// The prepared command overrides CARGO_HOME and CARGO_TARGET_DIR to point at
// two directories shared by every generated project in the test run. This
// deliberately trades cache isolation for speed: the fuzzing-support
// dependency is downloaded and compiled once instead of once per project.
// The external tool tolerates concurrent reuse of both locations.
package fuzzenv
