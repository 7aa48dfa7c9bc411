// Package scratch manages the shared scratch area for generated test projects.
//
// The scratch area is derived from the test binary's own location and holds
// one t<id> root directory per logical test, plus two cache directories
// (cargo-home, target) that are deliberately shared across all generated
// projects in a test run so the fuzzing-support dependency is downloaded and
// compiled once instead of per project.
//
// Root identities come from a process-scoped atomic counter and are memoized
// per logical test: the caller passes its testing.TB explicitly, and repeated
// lookups from the same TB return the same directory. Identities never repeat
// within one process run. Isolation across separate concurrent processes
// relies on each process starting with a fresh counter plus wipe-on-create;
// there is no cross-process coordination of identities.
package scratch
