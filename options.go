package fuzzenv

import "fmt"

// requireNonEmpty panics if s is empty with a descriptive message.
func requireNonEmpty(name, s string) {
	if s == "" {
		panic(fmt.Sprintf("fuzzenv: %s must not be empty", name))
	}
}

// builderConfig holds the configurable parts of New.
type builderConfig struct {
	cargoBinary string
	scratchArea string // empty means derive from the test binary's location
}

// defaultBuilderConfig returns a builderConfig populated with all default
// values. Both New and test helpers use this to avoid duplicating the
// default field assignments.
func defaultBuilderConfig() builderConfig {
	return builderConfig{cargoBinary: DefaultCargoBinary}
}

// Option configures a project builder during construction via New.
//
// The With* functions panic on invalid input (empty paths). These panics are
// intentional: option values are typically compile-time constants, so an
// invalid value indicates a programmer error rather than a runtime
// condition. The pattern mirrors [regexp.MustCompile]: fail fast during
// setup instead of returning errors that would be universally fatal anyway.
type Option func(*builderConfig)

// WithCargoBinary sets the external build tool binary whose fuzz subcommand
// prepared commands invoke. Accepts a bare name resolved via PATH or an
// absolute path.
//
// Default: "cargo".
//
// Panics if binPath is empty.
func WithCargoBinary(binPath string) Option {
	requireNonEmpty("cargo binary path", binPath)
	return func(c *builderConfig) {
		c.cargoBinary = binPath
	}
}

// WithScratchArea overrides the shared scratch area that holds generated
// project roots and the caches reused across projects. By default the area
// is derived from the test binary's own location, which is right for almost
// every caller; overriding is mainly useful for tests of fuzzenv itself.
//
// Panics if dir is empty.
func WithScratchArea(dir string) Option {
	requireNonEmpty("scratch area", dir)
	return func(c *builderConfig) {
		c.scratchArea = dir
	}
}
