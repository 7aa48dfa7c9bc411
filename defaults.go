package fuzzenv

// Default configuration values for New. Exported so callers can reference
// them when building custom configurations.
const (
	// DefaultCargoBinary is the binary name used to locate the external
	// build tool in PATH. Its "fuzz" subcommand is what prepared commands
	// invoke.
	DefaultCargoBinary = "cargo"
)
