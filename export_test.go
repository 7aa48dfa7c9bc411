package fuzzenv

// ConfigSnapshot holds a copy of builderConfig fields for test assertions.
// Exported only via export_test.go so that the _test package can verify
// option closures actually mutate the config without accessing internals.
type ConfigSnapshot struct {
	CargoBinary string
	ScratchArea string
}

// ApplyOptionsForTesting creates a default builderConfig, applies the given
// options, and returns a ConfigSnapshot of the result. This tests the option
// closures directly without building a project.
func ApplyOptionsForTesting(opts ...Option) ConfigSnapshot {
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return ConfigSnapshot{
		CargoBinary: cfg.cargoBinary,
		ScratchArea: cfg.scratchArea,
	}
}
