package core

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/fuzzbed/fuzzenv/internal/fileutil"
	"github.com/fuzzbed/fuzzenv/internal/manifest"
	"github.com/fuzzbed/fuzzenv/internal/scratch"
	"github.com/fuzzbed/fuzzenv/internal/sentinel"
)

// Canonical project-relative paths the builder watches for. Staging a file
// at one of these marks the corresponding default as explicitly provided.
const (
	manifestPath    = "Cargo.toml"
	libModulePath   = "src/lib.rs"
	mainModulePath  = "src/main.rs"
	fuzzDirName     = "fuzz"
	fuzzTargetsName = "fuzz_targets"
	targetSourceExt = ".rs"
)

// ErrFuzzNotEnabled is returned by AddFuzzTarget when WithFuzz has not been
// called first. This is a programming error in the calling test, not a
// runtime condition.
const ErrFuzzNotEnabled = sentinel.Error("fuzz sub-project not enabled")

// ErrFuzzAlreadyEnabled is returned by EnableFuzz on the second call; the
// fuzz sub-project is staged exactly once.
const ErrFuzzAlreadyEnabled = sentinel.Error("fuzz sub-project already enabled")

// ManifestState records which defaults the caller has explicitly provided.
// It is a standalone record, updated alongside the generic file write rather
// than inside it, so "was a manifest explicitly staged" is testable
// independent of the write path.
type ManifestState struct {
	// SawManifest is set when a file is staged at the canonical manifest path.
	SawManifest bool
	// SawEntryModule is set when a file is staged at either canonical
	// entry-module path.
	SawEntryModule bool
}

// Observe updates the state for a file staged at the given project-relative
// path. Content is never inspected; only the path decides.
func (s *ManifestState) Observe(rel string) {
	switch path.Clean(filepath.ToSlash(rel)) {
	case manifestPath:
		s.SawManifest = true
	case libModulePath, mainModulePath:
		s.SawEntryModule = true
	}
}

// Builder stages files into a project root, enforcing the fuzz ordering
// precondition and synthesizing defaults at build time. Not safe for
// concurrent use; each logical test drives its own builder.
type Builder struct {
	project     Project
	state       ManifestState
	fuzzEnabled bool

	log *slog.Logger
}

// NewBuilder wipes (best-effort) and recreates cfg.Root, prepares the shared
// scratch caches, and returns a builder for a project named cfg.Name rooted
// there. Leftovers from a prior run under the same root identity are
// discarded by the wipe.
func NewBuilder(ctx context.Context, cfg Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log := Logger().With("project", cfg.Name, "root", cfg.Root)

	if err := fileutil.Recreate(cfg.Root); err != nil {
		return nil, fmt.Errorf("prepare project root: %w", err)
	}
	if err := scratch.EnsureCaches(ctx, cfg.ScratchArea, log); err != nil {
		return nil, fmt.Errorf("prepare shared caches: %w", err)
	}

	log.Info("project root prepared")

	return &Builder{
		project: Project{
			name:        cfg.Name,
			root:        cfg.Root,
			scratchArea: cfg.ScratchArea,
			cargoBinary: cfg.CargoBinary,
		},
		log: log,
	}, nil
}

// Root returns the project root directory.
func (b *Builder) Root() string {
	return b.project.root
}

// State returns a copy of the builder's manifest state record.
func (b *Builder) State() ManifestState {
	return b.state
}

// File writes content verbatim to the project-relative path rel, creating
// missing parent directories and overwriting any existing file. The write is
// immediate and synchronous; there is no staging or rollback. Content is not
// validated.
func (b *Builder) File(rel string, content []byte) error {
	// The state record is updated next to the write, not inside it.
	b.state.Observe(rel)

	if err := fileutil.WriteFile(filepath.Join(b.project.root, rel), content); err != nil {
		return fmt.Errorf("stage %s: %w", rel, err)
	}
	return nil
}

// EnableFuzz stages the fuzz sub-project's manifest at fuzz/Cargo.toml. It
// must be called exactly once, before any AddFuzzTarget call. The staged
// manifest isolates the sub-project from the parent's dependency graph and
// declares dependencies on the parent (by relative path) and on the external
// fuzzing-support library.
func (b *Builder) EnableFuzz() error {
	if b.fuzzEnabled {
		return ErrFuzzAlreadyEnabled
	}

	doc, err := manifest.Fuzz(b.project.name)
	if err != nil {
		return err
	}
	if err := b.File(filepath.Join(fuzzDirName, manifestPath), doc); err != nil {
		return err
	}

	b.fuzzEnabled = true
	b.log.Debug("fuzz sub-project enabled")
	return nil
}

// AddFuzzTarget appends a [[bin]] declaration for name to the existing fuzz
// manifest and writes body verbatim to the target's source file under the
// fuzz sub-project's targets directory. Declarations accumulate in call
// order; prior manifest content is never rewritten. Requires EnableFuzz to
// have been called first.
func (b *Builder) AddFuzzTarget(name string, body []byte) error {
	if !b.fuzzEnabled {
		return fmt.Errorf("add fuzz target %q: %w", name, ErrFuzzNotEnabled)
	}

	// The manifest references the source relative to its own location.
	srcRel := path.Join(fuzzTargetsName, name+targetSourceExt)
	block, err := manifest.BinBlock(manifest.BinTarget{Name: name, Path: srcRel})
	if err != nil {
		return err
	}
	if err := fileutil.AppendFile(b.project.FuzzManifest(), block); err != nil {
		return fmt.Errorf("append bin declaration for %q: %w", name, err)
	}

	return b.File(filepath.Join(fuzzDirName, fuzzTargetsName, name+targetSourceExt), body)
}

// Build synthesizes the default manifest and/or default entry module for
// anything not explicitly staged, then returns the finished Project. The
// returned value is independent of the builder; further builder calls do not
// affect it.
func (b *Builder) Build() (Project, error) {
	if !b.state.SawManifest {
		doc, err := manifest.Default(b.project.name)
		if err != nil {
			return Project{}, err
		}
		if err := b.File(manifestPath, doc); err != nil {
			return Project{}, fmt.Errorf("synthesize default manifest: %w", err)
		}
	}
	if !b.state.SawEntryModule {
		if err := b.File(libModulePath, []byte(defaultEntryModule)); err != nil {
			return Project{}, fmt.Errorf("synthesize default entry module: %w", err)
		}
	}

	b.log.Debug("project built")
	return b.project, nil
}
