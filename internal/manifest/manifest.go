package manifest

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultVersion is the version stamped into synthesized parent manifests.
	DefaultVersion = "1.0.0"

	// FuzzVersion is the placeholder version of the fuzz sub-project; the
	// sub-project is never published, so the value only has to be valid.
	FuzzVersion = "0.0.0"

	// FuzzSuffix is appended to the parent project name to form the fuzz
	// sub-project's package name.
	FuzzSuffix = "-fuzz"

	// fuzzEdition is the language edition declared by the fuzz sub-project.
	fuzzEdition = "2018"

	// libfuzzerSysGit is the source location of the external fuzzing-support
	// library every fuzz sub-project depends on.
	libfuzzerSysGit = "https://github.com/rust-fuzz/libfuzzer-sys.git"
)

// pkg is the [package] section common to parent and fuzz manifests.
// Marshaling omits the fields a minimal parent manifest does not carry.
type pkg struct {
	Name     string          `toml:"name"`
	Version  string          `toml:"version"`
	Authors  []string        `toml:"authors,omitempty"`
	Publish  *bool           `toml:"publish,omitempty"`
	Edition  string          `toml:"edition,omitempty"`
	Metadata map[string]bool `toml:"metadata,omitempty"`
}

// workspace is the [workspace] section that isolates the fuzz sub-project
// from the parent's dependency graph.
type workspace struct {
	Members []string `toml:"members"`
}

// dependency is one [dependencies.<name>] table. Exactly one locator field
// is set per dependency.
type dependency struct {
	Path string `toml:"path,omitempty"`
	Git  string `toml:"git,omitempty"`
}

// parentDoc is a minimal parent manifest: package name and version only.
type parentDoc struct {
	Package pkg `toml:"package"`
}

// fuzzDoc is the full manifest of the fuzz sub-project.
type fuzzDoc struct {
	Package      pkg                   `toml:"package"`
	Workspace    workspace             `toml:"workspace"`
	Dependencies map[string]dependency `toml:"dependencies"`
}

// BinTarget is one [[bin]] declaration: a fuzz-target program name and its
// source path relative to the fuzz manifest.
type BinTarget struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// binDoc exists only to marshal a single [[bin]] block.
type binDoc struct {
	Bin []BinTarget `toml:"bin"`
}

// Default renders the minimal parent manifest synthesized when a test stages
// no manifest of its own: package name plus the fixed default version.
func Default(name string) ([]byte, error) {
	out, err := toml.Marshal(parentDoc{Package: pkg{Name: name, Version: DefaultVersion}})
	if err != nil {
		return nil, fmt.Errorf("render default manifest: %w", err)
	}
	return out, nil
}

// Fuzz renders the manifest of the auxiliary fuzz sub-project for a parent
// project named parent. The sub-project declares itself a single-member
// workspace so it builds independently of the parent's dependency graph,
// depends on the parent by relative path, and pulls the fuzzing-support
// library from its upstream repository. [[bin]] blocks for individual fuzz
// targets are appended later via BinBlock, never rendered here.
func Fuzz(parent string) ([]byte, error) {
	publish := false
	doc := fuzzDoc{
		Package: pkg{
			Name:     parent + FuzzSuffix,
			Version:  FuzzVersion,
			Authors:  []string{"Automatically generated"},
			Publish:  &publish,
			Edition:  fuzzEdition,
			Metadata: map[string]bool{"cargo-fuzz": true},
		},
		Workspace: workspace{Members: []string{"."}},
		Dependencies: map[string]dependency{
			parent:         {Path: ".."},
			"libfuzzer-sys": {Git: libfuzzerSysGit},
		},
	}
	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("render fuzz manifest: %w", err)
	}
	return out, nil
}

// BinBlock renders one [[bin]] declaration for appending to an existing fuzz
// manifest. A leading newline separates the block from whatever precedes it.
func BinBlock(target BinTarget) ([]byte, error) {
	out, err := toml.Marshal(binDoc{Bin: []BinTarget{target}})
	if err != nil {
		return nil, fmt.Errorf("render bin block for %s: %w", target.Name, err)
	}
	return append([]byte("\n"), out...), nil
}
