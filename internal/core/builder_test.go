package core

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

// newTestBuilder returns a builder rooted in a fresh temp directory with its
// own scratch area.
func newTestBuilder(t *testing.T, name string) *Builder {
	t.Helper()
	b, err := NewBuilder(context.Background(), Config{
		Name:        name,
		Root:        filepath.Join(t.TempDir(), "root"),
		ScratchArea: t.TempDir(),
		CargoBinary: "cargo",
	})
	if err != nil {
		t.Fatalf("NewBuilder() error: %v", err)
	}
	return b
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return content
}

func TestNewBuilderValidatesConfig(t *testing.T) {
	t.Parallel()

	tests := map[string]Config{
		"empty name":    {Root: "/tmp/x", ScratchArea: "/tmp/y", CargoBinary: "cargo"},
		"empty root":    {Name: "foo", ScratchArea: "/tmp/y", CargoBinary: "cargo"},
		"relative root": {Name: "foo", Root: "rel/path", ScratchArea: "/tmp/y", CargoBinary: "cargo"},
		"empty scratch": {Name: "foo", Root: "/tmp/x", CargoBinary: "cargo"},
		"empty binary":  {Name: "foo", Root: "/tmp/x", ScratchArea: "/tmp/y"},
	}

	for name, cfg := range tests {
		cfg := cfg
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewBuilder(context.Background(), cfg); err == nil {
				t.Error("NewBuilder() accepted invalid config")
			}
		})
	}
}

func TestNewBuilderWipesPriorRoot(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "root")
	stale := filepath.Join(root, "stale.txt")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("seed root: %v", err)
	}
	if err := os.WriteFile(stale, []byte("prior run"), 0o644); err != nil {
		t.Fatalf("seed stale file: %v", err)
	}

	_, err := NewBuilder(context.Background(), Config{
		Name:        "foo",
		Root:        root,
		ScratchArea: t.TempDir(),
		CargoBinary: "cargo",
	})
	if err != nil {
		t.Fatalf("NewBuilder() error: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("stale file survived builder construction: err = %v", err)
	}
}

func TestFileStagesVerbatim(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t, "foo")

	content := []byte("fn main() { /* anything goes, content is never validated */ }")
	if err := b.File(filepath.Join("examples", "demo.rs"), content); err != nil {
		t.Fatalf("File() error: %v", err)
	}

	got := readFile(t, filepath.Join(b.Root(), "examples", "demo.rs"))
	if !bytes.Equal(got, content) {
		t.Errorf("staged content = %q, want %q", got, content)
	}
}

func TestManifestStateObserve(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		rel         string
		manifest    bool
		entryModule bool
	}{
		"manifest":                 {rel: "Cargo.toml", manifest: true},
		"lib module":               {rel: "src/lib.rs", entryModule: true},
		"main module":              {rel: "src/main.rs", entryModule: true},
		"native separators":        {rel: filepath.Join("src", "lib.rs"), entryModule: true},
		"unclean path":             {rel: "./src/../src/lib.rs", entryModule: true},
		"fuzz manifest not parent": {rel: "fuzz/Cargo.toml"},
		"unrelated file":           {rel: "src/other.rs"},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var s ManifestState
			s.Observe(tc.rel)
			if s.SawManifest != tc.manifest {
				t.Errorf("SawManifest = %v, want %v", s.SawManifest, tc.manifest)
			}
			if s.SawEntryModule != tc.entryModule {
				t.Errorf("SawEntryModule = %v, want %v", s.SawEntryModule, tc.entryModule)
			}
		})
	}
}

func TestBuildSynthesizesDefaults(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t, "foo")

	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	t.Run("default manifest", func(t *testing.T) {
		var doc struct {
			Package struct {
				Name    string `toml:"name"`
				Version string `toml:"version"`
			} `toml:"package"`
		}
		content := readFile(t, filepath.Join(p.Root(), "Cargo.toml"))
		if err := toml.Unmarshal(content, &doc); err != nil {
			t.Fatalf("default manifest does not parse: %v", err)
		}
		if doc.Package.Name != "foo" {
			t.Errorf("manifest name = %q, want foo", doc.Package.Name)
		}
		if doc.Package.Version != "1.0.0" {
			t.Errorf("manifest version = %q, want 1.0.0", doc.Package.Version)
		}
	})

	t.Run("default entry module", func(t *testing.T) {
		content := string(readFile(t, filepath.Join(p.Root(), "src", "lib.rs")))
		if !strings.Contains(content, "pub fn pass_fuzzing") {
			t.Error("default module lacks the always-passing fixture")
		}
		if !strings.Contains(content, "pub fn fail_fuzzing") {
			t.Error("default module lacks the crashing fixture")
		}
		if !strings.Contains(content, "data.len() == 7") {
			t.Error("crashing fixture does not key on 7-byte inputs")
		}
	})

	t.Run("nothing else in root", func(t *testing.T) {
		entries, err := os.ReadDir(p.Root())
		if err != nil {
			t.Fatalf("read root: %v", err)
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		if len(names) != 2 {
			t.Errorf("root contains %v, want only Cargo.toml and src", names)
		}
	})
}

func TestExplicitManifestSuppressesDefault(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t, "foo")

	staged := []byte("[package]\nname = \"custom\"\nversion = \"9.9.9\"\n")
	if err := b.File("Cargo.toml", staged); err != nil {
		t.Fatalf("File() error: %v", err)
	}

	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	got := readFile(t, filepath.Join(p.Root(), "Cargo.toml"))
	if !bytes.Equal(got, staged) {
		t.Errorf("manifest was rewritten:\ngot  %q\nwant %q", got, staged)
	}
}

func TestExplicitEntryModuleSuppressesDefault(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t, "foo")

	staged := []byte("fn main() {}\n")
	if err := b.File("src/main.rs", staged); err != nil {
		t.Fatalf("File() error: %v", err)
	}

	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(p.Root(), "src", "lib.rs")); !os.IsNotExist(err) {
		t.Errorf("default lib module synthesized despite explicit main: err = %v", err)
	}
	got := readFile(t, filepath.Join(p.Root(), "src", "main.rs"))
	if !bytes.Equal(got, staged) {
		t.Errorf("entry module was rewritten: got %q", got)
	}
}

func TestEnableFuzz(t *testing.T) {
	t.Parallel()

	t.Run("stages the fuzz manifest", func(t *testing.T) {
		t.Parallel()
		b := newTestBuilder(t, "foo")

		if err := b.EnableFuzz(); err != nil {
			t.Fatalf("EnableFuzz() error: %v", err)
		}

		content := string(readFile(t, filepath.Join(b.Root(), "fuzz", "Cargo.toml")))
		if !strings.Contains(content, "foo-fuzz") {
			t.Errorf("fuzz manifest lacks derived name:\n%s", content)
		}
	})

	t.Run("second call is a violation", func(t *testing.T) {
		t.Parallel()
		b := newTestBuilder(t, "foo")

		if err := b.EnableFuzz(); err != nil {
			t.Fatalf("EnableFuzz() error: %v", err)
		}
		if err := b.EnableFuzz(); !errors.Is(err, ErrFuzzAlreadyEnabled) {
			t.Errorf("second EnableFuzz() error = %v, want ErrFuzzAlreadyEnabled", err)
		}
	})

	t.Run("does not count as the parent manifest", func(t *testing.T) {
		t.Parallel()
		b := newTestBuilder(t, "foo")

		if err := b.EnableFuzz(); err != nil {
			t.Fatalf("EnableFuzz() error: %v", err)
		}
		if b.State().SawManifest {
			t.Error("staging fuzz/Cargo.toml must not suppress the parent default manifest")
		}
	})
}

func TestAddFuzzTarget(t *testing.T) {
	t.Parallel()

	t.Run("before enable is a violation", func(t *testing.T) {
		t.Parallel()
		b := newTestBuilder(t, "foo")

		err := b.AddFuzzTarget("t1", []byte("fuzz body"))
		if !errors.Is(err, ErrFuzzNotEnabled) {
			t.Fatalf("AddFuzzTarget() error = %v, want ErrFuzzNotEnabled", err)
		}
		if _, statErr := os.Stat(filepath.Join(b.Root(), "fuzz")); !os.IsNotExist(statErr) {
			t.Error("violation must not silently create the fuzz sub-project")
		}
	})

	t.Run("writes source and appends declaration", func(t *testing.T) {
		t.Parallel()
		b := newTestBuilder(t, "foo")

		if err := b.EnableFuzz(); err != nil {
			t.Fatalf("EnableFuzz() error: %v", err)
		}
		manifestBefore := readFile(t, filepath.Join(b.Root(), "fuzz", "Cargo.toml"))

		body := []byte("fuzz_target!(|data: &[u8]| { foo::pass_fuzzing(data); });")
		if err := b.AddFuzzTarget("t1", body); err != nil {
			t.Fatalf("AddFuzzTarget() error: %v", err)
		}

		src := readFile(t, filepath.Join(b.Root(), "fuzz", "fuzz_targets", "t1.rs"))
		if !bytes.Equal(src, body) {
			t.Errorf("target source = %q, want %q", src, body)
		}

		manifestAfter := readFile(t, filepath.Join(b.Root(), "fuzz", "Cargo.toml"))
		if !bytes.HasPrefix(manifestAfter, manifestBefore) {
			t.Error("prior fuzz manifest content was rewritten, not appended to")
		}

		var doc struct {
			Bin []struct {
				Name string `toml:"name"`
				Path string `toml:"path"`
			} `toml:"bin"`
		}
		if err := toml.Unmarshal(manifestAfter, &doc); err != nil {
			t.Fatalf("fuzz manifest does not parse after append: %v", err)
		}
		if len(doc.Bin) != 1 {
			t.Fatalf("bin declarations = %d, want 1", len(doc.Bin))
		}
		if doc.Bin[0].Name != "t1" || doc.Bin[0].Path != "fuzz_targets/t1.rs" {
			t.Errorf("bin declaration = %+v", doc.Bin[0])
		}
	})

	t.Run("declarations accumulate in call order", func(t *testing.T) {
		t.Parallel()
		b := newTestBuilder(t, "foo")

		if err := b.EnableFuzz(); err != nil {
			t.Fatalf("EnableFuzz() error: %v", err)
		}
		for _, name := range []string{"first", "second", "third"} {
			if err := b.AddFuzzTarget(name, []byte("// "+name)); err != nil {
				t.Fatalf("AddFuzzTarget(%s) error: %v", name, err)
			}
		}

		var doc struct {
			Bin []struct {
				Name string `toml:"name"`
			} `toml:"bin"`
		}
		content := readFile(t, filepath.Join(b.Root(), "fuzz", "Cargo.toml"))
		if err := toml.Unmarshal(content, &doc); err != nil {
			t.Fatalf("fuzz manifest does not parse: %v", err)
		}
		want := []string{"first", "second", "third"}
		if len(doc.Bin) != len(want) {
			t.Fatalf("bin declarations = %d, want %d", len(doc.Bin), len(want))
		}
		for i, name := range want {
			if doc.Bin[i].Name != name {
				t.Errorf("bin[%d] = %q, want %q", i, doc.Bin[i].Name, name)
			}
		}
	})
}

func TestBuildReturnsIndependentProject(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t, "foo")

	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// Staging more files afterward must not change the returned handle.
	if err := b.File("extra.txt", []byte("later")); err != nil {
		t.Fatalf("File() after Build: %v", err)
	}
	if p.Name() != "foo" || p.Root() != b.Root() {
		t.Errorf("project handle changed: name=%q root=%q", p.Name(), p.Root())
	}
}
