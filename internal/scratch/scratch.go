package scratch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fuzzbed/fuzzenv/internal/fileutil"
)

// AreaDirName is the directory name of the scratch area, created next to
// the test binary. See Area for the full derivation.
const AreaDirName = "tests"

// Allocator hands out process-unique root identities, memoized per logical
// test. The zero value is ready to use. Identities are monotonically
// increasing for the lifetime of the process and are never reset.
type Allocator struct {
	// next is the process-scoped id counter. The first allocation gets 0.
	next atomic.Uint64

	// ids memoizes the assigned identity per testing.TB, so repeated
	// lookups from the same logical test return the same root directory.
	// Entries live for the remainder of the process; a test binary's TB
	// count is small enough that this never matters.
	ids sync.Map // testing.TB -> uint64
}

// defaultAllocator is the process-wide allocator used by Root. It is
// initialized once at process start and never torn down.
var defaultAllocator Allocator

// ID returns the identity assigned to tb, assigning the next counter value
// on first lookup. If two goroutines race on the same tb's first lookup, one
// counter value is burned; that is harmless since identities only need to be
// distinct, not dense.
func (a *Allocator) ID(tb testing.TB) uint64 {
	if v, ok := a.ids.Load(tb); ok {
		return v.(uint64)
	}
	id := a.next.Add(1) - 1
	actual, _ := a.ids.LoadOrStore(tb, id)
	return actual.(uint64)
}

// Area returns the shared scratch directory for generated test artifacts,
// creating it if absent. It is derived from the test binary's own location:
// a "tests" directory next to the binary, so concurrently running tests in
// the same binary share one scratch tree while separate builds get their own.
func Area() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate test binary: %w", err)
	}
	dir := filepath.Join(filepath.Dir(exe), AreaDirName)
	if err := fileutil.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("create scratch area: %w", err)
	}
	return dir, nil
}

// Root returns the root directory assigned to tb under area, in the form
// <area>/t<id>. The directory itself is not created; builders wipe and
// recreate it so a prior run's leftovers under the same identity are
// discarded.
func Root(tb testing.TB, area string) string {
	return filepath.Join(area, fmt.Sprintf("t%d", defaultAllocator.ID(tb)))
}
