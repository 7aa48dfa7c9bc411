package scratch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fuzzbed/fuzzenv/internal/fileutil"
)

// Names of the cache directories shared across all generated projects in a
// test run. Pointing every project's CARGO_HOME and CARGO_TARGET_DIR at
// these trades per-project isolation of the two caches for build reuse: the
// fuzzing-support dependency is fetched and compiled once instead of once
// per generated project. The external build tool is designed to tolerate
// concurrent reuse of both.
const (
	CargoHomeDirName = "cargo-home"
	TargetDirName    = "target"

	cachesLockName = ".caches.lock"
)

// CargoHome returns the shared package-cache/home directory under area.
func CargoHome(area string) string {
	return filepath.Join(area, CargoHomeDirName)
}

// TargetDir returns the shared build-artifact directory under area.
func TargetDir(area string) string {
	return filepath.Join(area, TargetDirName)
}

// EnsureCaches creates the two shared cache directories under area if they
// do not exist yet. First-time creation is serialized with a file lock so
// concurrently starting test binaries do not race on it; once both
// directories exist the fast path returns without touching the lock.
func EnsureCaches(ctx context.Context, area string, logger *slog.Logger) error {
	if cachesExist(area) {
		return nil
	}

	lockPath := filepath.Join(area, cachesLockName)
	logger.Debug("acquiring shared cache lock", "lock_path", lockPath)
	lock, err := lockCaches(ctx, lockPath)
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer unlockCaches(logger, lock)

	// Re-check under the lock: another process may have created the caches
	// while we waited.
	if cachesExist(area) {
		return nil
	}

	if err := fileutil.EnsureDir(CargoHome(area)); err != nil {
		return fmt.Errorf("create shared cargo home: %w", err)
	}
	if err := fileutil.EnsureDir(TargetDir(area)); err != nil {
		return fmt.Errorf("create shared target dir: %w", err)
	}
	logger.Info("shared caches prepared", "cargo_home", CargoHome(area), "target_dir", TargetDir(area))
	return nil
}

// cachesExist reports whether both shared cache directories are present.
func cachesExist(area string) bool {
	for _, dir := range []string{CargoHome(area), TargetDir(area)} {
		if _, err := os.Stat(dir); err != nil {
			// Missing or unreadable either way: take the slow path and let
			// EnsureDir surface any real failure.
			return false
		}
	}
	return true
}
