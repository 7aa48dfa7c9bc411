package scratch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
)

// rootDirPattern matches generated root directory names: t followed by a
// decimal identity, nothing else. Anything not matching (shared caches, lock
// files, foreign artifacts) is left alone.
var rootDirPattern = regexp.MustCompile(`^t\d+$`)

// Purge removes every generated t<id> root directory under area, typically
// called from TestMain before any allocation to discard a previous run's
// leftovers wholesale. Removal continues past individual failures; all
// failures are reported joined.
//
// Purge must not run concurrently with builders in the same scratch area.
// Within one process that holds because builders are created after TestMain;
// across processes the caller is responsible for not purging a live area.
func Purge(area string, logger *slog.Logger) error {
	entries, err := os.ReadDir(area)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read scratch area %s: %w", area, err)
	}

	var errs []error
	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() || !rootDirPattern.MatchString(entry.Name()) {
			continue
		}
		path := filepath.Join(area, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", path, err))
			continue
		}
		removed++
	}

	if removed > 0 {
		logger.Info("purged stale project roots", "area", area, "removed", removed)
	}
	return errors.Join(errs...)
}
