package scratch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
)

// lockRetryInterval is how often a blocked caller re-attempts the cache
// lock. Cache creation is a one-time cost per scratch area, so waiters
// only ever poll for the duration of a couple of MkdirAll calls.
const lockRetryInterval = 50 * time.Millisecond

// lockCaches takes the per-area cache lock, retrying until the lock is
// held or ctx is done.
func lockCaches(ctx context.Context, lockPath string) (*flock.Flock, error) {
	fl := flock.New(lockPath)

	locked, err := fl.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("locking %s: %w", lockPath, err)
	}
	if !locked {
		// TryLockContext reports failure through err; a (false, nil)
		// result is unexpected but must not be treated as held.
		if ctx.Err() != nil {
			return nil, fmt.Errorf("locking %s: %w", lockPath, ctx.Err())
		}
		return nil, fmt.Errorf("locking %s: lock not acquired", lockPath)
	}

	return fl, nil
}

// unlockCaches releases the cache lock. The lock file stays on disk so a
// concurrent acquisition in another process is never invalidated by an
// unlink. Close unlocks and closes the descriptor in one step.
func unlockCaches(logger *slog.Logger, fl *flock.Flock) {
	if fl == nil {
		return
	}
	if err := fl.Close(); err != nil {
		logger.Debug("failed to release cache lock", "path", fl.Path(), "err", err)
	}
}
