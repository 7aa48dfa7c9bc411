package fileutil

import (
	"fmt"
	"os"

	"github.com/fuzzbed/fuzzenv/internal/sentinel"
)

// ErrEmptyPath is returned when a target path is empty.
const ErrEmptyPath = sentinel.Error("target path must not be empty")

// WriteFile writes content to path verbatim, creating parent directories as
// needed and truncating any existing file. The file is created with mode 0644.
// There is no staging or atomicity: the write happens in place, immediately.
func WriteFile(path string, content []byte) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := EnsureDirForFile(path); err != nil {
		return fmt.Errorf("prepare parent: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// AppendFile appends content to the file at path. The file must already
// exist; a missing file is reported as an error rather than created, so
// callers cannot accidentally start a file through the append path. Prior
// content is never rewritten.
func AppendFile(path string, content []byte) (retErr error) {
	if path == "" {
		return ErrEmptyPath
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("append to %s: %w", path, err)
	}
	return nil
}
