// Package lock serializes writers of one output directory across
// processes, so a watch loop and a go:generate run never interleave
// partial writes.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the lock file created in the locked directory.
const FileName = ".traitgen.lock"

// ErrLocked is returned by TryAcquire when another process holds the lock.
var ErrLocked = errors.New("output directory is locked by another traitgen process")

// Lock is an exclusive advisory lock on a directory.
type Lock struct {
	file *os.File
}

// TryAcquire takes the lock on dir without blocking, creating dir and the
// lock file as needed. The pid of the holder is written to the file.
func TryAcquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := lockFile(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := f.Truncate(0); err == nil {
		_, _ = fmt.Fprintf(f, "%d\n", os.Getpid())
	}
	return &Lock{file: f}, nil
}

// Release drops the lock. The lock file is left in place.
func (l *Lock) Release() error {
	if err := unlockFile(l.file); err != nil {
		_ = l.file.Close()
		return err
	}
	return l.file.Close()
}
