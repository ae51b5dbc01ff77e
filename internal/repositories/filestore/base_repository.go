package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/SscSPs/sya_logistica/internal/apperrors"
	"golang.org/x/sync/semaphore"
)

// fileLocks maps a cleaned absolute path to its exclusive lock.
// Every repository opened on the same path in this process shares one lock.
var fileLocks sync.Map

func lockFor(path string) *semaphore.Weighted {
	l, _ := fileLocks.LoadOrStore(path, semaphore.NewWeighted(1))
	return l.(*semaphore.Weighted)
}

// BaseRepository provides the locking and persistence helpers shared by file-backed repositories
type BaseRepository struct {
	Path        string
	LockTimeout time.Duration
	lock        *semaphore.Weighted
}

func newBaseRepository(path string, lockTimeout time.Duration) (BaseRepository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return BaseRepository{}, fmt.Errorf("resolve path %s: %w", path, err)
	}
	abs = filepath.Clean(abs)
	return BaseRepository{
		Path:        abs,
		LockTimeout: lockTimeout,
		lock:        lockFor(abs),
	}, nil
}

// withLock runs fn while holding the file's exclusive lock.
// Waiting is bounded by LockTimeout and by ctx.
func (r *BaseRepository) withLock(ctx context.Context, op string, fn func() error) error {
	lockCtx, cancel := context.WithTimeout(ctx, r.LockTimeout)
	defer cancel()

	if err := r.lock.Acquire(lockCtx, 1); err != nil {
		return r.storageError(op, fmt.Errorf("acquire file lock within %s: %w", r.LockTimeout, err))
	}
	defer r.lock.Release(1)

	return fn()
}

// storageError wraps cause as an apperrors.ErrStorage carrying the operation and path.
func (r *BaseRepository) storageError(op string, cause error) error {
	return fmt.Errorf("%s %s: %w: %w", op, r.Path, apperrors.ErrStorage, cause)
}

// writeAtomic writes the file through a temporary sibling and renames it into place,
// so a failed write never leaves a truncated file behind.
func (r *BaseRepository) writeAtomic(write func(io.Writer) error) error {
	dir := filepath.Dir(r.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := write(tmp); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temporary file: %w", err)
	}
	if err := os.Rename(tmpName, r.Path); err != nil {
		return fmt.Errorf("replace %s: %w", r.Path, err)
	}
	committed = true
	return nil
}
