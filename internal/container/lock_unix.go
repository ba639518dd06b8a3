//go:build unix

package container

import (
	"errors"
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/candado/internal/errors"

	"golang.org/x/sys/unix"
)

// FileLock is an advisory lock held on <vault>.lock for the open→persist window.
type FileLock struct {
	f *os.File
}

// Lock takes an exclusive, non-blocking advisory lock for the vault at path.
// It fails with ErrVaultLocked when another process holds it.
func Lock(path string) (*FileLock, error) {
	lockPath := path + ".lock"
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, FileMode)
	if err != nil {
		return nil, fmt.Errorf("%w: opening lock %s: %v", kerrors.ErrIO, lockPath, err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrVaultLocked, path)
		}
		return nil, fmt.Errorf("%w: locking %s: %v", kerrors.ErrIO, lockPath, err)
	}

	return &FileLock{f: f}, nil
}

// Unlock releases the lock. It is safe to call on a nil or released lock.
func (l *FileLock) Unlock() error {
	if l == nil || l.f == nil {
		return nil
	}
	f := l.f
	l.f = nil

	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
	return f.Close()
}

// syncDir flushes directory metadata so a completed rename survives power loss.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %v", kerrors.ErrIO, dir, err)
	}
	defer d.Close()

	if err := d.Sync(); err != nil {
		return fmt.Errorf("%w: syncing %s: %v", kerrors.ErrIO, dir, err)
	}
	return nil
}
