//go:build !unix

package container

// FileLock is a no-op on platforms without flock.
type FileLock struct{}

// Lock always succeeds on this platform. Concurrent writers still cannot
// corrupt the vault because every write is an atomic replace.
func Lock(path string) (*FileLock, error) {
	return &FileLock{}, nil
}

// Unlock is a no-op.
func (l *FileLock) Unlock() error {
	return nil
}

// syncDir is a no-op; directories cannot be opened for sync on this platform.
func syncDir(dir string) error {
	return nil
}
