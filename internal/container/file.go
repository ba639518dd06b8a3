package container

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/candado/internal/errors"
)

// FileMode is the permission of vault and export files.
const FileMode = 0600

// DirMode is the permission of directories created for a vault.
const DirMode = 0700

// Hooks replaced in tests to simulate a crash or an unsupported filesystem.
var (
	renameFile    = os.Rename
	linkFile      = os.Link
	syncDirectory = syncDir
)

// Read loads the vault at path and splits it into header and ciphertext.
func Read(path string) (Header, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Header{}, nil, fmt.Errorf("%w: %s: %w", kerrors.ErrVaultNotFound, path, kerrors.ErrIO)
		}
		return Header{}, nil, fmt.Errorf("%w: reading %s: %v", kerrors.ErrIO, path, err)
	}

	hdr, ct, err := ParseHeader(data)
	if err != nil {
		return Header{}, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return hdr, ct, nil
}

// Write replaces the vault at path with hdr followed by ct. The file is never
// observed half-written: on any failure the previous contents stay in place.
func Write(path string, hdr Header, ct []byte) error {
	raw, err := encode(hdr, ct)
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, raw)
}

// Create writes a new vault and fails with ErrAlreadyExists if path exists.
func Create(path string, hdr Header, ct []byte) error {
	raw, err := encode(hdr, ct)
	if err != nil {
		return err
	}

	if err := ensureAbsent(path); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return fmt.Errorf("%w: creating %s: %v", kerrors.ErrIO, dir, err)
	}

	tmp, err := writeTemp(path, raw)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	// A hard link publishes the file only if nothing appeared at path in the
	// meantime.
	if err := linkFile(tmp, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", kerrors.ErrAlreadyExists, path)
		}
		if err := ensureAbsent(path); err != nil {
			return err
		}
		if err := renameFile(tmp, path); err != nil {
			return fmt.Errorf("%w: publishing %s: %v", kerrors.ErrIO, path, err)
		}
	}

	// The vault is published at this point. A failed directory sync only
	// weakens durability across power loss and does not undo the write.
	_ = syncDirectory(dir)
	return nil
}

// WriteFileAtomic writes data to a temporary file next to path, syncs it and
// renames it over path. The temporary file is removed on failure. Once the
// rename succeeds the write is reported as done, even if syncing the
// directory afterwards fails.
func WriteFileAtomic(path string, data []byte) error {
	tmp, err := writeTemp(path, data)
	if err != nil {
		return err
	}

	if err := renameFile(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: replacing %s: %v", kerrors.ErrIO, path, err)
	}

	_ = syncDirectory(filepath.Dir(path))
	return nil
}

// writeTemp creates a synced temporary copy of data in the directory of path
// and returns its name.
func writeTemp(path string, data []byte) (name string, err error) {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("%w: creating temporary file in %s: %v", kerrors.ErrIO, dir, err)
	}
	name = f.Name()

	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(name)
		}
	}()

	if err = f.Chmod(FileMode); err != nil {
		return "", fmt.Errorf("%w: setting permissions on %s: %v", kerrors.ErrIO, name, err)
	}
	if _, err = f.Write(data); err != nil {
		return "", fmt.Errorf("%w: writing %s: %v", kerrors.ErrIO, name, err)
	}
	if err = f.Sync(); err != nil {
		return "", fmt.Errorf("%w: syncing %s: %v", kerrors.ErrIO, name, err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("%w: closing %s: %v", kerrors.ErrIO, name, err)
	}
	return name, nil
}

func ensureAbsent(path string) error {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", kerrors.ErrAlreadyExists, path)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("%w: checking %s: %v", kerrors.ErrIO, path, err)
	}
}

func encode(hdr Header, ct []byte) ([]byte, error) {
	head, err := hdr.MarshalBinary()
	if err != nil {
		return nil, err
	}
	raw := make([]byte, 0, len(head)+len(ct))
	raw = append(raw, head...)
	return append(raw, ct...), nil
}
