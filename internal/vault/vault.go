package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/candado/internal/codec"
	"github.com/PolarWolf314/candado/internal/container"
	"github.com/PolarWolf314/candado/internal/entries"
	kerrors "github.com/PolarWolf314/candado/internal/errors"
	"github.com/PolarWolf314/candado/internal/secrets"

	"github.com/google/uuid"
)

// InitOptions configures a new vault.
type InitOptions struct {
	// Keyfile, when non-nil, is mixed into key derivation and recorded as
	// required in the header.
	Keyfile []byte

	// Params overrides the Argon2id cost. Nil selects secrets.DefaultKDFParams.
	Params *secrets.KDFParams
}

// OpenOptions configures how an existing vault is unlocked.
type OpenOptions struct {
	Keyfile []byte
}

// Init creates an empty vault at path and returns its id. The password is
// wiped before Init returns.
func Init(path string, password []byte, opts InitOptions) (string, error) {
	defer secrets.Wipe(password)

	params := secrets.DefaultKDFParams()
	if opts.Params != nil {
		params = *opts.Params
	}
	if err := params.Validate(); err != nil {
		return "", err
	}

	if _, err := os.Lstat(path); err == nil {
		return "", fmt.Errorf("%w: %s", kerrors.ErrAlreadyExists, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), container.DirMode); err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", kerrors.ErrIO, filepath.Dir(path), err)
	}

	lock, err := container.Lock(path)
	if err != nil {
		return "", err
	}
	defer lock.Unlock()

	salt, err := secrets.NewSalt()
	if err != nil {
		return "", err
	}
	hdr := container.NewHeader(salt, params, opts.Keyfile != nil)

	raw, err := secrets.DeriveKey(password, salt, opts.Keyfile, params)
	if err != nil {
		return "", err
	}
	key := secrets.NewKey(raw)
	defer key.Destroy()

	id := uuid.NewString()
	plaintext, err := codec.EncodeVault(codec.Vault{ID: id, NextID: 1})
	if err != nil {
		return "", err
	}
	defer secrets.Wipe(plaintext)

	sealed, ct, err := container.Seal(key.Bytes(), hdr, plaintext)
	if err != nil {
		return "", err
	}
	if err := container.Create(path, sealed, ct); err != nil {
		return "", err
	}
	return id, nil
}

// Open unlocks the vault at path and returns a session holding its entries.
// The password is wiped before Open returns. On failure nothing is left
// locked or in memory.
//
// A wrong password, a wrong keyfile and a tampered file all fail with ErrAuth.
func Open(path string, password []byte, opts OpenOptions) (s *Session, err error) {
	defer secrets.Wipe(password)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", kerrors.ErrVaultNotFound, path, kerrors.ErrIO)
		}
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrIO, path, err)
	}

	lock, err := container.Lock(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = lock.Unlock()
		}
	}()

	hdr, ct, err := container.Read(path)
	if err != nil {
		return nil, err
	}

	switch {
	case hdr.RequiresKeyfile() && opts.Keyfile == nil:
		return nil, fmt.Errorf("%w: vault requires a keyfile", kerrors.ErrKDF)
	case !hdr.RequiresKeyfile() && opts.Keyfile != nil:
		return nil, fmt.Errorf("%w: vault was not created with a keyfile", kerrors.ErrKDF)
	}

	raw, err := secrets.DeriveKey(password, hdr.Salt, opts.Keyfile, hdr.Params)
	if err != nil {
		return nil, err
	}
	key := secrets.NewKey(raw)
	defer func() {
		if err != nil {
			key.Destroy()
		}
	}()

	plaintext, err := container.Unseal(key.Bytes(), hdr, ct)
	if err != nil {
		return nil, err
	}
	defer secrets.Wipe(plaintext)

	v, err := codec.DecodeVault(plaintext)
	if err != nil {
		return nil, err
	}

	return &Session{
		path:    path,
		hdr:     hdr,
		key:     key,
		lock:    lock,
		vaultID: v.ID,
		repo:    entries.New(v.NextID, v.Entries),
	}, nil
}
