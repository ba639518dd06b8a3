package secrets

import (
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/candado/internal/errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20poly1305"
)

// KeySize is the length of the derived vault key.
const KeySize = chacha20poly1305.KeySize

// SaltSize is the length of the salt generated for new vaults.
const SaltSize = 16

// Bounds accepted for stored Argon2id parameters. They keep a hostile header
// from requesting an unbounded amount of memory or time.
const (
	MaxKDFMemory  = 4 * 1024 * 1024 // KiB, 4 GiB
	MaxKDFTime    = 64
	MaxKDFThreads = 64
)

// KDFParams holds the Argon2id cost parameters.
type KDFParams struct {
	Time    uint32 // passes
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultKDFParams returns the cost parameters written into every new format
// version 1 vault.
func DefaultKDFParams() KDFParams {
	return KDFParams{Time: 3, Memory: 64 * 1024, Threads: 4}
}

// Validate checks that p can be passed to Argon2id safely.
func (p KDFParams) Validate() error {
	switch {
	case p.Time == 0 || p.Time > MaxKDFTime:
		return fmt.Errorf("%w: argon2 time %d out of range", kerrors.ErrKDF, p.Time)
	case p.Threads == 0 || p.Threads > MaxKDFThreads:
		return fmt.Errorf("%w: argon2 threads %d out of range", kerrors.ErrKDF, p.Threads)
	case p.Memory < 8*uint32(p.Threads) || p.Memory > MaxKDFMemory:
		return fmt.Errorf("%w: argon2 memory %d KiB out of range", kerrors.ErrKDF, p.Memory)
	}
	return nil
}

// DeriveKey derives the vault key from the master password, the vault salt and
// an optional keyfile.
//
// When keyfile is non-nil the password is peppered with BLAKE2b-256(keyfile)
// before derivation. The password slice is wiped before DeriveKey returns,
// whatever the outcome; callers must not reuse it.
func DeriveKey(password, salt, keyfile []byte, p KDFParams) ([]byte, error) {
	defer Wipe(password)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(salt) < SaltSize {
		return nil, fmt.Errorf("%w: salt must be at least %d bytes", kerrors.ErrKDF, SaltSize)
	}
	if keyfile != nil && len(keyfile) == 0 {
		return nil, fmt.Errorf("%w: keyfile is empty", kerrors.ErrKDF)
	}

	input := make([]byte, 0, len(password)+blake2b.Size256)
	input = append(input, password...)
	if keyfile != nil {
		pepper := blake2b.Sum256(keyfile)
		input = append(input, pepper[:]...)
		Wipe(pepper[:])
	}
	defer Wipe(input)

	return argon2.IDKey(input, salt, p.Time, p.Memory, p.Threads, KeySize), nil
}

// LoadKeyfile reads a keyfile. A missing, unreadable or empty keyfile is an
// ErrKDF failure and never treated as "no keyfile".
func LoadKeyfile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no keyfile path given", kerrors.ErrKDF)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: keyfile %s: %v", kerrors.ErrKDF, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: keyfile %s is a directory", kerrors.ErrKDF, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading keyfile %s: %v", kerrors.ErrKDF, path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: keyfile %s is empty", kerrors.ErrKDF, path)
	}
	return data, nil
}
