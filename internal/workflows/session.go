package workflows

import (
	"context"

	"github.com/PolarWolf314/candado/internal/audit"
	"github.com/PolarWolf314/candado/internal/secrets"
	"github.com/PolarWolf314/candado/internal/vault"
)

// Credentials select and unlock a vault.
type Credentials struct {
	// VaultPath is the vault file.
	VaultPath string

	// Password is the master password. Workflows wipe it.
	Password []byte

	// KeyfilePath is an optional keyfile mixed into key derivation.
	KeyfilePath string

	// Audit enables the audit trail next to the vault.
	Audit bool
}

func (c Credentials) audit(entry audit.Entry) {
	if c.Audit {
		audit.Log(c.VaultPath, entry)
	}
}

// loadKeyfile returns nil when no keyfile is configured.
func loadKeyfile(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	return secrets.LoadKeyfile(path)
}

func openSession(creds Credentials) (*vault.Session, error) {
	keyfile, err := loadKeyfile(creds.KeyfilePath)
	if err != nil {
		return nil, err
	}
	defer secrets.Wipe(keyfile)

	return vault.Open(creds.VaultPath, creds.Password, vault.OpenOptions{Keyfile: keyfile})
}

// finish persists the session unless ctx was cancelled, in which case the
// changes are discarded.
func finish(ctx context.Context, s *vault.Session) error {
	if err := ctx.Err(); err != nil {
		s.Abort()
		return err
	}
	return s.Close()
}
