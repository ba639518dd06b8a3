//go:build unix

package container

import (
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/candado/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockIsExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.cndo")

	first, err := Lock(path)
	require.NoError(t, err)

	_, err = Lock(path)
	assert.ErrorIs(t, err, kerrors.ErrVaultLocked)

	require.NoError(t, first.Unlock())
	require.NoError(t, first.Unlock(), "second unlock is a no-op")

	second, err := Lock(path)
	require.NoError(t, err)
	assert.NoError(t, second.Unlock())
}
