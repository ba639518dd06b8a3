package container

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/candado/internal/errors"
	"github.com/PolarWolf314/candado/internal/secrets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = secrets.KDFParams{Time: 1, Memory: 64, Threads: 1}

func testHeader(t *testing.T) Header {
	t.Helper()
	salt, err := secrets.NewSalt()
	require.NoError(t, err)
	return NewHeader(salt, testParams, false)
}

func testKey() []byte {
	return bytes.Repeat([]byte{0x42}, secrets.KeySize)
}

func sealedFixture(t *testing.T, plaintext string) (Header, []byte) {
	t.Helper()
	hdr, ct, err := Seal(testKey(), testHeader(t), []byte(plaintext))
	require.NoError(t, err)
	return hdr, ct
}

func TestHeaderRoundTrip(t *testing.T) {
	hdr, ct := sealedFixture(t, "payload")
	hdr.Flags = FlagKeyfile

	raw, err := encode(hdr, ct)
	require.NoError(t, err)
	assert.Equal(t, Version, raw[0], "version must be the first byte")

	parsed, rest, err := ParseHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, hdr, parsed)
	assert.Equal(t, ct, rest)
	assert.True(t, parsed.RequiresKeyfile())
}

func TestParseHeaderRejectsUnsupportedVersionFirst(t *testing.T) {
	hdr, ct := sealedFixture(t, "payload")
	raw, err := encode(hdr, ct)
	require.NoError(t, err)

	raw[0] = 2
	_, _, err = ParseHeader(raw)
	require.ErrorIs(t, err, kerrors.ErrFormat)
	assert.Contains(t, err.Error(), "unsupported version 2")

	// Even a one-byte file with a bad version reports the version.
	_, _, err = ParseHeader([]byte{9})
	assert.ErrorIs(t, err, kerrors.ErrFormat)
	assert.Contains(t, err.Error(), "unsupported version 9")
}

func TestParseHeaderRejectsCorruptHeaders(t *testing.T) {
	hdr, ct := sealedFixture(t, "payload")
	raw, err := encode(hdr, ct)
	require.NoError(t, err)

	mutate := func(f func(b []byte) []byte) []byte {
		return f(append([]byte(nil), raw...))
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated fixed part", raw[:5]},
		{"truncated salt", raw[:fixedHeaderSize+4]},
		{"missing tag", raw[:hdr.Size()+secrets.TagSize-1]},
		{"unknown kdf", mutate(func(b []byte) []byte { b[1] = 7; return b })},
		{"unknown flag", mutate(func(b []byte) []byte { b[2] = 0x80; return b })},
		{"zero threads", mutate(func(b []byte) []byte { b[11] = 0; return b })},
		{"short salt", mutate(func(b []byte) []byte { b[12] = 4; return b })},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseHeader(tt.data)
			assert.ErrorIs(t, err, kerrors.ErrFormat)
		})
	}
}

func TestSealUsesFreshNonceAndLeavesHeaderUntouched(t *testing.T) {
	hdr := testHeader(t)
	original := hdr

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		sealed, _, err := Seal(testKey(), hdr, []byte("same plaintext"))
		require.NoError(t, err)
		require.False(t, seen[string(sealed.Nonce)], "nonce reused on seal %d", i)
		seen[string(sealed.Nonce)] = true
	}
	assert.Equal(t, original, hdr)
	assert.Nil(t, hdr.Nonce)
}

func TestUnsealDetectsHeaderTampering(t *testing.T) {
	hdr, ct := sealedFixture(t, "payload")

	pt, err := Unseal(testKey(), hdr, ct)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(pt))

	tampered := hdr
	tampered.Salt = append([]byte(nil), hdr.Salt...)
	tampered.Salt[0] ^= 0xff
	_, err = Unseal(testKey(), tampered, ct)
	assert.ErrorIs(t, err, kerrors.ErrAuth)

	tampered = hdr
	tampered.Params.Time++
	_, err = Unseal(testKey(), tampered, ct)
	assert.ErrorIs(t, err, kerrors.ErrAuth)
}

func TestFlippingAnyFileByteNeverYieldsPlaintext(t *testing.T) {
	hdr, ct := sealedFixture(t, "secret entries")
	raw, err := encode(hdr, ct)
	require.NoError(t, err)

	for i := range raw {
		flipped := append([]byte(nil), raw...)
		flipped[i] ^= 0x01

		h, rest, err := ParseHeader(flipped)
		if err != nil {
			assert.ErrorIs(t, err, kerrors.ErrFormat, "byte %d", i)
			continue
		}
		pt, err := Unseal(testKey(), h, rest)
		assert.ErrorIs(t, err, kerrors.ErrAuth, "byte %d", i)
		assert.Nil(t, pt, "byte %d", i)
	}
}

func TestWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.cndo")
	hdr, ct := sealedFixture(t, "payload")

	require.NoError(t, Write(path, hdr, ct))

	gotHdr, gotCT, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, hdr, gotHdr)
	assert.Equal(t, ct, gotCT)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(FileMode), info.Mode().Perm())
	assertNoTempFiles(t, filepath.Dir(path))
}

func TestReadMissingVault(t *testing.T) {
	_, _, err := Read(filepath.Join(t.TempDir(), "nope.cndo"))
	assert.ErrorIs(t, err, kerrors.ErrVaultNotFound)
	assert.ErrorIs(t, err, kerrors.ErrIO)
}

func TestReadGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.cndo")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a vault"), 0600))

	_, _, err := Read(path)
	assert.ErrorIs(t, err, kerrors.ErrFormat)
}

func TestWriteCrashBeforeRenameLeavesOriginal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.cndo")
	hdr, ct := sealedFixture(t, "version one")
	require.NoError(t, Write(path, hdr, ct))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	var tmpSeen string
	renameFile = func(oldpath, newpath string) error {
		tmpSeen = oldpath
		return errors.New("simulated crash before rename")
	}
	t.Cleanup(func() { renameFile = os.Rename })

	hdr2, ct2 := sealedFixture(t, "version two")
	err = Write(path, hdr2, ct2)
	require.ErrorIs(t, err, kerrors.ErrIO)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "original vault must be byte-identical")

	require.NotEmpty(t, tmpSeen, "temporary file should have been written")
	_, err = os.Stat(tmpSeen)
	assert.True(t, os.IsNotExist(err), "temporary file should be removed")
}

func TestDirectorySyncFailureAfterRenameIsNotAFailedWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.cndo")

	syncDirectory = func(string) error {
		return errors.New("simulated directory sync failure")
	}
	t.Cleanup(func() { syncDirectory = syncDir })

	hdr, ct := sealedFixture(t, "version one")
	require.NoError(t, Create(path, hdr, ct))

	hdr2, ct2 := sealedFixture(t, "version two")
	require.NoError(t, Write(path, hdr2, ct2))

	gotHdr, gotCT, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, hdr2, gotHdr)
	assert.Equal(t, ct2, gotCT)
}

func TestStaleTempFileDoesNotAffectVault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vault.cndo")
	hdr, ct := sealedFixture(t, "payload")
	require.NoError(t, Write(path, hdr, ct))

	// A crash after the temp write but before rename leaves a stray temp file.
	stray := filepath.Join(dir, ".vault.cndo.tmp-crashed")
	require.NoError(t, os.WriteFile(stray, []byte("half written"), 0600))

	gotHdr, gotCT, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, hdr, gotHdr)
	assert.Equal(t, ct, gotCT)
}

func TestWriteFailsWhenDirectoryMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "vault.cndo")
	hdr, ct := sealedFixture(t, "payload")
	assert.ErrorIs(t, Write(path, hdr, ct), kerrors.ErrIO)
}

func TestCreateRefusesExistingVault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.cndo")
	hdr, ct := sealedFixture(t, "first")
	require.NoError(t, Create(path, hdr, ct))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	hdr2, ct2 := sealedFixture(t, "second")
	err = Create(path, hdr2, ct2)
	assert.ErrorIs(t, err, kerrors.ErrAlreadyExists)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assertNoTempFiles(t, filepath.Dir(path))
}

func TestCreateMakesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "vault.cndo")
	hdr, ct := sealedFixture(t, "payload")
	require.NoError(t, Create(path, hdr, ct))

	_, _, err := Read(path)
	assert.NoError(t, err)
}

func TestCreateFallsBackToRenameWithoutHardLinks(t *testing.T) {
	linkFile = func(oldname, newname string) error {
		return &os.LinkError{Op: "link", Old: oldname, New: newname, Err: errors.New("operation not supported")}
	}
	t.Cleanup(func() { linkFile = os.Link })

	path := filepath.Join(t.TempDir(), "vault.cndo")
	hdr, ct := sealedFixture(t, "payload")
	require.NoError(t, Create(path, hdr, ct))

	gotHdr, _, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, hdr, gotHdr)
	assertNoTempFiles(t, filepath.Dir(path))
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.Contains(e.Name(), ".tmp-"), "leftover temp file %s", e.Name())
	}
}
