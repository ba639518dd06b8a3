package container

import (
	"encoding/binary"
	"fmt"

	kerrors "github.com/PolarWolf314/candado/internal/errors"
	"github.com/PolarWolf314/candado/internal/secrets"
)

// Version is the only container format revision this build reads and writes.
const Version uint8 = 1

// KDF algorithm identifiers.
const (
	KDFArgon2id uint8 = 1
)

// Header flags.
const (
	// FlagKeyfile marks a vault whose key derivation requires a keyfile.
	FlagKeyfile uint8 = 1 << 0

	knownFlags = FlagKeyfile
)

// Salt length bounds accepted in a header.
const (
	MinSaltSize = secrets.SaltSize
	MaxSaltSize = 64
)

// fixedHeaderSize covers version, algorithm, flags, time, memory, threads and
// the salt length byte.
const fixedHeaderSize = 1 + 1 + 1 + 4 + 4 + 1 + 1

// Header is the plaintext prefix of a vault file. Its serialized form is bound
// to the ciphertext as associated data.
type Header struct {
	Version uint8
	KDF     uint8
	Flags   uint8
	Params  secrets.KDFParams
	Salt    []byte
	Nonce   []byte
}

// NewHeader returns a version 1 Argon2id header for a fresh vault. The nonce is
// left empty; Seal fills it.
func NewHeader(salt []byte, params secrets.KDFParams, keyfile bool) Header {
	h := Header{
		Version: Version,
		KDF:     KDFArgon2id,
		Params:  params,
		Salt:    append([]byte(nil), salt...),
	}
	if keyfile {
		h.Flags |= FlagKeyfile
	}
	return h
}

// RequiresKeyfile reports whether the vault was created with a keyfile.
func (h Header) RequiresKeyfile() bool {
	return h.Flags&FlagKeyfile != 0
}

// Size returns the serialized header length.
func (h Header) Size() int {
	return fixedHeaderSize + len(h.Salt) + len(h.Nonce)
}

// MarshalBinary serializes the header.
func (h Header) MarshalBinary() ([]byte, error) {
	if err := h.validate(); err != nil {
		return nil, err
	}

	if len(h.Nonce) != secrets.NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", kerrors.ErrFormat, secrets.NonceSize, len(h.Nonce))
	}

	buf := make([]byte, 0, h.Size())
	buf = append(buf, h.Version, h.KDF, h.Flags)
	buf = binary.BigEndian.AppendUint32(buf, h.Params.Time)
	buf = binary.BigEndian.AppendUint32(buf, h.Params.Memory)
	buf = append(buf, h.Params.Threads, uint8(len(h.Salt)))
	buf = append(buf, h.Salt...)
	buf = append(buf, h.Nonce...)
	return buf, nil
}

// ParseHeader decodes the header at the start of data and returns the
// remaining bytes, which hold the ciphertext and tag. An unsupported version is
// rejected before anything else is read.
func ParseHeader(data []byte) (Header, []byte, error) {
	var h Header

	if len(data) < 1 {
		return h, nil, fmt.Errorf("%w: empty file", kerrors.ErrFormat)
	}
	h.Version = data[0]
	if h.Version != Version {
		return h, nil, fmt.Errorf("%w: unsupported version %d", kerrors.ErrFormat, h.Version)
	}

	if len(data) < fixedHeaderSize {
		return h, nil, fmt.Errorf("%w: truncated header", kerrors.ErrFormat)
	}
	h.KDF = data[1]
	h.Flags = data[2]
	h.Params.Time = binary.BigEndian.Uint32(data[3:7])
	h.Params.Memory = binary.BigEndian.Uint32(data[7:11])
	h.Params.Threads = data[11]
	saltLen := int(data[12])

	rest := data[fixedHeaderSize:]
	if len(rest) < saltLen+secrets.NonceSize {
		return h, nil, fmt.Errorf("%w: truncated header", kerrors.ErrFormat)
	}
	h.Salt = append([]byte(nil), rest[:saltLen]...)
	h.Nonce = append([]byte(nil), rest[saltLen:saltLen+secrets.NonceSize]...)
	rest = rest[saltLen+secrets.NonceSize:]

	if err := h.validate(); err != nil {
		return h, nil, err
	}
	if len(rest) < secrets.TagSize {
		return h, nil, fmt.Errorf("%w: ciphertext truncated", kerrors.ErrFormat)
	}

	return h, rest, nil
}

func (h Header) validate() error {
	if h.Version != Version {
		return fmt.Errorf("%w: unsupported version %d", kerrors.ErrFormat, h.Version)
	}
	if h.KDF != KDFArgon2id {
		return fmt.Errorf("%w: unknown kdf algorithm %d", kerrors.ErrFormat, h.KDF)
	}
	if h.Flags&^knownFlags != 0 {
		return fmt.Errorf("%w: unknown header flags %#x", kerrors.ErrFormat, h.Flags)
	}
	if len(h.Salt) < MinSaltSize || len(h.Salt) > MaxSaltSize {
		return fmt.Errorf("%w: salt length %d out of range", kerrors.ErrFormat, len(h.Salt))
	}
	if err := h.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrFormat, err)
	}
	return nil
}
