package container

import (
	"fmt"

	"github.com/PolarWolf314/candado/internal/secrets"
)

// Seal encrypts plaintext for hdr under key. It always draws a fresh nonce and
// returns a copy of hdr carrying it; the header passed in is never modified, so
// a nonce cannot be carried over from a previous write.
func Seal(key []byte, hdr Header, plaintext []byte) (Header, []byte, error) {
	nonce, err := secrets.NewNonce()
	if err != nil {
		return Header{}, nil, err
	}

	sealed := hdr
	sealed.Salt = append([]byte(nil), hdr.Salt...)
	sealed.Nonce = nonce

	aad, err := sealed.MarshalBinary()
	if err != nil {
		return Header{}, nil, err
	}

	ct, err := secrets.Seal(key, nonce, plaintext, aad)
	if err != nil {
		return Header{}, nil, fmt.Errorf("sealing payload: %w", err)
	}
	return sealed, ct, nil
}

// Unseal authenticates ct against hdr and returns the plaintext payload.
func Unseal(key []byte, hdr Header, ct []byte) ([]byte, error) {
	aad, err := hdr.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return secrets.Open(key, hdr.Nonce, ct, aad)
}
