package secrets

import "github.com/awnumar/memguard"

// Key holds a derived vault key in guarded memory until Destroy is called.
type Key struct {
	buf *memguard.LockedBuffer
}

// NewKey moves b into guarded memory. b is wiped by the move.
func NewKey(b []byte) *Key {
	return &Key{buf: memguard.NewBufferFromBytes(b)}
}

// Bytes returns the key material. The slice is only valid until Destroy.
func (k *Key) Bytes() []byte {
	if k == nil || k.buf == nil || !k.buf.IsAlive() {
		return nil
	}
	return k.buf.Bytes()
}

// Destroy wipes and releases the key. It is safe to call more than once.
func (k *Key) Destroy() {
	if k == nil || k.buf == nil {
		return
	}
	k.buf.Destroy()
}
