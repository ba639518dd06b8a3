// Package secrets provides the cryptographic primitives of the candado vault.
//
// # Key Derivation
//
// The vault key is derived from the master password with Argon2id:
//
//	key = Argon2id(password || BLAKE2b-256(keyfile), salt, params)
//
// The keyfile term is present only for vaults created with a keyfile. The
// salt is generated once per vault and stored in the container header along
// with the cost parameters. DefaultKDFParams are the fixed parameters of
// format version 1.
//
// The password slice passed to DeriveKey is wiped before it returns. Derived
// keys are held in a Key, which keeps them in guarded memory until Destroy.
//
// # Encryption
//
// Payloads are sealed with XChaCha20-Poly1305. The 24-byte nonce is random and
// must be fresh for every Seal; the container package is the only caller and
// generates it immediately before sealing. Open fails closed: any mismatch is
// reported as ErrAuth and no plaintext is returned.
package secrets
