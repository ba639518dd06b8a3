// Package container reads and writes the on-disk vault file.
//
// # File Layout
//
// A vault is a binary header followed by the sealed payload:
//
//	[version:1][kdf:1][flags:1][time:4][memory:4][threads:1][saltlen:1][salt][nonce:24][ciphertext+tag]
//
// Integers are big-endian. The serialized header, nonce included, is the
// associated data of the AEAD, so any header change fails authentication.
//
// # Persistence
//
// Write never modifies the vault in place. It writes a temporary file in
// the same directory, syncs it, renames it over the target and syncs the
// directory. Create uses the same temporary file but publishes it with a
// hard link so an existing vault is never replaced.
//
// Concurrent processes cannot corrupt the file, but the later rename wins.
// Lock takes an advisory lock so interactive use does not lose updates.
package container
