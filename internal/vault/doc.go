// Package vault ties the container, key derivation and entry repository
// together into a session.
//
// A session is opened with Open, which takes the advisory lock, derives the
// key and decrypts the entries. Mutations only change memory; Close seals the
// whole entry set under a fresh nonce and atomically replaces the file, and
// only does so when something changed. Abort discards the session without
// writing.
//
//	s, err := vault.Open(path, password, vault.OpenOptions{})
//	if err != nil {
//		return err
//	}
//	defer s.Abort()
//
//	if _, err := s.Add(entries.Fields{Service: "github", Secret: secret}); err != nil {
//		return err
//	}
//	return s.Close()
package vault
