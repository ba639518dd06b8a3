// Package errors provides typed error values for the candado vault engine.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Storage errors: the container could not be read or written (ErrIO, ErrFormat)
//   - Crypto errors: key derivation or authentication failed (ErrKDF, ErrAuth)
//   - Entry errors: repository targets are missing or invalid (ErrNotFound, ErrInvalidEntry)
//   - File errors: import/export file issues (ErrInvalidFileType)
//
// ErrAuth deliberately covers a wrong password, a wrong keyfile and a tampered
// vault. Nothing in the engine tells these cases apart.
//
// # Usage
//
// Wrap errors with additional context at the call site:
//
//	return fmt.Errorf("reading %s: %w: %v", path, errors.ErrIO, err)
//
// Handle errors in the CLI layer:
//
//	sess, err := vault.Open(path, password, opts)
//	if errors.Is(err, kerrors.ErrAuth) {
//	    // Show user-friendly message
//	}
//
// # Exit Status
//
// ExitCode maps every category to a distinct process exit status so scripts
// can react to failures without parsing messages.
package errors
