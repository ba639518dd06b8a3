// Package utils provides shared helpers for the candado commands.
//
// # Filesystem Utilities
//
//   - ExpandPath: expands a leading ~ and makes a path absolute
//   - ResolveFiles: expands files, directories and doublestar globs into
//     .json and .toml import files
//
// # Terminal Utilities
//
// ReadPassphrase and ReadNewPassphrase read the master password without echo.
// ReadSecretLine reads it from a pipe for --password-stdin. None of them log
// or retain the value; callers own the returned slice and wipe it.
//
// # String Utilities
//
//   - FormatPaths: formats file paths for human-readable output
//   - ParseID: parses an entry id argument
package utils
