package errors

import "errors"

// Storage errors indicate problems reaching or parsing the vault container.
var (
	// ErrIO indicates a filesystem operation on the vault or a transfer file failed.
	ErrIO = errors.New("filesystem operation failed")

	// ErrVaultNotFound indicates there is no vault at the given path.
	ErrVaultNotFound = errors.New("vault not found")

	// ErrFormat indicates a vault or transfer file is corrupt or uses an unsupported format.
	ErrFormat = errors.New("unsupported or corrupt format")

	// ErrAlreadyExists indicates a vault already exists where one was to be created.
	ErrAlreadyExists = errors.New("vault already exists")

	// ErrVaultLocked indicates another process holds the vault lock.
	ErrVaultLocked = errors.New("vault is locked by another process")
)

// Cryptographic errors indicate failures while deriving keys or opening the vault.
var (
	// ErrKDF indicates key derivation could not run, e.g. a required keyfile is missing.
	ErrKDF = errors.New("key derivation failed")

	// ErrAuth indicates the vault could not be authenticated. A wrong password, a
	// wrong keyfile and a tampered file all produce this same error.
	ErrAuth = errors.New("authentication failed: wrong password, wrong keyfile or corrupted vault")
)

// Entry errors indicate issues with repository operations.
var (
	// ErrNotFound indicates no entry has the requested id.
	ErrNotFound = errors.New("entry not found")

	// ErrInvalidEntry indicates an entry is missing a required field.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrSessionClosed indicates the vault session was already closed.
	ErrSessionClosed = errors.New("vault session is closed")
)

// File errors indicate issues with import and export files.
var (
	// ErrInvalidFileType indicates the transfer file has an unsupported extension.
	ErrInvalidFileType = errors.New("invalid file type")

	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrInvalidDateFormat indicates a --since or --until date that is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidImportMode indicates an import mode other than append, merge or replace.
	ErrInvalidImportMode = errors.New("invalid import mode")
)

// Generator errors indicate invalid generator arguments.
var (
	// ErrInvalidLength indicates a generator length outside the accepted range.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidWordlist indicates a wordlist file that is missing, unreadable or has too few words.
	ErrInvalidWordlist = errors.New("invalid wordlist")
)
