package errors

import "errors"

// Process exit statuses reported by the CLI for each error category.
const (
	ExitOK           = 0
	ExitGeneric      = 1
	ExitIO           = 2
	ExitFormat       = 3
	ExitKDF          = 4
	ExitAuth         = 5
	ExitNotFound     = 6
	ExitExists       = 7
	ExitLocked       = 8
	ExitInvalidInput = 9
)

// exitCodes is checked in order; the first sentinel matched by errors.Is wins.
var exitCodes = []struct {
	err  error
	code int
}{
	{ErrAuth, ExitAuth},
	{ErrKDF, ExitKDF},
	{ErrFormat, ExitFormat},
	{ErrVaultLocked, ExitLocked},
	{ErrAlreadyExists, ExitExists},
	{ErrNotFound, ExitNotFound},
	{ErrInvalidEntry, ExitInvalidInput},
	{ErrInvalidFileType, ExitInvalidInput},
	{ErrNoFilesFound, ExitInvalidInput},
	{ErrInvalidImportMode, ExitInvalidInput},
	{ErrInvalidDateFormat, ExitInvalidInput},
	{ErrInvalidLength, ExitInvalidInput},
	{ErrInvalidWordlist, ExitInvalidInput},
	{ErrVaultNotFound, ExitIO},
	{ErrIO, ExitIO},
}

// ExitCode maps an error to the process exit status for its category.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for _, ec := range exitCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return ExitGeneric
}
