package cmd

import (
	"context"
	"errors"

	kerrors "github.com/PolarWolf314/candado/internal/errors"
	"github.com/PolarWolf314/candado/internal/ui"
)

// FormatError renders err for the terminal, with a hint for the errors a
// user can act on. Error messages never carry secret values.
func FormatError(err error) string {
	msg := ui.Error.Sprint("✗") + " " + err.Error()

	hint := ""
	switch {
	case errors.Is(err, kerrors.ErrVaultNotFound):
		hint = "Run " + ui.Code.Sprint("candado vault init") + " to create a vault, or pass " + ui.Flag.Sprint("--vault")
	case errors.Is(err, kerrors.ErrAuth):
		hint = "Check the master password and keyfile. A damaged vault file reports the same error"
	case errors.Is(err, kerrors.ErrKDF):
		hint = "Check the " + ui.Flag.Sprint("--keyfile") + " flag and the " + ui.Code.Sprint("CANDADO_KEYFILE") + " variable"
	case errors.Is(err, kerrors.ErrVaultLocked):
		hint = "Another candado process has the vault open"
	case errors.Is(err, kerrors.ErrAlreadyExists):
		hint = "Pick another path or pass " + ui.Flag.Sprint("--force") + " where supported"
	case errors.Is(err, kerrors.ErrInvalidFileType):
		hint = "Transfer files must end in " + ui.Path.Sprint(".json") + " or " + ui.Path.Sprint(".toml")
	case errors.Is(err, context.Canceled):
		msg = ui.Warning.Sprint("⚠") + " Cancelled, the vault was not changed"
	}

	if hint != "" {
		msg += "\n" + ui.Info.Sprint("→") + " " + hint
	}
	return msg
}
