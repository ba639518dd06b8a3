package utils

import (
	"bytes"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/term"

	"github.com/awnumar/memguard"
)

// ReadPassphrase prompts the user for a passphrase without echoing input.
// Returns an error if stdin is not a terminal.
func ReadPassphrase(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read passphrase: stdin is not a terminal (hint: use --password-stdin)")
	}

	return readHidden(fd, prompt)
}

// ReadPassphraseFromTTY prompts on /dev/tty (or CON on Windows). It is used
// when stdin carries other input.
func ReadPassphraseFromTTY(prompt string) ([]byte, error) {
	ttyPath := "/dev/tty"
	if runtime.GOOS == "windows" {
		ttyPath = "CON"
	}

	tty, err := os.Open(ttyPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s for passphrase input: %w", ttyPath, err)
	}
	defer tty.Close()

	fd := int(tty.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s is not a terminal", ttyPath)
	}

	return readHidden(fd, prompt)
}

// ReadNewPassphrase asks twice and fails if the answers differ or are empty.
func ReadNewPassphrase(prompt, confirm string) ([]byte, error) {
	first, err := ReadPassphrase(prompt)
	if err != nil {
		return nil, err
	}
	second, err := ReadPassphrase(confirm)
	if err != nil {
		memguard.WipeBytes(first)
		return nil, err
	}
	defer memguard.WipeBytes(second)

	if len(first) == 0 {
		return nil, fmt.Errorf("passphrase must not be empty")
	}
	if !bytes.Equal(first, second) {
		memguard.WipeBytes(first)
		return nil, fmt.Errorf("passphrases do not match")
	}
	return first, nil
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func readHidden(fd int, prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return passphrase, nil
}
