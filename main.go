package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/candado/cmd"
	kerrors "github.com/PolarWolf314/candado/internal/errors"

	"github.com/awnumar/memguard"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "candado",
	Short: "Candado - an offline encrypted secrets store.",
	Long: `Candado keeps passwords, tokens and other secrets in a single encrypted
file on your machine. Nothing leaves it.

Features:
  - Argon2id key derivation with an optional keyfile
  - XChaCha20-Poly1305 authenticated encryption
  - Import and export of JSON and TOML files
  - Password, token, key and passphrase generators

Usage:
  candado <command> [flags]

Available Commands:
  vault      Manage the encrypted vault
  gen        Generate passwords, tokens, keys and passphrases
  config     Manage candado configuration

Run 'candado help <command>' for more details on a specific command.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewColorFigure("Candado", "", "green", true).Print()
		fmt.Println()
		fmt.Println("Welcome to Candado! Run 'candado --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.VaultCmd)
	rootCmd.AddCommand(cmd.GenCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
}

func main() {
	// Wipe key material if the process is interrupted.
	memguard.CatchInterrupt()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cmd.FormatError(err))
		memguard.SafeExit(kerrors.ExitCode(err))
	}
	memguard.Purge()
}
