package cmd

import (
	"fmt"

	"github.com/PolarWolf314/candado/internal/configs"
	"github.com/PolarWolf314/candado/internal/generators"

	"github.com/spf13/cobra"
)

var (
	genLength   int
	genWordlist string

	// GenCmd prints random secrets without touching a vault.
	GenCmd = &cobra.Command{
		Use:   "gen",
		Short: "Generate passwords, tokens, keys and passphrases",
		Long: `Prints a random secret using the operating system's secure random source.

Examples:
  candado gen password           # generator.password_length characters
  candado gen password -l 32
  candado gen token -l 16        # 16 random bytes, 32 hex characters
  candado gen key
  candado gen passphrase -l 6 -c ~/words.txt`,
	}
)

func init() {
	for _, c := range []*cobra.Command{genPasswordCmd, genTokenCmd, genKeyCmd, genPassphraseCmd} {
		c.Flags().IntVarP(&genLength, "length", "l", 0, "length of the generated secret")
		c.Args = cobra.NoArgs
		GenCmd.AddCommand(c)
	}
	genPassphraseCmd.Flags().StringVarP(&genWordlist, "wordlist", "c", "", "newline separated wordlist (default: built-in list)")
}

// ResetGenState resets the gen command's global state for testing.
func ResetGenState() {
	genLength = 0
	genWordlist = ""
	resetCobraFlagState(GenCmd)
}

// GetGenCmd returns the GenCmd for testing.
func GetGenCmd() *cobra.Command {
	return GenCmd
}

var genPasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Generate a password with letters, digits and symbols",
	RunE: func(cmd *cobra.Command, args []string) error {
		length := genLength
		if length == 0 {
			config, err := configs.LoadUserConfig()
			if err != nil {
				return err
			}
			length = config.Generator.PasswordLength
		}
		return printGenerated(generators.Password(length))
	},
}

var genTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Generate a hex encoded random token",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printGenerated(generators.Token(lengthOr(generators.DefaultTokenLength)))
	},
}

var genKeyCmd = &cobra.Command{
	Use:   "key",
	Short: "Generate an alphanumeric key",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printGenerated(generators.Key(lengthOr(generators.DefaultKeyLength)))
	},
}

var genPassphraseCmd = &cobra.Command{
	Use:   "passphrase",
	Short: "Generate a passphrase of random words",
	RunE: func(cmd *cobra.Command, args []string) error {
		words := genLength
		if words == 0 {
			config, err := configs.LoadUserConfig()
			if err != nil {
				return err
			}
			words = config.Generator.PassphraseWords
		}

		var list []string
		if genWordlist != "" {
			var err error
			if list, err = generators.LoadWordlist(genWordlist); err != nil {
				return err
			}
		}
		return printGenerated(generators.Passphrase(words, list))
	},
}

func lengthOr(def int) int {
	if genLength != 0 {
		return genLength
	}
	return def
}

func printGenerated(secret string, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(secret)
	return nil
}
