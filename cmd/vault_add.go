package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/candado/internal/entries"
	"github.com/PolarWolf314/candado/internal/ui"
	"github.com/PolarWolf314/candado/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	addSecret   string
	addAlias    string
	addURL      string
	addNotes    string
	addGenerate bool
)

func init() {
	addCmd.Flags().StringVarP(&addSecret, "secret", "p", "", "the secret to store (generated when omitted)")
	addCmd.Flags().StringVarP(&addAlias, "alias", "n", "", "an alternative name such as a username")
	addCmd.Flags().StringVarP(&addURL, "url", "u", "", "the service url")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	addCmd.Flags().BoolVar(&addGenerate, "generate", false, "generate a random password")
}

// resetAddCommandState resets the add command's global state for testing.
func resetAddCommandState() {
	addSecret = ""
	addAlias = ""
	addURL = ""
	addNotes = ""
	addGenerate = false
}

var addCmd = &cobra.Command{
	Use:   "add <service> <account>",
	Short: "Add an entry",
	Long: `Adds an entry to the vault and prints its id.

If -p is omitted, or --generate is given without -p, a random password of
generator.password_length characters is stored and printed once.

Examples:
  # Store a known password
  candado vault add github me@example.com -p 'hunter2'

  # Generate a password for a new account
  candado vault add bank 12345678 --generate -u https://bank.example.com`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting add command")

		fields := entries.Fields{
			Service: args[0],
			Account: args[1],
			Secret:  addSecret,
			Alias:   addAlias,
			URL:     addURL,
			Notes:   addNotes,
		}

		resolved, creds, err := loadCredentials(cmd)
		if err != nil {
			return err
		}

		spinner, cleanup := startSpinner("Adding entry...", verbose)
		defer cleanup()

		result, err := workflows.Add(context.Background(), workflows.AddOptions{
			Credentials:    creds,
			Fields:         fields,
			Generate:       addGenerate || addSecret == "",
			PasswordLength: resolved.PasswordLength,
		})
		if err != nil {
			spinner.FinalMSG = ""
			return err
		}

		Logger.Infof("Added entry %d", result.ID)

		finalMessage := ui.Success.Sprint("✓") + fmt.Sprintf(" Added entry %d", result.ID)
		if result.Generated != "" {
			finalMessage += "\n" + ui.Info.Sprint("→") + " Generated secret: " + ui.Secret.Sprint(result.Generated)
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
