package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/candado/internal/entries"
	"github.com/PolarWolf314/candado/internal/ui"
	"github.com/PolarWolf314/candado/internal/utils"
	"github.com/PolarWolf314/candado/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	updateService string
	updateAccount string
	updateSecret  string
	updateAlias   string
	updateURL     string
	updateNotes   string
)

func init() {
	updateCmd.Flags().StringVarP(&updateService, "service", "s", "", "new service name")
	updateCmd.Flags().StringVarP(&updateAccount, "account", "e", "", "new account")
	updateCmd.Flags().StringVarP(&updateSecret, "secret", "p", "", "new secret")
	updateCmd.Flags().StringVarP(&updateAlias, "alias", "n", "", "new alias")
	updateCmd.Flags().StringVarP(&updateURL, "url", "u", "", "new url")
	updateCmd.Flags().StringVar(&updateNotes, "notes", "", "new notes")
}

// resetUpdateCommandState resets the update command's global state for testing.
func resetUpdateCommandState() {
	updateService = ""
	updateAccount = ""
	updateSecret = ""
	updateAlias = ""
	updateURL = ""
	updateNotes = ""
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change fields of an entry",
	Long: `Changes the given fields of an entry and keeps the others.

Passing an empty value clears an optional field.

Examples:
  candado vault update 3 -p 'n3w-s3cret'
  candado vault update 3 -u https://example.com --notes ""`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting update command")

		id, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}

		patch := buildPatch(cmd)
		if patch.IsEmpty() {
			return fmt.Errorf("nothing to update: pass at least one of %s, %s, %s, %s, %s or %s",
				ui.Flag.Sprint("-s"), ui.Flag.Sprint("-e"), ui.Flag.Sprint("-p"),
				ui.Flag.Sprint("-n"), ui.Flag.Sprint("-u"), ui.Flag.Sprint("--notes"))
		}

		_, creds, err := loadCredentials(cmd)
		if err != nil {
			return err
		}

		spinner, cleanup := startSpinner("Updating entry...", verbose)
		defer cleanup()

		if _, err := workflows.Update(context.Background(), workflows.UpdateOptions{
			Credentials: creds,
			ID:          id,
			Patch:       patch,
		}); err != nil {
			spinner.FinalMSG = ""
			return err
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" Updated entry %d", id)
		return nil
	},
}

// buildPatch keeps only the flags that were set on the command line.
func buildPatch(cmd *cobra.Command) entries.Patch {
	var patch entries.Patch
	set := func(name string, value *string) *string {
		if cmd.Flags().Changed(name) {
			v := *value
			return &v
		}
		return nil
	}
	patch.Service = set("service", &updateService)
	patch.Account = set("account", &updateAccount)
	patch.Secret = set("secret", &updateSecret)
	patch.Alias = set("alias", &updateAlias)
	patch.URL = set("url", &updateURL)
	patch.Notes = set("notes", &updateNotes)
	return patch
}
