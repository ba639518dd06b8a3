package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/candado/internal/secrets"
	"github.com/PolarWolf314/candado/internal/ui"
	"github.com/PolarWolf314/candado/internal/workflows"

	"github.com/spf13/cobra"
)

// initParams overrides the KDF cost. Tests set it to keep key derivation fast.
var initParams *secrets.KDFParams

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new empty vault",
	Long: `Creates a new empty vault protected by a master password and, optionally,
a keyfile.

The master password is asked twice. With --password-stdin it is read once
from the first line of stdin.

Examples:
  # Create the vault at the default location
  candado vault init

  # Create a vault that also needs a keyfile
  candado vault init --vault ~/work.cndo --keyfile ~/work.key`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")

		resolved, err := resolveSettings()
		if err != nil {
			return err
		}

		password, err := readNewPassword(cmd)
		if err != nil {
			return fmt.Errorf("reading master password: %w", err)
		}
		defer secrets.Wipe(password)

		spinner, cleanup := startSpinner("Deriving key and creating vault...", verbose)
		defer cleanup()

		result, err := workflows.Init(context.Background(), workflows.InitOptions{
			Credentials: credentialsFor(resolved, password),
			Params:      initParams,
		})
		if err != nil {
			spinner.FinalMSG = ""
			return err
		}

		Logger.Infof("Created vault %s", result.VaultID)

		finalMessage := ui.Success.Sprint("✓") + " Created vault at " + ui.Path.Sprint(result.VaultPath)
		if result.UsesKeyfile {
			finalMessage += "\n" + ui.Warning.Sprint("⚠") + " The vault needs the keyfile to open. Keep a backup of it"
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
