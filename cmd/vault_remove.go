package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/candado/internal/ui"
	"github.com/PolarWolf314/candado/internal/utils"
	"github.com/PolarWolf314/candado/internal/workflows"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an entry",
	Long: `Removes an entry. Its id is never given to another entry.

Examples:
  candado vault rm 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting rm command")

		id, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}

		_, creds, err := loadCredentials(cmd)
		if err != nil {
			return err
		}

		spinner, cleanup := startSpinner("Removing entry...", verbose)
		defer cleanup()

		result, err := workflows.Remove(context.Background(), workflows.RemoveOptions{
			Credentials: creds,
			ID:          id,
		})
		if err != nil {
			spinner.FinalMSG = ""
			return err
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" Removed entry %d ", result.ID) + ui.Muted.Sprint(result.Service)
		return nil
	},
}
