package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/candado/internal/ui"
	"github.com/PolarWolf314/candado/internal/workflows"

	"github.com/spf13/cobra"
)

var exportForce bool

func init() {
	exportCmd.Flags().BoolVar(&exportForce, "force", false, "overwrite an existing output file")
}

// resetExportCommandState resets the export command's global state for testing.
func resetExportCommandState() {
	exportForce = false
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export every entry to a JSON or TOML file",
	Long: `Writes every entry, secrets and ids included, to a plaintext file that
only the owner can read. The extension picks the format.

Default filename includes today's date: candado-export-YYYY-MM-DD.json

The export is NOT encrypted. Delete it once it is no longer needed.

Examples:
  candado vault export backup.toml
  candado vault export backup.json --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting export command")

		outputPath := ""
		if len(args) == 1 {
			outputPath = args[0]
		}

		_, creds, err := loadCredentials(cmd)
		if err != nil {
			return err
		}

		spinner, cleanup := startSpinner("Exporting entries...", verbose)
		defer cleanup()

		result, err := workflows.Export(context.Background(), workflows.ExportOptions{
			Credentials: creds,
			OutputPath:  outputPath,
			Force:       exportForce,
		})
		if err != nil {
			spinner.FinalMSG = ""
			return err
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" Exported %d entries to ", result.Count) + ui.Path.Sprint(result.OutputPath)
		cleanup()
		Logger.WarnfAlways("%s holds your secrets in plaintext, delete it once it is no longer needed", result.OutputPath)
		return nil
	},
}
