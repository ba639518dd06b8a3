package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/candado/internal/codec"
	"github.com/PolarWolf314/candado/internal/ui"
	"github.com/PolarWolf314/candado/internal/utils"
	"github.com/PolarWolf314/candado/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	importMode   string
	importDryRun bool
)

func init() {
	importCmd.Flags().StringVar(&importMode, "mode", "", "append, merge or replace (default from config, else append)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "show what would be imported without opening the vault")
}

// resetImportCommandState resets the import command's global state for testing.
func resetImportCommandState() {
	importMode = ""
	importDryRun = false
}

var importCmd = &cobra.Command{
	Use:   "import <file|glob>...",
	Short: "Import entries from JSON or TOML files",
	Long: `Imports entries from .json and .toml files. Arguments may be files,
directories (searched recursively) or globs such as 'backups/**/*.toml'.

Import modes:
  append   Add every record as a new entry with a new id (default)
  merge    Update entries whose id matches a record, add the rest
  replace  Remove every entry first, keeping the id counter

All files are read before the vault is changed. If any file or record is
invalid, nothing is imported.

Examples:
  candado vault import export.json
  candado vault import 'backups/**/*.toml' --mode merge
  candado vault import old.json --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting import command")

		resolved, err := resolveSettings()
		if err != nil {
			return err
		}

		mode := resolved.ImportMode
		if importMode != "" {
			if mode, err = codec.ParseImportMode(importMode); err != nil {
				return err
			}
		}
		Logger.Debugf("Import mode: %s, dry-run: %t", mode, importDryRun)

		creds := credentialsFor(resolved, nil)
		if !importDryRun {
			password, err := readPassword(cmd)
			if err != nil {
				return fmt.Errorf("reading master password: %w", err)
			}
			creds.Password = password
		}

		spinner, cleanup := startSpinner("Importing entries...", verbose)
		defer cleanup()

		result, err := workflows.Import(context.Background(), workflows.ImportOptions{
			Credentials: creds,
			Patterns:    args,
			Mode:        mode,
			DryRun:      importDryRun,
		})
		if err != nil {
			spinner.FinalMSG = ""
			return err
		}

		var finalMessage string
		if result.DryRun {
			finalMessage = ui.Info.Sprint("Dry run") + " - no changes made\n\n"
			finalMessage += fmt.Sprintf("Would import %d records in %s mode from:", result.Records, result.Mode)
		} else {
			finalMessage = ui.Success.Sprint("✓") + fmt.Sprintf(" Imported %d records in %s mode\n", result.Records, result.Mode)
			finalMessage += fmt.Sprintf("  Added: %d\n", result.Added)
			if result.Mode == codec.ModeMerge {
				finalMessage += fmt.Sprintf("  Updated: %d\n", result.Updated)
			}
			finalMessage += "\nFrom:"
		}
		finalMessage += utils.FormatPaths(result.Files)

		spinner.FinalMSG = finalMessage
		return nil
	},
}
