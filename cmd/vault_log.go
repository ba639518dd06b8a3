package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PolarWolf314/candado/internal/audit"
	kerrors "github.com/PolarWolf314/candado/internal/errors"
	"github.com/PolarWolf314/candado/internal/ui"
	"github.com/PolarWolf314/candado/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logOperation string
	logSince     string
	logUntil     string
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation type (comma-separated)")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries after date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logUntil, "until", "", "show entries before date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logOperation = ""
	logSince = ""
	logUntil = ""
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays the audit trail kept next to the vault. It records which
operation ran and when, never services, accounts or secrets, so no password
is needed to read it.

Examples:
  candado vault log                        # View full log
  candado vault log -n 10                  # Last 10 entries
  candado vault log --reverse              # Most recent first
  candado vault log --operation add,rm     # Filter by operation
  candado vault log --since 2024-01-01     # Filter by date
  candado vault log --json                 # JSON output`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")

		resolved, err := resolveSettings()
		if err != nil {
			return err
		}

		result, err := workflows.Log(context.Background(), workflows.LogOptions{
			VaultPath:  resolved.VaultPath,
			Limit:      logLimit,
			Reverse:    logReverse,
			Operations: logOperation,
			Since:      logSince,
			Until:      logUntil,
		})
		if errors.Is(err, kerrors.ErrNoFilesFound) {
			fmt.Println(ui.Info.Sprint("ℹ") + " No audit log found. Operations are logged once the vault is used.")
			return nil
		}
		if err != nil {
			return err
		}

		Logger.Debugf("Parsed %d entries from audit log", result.TotalEntriesBeforeFilter)
		Logger.Debugf("After filtering: %d entries", len(result.Entries))

		if len(result.Entries) == 0 {
			fmt.Println("No audit log entries found matching the filters.")
			return nil
		}

		if logJSON {
			return outputLogJSON(result.Entries)
		}
		outputLogDefault(result.Entries)
		return nil
	},
}

func outputLogJSON(entries []audit.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func outputLogDefault(entries []audit.Entry) {
	for _, e := range entries {
		datetime := workflows.FormatDateTime(e.Timestamp)
		details := workflows.FormatDetails(e)
		fmt.Printf("%-19s  %-7s  %s\n", datetime, e.Operation, details)
	}
}
