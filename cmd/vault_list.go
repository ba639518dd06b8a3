package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/candado/internal/entries"
	"github.com/PolarWolf314/candado/internal/ui"
	"github.com/PolarWolf314/candado/internal/workflows"

	"github.com/spf13/cobra"
)

var showSecrets bool

func init() {
	listCmd.Flags().BoolVar(&showSecrets, "show", false, "print secrets instead of masking them")
	findCmd.Flags().BoolVar(&showSecrets, "show", false, "print secrets instead of masking them")
}

// resetListCommandState resets the ls and find commands' global state for testing.
func resetListCommandState() {
	showSecrets = false
}

var listCmd = &cobra.Command{
	Use:   "ls",
	Short: "List every entry",
	Long: `Lists every entry in the vault. Secrets are masked unless --show is given.

Examples:
  candado vault ls
  candado vault ls --show`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting ls command")
		return runList(cmd, "")
	},
}

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Find entries by service, account or url",
	Long: `Lists the entries whose service, account or url contains the query,
ignoring case. Secrets are masked unless --show is given.

Examples:
  candado vault find github
  candado vault find @example.com --show`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting find command")
		Logger.Debugf("Query length: %d", len(args[0]))
		return runList(cmd, args[0])
	},
}

func runList(cmd *cobra.Command, query string) error {
	_, creds, err := loadCredentials(cmd)
	if err != nil {
		return err
	}

	_, cleanup := startSpinner("Unlocking vault...", verbose)
	result, err := workflows.List(context.Background(), workflows.ListOptions{
		Credentials: creds,
		Query:       query,
		ShowSecrets: showSecrets,
	})
	cleanup()
	if err != nil {
		return err
	}

	Logger.Debugf("Matched %d of %d entries", len(result.Entries), result.Total)

	if len(result.Entries) == 0 {
		if result.Total == 0 {
			fmt.Println("The vault is empty.")
		} else {
			fmt.Println("No entries match the query.")
		}
		return nil
	}

	return renderEntries(result.Entries, showSecrets)
}

func renderEntries(list []entries.Entry, reveal bool) error {
	table := ui.Table{Headers: []string{"ID", "SERVICE", "ACCOUNT", "SECRET", "ALIAS", "URL"}}
	for _, e := range list {
		secret := ui.Mask(e.Secret)
		if reveal {
			secret = e.Secret
		}
		table.AddRow(fmt.Sprintf("%d", e.ID), e.Service, e.Account, secret, e.Alias, e.URL)
	}
	return table.Render(os.Stdout)
}
