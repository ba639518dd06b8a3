package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/candado/internal/ui"
	"github.com/PolarWolf314/candado/internal/utils"
	"github.com/PolarWolf314/candado/internal/workflows"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <id>",
	Short: "Show one entry, secret included",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting inspect command")

		id, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}

		_, creds, err := loadCredentials(cmd)
		if err != nil {
			return err
		}

		_, cleanup := startSpinner("Unlocking vault...", verbose)
		result, err := workflows.Inspect(context.Background(), workflows.InspectOptions{
			Credentials: creds,
			ID:          id,
		})
		cleanup()
		if err != nil {
			return err
		}

		e := result.Entry
		fmt.Printf("%-9s %d\n", "ID:", e.ID)
		fmt.Printf("%-9s %s\n", "Service:", e.Service)
		fmt.Printf("%-9s %s\n", "Account:", e.Account)
		fmt.Printf("%-9s %s\n", "Secret:", ui.Secret.Sprint(e.Secret))
		if e.Alias != "" {
			fmt.Printf("%-9s %s\n", "Alias:", e.Alias)
		}
		if e.URL != "" {
			fmt.Printf("%-9s %s\n", "URL:", e.URL)
		}
		if e.Notes != "" {
			fmt.Printf("%-9s %s\n", "Notes:", e.Notes)
		}
		fmt.Printf("%-9s %s\n", "Created:", e.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("%-9s %s\n", "Updated:", e.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		return nil
	},
}
