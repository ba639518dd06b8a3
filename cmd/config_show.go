package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PolarWolf314/candado/internal/configs"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Displays the configuration commands run with: the config file, the
built-in defaults and the CANDADO_VAULT and CANDADO_KEYFILE environment
variables combined.

Examples:
  candado config show
  candado config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config show command")

		path := configs.UserCandadoSettings.ConfigFile()
		ConfigLogger.Debugf("Loading user config from %s", path)

		config, err := configs.Load(path)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to load user config: %w", err)
		}

		resolved, err := configs.Resolve(config, configs.Overrides{}, os.Getenv)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to resolve configuration: %w", err)
		}

		if configShowJSON {
			data, err := json.MarshalIndent(resolved, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal config to JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		source := "defaults"
		if _, err := os.Stat(path); err == nil {
			source = path
		}

		keyfile := resolved.KeyfilePath
		if keyfile == "" {
			keyfile = "(none)"
		}
		audit := "disabled"
		if resolved.AuditEnabled {
			audit = "enabled"
		}

		fmt.Println(color.CyanString("Configuration") + " from " + color.YellowString(source))
		fmt.Println()
		fmt.Printf("  %-18s %s\n", "Vault:", resolved.VaultPath)
		fmt.Printf("  %-18s %s\n", "Keyfile:", keyfile)
		fmt.Printf("  %-18s %s\n", "Import mode:", resolved.ImportMode)
		fmt.Printf("  %-18s %d\n", "Password length:", resolved.PasswordLength)
		fmt.Printf("  %-18s %d\n", "Passphrase words:", resolved.PassphraseWords)
		fmt.Printf("  %-18s %s\n", "Audit trail:", audit)
		return nil
	},
}
