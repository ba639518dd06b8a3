package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/candado/internal/configs"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
	ConfigCmd.AddCommand(configInitCmd)
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config init command")

		path := configs.UserCandadoSettings.ConfigFile()
		if _, err := os.Stat(path); err == nil && !configInitForce {
			return ConfigLogger.ErrorfAndReturn("config file %s already exists (use --force to overwrite)", path)
		}

		config := configs.Default()
		ConfigLogger.Debugf("Writing default config to %s", path)
		if err := configs.Save(path, config); err != nil {
			return ConfigLogger.ErrorfAndReturn("%w", err)
		}

		fmt.Println(color.GreenString("✓") + " Configuration saved to " + color.YellowString(path))
		fmt.Println("  Vault:   " + color.CyanString(config.Vault.Path))
		fmt.Println("  Import:  " + color.CyanString(config.Import.Mode))
		return nil
	},
}
