package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/candado/internal/configs"
	logger "github.com/PolarWolf314/candado/internal/logging"
	"github.com/PolarWolf314/candado/internal/utils"
	"github.com/PolarWolf314/candado/internal/workflows"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose       bool
	debug         bool
	vaultPath     string
	keyfilePath   string
	passwordStdin bool
	Logger        logger.Logger

	VaultCmd = &cobra.Command{
		Use:   "vault",
		Short: "Manage the encrypted vault",
		Long: `Creates the vault and adds, updates, removes, lists, imports and exports
its entries.

The vault is a single encrypted file. Every command asks for the master
password, or reads it from the first line of stdin with --password-stdin.

The vault path is taken from --vault, then CANDADO_VAULT, then the config
file, then the default location in the user data directory.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing vault command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	VaultCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	VaultCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	VaultCmd.PersistentFlags().StringVar(&vaultPath, "vault", "", "path to the vault file")
	VaultCmd.PersistentFlags().StringVar(&keyfilePath, "keyfile", "", "keyfile mixed into key derivation")
	VaultCmd.PersistentFlags().BoolVar(&passwordStdin, "password-stdin", false, "read the master password from stdin")

	VaultCmd.AddCommand(initCmd)
	VaultCmd.AddCommand(listCmd)
	VaultCmd.AddCommand(findCmd)
	VaultCmd.AddCommand(inspectCmd)
	VaultCmd.AddCommand(addCmd)
	VaultCmd.AddCommand(updateCmd)
	VaultCmd.AddCommand(removeCmd)
	VaultCmd.AddCommand(importCmd)
	VaultCmd.AddCommand(exportCmd)
	VaultCmd.AddCommand(logCmd)
}

// GetVaultCmd returns the VaultCmd for testing.
func GetVaultCmd() *cobra.Command {
	return VaultCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	vaultPath = ""
	keyfilePath = ""
	passwordStdin = false
	resetAddCommandState()
	resetUpdateCommandState()
	resetListCommandState()
	resetImportCommandState()
	resetExportCommandState()
	resetLogCommandState()
	resetCobraFlagState(VaultCmd)
}

// resetCobraFlagState clears the Changed marks left by a previous run.
func resetCobraFlagState(root *cobra.Command) {
	unmark := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	root.PersistentFlags().VisitAll(unmark)
	root.Flags().VisitAll(unmark)
	for _, c := range root.Commands() {
		resetCobraFlagState(c)
	}
}

// resolveSettings merges flags, environment and the user config file.
func resolveSettings() (*configs.Resolved, error) {
	config, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}

	resolved, err := configs.Resolve(config, configs.Overrides{
		Vault:   vaultPath,
		Keyfile: keyfilePath,
	}, os.Getenv)
	if err != nil {
		return nil, err
	}

	Logger.Debugf("Vault path: %s", resolved.VaultPath)
	if resolved.KeyfilePath != "" {
		Logger.Debugf("Keyfile: %s", resolved.KeyfilePath)
	}
	return resolved, nil
}

// Password prompt hooks, replaced in tests.
var (
	stdinIsTerminal = utils.IsTerminal
	promptStdin     = utils.ReadPassphrase
	promptTTY       = utils.ReadPassphraseFromTTY
)

// readPassword reads the master password from stdin or the terminal. When
// stdin is redirected without --password-stdin the prompt goes to the
// controlling terminal instead.
func readPassword(cmd *cobra.Command) ([]byte, error) {
	const prompt = "Master password: "
	if passwordStdin {
		Logger.Debugf("Reading master password from stdin")
		return utils.ReadSecretLine(cmd.InOrStdin())
	}
	if !stdinIsTerminal() {
		Logger.Debugf("Stdin is not a terminal, prompting on the controlling terminal")
		return promptTTY(prompt)
	}
	return promptStdin(prompt)
}

// readNewPassword reads a new master password, asking twice on a terminal.
func readNewPassword(cmd *cobra.Command) ([]byte, error) {
	if passwordStdin {
		Logger.Debugf("Reading new master password from stdin")
		return utils.ReadSecretLine(cmd.InOrStdin())
	}
	return utils.ReadNewPassphrase("New master password: ", "Confirm master password: ")
}

// loadCredentials resolves the vault and reads the password. The workflow
// that receives the credentials wipes the password.
func loadCredentials(cmd *cobra.Command) (*configs.Resolved, workflows.Credentials, error) {
	resolved, err := resolveSettings()
	if err != nil {
		return nil, workflows.Credentials{}, err
	}

	password, err := readPassword(cmd)
	if err != nil {
		return nil, workflows.Credentials{}, fmt.Errorf("reading master password: %w", err)
	}

	return resolved, credentialsFor(resolved, password), nil
}

func credentialsFor(resolved *configs.Resolved, password []byte) workflows.Credentials {
	return workflows.Credentials{
		VaultPath:   resolved.VaultPath,
		Password:    password,
		KeyfilePath: resolved.KeyfilePath,
		Audit:       resolved.AuditEnabled,
	}
}
