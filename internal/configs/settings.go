package configs

import (
	"log"
	"os"
	"path/filepath"
)

// UserSettings holds the per-user directories candado reads and writes.
type UserSettings struct {
	ConfigPath string // directory holding config.toml
	DataPath   string // directory holding the default vault
}

var UserCandadoSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")

	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	UserCandadoSettings = &UserSettings{
		ConfigPath: filepath.Join(configDir, "candado"),
		DataPath:   filepath.Join(dataDir, "candado"),
	}
}

// ConfigFile returns the path of the user config file.
func (s *UserSettings) ConfigFile() string {
	return filepath.Join(s.ConfigPath, "config.toml")
}

// DefaultVaultPath returns the vault used when nothing else selects one.
func (s *UserSettings) DefaultVaultPath() string {
	return filepath.Join(s.DataPath, "vault.cndo")
}
