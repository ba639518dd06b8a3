package configs

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/candado/internal/codec"
	"github.com/PolarWolf314/candado/internal/generators"
	"github.com/PolarWolf314/candado/internal/utils"
)

// Environment variables that override the config file.
const (
	EnvVault   = "CANDADO_VAULT"
	EnvKeyfile = "CANDADO_KEYFILE"
)

type Config struct {
	Vault     VaultConfig     `toml:"vault"`
	Import    ImportConfig    `toml:"import"`
	Generator GeneratorConfig `toml:"generator"`
	Audit     AuditConfig     `toml:"audit"`
}

type VaultConfig struct {
	Path    string `toml:"path"`
	Keyfile string `toml:"keyfile"`
}

type ImportConfig struct {
	Mode string `toml:"mode"`
}

type GeneratorConfig struct {
	PasswordLength  int `toml:"password_length"`
	PassphraseWords int `toml:"passphrase_words"`
}

type AuditConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Vault: VaultConfig{
			Path: UserCandadoSettings.DefaultVaultPath(),
		},
		Import: ImportConfig{
			Mode: string(codec.ModeAppend),
		},
		Generator: GeneratorConfig{
			PasswordLength:  generators.DefaultPasswordLength,
			PassphraseWords: generators.DefaultPassphraseLength,
		},
		Audit: AuditConfig{
			Enabled: true,
		},
	}
}

// Load reads the config file at path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// LoadUserConfig loads the config file from the user config directory.
func LoadUserConfig() (*Config, error) {
	return Load(UserCandadoSettings.ConfigFile())
}

// Save writes config to path.
func Save(path string, config *Config) error {
	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Validate checks values that cannot be expressed by the TOML types alone.
func (c *Config) Validate() error {
	if _, err := codec.ParseImportMode(c.Import.Mode); err != nil {
		return err
	}
	if c.Generator.PasswordLength < generators.MinPasswordLength || c.Generator.PasswordLength > generators.MaxLength {
		return fmt.Errorf("generator.password_length must be between %d and %d", generators.MinPasswordLength, generators.MaxLength)
	}
	if c.Generator.PassphraseWords < 1 || c.Generator.PassphraseWords > generators.MaxLength {
		return fmt.Errorf("generator.passphrase_words must be between 1 and %d", generators.MaxLength)
	}
	return nil
}

// Overrides are values given on the command line. Empty fields do not override.
type Overrides struct {
	Vault   string
	Keyfile string
}

// Resolved is the effective configuration of one command invocation.
type Resolved struct {
	VaultPath       string           `json:"vault_path"`
	KeyfilePath     string           `json:"keyfile_path"` // empty when no keyfile is used
	ImportMode      codec.ImportMode `json:"import_mode"`
	PasswordLength  int              `json:"password_length"`
	PassphraseWords int              `json:"passphrase_words"`
	AuditEnabled    bool             `json:"audit_enabled"`
}

// Resolve applies precedence flag > environment > config file > defaults.
// getenv is usually os.Getenv.
func Resolve(config *Config, flags Overrides, getenv func(string) string) (*Resolved, error) {
	vaultPath := first(flags.Vault, getenv(EnvVault), config.Vault.Path, UserCandadoSettings.DefaultVaultPath())
	keyfilePath := first(flags.Keyfile, getenv(EnvKeyfile), config.Vault.Keyfile)

	vaultPath, err := utils.ExpandPath(vaultPath)
	if err != nil {
		return nil, err
	}
	keyfilePath, err = utils.ExpandPath(keyfilePath)
	if err != nil {
		return nil, err
	}

	mode, err := codec.ParseImportMode(config.Import.Mode)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		VaultPath:       vaultPath,
		KeyfilePath:     keyfilePath,
		ImportMode:      mode,
		PasswordLength:  config.Generator.PasswordLength,
		PassphraseWords: config.Generator.PassphraseWords,
		AuditEnabled:    config.Audit.Enabled,
	}, nil
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
