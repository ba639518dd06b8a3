// Package configs manages the candado user configuration.
//
// Configuration is a single TOML file at $XDG_CONFIG_HOME/candado/config.toml:
//
//	[vault]
//	path = "~/.local/share/candado/vault.cndo"
//	keyfile = ""
//
//	[import]
//	mode = "append"
//
//	[generator]
//	password_length = 20
//	passphrase_words = 4
//
//	[audit]
//	enabled = true
//
// A missing file means defaults. Keys missing from the file keep their default
// value; unknown keys are rejected.
//
// # Resolution
//
// Resolve computes the settings of one invocation with the precedence
// flag > environment (CANDADO_VAULT, CANDADO_KEYFILE) > config file > defaults.
// The vault path is resolved once per command and passed down explicitly.
//
// # Settings
//
// UserCandadoSettings is initialized at startup with the config and data
// directories, following the XDG base directory conventions.
package configs
