// Package workflows provides high-level orchestration for candado commands.
//
// Workflows coordinate the configs, vault, codec and audit packages to
// implement complete user-facing features. Each workflow handles a single
// command's business logic, independent of CLI concerns like flag parsing,
// spinners, password prompts and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Reads the master password
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading the keyfile
//   - Opening and closing the vault session
//   - Performing the core operation
//   - Recording audit trail entries
//
// # Available Workflows
//
//   - Init: creates a new empty vault
//   - Add, Update, Remove: change entries
//   - Inspect, List: read entries
//   - Import, Export: move entries through JSON or TOML files
//   - Log: reads the audit trail of a vault
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to map them to exit statuses and messages without string
// matching:
//
//	result, err := workflows.Add(ctx, opts)
//	if errors.Is(err, kerrors.ErrAuth) {
//	    // wrong password, wrong keyfile or a damaged vault
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// A workflow whose context is cancelled before the session is closed aborts
// the session and leaves the vault file untouched.
package workflows
