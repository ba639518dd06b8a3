// Package ui renders candado's terminal output: vault listings, entry
// details, masked secrets and the status lines printed after each command.
//
// Every piece of output goes through a named Formatter so that one switch
// controls colour for the whole CLI:
//
//	ui.Path.Sprint(vaultPath)            // vault, keyfile and export paths
//	ui.Highlight.Sprint(entry.Service)   // services, usernames, entry ids
//	ui.Secret.Sprint(entry.Secret)       // only in `vault inspect --reveal`
//	ui.Mask(entry.Secret)                // what `vault ls` shows instead
//
// Colour is off under NO_COLOR or when fatih/color decides the output is not
// a capable terminal. Code, Highlight and Muted then fall back to backticks,
// quotes and parentheses so pasted output stays readable. The rest print
// plain text.
//
// Table lays rows out for listings and flattens tabs and newlines in cells
// so a multi-line note stays on its entry's row.
package ui
