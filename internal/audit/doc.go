// Package audit keeps a best-effort trail of vault operations.
//
// Every mutating operation, and every time a secret is revealed, is appended
// to a JSON Lines file next to the vault:
//
//	<vault dir>/audit.jsonl
//
// Each entry contains the timestamp (RFC3339 with microseconds, UTC), the
// operation name, the vault id and operation-specific details such as the
// entry id, a record count, the import mode or the export path. Secret values,
// services and accounts are never written.
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error.
//
// # Reading Logs
//
// Use ReadEntries to parse the audit log for display. Malformed entries are
// silently skipped to handle partial writes.
package audit
