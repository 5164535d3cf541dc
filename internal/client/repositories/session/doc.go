// Package session implements the persisted session store: durable storage of
// exactly two logical slots, the auth token and the JSON user record,
// addressed by fixed keys.
//
// Store implementations must keep the slot pair consistent: PutAll and
// ClearAll are all-or-nothing, so a reader never observes a token without
// its user record (or the reverse) after a failed write. Every failure is
// reported wrapped in ErrStorageFailure.
//
// Implementations:
//
//   - SQLiteStore: backed by the "session" table of the local client DB.
//   - MemoryStore: process-local map, used by the client's ephemeral
//     mode (-e) and by tests.
package session
