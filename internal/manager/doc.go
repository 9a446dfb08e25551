// Package manager implements the record orchestrator: it owns the live
// record collection, the active sort criterion, and the edit cursor, and
// routes every mutation through the Validator, Calculator and persistence
// gateway.
//
// Single-writer model: one Manager per session, all operations run to
// completion before the next one starts, exactly like the form-driven
// original. Nothing here suspends mid-way and no locking discipline is
// required of callers.
//
// Consistency invariant: the persisted set and the in-memory set are equal
// after every mutating operation. In-memory updates are deferred until the
// corresponding write succeeds; a storage failure leaves the collection
// untouched and surfaces to the caller.
package manager
