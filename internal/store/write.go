package store

import (
	"context"

	"riskeval/internal/risk"
)

// Save serializes the record and writes it under its key, overwriting any
// existing value for that ID. A rejected write (capacity, locked medium)
// returns a *StorageError; it is the caller's job to keep in-memory state
// consistent when that happens.
func (s *Store) Save(ctx context.Context, r risk.Record) error {
	key := Key(r.ID)

	value, err := encodeRecord(r)
	if err != nil {
		return &StorageError{Op: "save", Keys: []string{key}, Err: err}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entries (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return &StorageError{Op: "save", Keys: []string{key}, Err: err}
	}

	return nil
}

// Delete removes the entry for the given record ID. Idempotent: deleting
// an ID that has no entry is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	key := Key(id)

	_, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE key = ?`, key)
	if err != nil {
		return &StorageError{Op: "delete", Keys: []string{key}, Err: err}
	}

	return nil
}

// DeleteAll removes the entry for every given record. Best-effort: a
// failure on one key does not stop the remaining deletes and there is no
// rollback - keys already removed stay removed. If any delete failed, the
// returned *StorageError names the failing keys and the caller decides
// how to reconcile in-memory versus persisted state.
func (s *Store) DeleteAll(ctx context.Context, records []risk.Record) error {
	var failed []string
	var firstErr error

	for _, r := range records {
		key := Key(r.ID)
		if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE key = ?`, key); err != nil {
			failed = append(failed, key)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		return &StorageError{Op: "delete-all", Keys: failed, Err: firstErr}
	}
	return nil
}
