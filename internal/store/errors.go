package store

import (
	"errors"
	"fmt"
	"strings"
)

// StorageError represents a rejected operation on the key-value medium
// (a failed write, a failed delete). It is recoverable at the UI layer:
// callers surface it to the user and keep their in-memory state aligned
// with the last known persisted state.
type StorageError struct {
	// Op identifies the failing operation: "save", "delete", "delete-all".
	Op string

	// Keys lists the affected storage keys.
	Keys []string

	// Err is the underlying driver error.
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if len(e.Keys) == 1 {
		return fmt.Sprintf("storage %s failed for %s: %v", e.Op, e.Keys[0], e.Err)
	}
	if len(e.Keys) > 1 {
		return fmt.Sprintf("storage %s failed for %d keys (%s): %v", e.Op, len(e.Keys), strings.Join(e.Keys, ", "), e.Err)
	}
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err is (or wraps) a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
