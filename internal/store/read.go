package store

import (
	"context"
	"fmt"
	"strings"

	"riskeval/internal/risk"
)

// LoadAll enumerates every key carrying the namespace prefix and
// deserializes each value into a record. Order is unspecified - callers
// must sort before display.
//
// An entry that fails to decode is logged and skipped, never aborting the
// whole load; skipped reports how many entries were dropped that way.
func (s *Store) LoadAll(ctx context.Context) (records []risk.Record, skipped int, err error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM entries`)
	if err != nil {
		return nil, 0, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	records = []risk.Record{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, 0, fmt.Errorf("scan entry: %w", err)
		}

		// Foreign keys may share the medium; only our namespace counts.
		if !strings.HasPrefix(key, Prefix) {
			continue
		}

		r, err := decodeRecord(value)
		if err != nil {
			s.log.Warn("skipping undecodable entry", "key", key, "error", err)
			skipped++
			continue
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate entries: %w", err)
	}

	return records, skipped, nil
}

// CountKeys returns the number of entries under the namespace prefix.
// Used by tests and the clear-all reconciliation path.
func (s *Store) CountKeys(ctx context.Context) (int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM entries`)
	if err != nil {
		return 0, fmt.Errorf("query keys: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return 0, fmt.Errorf("scan key: %w", err)
		}
		if strings.HasPrefix(key, Prefix) {
			count++
		}
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate keys: %w", err)
	}

	return count, nil
}
