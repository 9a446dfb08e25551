package store

import (
	"encoding/json"
	"fmt"

	"riskeval/internal/risk"
)

// encodeRecord converts a record to its JSON TEXT value. The encoding is
// self-describing and carries every field, derived ones included, so a
// record reconstructs exactly on load.
func encodeRecord(r risk.Record) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encode record %s: %w", r.ID, err)
	}
	return string(data), nil
}

// decodeRecord parses a JSON TEXT value back into a record.
func decodeRecord(data string) (risk.Record, error) {
	var r risk.Record
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return risk.Record{}, fmt.Errorf("decode record: %w", err)
	}
	return r, nil
}
