// Package store is the persistence gateway for risk records: a flat
// key-value medium backed by SQLite.
//
// Each record is one entry. The key is the namespace prefix plus the
// record ID; the value is the full record as JSON, including derived
// fields, sufficient for exact reconstruction on load.
//
// Contract highlights:
//   - LoadAll enumerates every key under the prefix in unspecified order;
//     entries that fail to decode are logged and skipped, never abort the
//     load.
//   - Save overwrites any existing value for the record's key. A rejected
//     write surfaces as *StorageError, never swallowed.
//   - Delete is idempotent: removing an absent key is not an error.
//   - DeleteAll is best-effort: a mid-batch failure does not stop the
//     remaining deletes and is reported with the keys that failed.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
package store
