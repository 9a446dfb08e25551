// Package report renders record collections for humans: a tier-count
// summary, plain-text and HTML tables, and the paginated PDF document
// with one detail block per record.
//
// Renderers consume the core's data and contain no decision logic of
// their own. User-controlled text is escaped before insertion into HTML
// markup; the exporters fail gracefully (ErrNoRecords, no output) when
// handed an empty collection.
package report
