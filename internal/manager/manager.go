package manager

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/language"

	"riskeval/internal/risk"
)

// DefaultDateFormat renders dates the way the original deployment did
// (es-UY locale): day/month/year.
const DefaultDateFormat = "02/01/2006"

// Gateway is the slice of the persistence contract the manager uses.
// Implemented by *store.Store; tests substitute failing doubles to
// exercise the storage-failure paths.
type Gateway interface {
	LoadAll(ctx context.Context) (records []risk.Record, skipped int, err error)
	Save(ctx context.Context, r risk.Record) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context, records []risk.Record) error
}

// Manager owns the live record collection, the active sort criterion and
// the edit cursor. All mutation is routed through its methods.
type Manager struct {
	store     Gateway
	validator risk.Validator
	sorter    *risk.Sorter
	idGen     risk.IDGenerator
	now       func() time.Time
	dateFmt   string
	log       *slog.Logger

	records   []risk.Record
	criterion risk.Criterion
	editID    string // "" = no active edit cursor
}

// Option configures a Manager.
type Option func(*Manager)

// WithIDGenerator sets the record ID source. Defaults to UUIDv7.
func WithIDGenerator(g risk.IDGenerator) Option {
	return func(m *Manager) { m.idGen = g }
}

// WithClock sets the time source used to stamp creation dates.
// Tests pin it for deterministic output.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithScales enables ordinal-scale membership validation.
func WithScales(s *risk.Scales) Option {
	return func(m *Manager) { m.validator = risk.Validator{Scales: s} }
}

// WithCollation sets the language used for name/area ordering.
// Defaults to Spanish, matching the original deployment.
func WithCollation(tag language.Tag) Option {
	return func(m *Manager) { m.sorter = risk.NewSorter(tag) }
}

// WithCriterion sets the initial sort criterion. Defaults to priority.
func WithCriterion(c risk.Criterion) Option {
	return func(m *Manager) { m.criterion = c }
}

// WithDateFormat overrides the creation-date format string.
func WithDateFormat(layout string) Option {
	return func(m *Manager) { m.dateFmt = layout }
}

// WithLogger sets the diagnostic logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// New creates a Manager over the given gateway and loads the persisted
// record set into memory, ordered by the active criterion.
func New(ctx context.Context, gw Gateway, opts ...Option) (*Manager, error) {
	m := &Manager{
		store:     gw,
		idGen:     risk.UUIDv7Generator{},
		now:       time.Now,
		dateFmt:   DefaultDateFormat,
		log:       slog.Default(),
		criterion: risk.DefaultCriterion,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.sorter == nil {
		m.sorter = risk.NewSorter(language.Spanish)
	}

	records, skipped, err := gw.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		m.log.Warn("some persisted entries could not be decoded", "skipped", skipped)
	}
	m.records = m.sorter.Sort(records, m.criterion)

	return m, nil
}

// Result is what a successful submission hands back for display.
type Result struct {
	Record     risk.Record
	Assessment risk.Assessment
	Created    bool // false when an active edit was applied
}

// Submit runs a raw form submission through validation, scoring and
// persistence.
//
// On a validation failure it returns *ValidationError carrying every
// field violation and performs no mutation. On success it assigns a new
// ID when no edit cursor is active, otherwise reuses the cursor's record
// ID and replaces that record in place, preserving its creation date.
//
// The in-memory collection is only updated after the write succeeds, so a
// *store.StorageError leaves memory consistent with the persisted state.
// A successful save clears the edit cursor and re-sorts.
func (m *Manager) Submit(ctx context.Context, in risk.Input) (Result, error) {
	verdict := m.validator.Validate(in)
	if !verdict.IsValid() {
		return Result{}, &ValidationError{Verdict: verdict}
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Area = strings.TrimSpace(in.Area)
	in.Description = strings.TrimSpace(in.Description)
	in.Mitigations = strings.TrimSpace(in.Mitigations)

	id := m.editID
	createdDate := m.now().Format(m.dateFmt)
	editing := false
	if id != "" {
		if prev, ok := m.find(id); ok {
			// Creation date is immutable across edits.
			createdDate = prev.CreatedDate
			editing = true
		} else {
			// Cursor points at a record that no longer exists;
			// treat the submission as a create.
			id = ""
		}
	}
	if id == "" {
		id = m.idGen.Generate()
	}

	rec := risk.NewRecord(id, in, createdDate)

	if err := m.store.Save(ctx, rec); err != nil {
		return Result{}, err
	}

	if editing {
		m.replace(rec)
	} else {
		m.records = append(m.records, rec)
	}
	m.editID = ""
	m.records = m.sorter.Sort(m.records, m.criterion)

	m.log.Debug("record saved", "id", rec.ID, "score", rec.Score, "tier", rec.Tier, "created", !editing)

	return Result{
		Record:     rec,
		Assessment: risk.Assessment{Tier: rec.Tier, Label: rec.TierLabel, Priority: rec.Priority},
		Created:    !editing,
	}, nil
}

// BeginEdit points the edit cursor at the given record and returns its
// field values for the form binder to populate. A no-op returning
// ok=false when the ID is not in the collection.
func (m *Manager) BeginEdit(id string) (risk.Input, bool) {
	rec, ok := m.find(id)
	if !ok {
		return risk.Input{}, false
	}
	m.editID = id
	return risk.InputFromRecord(rec), true
}

// CancelEdit resets the edit cursor without touching any record.
func (m *Manager) CancelEdit() {
	m.editID = ""
}

// Editing returns the ID under the edit cursor, if any.
func (m *Manager) Editing() (string, bool) {
	return m.editID, m.editID != ""
}

// Remove deletes the record with the given ID from the medium and, on
// success, from the in-memory collection - by identity, never by
// position. A storage failure leaves the collection unchanged. Removing
// an unknown ID is a no-op.
func (m *Manager) Remove(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}

	kept := m.records[:0:0]
	for _, r := range m.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	m.records = m.sorter.Sort(kept, m.criterion)

	if m.editID == id {
		m.editID = ""
	}

	m.log.Debug("record removed", "id", id)
	return nil
}

// ClearAll deletes every record. On a storage failure the in-memory
// collection is left unchanged and the error surfaces; deletion is
// best-effort underneath (see store.DeleteAll), so a later reload
// reconciles any partially cleared state.
func (m *Manager) ClearAll(ctx context.Context) error {
	if err := m.store.DeleteAll(ctx, m.records); err != nil {
		return err
	}

	n := len(m.records)
	m.records = []risk.Record{}
	m.editID = ""

	m.log.Debug("all records cleared", "count", n)
	return nil
}

// ReSort sets the active criterion and reorders the collection. Pure
// state update, cannot fail; an unknown criterion leaves the order as-is.
func (m *Manager) ReSort(c risk.Criterion) {
	m.criterion = c
	m.records = m.sorter.Sort(m.records, c)
}

// Records returns a copy of the collection in its current order.
func (m *Manager) Records() []risk.Record {
	out := make([]risk.Record, len(m.records))
	copy(out, m.records)
	return out
}

// Criterion returns the active sort criterion.
func (m *Manager) Criterion() risk.Criterion {
	return m.criterion
}

// Len returns the number of live records.
func (m *Manager) Len() int {
	return len(m.records)
}

func (m *Manager) find(id string) (risk.Record, bool) {
	for _, r := range m.records {
		if r.ID == id {
			return r, true
		}
	}
	return risk.Record{}, false
}

func (m *Manager) replace(rec risk.Record) {
	for i, r := range m.records {
		if r.ID == rec.ID {
			m.records[i] = rec
			return
		}
	}
}
