package manager

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskeval/internal/risk"
	"riskeval/internal/store"
)

func intp(v int) *int { return &v }

func warehouseInput() risk.Input {
	return risk.Input{
		Name:        "Falling objects",
		Area:        "Warehouse",
		Description: "Pallets stacked above rack limits",
		Mitigations: "Helmets, restacking",
		Deficiency:  intp(6),
		Exposure:    intp(3),
		Consequence: intp(25),
	}
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "riskeval.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	}
}

func newTestManager(t *testing.T, gw Gateway, ids ...string) *Manager {
	t.Helper()
	if len(ids) == 0 {
		ids = []string{"r-1", "r-2", "r-3", "r-4", "r-5"}
	}
	m, err := New(context.Background(), gw,
		WithIDGenerator(risk.NewFixedGenerator(ids...)),
		WithClock(fixedClock()),
	)
	require.NoError(t, err)
	return m
}

// faultGateway wraps a real store and fails selected operations.
type faultGateway struct {
	*store.Store
	failSave      bool
	failDelete    bool
	failDeleteAll bool
}

var errMediumFull = &store.StorageError{Op: "save", Err: errors.New("quota exceeded")}

func (g *faultGateway) Save(ctx context.Context, r risk.Record) error {
	if g.failSave {
		return errMediumFull
	}
	return g.Store.Save(ctx, r)
}

func (g *faultGateway) Delete(ctx context.Context, id string) error {
	if g.failDelete {
		return &store.StorageError{Op: "delete", Err: errors.New("medium rejected delete")}
	}
	return g.Store.Delete(ctx, id)
}

func (g *faultGateway) DeleteAll(ctx context.Context, records []risk.Record) error {
	if g.failDeleteAll {
		return &store.StorageError{Op: "delete-all", Err: errors.New("medium rejected delete")}
	}
	return g.Store.DeleteAll(ctx, records)
}

func TestSubmit_WarehouseScenario(t *testing.T) {
	m := newTestManager(t, newTestStore(t))

	res, err := m.Submit(context.Background(), warehouseInput())
	require.NoError(t, err)

	assert.True(t, res.Created)
	assert.Equal(t, "r-1", res.Record.ID)
	assert.Equal(t, 450, res.Record.Score)
	assert.Equal(t, risk.TierIII, res.Assessment.Tier)
	assert.Equal(t, "improve if feasible", res.Assessment.Label)
	assert.Equal(t, 3, res.Assessment.Priority)
	assert.Equal(t, "15/03/2026", res.Record.CreatedDate)
}

func TestSubmit_ValidationFailureMutatesNothing(t *testing.T) {
	s := newTestStore(t)
	m := newTestManager(t, s)
	ctx := context.Background()

	_, err := m.Submit(ctx, risk.Input{Area: "Warehouse"})
	require.Error(t, err)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.False(t, ve.Verdict.IsValid())

	assert.Zero(t, m.Len())
	n, err := s.CountKeys(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "nothing may be persisted on a rejected submission")
}

func TestSubmit_StorageFailureLeavesMemoryUnchanged(t *testing.T) {
	gw := &faultGateway{Store: newTestStore(t), failSave: true}
	m := newTestManager(t, gw)

	_, err := m.Submit(context.Background(), warehouseInput())
	require.Error(t, err)
	assert.True(t, store.IsStorageError(err))
	assert.Zero(t, m.Len(), "in-memory collection must not gain a record the medium rejected")
}

func TestSubmit_EditReusesIDAndPreservesDate(t *testing.T) {
	s := newTestStore(t)
	m := newTestManager(t, s)
	ctx := context.Background()

	res, err := m.Submit(ctx, warehouseInput())
	require.NoError(t, err)
	id := res.Record.ID

	in, ok := m.BeginEdit(id)
	require.True(t, ok)
	assert.Equal(t, "Falling objects", in.Name)

	in.Deficiency = intp(10)
	in.Exposure = intp(4)
	in.Consequence = intp(100)

	res2, err := m.Submit(ctx, in)
	require.NoError(t, err)

	assert.False(t, res2.Created)
	assert.Equal(t, id, res2.Record.ID, "edit must keep the record's identity")
	assert.Equal(t, 4000, res2.Record.Score)
	assert.Equal(t, risk.TierI, res2.Record.Tier)
	assert.Equal(t, "15/03/2026", res2.Record.CreatedDate)
	assert.Equal(t, 1, m.Len(), "edit must not grow the collection")

	// Cursor resets after a successful save.
	_, editing := m.Editing()
	assert.False(t, editing)

	// The medium holds the updated record under the same key.
	persisted, _, err := s.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, 4000, persisted[0].Score)
}

func TestSubmit_EditCursorOnVanishedRecordCreates(t *testing.T) {
	m := newTestManager(t, newTestStore(t))
	ctx := context.Background()

	res, err := m.Submit(ctx, warehouseInput())
	require.NoError(t, err)

	_, ok := m.BeginEdit(res.Record.ID)
	require.True(t, ok)
	require.NoError(t, m.Remove(ctx, res.Record.ID))

	res2, err := m.Submit(ctx, warehouseInput())
	require.NoError(t, err)
	assert.True(t, res2.Created)
	assert.NotEqual(t, res.Record.ID, res2.Record.ID)
}

func TestSubmit_TrimsFreeText(t *testing.T) {
	m := newTestManager(t, newTestStore(t))

	in := warehouseInput()
	in.Name = "  Falling objects  "
	in.Area = " Warehouse "

	res, err := m.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Falling objects", res.Record.Name)
	assert.Equal(t, "Warehouse", res.Record.Area)
}

func TestBeginEdit_UnknownIDIsNoOp(t *testing.T) {
	m := newTestManager(t, newTestStore(t))

	_, ok := m.BeginEdit("ghost")
	assert.False(t, ok)

	_, editing := m.Editing()
	assert.False(t, editing)
}

func TestCancelEdit_ResetsCursor(t *testing.T) {
	m := newTestManager(t, newTestStore(t))
	res, err := m.Submit(context.Background(), warehouseInput())
	require.NoError(t, err)

	_, ok := m.BeginEdit(res.Record.ID)
	require.True(t, ok)

	m.CancelEdit()
	_, editing := m.Editing()
	assert.False(t, editing)
}

func TestRemove_ByIdentityNotPosition(t *testing.T) {
	s := newTestStore(t)
	m := newTestManager(t, s)
	ctx := context.Background()

	in1 := warehouseInput()
	in2 := warehouseInput()
	in2.Name = "Fire"
	in2.Deficiency = intp(10)
	in2.Exposure = intp(4)
	in2.Consequence = intp(100)

	res1, err := m.Submit(ctx, in1)
	require.NoError(t, err)
	res2, err := m.Submit(ctx, in2)
	require.NoError(t, err)

	// After sorting, res2 (Tier I) sits first; removal still targets by ID.
	require.NoError(t, m.Remove(ctx, res1.Record.ID))

	require.Equal(t, 1, m.Len())
	assert.Equal(t, res2.Record.ID, m.Records()[0].ID)

	persisted, _, err := s.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, res2.Record.ID, persisted[0].ID)
}

func TestRemove_StorageFailureLeavesMemoryUnchanged(t *testing.T) {
	gw := &faultGateway{Store: newTestStore(t)}
	m := newTestManager(t, gw)
	ctx := context.Background()

	res, err := m.Submit(ctx, warehouseInput())
	require.NoError(t, err)

	gw.failDelete = true
	err = m.Remove(ctx, res.Record.ID)
	require.Error(t, err)
	assert.True(t, store.IsStorageError(err))
	assert.Equal(t, 1, m.Len())
}

func TestRemove_ClearsMatchingEditCursor(t *testing.T) {
	m := newTestManager(t, newTestStore(t))
	ctx := context.Background()

	res, err := m.Submit(ctx, warehouseInput())
	require.NoError(t, err)

	_, ok := m.BeginEdit(res.Record.ID)
	require.True(t, ok)

	require.NoError(t, m.Remove(ctx, res.Record.ID))
	_, editing := m.Editing()
	assert.False(t, editing)
}

func TestClearAll_FiveRecords(t *testing.T) {
	s := newTestStore(t)
	m := newTestManager(t, s)
	ctx := context.Background()

	for i, name := range []string{"A", "B", "C", "D", "E"} {
		in := warehouseInput()
		in.Name = name
		_, err := m.Submit(ctx, in)
		require.NoError(t, err, "submit %d", i)
	}
	require.Equal(t, 5, m.Len())

	require.NoError(t, m.ClearAll(ctx))

	assert.Zero(t, m.Len())
	n, err := s.CountKeys(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "no keys may remain under the namespace prefix")
}

func TestClearAll_StorageFailureLeavesMemoryUnchanged(t *testing.T) {
	gw := &faultGateway{Store: newTestStore(t)}
	m := newTestManager(t, gw)
	ctx := context.Background()

	_, err := m.Submit(ctx, warehouseInput())
	require.NoError(t, err)

	gw.failDeleteAll = true
	err = m.ClearAll(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, m.Len())
}

func TestReSort_ChangesOrderAndCriterion(t *testing.T) {
	m := newTestManager(t, newTestStore(t))
	ctx := context.Background()

	low := warehouseInput()
	low.Name = "Zeta"
	high := warehouseInput()
	high.Name = "Alfa"
	high.Deficiency = intp(10)
	high.Exposure = intp(4)
	high.Consequence = intp(100)

	_, err := m.Submit(ctx, low)
	require.NoError(t, err)
	_, err = m.Submit(ctx, high)
	require.NoError(t, err)

	// Default priority order puts the Tier I record first.
	assert.Equal(t, "Alfa", m.Records()[0].Name)

	m.ReSort(risk.ByName)
	assert.Equal(t, risk.ByName, m.Criterion())
	assert.Equal(t, "Alfa", m.Records()[0].Name)
	assert.Equal(t, "Zeta", m.Records()[1].Name)
}

func TestNew_LoadsPersistedSetSorted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m1 := newTestManager(t, s)
	for _, name := range []string{"Minor", "Major"} {
		in := warehouseInput()
		in.Name = name
		if name == "Major" {
			in.Deficiency = intp(10)
			in.Exposure = intp(4)
			in.Consequence = intp(100)
		}
		_, err := m1.Submit(ctx, in)
		require.NoError(t, err)
	}

	// Fresh session over the same medium sees the same set, sorted.
	m2, err := New(ctx, s, WithClock(fixedClock()))
	require.NoError(t, err)

	require.Equal(t, 2, m2.Len())
	assert.Equal(t, "Major", m2.Records()[0].Name)
}

func TestRecords_ReturnsCopy(t *testing.T) {
	m := newTestManager(t, newTestStore(t))
	_, err := m.Submit(context.Background(), warehouseInput())
	require.NoError(t, err)

	out := m.Records()
	out[0].Name = "tampered"

	assert.Equal(t, "Falling objects", m.Records()[0].Name)
}

func TestSubmit_WithScalesRejectsOffScaleLevels(t *testing.T) {
	s := newTestStore(t)
	scales := &risk.Scales{
		Deficiency:  risk.Scale{{Value: 2, Label: "mejorable"}, {Value: 6, Label: "deficiente"}, {Value: 10, Label: "muy deficiente"}},
		Exposure:    risk.Scale{{Value: 1, Label: "esporádica"}, {Value: 2, Label: "ocasional"}, {Value: 3, Label: "frecuente"}, {Value: 4, Label: "continuada"}},
		Consequence: risk.Scale{{Value: 10, Label: "leve"}, {Value: 25, Label: "grave"}, {Value: 60, Label: "muy grave"}, {Value: 100, Label: "mortal o catastrófico"}},
	}
	m, err := New(context.Background(), s, WithScales(scales))
	require.NoError(t, err)

	in := warehouseInput()
	in.Deficiency = intp(7)

	_, err = m.Submit(context.Background(), in)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Verdict.Errors, 1)
	assert.Equal(t, "nd", ve.Verdict.Errors[0].Field)
}
