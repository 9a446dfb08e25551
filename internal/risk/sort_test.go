package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func makeRecord(id, name, area string, nd, ne, nc int) Record {
	in := Input{
		Name:        name,
		Area:        area,
		Deficiency:  &nd,
		Exposure:    &ne,
		Consequence: &nc,
	}
	return NewRecord(id, in, "01/01/2026")
}

func testSorter() *Sorter {
	return NewSorter(language.Spanish)
}

func TestSort_ByPriorityDefault(t *testing.T) {
	records := []Record{
		makeRecord("a", "Noise", "Plant", 2, 1, 10),    // NR 20, Tier IV
		makeRecord("b", "Fire", "Depot", 10, 4, 100),   // NR 4000, Tier I
		makeRecord("c", "Falls", "Roof", 6, 3, 25),     // NR 450, Tier III
		makeRecord("d", "Fumes", "Paint shop", 6, 4, 25), // NR 600, Tier II
	}

	out := testSorter().Sort(records, ByPriority)

	ids := []string{out[0].ID, out[1].ID, out[2].ID, out[3].ID}
	assert.Equal(t, []string{"b", "d", "c", "a"}, ids)
}

func TestSort_PriorityTieBrokenByScoreDescending(t *testing.T) {
	// Both Tier III: NR 450 vs NR 300.
	records := []Record{
		makeRecord("low", "A", "X", 6, 2, 25),  // NR 300
		makeRecord("high", "B", "Y", 6, 3, 25), // NR 450
	}

	out := testSorter().Sort(records, ByPriority)
	assert.Equal(t, "high", out[0].ID)
	assert.Equal(t, "low", out[1].ID)
}

func TestSort_StableOnFullTie(t *testing.T) {
	// Equal priority and equal score: input order must survive.
	records := []Record{
		makeRecord("first", "Same", "One", 6, 3, 25),
		makeRecord("second", "Same", "Two", 6, 3, 25),
		makeRecord("third", "Same", "Three", 6, 3, 25),
	}

	out := testSorter().Sort(records, ByPriority)
	assert.Equal(t, "first", out[0].ID)
	assert.Equal(t, "second", out[1].ID)
	assert.Equal(t, "third", out[2].ID)
}

func TestSort_ByScoreDescending(t *testing.T) {
	records := []Record{
		makeRecord("a", "A", "X", 2, 1, 10),  // 20
		makeRecord("b", "B", "Y", 10, 4, 100), // 4000
		makeRecord("c", "C", "Z", 6, 3, 25),  // 450
	}

	out := testSorter().Sort(records, ByScore)
	assert.Equal(t, []int{4000, 450, 20}, []int{out[0].Score, out[1].Score, out[2].Score})
}

func TestSort_ByNameLocaleAware(t *testing.T) {
	// Spanish collation: accented vowels sort with their base letter,
	// not after 'z' as byte order would put them.
	records := []Record{
		makeRecord("z", "corte", "X", 2, 1, 10),
		makeRecord("a", "ácido", "Y", 2, 1, 10),
		makeRecord("b", "borde", "Z", 2, 1, 10),
	}

	out := testSorter().Sort(records, ByName)
	assert.Equal(t, "ácido", out[0].Name)
	assert.Equal(t, "borde", out[1].Name)
	assert.Equal(t, "corte", out[2].Name)
}

func TestSort_ByArea(t *testing.T) {
	records := []Record{
		makeRecord("a", "A", "Warehouse", 2, 1, 10),
		makeRecord("b", "B", "Almacén", 2, 1, 10),
	}

	out := testSorter().Sort(records, ByArea)
	assert.Equal(t, "Almacén", out[0].Area)
}

func TestSort_UnknownCriterionKeepsInputOrder(t *testing.T) {
	records := []Record{
		makeRecord("a", "Z", "Z", 2, 1, 10),
		makeRecord("b", "A", "A", 10, 4, 100),
	}

	out := testSorter().Sort(records, Criterion("bogus"))
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
}

func TestSort_NeverMutatesInput(t *testing.T) {
	records := []Record{
		makeRecord("a", "Noise", "Plant", 2, 1, 10),
		makeRecord("b", "Fire", "Depot", 10, 4, 100),
	}

	out := testSorter().Sort(records, ByPriority)

	require.Equal(t, "a", records[0].ID, "input slice reordered")
	require.Equal(t, "b", records[1].ID, "input slice reordered")
	assert.Equal(t, "b", out[0].ID)
}

func TestSort_EmptyInput(t *testing.T) {
	out := testSorter().Sort(nil, ByPriority)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
