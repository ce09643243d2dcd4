package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return New(
		[]string{"site", "year", "value"},
		[]Row{
			{"site": "1", "year": 2020, "value": 3.5},
			{"site": "2", "year": 2020, "value": 1.0},
			{"site": "1", "year": 2021, "value": nil},
			{"site": "2", "year": 2021, "value": 7.25},
			{"site": "3", "year": 2022, "value": 2.0},
		},
	)
}

func TestFilterSharesRows(t *testing.T) {
	tbl := sampleTable()
	view := tbl.Filter(func(r Row) bool {
		y, _ := Int(r, "year")
		return y == 2020
	})
	require.Equal(t, 2, view.Len())
	assert.Equal(t, tbl.Columns(), view.Columns())
	// Views alias the original row maps.
	assert.Equal(t, tbl.Row(0)["value"], view.Row(0)["value"])
	assert.Equal(t, 5, tbl.Len())
}

func TestSelectSkipsAbsentColumns(t *testing.T) {
	view := sampleTable().Select("site", "missing", "value")
	assert.Equal(t, []string{"site", "value"}, view.Columns())
	assert.Equal(t, 5, view.Len())
}

func TestHeadTail(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t, 2, tbl.Head(2).Len())
	assert.Equal(t, 5, tbl.Head(10).Len())

	tail := tbl.Tail(2)
	require.Equal(t, 2, tail.Len())
	assert.Equal(t, "3", Text(tail.Row(1), "site"))
}

func TestSortByFloatMissingLast(t *testing.T) {
	sorted := sampleTable().SortByFloat("value", true)
	vals := make([]any, 0, sorted.Len())
	for _, r := range sorted.Rows() {
		vals = append(vals, r["value"])
	}
	assert.Equal(t, []any{1.0, 2.0, 3.5, 7.25, nil}, vals)

	desc := sampleTable().SortByFloat("value", false)
	first, ok := Number(desc.Row(0), "value")
	require.True(t, ok)
	assert.Equal(t, 7.25, first)
	assert.Nil(t, desc.Row(desc.Len()-1)["value"])
}

func TestCellAccessors(t *testing.T) {
	when := time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)
	r := Row{"f": 2.5, "i": 3, "s": "x", "t": when, "n": nil}

	v, ok := Number(r, "f")
	require.True(t, ok)
	assert.Equal(t, 2.5, v)
	v, ok = Number(r, "i")
	require.True(t, ok)
	assert.Equal(t, 3.0, v)
	_, ok = Number(r, "s")
	assert.False(t, ok)
	_, ok = Number(r, "n")
	assert.False(t, ok)

	i, ok := Int(r, "i")
	require.True(t, ok)
	assert.Equal(t, 3, i)

	assert.Equal(t, "x", Text(r, "s"))
	assert.Equal(t, "", Text(r, "n"))
	assert.Equal(t, "2020-06-01", Text(r, "t"))

	d, ok := Time(r, "t")
	require.True(t, ok)
	assert.Equal(t, when, d)
}

func TestFloatsAndPairedFloats(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t, []float64{3.5, 1.0, 7.25, 2.0}, tbl.Floats("value"))

	xs, ys := tbl.PairedFloats("year", "value")
	assert.Equal(t, []float64{2020, 2020, 2021, 2022}, xs)
	assert.Equal(t, []float64{3.5, 1.0, 7.25, 2.0}, ys)
}

func TestUniques(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t, []string{"1", "2", "3"}, tbl.UniqueStrings("site"))
	assert.Equal(t, []int{2020, 2021, 2022}, tbl.UniqueInts("year"))
}

func TestGroupByInt(t *testing.T) {
	groups := sampleTable().GroupByInt("year")
	require.Len(t, groups, 3)
	assert.Equal(t, 2020, groups[0].Int)
	assert.Equal(t, 2, groups[0].View.Len())
	assert.Equal(t, 2022, groups[2].Int)
}

func TestGroupByString(t *testing.T) {
	groups := sampleTable().GroupByString("site")
	require.Len(t, groups, 3)
	assert.Equal(t, "1", groups[0].Key)
	assert.Equal(t, 2, groups[0].View.Len())
}
