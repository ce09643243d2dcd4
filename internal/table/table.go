// Package table provides the in-memory tabular snapshot the query engine
// computes against: an ordered column set over rows of loosely typed cells.
// Every filtering or shaping operation returns a new Table view sharing the
// underlying row maps; nothing in this package mutates a cell.
package table

import (
	"math"
	"sort"
	"time"
)

// Row is a single sample keyed by column name. Cell values are nil
// (missing), string, int, float64 or time.Time.
type Row map[string]any

// Table is an ordered collection of rows sharing a column set.
type Table struct {
	cols []string
	rows []Row
}

// New builds a table from a column list and rows. The slices are used
// as-is; callers hand over ownership.
func New(cols []string, rows []Row) *Table {
	return &Table{cols: cols, rows: rows}
}

// Columns returns the column names in declaration order.
func (t *Table) Columns() []string { return t.cols }

// HasColumn reports whether the schema contains the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.cols {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows exposes the backing rows. Callers must treat them as read-only.
func (t *Table) Rows() []Row { return t.rows }

// Row returns the i-th row.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Filter returns a view containing the rows for which keep returns true.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := make([]Row, 0, len(t.rows))
	for _, r := range t.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return &Table{cols: t.cols, rows: out}
}

// Select returns a view restricted to the named columns, silently skipping
// any that are absent from the schema.
func (t *Table) Select(cols ...string) *Table {
	kept := make([]string, 0, len(cols))
	for _, c := range cols {
		if t.HasColumn(c) {
			kept = append(kept, c)
		}
	}
	return &Table{cols: kept, rows: t.rows}
}

// Head returns a view of the first n rows.
func (t *Table) Head(n int) *Table {
	if n > len(t.rows) {
		n = len(t.rows)
	}
	return &Table{cols: t.cols, rows: t.rows[:n]}
}

// Tail returns a view of the last n rows.
func (t *Table) Tail(n int) *Table {
	if n > len(t.rows) {
		n = len(t.rows)
	}
	return &Table{cols: t.cols, rows: t.rows[len(t.rows)-n:]}
}

// SortByFloat returns a view with rows stably ordered by the numeric value
// of col. Rows without a numeric value in col sort last. asc selects
// ascending order.
func (t *Table) SortByFloat(col string, asc bool) *Table {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	sort.SliceStable(out, func(i, j int) bool {
		a, aok := Number(out[i], col)
		b, bok := Number(out[j], col)
		if aok != bok {
			return aok
		}
		if !aok {
			return false
		}
		if asc {
			return a < b
		}
		return a > b
	})
	return &Table{cols: t.cols, rows: out}
}

// Number reads a cell as float64, accepting int and float64 cells. ok is
// false for missing, non-numeric and NaN cells.
func Number(r Row, col string) (float64, bool) {
	switch v := r[col].(type) {
	case float64:
		if math.IsNaN(v) {
			return 0, false
		}
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// Int reads a cell as int, accepting int and whole float64 cells.
func Int(r Row, col string) (int, bool) {
	switch v := r[col].(type) {
	case int:
		return v, true
	case float64:
		if math.IsNaN(v) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

// Text reads a cell as its string form; numeric and time cells are
// formatted, missing cells return "".
func Text(r Row, col string) string {
	return formatCell(r[col])
}

// Time reads a cell as time.Time.
func Time(r Row, col string) (time.Time, bool) {
	v, ok := r[col].(time.Time)
	return v, ok
}

// Floats collects the non-missing numeric values of col in row order.
func (t *Table) Floats(col string) []float64 {
	out := make([]float64, 0, len(t.rows))
	for _, r := range t.rows {
		if v, ok := Number(r, col); ok {
			out = append(out, v)
		}
	}
	return out
}

// PairedFloats collects (a, b) value pairs from rows where both columns
// hold numeric values, the pairwise-complete input a correlation expects.
func (t *Table) PairedFloats(colA, colB string) ([]float64, []float64) {
	xs := make([]float64, 0, len(t.rows))
	ys := make([]float64, 0, len(t.rows))
	for _, r := range t.rows {
		a, aok := Number(r, colA)
		b, bok := Number(r, colB)
		if aok && bok {
			xs = append(xs, a)
			ys = append(ys, b)
		}
	}
	return xs, ys
}

// UniqueStrings returns the distinct string forms of col, sorted.
func (t *Table) UniqueStrings(col string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.rows {
		s := Text(r, col)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// UniqueInts returns the distinct integer values of col, sorted ascending.
func (t *Table) UniqueInts(col string) []int {
	seen := make(map[int]bool)
	var out []int
	for _, r := range t.rows {
		if v, ok := Int(r, col); ok && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}
