package table

import "sort"

// Group is one partition of a grouped table. Key is the grouping value's
// display form; the View holds the member rows.
type Group struct {
	Key   string
	Int   int
	Float float64
	View  *Table
}

// GroupByInt partitions rows by the integer value of col, ordered by key
// ascending. Rows without an integer value in col are dropped, matching
// how a grouped aggregation ignores missing keys.
func (t *Table) GroupByInt(col string) []Group {
	byKey := make(map[int][]Row)
	var keys []int
	for _, r := range t.rows {
		v, ok := Int(r, col)
		if !ok {
			continue
		}
		if _, seen := byKey[v]; !seen {
			keys = append(keys, v)
		}
		byKey[v] = append(byKey[v], r)
	}
	sort.Ints(keys)
	out := make([]Group, 0, len(keys))
	for _, k := range keys {
		out = append(out, Group{
			Key:   formatCell(k),
			Int:   k,
			Float: float64(k),
			View:  &Table{cols: t.cols, rows: byKey[k]},
		})
	}
	return out
}

// GroupByString partitions rows by the string form of col, ordered by key
// ascending. Rows with an empty key are dropped.
func (t *Table) GroupByString(col string) []Group {
	byKey := make(map[string][]Row)
	var keys []string
	for _, r := range t.rows {
		k := Text(r, col)
		if k == "" {
			continue
		}
		if _, seen := byKey[k]; !seen {
			keys = append(keys, k)
		}
		byKey[k] = append(byKey[k], r)
	}
	sort.Strings(keys)
	out := make([]Group, 0, len(keys))
	for _, k := range keys {
		out = append(out, Group{Key: k, View: &Table{cols: t.cols, rows: byKey[k]}})
	}
	return out
}
