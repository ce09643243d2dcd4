// Package datastore owns the loaded monitoring dataset. A Store reads the
// spreadsheet once and hands out the cached table, reloading whenever the
// file's modification time changes. It also keeps the site registry and
// column metadata, persisted as JSON next to the data file.
package datastore

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ruheeh/waterchatbot/internal/ingest"
	"github.com/ruheeh/waterchatbot/internal/lexicon"
	"github.com/ruheeh/waterchatbot/internal/table"
)

// Store caches the dataset loaded from a spreadsheet file.
type Store struct {
	path  string
	sheet string

	mu      sync.Mutex
	tbl     *table.Table
	modTime time.Time
	stale   bool
}

// New creates a store for the given file. The sheet name only applies to
// .xlsx files; pass "" for the default.
func New(path, sheet string) *Store {
	return &Store{path: path, sheet: sheet}
}

// Path returns the data file path the store reads from.
func (s *Store) Path() string { return s.path }

// CurrentTable returns the loaded table, reloading the file if its
// modification time changed since the last load.
func (s *Store) CurrentTable() (*table.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("stat data file: %w", err)
	}
	if s.tbl != nil && !s.stale && info.ModTime().Equal(s.modTime) {
		return s.tbl, nil
	}

	tbl, err := ingest.Load(s.path, s.sheet)
	if err != nil {
		return nil, err
	}
	s.tbl = tbl
	s.modTime = info.ModTime()
	s.stale = false
	slog.Info("loaded dataset", "path", s.path, "rows", tbl.Len(), "columns", len(tbl.Columns()))
	return s.tbl, nil
}

// Invalidate forces the next CurrentTable call to reload from disk,
// regardless of the file's modification time.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.stale = true
	s.mu.Unlock()
}

// Summary describes the loaded dataset at a glance.
type Summary struct {
	TotalSamples int      `json:"total_samples"`
	TotalSites   int      `json:"total_sites"`
	DateRange    string   `json:"date_range"`
	YearsCovered []int    `json:"years_covered"`
	Columns      int      `json:"columns"`
	Sites        []string `json:"sites"`
}

// Summarize computes the dataset summary.
func (s *Store) Summarize() (*Summary, error) {
	tbl, err := s.CurrentTable()
	if err != nil {
		return nil, err
	}
	first, last := dateRange(tbl)
	return &Summary{
		TotalSamples: tbl.Len(),
		TotalSites:   len(tbl.UniqueStrings(lexicon.ColSite)),
		DateRange:    fmt.Sprintf("%s to %s", first.Format("2006-01-02"), last.Format("2006-01-02")),
		YearsCovered: tbl.UniqueInts(lexicon.ColYear),
		Columns:      len(tbl.Columns()),
		Sites:        tbl.UniqueStrings(lexicon.ColSite),
	}, nil
}

// SchemaDescription renders a human-readable schema of the dataset: row
// and column counts, date range, sites, and per-column type with non-null
// counts and a few sample values.
func (s *Store) SchemaDescription() (string, error) {
	tbl, err := s.CurrentTable()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dataset with %d rows and %d columns.\n", tbl.Len(), len(tbl.Columns()))
	first, last := dateRange(tbl)
	if !first.IsZero() {
		fmt.Fprintf(&b, "Date range: %s to %s\n", first.Format("2006-01-02"), last.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "Sites: %s\n\nColumns:\n", strings.Join(tbl.UniqueStrings(lexicon.ColSite), ", "))

	for _, col := range tbl.Columns() {
		nonNull := 0
		var samples []string
		for _, row := range tbl.Rows() {
			v := row[col]
			if v == nil {
				continue
			}
			nonNull++
			if len(samples) < 3 {
				samples = append(samples, truncate(fmt.Sprint(v), 20))
			}
		}
		fmt.Fprintf(&b, "  - %s (%s): %d non-null, samples: [%s]\n",
			col, columnType(tbl, col), nonNull, strings.Join(samples, ", "))
	}
	return b.String(), nil
}

// dateRange returns the earliest and latest sample dates in the table.
func dateRange(tbl *table.Table) (first, last time.Time) {
	for _, row := range tbl.Rows() {
		d, ok := table.Time(row, lexicon.ColSampleDate)
		if !ok {
			continue
		}
		if first.IsZero() || d.Before(first) {
			first = d
		}
		if last.IsZero() || d.After(last) {
			last = d
		}
	}
	return first, last
}

// columnType reports the dominant Go type among a column's non-null cells.
func columnType(tbl *table.Table, col string) string {
	counts := map[string]int{}
	for _, row := range tbl.Rows() {
		switch row[col].(type) {
		case nil:
		case float64:
			counts["float64"]++
		case int:
			counts["int"]++
		case time.Time:
			counts["datetime"]++
		default:
			counts["string"]++
		}
	}
	best, bestN := "empty", 0
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if counts[k] > bestN {
			best, bestN = k, counts[k]
		}
	}
	return best
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
