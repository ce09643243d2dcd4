package datastore

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// AppendRows appends new sample rows to a CSV/TSV master file. Each row
// maps column name to raw value; columns the master lacks are rejected.
// XLSX masters are read-only here, convert them to CSV first.
func (s *Store) AppendRows(rows []map[string]string, meta *Metadata, label string) error {
	if strings.HasSuffix(strings.ToLower(s.path), ".xlsx") {
		return fmt.Errorf("appending to .xlsx is not supported, export to CSV first")
	}
	tbl, err := s.CurrentTable()
	if err != nil {
		return err
	}
	cols := tbl.Columns()
	colSet := map[string]bool{}
	for _, c := range cols {
		colSet[c] = true
	}
	for _, row := range rows {
		for k := range row {
			if !colSet[k] {
				return fmt.Errorf("unknown column %q in new data", k)
			}
		}
		if meta != nil {
			if site, ok := row["site"]; ok && !meta.KnownSite(site) {
				slog.Warn("new site in appended data, not yet in registry",
					"site", site, "period", label)
			}
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if strings.HasSuffix(strings.ToLower(s.path), ".tsv") {
		w.Comma = '\t'
	}
	for _, row := range rows {
		rec := make([]string, len(cols))
		for i, c := range cols {
			rec[i] = row[c]
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush appended rows: %w", err)
	}

	s.Invalidate()
	slog.Info("appended rows", "count", len(rows), "period", label)
	return nil
}
