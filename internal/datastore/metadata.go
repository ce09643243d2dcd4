package datastore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ruheeh/waterchatbot/internal/lexicon"
	"github.com/ruheeh/waterchatbot/internal/table"
	"github.com/ruheeh/waterchatbot/internal/utils"
)

// metadataFile is the JSON cache under the metadata directory.
const metadataFile = "metadata.json"

// SiteInfo is one entry in the site registry.
type SiteInfo struct {
	SiteID      string `json:"site_id"`
	Description string `json:"description"`
	FirstSample string `json:"first_sample,omitempty"`
	LastSample  string `json:"last_sample,omitempty"`
	SampleCount int    `json:"sample_count,omitempty"`
	YearsActive string `json:"years_active,omitempty"`
	AddedDate   string `json:"added_date,omitempty"`
}

// ColumnInfo describes one dataset column.
type ColumnInfo struct {
	ColumnName   string `json:"column_name"`
	DataType     string `json:"data_type"`
	NonNullCount int    `json:"non_null_count"`
	Description  string `json:"description"`
}

// QueryExample pairs an example question with the operation it maps to.
type QueryExample struct {
	Question  string `json:"question"`
	Operation string `json:"operation"`
}

// Metadata is the persisted registry: known sites, column descriptions
// and example queries.
type Metadata struct {
	Sites    []SiteInfo     `json:"sites"`
	Columns  []ColumnInfo   `json:"columns"`
	Examples []QueryExample `json:"examples"`

	dir string
}

// InitMetadata loads the metadata cache from dir, populating any empty
// section from the current dataset, and writes the result back. With
// refresh set, the cache on disk is ignored and rebuilt from scratch.
func (s *Store) InitMetadata(dir string, refresh bool) (*Metadata, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir metadata dir: %w", err)
	}
	m := &Metadata{dir: dir}
	if !refresh {
		if err := m.load(); err != nil {
			return nil, err
		}
	}

	tbl, err := s.CurrentTable()
	if err != nil {
		return nil, err
	}
	m.populateSites(tbl)
	m.populateColumns(tbl)
	m.populateExamples()

	if err := m.Save(); err != nil {
		return nil, err
	}
	slog.Info("metadata initialized", "sites", len(m.Sites), "columns", len(m.Columns))
	return m, nil
}

func (m *Metadata) load() error {
	path := filepath.Join(m.dir, metadataFile)
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read metadata: %w", err)
	}
	if err := json.Unmarshal(b, m); err != nil {
		return fmt.Errorf("parse metadata: %w", err)
	}
	return nil
}

// Save writes the metadata cache atomically.
func (m *Metadata) Save() error {
	b, err := utils.PrettyJSON(m)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(m.dir, metadataFile), b)
}

// populateSites fills the site registry from the dataset if empty.
func (m *Metadata) populateSites(tbl *table.Table) {
	if len(m.Sites) > 0 {
		return
	}
	for _, site := range tbl.UniqueStrings(lexicon.ColSite) {
		view := tbl.Filter(func(r table.Row) bool {
			return table.Text(r, lexicon.ColSite) == site
		})
		first, last := dateRange(view)
		years := view.UniqueInts(lexicon.ColYear)
		yearRange := "unknown"
		if len(years) > 0 {
			yearRange = fmt.Sprintf("%d-%d", years[0], years[len(years)-1])
		}
		m.Sites = append(m.Sites, SiteInfo{
			SiteID: site,
			Description: fmt.Sprintf("Site %s, monitored %s, %d samples",
				site, yearRange, view.Len()),
			FirstSample: first.Format("2006-01-02"),
			LastSample:  last.Format("2006-01-02"),
			SampleCount: view.Len(),
			YearsActive: yearRange,
		})
	}
}

// populateColumns fills the column metadata from the dataset if empty.
func (m *Metadata) populateColumns(tbl *table.Table) {
	if len(m.Columns) > 0 {
		return
	}
	for _, col := range tbl.Columns() {
		nonNull := 0
		for _, row := range tbl.Rows() {
			if row[col] != nil {
				nonNull++
			}
		}
		m.Columns = append(m.Columns, ColumnInfo{
			ColumnName:   col,
			DataType:     columnType(tbl, col),
			NonNullCount: nonNull,
			Description:  lexicon.ColumnDescription(col),
		})
	}
}

// populateExamples seeds the example-query registry if empty.
func (m *Metadata) populateExamples() {
	if len(m.Examples) > 0 {
		return
	}
	m.Examples = []QueryExample{
		{Question: "coldest january water temperature", Operation: "extreme"},
		{Question: "which january had the coldest water temperature between 1981 and 1995", Operation: "extreme"},
		{Question: "highest ecoli reading", Operation: "extreme"},
		{Question: "average dissolved oxygen by year", Operation: "aggregation"},
		{Question: "seasonal water temperature patterns", Operation: "aggregation"},
		{Question: "compare summer and winter dissolved oxygen", Operation: "comparison"},
		{Question: "data for specific site", Operation: "site"},
		{Question: "correlation between temperature and dissolved oxygen", Operation: "correlation"},
		{Question: "samples collected in specific year", Operation: "time range"},
		{Question: "how many samples per site", Operation: "count"},
		{Question: "water quality trends over time", Operation: "trend"},
		{Question: "summary statistics for ph", Operation: "summary"},
	}
}

// RegisterSite adds a site to the registry by hand and persists the cache.
func (m *Metadata) RegisterSite(siteID, description string) error {
	desc := fmt.Sprintf("Site %s", siteID)
	if description != "" {
		desc = fmt.Sprintf("Site %s, %s", siteID, description)
	}
	m.Sites = append(m.Sites, SiteInfo{
		SiteID:      siteID,
		Description: desc,
		AddedDate:   time.Now().Format(time.RFC3339),
	})
	return m.Save()
}

// KnownSite reports whether the registry already holds the given site id.
func (m *Metadata) KnownSite(siteID string) bool {
	for _, s := range m.Sites {
		if s.SiteID == siteID {
			return true
		}
	}
	return false
}
