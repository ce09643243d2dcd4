package datastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityWordOverlap(t *testing.T) {
	// Shared words score at least 0.5 plus the matched fraction.
	s := similarity("coldest january temperature", "january temperature readings")
	assert.Greater(t, s, 0.5)

	// Full word match scores 1.0.
	assert.Equal(t, 1.0, similarity("site 2", "site 2"))
}

func TestSimilaritySubstring(t *testing.T) {
	// No whole-word overlap, but the query is contained in the text.
	assert.Equal(t, 0.7, similarity("fielddat", "the fielddata sheet"))
}

func TestSimilarityFuzzyFallback(t *testing.T) {
	s := similarity("turbidty", "turbidity")
	assert.Greater(t, s, 0.8)
	assert.Less(t, s, 1.0)

	assert.Less(t, similarity("xyz", "abc"), 0.2)
}

func TestSearchSitesRanksAndBoostsLiteralID(t *testing.T) {
	m := &Metadata{Sites: []SiteInfo{
		{SiteID: "1", Description: "Site 1, monitored 1990-2020, 400 samples"},
		{SiteID: "2", Description: "Site 2, monitored 1990-2020, 350 samples"},
		{SiteID: "14", Description: "Site 14, monitored 2010-2020, 90 samples"},
	}}

	hits := m.SearchSites("samples from site 2", 2)
	require.Len(t, hits, 2)
	assert.Equal(t, "2", hits[0].SiteID)
}

func TestSearchColumns(t *testing.T) {
	m := &Metadata{Columns: []ColumnInfo{
		{ColumnName: "water_temp.C", Description: "Water temperature in degrees Celsius"},
		{ColumnName: "ph", Description: "pH level (acidity/alkalinity, scale 0-14)"},
		{ColumnName: "turbidity.ntu", Description: "Turbidity in Nephelometric Turbidity Units (water clarity)"},
	}}

	hits := m.SearchColumns("water temperature", 1)
	require.Len(t, hits, 1)
	assert.Equal(t, "water_temp.C", hits[0].ColumnName)
}

func TestSimilarExamples(t *testing.T) {
	m := &Metadata{}
	m.populateExamples()

	hits := m.SimilarExamples("coldest january water temperature", 3)
	require.Len(t, hits, 3)
	assert.Equal(t, "coldest january water temperature", hits[0].Question)
}
