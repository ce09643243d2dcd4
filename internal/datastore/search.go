package datastore

import (
	"sort"
	"strings"
)

// similarity scores how well a query matches a piece of text, in [0, 1].
// Shared words dominate, then substring containment, then a
// longest-common-subsequence ratio as the fuzzy fallback.
func similarity(query, text string) float64 {
	q := strings.ToLower(query)
	t := strings.ToLower(text)

	qWords := wordSet(q)
	tWords := wordSet(t)
	matches := 0
	for w := range qWords {
		if tWords[w] {
			matches++
		}
	}
	if matches > 0 && len(qWords) > 0 {
		return 0.5 + float64(matches)/float64(len(qWords))*0.5
	}

	if strings.Contains(t, q) || strings.Contains(q, t) {
		return 0.7
	}

	return lcsRatio(q, t)
}

func wordSet(s string) map[string]bool {
	out := map[string]bool{}
	for _, w := range strings.Fields(s) {
		out[w] = true
	}
	return out
}

// lcsRatio is 2*LCS(a,b) / (len(a)+len(b)), a cheap fuzzy match for
// short registry strings.
func lcsRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return 2 * float64(prev[len(b)]) / float64(len(a)+len(b))
}

// SearchSites ranks registry sites against a free-text query. A literal
// site id appearing in the query boosts that site's score.
func (m *Metadata) SearchSites(query string, n int) []SiteInfo {
	type scored struct {
		score float64
		site  SiteInfo
	}
	ranked := make([]scored, 0, len(m.Sites))
	for _, site := range m.Sites {
		score := similarity(query, site.Description)
		if site.SiteID != "" && strings.Contains(query, site.SiteID) {
			score += 0.5
		}
		ranked = append(ranked, scored{score, site})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]SiteInfo, n)
	for i := range out {
		out[i] = ranked[i].site
	}
	return out
}

// SearchColumns ranks column metadata against a free-text query.
func (m *Metadata) SearchColumns(query string, n int) []ColumnInfo {
	type scored struct {
		score float64
		col   ColumnInfo
	}
	ranked := make([]scored, 0, len(m.Columns))
	for _, col := range m.Columns {
		score := similarity(query, col.ColumnName+" "+col.Description)
		ranked = append(ranked, scored{score, col})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]ColumnInfo, n)
	for i := range out {
		out[i] = ranked[i].col
	}
	return out
}

// SimilarExamples ranks seeded example questions against a query.
func (m *Metadata) SimilarExamples(query string, n int) []QueryExample {
	type scored struct {
		score float64
		ex    QueryExample
	}
	ranked := make([]scored, 0, len(m.Examples))
	for _, ex := range m.Examples {
		ranked = append(ranked, scored{similarity(query, ex.Question), ex})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]QueryExample, n)
	for i := range out {
		out[i] = ranked[i].ex
	}
	return out
}
