// Package report renders the presentation artifacts for a scored result
// set: the filterable headline table, the sentiment pie chart, and the
// PDF export.
package report

import (
	"sort"

	"github.com/maheshkv/newspulse/internal/sentiment"
	"github.com/maheshkv/newspulse/pkg/models"
)

// Table is a view over a result set that supports filtering by source.
// Rows stay ordered newest first regardless of the active filter.
type Table struct {
	records []models.NewsRecord
}

// NewTable creates a table over the given records. The input is copied
// and sorted newest first.
func NewTable(records []models.NewsRecord) *Table {
	rows := make([]models.NewsRecord, len(records))
	copy(rows, records)
	sort.SliceStable(rows, func(i, j int) bool {
		ti, tj := rows[i].PublishedAt, rows[j].PublishedAt
		if ti.IsZero() != tj.IsZero() {
			return !ti.IsZero()
		}
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return rows[i].Title < rows[j].Title
	})
	return &Table{records: rows}
}

// Records returns all rows, newest first.
func (t *Table) Records() []models.NewsRecord {
	out := make([]models.NewsRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.records) }

// Sources returns the distinct source names present in the table,
// sorted alphabetically.
func (t *Table) Sources() []string {
	seen := make(map[string]struct{})
	for _, r := range t.records {
		seen[r.Source] = struct{}{}
	}
	sources := make([]string, 0, len(seen))
	for s := range seen {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	return sources
}

// FilterSources returns the rows whose source is in the given set,
// preserving order. A nil set means no filter (all rows); an empty
// non-nil set selects nothing, matching a user who unticked every box.
func (t *Table) FilterSources(sources []string) []models.NewsRecord {
	if sources == nil {
		return t.Records()
	}
	allowed := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		allowed[s] = struct{}{}
	}

	var out []models.NewsRecord
	for _, r := range t.records {
		if _, ok := allowed[r.Source]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Summary computes the sentiment breakdown over the filtered rows.
func (t *Table) Summary(sources []string) sentiment.Summary {
	return sentiment.Summarize(t.FilterSources(sources))
}
