package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/maheshkv/newspulse/internal/sentiment"
	"github.com/maheshkv/newspulse/pkg/models"
)

func score(v float64) *float64 { return &v }

func sampleRecords() []models.NewsRecord {
	day := func(d int) time.Time {
		return time.Date(2024, 5, d, 12, 0, 0, 0, time.UTC)
	}
	return []models.NewsRecord{
		{Title: "economy grows strongly", Source: "The Guardian", PublishedAt: day(3), Sentiment: score(1)},
		{Title: "storm causes damage", Source: "reuters", PublishedAt: day(2), Sentiment: score(-1)},
		{Title: "council meets tuesday", Source: "The Guardian", PublishedAt: day(1), Sentiment: score(0)},
	}
}

// --- Table ---

func TestTableSortsNewestFirst(t *testing.T) {
	tbl := NewTable([]models.NewsRecord{
		{Title: "oldest", PublishedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{Title: "undated"},
		{Title: "newest", PublishedAt: time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC)},
	})

	rows := tbl.Records()
	if rows[0].Title != "newest" {
		t.Errorf("first row: got %q, want newest", rows[0].Title)
	}
	if rows[2].Title != "undated" {
		t.Errorf("last row: got %q, want the undated record", rows[2].Title)
	}
}

func TestTableSources(t *testing.T) {
	tbl := NewTable(sampleRecords())

	got := tbl.Sources()
	want := []string{"The Guardian", "reuters"}
	if len(got) != len(want) {
		t.Fatalf("sources: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sources[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTableFilterSources(t *testing.T) {
	tbl := NewTable(sampleRecords())

	if got := tbl.FilterSources(nil); len(got) != 3 {
		t.Errorf("nil filter: got %d rows, want all 3", len(got))
	}
	if got := tbl.FilterSources([]string{}); len(got) != 0 {
		t.Errorf("empty filter: got %d rows, want none", len(got))
	}

	guardianOnly := tbl.FilterSources([]string{"The Guardian"})
	if len(guardianOnly) != 2 {
		t.Fatalf("guardian filter: got %d rows, want 2", len(guardianOnly))
	}
	for _, r := range guardianOnly {
		if r.Source != "The Guardian" {
			t.Errorf("filtered row has source %q", r.Source)
		}
	}
}

func TestTableSummaryFollowsFilter(t *testing.T) {
	tbl := NewTable(sampleRecords())

	full := tbl.Summary(nil)
	if full.Positive != 1 || full.Neutral != 1 || full.Negative != 1 {
		t.Errorf("full summary: got %+v", full)
	}

	filtered := tbl.Summary([]string{"reuters"})
	if filtered.Negative != 1 || filtered.Total() != 1 {
		t.Errorf("filtered summary: got %+v", filtered)
	}
}

// --- Chart ---

func TestRenderPieChart(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPieChart(&buf, sentiment.Summary{Positive: 3, Neutral: 2, Negative: 1})
	if err != nil {
		t.Fatalf("RenderPieChart: %v", err)
	}

	png := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(buf.Bytes(), png) {
		t.Error("output does not start with a PNG signature")
	}
}

func TestRenderPieChartSkipsZeroBuckets(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPieChart(&buf, sentiment.Summary{Positive: 5}); err != nil {
		t.Fatalf("single-bucket chart: %v", err)
	}
}

func TestRenderPieChartEmptySummary(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPieChart(&buf, sentiment.Summary{}); err == nil {
		t.Error("expected error for a summary with no scored records")
	}
}

func TestWriteChartPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "chart.png")
	if err := WriteChartPNG(path, sentiment.Summary{Positive: 1, Negative: 1}); err != nil {
		t.Fatalf("WriteChartPNG: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read chart: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("chart file is not a PNG")
	}
}

// --- PDF ---

func exportSelector() models.Selector {
	return models.Selector{Country: models.CountryUSA, Category: models.CategoryTechnology}
}

func TestWritePDF(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, DefaultFilename(exportSelector()))

	if err := WritePDF(sampleRecords(), exportSelector(), "", out); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read PDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestWritePDFWithChart(t *testing.T) {
	dir := t.TempDir()
	chartPath := filepath.Join(dir, "chart.png")
	if err := WriteChartPNG(chartPath, sentiment.Summary{Positive: 2, Negative: 1}); err != nil {
		t.Fatalf("WriteChartPNG: %v", err)
	}

	out := filepath.Join(dir, "report.pdf")
	if err := WritePDF(sampleRecords(), exportSelector(), chartPath, out); err != nil {
		t.Fatalf("WritePDF with chart: %v", err)
	}
}

func TestWritePDFMissingChartIsSkipped(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.pdf")

	err := WritePDF(sampleRecords(), exportSelector(), filepath.Join(dir, "nope.png"), out)
	if err != nil {
		t.Fatalf("missing chart should not fail the export: %v", err)
	}
}

func TestWritePDFOverwrites(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.pdf")

	if err := WritePDF(sampleRecords(), exportSelector(), "", out); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WritePDF(sampleRecords()[:1], exportSelector(), "", out); err != nil {
		t.Fatalf("second write: %v", err)
	}
}

func TestWritePDFEmptyRecords(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.pdf")
	if err := WritePDF(nil, exportSelector(), "", out); err == nil {
		t.Error("expected error for empty record set")
	}
}

func TestWritePDFUnscoredRecord(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.pdf")
	records := []models.NewsRecord{{Title: "never scored", Source: "alpha"}}
	if err := WritePDF(records, exportSelector(), "", out); err == nil {
		t.Error("expected error for an unscored record")
	}
}

func TestDefaultFilename(t *testing.T) {
	got := DefaultFilename(exportSelector())
	if got != "USA_technology_news_report.pdf" {
		t.Errorf("DefaultFilename: got %q", got)
	}
}
