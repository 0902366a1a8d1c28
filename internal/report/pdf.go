package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/maheshkv/newspulse/pkg/models"
	"github.com/maheshkv/newspulse/pkg/utils"
)

// DefaultFilename returns the export filename for a selection, for
// example "USA_technology_news_report.pdf".
func DefaultFilename(sel models.Selector) string {
	return fmt.Sprintf("%s_news_report.pdf", sel.Key())
}

// WritePDF renders the scored records into a paginated PDF report at
// outPath. When chartPath names an existing PNG it is appended on its
// own page; a missing chart is skipped silently so the report never
// fails on a rendering problem upstream.
//
// An empty record set is an error, as is an unscored record: exporting
// requires fully scored data on screen.
func WritePDF(records []models.NewsRecord, sel models.Selector, chartPath, outPath string) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to export")
	}
	for _, r := range records {
		if !r.Scored() {
			return fmt.Errorf("record %q has no sentiment score", r.Title)
		}
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Title block.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "News Sentiment Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	subtitle := fmt.Sprintf("%s / %s — %d headlines", sel.Country, sel.Category, len(records))
	pdf.CellFormat(0, 8, tr(subtitle), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, r := range records {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, tr(r.Title), "", "L", false)

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(90, 90, 90)
		bucket, _ := r.Bucket()
		meta := fmt.Sprintf("Source: %s | Date: %s | Sentiment: %.3f (%s)",
			r.Source, utils.FormatDate(r.PublishedAt), *r.Sentiment, bucket)
		pdf.MultiCell(0, 5, tr(meta), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(3)
	}

	if chartPath != "" {
		if _, err := os.Stat(chartPath); err == nil {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "B", 14)
			pdf.CellFormat(0, 10, "Sentiment Breakdown", "", 1, "C", false, 0, "")
			pdf.ImageOptions(chartPath, 40, 40, 130, 0, false,
				fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		}
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write PDF: %w", err)
	}
	return nil
}
