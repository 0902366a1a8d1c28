package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/maheshkv/newspulse/internal/sentiment"
	"github.com/maheshkv/newspulse/pkg/models"
)

// bucketColors assigns each sentiment bucket its fixed slice color.
var bucketColors = map[models.SentimentBucket]drawing.Color{
	models.BucketPositive: drawing.ColorFromHex("2e8b57"),
	models.BucketNeutral:  drawing.ColorFromHex("9e9e9e"),
	models.BucketNegative: drawing.ColorFromHex("c0392b"),
}

// RenderPieChart writes a PNG pie chart of the sentiment breakdown.
// Zero-count buckets are omitted from the pie; a summary with no scored
// records at all is an error because an empty pie renders as nothing.
func RenderPieChart(w io.Writer, summary sentiment.Summary) error {
	if summary.Total() == 0 {
		return fmt.Errorf("no scored records to chart")
	}

	var values []chart.Value
	for _, bc := range summary.Counts() {
		if bc.Count == 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: float64(bc.Count),
			Label: fmt.Sprintf("%s (%d)", bc.Bucket, bc.Count),
			Style: chart.Style{FillColor: bucketColors[bc.Bucket]},
		})
	}

	pie := chart.PieChart{
		Title:  "Headline Sentiment",
		Width:  600,
		Height: 600,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}

// WriteChartPNG renders the pie chart to a file, creating parent
// directories as needed.
func WriteChartPNG(path string, summary sentiment.Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create chart directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := RenderPieChart(f, summary); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
