package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/maheshkv/newspulse/internal/config"
	"github.com/maheshkv/newspulse/internal/report"
	"github.com/maheshkv/newspulse/internal/sentiment"
	"github.com/maheshkv/newspulse/pkg/models"
)

// ============================================================
// Request / Response types
// ============================================================

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// NewsResponse is the payload for GET /api/v1/news.
type NewsResponse struct {
	Provenance models.Provenance   `json:"provenance"`
	Provider   string              `json:"provider"`
	Count      int                 `json:"count"`
	Sources    []string            `json:"sources"`
	Records    []models.NewsRecord `json:"records"`
}

// SummaryResponse is the payload for GET /api/v1/summary.
type SummaryResponse struct {
	Provenance models.Provenance `json:"provenance"`
	Provider   string            `json:"provider"`
	Summary    sentiment.Summary `json:"summary"`
	Total      int               `json:"total"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":      "ok",
			"providers":   s.reg.Names(),
			"cached_keys": s.pipe.Cache().Len(),
		},
	})
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelector(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.pipe.Fetch(r.Context(), sel)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if res.Unavailable() {
		writeError(w, http.StatusServiceUnavailable,
			fmt.Sprintf("no data available for %s / %s", sel.Country, sel.Category))
		return
	}

	tbl := report.NewTable(res.Records)
	rows := tbl.FilterSources(parseSources(r))
	if rows == nil {
		rows = []models.NewsRecord{}
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: NewsResponse{
			Provenance: res.Provenance,
			Provider:   res.Provider,
			Count:      len(rows),
			Sources:    tbl.Sources(),
			Records:    rows,
		},
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelector(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.pipe.Fetch(r.Context(), sel)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if res.Unavailable() {
		writeError(w, http.StatusServiceUnavailable,
			fmt.Sprintf("no data available for %s / %s", sel.Country, sel.Category))
		return
	}

	summary := report.NewTable(res.Records).Summary(parseSources(r))
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: SummaryResponse{
			Provenance: res.Provenance,
			Provider:   res.Provider,
			Summary:    summary,
			Total:      summary.Total(),
		},
	})
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelector(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.pipe.Fetch(r.Context(), sel)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if res.Unavailable() {
		writeError(w, http.StatusServiceUnavailable,
			fmt.Sprintf("no data available for %s / %s", sel.Country, sel.Category))
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]interface{}{"sources": report.NewTable(res.Records).Sources()},
	})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelector(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.pipe.Fetch(r.Context(), sel)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if res.Unavailable() {
		writeError(w, http.StatusServiceUnavailable,
			fmt.Sprintf("no data available for %s / %s", sel.Country, sel.Category))
		return
	}

	summary := report.NewTable(res.Records).Summary(parseSources(r))
	if summary.Total() == 0 {
		writeError(w, http.StatusNotFound, "no scored records to chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	if err := report.RenderPieChart(w, summary); err != nil {
		s.log.Errorw("chart render failed", "key", sel.Key(), "error", err)
	}
}

// handleExport renders the current selection into a PDF report and
// serves it as a download. Exporting needs data: an unavailable
// selection is a conflict, not a server error.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelector(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.pipe.Fetch(r.Context(), sel)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if res.Unavailable() {
		writeError(w, http.StatusConflict,
			fmt.Sprintf("cannot export: no data for %s / %s", sel.Country, sel.Category))
		return
	}

	tbl := report.NewTable(res.Records)
	rows := tbl.FilterSources(parseSources(r))
	if len(rows) == 0 {
		writeError(w, http.StatusConflict, "cannot export: the active filter selects no headlines")
		return
	}

	outDir := s.cfg.Export.OutputDir
	chartPath := filepath.Join(outDir, s.cfg.Export.ChartFile)
	if err := report.WriteChartPNG(chartPath, sentiment.Summarize(rows)); err != nil {
		// The PDF still renders without its chart page.
		s.log.Warnw("chart export failed", "key", sel.Key(), "error", err)
		chartPath = ""
	}

	outPath := filepath.Join(outDir, report.DefaultFilename(sel))
	if err := report.WritePDF(rows, sel, chartPath, outPath); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.log.Infow("exported report", "key", sel.Key(), "path", outPath, "records", len(rows))

	data, err := os.ReadFile(outPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", report.DefaultFilename(sel)))
	w.Write(data) //nolint:errcheck
}

func (s *Server) handleSelections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"countries":  models.Countries(),
			"categories": models.Categories(),
			"providers":  s.reg.Names(),
		},
	})
}

func (s *Server) handleConfigKeys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    config.CheckAPIKeys(s.cfg),
	})
}

// ============================================================
// Helpers
// ============================================================

// parseSelector builds a selector from query parameters, defaulting to
// USA / general.
func parseSelector(r *http.Request) (models.Selector, error) {
	q := r.URL.Query()

	sel := models.Selector{
		Country:  models.CountryUSA,
		Category: models.CategoryGeneral,
		Provider: q.Get("provider"),
	}
	if c := q.Get("country"); c != "" {
		sel.Country = models.Country(c)
	}
	if c := q.Get("category"); c != "" {
		sel.Category = models.Category(c)
	}

	if err := sel.Validate(); err != nil {
		return models.Selector{}, err
	}
	return sel, nil
}

// parseSources reads the sources filter. Absent means no filter (nil);
// present but empty means the user deselected everything.
func parseSources(r *http.Request) []string {
	q := r.URL.Query()
	if _, present := q["sources"]; !present {
		return nil
	}
	raw := q.Get("sources")
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	sources := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sources = append(sources, p)
		}
	}
	return sources
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
