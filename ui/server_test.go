package ui

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestHandleReport_NotFoundBeforeFirstRun(t *testing.T) {
	s := NewServer(t.TempDir(), zerolog.Nop())

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleReport_RendersMarkdown(t *testing.T) {
	dir := t.TempDir()
	doc := "# Data Analysis Report\n\n## Dataset Overview\n\n| Column | Type |\n|--------|------|\n| price | numeric |\n"
	if err := os.WriteFile(filepath.Join(dir, "data_analysis_report.md"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewServer(dir, zerolog.Nop())

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<h1") || !strings.Contains(body, "Data Analysis Report") {
		t.Errorf("heading not rendered:\n%s", body)
	}
	if !strings.Contains(body, "<table>") || !strings.Contains(body, "<td>price</td>") {
		t.Errorf("table not rendered:\n%s", body)
	}
	if !strings.Contains(body, "</html>") {
		t.Error("page footer missing")
	}
}

func TestChartFiles_ServedUnderVisualizations(t *testing.T) {
	dir := t.TempDir()
	chartsDir := filepath.Join(dir, "visualizations")
	if err := os.MkdirAll(chartsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(chartsDir, "distribution_price.png"), []byte("png bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewServer(dir, zerolog.Nop())

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/visualizations/distribution_price.png", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "png bytes" {
		t.Error("chart bytes not served")
	}
}

func TestChartFiles_UnknownPathIs404(t *testing.T) {
	s := NewServer(t.TempDir(), zerolog.Nop())

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/visualizations/absent.png", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
