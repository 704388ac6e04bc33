package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/MoldQuote/internal/geometry"
	"github.com/piwi3910/MoldQuote/internal/model"
)

// buildTestReport creates a realistic quote report for testing.
func buildTestReport(t *testing.T) QuoteReport {
	t.Helper()

	mesh := testCubeMesh(10)
	stats, err := geometry.ComputeStats(mesh)
	if err != nil {
		t.Fatalf("ComputeStats: %v", err)
	}

	req := model.NewQuoteRequest(stats.VolumeCm3())
	req.Quantity = 25
	req.MoldBase.HotRunner = true
	quote, err := model.ComputeQuote(req)
	if err != nil {
		t.Fatalf("ComputeQuote: %v", err)
	}

	return NewQuoteReport("Bracket mold", "/parts/bracket.stl", mesh, stats, req, quote)
}

// testCubeMesh builds a closed cube with outward winding.
func testCubeMesh(side float64) *geometry.Mesh {
	s := side
	v := []geometry.Vector3{
		{X: 0, Y: 0, Z: 0}, {X: s, Y: 0, Z: 0}, {X: s, Y: s, Z: 0}, {X: 0, Y: s, Z: 0},
		{X: 0, Y: 0, Z: s}, {X: s, Y: 0, Z: s}, {X: s, Y: s, Z: s}, {X: 0, Y: s, Z: s},
	}
	faces := [][3]int{
		{0, 2, 1}, {0, 3, 2},
		{4, 5, 6}, {4, 6, 7},
		{0, 1, 5}, {0, 5, 4},
		{2, 3, 7}, {2, 7, 6},
		{1, 2, 6}, {1, 6, 5},
		{3, 0, 4}, {3, 4, 7},
	}
	m := geometry.NewMesh("cube")
	for _, f := range faces {
		m.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, v[f[0]], v[f[1]], v[f[2]]))
	}
	return m
}

func TestExportQuotePDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quote.pdf")

	report := buildTestReport(t)

	if err := ExportQuotePDF(path, report); err != nil {
		t.Fatalf("ExportQuotePDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A one-page quote with an embedded QR image should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportQuotePDF_MinimalReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minimal.pdf")

	req := model.NewQuoteRequest(0)
	quote, err := model.ComputeQuote(req)
	if err != nil {
		t.Fatalf("ComputeQuote: %v", err)
	}
	report := NewQuoteReport("Empty part", "", nil, geometry.Stats{}, req, quote)

	if err := ExportQuotePDF(path, report); err != nil {
		t.Fatalf("ExportQuotePDF returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
}

func TestNewQuoteReportDerivesAnalysis(t *testing.T) {
	report := buildTestReport(t)

	if report.Metrics.Score <= 0 {
		t.Error("expected a positive complexity score")
	}
	if report.Metrics.Difficulty == "" {
		t.Error("expected a difficulty rating")
	}
	if len(report.Manufacturing.ProcessRecommendations) == 0 {
		t.Error("expected at least one process recommendation")
	}
}

func TestQRDataRoundTrips(t *testing.T) {
	report := buildTestReport(t)

	data, err := report.qrData()
	if err != nil {
		t.Fatalf("qrData: %v", err)
	}

	var payload qrPayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		t.Fatalf("QR payload is not valid JSON: %v", err)
	}
	if payload.Project != "Bracket mold" {
		t.Errorf("expected project name in payload, got %q", payload.Project)
	}
	if payload.Total != report.Quote.Total {
		t.Errorf("payload total %f does not match quote total %f", payload.Total, report.Quote.Total)
	}
	if payload.Quantity != 25 {
		t.Errorf("expected quantity 25, got %d", payload.Quantity)
	}
	// 10 mm test cube: raw mesh volume 1000 mm³, payload carries 1 cm³
	if payload.Volume != 1.0 {
		t.Errorf("expected payload volume 1 cm³, got %f", payload.Volume)
	}
}
