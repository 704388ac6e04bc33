// Package export renders computed quotes to external file formats:
// a PDF quotation document, an Excel workbook and a DXF plate drawing.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/piwi3910/MoldQuote/internal/analysis"
	"github.com/piwi3910/MoldQuote/internal/geometry"
	"github.com/piwi3910/MoldQuote/internal/model"
)

// QuoteReport bundles everything the exporters need to render a full
// quotation: the part geometry, its analysis and the computed quote.
type QuoteReport struct {
	ProjectName   string                       `json:"project_name"`
	SourceFile    string                       `json:"source_file"`
	Stats         geometry.Stats               `json:"stats"`
	Metrics       analysis.ComplexityMetrics   `json:"metrics"`
	Manufacturing analysis.ManufacturingReport `json:"manufacturing"`
	Request       model.QuoteRequest           `json:"request"`
	Quote         model.Quote                  `json:"quote"`
}

// NewQuoteReport assembles a report from a mesh, its statistics and a
// computed quote. Analysis metrics are derived here so every exporter
// shows the same numbers.
func NewQuoteReport(name, sourceFile string, mesh *geometry.Mesh, stats geometry.Stats, req model.QuoteRequest, quote model.Quote) QuoteReport {
	metrics := analysis.Complexity(mesh, stats)
	return QuoteReport{
		ProjectName:   name,
		SourceFile:    sourceFile,
		Stats:         stats,
		Metrics:       metrics,
		Manufacturing: analysis.Manufacturing(stats, metrics),
		Request:       req,
		Quote:         quote,
	}
}

// qrPayload is the compact quote summary encoded into the PDF QR code so
// a quotation can be re-identified from a printed copy.
type qrPayload struct {
	Project  string  `json:"project"`
	Material string  `json:"material"`
	Finish   string  `json:"finish"`
	Quantity int     `json:"qty"`
	Volume   float64 `json:"volume_cm3"`
	Total    float64 `json:"total_eur"`
	LeadTime int     `json:"lead_days"`
}

func (r QuoteReport) qrData() (string, error) {
	payload := qrPayload{
		Project:  r.ProjectName,
		Material: r.Request.Material,
		Finish:   r.Request.Finish,
		Quantity: r.Quote.Quantity,
		Volume:   r.Stats.VolumeCm3(),
		Total:    r.Quote.Total,
		LeadTime: r.Quote.LeadTimeDays,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal QR payload: %w", err)
	}
	return string(data), nil
}
