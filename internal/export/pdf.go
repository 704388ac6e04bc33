package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/MoldQuote/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 18.0
	marginRight  = 18.0
	marginTop    = 18.0
	marginBottom = 18.0
	contentWidth = pageWidth - marginLeft - marginRight
	qrSize       = 28.0
)

// ExportQuotePDF generates a single-page quotation document: header with
// project identification and QR code, geometry summary, complexity
// analysis, mold configuration and the full cost breakdown.
func ExportQuotePDF(path string, report QuoteReport) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	if err := renderHeader(pdf, report); err != nil {
		return err
	}

	y := marginTop + 34.0
	y = renderGeometrySection(pdf, report, y)
	y = renderAnalysisSection(pdf, report, y)
	y = renderConfigSection(pdf, report, y)
	y = renderCostSection(pdf, report, y)
	renderRecommendations(pdf, report, y)
	renderFooter(pdf)

	return pdf.OutputFileAndClose(path)
}

// renderHeader draws the title block and the QR code that encodes the
// quote summary for re-identification from a printed copy.
func renderHeader(pdf *fpdf.Fpdf, report QuoteReport) error {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth-qrSize-4, 9, "Injection Mold Quotation", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+10)
	pdf.CellFormat(contentWidth-qrSize-4, 5, "Project: "+report.ProjectName, "", 1, "L", false, 0, "")
	if report.SourceFile != "" {
		pdf.SetX(marginLeft)
		pdf.CellFormat(contentWidth-qrSize-4, 5, "Part file: "+filepath.Base(report.SourceFile), "", 1, "L", false, 0, "")
	}
	pdf.SetX(marginLeft)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(contentWidth-qrSize-4, 5, "Date: "+time.Now().Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	data, err := report.qrData()
	if err != nil {
		return err
	}
	qrPNG, err := qrcode.Encode(data, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	pdf.RegisterImageOptionsReader("quote_qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("quote_qr", pageWidth-marginRight-qrSize, marginTop, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+30, pageWidth-marginRight, marginTop+30)
	return nil
}

// sectionTitle draws a section heading and returns the y just below it.
func sectionTitle(pdf *fpdf.Fpdf, title string, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(contentWidth, 7, title, "", 0, "L", false, 0, "")
	return y + 9
}

// keyValueRows renders aligned label/value pairs and returns the next y.
func keyValueRows(pdf *fpdf.Fpdf, rows [][2]string, y float64) float64 {
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(65, 5.5, row[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(80, 5.5, row[1], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 6
	}
	return y
}

func renderGeometrySection(pdf *fpdf.Fpdf, report QuoteReport, y float64) float64 {
	y = sectionTitle(pdf, "Part Geometry", y)
	size := report.Stats.BoundingBox.Size()
	rows := [][2]string{
		{"Volume", fmt.Sprintf("%.2f cm³", report.Stats.VolumeCm3())},
		{"Surface area", fmt.Sprintf("%.2f cm²", report.Stats.AreaCm2())},
		{"Bounding box", fmt.Sprintf("%.1f x %.1f x %.1f mm", size.X, size.Y, size.Z)},
		{"Triangles", fmt.Sprintf("%d", report.Stats.FaceCount)},
	}
	return keyValueRows(pdf, rows, y) + 4
}

func renderAnalysisSection(pdf *fpdf.Fpdf, report QuoteReport, y float64) float64 {
	y = sectionTitle(pdf, "Complexity Analysis", y)
	rows := [][2]string{
		{"Complexity score", fmt.Sprintf("%.1f / 100", report.Metrics.Score)},
		{"Machining difficulty", string(report.Metrics.Difficulty)},
		{"Estimated machining time", fmt.Sprintf("%.1f h", report.Manufacturing.EstimatedMachiningHours)},
	}
	return keyValueRows(pdf, rows, y) + 4
}

func renderConfigSection(pdf *fpdf.Fpdf, report QuoteReport, y float64) float64 {
	y = sectionTitle(pdf, "Mold Configuration", y)

	req := report.Request
	materialName := req.Material
	if m, err := model.MaterialByID(req.Material); err == nil {
		materialName = m.Name
	}
	finishName := req.Finish
	if f, err := model.FinishByID(req.Finish); err == nil {
		finishName = f.Name
	}

	var features []string
	if req.MoldBase.HotRunner {
		features = append(features, "hot runner")
	}
	if req.MoldBase.ConformalCooling {
		features = append(features, "conformal cooling")
	}
	if req.MoldBase.DoubleExtraction {
		features = append(features, "double extraction")
	}
	featureText := "none"
	if len(features) > 0 {
		featureText = ""
		for i, f := range features {
			if i > 0 {
				featureText += ", "
			}
			featureText += f
		}
	}

	rows := [][2]string{
		{"Mold material", materialName},
		{"Surface finish", finishName},
		{"Mold base", req.CADBase.Supplier},
		{"Plate material", req.CADBase.PlateMaterial},
		{"Features", featureText},
		{"Quantity", fmt.Sprintf("%d", req.Quantity)},
	}
	return keyValueRows(pdf, rows, y) + 4
}

func renderCostSection(pdf *fpdf.Fpdf, report QuoteReport, y float64) float64 {
	y = sectionTitle(pdf, "Cost Breakdown", y)
	quote := report.Quote

	colWidths := []float64{100, 40}
	rows := []struct {
		label string
		value string
		bold  bool
	}{
		{"Setup fee", fmt.Sprintf("%.2f EUR", quote.SetupFee), false},
		{"Mold base (structural)", fmt.Sprintf("%.2f EUR", quote.StructuralCost), false},
		{fmt.Sprintf("Machining, %d pcs (x%.2f discount)", quote.Quantity, quote.DiscountMultiplier),
			fmt.Sprintf("%.2f EUR", quote.UnitCost*float64(quote.Quantity)*quote.DiscountMultiplier), false},
		{"Total", fmt.Sprintf("%.2f EUR", quote.Total), true},
		{"Price per piece", fmt.Sprintf("%.2f EUR", quote.PricePerPiece), false},
		{"Estimated lead time", fmt.Sprintf("%d working days", quote.LeadTimeDays), false},
	}

	for i, row := range rows {
		if row.bold {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetFillColor(235, 235, 235)
		} else {
			pdf.SetFont("Helvetica", "", 10)
			if i%2 == 0 {
				pdf.SetFillColor(248, 248, 248)
			} else {
				pdf.SetFillColor(255, 255, 255)
			}
		}
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(colWidths[0], 7, row.label, "1", 0, "L", true, 0, "")
		pdf.CellFormat(colWidths[1], 7, row.value, "1", 0, "R", true, 0, "")
		y += 7
	}
	return y + 6
}

func renderRecommendations(pdf *fpdf.Fpdf, report QuoteReport, y float64) {
	if len(report.Manufacturing.ProcessRecommendations) == 0 {
		return
	}
	y = sectionTitle(pdf, "Process Notes", y)
	pdf.SetFont("Helvetica", "", 9)
	for _, rec := range report.Manufacturing.ProcessRecommendations {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(contentWidth-5, 5, "- "+rec, "", 0, "L", false, 0, "")
		y += 5
	}
}

func renderFooter(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(contentWidth, 4, "Generated by MoldQuote - Injection Mold Quoting", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
