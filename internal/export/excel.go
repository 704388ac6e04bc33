package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/MoldQuote/internal/model"
)

const (
	quoteSheet = "Quote"
	bomSheet   = "Mold Base BOM"
)

// ExportQuoteExcel writes the quotation as an Excel workbook with two
// sheets: the quote breakdown and a mold-base bill of materials.
func ExportQuoteExcel(path string, report QuoteReport) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(quoteSheet)
	if err != nil {
		return fmt.Errorf("failed to create quote sheet: %w", err)
	}
	if err := writeQuoteSheet(f, report); err != nil {
		return err
	}

	if _, err := f.NewSheet(bomSheet); err != nil {
		return fmt.Errorf("failed to create BOM sheet: %w", err)
	}
	if err := writeBOMSheet(f, report); err != nil {
		return err
	}

	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	return f.SaveAs(path)
}

func writeQuoteSheet(f *excelize.File, report QuoteReport) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	size := report.Stats.BoundingBox.Size()
	rows := [][2]interface{}{
		{"Project", report.ProjectName},
		{"Part file", report.SourceFile},
		{"", ""},
		{"Volume (cm³)", report.Stats.VolumeCm3()},
		{"Surface area (cm²)", report.Stats.AreaCm2()},
		{"Bounding box (mm)", fmt.Sprintf("%.1f x %.1f x %.1f", size.X, size.Y, size.Z)},
		{"Triangles", report.Stats.FaceCount},
		{"Complexity score", report.Metrics.Score},
		{"Difficulty", string(report.Metrics.Difficulty)},
		{"", ""},
		{"Material", report.Request.Material},
		{"Finish", report.Request.Finish},
		{"Mold base", report.Request.CADBase.Supplier},
		{"Plate material", report.Request.CADBase.PlateMaterial},
		{"Quantity", report.Request.Quantity},
		{"", ""},
		{"Setup fee (EUR)", report.Quote.SetupFee},
		{"Structural cost (EUR)", report.Quote.StructuralCost},
		{"Unit cost (EUR)", report.Quote.UnitCost},
		{"Discount multiplier", report.Quote.DiscountMultiplier},
		{"Total (EUR)", report.Quote.Total},
		{"Price per piece (EUR)", report.Quote.PricePerPiece},
		{"Lead time (days)", report.Quote.LeadTimeDays},
	}

	for i, row := range rows {
		labelCell := fmt.Sprintf("A%d", i+1)
		valueCell := fmt.Sprintf("B%d", i+1)
		if err := f.SetCellValue(quoteSheet, labelCell, row[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(quoteSheet, valueCell, row[1]); err != nil {
			return err
		}
	}

	totalRow := len(rows) - 2
	if err := f.SetCellStyle(quoteSheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("B%d", totalRow), bold); err != nil {
		return err
	}
	return f.SetColWidth(quoteSheet, "A", "A", 26)
}

// writeBOMSheet lists the mold-base line items with their prices so the
// structural cost can be checked against the supplier catalog.
func writeBOMSheet(f *excelize.File, report QuoteReport) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	headers := []string{"Item", "Reference", "Price (EUR)"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(bomSheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(bomSheet, "A1", "C1", bold); err != nil {
		return err
	}

	cad := report.Request.CADBase
	type bomLine struct {
		item  string
		ref   string
		price float64
	}
	var lines []bomLine

	if supplier, err := model.SupplierByName(cad.Supplier); err == nil {
		lines = append(lines, bomLine{"Mold base " + supplier.Name, supplier.Series, supplier.BasePrice})
	}
	if plate, err := model.PlateMaterialByName(cad.PlateMaterial); err == nil {
		lines = append(lines, bomLine{"Plate material", plate.Name, plate.Addon})
	}
	if cad.InsulationPlates {
		lines = append(lines, bomLine{"Insulation plates", "", model.InsulationSurcharge})
	}
	if cad.LiftingHoles {
		lines = append(lines, bomLine{"Lifting holes", "", model.LiftingHolesSurcharge})
	}
	mb := report.Request.MoldBase
	if mb.HotRunner {
		lines = append(lines, bomLine{"Hot runner system", "", model.HotRunnerSurcharge})
	}
	if mb.ConformalCooling {
		lines = append(lines, bomLine{"Conformal cooling channels", "", model.ConformalCoolingSurcharge})
	}
	if mb.DoubleExtraction {
		lines = append(lines, bomLine{"Double extraction", "", model.DoubleExtractionSurcharge})
	}

	for i, line := range lines {
		row := i + 2
		if err := f.SetCellValue(bomSheet, fmt.Sprintf("A%d", row), line.item); err != nil {
			return err
		}
		if err := f.SetCellValue(bomSheet, fmt.Sprintf("B%d", row), line.ref); err != nil {
			return err
		}
		if err := f.SetCellValue(bomSheet, fmt.Sprintf("C%d", row), line.price); err != nil {
			return err
		}
	}

	return f.SetColWidth(bomSheet, "A", "B", 28)
}
