package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/MoldQuote/internal/analysis"
)

// showAnalysisDialog opens a dialog with the full machinability analysis
// of the loaded part: complexity metrics and process recommendations.
func (a *App) showAnalysisDialog() {
	if a.mesh == nil {
		dialog.ShowInformation("No part", "Open a part file first.", a.window)
		return
	}

	metrics := analysis.Complexity(a.mesh, a.stats)
	report := analysis.Manufacturing(a.stats, metrics)

	size := a.stats.BoundingBox.Size()
	geometrySection := widget.NewCard("Geometry", "",
		container.NewGridWithColumns(2,
			widget.NewLabel("Triangles"), widget.NewLabel(fmt.Sprintf("%d", a.stats.FaceCount)),
			widget.NewLabel("Volume"), widget.NewLabel(fmt.Sprintf("%.2f cm³", a.stats.VolumeCm3())),
			widget.NewLabel("Surface Area"), widget.NewLabel(fmt.Sprintf("%.2f cm²", a.stats.AreaCm2())),
			widget.NewLabel("Bounding Box"), widget.NewLabel(fmt.Sprintf("%.1f x %.1f x %.1f mm", size.X, size.Y, size.Z)),
		))

	complexitySection := widget.NewCard("Complexity",
		fmt.Sprintf("Score %.0f / 100 (%s)", metrics.Score, metrics.Difficulty),
		container.NewGridWithColumns(2,
			widget.NewLabel("Surface / Volume Ratio"), widget.NewLabel(fmt.Sprintf("%.3f", metrics.SurfaceVolumeRatio)),
			widget.NewLabel("Compactness"), widget.NewLabel(fmt.Sprintf("%.3f", metrics.Compactness)),
			widget.NewLabel("Triangle Density"), widget.NewLabel(fmt.Sprintf("%.3f /mm²", metrics.TriangleDensity)),
			widget.NewLabel("Avg. Aspect Ratio"), widget.NewLabel(fmt.Sprintf("%.2f", metrics.AverageAspectRatio)),
		))

	processRows := container.NewVBox()
	for _, rec := range report.ProcessRecommendations {
		processRows.Add(widget.NewLabel("• " + rec))
	}

	manufacturingSection := widget.NewCard("Process Planning", "",
		container.NewVBox(
			container.NewGridWithColumns(2,
				widget.NewLabel("Machining Difficulty"), widget.NewLabel(string(report.MachiningDifficulty)),
				widget.NewLabel("Est. Machining Time"), widget.NewLabel(fmt.Sprintf("%.1f h", report.EstimatedMachiningHours)),
				widget.NewLabel("Suggested Mold Material"), widget.NewLabel(report.MaterialRecommendation),
				widget.NewLabel("Suggested Finish"), widget.NewLabel(report.FinishRecommendation),
			),
			widget.NewSeparator(),
			processRows,
		))

	content := container.NewVScroll(container.NewVBox(
		geometrySection,
		complexitySection,
		manufacturingSection,
	))

	d := dialog.NewCustom("Part Analysis: "+a.projectName, "Close", content, a.window)
	d.Resize(fyne.NewSize(550, 600))
	d.Show()
}
