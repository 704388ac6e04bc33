package ui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/MoldQuote/internal/export"
	"github.com/piwi3910/MoldQuote/internal/geometry"
	"github.com/piwi3910/MoldQuote/internal/importer"
	"github.com/piwi3910/MoldQuote/internal/logging"
	"github.com/piwi3910/MoldQuote/internal/model"
	"github.com/piwi3910/MoldQuote/internal/project"
	"github.com/piwi3910/MoldQuote/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window   fyne.Window
	appTheme *MoldQuoteTheme
	config   model.AppConfig

	// Loaded part
	projectName string
	sourceFile  string
	mesh        *geometry.Mesh
	stats       geometry.Stats

	// Quote state
	request model.QuoteRequest
	quote   *model.Quote

	undo           *History
	customProfiles []model.RateProfile
	records        []model.QuoteRecord

	tabs *container.AppTabs

	// UI references for dynamic updates
	partContainer    *fyne.Container
	quoteContainer   *fyne.Container
	historyContainer *fyne.Container
}

func NewApp(window fyne.Window, appTheme *MoldQuoteTheme) *App {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		logging.Warn("cannot load config, using defaults", "err", err)
		config = model.DefaultAppConfig()
	}

	profiles, err := project.LoadCustomProfilesFromDefault()
	if err != nil {
		logging.Warn("cannot load custom rate profiles", "err", err)
	}

	records, err := project.LoadHistory(project.DefaultHistoryPath())
	if err != nil {
		logging.Warn("cannot load quote history", "err", err)
	}

	req := model.NewQuoteRequest(0)
	config.ApplyToRequest(&req)

	return &App{
		window:         window,
		appTheme:       appTheme,
		config:         config,
		projectName:    "Untitled",
		request:        req,
		undo:           NewHistory(),
		customProfiles: profiles,
		records:        records,
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Part...", func() {
			a.openPart()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Open Project...", func() {
			a.loadProject()
		}),
		fyne.NewMenuItem("Save Project...", func() {
			a.saveProject()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Quote as PDF...", func() {
			a.exportPDF()
		}),
		fyne.NewMenuItem("Export Quote as Excel...", func() {
			a.exportExcel()
		}),
		fyne.NewMenuItem("Export Plate Drawing as DXF...", func() {
			a.exportDXF()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", func() {
			a.showSettingsDialog()
		}),
		fyne.NewMenuItem("Import / Export Data...", func() {
			a.showImportExportDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.undoConfig()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.redoConfig()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset Configuration", func() {
			a.pushUndo("Reset Configuration")
			volume := a.request.Volume
			a.request = model.NewQuoteRequest(volume)
			a.config.ApplyToRequest(&a.request)
			a.recompute()
			a.rebuildTabs()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Recompute Quote", func() {
			a.recompute()
			a.tabs.SelectIndex(3) // Switch to Quote tab
		}),
		fyne.NewMenuItem("Part Analysis...", func() {
			a.showAnalysisDialog()
		}),
		fyne.NewMenuItem("Manage Rate Profiles...", func() {
			a.showProfileManager()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About MoldQuote",
		"MoldQuote — Injection Mold Quoting\n\n"+
			"A cross-platform desktop application for estimating\n"+
			"plastic injection mold prices from part geometry.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	partTab := container.NewTabItem("Part", a.buildPartPanel())
	configTab := container.NewTabItem("Configuration", a.buildConfigPanel())
	ratesTab := container.NewTabItem("Rates", a.buildRatesPanel())
	quoteTab := container.NewTabItem("Quote", a.buildQuotePanel())
	historyTab := container.NewTabItem("History", a.buildHistoryPanel())

	a.tabs = container.NewAppTabs(partTab, configTab, ratesTab, quoteTab, historyTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	a.recompute()
	return a.tabs
}

// rebuildTabs recreates the configuration-dependent tabs after the
// request was replaced wholesale (undo, project load, reset).
func (a *App) rebuildTabs() {
	if a.tabs == nil {
		return
	}
	selected := a.tabs.SelectedIndex()
	a.tabs.Items[1].Content = a.buildConfigPanel()
	a.tabs.Items[2].Content = a.buildRatesPanel()
	a.tabs.Refresh()
	a.tabs.SelectIndex(selected)
	a.refreshPartView()
}

// ─── Part Panel ────────────────────────────────────────────

func (a *App) buildPartPanel() fyne.CanvasObject {
	a.partContainer = container.NewStack()
	a.refreshPartView()

	openBtn := widget.NewButtonWithIcon("Open Part...", theme.FolderOpenIcon(), func() {
		a.openPart()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Part Geometry", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			openBtn,
		),
		nil, nil, nil,
		a.partContainer,
	)
}

func (a *App) refreshPartView() {
	if a.partContainer == nil {
		return
	}
	a.partContainer.RemoveAll()
	a.partContainer.Add(widgets.RenderPartPreview(a.mesh, a.stats))
	a.partContainer.Refresh()
}

func (a *App) openPart() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.loadPart(reader.URI().Path())
	}, a.window)
	d.Show()
}

func (a *App) loadPart(path string) {
	result, err := importer.ImportCAD(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	if len(result.Warnings) > 0 {
		dialog.ShowInformation("Import Notice", strings.Join(result.Warnings, "\n"), a.window)
	}

	a.mesh = result.Mesh
	a.stats = result.Stats
	a.sourceFile = path
	a.projectName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	// Mesh coordinates are millimeters; pricing works in cm³
	a.request.Volume = result.Stats.VolumeCm3()
	a.undo.Clear()

	a.rememberRecentFile(path)
	a.recompute()
	a.refreshPartView()
}

func (a *App) rememberRecentFile(path string) {
	recent := []string{path}
	for _, f := range a.config.RecentFiles {
		if f != path && len(recent) < 10 {
			recent = append(recent, f)
		}
	}
	a.config.RecentFiles = recent
	if err := a.saveConfig(); err != nil {
		logging.Warn("cannot save recent files", "err", err)
	}
}

// ─── Configuration Panel ───────────────────────────────────

func (a *App) buildConfigPanel() fyne.CanvasObject {
	req := &a.request

	materialSelect := widget.NewSelect(model.MaterialIDs(), func(selected string) {
		if selected == req.Material {
			return
		}
		a.pushUndo("Change Material")
		req.Material = selected
		a.recompute()
	})
	materialSelect.SetSelected(req.Material)

	finishSelect := widget.NewSelect(model.FinishIDs(), func(selected string) {
		if selected == req.Finish {
			return
		}
		a.pushUndo("Change Finish")
		req.Finish = selected
		a.recompute()
	})
	finishSelect.SetSelected(req.Finish)

	qtyEntry := widget.NewEntry()
	qtyEntry.SetText(strconv.Itoa(req.Quantity))
	qtyEntry.OnChanged = func(text string) {
		if q, err := strconv.Atoi(text); err == nil && q > 0 && q != req.Quantity {
			a.pushUndo("Change Quantity")
			req.Quantity = q
			a.recompute()
		}
	}

	partSection := widget.NewCard("Part", "", container.NewGridWithColumns(2,
		widget.NewLabel("Mold Material"), materialSelect,
		widget.NewLabel("Surface Finish"), finishSelect,
		widget.NewLabel("Quantity"), qtyEntry,
	))

	featureCheck := func(label string, val *bool) *widget.Check {
		c := widget.NewCheck("", func(b bool) {
			if b == *val {
				return
			}
			a.pushUndo(label)
			*val = b
			a.recompute()
		})
		c.Checked = *val
		return c
	}

	featureSection := widget.NewCard("Mold Features", "", container.NewGridWithColumns(2,
		widget.NewLabel("Hot Runner"), featureCheck("Toggle Hot Runner", &req.MoldBase.HotRunner),
		widget.NewLabel("Conformal Cooling"), featureCheck("Toggle Conformal Cooling", &req.MoldBase.ConformalCooling),
		widget.NewLabel("Double Extraction"), featureCheck("Toggle Double Extraction", &req.MoldBase.DoubleExtraction),
	))

	supplierSelect := widget.NewSelect(model.SupplierNames(), func(selected string) {
		if selected == req.CADBase.Supplier {
			return
		}
		a.pushUndo("Change Mold Base")
		req.CADBase.Supplier = selected
		a.recompute()
	})
	supplierSelect.SetSelected(req.CADBase.Supplier)

	plateSelect := widget.NewSelect(model.PlateMaterialNames(), func(selected string) {
		if selected == req.CADBase.PlateMaterial {
			return
		}
		a.pushUndo("Change Plate Material")
		req.CADBase.PlateMaterial = selected
		a.recompute()
	})
	plateSelect.SetSelected(req.CADBase.PlateMaterial)

	baseSection := widget.NewCard("Mold Base", "", container.NewGridWithColumns(2,
		widget.NewLabel("Supplier"), supplierSelect,
		widget.NewLabel("Plate Material"), plateSelect,
		widget.NewLabel("Insulation Plates"), featureCheck("Toggle Insulation Plates", &req.CADBase.InsulationPlates),
		widget.NewLabel("Lifting Holes"), featureCheck("Toggle Lifting Holes", &req.CADBase.LiftingHoles),
	))

	return container.NewVScroll(container.NewVBox(
		partSection,
		featureSection,
		baseSection,
	))
}

// ─── Rates Panel ───────────────────────────────────────────

func (a *App) buildRatesPanel() fyne.CanvasObject {
	rates := &a.request.Rates

	// Helper to create a bound float entry
	floatEntry := func(val *float64, label string) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.1f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil && v >= 0 && v != *val {
				a.pushUndo(label)
				*val = v
				a.recompute()
			}
		}
		return e
	}

	rateSection := widget.NewCard("Hourly Machine Rates (EUR/h)", "", container.NewGridWithColumns(2,
		widget.NewLabel("3-Axis CNC"), floatEntry(&rates.CNC3Axis, "Change 3-Axis Rate"),
		widget.NewLabel("5-Axis CNC"), floatEntry(&rates.CNC5Axis, "Change 5-Axis Rate"),
		widget.NewLabel("EDM"), floatEntry(&rates.EDM, "Change EDM Rate"),
	))

	aggrSlider := widget.NewSlider(0, 1)
	aggrSlider.Step = 0.05
	aggrSlider.Value = rates.Aggressiveness
	aggrSlider.OnChanged = func(v float64) {
		rates.Aggressiveness = v
		a.recompute()
	}

	marginSlider := widget.NewSlider(0, 0.3)
	marginSlider.Step = 0.01
	marginSlider.Value = rates.Margin
	marginSlider.OnChanged = func(v float64) {
		rates.Margin = v
		a.recompute()
	}

	tuningSection := widget.NewCard("Quoting Strategy",
		"Higher aggressiveness quotes lower to win the bid",
		container.NewGridWithColumns(2,
			widget.NewLabel("Aggressiveness"), aggrSlider,
			widget.NewLabel("Material Margin"), marginSlider,
		))

	profileNames := make([]string, 0, len(model.BuiltInRateProfiles)+len(a.customProfiles))
	for _, p := range model.BuiltInRateProfiles {
		profileNames = append(profileNames, p.Name)
	}
	for _, p := range a.customProfiles {
		profileNames = append(profileNames, p.Name)
	}

	profileSelect := widget.NewSelect(profileNames, func(selected string) {
		profile, ok := a.profileByName(selected)
		if !ok {
			return
		}
		a.pushUndo("Apply Rate Profile")
		a.request.Rates = profile.Rates
		a.recompute()
		a.rebuildTabs()
		a.tabs.SelectIndex(2)
	})
	profileSelect.PlaceHolder = "Apply a saved profile..."

	manageBtn := widget.NewButtonWithIcon("Manage Profiles", theme.SettingsIcon(), func() {
		a.showProfileManager()
	})

	profileSection := widget.NewCard("Rate Profiles", "",
		container.NewGridWithColumns(2,
			widget.NewLabel("Profile"), container.NewBorder(nil, nil, nil, manageBtn, profileSelect),
		))

	return container.NewVScroll(container.NewVBox(
		rateSection,
		tuningSection,
		profileSection,
	))
}

func (a *App) profileByName(name string) (model.RateProfile, bool) {
	for _, p := range model.BuiltInRateProfiles {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range a.customProfiles {
		if p.Name == name {
			return p, true
		}
	}
	return model.RateProfile{}, false
}

// ─── Quote Panel ───────────────────────────────────────────

func (a *App) buildQuotePanel() fyne.CanvasObject {
	a.quoteContainer = container.NewStack(
		widget.NewLabel("No quote yet. Open a part file to begin."),
	)

	saveBtn := widget.NewButtonWithIcon("Save to History", theme.DocumentSaveIcon(), func() {
		a.saveToHistory()
	})
	pdfBtn := newButtonWithTooltip("PDF", theme.DocumentIcon(),
		"Export the quote as a printable PDF document", func() { a.exportPDF() })
	excelBtn := newButtonWithTooltip("Excel", theme.GridIcon(),
		"Export the quote and mold base BOM as an Excel workbook", func() { a.exportExcel() })
	dxfBtn := newButtonWithTooltip("DXF", theme.FileImageIcon(),
		"Export the cavity plate layout as a DXF drawing", func() { a.exportDXF() })

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Price Quote", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			pdfBtn,
			excelBtn,
			dxfBtn,
			saveBtn,
		),
		nil, nil, nil,
		a.quoteContainer,
	)
}

func (a *App) refreshQuoteView() {
	if a.quoteContainer == nil {
		return
	}
	a.quoteContainer.RemoveAll()

	if a.quote == nil {
		a.quoteContainer.Add(widget.NewLabel("No quote yet. Open a part file to begin."))
		a.quoteContainer.Refresh()
		return
	}

	q := a.quote
	row := func(label, value string, bold bool) fyne.CanvasObject {
		l := widget.NewLabel(label)
		v := widget.NewLabel(value)
		if bold {
			l.TextStyle = fyne.TextStyle{Bold: true}
			v.TextStyle = fyne.TextStyle{Bold: true}
		}
		return container.NewGridWithColumns(2, l, v)
	}

	breakdown := container.NewVBox(
		row("Setup fee", fmt.Sprintf("%.2f EUR", q.SetupFee), false),
		row("Mold base (structural)", fmt.Sprintf("%.2f EUR", q.StructuralCost), false),
		row("Unit machining cost", fmt.Sprintf("%.2f EUR", q.UnitCost), false),
		row("Rate factor", fmt.Sprintf("%.3f", q.RateFactor), false),
		row("Aggressiveness factor", fmt.Sprintf("%.3f", q.AggressivenessFactor), false),
		row(fmt.Sprintf("Quantity discount (%d pcs)", q.Quantity), fmt.Sprintf("x %.2f", q.DiscountMultiplier), false),
		widget.NewSeparator(),
		row("Total", fmt.Sprintf("%.2f EUR", q.Total), true),
		row("Price per piece", fmt.Sprintf("%.2f EUR", q.PricePerPiece), false),
		row("Estimated lead time", fmt.Sprintf("%d working days", q.LeadTimeDays), false),
	)

	a.quoteContainer.Add(container.NewVScroll(container.NewVBox(
		widget.NewCard(a.projectName, fmt.Sprintf("%.2f cm³ part volume", a.request.Volume), breakdown),
	)))
	a.quoteContainer.Refresh()
}

// recompute runs the pricing engine against the current request and
// refreshes the quote view. Invalid configurations surface immediately.
func (a *App) recompute() {
	quote, err := model.ComputeQuote(a.request)
	if err != nil {
		a.quote = nil
		a.refreshQuoteView()
		dialog.ShowError(err, a.window)
		return
	}
	a.quote = &quote
	a.refreshQuoteView()
}

func (a *App) saveToHistory() {
	if a.quote == nil {
		dialog.ShowInformation("No quote", "Open a part and compute a quote first.", a.window)
		return
	}
	record := model.NewQuoteRecord(a.sourceFile, a.stats, a.request, *a.quote)
	records, err := project.AppendHistory(project.DefaultHistoryPath(), record)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.records = records
	a.refreshHistoryList()
	dialog.ShowInformation("Saved", "Quote added to history.", a.window)
}

// ─── History Panel ─────────────────────────────────────────

func (a *App) buildHistoryPanel() fyne.CanvasObject {
	a.historyContainer = container.NewVBox()
	a.refreshHistoryList()

	return container.NewBorder(
		widget.NewLabelWithStyle("Saved Quotes", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		container.NewVScroll(a.historyContainer),
	)
}

func (a *App) refreshHistoryList() {
	if a.historyContainer == nil {
		return
	}
	a.historyContainer.RemoveAll()

	if len(a.records) == 0 {
		a.historyContainer.Add(widget.NewLabel("No saved quotes yet."))
		return
	}

	header := container.NewGridWithColumns(6,
		widget.NewLabelWithStyle("Date", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Part", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Material", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Qty", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Total", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.historyContainer.Add(header)
	a.historyContainer.Add(widget.NewSeparator())

	for i := range a.records {
		rec := a.records[i]
		name := filepath.Base(rec.SourceFile)
		if name == "." {
			name = "(no file)"
		}
		row := container.NewGridWithColumns(6,
			widget.NewLabel(rec.CreatedAt),
			widget.NewLabel(name),
			widget.NewLabel(rec.Request.Material),
			widget.NewLabel(fmt.Sprintf("%d", rec.Quote.Quantity)),
			widget.NewLabel(fmt.Sprintf("%.2f EUR", rec.Quote.Total)),
			newIconButtonWithTooltip(theme.DeleteIcon(), "Delete this record", func() {
				records, err := project.RemoveHistoryEntry(project.DefaultHistoryPath(), rec.ID)
				if err != nil {
					dialog.ShowError(err, a.window)
					return
				}
				a.records = records
				a.refreshHistoryList()
			}),
		)
		a.historyContainer.Add(row)
	}
}

// ─── Undo / Redo ───────────────────────────────────────────

func (a *App) pushUndo(label string) {
	a.undo.Push(MakeSnapshot(a.request, label))
}

func (a *App) undoConfig() {
	restored, ok := a.undo.Undo(MakeSnapshot(a.request, "current"))
	if !ok {
		return
	}
	a.request = restored.Request
	a.recompute()
	a.rebuildTabs()
}

func (a *App) redoConfig() {
	restored, ok := a.undo.Redo(MakeSnapshot(a.request, "current"))
	if !ok {
		return
	}
	a.request = restored.Request
	a.recompute()
	a.rebuildTabs()
}

// ─── Project Save / Load ───────────────────────────────────

func (a *App) saveProject() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		proj := model.QuoteProject{
			Name:       a.projectName,
			SourceFile: a.sourceFile,
			Request:    a.request,
			Quote:      a.quote,
		}
		if a.mesh != nil {
			stats := a.stats
			proj.Stats = &stats
		}
		if _, err := project.SaveProject(writer.URI().Path(), proj); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName(a.projectName + project.ProjectExtension)
	d.Show()
}

func (a *App) loadProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		proj, err := project.LoadProject(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.projectName = proj.Name
		a.sourceFile = proj.SourceFile
		a.request = proj.Request
		a.quote = proj.Quote
		if proj.Stats != nil {
			a.stats = *proj.Stats
		}
		a.mesh = nil
		// The mesh itself is not persisted; reload it when available.
		if proj.SourceFile != "" {
			if result, err := importer.ImportCAD(proj.SourceFile); err == nil {
				a.mesh = result.Mesh
				a.stats = result.Stats
			} else {
				logging.Warn("cannot reload part file", "path", proj.SourceFile, "err", err)
			}
		}
		a.undo.Clear()
		a.recompute()
		a.rebuildTabs()
	}, a.window)
	d.Show()
}

// ─── Export Actions ────────────────────────────────────────

func (a *App) buildReport() (export.QuoteReport, bool) {
	if a.quote == nil {
		dialog.ShowInformation("No quote", "Open a part and compute a quote first.", a.window)
		return export.QuoteReport{}, false
	}
	return export.NewQuoteReport(a.projectName, a.sourceFile, a.mesh, a.stats, a.request, *a.quote), true
}

func (a *App) exportPDF() {
	report, ok := a.buildReport()
	if !ok {
		return
	}
	a.saveExportFile(a.projectName+"-quote.pdf", func(path string) error {
		return export.ExportQuotePDF(path, report)
	})
}

func (a *App) exportExcel() {
	report, ok := a.buildReport()
	if !ok {
		return
	}
	a.saveExportFile(a.projectName+"-quote.xlsx", func(path string) error {
		return export.ExportQuoteExcel(path, report)
	})
}

func (a *App) exportDXF() {
	if a.mesh == nil {
		dialog.ShowInformation("No part", "Open a part file first.", a.window)
		return
	}
	stats := a.stats
	a.saveExportFile(a.projectName+"-plate.dxf", func(path string) error {
		return export.ExportPlateDXF(path, stats, export.DefaultPlateMargin)
	})
}

func (a *App) saveExportFile(defaultName string, write func(path string) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := write(path); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Saved to %s", path), a.window)
		}
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}
