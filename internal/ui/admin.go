package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/MoldQuote/internal/model"
	"github.com/piwi3910/MoldQuote/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	// Helper to create a float entry bound to a pointer
	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.1f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
			}
		}
		return e
	}

	materialSelect := widget.NewSelect(model.MaterialIDs(), func(selected string) {
		cfg.DefaultMaterial = selected
	})
	materialSelect.SetSelected(cfg.DefaultMaterial)

	finishSelect := widget.NewSelect(model.FinishIDs(), func(selected string) {
		cfg.DefaultFinish = selected
	})
	finishSelect.SetSelected(cfg.DefaultFinish)

	supplierSelect := widget.NewSelect(model.SupplierNames(), func(selected string) {
		cfg.DefaultSupplier = selected
	})
	supplierSelect.SetSelected(cfg.DefaultSupplier)

	plateSelect := widget.NewSelect(model.PlateMaterialNames(), func(selected string) {
		cfg.DefaultPlateMaterial = selected
	})
	plateSelect.SetSelected(cfg.DefaultPlateMaterial)

	// Theme selector
	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Mold Material", materialSelect),
		widget.NewFormItem("Default Surface Finish", finishSelect),
		widget.NewFormItem("Default Mold Base Supplier", supplierSelect),
		widget.NewFormItem("Default Plate Material", plateSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default 3-Axis Rate (EUR/h)", floatEntry(&cfg.DefaultRates.CNC3Axis)),
		widget.NewFormItem("Default 5-Axis Rate (EUR/h)", floatEntry(&cfg.DefaultRates.CNC5Axis)),
		widget.NewFormItem("Default EDM Rate (EUR/h)", floatEntry(&cfg.DefaultRates.EDM)),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			if err := cfg.DefaultRates.Validate(); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.config = cfg
			a.applyTheme()
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 500))
	d.Show()
}

// applyTheme switches the active theme variant to match the config.
func (a *App) applyTheme() {
	if a.appTheme == nil {
		return
	}
	switch a.config.Theme {
	case "light":
		a.appTheme.SetVariant(theme.VariantLight)
	case "dark":
		a.appTheme.SetVariant(theme.VariantDark)
	}
	fyne.CurrentApp().Settings().SetTheme(a.appTheme)
}

// showImportExportDialog displays the import/export data dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportAllData(path, a.config, a.customProfiles, a.records); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("moldquote-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current settings,\nrate profiles and quote history.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					path := reader.URI().Path()
					backup, err := project.ImportAllData(path)
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					a.customProfiles = backup.Profiles
					a.records = backup.History
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					if err := project.SaveCustomProfilesToDefault(a.customProfiles); err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					if err := project.SaveHistory(project.DefaultHistoryPath(), a.records); err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.refreshHistoryList()
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export all application data (settings, rate profiles, quote history)\nto a backup file, or import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
