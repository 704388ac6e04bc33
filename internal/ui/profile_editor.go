package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/MoldQuote/internal/model"
	"github.com/piwi3910/MoldQuote/internal/project"
)

// showProfileManager opens the profile management dialog where users can
// view, create, edit, duplicate, delete, import, and export rate profiles.
func (a *App) showProfileManager() {
	w := fyne.CurrentApp().NewWindow("Rate Profile Manager")
	w.Resize(fyne.NewSize(700, 450))

	var listWidget *widget.List
	var selectedIdx int = -1
	var detailContainer *fyne.Container

	profiles := a.allProfiles()

	detailContainer = container.NewVBox(
		widget.NewLabel("Select a profile to view details."),
	)

	resetDetail := func() {
		profiles = a.allProfiles()
		selectedIdx = -1
		listWidget.Refresh()
		listWidget.UnselectAll()
		detailContainer.RemoveAll()
		detailContainer.Add(widget.NewLabel("Select a profile to view details."))
		detailContainer.Refresh()
		a.rebuildTabs()
	}

	listWidget = widget.NewList(
		func() int {
			return len(profiles)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewIcon(theme.DocumentIcon()),
				widget.NewLabel("Profile Name"),
				widget.NewLabel("(built-in)"),
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			box := obj.(*fyne.Container)
			nameLabel := box.Objects[1].(*widget.Label)
			tagLabel := box.Objects[2].(*widget.Label)
			p := profiles[id]
			nameLabel.SetText(p.Name)
			if p.IsBuiltIn {
				tagLabel.SetText("(built-in)")
			} else {
				tagLabel.SetText("(custom)")
			}
		},
	)

	listWidget.OnSelected = func(id widget.ListItemID) {
		selectedIdx = id
		a.showProfileDetail(detailContainer, profiles[id], w, resetDetail)
	}

	// Action buttons
	newBtn := widget.NewButtonWithIcon("New", theme.ContentAddIcon(), func() {
		a.showNewProfileDialog(w, resetDetail)
	})

	duplicateBtn := widget.NewButtonWithIcon("Duplicate", theme.ContentCopyIcon(), func() {
		if selectedIdx < 0 || selectedIdx >= len(profiles) {
			dialog.ShowInformation("No Selection", "Select a profile to duplicate.", w)
			return
		}
		a.duplicateProfile(profiles[selectedIdx], w, resetDetail)
	})

	importBtn := widget.NewButtonWithIcon("Import", theme.FolderOpenIcon(), func() {
		a.importProfileDialog(w, resetDetail)
	})

	exportBtn := widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), func() {
		if selectedIdx < 0 || selectedIdx >= len(profiles) {
			dialog.ShowInformation("No Selection", "Select a profile to export.", w)
			return
		}
		a.exportProfileDialog(profiles[selectedIdx], w)
	})

	deleteBtn := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() {
		if selectedIdx < 0 || selectedIdx >= len(profiles) {
			dialog.ShowInformation("No Selection", "Select a profile to delete.", w)
			return
		}
		p := profiles[selectedIdx]
		if p.IsBuiltIn {
			dialog.ShowInformation("Cannot Delete", "Built-in profiles cannot be deleted.", w)
			return
		}
		dialog.ShowConfirm("Delete Profile",
			fmt.Sprintf("Delete custom profile %q?", p.Name),
			func(ok bool) {
				if !ok {
					return
				}
				a.removeCustomProfile(p.Name)
				a.persistCustomProfiles(w)
				resetDetail()
			},
			w,
		)
	})

	toolbar := container.NewHBox(newBtn, duplicateBtn, importBtn, exportBtn, deleteBtn)

	listPanel := container.NewBorder(
		widget.NewLabelWithStyle("Profiles", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		toolbar,
		nil, nil,
		listWidget,
	)

	detailScroll := container.NewVScroll(detailContainer)
	detailPanel := container.NewBorder(
		widget.NewLabelWithStyle("Profile Details", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		detailScroll,
	)

	split := container.NewHSplit(listPanel, detailPanel)
	split.SetOffset(0.35)

	w.SetContent(split)
	w.Show()
}

// allProfiles returns built-in profiles followed by the user's custom ones.
func (a *App) allProfiles() []model.RateProfile {
	all := make([]model.RateProfile, 0, len(model.BuiltInRateProfiles)+len(a.customProfiles))
	all = append(all, model.BuiltInRateProfiles...)
	all = append(all, a.customProfiles...)
	return all
}

func (a *App) addCustomProfile(p model.RateProfile) error {
	for _, existing := range a.allProfiles() {
		if existing.Name == p.Name {
			return fmt.Errorf("a profile named %q already exists", p.Name)
		}
	}
	p.IsBuiltIn = false
	a.customProfiles = append(a.customProfiles, p)
	return nil
}

func (a *App) removeCustomProfile(name string) {
	for i, p := range a.customProfiles {
		if p.Name == name {
			a.customProfiles = append(a.customProfiles[:i], a.customProfiles[i+1:]...)
			return
		}
	}
}

// showProfileDetail populates the detail pane with profile information and
// apply/edit buttons.
func (a *App) showProfileDetail(c *fyne.Container, p model.RateProfile, w fyne.Window, onChanged func()) {
	c.RemoveAll()

	info := container.NewVBox(
		widget.NewLabelWithStyle(p.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(p.Description),
		widget.NewSeparator(),

		widget.NewLabelWithStyle("Hourly Rates", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2,
			widget.NewLabel("3-Axis CNC:"), widget.NewLabel(fmt.Sprintf("%.2f EUR/h", p.Rates.CNC3Axis)),
			widget.NewLabel("5-Axis CNC:"), widget.NewLabel(fmt.Sprintf("%.2f EUR/h", p.Rates.CNC5Axis)),
			widget.NewLabel("EDM:"), widget.NewLabel(fmt.Sprintf("%.2f EUR/h", p.Rates.EDM)),
		),

		widget.NewSeparator(),
		widget.NewLabelWithStyle("Quoting Strategy", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2,
			widget.NewLabel("Aggressiveness:"), widget.NewLabel(fmt.Sprintf("%.2f", p.Rates.Aggressiveness)),
			widget.NewLabel("Material Margin:"), widget.NewLabel(fmt.Sprintf("%.0f%%", p.Rates.Margin*100)),
		),
	)

	applyBtn := widget.NewButtonWithIcon("Apply to Current Quote", theme.ConfirmIcon(), func() {
		a.pushUndo("Apply Rate Profile")
		a.request.Rates = p.Rates
		a.recompute()
		a.rebuildTabs()
	})
	c.Add(applyBtn)

	if !p.IsBuiltIn {
		editBtn := widget.NewButtonWithIcon("Edit Profile", theme.DocumentCreateIcon(), func() {
			a.showEditProfileDialog(p, w, onChanged)
		})
		c.Add(editBtn)
	} else {
		c.Add(widget.NewLabel("Built-in profiles are read-only. Duplicate to customize."))
	}

	c.Add(info)
	c.Refresh()
}

// showNewProfileDialog shows a dialog to create a new custom profile
// seeded from the current request's rate settings.
func (a *App) showNewProfileDialog(w fyne.Window, onCreated func()) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("My Shop Rates")

	form := dialog.NewForm("New Custom Profile", "Create", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Profile Name", nameEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				dialog.ShowError(fmt.Errorf("profile name cannot be empty"), w)
				return
			}
			profile := model.RateProfile{
				Name:        name,
				Description: "Custom rate profile",
				Rates:       a.request.Rates,
			}
			if err := a.addCustomProfile(profile); err != nil {
				dialog.ShowError(err, w)
				return
			}
			a.persistCustomProfiles(w)
			onCreated()
		},
		w,
	)
	form.Resize(fyne.NewSize(400, 150))
	form.Show()
}

// duplicateProfile creates a copy of an existing profile with a new name.
func (a *App) duplicateProfile(source model.RateProfile, w fyne.Window, onCreated func()) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(source.Name + " (Copy)")

	form := dialog.NewForm("Duplicate Profile", "Create", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("New Profile Name", nameEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				dialog.ShowError(fmt.Errorf("profile name cannot be empty"), w)
				return
			}
			dup := source
			dup.ID = ""
			dup.Name = name
			dup.IsBuiltIn = false
			dup.Description = "Copy of " + source.Name

			if err := a.addCustomProfile(dup); err != nil {
				dialog.ShowError(err, w)
				return
			}
			a.persistCustomProfiles(w)
			onCreated()
		},
		w,
	)
	form.Resize(fyne.NewSize(400, 150))
	form.Show()
}

// showEditProfileDialog shows an editing dialog for a custom profile.
func (a *App) showEditProfileDialog(p model.RateProfile, w fyne.Window, onSaved func()) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(p.Name)

	descEntry := widget.NewEntry()
	descEntry.SetText(p.Description)

	rateEntry := func(v float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.2f", v))
		return e
	}

	cnc3Entry := rateEntry(p.Rates.CNC3Axis)
	cnc5Entry := rateEntry(p.Rates.CNC5Axis)
	edmEntry := rateEntry(p.Rates.EDM)
	aggrEntry := rateEntry(p.Rates.Aggressiveness)
	marginEntry := rateEntry(p.Rates.Margin)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Description", descEntry),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("3-Axis CNC Rate (EUR/h)", cnc3Entry),
		widget.NewFormItem("5-Axis CNC Rate (EUR/h)", cnc5Entry),
		widget.NewFormItem("EDM Rate (EUR/h)", edmEntry),
		widget.NewFormItem("Aggressiveness (0-1)", aggrEntry),
		widget.NewFormItem("Material Margin (0-0.3)", marginEntry),
	}

	d := dialog.NewForm("Edit Profile: "+p.Name, "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				dialog.ShowError(fmt.Errorf("profile name cannot be empty"), w)
				return
			}

			parse := func(e *widget.Entry, label string) (float64, error) {
				v, err := strconv.ParseFloat(e.Text, 64)
				if err != nil {
					return 0, fmt.Errorf("%s must be a number", label)
				}
				return v, nil
			}

			rates := p.Rates
			var err error
			if rates.CNC3Axis, err = parse(cnc3Entry, "3-axis rate"); err == nil {
				if rates.CNC5Axis, err = parse(cnc5Entry, "5-axis rate"); err == nil {
					if rates.EDM, err = parse(edmEntry, "EDM rate"); err == nil {
						if rates.Aggressiveness, err = parse(aggrEntry, "aggressiveness"); err == nil {
							rates.Margin, err = parse(marginEntry, "margin")
						}
					}
				}
			}
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if err := rates.Validate(); err != nil {
				dialog.ShowError(err, w)
				return
			}

			a.removeCustomProfile(p.Name)
			updated := model.RateProfile{
				ID:          p.ID,
				Name:        name,
				Description: descEntry.Text,
				Rates:       rates,
			}
			if err := a.addCustomProfile(updated); err != nil {
				dialog.ShowError(err, w)
				return
			}
			a.persistCustomProfiles(w)
			onSaved()
		},
		w,
	)
	d.Resize(fyne.NewSize(450, 450))
	d.Show()
}

// importProfileDialog opens a file dialog to import a profile from JSON.
func (a *App) importProfileDialog(w fyne.Window, onImported func()) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		profile, err := project.ImportProfile(reader.URI().Path())
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to import profile: %w", err), w)
			return
		}

		if err := a.addCustomProfile(profile); err != nil {
			dialog.ShowError(err, w)
			return
		}
		a.persistCustomProfiles(w)
		onImported()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Profile %q imported successfully.", profile.Name), w)
	}, w)
}

// exportProfileDialog opens a file save dialog to export a profile to JSON.
func (a *App) exportProfileDialog(p model.RateProfile, w fyne.Window) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if err := project.ExportProfile(writer.URI().Path(), p); err != nil {
			dialog.ShowError(fmt.Errorf("failed to export profile: %w", err), w)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Profile %q exported successfully.", p.Name), w)
	}, w)
	d.SetFileName(strings.ReplaceAll(strings.ToLower(p.Name), " ", "_") + "_profile.json")
	d.Show()
}

// persistCustomProfiles saves the current custom profiles to disk.
func (a *App) persistCustomProfiles(w fyne.Window) {
	if err := project.SaveCustomProfilesToDefault(a.customProfiles); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save profiles: %w", err), w)
	}
}
