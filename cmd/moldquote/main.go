// MoldQuote - Injection Mold Quoting
//
// A cross-platform desktop application for estimating plastic injection
// mold prices from part geometry.
//
// Build:
//   go build -o moldquote ./cmd/moldquote
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o moldquote.exe ./cmd/moldquote
//   GOOS=darwin  GOARCH=amd64 go build -o moldquote-darwin ./cmd/moldquote
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/MoldQuote/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.moldquote")

	appTheme := ui.NewMoldQuoteTheme()
	application.Settings().SetTheme(appTheme)

	window := application.NewWindow("MoldQuote - Injection Mold Quoting")

	appUI := ui.NewApp(window, appTheme)
	appUI.SetupMenus() // Setup the native menu bar
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1100, 750))
	window.CenterOnScreen()
	window.ShowAndRun()
}
