// Package ui provides the MoldQuote application UI components.
//
// This file defines the application theme: a steel-blue accent over the
// default Fyne theme, with sizing tuned for quote tables and rate forms.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Accent colors per variant. The steel blue matches anodized tooling
// plates; the dark variant is lifted so it stays readable on dark fills.
var (
	steelBlueLight = color.NRGBA{R: 0x2e, G: 0x5f, B: 0x8a, A: 0xff}
	steelBlueDark  = color.NRGBA{R: 0x5b, G: 0x93, B: 0xc4, A: 0xff}
)

// MoldQuoteTheme layers the MoldQuote accent and sizing over a base theme.
// Quote and rate screens are number-heavy, so body text stays at the
// default size while chrome (padding, separators) is tightened.
type MoldQuoteTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// NewMoldQuoteTheme creates a new MoldQuoteTheme with the system default variant.
func NewMoldQuoteTheme() *MoldQuoteTheme {
	return &MoldQuoteTheme{
		base:    theme.DefaultTheme(),
		variant: 0, // system default
	}
}

// NewMoldQuoteThemeWithVariant creates a MoldQuoteTheme with a specific light/dark variant.
func NewMoldQuoteThemeWithVariant(variant fyne.ThemeVariant) *MoldQuoteTheme {
	return &MoldQuoteTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
	}
}

// SetVariant updates the theme variant (light/dark/system).
func (t *MoldQuoteTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
}

// Color applies the steel-blue accent and otherwise delegates to the base
// theme with the stored variant.
func (t *MoldQuoteTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameHyperlink:
		if t.variant == theme.VariantDark {
			return steelBlueDark
		}
		return steelBlueLight
	}
	return t.base.Color(name, t.variant)
}

// Font delegates to the base theme.
func (t *MoldQuoteTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *MoldQuoteTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size tightens chrome without shrinking the numbers the user reads.
func (t *MoldQuoteTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameHeadingText:
		return 19
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 18
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameSeparatorThickness:
		return 1
	default:
		return t.base.Size(name)
	}
}
