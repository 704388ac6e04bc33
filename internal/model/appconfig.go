package model

// AppConfig holds application-wide preferences and default quote settings.
type AppConfig struct {
	// Defaults applied to new quote requests
	DefaultMaterial      string       `json:"default_material"`
	DefaultFinish        string       `json:"default_finish"`
	DefaultSupplier      string       `json:"default_supplier"`
	DefaultPlateMaterial string       `json:"default_plate_material"`
	DefaultRates         RateSettings `json:"default_rates"`

	// Application preferences
	RecentFiles []string `json:"recent_files"`
	Theme       string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the factory
// defaults matching NewQuoteRequest.
func DefaultAppConfig() AppConfig {
	base := DefaultCADBaseConfig()
	return AppConfig{
		DefaultMaterial:      "H13",
		DefaultFinish:        "machined",
		DefaultSupplier:      base.Supplier,
		DefaultPlateMaterial: base.PlateMaterial,
		DefaultRates:         DefaultRateSettings(),
		RecentFiles:          []string{},
		Theme:                "system",
	}
}

// ApplyToRequest copies the configured defaults into a quote request.
// This is used when a new part is loaded so the request inherits the
// user's saved defaults.
func (c AppConfig) ApplyToRequest(req *QuoteRequest) {
	req.Material = c.DefaultMaterial
	req.Finish = c.DefaultFinish
	req.CADBase.Supplier = c.DefaultSupplier
	req.CADBase.PlateMaterial = c.DefaultPlateMaterial
	req.Rates = c.DefaultRates
}
