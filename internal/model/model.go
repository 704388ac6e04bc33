// Package model defines the MoldQuote domain model: the fixed business
// tables for mold materials, surface finishes and mold bases, the tunable
// rate settings, and the pricing engine that turns geometry statistics and
// a configuration into a price quote.
package model

import "strings"

// Material represents a mold steel (or aluminum) grade with its fixed
// price per cm³ of part volume.
type Material struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PricePerCm3 float64 `json:"price_per_cm3"` // EUR/cm³
	Hardness    string  `json:"hardness"`
	Density     float64 `json:"density"` // g/cm³
}

// Materials is the fixed table of available mold material grades.
// Prices are business constants, not derived values.
var Materials = []Material{
	{ID: "H13", Name: "H13 Tool Steel", PricePerCm3: 0.85, Hardness: "48-52 HRC", Density: 7.8},
	{ID: "P20", Name: "P20 Mold Steel", PricePerCm3: 0.65, Hardness: "28-32 HRC", Density: 7.85},
	{ID: "718", Name: "718 Mold Steel", PricePerCm3: 0.75, Hardness: "32-38 HRC", Density: 7.9},
	{ID: "ALUMINUM", Name: "Aluminum 7075", PricePerCm3: 0.45, Hardness: "60-65 HB", Density: 2.81},
	{ID: "S7", Name: "S7 Shock Steel", PricePerCm3: 0.70, Hardness: "54-58 HRC", Density: 7.7},
}

// MaterialByID looks up a material grade by its ID (case-insensitive).
func MaterialByID(id string) (Material, error) {
	for _, m := range Materials {
		if strings.EqualFold(m.ID, id) {
			return m, nil
		}
	}
	return Material{}, &UnknownMaterialError{ID: id}
}

// MaterialIDs returns the IDs of all available materials in table order.
func MaterialIDs() []string {
	ids := make([]string, len(Materials))
	for i, m := range Materials {
		ids[i] = m.ID
	}
	return ids
}

// Finish represents a post-machining surface treatment and its cost
// multiplier. Ra is the resulting surface roughness in µm.
type Finish struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
	Ra         float64 `json:"ra"`
}

// Finishes is the fixed table of available surface finishes.
var Finishes = []Finish{
	{ID: "machined", Name: "Machined", Multiplier: 1.0, Ra: 1.6},
	{ID: "ground", Name: "Ground", Multiplier: 1.3, Ra: 0.8},
	{ID: "polished", Name: "Polished", Multiplier: 1.5, Ra: 0.2},
	{ID: "textured", Name: "Textured", Multiplier: 1.8, Ra: 3.2},
	{ID: "edm", Name: "EDM (Spark Eroded)", Multiplier: 2.2, Ra: 0.4},
}

// FinishByID looks up a surface finish by its ID (case-insensitive).
func FinishByID(id string) (Finish, error) {
	for _, f := range Finishes {
		if strings.EqualFold(f.ID, id) {
			return f, nil
		}
	}
	return Finish{}, &UnknownFinishError{ID: id}
}

// FinishIDs returns the IDs of all available finishes in table order.
func FinishIDs() []string {
	ids := make([]string, len(Finishes))
	for i, f := range Finishes {
		ids[i] = f.ID
	}
	return ids
}

// MoldBaseOptions holds the boolean mold-base feature flags. Each enabled
// feature contributes a fixed surcharge to the setup fee.
type MoldBaseOptions struct {
	HotRunner        bool `json:"hot_runner"`
	ConformalCooling bool `json:"conformal_cooling"`
	DoubleExtraction bool `json:"double_extraction"`
}

// Fixed feature surcharges in EUR.
const (
	HotRunnerSurcharge        = 3500.0
	ConformalCoolingSurcharge = 5000.0
	DoubleExtractionSurcharge = 1500.0
	InsulationSurcharge       = 800.0
	LiftingHolesSurcharge     = 300.0
)

// Surcharge returns the sum of the surcharges for all enabled features.
func (o MoldBaseOptions) Surcharge() float64 {
	var total float64
	if o.HotRunner {
		total += HotRunnerSurcharge
	}
	if o.ConformalCooling {
		total += ConformalCoolingSurcharge
	}
	if o.DoubleExtraction {
		total += DoubleExtractionSurcharge
	}
	return total
}

// MoldBaseSupplier represents a standard mold-base supplier tier with its
// catalog series and base price.
type MoldBaseSupplier struct {
	Name      string  `json:"name"`
	Series    string  `json:"series"`
	BasePrice float64 `json:"base_price"` // EUR
}

// MoldBaseSuppliers is the fixed table of supplier tiers (supplier ×
// Standard/Premium).
var MoldBaseSuppliers = []MoldBaseSupplier{
	{Name: "HASCO Standard", Series: "Z40/41", BasePrice: 3500},
	{Name: "HASCO Premium", Series: "Z40/41 Premium", BasePrice: 4500},
	{Name: "DME Standard", Series: "Mega", BasePrice: 3200},
	{Name: "DME Premium", Series: "Mega Premium", BasePrice: 4200},
	{Name: "FUTABA Standard", Series: "NB/NP", BasePrice: 3000},
	{Name: "FUTABA Premium", Series: "NB/NP Premium", BasePrice: 4000},
}

// SupplierByName looks up a mold-base supplier tier by name.
func SupplierByName(name string) (MoldBaseSupplier, error) {
	for _, s := range MoldBaseSuppliers {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return MoldBaseSupplier{}, &UnknownSupplierError{Name: name}
}

// SupplierNames returns the names of all supplier tiers in table order.
func SupplierNames() []string {
	names := make([]string, len(MoldBaseSuppliers))
	for i, s := range MoldBaseSuppliers {
		names[i] = s.Name
	}
	return names
}

// PlateMaterial represents a mold-base plate steel choice and its price
// addon relative to the baseline C45W plates. Addons may be negative
// (aluminum plates are cheaper than the baseline).
type PlateMaterial struct {
	Name  string  `json:"name"`
	Addon float64 `json:"addon"` // EUR
}

// PlateMaterials is the fixed table of plate material addons.
var PlateMaterials = []PlateMaterial{
	{Name: "1.1730 (C45W)", Addon: 0},
	{Name: "1.2311 (P20)", Addon: 200},
	{Name: "1.2312 (P20+S)", Addon: 350},
	{Name: "1.2344 (H13)", Addon: 800},
	{Name: "Aluminum 7075", Addon: -500},
	{Name: "1.2767 (H13 Mod)", Addon: 1200},
}

// PlateMaterialByName looks up a plate material by name.
func PlateMaterialByName(name string) (PlateMaterial, error) {
	for _, p := range PlateMaterials {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return PlateMaterial{}, &UnknownPlateMaterialError{Name: name}
}

// PlateMaterialNames returns the names of all plate materials in table order.
func PlateMaterialNames() []string {
	names := make([]string, len(PlateMaterials))
	for i, p := range PlateMaterials {
		names[i] = p.Name
	}
	return names
}

// CADBaseConfig holds the CAD mold-base configuration: the supplier tier,
// the plate material, and the boolean add-ons.
type CADBaseConfig struct {
	Supplier         string `json:"supplier"`
	PlateMaterial    string `json:"plate_material"`
	InsulationPlates bool   `json:"insulation_plates"`
	LiftingHoles     bool   `json:"lifting_holes"`
}

// DefaultCADBaseConfig returns the baseline mold-base configuration.
func DefaultCADBaseConfig() CADBaseConfig {
	return CADBaseConfig{
		Supplier:      "HASCO Standard",
		PlateMaterial: "1.1730 (C45W)",
	}
}

// StructuralCost returns the total mold-base structural cost: supplier base
// price + plate material addon + enabled add-on surcharges. Unknown supplier
// or plate names fail fast; there are no silent table fallbacks.
func (c CADBaseConfig) StructuralCost() (float64, error) {
	supplier, err := SupplierByName(c.Supplier)
	if err != nil {
		return 0, err
	}
	plate, err := PlateMaterialByName(c.PlateMaterial)
	if err != nil {
		return 0, err
	}

	cost := supplier.BasePrice + plate.Addon
	if c.InsulationPlates {
		cost += InsulationSurcharge
	}
	if c.LiftingHoles {
		cost += LiftingHolesSurcharge
	}
	return cost, nil
}
