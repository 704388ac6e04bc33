package model

import "github.com/google/uuid"

// RateProfile represents a named, reusable set of rate settings, e.g.
// "In-house shop" or "Subcontracted 5-axis".
type RateProfile struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Rates       RateSettings `json:"rates"`
	IsBuiltIn   bool         `json:"is_built_in"`
}

// NewRateProfile creates a new RateProfile with a generated ID.
func NewRateProfile(name, description string, rates RateSettings) RateProfile {
	return RateProfile{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		Rates:       rates,
	}
}

// BuiltInRateProfiles are the factory rate profiles shipped with the
// application.
var BuiltInRateProfiles = []RateProfile{
	{
		ID:          "default",
		Name:        "Standard Shop",
		Description: "Factory default hourly rates",
		Rates:       DefaultRateSettings(),
		IsBuiltIn:   true,
	},
	{
		ID:          "aggressive",
		Name:        "Competitive Bid",
		Description: "Default rates with maximum quoting aggressiveness",
		Rates: RateSettings{
			CNC3Axis:       DefaultCNC3AxisRate,
			CNC5Axis:       DefaultCNC5AxisRate,
			EDM:            DefaultEDMRate,
			Aggressiveness: 1.0,
			Margin:         0.05,
		},
		IsBuiltIn: true,
	},
	{
		ID:          "conservative",
		Name:        "Conservative Estimate",
		Description: "Default rates with no quoting aggressiveness and full margin",
		Rates: RateSettings{
			CNC3Axis:       DefaultCNC3AxisRate,
			CNC5Axis:       DefaultCNC5AxisRate,
			EDM:            DefaultEDMRate,
			Aggressiveness: 0.0,
			Margin:         0.3,
		},
		IsBuiltIn: true,
	},
}

// RateProfileByID returns a built-in profile by ID, or the standard
// profile if not found.
func RateProfileByID(id string) RateProfile {
	for _, p := range BuiltInRateProfiles {
		if p.ID == id {
			return p
		}
	}
	return BuiltInRateProfiles[0]
}
