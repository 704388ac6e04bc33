package model

// RateSettings holds the tunable global pricing parameters: the hourly
// machine rates, the quoting aggressiveness and the material margin.
type RateSettings struct {
	CNC3Axis       float64 `json:"cnc3_axis"`      // EUR/hour
	CNC5Axis       float64 `json:"cnc5_axis"`      // EUR/hour
	EDM            float64 `json:"edm"`            // EUR/hour
	Aggressiveness float64 `json:"aggressiveness"` // [0,1]; higher quotes lower
	Margin         float64 `json:"margin"`         // [0,0.3] material margin
}

// Default hourly rates in EUR/hour.
const (
	DefaultCNC3AxisRate = 40.0
	DefaultCNC5AxisRate = 85.0
	DefaultEDMRate      = 65.0
)

// ReferenceRateAverage is the normalization baseline for the rate factor:
// the average of the default hourly rates. Configured rates matching the
// defaults yield a rate factor of exactly 1.
const ReferenceRateAverage = (DefaultCNC3AxisRate + DefaultCNC5AxisRate + DefaultEDMRate) / 3.0

// DefaultRateSettings returns the factory rate settings.
func DefaultRateSettings() RateSettings {
	return RateSettings{
		CNC3Axis:       DefaultCNC3AxisRate,
		CNC5Axis:       DefaultCNC5AxisRate,
		EDM:            DefaultEDMRate,
		Aggressiveness: 0.5,
		Margin:         0.15,
	}
}

// Average returns the mean of the three hourly machine rates.
func (r RateSettings) Average() float64 {
	return (r.CNC3Axis + r.CNC5Axis + r.EDM) / 3.0
}

// RateFactor returns the configured rate average normalized against the
// reference average.
func (r RateSettings) RateFactor() float64 {
	return r.Average() / ReferenceRateAverage
}

// AggressivenessFactor returns the unit-cost multiplier derived from the
// aggressiveness setting: 1.2 − aggressiveness × 0.25. Higher
// aggressiveness quotes more optimistically.
func (r RateSettings) AggressivenessFactor() float64 {
	return 1.2 - r.Aggressiveness*0.25
}

// Validate checks all settings against their allowed ranges.
func (r RateSettings) Validate() error {
	if r.CNC3Axis < 0 {
		return &InvalidRateError{Field: "cnc3_axis", Value: r.CNC3Axis, Reason: "must be non-negative"}
	}
	if r.CNC5Axis < 0 {
		return &InvalidRateError{Field: "cnc5_axis", Value: r.CNC5Axis, Reason: "must be non-negative"}
	}
	if r.EDM < 0 {
		return &InvalidRateError{Field: "edm", Value: r.EDM, Reason: "must be non-negative"}
	}
	if r.Aggressiveness < 0 || r.Aggressiveness > 1 {
		return &InvalidRateError{Field: "aggressiveness", Value: r.Aggressiveness, Reason: "must be in [0,1]"}
	}
	if r.Margin < 0 || r.Margin > 0.3 {
		return &InvalidRateError{Field: "margin", Value: r.Margin, Reason: "must be in [0,0.3]"}
	}
	return nil
}
