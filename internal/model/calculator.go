package model

// QuoteRequest is the complete, explicit input to the pricing engine.
// All interactive state (selected file, configuration, settings) lives in
// the application shell; the engine itself is a pure function of this
// value and can be invoked freely from any caller.
type QuoteRequest struct {
	Volume   float64         `json:"volume"` // part volume in cm³
	Material string          `json:"material"`
	Finish   string          `json:"finish"`
	Quantity int             `json:"quantity"`
	MoldBase MoldBaseOptions `json:"mold_base"`
	CADBase  CADBaseConfig   `json:"cad_base"`
	Rates    RateSettings    `json:"rates"`
}

// NewQuoteRequest returns a request populated with the default
// configuration for the given part volume.
func NewQuoteRequest(volume float64) QuoteRequest {
	return QuoteRequest{
		Volume:   volume,
		Material: "H13",
		Finish:   "machined",
		Quantity: 1,
		CADBase:  DefaultCADBaseConfig(),
		Rates:    DefaultRateSettings(),
	}
}

// Quote holds the computed price and its full decomposition.
type Quote struct {
	SetupFee             float64 `json:"setup_fee"`
	StructuralCost       float64 `json:"structural_cost"`
	RateFactor           float64 `json:"rate_factor"`
	AggressivenessFactor float64 `json:"aggressiveness_factor"`
	UnitCost             float64 `json:"unit_cost"`
	DiscountMultiplier   float64 `json:"discount_multiplier"`
	Quantity             int     `json:"quantity"`
	Total                float64 `json:"total"`
	PricePerPiece        float64 `json:"price_per_piece"`
	LeadTimeDays         int     `json:"lead_time_days"`
}

// BaseSetupFee is the fixed project setup fee in EUR, before mold-base
// feature surcharges.
const BaseSetupFee = 2500.0

// unitCostScale converts the normalized volume × rate product into EUR.
const unitCostScale = 1.2

// DiscountMultiplier returns the quantity discount step function:
// 0.90 for quantities of 50 and above, 0.95 from 10 to 49, 1.0 below 10.
func DiscountMultiplier(quantity int) float64 {
	switch {
	case quantity >= 50:
		return 0.90
	case quantity >= 10:
		return 0.95
	default:
		return 1.0
	}
}

// ComputeQuote deterministically maps a quote request to a price quote.
// It is a pure function: no hidden state, no I/O, same output for the
// same input. Unknown material/finish/supplier/plate keys, a non-positive
// quantity and out-of-range rate settings fail fast; nothing falls back
// to a default table entry.
//
// The composition order is fixed for reproducibility:
//
//	setup      = base fee + enabled mold-base feature surcharges
//	structural = supplier base + plate addon + enabled CAD extras
//	unit       = volume × material price × finish multiplier
//	             × rate factor × aggressiveness factor × scale
//	total      = setup + structural + unit × quantity × discount
func ComputeQuote(req QuoteRequest) (Quote, error) {
	if req.Quantity <= 0 {
		return Quote{}, &InvalidQuantityError{Quantity: req.Quantity}
	}
	if err := req.Rates.Validate(); err != nil {
		return Quote{}, err
	}
	material, err := MaterialByID(req.Material)
	if err != nil {
		return Quote{}, err
	}
	finish, err := FinishByID(req.Finish)
	if err != nil {
		return Quote{}, err
	}

	setupFee := BaseSetupFee + req.MoldBase.Surcharge()

	structural, err := req.CADBase.StructuralCost()
	if err != nil {
		return Quote{}, err
	}

	rateFactor := req.Rates.RateFactor()
	aggrFactor := req.Rates.AggressivenessFactor()

	unitCost := req.Volume * material.PricePerCm3 * finish.Multiplier *
		rateFactor * aggrFactor * unitCostScale

	discount := DiscountMultiplier(req.Quantity)
	total := setupFee + structural + unitCost*float64(req.Quantity)*discount

	leadTime := req.Quantity/10 + 3
	if leadTime < 5 {
		leadTime = 5
	}

	return Quote{
		SetupFee:             setupFee,
		StructuralCost:       structural,
		RateFactor:           rateFactor,
		AggressivenessFactor: aggrFactor,
		UnitCost:             unitCost,
		DiscountMultiplier:   discount,
		Quantity:             req.Quantity,
		Total:                total,
		PricePerPiece:        total / float64(req.Quantity),
		LeadTimeDays:         leadTime,
	}, nil
}
