package model

import "testing"

func TestDefaultAppConfigMatchesRequestDefaults(t *testing.T) {
	cfg := DefaultAppConfig()
	req := NewQuoteRequest(0)

	if cfg.DefaultMaterial != req.Material {
		t.Errorf("material mismatch: config=%s request=%s", cfg.DefaultMaterial, req.Material)
	}
	if cfg.DefaultFinish != req.Finish {
		t.Errorf("finish mismatch: config=%s request=%s", cfg.DefaultFinish, req.Finish)
	}
	if cfg.DefaultSupplier != req.CADBase.Supplier {
		t.Errorf("supplier mismatch: config=%s request=%s", cfg.DefaultSupplier, req.CADBase.Supplier)
	}
	if cfg.DefaultRates != req.Rates {
		t.Errorf("rates mismatch: config=%+v request=%+v", cfg.DefaultRates, req.Rates)
	}
	if cfg.RecentFiles == nil {
		t.Error("RecentFiles should be an empty slice, not nil")
	}
	if cfg.Theme != "system" {
		t.Errorf("expected system theme default, got %s", cfg.Theme)
	}
}

func TestApplyToRequest(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultMaterial = "P20"
	cfg.DefaultFinish = "polished"
	cfg.DefaultSupplier = "DME Premium"
	cfg.DefaultPlateMaterial = "1.2311 (P20)"
	cfg.DefaultRates.Aggressiveness = 0.8

	req := NewQuoteRequest(500)
	cfg.ApplyToRequest(&req)

	if req.Material != "P20" || req.Finish != "polished" {
		t.Errorf("defaults not applied: material=%s finish=%s", req.Material, req.Finish)
	}
	if req.CADBase.Supplier != "DME Premium" || req.CADBase.PlateMaterial != "1.2311 (P20)" {
		t.Errorf("CAD base defaults not applied: %+v", req.CADBase)
	}
	if req.Rates.Aggressiveness != 0.8 {
		t.Errorf("rates not applied: %+v", req.Rates)
	}
	// Volume is part of the loaded geometry, not the defaults.
	if req.Volume != 500 {
		t.Errorf("volume must be preserved, got %.1f", req.Volume)
	}

	if _, err := ComputeQuote(req); err != nil {
		t.Errorf("request with applied defaults should price cleanly: %v", err)
	}
}
