package model

import "fmt"

// UnknownMaterialError reports a material ID absent from the fixed table.
type UnknownMaterialError struct {
	ID string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("unknown material %q", e.ID)
}

// UnknownFinishError reports a finish ID absent from the fixed table.
type UnknownFinishError struct {
	ID string
}

func (e *UnknownFinishError) Error() string {
	return fmt.Sprintf("unknown finish %q", e.ID)
}

// UnknownSupplierError reports a mold-base supplier tier absent from the
// fixed table.
type UnknownSupplierError struct {
	Name string
}

func (e *UnknownSupplierError) Error() string {
	return fmt.Sprintf("unknown mold base supplier %q", e.Name)
}

// UnknownPlateMaterialError reports a plate material absent from the fixed
// table.
type UnknownPlateMaterialError struct {
	Name string
}

func (e *UnknownPlateMaterialError) Error() string {
	return fmt.Sprintf("unknown plate material %q", e.Name)
}

// InvalidQuantityError reports a non-positive part quantity.
type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d: must be positive", e.Quantity)
}

// InvalidRateError reports a rate setting outside its allowed range.
type InvalidRateError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid rate setting %s=%g: %s", e.Field, e.Value, e.Reason)
}
