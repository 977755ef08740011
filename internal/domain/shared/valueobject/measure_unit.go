package valueobject

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MeasureKind separates weight units from dimension units
type MeasureKind string

const (
	MeasureKindWeight    MeasureKind = "weight"
	MeasureKindDimension MeasureKind = "dimension"
)

// Unit codes understood by the measure converter
const (
	UnitCodeKG = "KG" // Kilograms, base weight unit
	UnitCodeG  = "G"  // Grams
	UnitCodeLB = "LB" // Pounds
	UnitCodeOZ = "OZ" // Ounces
	UnitCodeM  = "M"  // Meters, base dimension unit
	UnitCodeCM = "CM" // Centimeters
	UnitCodeMM = "MM" // Millimeters
	UnitCodeIN = "IN" // Inches
	UnitCodeFT = "FT" // Feet
)

// MeasureUnit is an immutable unit of weight or length.
// Ratio is the number of base units (kg or m) in one of this unit.
type MeasureUnit struct {
	code  string
	name  string
	kind  MeasureKind
	ratio decimal.Decimal
}

// NewMeasureUnit creates a unit after normalizing and validating its fields.
func NewMeasureUnit(code, name string, kind MeasureKind, ratio decimal.Decimal) (MeasureUnit, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	name = strings.TrimSpace(name)

	if code == "" {
		return MeasureUnit{}, errors.New("unit code cannot be empty")
	}
	if len(code) > 20 {
		return MeasureUnit{}, errors.New("unit code cannot exceed 20 characters")
	}
	if name == "" {
		return MeasureUnit{}, errors.New("unit name cannot be empty")
	}
	if kind != MeasureKindWeight && kind != MeasureKindDimension {
		return MeasureUnit{}, fmt.Errorf("unknown measure kind %q", kind)
	}
	if !ratio.IsPositive() {
		return MeasureUnit{}, errors.New("unit ratio must be positive")
	}

	return MeasureUnit{code: code, name: name, kind: kind, ratio: ratio}, nil
}

func mustMeasureUnit(code, name string, kind MeasureKind, ratio string) MeasureUnit {
	u, err := NewMeasureUnit(code, name, kind, decimal.RequireFromString(ratio))
	if err != nil {
		panic(err)
	}
	return u
}

var builtinUnits = map[string]MeasureUnit{
	UnitCodeKG: mustMeasureUnit(UnitCodeKG, "Kilogram", MeasureKindWeight, "1"),
	UnitCodeG:  mustMeasureUnit(UnitCodeG, "Gram", MeasureKindWeight, "0.001"),
	UnitCodeLB: mustMeasureUnit(UnitCodeLB, "Pound", MeasureKindWeight, "0.45359237"),
	UnitCodeOZ: mustMeasureUnit(UnitCodeOZ, "Ounce", MeasureKindWeight, "0.028349523125"),
	UnitCodeM:  mustMeasureUnit(UnitCodeM, "Meter", MeasureKindDimension, "1"),
	UnitCodeCM: mustMeasureUnit(UnitCodeCM, "Centimeter", MeasureKindDimension, "0.01"),
	UnitCodeMM: mustMeasureUnit(UnitCodeMM, "Millimeter", MeasureKindDimension, "0.001"),
	UnitCodeIN: mustMeasureUnit(UnitCodeIN, "Inch", MeasureKindDimension, "0.0254"),
	UnitCodeFT: mustMeasureUnit(UnitCodeFT, "Foot", MeasureKindDimension, "0.3048"),
}

// LookupMeasureUnit returns the built-in unit for a code (case-insensitive).
func LookupMeasureUnit(code string) (MeasureUnit, bool) {
	u, ok := builtinUnits[strings.TrimSpace(strings.ToUpper(code))]
	return u, ok
}

// Code returns the normalized unit code.
func (u MeasureUnit) Code() string {
	return u.code
}

// Name returns the display name.
func (u MeasureUnit) Name() string {
	return u.name
}

// Kind returns whether this is a weight or dimension unit.
func (u MeasureUnit) Kind() MeasureKind {
	return u.kind
}

// Ratio returns base units per one of this unit.
func (u MeasureUnit) Ratio() decimal.Decimal {
	return u.ratio
}

// IsZero reports whether u is the zero value.
func (u MeasureUnit) IsZero() bool {
	return u.code == "" && u.ratio.IsZero()
}

// ConvertTo converts a quantity expressed in u into target.
// Units of different kinds cannot be converted into each other.
func (u MeasureUnit) ConvertTo(quantity decimal.Decimal, target MeasureUnit) (decimal.Decimal, error) {
	if u.kind != target.kind {
		return decimal.Zero, fmt.Errorf("cannot convert %s to %s", u.code, target.code)
	}
	if target.ratio.IsZero() {
		return decimal.Zero, errors.New("target unit ratio cannot be zero")
	}
	if u.code == target.code {
		return quantity, nil
	}
	return quantity.Mul(u.ratio).Div(target.ratio).Round(4), nil
}

// String returns "CODE (Name)".
func (u MeasureUnit) String() string {
	return fmt.Sprintf("%s (%s)", u.code, u.name)
}
