package shipping

import (
	"fmt"
	"math"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/erp/shipping/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Measurements is the normalized parcel: dead weight and the three sides,
// expressed in the engine's weight and dimension units.
type Measurements struct {
	Weight decimal.Decimal
	Length decimal.Decimal
	Width  decimal.Decimal
	Height decimal.Decimal
}

// ShipmentItem is one order line as the host sends it. Weight and the
// dimensions are per unit; empty unit codes mean the engine's units.
type ShipmentItem struct {
	Quantity      int
	Weight        decimal.Decimal
	Length        decimal.Decimal
	Width         decimal.Decimal
	Height        decimal.Decimal
	WeightUnit    string
	DimensionUnit string
}

// MeasureConverter folds shipment items into one set of Measurements.
type MeasureConverter struct {
	weightUnit    valueobject.MeasureUnit
	dimensionUnit valueobject.MeasureUnit
	packaging     PackagingMethod
}

// NewMeasureConverter builds a converter for the policy's units and packaging.
func NewMeasureConverter(policy Policy) (*MeasureConverter, error) {
	wu, err := lookupUnit(policy.WeightUnit, valueobject.MeasureKindWeight)
	if err != nil {
		return nil, err
	}
	du, err := lookupUnit(policy.DimensionUnit, valueobject.MeasureKindDimension)
	if err != nil {
		return nil, err
	}
	packaging := policy.Packaging
	switch packaging {
	case PackagingCubeRoot, PackagingStacked:
	case "":
		packaging = PackagingCubeRoot
	default:
		return nil, shared.NewDomainError("INVALID_PACKAGING", fmt.Sprintf("Unknown packaging method %q", packaging))
	}
	return &MeasureConverter{weightUnit: wu, dimensionUnit: du, packaging: packaging}, nil
}

// Measure converts items into engine units and packs them into one parcel.
func (c *MeasureConverter) Measure(items []ShipmentItem) (Measurements, error) {
	var (
		m         Measurements
		volume    = decimal.Zero
		maxLength = decimal.Zero
		maxWidth  = decimal.Zero
		height    = decimal.Zero
	)

	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		qty := decimal.NewFromInt(int64(item.Quantity))

		w, err := c.convert(item.Weight, item.WeightUnit, c.weightUnit)
		if err != nil {
			return Measurements{}, err
		}
		l, err := c.convert(item.Length, item.DimensionUnit, c.dimensionUnit)
		if err != nil {
			return Measurements{}, err
		}
		wd, err := c.convert(item.Width, item.DimensionUnit, c.dimensionUnit)
		if err != nil {
			return Measurements{}, err
		}
		h, err := c.convert(item.Height, item.DimensionUnit, c.dimensionUnit)
		if err != nil {
			return Measurements{}, err
		}

		m.Weight = m.Weight.Add(w.Mul(qty))
		volume = volume.Add(l.Mul(wd).Mul(h).Mul(qty))
		maxLength = decimal.Max(maxLength, l)
		maxWidth = decimal.Max(maxWidth, wd)
		height = height.Add(h.Mul(qty))
	}

	switch c.packaging {
	case PackagingStacked:
		m.Length, m.Width, m.Height = maxLength, maxWidth, height
	case PackagingCubeRoot:
		side := cubeRoot(volume)
		m.Length, m.Width, m.Height = side, side, side
	}
	m.Weight = m.Weight.Round(4)
	return m, nil
}

func (c *MeasureConverter) convert(q decimal.Decimal, code string, target valueobject.MeasureUnit) (decimal.Decimal, error) {
	if code == "" {
		return q, nil
	}
	from, err := lookupUnit(code, target.Kind())
	if err != nil {
		return decimal.Zero, err
	}
	return from.ConvertTo(q, target)
}

func lookupUnit(code string, kind valueobject.MeasureKind) (valueobject.MeasureUnit, error) {
	u, ok := valueobject.LookupMeasureUnit(code)
	if !ok || u.Kind() != kind {
		return valueobject.MeasureUnit{}, shared.NewDomainError(ErrInvalidUnit.Code, fmt.Sprintf("Unknown %s unit %q", kind, code))
	}
	return u, nil
}

// cubeRoot goes through float64; decimal has no root function. The side
// keeps ten places so that side cubed stays on the packed volume once the
// cubic weight is rounded.
func cubeRoot(v decimal.Decimal) decimal.Decimal {
	if !v.IsPositive() {
		return decimal.Zero
	}
	return decimal.NewFromFloat(math.Cbrt(v.InexactFloat64())).Round(10)
}
