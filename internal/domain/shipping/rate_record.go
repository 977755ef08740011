package shipping

import (
	"strings"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateRecord is a banded shipping-rate rule. A uuid.Nil scope key or an
// empty Zip is a wildcard that matches any request value.
type RateRecord struct {
	shared.BaseAggregateRoot
	Active bool

	StoreID          uuid.UUID
	VendorID         uuid.UUID
	WarehouseID      uuid.UUID
	CarrierID        uuid.UUID
	CountryID        uuid.UUID
	StateProvinceID  uuid.UUID
	Zip              string
	ShippingMethodID uuid.UUID

	WeightFrom           decimal.Decimal
	WeightTo             decimal.Decimal
	CalculateCubicWeight bool
	CubicWeightFactor    decimal.Decimal

	OrderSubtotalFrom decimal.Decimal
	OrderSubtotalTo   decimal.Decimal

	AdditionalFixedCost      decimal.Decimal
	RatePerWeightUnit        decimal.Decimal
	LowerWeightLimit         decimal.Decimal
	PercentageRateOfSubtotal decimal.Decimal

	FriendlyName      string
	Description       string
	TransitDays       *int
	CutOffTimeID      uuid.UUID
	DisplayOrder      int
	SendFromAddressID uuid.UUID
}

// RateRecordInput holds the editable fields of a rate record
type RateRecordInput struct {
	Active bool

	StoreID          uuid.UUID
	VendorID         uuid.UUID
	WarehouseID      uuid.UUID
	CarrierID        uuid.UUID
	CountryID        uuid.UUID
	StateProvinceID  uuid.UUID
	Zip              string
	ShippingMethodID uuid.UUID

	WeightFrom           decimal.Decimal
	WeightTo             decimal.Decimal
	CalculateCubicWeight bool
	CubicWeightFactor    decimal.Decimal

	OrderSubtotalFrom decimal.Decimal
	OrderSubtotalTo   decimal.Decimal

	AdditionalFixedCost      decimal.Decimal
	RatePerWeightUnit        decimal.Decimal
	LowerWeightLimit         decimal.Decimal
	PercentageRateOfSubtotal decimal.Decimal

	FriendlyName      string
	Description       string
	TransitDays       *int
	CutOffTimeID      uuid.UUID
	DisplayOrder      int
	SendFromAddressID uuid.UUID
}

// NewRateRecord validates input and creates a rate record
func NewRateRecord(in RateRecordInput) (*RateRecord, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	r := &RateRecord{BaseAggregateRoot: shared.NewBaseAggregateRoot()}
	r.apply(in)
	return r, nil
}

// Update replaces the editable fields after validating them
func (r *RateRecord) Update(in RateRecordInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	r.apply(in)
	r.IncrementVersion()
	return nil
}

// Activate makes the record visible to live rating
func (r *RateRecord) Activate() {
	if r.Active {
		return
	}
	r.Active = true
	r.IncrementVersion()
}

// Deactivate hides the record from live rating
func (r *RateRecord) Deactivate() {
	if !r.Active {
		return
	}
	r.Active = false
	r.IncrementVersion()
}

// InWeightBand reports whether WeightFrom <= w <= WeightTo.
func (r *RateRecord) InWeightBand(w decimal.Decimal) bool {
	return r.WeightFrom.LessThanOrEqual(w) && w.LessThanOrEqual(r.WeightTo)
}

// InSubtotalBand reports whether OrderSubtotalFrom <= subtotal <= OrderSubtotalTo.
// A zero OrderSubtotalTo leaves the band open above.
func (r *RateRecord) InSubtotalBand(subtotal decimal.Decimal) bool {
	if subtotal.LessThan(r.OrderSubtotalFrom) {
		return false
	}
	return r.OrderSubtotalTo.IsZero() || subtotal.LessThanOrEqual(r.OrderSubtotalTo)
}

// BillableWeight returns the weight this record prices on: the cubic weight
// when the record asks for it, the dead weight otherwise. Cubic weight is
// rounded to four places like the dead weight.
func (r *RateRecord) BillableWeight(m Measurements) decimal.Decimal {
	if r.CalculateCubicWeight {
		return m.Length.Mul(m.Width).Mul(m.Height).Mul(r.CubicWeightFactor).Round(4)
	}
	return m.Weight
}

func (r *RateRecord) apply(in RateRecordInput) {
	r.Active = in.Active
	r.StoreID = in.StoreID
	r.VendorID = in.VendorID
	r.WarehouseID = in.WarehouseID
	r.CarrierID = in.CarrierID
	r.CountryID = in.CountryID
	r.StateProvinceID = in.StateProvinceID
	r.Zip = normalizeZipPattern(in.Zip)
	r.ShippingMethodID = in.ShippingMethodID
	r.WeightFrom = in.WeightFrom
	r.WeightTo = in.WeightTo
	r.CalculateCubicWeight = in.CalculateCubicWeight
	r.CubicWeightFactor = in.CubicWeightFactor
	r.OrderSubtotalFrom = in.OrderSubtotalFrom
	r.OrderSubtotalTo = in.OrderSubtotalTo
	r.AdditionalFixedCost = in.AdditionalFixedCost
	r.RatePerWeightUnit = in.RatePerWeightUnit
	r.LowerWeightLimit = in.LowerWeightLimit
	r.PercentageRateOfSubtotal = in.PercentageRateOfSubtotal
	r.FriendlyName = strings.TrimSpace(in.FriendlyName)
	r.Description = strings.TrimSpace(in.Description)
	r.TransitDays = in.TransitDays
	r.CutOffTimeID = in.CutOffTimeID
	r.DisplayOrder = in.DisplayOrder
	r.SendFromAddressID = in.SendFromAddressID
}

func (in RateRecordInput) validate() error {
	if in.WeightFrom.GreaterThan(in.WeightTo) {
		return ErrInvalidWeightBand
	}
	if !in.OrderSubtotalTo.IsZero() && in.OrderSubtotalFrom.GreaterThan(in.OrderSubtotalTo) {
		return ErrInvalidSubtotalBand
	}
	for _, d := range []decimal.Decimal{
		in.WeightFrom,
		in.CubicWeightFactor,
		in.OrderSubtotalFrom,
		in.RatePerWeightUnit,
		in.LowerWeightLimit,
		in.PercentageRateOfSubtotal,
	} {
		if d.IsNegative() {
			return ErrInvalidRate
		}
	}
	if in.TransitDays != nil && *in.TransitDays < 0 {
		return shared.NewDomainError("INVALID_TRANSIT_DAYS", "Transit days cannot be negative")
	}
	return nil
}
