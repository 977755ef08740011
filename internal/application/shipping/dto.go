package shipping

import (
	"time"

	"github.com/erp/shipping/internal/domain/shipping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentItemRequest is one order line to be shipped
type ShipmentItemRequest struct {
	Quantity      int             `json:"quantity" binding:"min=0"`
	Weight        decimal.Decimal `json:"weight"`
	Length        decimal.Decimal `json:"length"`
	Width         decimal.Decimal `json:"width"`
	Height        decimal.Decimal `json:"height"`
	WeightUnit    string          `json:"weight_unit" binding:"max=10"`
	DimensionUnit string          `json:"dimension_unit" binding:"max=10"`
}

// AddressRequest is the ship-to address of a rating request
type AddressRequest struct {
	CountryID       uuid.UUID `json:"country_id"`
	StateProvinceID uuid.UUID `json:"state_province_id"`
	Zip             string    `json:"zip" binding:"max=20"`
}

// GetShippingOptionsRequest asks for the options available to one shipment
type GetShippingOptionsRequest struct {
	StoreID          uuid.UUID             `json:"store_id"`
	VendorID         uuid.UUID             `json:"vendor_id"`
	WarehouseID      uuid.UUID             `json:"warehouse_id"`
	Items            []ShipmentItemRequest `json:"items" binding:"dive"`
	ShippingAddress  *AddressRequest       `json:"shipping_address"`
	Subtotal         decimal.Decimal       `json:"subtotal"`
	ShippingMethodID *uuid.UUID            `json:"shipping_method_id"`
}

// ShippingOptionResponse is one option offered to the checkout
type ShippingOptionResponse struct {
	RateRecordID       *uuid.UUID      `json:"rate_record_id,omitempty"`
	CarrierID          *uuid.UUID      `json:"carrier_id,omitempty"`
	CarrierName        string          `json:"carrier_name,omitempty"`
	ShippingMethodID   uuid.UUID       `json:"shipping_method_id"`
	ShippingMethodName string          `json:"shipping_method_name"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Rate               decimal.Decimal `json:"rate"`
	TransitDays        *int            `json:"transit_days"`
	Result             string          `json:"result"`
}

// ShippingOptionsResponse carries the options, or the input errors that
// prevented rating. An empty option list without errors means no service.
type ShippingOptionsResponse struct {
	Options []ShippingOptionResponse `json:"options"`
	Errors  []string                 `json:"errors,omitempty"`
}

// Success reports whether the request was rated
func (r *ShippingOptionsResponse) Success() bool {
	return len(r.Errors) == 0
}

// AddError records an input problem
func (r *ShippingOptionsResponse) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// GetFixedRateRequest asks for the single flat rate of a vendor
type GetFixedRateRequest struct {
	VendorID uuid.UUID `json:"vendor_id"`
}

// FixedRateResponse is the uniform fixed rate, when there is one
type FixedRateResponse struct {
	Configured bool             `json:"configured"`
	Rate       *decimal.Decimal `json:"rate"`
}

// ToFixedRateResponse converts a rate result to its response form
func ToFixedRateResponse(r shipping.RateResult) FixedRateResponse {
	if !r.IsRate() {
		return FixedRateResponse{}
	}
	amount, _ := r.Amount()
	return FixedRateResponse{Configured: true, Rate: &amount}
}

// ToShippingOptionResponse converts a calculated option
func ToShippingOptionResponse(o *shipping.CalculatedOption) ShippingOptionResponse {
	return ShippingOptionResponse{
		RateRecordID:       optionalID(o.RateRecordID),
		CarrierID:          optionalID(o.CarrierID),
		CarrierName:        o.CarrierName,
		ShippingMethodID:   o.ShippingMethodID,
		ShippingMethodName: o.ShippingMethodName,
		Name:               o.Name,
		Description:        o.Description,
		Rate:               o.Rate,
		TransitDays:        o.TransitDays,
		Result:             o.Result.String(),
	}
}

// ToShippingOptionResponses converts a list of calculated options
func ToShippingOptionResponses(options []shipping.CalculatedOption) []ShippingOptionResponse {
	out := make([]ShippingOptionResponse, len(options))
	for i := range options {
		out[i] = ToShippingOptionResponse(&options[i])
	}
	return out
}

// RateRecordRequest creates or replaces a rate record. Omitted ids are
// wildcards and an omitted active flag means active.
type RateRecordRequest struct {
	Active *bool `json:"active"`

	StoreID          uuid.UUID `json:"store_id"`
	VendorID         uuid.UUID `json:"vendor_id"`
	WarehouseID      uuid.UUID `json:"warehouse_id"`
	CarrierID        uuid.UUID `json:"carrier_id"`
	CountryID        uuid.UUID `json:"country_id"`
	StateProvinceID  uuid.UUID `json:"state_province_id"`
	Zip              string    `json:"zip" binding:"max=400"`
	ShippingMethodID uuid.UUID `json:"shipping_method_id"`

	WeightFrom           decimal.Decimal `json:"weight_from"`
	WeightTo             decimal.Decimal `json:"weight_to"`
	CalculateCubicWeight bool            `json:"calculate_cubic_weight"`
	CubicWeightFactor    decimal.Decimal `json:"cubic_weight_factor"`

	OrderSubtotalFrom decimal.Decimal `json:"order_subtotal_from"`
	OrderSubtotalTo   decimal.Decimal `json:"order_subtotal_to"`

	AdditionalFixedCost      decimal.Decimal `json:"additional_fixed_cost"`
	RatePerWeightUnit        decimal.Decimal `json:"rate_per_weight_unit"`
	LowerWeightLimit         decimal.Decimal `json:"lower_weight_limit"`
	PercentageRateOfSubtotal decimal.Decimal `json:"percentage_rate_of_subtotal"`

	FriendlyName      string    `json:"friendly_name" binding:"max=400"`
	Description       string    `json:"description" binding:"max=2000"`
	TransitDays       *int      `json:"transit_days" binding:"omitempty,min=0"`
	CutOffTimeID      uuid.UUID `json:"cut_off_time_id"`
	DisplayOrder      int       `json:"display_order"`
	SendFromAddressID uuid.UUID `json:"send_from_address_id"`
}

func (r RateRecordRequest) toInput() shipping.RateRecordInput {
	return shipping.RateRecordInput{
		Active:                   r.Active == nil || *r.Active,
		StoreID:                  r.StoreID,
		VendorID:                 r.VendorID,
		WarehouseID:              r.WarehouseID,
		CarrierID:                r.CarrierID,
		CountryID:                r.CountryID,
		StateProvinceID:          r.StateProvinceID,
		Zip:                      r.Zip,
		ShippingMethodID:         r.ShippingMethodID,
		WeightFrom:               r.WeightFrom,
		WeightTo:                 r.WeightTo,
		CalculateCubicWeight:     r.CalculateCubicWeight,
		CubicWeightFactor:        r.CubicWeightFactor,
		OrderSubtotalFrom:        r.OrderSubtotalFrom,
		OrderSubtotalTo:          r.OrderSubtotalTo,
		AdditionalFixedCost:      r.AdditionalFixedCost,
		RatePerWeightUnit:        r.RatePerWeightUnit,
		LowerWeightLimit:         r.LowerWeightLimit,
		PercentageRateOfSubtotal: r.PercentageRateOfSubtotal,
		FriendlyName:             r.FriendlyName,
		Description:              r.Description,
		TransitDays:              r.TransitDays,
		CutOffTimeID:             r.CutOffTimeID,
		DisplayOrder:             r.DisplayOrder,
		SendFromAddressID:        r.SendFromAddressID,
	}
}

// RateRecordResponse represents a rate record in API responses
type RateRecordResponse struct {
	ID     uuid.UUID `json:"id"`
	Active bool      `json:"active"`

	StoreID          uuid.UUID `json:"store_id"`
	VendorID         uuid.UUID `json:"vendor_id"`
	WarehouseID      uuid.UUID `json:"warehouse_id"`
	CarrierID        uuid.UUID `json:"carrier_id"`
	CountryID        uuid.UUID `json:"country_id"`
	StateProvinceID  uuid.UUID `json:"state_province_id"`
	Zip              string    `json:"zip"`
	ShippingMethodID uuid.UUID `json:"shipping_method_id"`

	WeightFrom           decimal.Decimal `json:"weight_from"`
	WeightTo             decimal.Decimal `json:"weight_to"`
	CalculateCubicWeight bool            `json:"calculate_cubic_weight"`
	CubicWeightFactor    decimal.Decimal `json:"cubic_weight_factor"`

	OrderSubtotalFrom decimal.Decimal `json:"order_subtotal_from"`
	OrderSubtotalTo   decimal.Decimal `json:"order_subtotal_to"`

	AdditionalFixedCost      decimal.Decimal `json:"additional_fixed_cost"`
	RatePerWeightUnit        decimal.Decimal `json:"rate_per_weight_unit"`
	LowerWeightLimit         decimal.Decimal `json:"lower_weight_limit"`
	PercentageRateOfSubtotal decimal.Decimal `json:"percentage_rate_of_subtotal"`

	FriendlyName      string    `json:"friendly_name"`
	Description       string    `json:"description"`
	TransitDays       *int      `json:"transit_days"`
	CutOffTimeID      uuid.UUID `json:"cut_off_time_id"`
	DisplayOrder      int       `json:"display_order"`
	SendFromAddressID uuid.UUID `json:"send_from_address_id"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToRateRecordResponse converts a domain rate record
func ToRateRecordResponse(r *shipping.RateRecord) RateRecordResponse {
	return RateRecordResponse{
		ID:                       r.ID,
		Active:                   r.Active,
		StoreID:                  r.StoreID,
		VendorID:                 r.VendorID,
		WarehouseID:              r.WarehouseID,
		CarrierID:                r.CarrierID,
		CountryID:                r.CountryID,
		StateProvinceID:          r.StateProvinceID,
		Zip:                      r.Zip,
		ShippingMethodID:         r.ShippingMethodID,
		WeightFrom:               r.WeightFrom,
		WeightTo:                 r.WeightTo,
		CalculateCubicWeight:     r.CalculateCubicWeight,
		CubicWeightFactor:        r.CubicWeightFactor,
		OrderSubtotalFrom:        r.OrderSubtotalFrom,
		OrderSubtotalTo:          r.OrderSubtotalTo,
		AdditionalFixedCost:      r.AdditionalFixedCost,
		RatePerWeightUnit:        r.RatePerWeightUnit,
		LowerWeightLimit:         r.LowerWeightLimit,
		PercentageRateOfSubtotal: r.PercentageRateOfSubtotal,
		FriendlyName:             r.FriendlyName,
		Description:              r.Description,
		TransitDays:              r.TransitDays,
		CutOffTimeID:             r.CutOffTimeID,
		DisplayOrder:             r.DisplayOrder,
		SendFromAddressID:        r.SendFromAddressID,
		Version:                  r.Version,
		CreatedAt:                r.CreatedAt,
		UpdatedAt:                r.UpdatedAt,
	}
}

// RateRecordListFilter is the admin listing query
type RateRecordListFilter struct {
	Page             int    `form:"page" binding:"omitempty,min=1"`
	PageSize         int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy           string `form:"sort_by"`
	SortDesc         bool   `form:"sort_desc"`
	Search           string `form:"search"`
	StoreID          string `form:"store_id" binding:"omitempty,uuid"`
	VendorID         string `form:"vendor_id" binding:"omitempty,uuid"`
	CarrierID        string `form:"carrier_id" binding:"omitempty,uuid"`
	ShippingMethodID string `form:"shipping_method_id" binding:"omitempty,uuid"`
	Active           *bool  `form:"active"`
}

// CreateCarrierRequest creates a carrier. Kind defaults to Generic and
// SystemName to the engine's own system name.
type CreateCarrierRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	Kind         string `json:"kind" binding:"max=50"`
	SystemName   string `json:"system_name" binding:"max=200"`
	DisplayOrder int    `json:"display_order"`
	Active       *bool  `json:"active"`
}

// CarrierResponse represents a carrier in API responses
type CarrierResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Kind         string    `json:"kind"`
	SystemName   string    `json:"system_name"`
	Active       bool      `json:"active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToCarrierResponse converts a domain carrier
func ToCarrierResponse(c *shipping.Carrier) CarrierResponse {
	return CarrierResponse{
		ID:           c.ID,
		Name:         c.Name,
		Kind:         c.Kind.String(),
		SystemName:   c.ComputationMethodSystemName,
		Active:       c.Active,
		DisplayOrder: c.DisplayOrder,
		CreatedAt:    c.CreatedAt,
	}
}

// CarrierListFilter filters the carrier listing
type CarrierListFilter struct {
	Search string `form:"search"`
	Active *bool  `form:"active"`
}

// CreateShippingMethodRequest creates a shipping method
type CreateShippingMethodRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=400"`
	Description  string `json:"description" binding:"max=2000"`
	DisplayOrder int    `json:"display_order"`
}

// ShippingMethodResponse represents a shipping method in API responses
type ShippingMethodResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
}

// ToShippingMethodResponse converts a domain shipping method
func ToShippingMethodResponse(m *shipping.ShippingMethod) ShippingMethodResponse {
	return ShippingMethodResponse{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		DisplayOrder: m.DisplayOrder,
	}
}

// CreateCutOffTimeRequest creates a cut-off time
type CreateCutOffTimeRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=400"`
	DisplayOrder int    `json:"display_order"`
}

// CutOffTimeResponse represents a cut-off time in API responses
type CutOffTimeResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
}

// ToCutOffTimeResponse converts a domain cut-off time
func ToCutOffTimeResponse(c *shipping.CutOffTime) CutOffTimeResponse {
	return CutOffTimeResponse{ID: c.ID, Name: c.Name, DisplayOrder: c.DisplayOrder}
}

// CreateWarehouseRequest creates a warehouse
type CreateWarehouseRequest struct {
	Name            string    `json:"name" binding:"required,min=1,max=200"`
	CountryID       uuid.UUID `json:"country_id"`
	StateProvinceID uuid.UUID `json:"state_province_id"`
	AddressLine     string    `json:"address_line" binding:"max=400"`
	City            string    `json:"city" binding:"max=200"`
	Zip             string    `json:"zip" binding:"max=20"`
}

// WarehouseResponse represents a warehouse in API responses
type WarehouseResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	AddressLine     string    `json:"address_line"`
	City            string    `json:"city"`
	StateProvinceID uuid.UUID `json:"state_province_id"`
	CountryID       uuid.UUID `json:"country_id"`
	Zip             string    `json:"zip"`
}

// ToWarehouseResponse converts a domain warehouse
func ToWarehouseResponse(w *shipping.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:              w.ID,
		Name:            w.Name,
		AddressLine:     w.AddressLine,
		City:            w.City,
		StateProvinceID: w.StateProvinceID,
		CountryID:       w.CountryID,
		Zip:             w.Zip,
	}
}

// WarehouseListFilter filters the warehouse listing
type WarehouseListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
}

// SetFixedRateRequest stores the flat rate of one vendor and method
type SetFixedRateRequest struct {
	VendorID         uuid.UUID       `json:"vendor_id"`
	ShippingMethodID uuid.UUID       `json:"shipping_method_id" binding:"required"`
	Rate             decimal.Decimal `json:"rate"`
	TransitDays      *int            `json:"transit_days" binding:"omitempty,min=0"`
}

// FixedRateSettingResponse is the stored fixed rate of one vendor and method
type FixedRateSettingResponse struct {
	VendorID         uuid.UUID       `json:"vendor_id"`
	ShippingMethodID uuid.UUID       `json:"shipping_method_id"`
	Rate             decimal.Decimal `json:"rate"`
	TransitDays      *int            `json:"transit_days"`
}

func optionalID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
