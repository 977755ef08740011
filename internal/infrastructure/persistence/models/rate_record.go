package models

import (
	"github.com/erp/shipping/internal/domain/shipping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateRecordModel is the persistence model for the RateRecord aggregate root.
// uuid.Nil columns and an empty zip are wildcards.
type RateRecordModel struct {
	AggregateModel
	Active bool `gorm:"not null;index"`

	StoreID          uuid.UUID `gorm:"type:uuid;not null;index:idx_rate_scope,priority:1"`
	VendorID         uuid.UUID `gorm:"type:uuid;not null;index:idx_rate_scope,priority:2"`
	WarehouseID      uuid.UUID `gorm:"type:uuid;not null"`
	CarrierID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CountryID        uuid.UUID `gorm:"type:uuid;not null;index:idx_rate_region,priority:1"`
	StateProvinceID  uuid.UUID `gorm:"type:uuid;not null;index:idx_rate_region,priority:2"`
	Zip              string    `gorm:"type:varchar(400);not null;default:''"`
	ShippingMethodID uuid.UUID `gorm:"type:uuid;not null;index"`

	WeightFrom           decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	WeightTo             decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CalculateCubicWeight bool            `gorm:"not null;default:false"`
	CubicWeightFactor    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`

	OrderSubtotalFrom decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	OrderSubtotalTo   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`

	AdditionalFixedCost      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	RatePerWeightUnit        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	LowerWeightLimit         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PercentageRateOfSubtotal decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`

	FriendlyName      string    `gorm:"type:varchar(400)"`
	Description       string    `gorm:"type:text"`
	TransitDays       *int      `gorm:"type:integer"`
	CutOffTimeID      uuid.UUID `gorm:"type:uuid;not null"`
	DisplayOrder      int       `gorm:"not null;default:0"`
	SendFromAddressID uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (RateRecordModel) TableName() string {
	return "shipping_rate_records"
}

// ToDomain converts the persistence model to a domain RateRecord.
func (m *RateRecordModel) ToDomain() *shipping.RateRecord {
	var transitDays *int
	if m.TransitDays != nil {
		v := *m.TransitDays
		transitDays = &v
	}
	return &shipping.RateRecord{
		BaseAggregateRoot:        m.ToDomainAggregateRoot(),
		Active:                   m.Active,
		StoreID:                  m.StoreID,
		VendorID:                 m.VendorID,
		WarehouseID:              m.WarehouseID,
		CarrierID:                m.CarrierID,
		CountryID:                m.CountryID,
		StateProvinceID:          m.StateProvinceID,
		Zip:                      m.Zip,
		ShippingMethodID:         m.ShippingMethodID,
		WeightFrom:               m.WeightFrom,
		WeightTo:                 m.WeightTo,
		CalculateCubicWeight:     m.CalculateCubicWeight,
		CubicWeightFactor:        m.CubicWeightFactor,
		OrderSubtotalFrom:        m.OrderSubtotalFrom,
		OrderSubtotalTo:          m.OrderSubtotalTo,
		AdditionalFixedCost:      m.AdditionalFixedCost,
		RatePerWeightUnit:        m.RatePerWeightUnit,
		LowerWeightLimit:         m.LowerWeightLimit,
		PercentageRateOfSubtotal: m.PercentageRateOfSubtotal,
		FriendlyName:             m.FriendlyName,
		Description:              m.Description,
		TransitDays:              transitDays,
		CutOffTimeID:             m.CutOffTimeID,
		DisplayOrder:             m.DisplayOrder,
		SendFromAddressID:        m.SendFromAddressID,
	}
}

// RateRecordModelFromDomain creates a persistence model from a domain RateRecord.
func RateRecordModelFromDomain(r *shipping.RateRecord) *RateRecordModel {
	m := &RateRecordModel{
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
	}
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	return m
}
