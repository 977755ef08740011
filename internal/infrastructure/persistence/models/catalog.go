package models

import (
	"github.com/erp/shipping/internal/domain/shipping"
	"github.com/google/uuid"
)

// CarrierModel is the persistence model for the Carrier aggregate root.
type CarrierModel struct {
	AggregateModel
	Name                        string `gorm:"type:varchar(200);not null"`
	Kind                        string `gorm:"type:varchar(30);not null;default:'generic'"`
	ComputationMethodSystemName string `gorm:"type:varchar(200);not null"`
	Active                      bool   `gorm:"not null"`
	DisplayOrder                int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (CarrierModel) TableName() string {
	return "shipping_carriers"
}

// ToDomain converts the model to a domain Carrier. An unrecognised kind
// loads as generic so a bad row cannot block rating.
func (m *CarrierModel) ToDomain() *shipping.Carrier {
	kind, _ := shipping.ParseCarrierKind(m.Kind)
	return &shipping.Carrier{
		BaseAggregateRoot:           m.ToDomainAggregateRoot(),
		Name:                        m.Name,
		Kind:                        kind,
		ComputationMethodSystemName: m.ComputationMethodSystemName,
		Active:                      m.Active,
		DisplayOrder:                m.DisplayOrder,
	}
}

// CarrierModelFromDomain creates a persistence model from a domain Carrier
func CarrierModelFromDomain(c *shipping.Carrier) *CarrierModel {
	m := &CarrierModel{
		Name:                        c.Name,
		Kind:                        c.Kind.String(),
		ComputationMethodSystemName: c.ComputationMethodSystemName,
		Active:                      c.Active,
		DisplayOrder:                c.DisplayOrder,
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}

// ShippingMethodModel is the persistence model for ShippingMethod.
type ShippingMethodModel struct {
	AggregateModel
	Name         string `gorm:"type:varchar(400);not null"`
	Description  string `gorm:"type:text"`
	DisplayOrder int    `gorm:"not null;default:0;index"`
}

// TableName returns the table name for GORM
func (ShippingMethodModel) TableName() string {
	return "shipping_methods"
}

// ToDomain converts the model to a domain ShippingMethod
func (m *ShippingMethodModel) ToDomain() *shipping.ShippingMethod {
	return &shipping.ShippingMethod{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Description:       m.Description,
		DisplayOrder:      m.DisplayOrder,
	}
}

// ShippingMethodModelFromDomain creates a persistence model from a domain ShippingMethod
func ShippingMethodModelFromDomain(s *shipping.ShippingMethod) *ShippingMethodModel {
	m := &ShippingMethodModel{
		Name:         s.Name,
		Description:  s.Description,
		DisplayOrder: s.DisplayOrder,
	}
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	return m
}

// CutOffTimeModel is the persistence model for CutOffTime.
type CutOffTimeModel struct {
	BaseModel
	Name         string `gorm:"type:varchar(400);not null"`
	DisplayOrder int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (CutOffTimeModel) TableName() string {
	return "shipping_cut_off_times"
}

// ToDomain converts the model to a domain CutOffTime
func (m *CutOffTimeModel) ToDomain() *shipping.CutOffTime {
	return &shipping.CutOffTime{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		DisplayOrder: m.DisplayOrder,
	}
}

// CutOffTimeModelFromDomain creates a persistence model from a domain CutOffTime
func CutOffTimeModelFromDomain(c *shipping.CutOffTime) *CutOffTimeModel {
	m := &CutOffTimeModel{
		Name:         c.Name,
		DisplayOrder: c.DisplayOrder,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// WarehouseModel is the persistence model for Warehouse.
type WarehouseModel struct {
	AggregateModel
	Name            string    `gorm:"type:varchar(200);not null"`
	AddressLine     string    `gorm:"type:varchar(400)"`
	City            string    `gorm:"type:varchar(100)"`
	StateProvinceID uuid.UUID `gorm:"type:uuid;not null"`
	CountryID       uuid.UUID `gorm:"type:uuid;not null"`
	Zip             string    `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (WarehouseModel) TableName() string {
	return "shipping_warehouses"
}

// ToDomain converts the model to a domain Warehouse
func (m *WarehouseModel) ToDomain() *shipping.Warehouse {
	return &shipping.Warehouse{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		AddressLine:       m.AddressLine,
		City:              m.City,
		StateProvinceID:   m.StateProvinceID,
		CountryID:         m.CountryID,
		Zip:               m.Zip,
	}
}

// WarehouseModelFromDomain creates a persistence model from a domain Warehouse
func WarehouseModelFromDomain(w *shipping.Warehouse) *WarehouseModel {
	m := &WarehouseModel{
		Name:            w.Name,
		AddressLine:     w.AddressLine,
		City:            w.City,
		StateProvinceID: w.StateProvinceID,
		CountryID:       w.CountryID,
		Zip:             w.Zip,
	}
	m.FromDomainAggregateRoot(w.BaseAggregateRoot)
	return m
}
