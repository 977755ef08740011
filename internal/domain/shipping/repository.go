package shipping

import (
	"context"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/google/uuid"
)

// RateRecordRepository defines persistence for rate records
type RateRecordRepository interface {
	RateRecordReader

	// FindByID finds a rate record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*RateRecord, error)

	// FindAll lists rate records for administration; inactive records included
	FindAll(ctx context.Context, filter shared.Filter) ([]RateRecord, error)

	// Count counts rate records matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a rate record
	Save(ctx context.Context, record *RateRecord) error

	// Delete deletes a rate record
	Delete(ctx context.Context, id uuid.UUID) error
}

// CarrierLookup resolves carriers by id; a miss is shared.ErrNotFound
type CarrierLookup interface {
	GetCarrier(ctx context.Context, id uuid.UUID) (*Carrier, error)
}

// CarrierRepository defines persistence for carriers
type CarrierRepository interface {
	CarrierLookup
	FindAll(ctx context.Context, filter shared.Filter) ([]Carrier, error)
	Save(ctx context.Context, carrier *Carrier) error
}

// ShippingMethodLookup resolves shipping methods; a miss is shared.ErrNotFound
type ShippingMethodLookup interface {
	GetShippingMethod(ctx context.Context, id uuid.UUID) (*ShippingMethod, error)
	// ListShippingMethods returns all methods ordered by display order
	ListShippingMethods(ctx context.Context) ([]ShippingMethod, error)
}

// ShippingMethodRepository defines persistence for shipping methods
type ShippingMethodRepository interface {
	ShippingMethodLookup
	Save(ctx context.Context, method *ShippingMethod) error
}

// CutOffTimeLookup resolves cut-off times; a miss is shared.ErrNotFound
type CutOffTimeLookup interface {
	GetCutOffTime(ctx context.Context, id uuid.UUID) (*CutOffTime, error)
}

// CutOffTimeRepository defines persistence for cut-off times
type CutOffTimeRepository interface {
	CutOffTimeLookup
	ListCutOffTimes(ctx context.Context) ([]CutOffTime, error)
	Save(ctx context.Context, cutOff *CutOffTime) error
}

// WarehouseLookup resolves warehouses; a miss is shared.ErrNotFound
type WarehouseLookup interface {
	GetWarehouse(ctx context.Context, id uuid.UUID) (*Warehouse, error)
}

// WarehouseRepository defines persistence for warehouses
type WarehouseRepository interface {
	WarehouseLookup
	FindAll(ctx context.Context, filter shared.Filter) ([]Warehouse, error)
	Save(ctx context.Context, warehouse *Warehouse) error
}

// SettingReader is the key-value settings lookup behind fixed-rate mode
type SettingReader interface {
	// GetSetting returns the value and whether the key exists
	GetSetting(ctx context.Context, key string) (string, bool, error)
}

// SettingStore adds writes to SettingReader
type SettingStore interface {
	SettingReader
	SetSetting(ctx context.Context, key, value string) error
}
