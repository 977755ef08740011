package shipping

import (
	"context"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/erp/shipping/internal/domain/shipping"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRateRecordRepository is a mock implementation of RateRecordRepository
type MockRateRecordRepository struct {
	mock.Mock
}

func (m *MockRateRecordRepository) FindCandidates(ctx context.Context, q shipping.RateQuery) ([]shipping.RateRecord, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.RateRecord), args.Error(1)
}

func (m *MockRateRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.RateRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.RateRecord), args.Error(1)
}

func (m *MockRateRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.RateRecord, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]shipping.RateRecord), args.Error(1)
}

func (m *MockRateRecordRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRateRecordRepository) Save(ctx context.Context, record *shipping.RateRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRateRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCarrierRepository is a mock implementation of CarrierRepository
type MockCarrierRepository struct {
	mock.Mock
}

func (m *MockCarrierRepository) GetCarrier(ctx context.Context, id uuid.UUID) (*shipping.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.Carrier, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]shipping.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) Save(ctx context.Context, carrier *shipping.Carrier) error {
	args := m.Called(ctx, carrier)
	return args.Error(0)
}

// MockShippingMethodRepository is a mock implementation of ShippingMethodRepository
type MockShippingMethodRepository struct {
	mock.Mock
}

func (m *MockShippingMethodRepository) GetShippingMethod(ctx context.Context, id uuid.UUID) (*shipping.ShippingMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.ShippingMethod), args.Error(1)
}

func (m *MockShippingMethodRepository) ListShippingMethods(ctx context.Context) ([]shipping.ShippingMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.ShippingMethod), args.Error(1)
}

func (m *MockShippingMethodRepository) Save(ctx context.Context, method *shipping.ShippingMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

// MockCutOffTimeRepository is a mock implementation of CutOffTimeRepository
type MockCutOffTimeRepository struct {
	mock.Mock
}

func (m *MockCutOffTimeRepository) GetCutOffTime(ctx context.Context, id uuid.UUID) (*shipping.CutOffTime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.CutOffTime), args.Error(1)
}

func (m *MockCutOffTimeRepository) ListCutOffTimes(ctx context.Context) ([]shipping.CutOffTime, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shipping.CutOffTime), args.Error(1)
}

func (m *MockCutOffTimeRepository) Save(ctx context.Context, cutOff *shipping.CutOffTime) error {
	args := m.Called(ctx, cutOff)
	return args.Error(0)
}

// MockWarehouseRepository is a mock implementation of WarehouseRepository
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) GetWarehouse(ctx context.Context, id uuid.UUID) (*shipping.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.Warehouse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]shipping.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Save(ctx context.Context, warehouse *shipping.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

// MockSettingStore is a mock implementation of SettingStore
type MockSettingStore struct {
	mock.Mock
}

func (m *MockSettingStore) GetSetting(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockSettingStore) SetSetting(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
