package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/erp/shipping/internal/domain/shipping"
	"github.com/erp/shipping/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// firstByID loads one row by primary key, mapping a miss to shared.ErrNotFound.
func firstByID(ctx context.Context, db *gorm.DB, dest any, id uuid.UUID) error {
	if err := db.WithContext(ctx).First(dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrNotFound
		}
		return err
	}
	return nil
}

// listQuery applies search, sort and pagination shared by catalog listings
func listQuery(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	query = query.Order(catalogSort.orderBy(filter))
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}

// GormCarrierRepository implements shipping.CarrierRepository using GORM
type GormCarrierRepository struct {
	db *gorm.DB
}

// NewGormCarrierRepository creates a new GormCarrierRepository
func NewGormCarrierRepository(db *gorm.DB) *GormCarrierRepository {
	return &GormCarrierRepository{db: db}
}

// GetCarrier finds a carrier by its ID
func (r *GormCarrierRepository) GetCarrier(ctx context.Context, id uuid.UUID) (*shipping.Carrier, error) {
	var model models.CarrierModel
	if err := firstByID(ctx, r.db, &model, id); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists carriers; "active" is the only supported filter key
func (r *GormCarrierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.Carrier, error) {
	query := r.db.WithContext(ctx).Model(&models.CarrierModel{})
	if active, ok := filter.Filters["active"]; ok {
		query = query.Where("active = ?", active)
	}

	var rows []models.CarrierModel
	if err := listQuery(query, filter).Find(&rows).Error; err != nil {
		return nil, err
	}
	carriers := make([]shipping.Carrier, len(rows))
	for i := range rows {
		carriers[i] = *rows[i].ToDomain()
	}
	return carriers, nil
}

// Save creates or updates a carrier
func (r *GormCarrierRepository) Save(ctx context.Context, carrier *shipping.Carrier) error {
	return r.db.WithContext(ctx).Save(models.CarrierModelFromDomain(carrier)).Error
}

// GormShippingMethodRepository implements shipping.ShippingMethodRepository using GORM
type GormShippingMethodRepository struct {
	db *gorm.DB
}

// NewGormShippingMethodRepository creates a new GormShippingMethodRepository
func NewGormShippingMethodRepository(db *gorm.DB) *GormShippingMethodRepository {
	return &GormShippingMethodRepository{db: db}
}

// GetShippingMethod finds a shipping method by its ID
func (r *GormShippingMethodRepository) GetShippingMethod(ctx context.Context, id uuid.UUID) (*shipping.ShippingMethod, error) {
	var model models.ShippingMethodModel
	if err := firstByID(ctx, r.db, &model, id); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListShippingMethods returns all shipping methods by display order
func (r *GormShippingMethodRepository) ListShippingMethods(ctx context.Context) ([]shipping.ShippingMethod, error) {
	var rows []models.ShippingMethodModel
	if err := r.db.WithContext(ctx).Order("display_order ASC, name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	methods := make([]shipping.ShippingMethod, len(rows))
	for i := range rows {
		methods[i] = *rows[i].ToDomain()
	}
	return methods, nil
}

// Save creates or updates a shipping method
func (r *GormShippingMethodRepository) Save(ctx context.Context, method *shipping.ShippingMethod) error {
	return r.db.WithContext(ctx).Save(models.ShippingMethodModelFromDomain(method)).Error
}

// GormCutOffTimeRepository implements shipping.CutOffTimeRepository using GORM
type GormCutOffTimeRepository struct {
	db *gorm.DB
}

// NewGormCutOffTimeRepository creates a new GormCutOffTimeRepository
func NewGormCutOffTimeRepository(db *gorm.DB) *GormCutOffTimeRepository {
	return &GormCutOffTimeRepository{db: db}
}

// GetCutOffTime finds a cut-off time by its ID
func (r *GormCutOffTimeRepository) GetCutOffTime(ctx context.Context, id uuid.UUID) (*shipping.CutOffTime, error) {
	var model models.CutOffTimeModel
	if err := firstByID(ctx, r.db, &model, id); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListCutOffTimes returns all cut-off times by display order
func (r *GormCutOffTimeRepository) ListCutOffTimes(ctx context.Context) ([]shipping.CutOffTime, error) {
	var rows []models.CutOffTimeModel
	if err := r.db.WithContext(ctx).Order("display_order ASC, name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	cutOffs := make([]shipping.CutOffTime, len(rows))
	for i := range rows {
		cutOffs[i] = *rows[i].ToDomain()
	}
	return cutOffs, nil
}

// Save creates or updates a cut-off time
func (r *GormCutOffTimeRepository) Save(ctx context.Context, cutOff *shipping.CutOffTime) error {
	return r.db.WithContext(ctx).Save(models.CutOffTimeModelFromDomain(cutOff)).Error
}

// GormWarehouseRepository implements shipping.WarehouseRepository using GORM
type GormWarehouseRepository struct {
	db *gorm.DB
}

// NewGormWarehouseRepository creates a new GormWarehouseRepository
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// GetWarehouse finds a warehouse by its ID
func (r *GormWarehouseRepository) GetWarehouse(ctx context.Context, id uuid.UUID) (*shipping.Warehouse, error) {
	var model models.WarehouseModel
	if err := firstByID(ctx, r.db, &model, id); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists warehouses
func (r *GormWarehouseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.Warehouse, error) {
	var rows []models.WarehouseModel
	query := listQuery(r.db.WithContext(ctx).Model(&models.WarehouseModel{}), filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	warehouses := make([]shipping.Warehouse, len(rows))
	for i := range rows {
		warehouses[i] = *rows[i].ToDomain()
	}
	return warehouses, nil
}

// Save creates or updates a warehouse
func (r *GormWarehouseRepository) Save(ctx context.Context, warehouse *shipping.Warehouse) error {
	return r.db.WithContext(ctx).Save(models.WarehouseModelFromDomain(warehouse)).Error
}
