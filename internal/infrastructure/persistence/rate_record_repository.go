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

// GormRateRecordRepository implements shipping.RateRecordRepository using GORM
type GormRateRecordRepository struct {
	db *gorm.DB
}

// NewGormRateRecordRepository creates a new GormRateRecordRepository
func NewGormRateRecordRepository(db *gorm.DB) *GormRateRecordRepository {
	return &GormRateRecordRepository{db: db}
}

// WithTx returns a new repository instance with the given transaction
func (r *GormRateRecordRepository) WithTx(tx *gorm.DB) *GormRateRecordRepository {
	return &GormRateRecordRepository{db: tx}
}

// FindCandidates narrows rate records by scope, active flag and subtotal band
// in SQL. A zero order_subtotal_to leaves the band open above. Zip patterns
// are left to the matcher.
func (r *GormRateRecordRepository) FindCandidates(ctx context.Context, q shipping.RateQuery) ([]shipping.RateRecord, error) {
	query := r.db.WithContext(ctx).Model(&models.RateRecordModel{})

	if !q.IncludeInactive {
		query = query.Where("active = ?", true)
	}
	query = scopeFilter(query, "store_id", q.StoreID)
	query = scopeFilter(query, "vendor_id", q.VendorID)
	query = scopeFilter(query, "warehouse_id", q.WarehouseID)
	if q.CarrierID != uuid.Nil {
		query = scopeFilter(query, "carrier_id", q.CarrierID)
	}
	if !q.SkipRegion {
		query = scopeFilter(query, "country_id", q.CountryID)
		query = scopeFilter(query, "state_province_id", q.StateProvinceID)
	}
	if q.ShippingMethodID != uuid.Nil {
		query = scopeFilter(query, "shipping_method_id", q.ShippingMethodID)
	}
	query = query.Where("order_subtotal_from <= ? AND (order_subtotal_to = 0 OR order_subtotal_to >= ?)", q.Subtotal, q.Subtotal)

	var rows []models.RateRecordModel
	if err := query.Order("vendor_id ASC, display_order ASC, created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toRateRecords(rows), nil
}

// scopeFilter keeps rows whose column equals value or holds the wildcard.
func scopeFilter(query *gorm.DB, column string, value uuid.UUID) *gorm.DB {
	if value == uuid.Nil {
		return query.Where(column+" = ?", uuid.Nil)
	}
	return query.Where(column+" = ? OR "+column+" = ?", value, uuid.Nil)
}

// FindByID finds a rate record by its ID
func (r *GormRateRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.RateRecord, error) {
	var model models.RateRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all rate records matching the filter, inactive ones included
func (r *GormRateRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.RateRecord, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.RateRecordModel{}), filter)

	query = query.Order(rateRecordSort.orderBy(filter))

	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	var rows []models.RateRecordModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toRateRecords(rows), nil
}

// Count counts rate records matching the filter
func (r *GormRateRecordRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.RateRecordModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a rate record
func (r *GormRateRecordRepository) Save(ctx context.Context, record *shipping.RateRecord) error {
	return r.db.WithContext(ctx).Save(models.RateRecordModelFromDomain(record)).Error
}

// Delete deletes a rate record
func (r *GormRateRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.RateRecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies search and exact-match filters. Unknown keys are ignored.
func (r *GormRateRecordRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(friendly_name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(zip) LIKE ?",
			pattern, pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		case "store_id", "vendor_id", "warehouse_id", "carrier_id",
			"country_id", "state_province_id", "shipping_method_id":
			query = query.Where(key+" = ?", value)
		}
	}
	return query
}

func toRateRecords(rows []models.RateRecordModel) []shipping.RateRecord {
	records := make([]shipping.RateRecord, len(rows))
	for i := range rows {
		records[i] = *rows[i].ToDomain()
	}
	return records
}
