package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/erp/shipping/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingRepository implements shipping.SettingStore on the settings table
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// GetSetting returns the value stored under key and whether it exists
func (r *GormSettingRepository) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var model models.SettingModel
	err := r.db.WithContext(ctx).First(&model, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return model.Value, true, nil
}

// SetSetting upserts a setting
func (r *GormSettingRepository) SetSetting(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&models.SettingModel{Key: key, Value: value, UpdatedAt: time.Now()}).Error
}

// ListSettings returns every setting whose key starts with prefix
func (r *GormSettingRepository) ListSettings(ctx context.Context, prefix string) (map[string]string, error) {
	var rows []models.SettingModel
	if err := r.db.WithContext(ctx).Where("key LIKE ?", prefix+"%").Order("key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}
