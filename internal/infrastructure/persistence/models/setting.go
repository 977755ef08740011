package models

import "time"

// SettingModel is a key-value setting row
type SettingModel struct {
	Key       string    `gorm:"type:varchar(400);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SettingModel) TableName() string {
	return "shipping_settings"
}

// All returns every model in migration order
func All() []any {
	return []any{
		&CarrierModel{},
		&ShippingMethodModel{},
		&CutOffTimeModel{},
		&WarehouseModel{},
		&RateRecordModel{},
		&SettingModel{},
	}
}
