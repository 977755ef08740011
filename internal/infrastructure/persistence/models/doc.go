// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
//   - base.go: BaseModel and AggregateModel shared by every table
//   - rate_record.go: shipping_rate_records
//   - catalog.go: carriers, shipping methods, cut-off times, warehouses
//   - setting.go: key-value settings used by fixed-rate mode
package models
