package persistence

import (
	"testing"

	"github.com/erp/shipping/internal/domain/shipping"
	"github.com/erp/shipping/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupShippingTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection to :memory: would otherwise see its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// rateInput returns an active catch-all band: weight 0-100, subtotal 0-1000
func rateInput(mut func(*shipping.RateRecordInput)) shipping.RateRecordInput {
	in := shipping.RateRecordInput{
		Active:              true,
		WeightFrom:          d("0"),
		WeightTo:            d("100"),
		OrderSubtotalFrom:   d("0"),
		OrderSubtotalTo:     d("1000"),
		AdditionalFixedCost: d("5"),
		RatePerWeightUnit:   d("1.5"),
	}
	if mut != nil {
		mut(&in)
	}
	return in
}

func newRate(t *testing.T, mut func(*shipping.RateRecordInput)) *shipping.RateRecord {
	t.Helper()
	rec, err := shipping.NewRateRecord(rateInput(mut))
	require.NoError(t, err)
	return rec
}
