package shipping

import (
	"errors"
	"testing"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureConverter_Stacked(t *testing.T) {
	policy := DefaultPolicy()
	policy.Packaging = PackagingStacked
	c, err := NewMeasureConverter(policy)
	require.NoError(t, err)

	m, err := c.Measure([]ShipmentItem{
		{Quantity: 2, Weight: dec("500"), WeightUnit: "g", Length: dec("30"), Width: dec("20"), Height: dec("10"), DimensionUnit: "cm"},
		{Quantity: 1, Weight: dec("1.5"), Length: dec("0.4"), Width: dec("0.1"), Height: dec("0.05"), DimensionUnit: "m"},
		{Quantity: 0, Weight: dec("100")},
	})
	require.NoError(t, err)

	assert.True(t, dec("2.5").Equal(m.Weight), "weight %s", m.Weight)
	assert.True(t, dec("40").Equal(m.Length), "length %s", m.Length)
	assert.True(t, dec("20").Equal(m.Width), "width %s", m.Width)
	assert.True(t, dec("25").Equal(m.Height), "height %s", m.Height)
}

func TestMeasureConverter_CubeRoot(t *testing.T) {
	c, err := NewMeasureConverter(DefaultPolicy())
	require.NoError(t, err)

	m, err := c.Measure([]ShipmentItem{
		{Quantity: 8, Weight: dec("1"), Length: dec("10"), Width: dec("10"), Height: dec("10")},
	})
	require.NoError(t, err)

	assert.True(t, dec("8").Equal(m.Weight))
	assert.True(t, dec("20").Equal(m.Length), "side %s", m.Length)
	assert.True(t, m.Length.Equal(m.Width))
	assert.True(t, m.Width.Equal(m.Height))
}

func TestMeasureConverter_CubeRootKeepsVolume(t *testing.T) {
	c, err := NewMeasureConverter(DefaultPolicy())
	require.NoError(t, err)

	tests := []struct {
		name   string
		items  []ShipmentItem
		volume string
	}{
		{"irrational side", []ShipmentItem{{Quantity: 2, Length: dec("1"), Width: dec("1"), Height: dec("1")}}, "2"},
		{"mixed items", []ShipmentItem{
			{Quantity: 3, Length: dec("4"), Width: dec("5"), Height: dec("6")},
			{Quantity: 1, Length: dec("0.5"), Width: dec("0.5"), Height: dec("2")},
		}, "360.5"},
		{"large parcel", []ShipmentItem{{Quantity: 7, Length: dec("120"), Width: dec("80"), Height: dec("100")}}, "6720000"},
	}

	cubic := newTestRecord(func(in *RateRecordInput) {
		in.CalculateCubicWeight = true
		in.CubicWeightFactor = dec("1")
		in.WeightTo = dec("10000000")
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := c.Measure(tt.items)
			require.NoError(t, err)

			got := cubic.BillableWeight(m)
			assert.True(t, dec(tt.volume).Equal(got), "cubic weight %s", got)
		})
	}
}

func TestMeasureConverter_Empty(t *testing.T) {
	c, err := NewMeasureConverter(DefaultPolicy())
	require.NoError(t, err)

	m, err := c.Measure(nil)
	require.NoError(t, err)
	assert.True(t, m.Weight.IsZero())
	assert.True(t, m.Length.IsZero())
}

func TestMeasureConverter_Errors(t *testing.T) {
	t.Run("unknown engine unit", func(t *testing.T) {
		policy := DefaultPolicy()
		policy.WeightUnit = "stone"
		_, err := NewMeasureConverter(policy)
		assertDomainCode(t, err, "INVALID_UNIT")
	})

	t.Run("dimension unit used for weight", func(t *testing.T) {
		policy := DefaultPolicy()
		policy.WeightUnit = "CM"
		_, err := NewMeasureConverter(policy)
		assertDomainCode(t, err, "INVALID_UNIT")
	})

	t.Run("unknown packaging", func(t *testing.T) {
		policy := DefaultPolicy()
		policy.Packaging = "pyramid"
		_, err := NewMeasureConverter(policy)
		assertDomainCode(t, err, "INVALID_PACKAGING")
	})

	t.Run("unknown item unit", func(t *testing.T) {
		c, err := NewMeasureConverter(DefaultPolicy())
		require.NoError(t, err)
		_, err = c.Measure([]ShipmentItem{{Quantity: 1, Weight: dec("1"), WeightUnit: "ton"}})
		assertDomainCode(t, err, "INVALID_UNIT")
	})
}

func assertDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %T", err)
	assert.Equal(t, code, domainErr.Code)
}
