package shipping

import (
	"errors"
	"testing"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateRecord_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*RateRecordInput)
		wantCode string
	}{
		{
			name:   "valid record",
			mutate: func(in *RateRecordInput) {},
		},
		{
			name:   "equal weight bounds allowed",
			mutate: func(in *RateRecordInput) { in.WeightFrom, in.WeightTo = dec("5"), dec("5") },
		},
		{
			name:     "inverted weight band",
			mutate:   func(in *RateRecordInput) { in.WeightFrom, in.WeightTo = dec("10"), dec("5") },
			wantCode: "INVALID_WEIGHT_BAND",
		},
		{
			name:     "inverted subtotal band",
			mutate:   func(in *RateRecordInput) { in.OrderSubtotalFrom, in.OrderSubtotalTo = dec("100"), dec("50") },
			wantCode: "INVALID_SUBTOTAL_BAND",
		},
		{
			name:   "subtotal floor without ceiling",
			mutate: func(in *RateRecordInput) { in.OrderSubtotalFrom, in.OrderSubtotalTo = dec("100"), dec("0") },
		},
		{
			name:     "negative subtotal ceiling",
			mutate:   func(in *RateRecordInput) { in.OrderSubtotalTo = dec("-1") },
			wantCode: "INVALID_SUBTOTAL_BAND",
		},
		{
			name:     "negative rate per weight unit",
			mutate:   func(in *RateRecordInput) { in.RatePerWeightUnit = dec("-1") },
			wantCode: "INVALID_RATE",
		},
		{
			name:   "negative fixed cost allowed",
			mutate: func(in *RateRecordInput) { in.AdditionalFixedCost = dec("-3") },
		},
		{
			name:     "negative transit days",
			mutate:   func(in *RateRecordInput) { in.TransitDays = intPtr(-1) },
			wantCode: "INVALID_TRANSIT_DAYS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := RateRecordInput{
				WeightTo:        dec("10"),
				OrderSubtotalTo: dec("100"),
			}
			tt.mutate(&in)
			rec, err := NewRateRecord(in)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Nil(t, rec)
				var domainErr *shared.DomainError
				require.True(t, errors.As(err, &domainErr))
				assert.Equal(t, tt.wantCode, domainErr.Code)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rec)
			assert.Equal(t, 1, rec.Version)
		})
	}
}

func TestRateRecord_ZipIsNormalized(t *testing.T) {
	rec := newTestRecord(func(in *RateRecordInput) { in.Zip = " sw1a 1aa , ,902* " })
	assert.Equal(t, "SW1A1AA,902*", rec.Zip)
}

func TestRateRecord_Update(t *testing.T) {
	rec := newTestRecord(nil)

	err := rec.Update(RateRecordInput{WeightFrom: dec("3"), WeightTo: dec("1"), OrderSubtotalTo: dec("1")})
	require.ErrorIs(t, err, ErrInvalidWeightBand)
	assert.Equal(t, 1, rec.Version)

	err = rec.Update(RateRecordInput{Active: true, WeightTo: dec("20"), OrderSubtotalTo: dec("1"), FriendlyName: "  Ground  "})
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Version)
	assert.Equal(t, "Ground", rec.FriendlyName)
	assert.True(t, dec("20").Equal(rec.WeightTo))
}

func TestRateRecord_ActivateDeactivate(t *testing.T) {
	rec := newTestRecord(nil)
	rec.Activate()
	assert.Equal(t, 1, rec.Version, "already active")

	rec.Deactivate()
	assert.False(t, rec.Active)
	assert.Equal(t, 2, rec.Version)

	rec.Activate()
	assert.True(t, rec.Active)
	assert.Equal(t, 3, rec.Version)
}

func TestRateRecord_InSubtotalBand(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		subtotal string
		want     bool
	}{
		{"inside closed band", "10", "100", "50", true},
		{"lower bound inclusive", "10", "100", "10", true},
		{"upper bound inclusive", "10", "100", "100", true},
		{"above closed band", "10", "100", "100.01", false},
		{"below floor", "10", "100", "9.99", false},
		{"unset band matches any subtotal", "0", "0", "150", true},
		{"zero ceiling is open above", "200", "0", "5000", true},
		{"zero ceiling keeps the floor", "200", "0", "150", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newTestRecord(func(in *RateRecordInput) {
				in.OrderSubtotalFrom, in.OrderSubtotalTo = dec(tt.from), dec(tt.to)
			})
			assert.Equal(t, tt.want, rec.InSubtotalBand(dec(tt.subtotal)))
		})
	}
}

func TestRateRecord_BillableWeight(t *testing.T) {
	m := Measurements{Weight: dec("7"), Length: dec("2"), Width: dec("3"), Height: dec("1")}

	cubic := newTestRecord(func(in *RateRecordInput) {
		in.CalculateCubicWeight = true
		in.CubicWeightFactor = dec("5")
	})
	assert.True(t, dec("30").Equal(cubic.BillableWeight(m)))

	dead := newTestRecord(func(in *RateRecordInput) { in.CubicWeightFactor = dec("5") })
	assert.True(t, dec("7").Equal(dead.BillableWeight(m)))
}
