package shipping

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedRateKeys(t *testing.T) {
	vendor := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	method := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	assert.Equal(t,
		"shippingmanager.fixedrate.rate.vendor_11111111-1111-1111-1111-111111111111.method_22222222-2222-2222-2222-222222222222",
		FixedRateKey(vendor, method))
	assert.Equal(t,
		"shippingmanager.fixedrate.transitdays.vendor_11111111-1111-1111-1111-111111111111.method_22222222-2222-2222-2222-222222222222",
		FixedTransitDaysKey(vendor, method))
}

func TestFixedRateResolver_Options(t *testing.T) {
	ctx := context.Background()
	vendor := uuid.New()
	ground, _ := NewShippingMethod("Ground", "Slow", 0)
	air, _ := NewShippingMethod("Air", "Fast", 1)

	settings := memSettings{
		FixedRateKey(vendor, ground.ID):        "4.50",
		FixedTransitDaysKey(vendor, ground.ID): "5",
	}
	r := NewFixedRateResolver(settings)

	opts, err := r.Options(ctx, vendor, []ShippingMethod{*ground, *air})
	require.NoError(t, err)
	require.Len(t, opts, 2)

	assert.Equal(t, "Ground", opts[0].Name)
	assert.True(t, dec("4.5").Equal(opts[0].Rate))
	require.NotNil(t, opts[0].TransitDays)
	assert.Equal(t, 5, *opts[0].TransitDays)

	assert.Equal(t, "Air", opts[1].Name)
	assert.True(t, opts[1].Rate.IsZero(), "missing key means zero")
	assert.Nil(t, opts[1].TransitDays)
}

func TestFixedRateResolver_InvalidSetting(t *testing.T) {
	vendor := uuid.New()
	m, _ := NewShippingMethod("Ground", "", 0)
	r := NewFixedRateResolver(memSettings{FixedRateKey(vendor, m.ID): "cheap"})

	_, err := r.Rate(context.Background(), vendor, m.ID)
	assert.Error(t, err)
}

func TestFixedRateResolver_UniformRate(t *testing.T) {
	ctx := context.Background()
	vendor := uuid.New()
	a, _ := NewShippingMethod("A", "", 0)
	b, _ := NewShippingMethod("B", "", 1)

	tests := []struct {
		name     string
		rateA    string
		rateB    string
		wantRate string
	}{
		{"identical rates", "9.99", "9.99", "9.99"},
		{"identical with different scale", "10", "10.00", "10"},
		{"differ by one cent", "9.99", "10.00", ""},
		{"both unset", "", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := memSettings{}
			if tt.rateA != "" {
				settings[FixedRateKey(vendor, a.ID)] = tt.rateA
			}
			if tt.rateB != "" {
				settings[FixedRateKey(vendor, b.ID)] = tt.rateB
			}

			result, err := NewFixedRateResolver(settings).UniformRate(ctx, vendor, []ShippingMethod{*a, *b})
			require.NoError(t, err)
			if tt.wantRate == "" {
				assert.Equal(t, RateResultNotConfigured, result.Kind())
				return
			}
			require.True(t, result.IsRate())
			amount, _ := result.Amount()
			assert.True(t, dec(tt.wantRate).Equal(amount))
		})
	}

	t.Run("no methods", func(t *testing.T) {
		result, err := NewFixedRateResolver(memSettings{}).UniformRate(ctx, vendor, nil)
		require.NoError(t, err)
		assert.Equal(t, RateResultNotConfigured, result.Kind())
	})
}
